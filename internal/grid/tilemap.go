package grid

import (
	"fmt"
	"iter"
	"strings"
	"unicode/utf8"
)

// Tilemap is a fixed-size rectangular grid of character tiles stored in
// row-major order (index = y*width + x). All coordinate access is
// bounds-checked; a rejected operation leaves the map exactly as it was.
//
// A Tilemap is not safe for concurrent use. Callers that share one across
// goroutines must serialize access externally.
type Tilemap struct {
	width  int
	height int
	tiles  []Tile
}

// New creates a map of the given dimensions with every cell set to fill.
// Zero-area maps are not supported: width and height must both be positive,
// otherwise ErrInvalidDimensions is returned.
func New(width, height int, fill rune) (*Tilemap, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d, both dimensions must be positive",
			ErrInvalidDimensions, width, height)
	}
	if !utf8.ValidRune(fill) {
		return nil, fmt.Errorf("%w: fill %q is not a valid rune", ErrInvalidCharacter, fill)
	}

	tiles := make([]Tile, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			tiles[y*width+x] = NewTile(Vector2{X: x, Y: y}, fill)
		}
	}

	return &Tilemap{width: width, height: height, tiles: tiles}, nil
}

// Width returns the number of columns.
func (m *Tilemap) Width() int {
	return m.width
}

// Height returns the number of rows.
func (m *Tilemap) Height() int {
	return m.height
}

// Size returns the map dimensions as (width, height).
func (m *Tilemap) Size() (int, int) {
	return m.width, m.height
}

// InBounds reports whether pos addresses a cell of this map.
func (m *Tilemap) InBounds(pos Vector2) bool {
	return pos.X >= 0 && pos.X < m.width && pos.Y >= 0 && pos.Y < m.height
}

// At returns a copy of the tile at pos, or ErrOutOfBounds.
func (m *Tilemap) At(pos Vector2) (Tile, error) {
	if !m.InBounds(pos) {
		return Tile{}, m.boundsError(pos)
	}
	return m.tiles[m.index(pos)], nil
}

// Set replaces the character at pos, leaving every other tile untouched.
// Returns ErrOutOfBounds or ErrInvalidCharacter; the map is unchanged on
// error.
func (m *Tilemap) Set(pos Vector2, ch rune) error {
	if !m.InBounds(pos) {
		return m.boundsError(pos)
	}
	if !utf8.ValidRune(ch) {
		return fmt.Errorf("%w: %q is not a valid rune", ErrInvalidCharacter, ch)
	}
	m.tiles[m.index(pos)].ch = ch
	return nil
}

// SetString is the boundary form of Set for textual input: s must hold
// exactly one character. Empty or multi-character strings fail with
// ErrInvalidCharacter.
func (m *Tilemap) SetString(pos Vector2, s string) error {
	ch, err := ParseRune(s)
	if err != nil {
		return err
	}
	return m.Set(pos, ch)
}

// All returns a restartable iterator over copies of every tile in row-major
// order: y ascending, x ascending within each row. Drawing tiles in this
// order paints the map top-to-bottom, left-to-right.
func (m *Tilemap) All() iter.Seq[Tile] {
	return func(yield func(Tile) bool) {
		for i := range m.tiles {
			if !yield(m.tiles[i]) {
				return
			}
		}
	}
}

// String renders the map as height lines of width characters each, in
// row-major order.
func (m *Tilemap) String() string {
	var b strings.Builder
	b.Grow((m.width + 1) * m.height)
	for y := 0; y < m.height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < m.width; x++ {
			b.WriteRune(m.tiles[y*m.width+x].ch)
		}
	}
	return b.String()
}

// ParseRune converts a string holding exactly one character into a rune.
// Anything empty, multi-character, or malformed fails with
// ErrInvalidCharacter.
func ParseRune(s string) (rune, error) {
	ch, size := utf8.DecodeRuneInString(s)
	if (ch == utf8.RuneError && size <= 1) || size != len(s) {
		return 0, fmt.Errorf("%w: %q is not exactly one character", ErrInvalidCharacter, s)
	}
	return ch, nil
}

// index maps a coordinate to its row-major slot. Callers must bounds-check
// first.
func (m *Tilemap) index(pos Vector2) int {
	return pos.Y*m.width + pos.X
}

func (m *Tilemap) boundsError(pos Vector2) error {
	return fmt.Errorf("%w: %v outside [0, %d) x [0, %d)",
		ErrOutOfBounds, pos, m.width, m.height)
}
