package grid

// Tile is one addressable cell of a Tilemap: a fixed position and a single
// display character. The position never changes after construction; moving
// content means writing characters at two positions through the owning map.
type Tile struct {
	pos Vector2
	ch  rune
}

// NewTile creates a tile at pos displaying ch. Keeping the position within
// a map's bounds is the owning Tilemap's responsibility, not the tile's.
func NewTile(pos Vector2, ch rune) Tile {
	return Tile{pos: pos, ch: ch}
}

// Position returns the tile's fixed coordinate.
func (t Tile) Position() Vector2 {
	return t.pos
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	return t.ch
}
