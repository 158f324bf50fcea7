package editor

import (
	"testing"

	"github.com/samdwyer/chargrid/internal/grid"
)

// newTestEditor builds an editor around a small map, skipping the screen so
// tests can drive the session logic directly.
func newTestEditor(t *testing.T) *Editor {
	t.Helper()
	m, err := grid.New(4, 3, '.')
	if err != nil {
		t.Fatal(err)
	}
	return &Editor{
		tilemap: m,
		cursor:  grid.Vector2{X: 1, Y: 1},
		brush:   '#',
		mode:    ModeBrowse,
	}
}

func TestMoveCursorStaysOnMap(t *testing.T) {
	e := newTestEditor(t)

	e.moveCursor(grid.Right)
	if e.cursor != (grid.Vector2{X: 2, Y: 1}) {
		t.Errorf("cursor at %v, want (2, 1)", e.cursor)
	}

	// Walk into the left edge: movement stops at x=0.
	for i := 0; i < 10; i++ {
		e.moveCursor(grid.Left)
	}
	if e.cursor != (grid.Vector2{X: 0, Y: 1}) {
		t.Errorf("cursor at %v, want (0, 1)", e.cursor)
	}

	// And down into the bottom edge.
	for i := 0; i < 10; i++ {
		e.moveCursor(grid.Down)
	}
	if e.cursor != (grid.Vector2{X: 0, Y: 2}) {
		t.Errorf("cursor at %v, want (0, 2)", e.cursor)
	}
}

func TestPaintWritesCursorCell(t *testing.T) {
	e := newTestEditor(t)

	e.paint('T')

	tile, err := e.tilemap.At(e.cursor)
	if err != nil {
		t.Fatal(err)
	}
	if tile.Rune() != 'T' {
		t.Errorf("painted cell is %q, want 'T'", tile.Rune())
	}
	if e.brush != 'T' {
		t.Errorf("brush is %q, want 'T'", e.brush)
	}
	if e.painted != 1 {
		t.Errorf("painted count is %d, want 1", e.painted)
	}
}

func TestToggleMode(t *testing.T) {
	e := newTestEditor(t)

	e.toggleMode()
	if e.mode != ModePaint {
		t.Errorf("mode is %v, want paint", e.mode)
	}
	e.toggleMode()
	if e.mode != ModeBrowse {
		t.Errorf("mode is %v, want browse", e.mode)
	}
}

func TestModeString(t *testing.T) {
	tests := []struct {
		mode Mode
		want string
	}{
		{ModeBrowse, "browse"},
		{ModePaint, "paint"},
		{Mode(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("Mode(%d).String() = %q, want %q", tt.mode, got, tt.want)
		}
	}
}
