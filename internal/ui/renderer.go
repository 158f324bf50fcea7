package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/chargrid/internal/grid"
)

// Renderer draws a tilemap and the editor cursor to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the full map with the cursor cell highlighted, plus a status
// line below the map. Tiles arrive in row-major order, so drawing each at
// its own position paints the map top-to-bottom, left-to-right.
func (r *Renderer) Render(m *grid.Tilemap, cursor grid.Vector2, styles map[rune]tcell.Style, status string) {
	r.screen.Clear()

	for tile := range m.All() {
		pos := tile.Position()
		style := r.tileStyle(tile.Rune(), styles)
		if pos == cursor {
			style = style.Reverse(true)
		}
		r.screen.SetContent(pos.X, pos.Y, tile.Rune(), style)
	}

	r.drawStatus(status, m.Height()+1)

	r.screen.Show()
}

// tileStyle returns the legend style for a glyph, or a muted default.
func (r *Renderer) tileStyle(ch rune, styles map[rune]tcell.Style) tcell.Style {
	if style, ok := styles[ch]; ok {
		return style
	}
	return tcell.StyleDefault.Foreground(tcell.ColorGray)
}

// drawStatus writes the status line at the given row.
func (r *Renderer) drawStatus(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range msg {
		r.screen.SetContent(i, y, ch, style)
	}
}
