package mapdata

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/chargrid/internal/grid"
	"github.com/samdwyer/chargrid/internal/telemetry"
)

// Preset describes a ready-made map: dimensions, a fill character, a legend
// of glyphs with display colors, and the cells that differ from the fill.
// Presets are defined in presets.json and loaded at startup.
type Preset struct {
	ID     string        `json:"id"`
	Name   string        `json:"name"`
	Width  int           `json:"width"`
	Height int           `json:"height"`
	Fill   string        `json:"fill"`
	Legend []LegendEntry `json:"legend"`
	Cells  []CellDef     `json:"cells"`
}

// LegendEntry names a glyph used by a preset and gives it a display color.
type LegendEntry struct {
	Glyph string `json:"glyph"`
	Name  string `json:"name"`
	Color string `json:"color"` // hex, e.g. "#8B4513"
}

// CellDef places a glyph at a coordinate when the preset is built.
type CellDef struct {
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Glyph string `json:"glyph"`
}

// LoadPresets loads all map presets from the embedded presets.json.
func LoadPresets() ([]Preset, error) {
	return Load[[]Preset]("presets.json")
}

// GlyphRune returns the entry's glyph as a rune.
func (e *LegendEntry) GlyphRune() rune {
	ch, err := grid.ParseRune(e.Glyph)
	if err != nil {
		return ' '
	}
	return ch
}

// TCellColor parses the entry's hex color, falling back to the terminal
// default on bad data.
func (e *LegendEntry) TCellColor() tcell.Color {
	color, err := ParseHexColor(e.Color)
	if err != nil {
		return tcell.ColorDefault
	}
	return color
}

// Build constructs the preset's tilemap: a fresh grid filled with the fill
// character, with each legend cell stamped on top. Glyphs pass through the
// grid's single-character validation, so a malformed preset fails here
// rather than producing a corrupt map.
func (p *Preset) Build(ctx context.Context) (*grid.Tilemap, error) {
	tracer := telemetry.Tracer("mapdata")
	_, span := tracer.Start(ctx, "preset.build")
	defer span.End()

	startTime := time.Now()

	fill, err := grid.ParseRune(p.Fill)
	if err != nil {
		return nil, fmt.Errorf("preset %s: bad fill: %w", p.ID, err)
	}

	m, err := grid.New(p.Width, p.Height, fill)
	if err != nil {
		return nil, fmt.Errorf("preset %s: %w", p.ID, err)
	}

	for _, cell := range p.Cells {
		pos := grid.Vector2{X: cell.X, Y: cell.Y}
		if err := m.SetString(pos, cell.Glyph); err != nil {
			return nil, fmt.Errorf("preset %s: cell at %v: %w", p.ID, pos, err)
		}
	}

	span.SetAttributes(
		attribute.String("preset.id", p.ID),
		attribute.Int("preset.width", p.Width),
		attribute.Int("preset.height", p.Height),
		attribute.Int("preset.cells", len(p.Cells)),
		attribute.Int64("preset.build_ms", time.Since(startTime).Milliseconds()),
	)

	return m, nil
}

// Styles returns a glyph-to-style lookup built from the preset's legend.
// Glyphs without a legend entry render with the default style.
func (p *Preset) Styles() map[rune]tcell.Style {
	styles := make(map[rune]tcell.Style, len(p.Legend))
	for i := range p.Legend {
		entry := &p.Legend[i]
		styles[entry.GlyphRune()] = tcell.StyleDefault.Foreground(entry.TCellColor())
	}
	return styles
}
