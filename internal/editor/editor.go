package editor

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/chargrid/internal/grid"
	"github.com/samdwyer/chargrid/internal/mapdata"
	"github.com/samdwyer/chargrid/internal/telemetry"
	"github.com/samdwyer/chargrid/internal/ui"
)

// Editor holds the interactive session state: the map being edited, the
// cursor, and the current brush.
type Editor struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	preset   *mapdata.Preset
	tilemap  *grid.Tilemap
	styles   map[rune]tcell.Style
	cursor   grid.Vector2
	brush    rune
	mode     Mode
	painted  int
	running  bool
}

// New creates an editor for the configured preset.
func New(cfg Config) (*Editor, error) {
	registry, err := mapdata.LoadPresetRegistry()
	if err != nil {
		return nil, err
	}

	preset := registry.GetByID(cfg.Preset)
	if preset == nil {
		preset = registry.Default()
	}

	brush := cfg.Brush
	if brush == 0 {
		brush = '#'
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	return &Editor{
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		preset:   preset,
		styles:   preset.Styles(),
		brush:    brush,
		mode:     ModeBrowse,
		running:  true,
	}, nil
}

// Run executes the main editing loop.
func (e *Editor) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("editor")

	ctx, initSpan := tracer.Start(ctx, "editor.init")

	m, err := e.preset.Build(ctx)
	if err != nil {
		initSpan.End()
		e.screen.Close()
		return err
	}
	e.tilemap = m

	// Start the cursor in the middle of the map.
	e.cursor = grid.Vector2{X: m.Width() / 2, Y: m.Height() / 2}

	initSpan.SetAttributes(
		attribute.String("editor.preset", e.preset.ID),
		attribute.Int("editor.map_width", m.Width()),
		attribute.Int("editor.map_height", m.Height()),
	)
	initSpan.End()

	_, sessionSpan := tracer.Start(ctx, "editor.session")
	for e.running {
		e.renderer.Render(e.tilemap, e.cursor, e.styles, e.status())
		e.handleInput()
	}
	sessionSpan.SetAttributes(attribute.Int("editor.cells_painted", e.painted))
	sessionSpan.End()

	e.screen.Close()
	return nil
}

// handleInput processes a single input event.
func (e *Editor) handleInput() {
	ev := e.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		e.handleKeyEvent(ev)
	case *tcell.EventResize:
		e.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input.
func (e *Editor) handleKeyEvent(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		e.running = false

	case tcell.KeyTab:
		e.toggleMode()

	case tcell.KeyUp:
		e.moveCursor(grid.Up)
	case tcell.KeyDown:
		e.moveCursor(grid.Down)
	case tcell.KeyLeft:
		e.moveCursor(grid.Left)
	case tcell.KeyRight:
		e.moveCursor(grid.Right)

	case tcell.KeyRune:
		r := ev.Rune()
		if e.mode == ModePaint {
			e.paint(r)
			return
		}
		if r == 'q' || r == 'Q' {
			e.running = false
		}
	}
}

// moveCursor shifts the cursor by the given displacement, staying on the
// map.
func (e *Editor) moveCursor(d grid.Vector2) {
	target := e.cursor.Add(d)
	if e.tilemap.InBounds(target) {
		e.cursor = target
	}
}

// paint writes r at the cursor and makes it the active brush. The map
// rejects anything that is not a valid single character; the cursor is
// always in bounds, so that is the only way this can fail.
func (e *Editor) paint(r rune) {
	if err := e.tilemap.Set(e.cursor, r); err != nil {
		return
	}
	e.brush = r
	e.painted++
}

// toggleMode switches between browse and paint.
func (e *Editor) toggleMode() {
	if e.mode == ModeBrowse {
		e.mode = ModePaint
	} else {
		e.mode = ModeBrowse
	}
}

// status builds the status line shown under the map.
func (e *Editor) status() string {
	return fmt.Sprintf("%s | %s | cursor %v | brush %q | Tab: mode, Esc: quit",
		e.preset.Name, e.mode, e.cursor, e.brush)
}

// Close cleans up editor resources.
func (e *Editor) Close() {
	if e.screen != nil {
		e.screen.Close()
	}
}
