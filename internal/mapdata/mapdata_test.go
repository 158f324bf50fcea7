package mapdata

import (
	"context"
	"testing"

	"github.com/samdwyer/chargrid/internal/grid"
)

func TestLoadPresets(t *testing.T) {
	presets, err := LoadPresets()
	if err != nil {
		t.Fatalf("Failed to load presets: %v", err)
	}

	if len(presets) != 3 {
		t.Errorf("Expected 3 presets, got %d", len(presets))
	}

	expectedIDs := map[string]bool{"blank": false, "courtyard": false, "passage": false}
	for _, p := range presets {
		if _, ok := expectedIDs[p.ID]; ok {
			expectedIDs[p.ID] = true
		}
	}

	for id, found := range expectedIDs {
		if !found {
			t.Errorf("Expected preset %q not found", id)
		}
	}
}

func TestPresetRegistry(t *testing.T) {
	registry, err := LoadPresetRegistry()
	if err != nil {
		t.Fatalf("Failed to load registry: %v", err)
	}

	if registry.Count() != 3 {
		t.Errorf("Expected 3 presets, got %d", registry.Count())
	}

	courtyard := registry.GetByID("courtyard")
	if courtyard == nil {
		t.Fatal("Courtyard not found by ID")
	}
	if courtyard.Name != "Courtyard" {
		t.Errorf("Expected name 'Courtyard', got %q", courtyard.Name)
	}

	if registry.GetByID("no-such-preset") != nil {
		t.Error("GetByID for unknown ID should return nil")
	}

	if registry.Default().ID != "blank" {
		t.Errorf("Expected default preset 'blank', got %q", registry.Default().ID)
	}
}

func TestPresetBuild(t *testing.T) {
	registry := MustLoadPresetRegistry()
	courtyard := registry.GetByID("courtyard")

	m, err := courtyard.Build(context.Background())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if w, h := m.Size(); w != courtyard.Width || h != courtyard.Height {
		t.Errorf("Built map is %dx%d, want %dx%d", w, h, courtyard.Width, courtyard.Height)
	}

	// Stamped cells carry their glyphs.
	tile, err := m.At(grid.Vector2{X: 4, Y: 2})
	if err != nil {
		t.Fatal(err)
	}
	if tile.Rune() != '~' {
		t.Errorf("Cell at (4, 2) = %q, want '~'", tile.Rune())
	}

	// Everything else keeps the fill character.
	tile, err = m.At(grid.Vector2{X: 6, Y: 0})
	if err != nil {
		t.Fatal(err)
	}
	if tile.Rune() != '.' {
		t.Errorf("Cell at (6, 0) = %q, want '.'", tile.Rune())
	}
}

func TestPresetBuildRejectsBadData(t *testing.T) {
	tests := []struct {
		name   string
		preset Preset
	}{
		{"zero width", Preset{ID: "bad", Width: 0, Height: 4, Fill: "."}},
		{"multi-character fill", Preset{ID: "bad", Width: 4, Height: 4, Fill: ".."}},
		{"empty fill", Preset{ID: "bad", Width: 4, Height: 4, Fill: ""}},
		{"cell out of bounds", Preset{
			ID: "bad", Width: 4, Height: 4, Fill: ".",
			Cells: []CellDef{{X: 4, Y: 0, Glyph: "#"}},
		}},
		{"multi-character glyph", Preset{
			ID: "bad", Width: 4, Height: 4, Fill: ".",
			Cells: []CellDef{{X: 0, Y: 0, Glyph: "##"}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.preset.Build(context.Background()); err == nil {
				t.Error("Build should have failed")
			}
		})
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#1E90FF", true},
		{"#FFFFFF", true},
		{"#000000", true},
		{"invalid", false},
		{"#FFF", false}, // Too short
		{"#GG0000", false},
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) should be invalid, got no error", tt.input)
		}
	}
}

func TestLegendEntryMethods(t *testing.T) {
	entry := LegendEntry{Glyph: "~", Name: "water", Color: "#1E90FF"}

	if entry.GlyphRune() != '~' {
		t.Errorf("Expected glyph '~', got %c", entry.GlyphRune())
	}
	if entry.TCellColor() == 0 {
		t.Error("TCellColor returned zero color")
	}

	styles := (&Preset{Legend: []LegendEntry{entry}}).Styles()
	if _, ok := styles['~']; !ok {
		t.Error("Styles() missing entry for '~'")
	}
}
