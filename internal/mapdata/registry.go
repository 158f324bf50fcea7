package mapdata

import "errors"

// PresetRegistry holds loaded map presets and provides lookup utilities.
type PresetRegistry struct {
	byID map[string]*Preset
	all  []Preset
}

// NewPresetRegistry creates a registry from loaded preset definitions.
func NewPresetRegistry(presets []Preset) *PresetRegistry {
	registry := &PresetRegistry{
		byID: make(map[string]*Preset, len(presets)),
		all:  presets,
	}
	for i := range presets {
		registry.byID[presets[i].ID] = &presets[i]
	}
	return registry
}

// LoadPresetRegistry loads and creates a registry from the embedded
// presets.json.
func LoadPresetRegistry() (*PresetRegistry, error) {
	presets, err := LoadPresets()
	if err != nil {
		return nil, err
	}
	if len(presets) == 0 {
		return nil, errors.New("no presets loaded from presets.json")
	}
	return NewPresetRegistry(presets), nil
}

// MustLoadPresetRegistry loads a registry, panicking on error.
func MustLoadPresetRegistry() *PresetRegistry {
	registry, err := LoadPresetRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the preset with the given ID, or nil if not found.
func (r *PresetRegistry) GetByID(id string) *Preset {
	return r.byID[id]
}

// Default returns the first preset in file order.
func (r *PresetRegistry) Default() *Preset {
	return &r.all[0]
}

// All returns all preset definitions.
func (r *PresetRegistry) All() []Preset {
	return r.all
}

// Count returns the number of presets in the registry.
func (r *PresetRegistry) Count() int {
	return len(r.all)
}
