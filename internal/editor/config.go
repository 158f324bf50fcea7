package editor

// Config holds editor configuration options.
type Config struct {
	// Preset is the ID of the map preset to open. An empty or unknown ID
	// falls back to the registry default.
	Preset string

	// Brush is the initial paint character. Zero means '#'.
	Brush rune
}
