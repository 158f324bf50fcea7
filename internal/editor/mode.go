// Package editor provides the interactive editing loop and mode handling.
package editor

// Mode represents the current editor mode.
type Mode int

const (
	// ModeBrowse is the default mode where the cursor moves without painting.
	ModeBrowse Mode = iota
	// ModePaint is the editing mode where character keys paint the cursor
	// cell.
	ModePaint
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeBrowse:
		return "browse"
	case ModePaint:
		return "paint"
	default:
		return "unknown"
	}
}
