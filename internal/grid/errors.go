package grid

import "errors"

// Sentinel errors for the three ways caller input can be rejected. All are
// detected synchronously and returned wrapped with the offending values; a
// rejected operation never modifies the map.
var (
	// ErrInvalidDimensions is returned when a map is requested with a
	// non-positive width or height.
	ErrInvalidDimensions = errors.New("grid: invalid dimensions")

	// ErrOutOfBounds is returned when a coordinate falls outside
	// [0, width) x [0, height).
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")

	// ErrInvalidCharacter is returned when tile content is not exactly one
	// character.
	ErrInvalidCharacter = errors.New("grid: invalid character")
)
