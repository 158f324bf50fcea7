// Package grid provides the character tilemap core: coordinates, tiles,
// and the bounds-checked Tilemap container.
package grid

import "fmt"

// Vector2 is an integer (x, y) pair used both as an absolute tile position
// and as a relative displacement. Components are plain ints, wide enough
// that overflow is not a practical concern for any realistic map size.
// Equality is component-wise (native struct comparison).
type Vector2 struct {
	X, Y int
}

// Unit displacements for neighbor math. Y grows downward, matching
// row-major storage and terminal rendering.
var (
	Up    = Vector2{X: 0, Y: -1}
	Down  = Vector2{X: 0, Y: 1}
	Left  = Vector2{X: -1, Y: 0}
	Right = Vector2{X: 1, Y: 0}
)

// NewVector2 creates a vector from its components.
func NewVector2(x, y int) Vector2 {
	return Vector2{X: x, Y: y}
}

// Add returns the component-wise sum of v and o.
func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns the component-wise difference of v and o.
func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{X: v.X - o.X, Y: v.Y - o.Y}
}

// String formats the vector as "(x, y)".
func (v Vector2) String() string {
	return fmt.Sprintf("(%d, %d)", v.X, v.Y)
}
