package spatial

import (
	"math"

	"github.com/matzehuels/floorplan/pkg/dsl"
)

// Bounds is the axis-aligned box of a named room. Right, Bottom, CenterX and
// CenterY are derived from the other fields; use [NewBounds] to keep them
// consistent.
type Bounds struct {
	Name    string
	X, Y    float64
	Width   float64
	Height  float64
	Right   float64
	Bottom  float64
	CenterX float64
	CenterY float64
}

// NewBounds builds bounds from a position and size.
func NewBounds(name string, x, y, width, height float64) Bounds {
	return Bounds{
		Name:    name,
		X:       x,
		Y:       y,
		Width:   width,
		Height:  height,
		Right:   x + width,
		Bottom:  y + height,
		CenterX: x + width/2,
		CenterY: y + height/2,
	}
}

// FromRoom derives bounds from a room's explicit position and its resolved
// size. It returns false when the room has no explicit position or the size
// is not positive.
func FromRoom(room *dsl.Room, size dsl.Size) (Bounds, bool) {
	if room.Position == nil || size.Width <= 0 || size.Height <= 0 {
		return Bounds{}, false
	}
	return NewBounds(room.Name, room.Position.X, room.Position.Y, size.Width, size.Height), true
}

// Overlaps reports whether the two boxes share area beyond tol on both axes.
// Boxes that merely touch do not overlap.
func (b Bounds) Overlaps(o Bounds, tol float64) bool {
	return b.X < o.Right-tol && b.Right > o.X+tol &&
		b.Y < o.Bottom-tol && b.Bottom > o.Y+tol
}

// Distance returns the Euclidean distance between the two centers.
func (b Bounds) Distance(o Bounds) float64 {
	return math.Hypot(b.CenterX-o.CenterX, b.CenterY-o.CenterY)
}
