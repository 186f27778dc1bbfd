// Package core provides fundamental types and utilities shared by games and
// hosts. It contains no external dependencies (especially no Bubble Tea) to
// keep game logic pure and testable.
package core

// Rect represents an axis-aligned rectangle of cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// CenterIn returns the offset that centers a span of length size inside
// a span of length total. The result is never negative.
func CenterIn(total, size int) int {
	if size >= total {
		return 0
	}
	return (total - size) / 2
}
