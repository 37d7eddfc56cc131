// Package core provides the terminal-independent building blocks shared by the
// game and the platform: geometry, the cell buffer, and runtime settings.
// It has no external dependencies so game logic stays pure and testable.
package core

import "math"

// Rect is an axis-aligned area of screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Span is a half-open interval [Min, Max) on one world axis.
type Span struct {
	Min, Max float64
}

// NewSpan creates a span starting at start with the given length.
func NewSpan(start, length float64) Span {
	return Span{Min: start, Max: start + length}
}

// Overlaps reports whether two spans share interior points.
// Spans that only touch at an edge do not overlap.
func (s Span) Overlaps(other Span) bool {
	return s.Min < other.Max && other.Min < s.Max
}

// Within reports whether s lies entirely inside outer, edges included.
func (s Span) Within(outer Span) bool {
	return s.Min >= outer.Min && s.Max <= outer.Max
}

// Scale maps a world coordinate to a cell index using the given cells-per-unit factor.
func Scale(v, factor float64) int {
	return int(math.Floor(v * factor))
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
