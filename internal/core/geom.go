// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external UI dependencies (no Bubble Tea, no tcell) to keep game
// logic pure and testable.
package core

// Rect is an integer pixel rectangle with half-open edges [X0, X1) x [Y0, Y1).
type Rect struct {
	X0, Y0 int // Top-left corner
	X1, Y1 int // Bottom-right corner (exclusive)
}

// NewRect creates a rectangle from its edges.
func NewRect(x0, y0, x1, y1 int) Rect {
	return Rect{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// Width returns the horizontal extent.
func (r Rect) Width() int {
	return r.X1 - r.X0
}

// Height returns the vertical extent.
func (r Rect) Height() int {
	return r.Y1 - r.Y0
}

// OverlapsX reports whether the horizontal extents of r and other intersect.
func (r Rect) OverlapsX(other Rect) bool {
	return r.X1 > other.X0 && r.X0 < other.X1
}

// WithinY reports whether r's vertical extent lies entirely inside [top, bottom].
func (r Rect) WithinY(top, bottom int) bool {
	return r.Y0 >= top && r.Y1 <= bottom
}

// Box is a floating-point axis-aligned bounding box.
type Box struct {
	X0, Y0 float64
	X1, Y1 float64
}

// BoxAround returns the box of size w x h centred on (cx, cy).
func BoxAround(cx, cy, w, h float64) Box {
	return Box{
		X0: cx - w*0.5,
		Y0: cy - h*0.5,
		X1: cx + w*0.5,
		Y1: cy + h*0.5,
	}
}

// CircleHitsBox reports whether the circle at (cx, cy) with radius r touches b.
// The test uses the closest point of the box to the circle centre.
func CircleHitsBox(cx, cy, r float64, b Box) bool {
	closestX := ClampF(cx, b.X0, b.X1)
	closestY := ClampF(cy, b.Y0, b.Y1)
	dx := cx - closestX
	dy := cy - closestY
	return dx*dx+dy*dy <= r*r
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

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
