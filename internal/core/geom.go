// Package core provides fundamental types and utilities shared by the
// simulation and the terminal platform. It has no external dependencies so
// the runner logic stays pure and testable.
package core

import "math"

// Vec is a point or displacement in world units.
type Vec struct {
	X, Y float64
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Len returns the euclidean length of v.
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Dist returns the distance between two points.
func Dist(a, b Vec) float64 {
	return a.Sub(b).Len()
}

// Span is a closed-open interval [Min, Max) on one axis.
type Span struct {
	Min, Max float64
}

// Overlaps reports whether two spans share any length.
// Touching spans do not overlap.
func (s Span) Overlaps(o Span) bool {
	return s.Max > o.Min && s.Min < o.Max
}

// Shrink returns the span pulled inward by margin on both ends.
func (s Span) Shrink(margin float64) Span {
	return Span{Min: s.Min + margin, Max: s.Max - margin}
}

// Box is an axis-aligned bounding box described by its center and size,
// the way entities are positioned in the world.
type Box struct {
	CX, CY float64 // Center
	W, H   float64 // Width and height
}

// NewBox creates a box centered on (cx, cy).
func NewBox(cx, cy, w, h float64) Box {
	return Box{CX: cx, CY: cy, W: w, H: h}
}

// Top returns the y-coordinate of the top edge.
func (b Box) Top() float64 {
	return b.CY - b.H/2
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.CY + b.H/2
}

// Vertical returns the box extent on the y axis.
func (b Box) Vertical() Span {
	return Span{Min: b.Top(), Max: b.Bottom()}
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

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
