// Package geometry provides the value types the floating-panel engine
// measures and positions with. All coordinates are viewport-relative
// float64 values; rendering rounds to cells at the last moment.
package geometry

import "math"

// Offset represents a 2D point or displacement.
type Offset struct {
	X float64
	Y float64
}

// Add returns the component-wise sum of two offsets.
func (o Offset) Add(other Offset) Offset {
	return Offset{X: o.X + other.X, Y: o.Y + other.Y}
}

// Size represents width and height dimensions.
type Size struct {
	Width  float64
	Height float64
}

// IsEmpty returns true if either dimension is zero or negative.
func (s Size) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Rect represents a rectangle by its top-left corner and size.
type Rect struct {
	Top    float64
	Left   float64
	Width  float64
	Height float64
}

// RectFromLTWH constructs a Rect from left, top, width, height values.
func RectFromLTWH(left, top, width, height float64) Rect {
	return Rect{Top: top, Left: left, Width: width, Height: height}
}

// Right returns the x coordinate of the rectangle's trailing edge.
func (r Rect) Right() float64 {
	return r.Left + r.Width
}

// Bottom returns the y coordinate of the rectangle's bottom edge.
func (r Rect) Bottom() float64 {
	return r.Top + r.Height
}

// Size returns the size of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Offset {
	return Offset{
		X: r.Left + r.Width*0.5,
		Y: r.Top + r.Height*0.5,
	}
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Translate returns a new rect offset by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{Top: r.Top + dy, Left: r.Left + dx, Width: r.Width, Height: r.Height}
}

// Clamp limits v into [lo, hi]. When the interval is inverted (lo > hi)
// the lower bound wins.
func Clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	return math.Min(math.Max(v, lo), hi)
}
