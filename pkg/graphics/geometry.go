package graphics

import "math"

// epsilon is the tolerance for floating-point comparisons.
const epsilon = 0.0001

// Offset represents a 2D point or vector in pixel coordinates.
type Offset struct {
	X float64
	Y float64
}

// Add returns the componentwise sum of two offsets.
func (o Offset) Add(other Offset) Offset {
	return Offset{X: o.X + other.X, Y: o.Y + other.Y}
}

// Sub returns the componentwise difference of two offsets.
func (o Offset) Sub(other Offset) Offset {
	return Offset{X: o.X - other.X, Y: o.Y - other.Y}
}

// Size represents width and height dimensions in pixels.
type Size struct {
	Width  float64
	Height float64
}

// IsEmpty reports whether either dimension is zero or negative.
func (s Size) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// ToRect returns a rectangle at the origin with this size.
func (s Size) ToRect() Rect {
	return Rect{Right: s.Width, Bottom: s.Height}
}

// Contains reports whether the point lies within a box of this size
// anchored at the origin. The right and bottom edges are exclusive, so
// adjacent boxes sharing an edge never both claim the boundary point.
func (s Size) Contains(point Offset) bool {
	return point.X >= 0 && point.Y >= 0 && point.X < s.Width && point.Y < s.Height
}

// Rect represents a rectangle using left, top, right, bottom coordinates.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// RectFromLTWH constructs a Rect from left, top, width, height values.
func RectFromLTWH(left, top, width, height float64) Rect {
	return Rect{
		Left:   left,
		Top:    top,
		Right:  left + width,
		Bottom: top + height,
	}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Size returns the size of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Width(), Height: r.Height()}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Offset {
	return Offset{
		X: (r.Left + r.Right) * 0.5,
		Y: (r.Top + r.Bottom) * 0.5,
	}
}

// Contains reports whether the point lies within the rectangle.
func (r Rect) Contains(point Offset) bool {
	return point.X >= r.Left && point.X <= r.Right && point.Y >= r.Top && point.Y <= r.Bottom
}

// Inset returns the rectangle shrunk by the given amount on every edge.
// A negative amount grows the rectangle.
func (r Rect) Inset(amount float64) Rect {
	return Rect{
		Left:   r.Left + amount,
		Top:    r.Top + amount,
		Right:  r.Right - amount,
		Bottom: r.Bottom - amount,
	}
}

// Translate returns the rectangle moved by the given offset.
func (r Rect) Translate(offset Offset) Rect {
	return Rect{
		Left:   r.Left + offset.X,
		Top:    r.Top + offset.Y,
		Right:  r.Right + offset.X,
		Bottom: r.Bottom + offset.Y,
	}
}

// Radius represents corner radii for rounded rectangles.
type Radius struct {
	X float64
	Y float64
}

// CircularRadius creates a circular radius with equal X/Y values.
func CircularRadius(value float64) Radius {
	return Radius{X: value, Y: value}
}

// RRect represents a rounded rectangle with per-corner radii.
type RRect struct {
	Rect        Rect
	TopLeft     Radius
	TopRight    Radius
	BottomRight Radius
	BottomLeft  Radius
}

// RRectFromRectAndRadius creates a rounded rectangle with uniform corner radii.
func RRectFromRectAndRadius(rect Rect, radius Radius) RRect {
	return RRect{
		Rect:        rect,
		TopLeft:     radius,
		TopRight:    radius,
		BottomRight: radius,
		BottomLeft:  radius,
	}
}

// UniformRadius returns a single radius value if all corners match, or 0 if not.
func (r RRect) UniformRadius() float64 {
	v := r.TopLeft.X
	if !floatEqual(r.TopLeft.Y, v) ||
		!floatEqual(r.TopRight.X, v) ||
		!floatEqual(r.TopRight.Y, v) ||
		!floatEqual(r.BottomRight.X, v) ||
		!floatEqual(r.BottomRight.Y, v) ||
		!floatEqual(r.BottomLeft.X, v) ||
		!floatEqual(r.BottomLeft.Y, v) {
		return 0
	}
	return v
}

// Insets describes padding on each edge of a box.
type Insets struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// UniformInsets creates insets with the same value on all edges.
func UniformInsets(value float64) Insets {
	return Insets{Left: value, Top: value, Right: value, Bottom: value}
}

// SymmetricInsets creates insets with the given horizontal and vertical values.
func SymmetricInsets(horizontal, vertical float64) Insets {
	return Insets{Left: horizontal, Top: vertical, Right: horizontal, Bottom: vertical}
}

// Horizontal returns the total horizontal inset (left + right).
func (i Insets) Horizontal() float64 {
	return i.Left + i.Right
}

// Vertical returns the total vertical inset (top + bottom).
func (i Insets) Vertical() float64 {
	return i.Top + i.Bottom
}

// TopLeft returns the top-left inset corner as an offset.
func (i Insets) TopLeft() Offset {
	return Offset{X: i.Left, Y: i.Top}
}

func floatEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}
