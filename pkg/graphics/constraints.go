package graphics

import "math"

// Constraints describes the box constraints passed top-down during layout.
// Min and Max bound the size a node may return, componentwise.
// Unbounded() produces an infinite maximum on both axes.
type Constraints struct {
	Min Size
	Max Size
}

// Tight creates constraints that admit exactly one size.
func Tight(size Size) Constraints {
	return Constraints{Min: size, Max: size}
}

// Loose creates constraints with a zero minimum and the given maximum.
func Loose(size Size) Constraints {
	return Constraints{Max: size}
}

// Unbounded creates constraints with no maximum on either axis.
func Unbounded() Constraints {
	return Constraints{
		Max: Size{Width: math.Inf(1), Height: math.Inf(1)},
	}
}

// IsTight reports whether the constraints admit exactly one size.
func (c Constraints) IsTight() bool {
	return c.Min == c.Max
}

// Constrain clamps the given size into the constraint bounds.
func (c Constraints) Constrain(size Size) Size {
	return Size{
		Width:  clamp(size.Width, c.Min.Width, c.Max.Width),
		Height: clamp(size.Height, c.Min.Height, c.Max.Height),
	}
}

// IsSatisfiedBy reports whether the size lies within the bounds componentwise.
func (c Constraints) IsSatisfiedBy(size Size) bool {
	return size.Width+epsilon >= c.Min.Width && size.Width-epsilon <= c.Max.Width &&
		size.Height+epsilon >= c.Min.Height && size.Height-epsilon <= c.Max.Height
}

// Shrink reduces both bounds by the given size, clamping at zero.
// Used by containers to make room for their own chrome before laying
// out a child.
func (c Constraints) Shrink(size Size) Constraints {
	return Constraints{
		Min: Size{
			Width:  math.Max(0, c.Min.Width-size.Width),
			Height: math.Max(0, c.Min.Height-size.Height),
		},
		Max: Size{
			Width:  math.Max(0, c.Max.Width-size.Width),
			Height: math.Max(0, c.Max.Height-size.Height),
		},
	}
}

// Loosen returns the constraints with the minimum dropped to zero.
func (c Constraints) Loosen() Constraints {
	return Constraints{Max: c.Max}
}

// IsValid reports whether min <= max componentwise and no value is negative or NaN.
func (c Constraints) IsValid() bool {
	values := [4]float64{c.Min.Width, c.Min.Height, c.Max.Width, c.Max.Height}
	for _, v := range values {
		if v < 0 || math.IsNaN(v) {
			return false
		}
	}
	return c.Min.Width <= c.Max.Width && c.Min.Height <= c.Max.Height
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
