// Package rendering defines the drawing and text backend seam consumed by
// the composition core: a Canvas of fill/stroke primitives, text layout
// construction and measurement, a recording display list, and a software
// rasterizer for headless rendering.
package rendering

import "github.com/go-loom/loom/pkg/graphics"

// PaintStyle selects between filling and stroking.
type PaintStyle int

const (
	// PaintStyleFill fills the shape interior.
	PaintStyleFill PaintStyle = iota
	// PaintStyleStroke strokes the shape outline.
	PaintStyleStroke
)

// Paint describes how a shape is drawn.
type Paint struct {
	Color       graphics.Color
	Style       PaintStyle
	StrokeWidth float64
}

// FillPaint returns a fill paint with the given color.
func FillPaint(color graphics.Color) Paint {
	return Paint{Color: color, Style: PaintStyleFill}
}

// StrokePaint returns a stroke paint with the given color and width.
func StrokePaint(color graphics.Color, width float64) Paint {
	return Paint{Color: color, Style: PaintStyleStroke, StrokeWidth: width}
}
