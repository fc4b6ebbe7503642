package rendering

import "github.com/go-loom/loom/pkg/graphics"

// Canvas records or renders drawing commands.
//
// The transform state is a stack: Save pushes the current transform and
// clip, Restore pops them. All drawing happens in the current transformed
// coordinate space.
type Canvas interface {
	// Save pushes the current transform and clip state.
	Save()

	// Restore pops the most recent transform and clip state.
	Restore()

	// Translate moves the origin by the given offset.
	Translate(dx, dy float64)

	// Transform concatenates an affine transform onto the current state.
	Transform(m graphics.Affine)

	// ClipRect restricts future drawing to the given rectangle.
	ClipRect(rect graphics.Rect)

	// Clear fills the entire canvas with the given color.
	Clear(color graphics.Color)

	// FillRect fills a rectangle.
	FillRect(rect graphics.Rect, paint Paint)

	// StrokeRect strokes a rectangle outline.
	StrokeRect(rect graphics.Rect, paint Paint)

	// FillRRect fills a rounded rectangle.
	FillRRect(rrect graphics.RRect, paint Paint)

	// StrokeRRect strokes a rounded rectangle outline.
	StrokeRRect(rrect graphics.RRect, paint Paint)

	// DrawLine draws a line segment.
	DrawLine(start, end graphics.Offset, paint Paint)

	// DrawTextLayout draws a pre-measured text layout with its top-left
	// corner at the given position.
	DrawTextLayout(layout *TextLayout, position graphics.Offset)
}
