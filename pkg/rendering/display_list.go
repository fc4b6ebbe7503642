package rendering

import "github.com/go-loom/loom/pkg/graphics"

// Op is a single recorded drawing operation.
type Op interface {
	// Replay executes the operation on the given canvas.
	Replay(canvas Canvas)
}

// DisplayList is an immutable list of drawing operations.
// It can be replayed onto any Canvas implementation.
type DisplayList struct {
	ops  []Op
	size graphics.Size
}

// Replay executes the recorded operations onto the provided canvas.
func (d *DisplayList) Replay(canvas Canvas) {
	for _, op := range d.ops {
		op.Replay(canvas)
	}
}

// Ops returns the recorded operations for inspection.
func (d *DisplayList) Ops() []Op {
	return d.ops
}

// Size returns the size recorded when the display list was created.
func (d *DisplayList) Size() graphics.Size {
	return d.size
}

// PictureRecorder records drawing commands into a display list.
type PictureRecorder struct {
	ops       []Op
	recording bool
	size      graphics.Size
}

// BeginRecording starts a new recording session.
func (r *PictureRecorder) BeginRecording(size graphics.Size) Canvas {
	r.ops = r.ops[:0]
	r.recording = true
	r.size = size
	return &recordingCanvas{recorder: r}
}

// EndRecording finishes the recording and returns a display list.
func (r *PictureRecorder) EndRecording() *DisplayList {
	if !r.recording {
		return &DisplayList{size: r.size}
	}
	r.recording = false
	ops := make([]Op, len(r.ops))
	copy(ops, r.ops)
	return &DisplayList{ops: ops, size: r.size}
}

func (r *PictureRecorder) append(op Op) {
	if !r.recording {
		return
	}
	r.ops = append(r.ops, op)
}

// Recorded operations.
type (
	// OpSave records Canvas.Save.
	OpSave struct{}
	// OpRestore records Canvas.Restore.
	OpRestore struct{}
	// OpTranslate records Canvas.Translate.
	OpTranslate struct{ DX, DY float64 }
	// OpTransform records Canvas.Transform.
	OpTransform struct{ Matrix graphics.Affine }
	// OpClipRect records Canvas.ClipRect.
	OpClipRect struct{ Rect graphics.Rect }
	// OpClear records Canvas.Clear.
	OpClear struct{ Color graphics.Color }
	// OpFillRect records Canvas.FillRect.
	OpFillRect struct {
		Rect  graphics.Rect
		Paint Paint
	}
	// OpStrokeRect records Canvas.StrokeRect.
	OpStrokeRect struct {
		Rect  graphics.Rect
		Paint Paint
	}
	// OpFillRRect records Canvas.FillRRect.
	OpFillRRect struct {
		RRect graphics.RRect
		Paint Paint
	}
	// OpStrokeRRect records Canvas.StrokeRRect.
	OpStrokeRRect struct {
		RRect graphics.RRect
		Paint Paint
	}
	// OpDrawLine records Canvas.DrawLine.
	OpDrawLine struct {
		Start, End graphics.Offset
		Paint      Paint
	}
	// OpDrawTextLayout records Canvas.DrawTextLayout.
	OpDrawTextLayout struct {
		Layout   *TextLayout
		Position graphics.Offset
	}
)

func (OpSave) Replay(c Canvas)    { c.Save() }
func (OpRestore) Replay(c Canvas) { c.Restore() }

func (op OpTranslate) Replay(c Canvas) { c.Translate(op.DX, op.DY) }
func (op OpTransform) Replay(c Canvas) { c.Transform(op.Matrix) }
func (op OpClipRect) Replay(c Canvas)  { c.ClipRect(op.Rect) }
func (op OpClear) Replay(c Canvas)     { c.Clear(op.Color) }

func (op OpFillRect) Replay(c Canvas)    { c.FillRect(op.Rect, op.Paint) }
func (op OpStrokeRect) Replay(c Canvas)  { c.StrokeRect(op.Rect, op.Paint) }
func (op OpFillRRect) Replay(c Canvas)   { c.FillRRect(op.RRect, op.Paint) }
func (op OpStrokeRRect) Replay(c Canvas) { c.StrokeRRect(op.RRect, op.Paint) }
func (op OpDrawLine) Replay(c Canvas)    { c.DrawLine(op.Start, op.End, op.Paint) }

func (op OpDrawTextLayout) Replay(c Canvas) { c.DrawTextLayout(op.Layout, op.Position) }

type recordingCanvas struct {
	recorder *PictureRecorder
}

func (c *recordingCanvas) Save()    { c.recorder.append(OpSave{}) }
func (c *recordingCanvas) Restore() { c.recorder.append(OpRestore{}) }

func (c *recordingCanvas) Translate(dx, dy float64) {
	c.recorder.append(OpTranslate{DX: dx, DY: dy})
}

func (c *recordingCanvas) Transform(m graphics.Affine) {
	c.recorder.append(OpTransform{Matrix: m})
}

func (c *recordingCanvas) ClipRect(rect graphics.Rect) {
	c.recorder.append(OpClipRect{Rect: rect})
}

func (c *recordingCanvas) Clear(color graphics.Color) {
	c.recorder.append(OpClear{Color: color})
}

func (c *recordingCanvas) FillRect(rect graphics.Rect, paint Paint) {
	c.recorder.append(OpFillRect{Rect: rect, Paint: paint})
}

func (c *recordingCanvas) StrokeRect(rect graphics.Rect, paint Paint) {
	c.recorder.append(OpStrokeRect{Rect: rect, Paint: paint})
}

func (c *recordingCanvas) FillRRect(rrect graphics.RRect, paint Paint) {
	c.recorder.append(OpFillRRect{RRect: rrect, Paint: paint})
}

func (c *recordingCanvas) StrokeRRect(rrect graphics.RRect, paint Paint) {
	c.recorder.append(OpStrokeRRect{RRect: rrect, Paint: paint})
}

func (c *recordingCanvas) DrawLine(start, end graphics.Offset, paint Paint) {
	c.recorder.append(OpDrawLine{Start: start, End: end, Paint: paint})
}

func (c *recordingCanvas) DrawTextLayout(layout *TextLayout, position graphics.Offset) {
	c.recorder.append(OpDrawTextLayout{Layout: layout, Position: position})
}
