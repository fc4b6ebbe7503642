// Package uitest provides a headless harness for widget tests. A Tester
// drives the same build, event, layout, and paint passes as a real frame
// loop, recording paint output into a display list for assertions and
// optionally rasterizing it in software.
package uitest

import (
	"image"
	"testing"

	"github.com/go-loom/loom/pkg/graphics"
	"github.com/go-loom/loom/pkg/rendering"
	"github.com/go-loom/loom/pkg/ui"
)

const (
	// DefaultWidth is the default logical width of the test surface.
	DefaultWidth = 800
	// DefaultHeight is the default logical height of the test surface.
	DefaultHeight = 600
)

// Tester drives a Ui over an in-memory surface.
type Tester struct {
	t        *testing.T
	ui       *ui.Ui
	size     graphics.Size
	recorder *rendering.PictureRecorder
	list     *rendering.DisplayList
}

// New creates a tester with the default surface size and the built-in
// font registry.
func New(t *testing.T) *Tester {
	t.Helper()
	return &Tester{
		t:        t,
		ui:       ui.New(rendering.NewFontRegistry()),
		size:     graphics.Size{Width: DefaultWidth, Height: DefaultHeight},
		recorder: &rendering.PictureRecorder{},
	}
}

// SetSize changes the logical surface size for subsequent pumps.
func (t *Tester) SetSize(size graphics.Size) {
	t.size = size
}

// Ui returns the driven Ui for direct inspection.
func (t *Tester) Ui() *ui.Ui {
	return t.ui
}

// Pump runs one full frame: a build pass with the given function, then
// layout against the surface size, then paint into the recorder. The
// test fails if the build pass returns an error.
func (t *Tester) Pump(build func(*ui.Cx)) {
	t.t.Helper()
	if err := t.ui.Run(build); err != nil {
		t.t.Fatalf("build pass failed: %v", err)
	}
	t.ui.Layout(graphics.Tight(t.size))
	canvas := t.recorder.BeginRecording(t.size)
	t.ui.Paint(canvas)
	t.list = t.recorder.EndRecording()
}

// DisplayList returns the paint output of the most recent pump.
func (t *Tester) DisplayList() *rendering.DisplayList {
	return t.list
}

// Ops returns the recorded paint operations of the most recent pump.
func (t *Tester) Ops() []rendering.Op {
	if t.list == nil {
		return nil
	}
	return t.list.Ops()
}

// DrawnText returns the text of every text draw in the most recent paint,
// in draw order.
func (t *Tester) DrawnText() []string {
	var texts []string
	for _, op := range t.Ops() {
		if draw, ok := op.(rendering.OpDrawTextLayout); ok {
			texts = append(texts, draw.Layout.Text)
		}
	}
	return texts
}

// Render rasterizes the most recent paint output with the software canvas.
func (t *Tester) Render() *image.RGBA {
	canvas := rendering.NewSoftCanvas(int(t.size.Width), int(t.size.Height))
	if t.list != nil {
		t.list.Replay(canvas)
	}
	return canvas.Image()
}

// MoveTo dispatches a pointer move to the given surface position.
func (t *Tester) MoveTo(pos graphics.Offset) bool {
	return t.ui.Dispatch(ui.Event{Kind: ui.PointerMove, Position: pos})
}

// PressAt dispatches a left button press at the given surface position.
func (t *Tester) PressAt(pos graphics.Offset) bool {
	return t.ui.Dispatch(ui.Event{Kind: ui.PointerDown, Position: pos, Button: ui.MouseButtonLeft})
}

// ReleaseAt dispatches a left button release at the given surface position.
func (t *Tester) ReleaseAt(pos graphics.Offset) bool {
	return t.ui.Dispatch(ui.Event{Kind: ui.PointerUp, Position: pos, Button: ui.MouseButtonLeft})
}

// TapAt presses and releases at the given surface position.
func (t *Tester) TapAt(pos graphics.Offset) bool {
	t.PressAt(pos)
	return t.ReleaseAt(pos)
}
