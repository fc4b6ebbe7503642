package widgets

import (
	"github.com/go-loom/loom/pkg/graphics"
	"github.com/go-loom/loom/pkg/rendering"
	"github.com/go-loom/loom/pkg/ui"
)

// Label displays a single run of styled text.
//
// Example:
//
//	LabelOf("Hello").WithStyle(rendering.TextStyle{FontSize: 14}).Build(cx)
type Label struct {
	// Text is the string to display. Embedded newlines start new lines;
	// text also wraps to the width constraint.
	Text string
	// Style controls color, font, size, and alignment.
	Style rendering.TextStyle
}

// LabelOf creates a label with the given text and default styling.
func LabelOf(text string) Label {
	return Label{Text: text}
}

// WithStyle returns a copy of the label with the specified text style.
func (l Label) WithStyle(style rendering.TextStyle) Label {
	l.Style = style
	return l
}

// Build declares the label in the current pass.
func (l Label) Build(cx *ui.Cx) {
	cx.RenderObject(ui.Caller(1), l)
}

// CreateObject implements ui.Properties.
func (l Label) CreateObject() ui.RenderObject {
	return &labelObject{props: l}
}

// Name implements ui.Properties.
func (l Label) Name() string { return "Label" }

type labelObject struct {
	props Label

	// layout is the measured text, cached until the text, style, or width
	// constraint changes.
	layout   *rendering.TextLayout
	maxWidth float64
}

func (o *labelObject) Update(ctx *ui.UpdateCtx, props ui.Properties) {
	next := props.(Label)
	if next == o.props {
		return
	}
	o.props = next
	o.layout = nil
	ctx.RequestLayout()
}

func (o *labelObject) Event(_ *ui.EventCtx, _ ui.Event, _ *ui.Children) {}

func (o *labelObject) Lifecycle(_ *ui.LifeCycleCtx, _ ui.LifeCycle) {}

func (o *labelObject) Layout(ctx *ui.LayoutCtx, bc graphics.Constraints, _ *ui.Children) graphics.Size {
	maxWidth := bc.Max.Width
	if o.layout == nil || o.maxWidth != maxWidth {
		layout, err := ctx.Text().NewTextLayout(o.props.Text, o.props.Style, maxWidth)
		if err != nil {
			// Reported by the factory; degrade to an empty box.
			o.layout = nil
			return bc.Constrain(graphics.Size{})
		}
		o.layout = layout
		o.maxWidth = maxWidth
	}
	ctx.SetBaselineOffset(o.layout.Size.Height - o.layout.Baseline())
	return bc.Constrain(o.layout.Size)
}

func (o *labelObject) Paint(ctx *ui.PaintCtx, _ *ui.Children) {
	if o.layout == nil {
		return
	}
	ctx.Canvas().DrawTextLayout(o.layout, graphics.Offset{})
}
