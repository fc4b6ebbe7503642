package widgets

import (
	"github.com/go-loom/loom/pkg/graphics"
	"github.com/go-loom/loom/pkg/ui"
)

// Padding insets its content by the given edge insets.
type Padding struct {
	Insets graphics.Insets
}

// PaddingOf creates uniform padding.
func PaddingOf(amount float64) Padding {
	return Padding{Insets: graphics.UniformInsets(amount)}
}

// Build declares the padding with its content in the current pass.
func (p Padding) Build(cx *ui.Cx, content func(*ui.Cx)) {
	cx.RenderObjectWith(ui.Caller(1), p, content)
}

// CreateObject implements ui.Properties.
func (p Padding) CreateObject() ui.RenderObject {
	return &paddingObject{props: p}
}

// Name implements ui.Properties.
func (p Padding) Name() string { return "Padding" }

type paddingObject struct {
	props Padding
}

func (o *paddingObject) Update(ctx *ui.UpdateCtx, props ui.Properties) {
	next := props.(Padding)
	if next == o.props {
		return
	}
	o.props = next
	ctx.RequestLayout()
}

func (o *paddingObject) Event(ctx *ui.EventCtx, event ui.Event, children *ui.Children) {
	for i := 0; i < children.Len(); i++ {
		children.At(i).Event(ctx, event)
	}
}

func (o *paddingObject) Lifecycle(_ *ui.LifeCycleCtx, _ ui.LifeCycle) {}

func (o *paddingObject) Layout(ctx *ui.LayoutCtx, bc graphics.Constraints, children *ui.Children) graphics.Size {
	insets := o.props.Insets
	pad := graphics.Size{Width: insets.Horizontal(), Height: insets.Vertical()}
	if children.Len() == 0 {
		return bc.Constrain(pad)
	}
	child := children.At(0)
	size := child.Layout(ctx, bc.Shrink(pad).Loosen())
	child.SetOrigin(insets.TopLeft())
	ctx.SetBaselineOffset(child.BaselineOffset() + insets.Bottom)
	return bc.Constrain(graphics.Size{Width: size.Width + pad.Width, Height: size.Height + pad.Height})
}

func (o *paddingObject) Paint(ctx *ui.PaintCtx, children *ui.Children) {
	for i := 0; i < children.Len(); i++ {
		children.At(i).Paint(ctx)
	}
}
