package widgets

import (
	"math"

	"github.com/go-loom/loom/pkg/graphics"
	"github.com/go-loom/loom/pkg/ui"
)

// Axis selects the main direction of a linear container.
type Axis int

const (
	// AxisVertical stacks children top to bottom.
	AxisVertical Axis = iota
	// AxisHorizontal places children left to right.
	AxisHorizontal
)

// Flex lays out its children along one axis, separated by Spacing.
// Children keep their natural size on both axes; the cross-axis size is
// the largest child.
type Flex struct {
	Axis    Axis
	Spacing float64
}

// Column creates a vertical container with the given gap between children.
func Column(spacing float64) Flex {
	return Flex{Axis: AxisVertical, Spacing: spacing}
}

// Row creates a horizontal container with the given gap between children.
func Row(spacing float64) Flex {
	return Flex{Axis: AxisHorizontal, Spacing: spacing}
}

// Build declares the container with its content in the current pass.
func (f Flex) Build(cx *ui.Cx, content func(*ui.Cx)) {
	cx.RenderObjectWith(ui.Caller(1), f, content)
}

// CreateObject implements ui.Properties.
func (f Flex) CreateObject() ui.RenderObject {
	return &flexObject{props: f}
}

// Name implements ui.Properties.
func (f Flex) Name() string {
	if f.Axis == AxisHorizontal {
		return "Row"
	}
	return "Column"
}

type flexObject struct {
	props Flex
}

func (o *flexObject) Update(ctx *ui.UpdateCtx, props ui.Properties) {
	next := props.(Flex)
	if next == o.props {
		return
	}
	o.props = next
	ctx.RequestLayout()
}

func (o *flexObject) Event(ctx *ui.EventCtx, event ui.Event, children *ui.Children) {
	for i := 0; i < children.Len(); i++ {
		children.At(i).Event(ctx, event)
	}
}

func (o *flexObject) Lifecycle(_ *ui.LifeCycleCtx, _ ui.LifeCycle) {}

func (o *flexObject) Layout(ctx *ui.LayoutCtx, bc graphics.Constraints, children *ui.Children) graphics.Size {
	childBc := bc.Loosen()
	var main, cross float64
	for i := 0; i < children.Len(); i++ {
		child := children.At(i)
		size := child.Layout(ctx, childBc)
		if i > 0 {
			main += o.props.Spacing
		}
		if o.props.Axis == AxisVertical {
			child.SetOrigin(graphics.Offset{Y: main})
			main += size.Height
			cross = math.Max(cross, size.Width)
		} else {
			child.SetOrigin(graphics.Offset{X: main})
			main += size.Width
			cross = math.Max(cross, size.Height)
		}
	}
	if o.props.Axis == AxisVertical {
		return bc.Constrain(graphics.Size{Width: cross, Height: main})
	}
	return bc.Constrain(graphics.Size{Width: main, Height: cross})
}

func (o *flexObject) Paint(ctx *ui.PaintCtx, children *ui.Children) {
	for i := 0; i < children.Len(); i++ {
		children.At(i).Paint(ctx)
	}
}
