package widgets

import (
	"math"

	"github.com/go-loom/loom/pkg/graphics"
	"github.com/go-loom/loom/pkg/rendering"
	"github.com/go-loom/loom/pkg/theme"
	"github.com/go-loom/loom/pkg/ui"
)

// labelInsets is the minimum padding added around a button's label.
var labelInsets = graphics.SymmetricInsets(8, 2)

// Button is a clickable button with a text label.
//
// Build returns true on the pass after the button was clicked, so the
// caller reacts to clicks where the button is declared:
//
//	if (widgets.Button{Label: "Save"}).Build(cx) {
//	    save()
//	}
//
// Styling comes from the Sheet; nil selects theme.Default. Sheet
// implementations must be comparable so prop changes can be detected.
type Button struct {
	// Label is the text displayed on the button.
	Label string
	// Disabled makes the button inert and fades its colors.
	Disabled bool
	// Sheet overrides the button's style sheet.
	Sheet theme.StyleSheet
}

// ButtonOf creates a button with the given label.
func ButtonOf(label string) Button {
	return Button{Label: label}
}

// WithDisabled returns a copy of the button with the given disabled state.
func (b Button) WithDisabled(disabled bool) Button {
	b.Disabled = disabled
	return b
}

// WithSheet returns a copy of the button with the given style sheet.
func (b Button) WithSheet(sheet theme.StyleSheet) Button {
	b.Sheet = sheet
	return b
}

// Build declares the button in the current pass and reports whether it
// was clicked since the previous declaration.
func (b Button) Build(cx *ui.Cx) bool {
	labelColor := b.sheet().Enabled().TextColor
	if b.Disabled {
		labelColor = b.sheet().Disabled().TextColor
	}
	label := Label{Text: b.Label, Style: rendering.TextStyle{Color: labelColor}}
	_, clicked := cx.RenderObjectWith(ui.Caller(1), b, func(cx *ui.Cx) {
		label.Build(cx)
	})
	return clicked
}

// CreateObject implements ui.Properties.
func (b Button) CreateObject() ui.RenderObject {
	return &buttonObject{props: b}
}

// Name implements ui.Properties.
func (b Button) Name() string { return "Button" }

func (b Button) sheet() theme.StyleSheet {
	if b.Sheet != nil {
		return b.Sheet
	}
	return theme.Default()
}

type buttonObject struct {
	props     Button
	labelSize graphics.Size
}

func (o *buttonObject) style(hot, active bool) theme.Style {
	return theme.StyleFor(o.props.sheet(), o.props.Disabled, hot, active)
}

func (o *buttonObject) Update(ctx *ui.UpdateCtx, props ui.Properties) {
	next := props.(Button)
	if next == o.props {
		return
	}
	o.props = next
	ctx.RequestLayout()
}

func (o *buttonObject) Event(ctx *ui.EventCtx, event ui.Event, children *ui.Children) {
	if !o.props.Disabled {
		switch event.Kind {
		case ui.PointerDown:
			if ctx.IsHot() && event.Button == ui.MouseButtonLeft {
				ctx.SetActive(true)
				ctx.RequestPaint()
			}
		case ui.PointerUp:
			if ctx.IsActive() && event.Button == ui.MouseButtonLeft {
				ctx.SetActive(false)
				if ctx.IsHot() {
					ctx.SubmitAction(true)
					ctx.SetHandled()
				}
				ctx.RequestPaint()
			}
		}
	}

	for i := 0; i < children.Len(); i++ {
		children.At(i).Event(ctx, event)
	}
}

func (o *buttonObject) Lifecycle(ctx *ui.LifeCycleCtx, event ui.LifeCycle) {
	if event.Kind == ui.LifeCycleHotChanged {
		ctx.RequestPaint()
	}
}

func (o *buttonObject) Layout(ctx *ui.LayoutCtx, bc graphics.Constraints, children *ui.Children) graphics.Size {
	style := o.style(ctx.IsHot(), ctx.IsActive())
	padding := graphics.Size{Width: labelInsets.Horizontal(), Height: labelInsets.Vertical()}
	labelBc := bc.Shrink(padding).Loosen()
	label := children.At(0)
	o.labelSize = label.Layout(ctx, labelBc)

	// Match the default text box height so the two align when adjacent.
	minHeight := style.MinHeight
	ctx.SetBaselineOffset(label.BaselineOffset() + labelInsets.Bottom)

	return bc.Constrain(graphics.Size{
		Width:  o.labelSize.Width + padding.Width,
		Height: math.Max(o.labelSize.Height+padding.Height, minHeight),
	})
}

func (o *buttonObject) Paint(ctx *ui.PaintCtx, children *ui.Children) {
	size := ctx.Size()
	style := o.style(ctx.IsHot(), ctx.IsActive())
	strokeWidth := style.BorderWidth

	rounded := graphics.RRectFromRectAndRadius(
		size.ToRect().Inset(strokeWidth/2),
		graphics.CircularRadius(style.BorderRadius),
	)

	canvas := ctx.Canvas()
	canvas.StrokeRRect(rounded, rendering.StrokePaint(style.BorderColor, strokeWidth))
	canvas.FillRRect(rounded, rendering.FillPaint(style.Background))

	labelOffset := graphics.Offset{
		X: (size.Width - o.labelSize.Width) / 2,
		Y: (size.Height - o.labelSize.Height) / 2,
	}
	ctx.WithSave(func(ctx *ui.PaintCtx) {
		ctx.Canvas().Translate(labelOffset.X, labelOffset.Y)
		children.At(0).Paint(ctx)
	})
}
