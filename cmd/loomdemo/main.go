// Package main renders a small demo UI headlessly and writes it to a PNG.
// It exercises the full pipeline: declaration, reconciliation, layout,
// paint, and software rasterization, with an optional theme.yaml picked up
// from the working directory.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"

	"github.com/go-loom/loom/pkg/graphics"
	"github.com/go-loom/loom/pkg/rendering"
	"github.com/go-loom/loom/pkg/theme"
	"github.com/go-loom/loom/pkg/ui"
	"github.com/go-loom/loom/pkg/widgets"
)

func main() {
	var (
		out    = flag.String("o", "loomdemo.png", "output PNG path")
		width  = flag.Int("width", 320, "surface width in pixels")
		height = flag.Int("height", 240, "surface height in pixels")
	)
	flag.Parse()

	if err := run(*out, *width, *height); err != nil {
		fmt.Fprintf(os.Stderr, "loomdemo: %v\n", err)
		os.Exit(1)
	}
}

func run(out string, width, height int) error {
	cfg, err := theme.LoadOptional(".")
	if err != nil {
		return err
	}
	sheet, err := cfg.ButtonSheet()
	if err != nil {
		return err
	}

	clicks := 0
	build := func(cx *ui.Cx) {
		widgets.PaddingOf(12).Build(cx, func(cx *ui.Cx) {
			widgets.Column(8).Build(cx, func(cx *ui.Cx) {
				widgets.LabelOf("loom demo").Build(cx)
				widgets.Row(8).Build(cx, func(cx *ui.Cx) {
					if widgets.ButtonOf("Click me").WithSheet(sheet).Build(cx) {
						clicks++
					}
					widgets.ButtonOf("Disabled").WithSheet(sheet).WithDisabled(true).Build(cx)
				})
				widgets.LabelOf(fmt.Sprintf("clicks: %d", clicks)).Build(cx)
			})
		})
	}

	u := ui.New(rendering.NewFontRegistry())
	size := graphics.Size{Width: float64(width), Height: float64(height)}

	// Two frames with a click in between, so the rendered counter shows
	// the action round trip.
	if err := frame(u, build, size, nil); err != nil {
		return err
	}
	center := clickTarget(u)
	u.Dispatch(ui.Event{Kind: ui.PointerDown, Position: center, Button: ui.MouseButtonLeft})
	u.Dispatch(ui.Event{Kind: ui.PointerUp, Position: center, Button: ui.MouseButtonLeft})

	canvas := rendering.NewSoftCanvas(width, height)
	canvas.Clear(graphics.ColorWhite)
	if err := frame(u, build, size, canvas); err != nil {
		return err
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := png.Encode(f, canvas.Image()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func frame(u *ui.Ui, build func(*ui.Cx), size graphics.Size, canvas rendering.Canvas) error {
	if err := u.Run(build); err != nil {
		return err
	}
	u.Layout(graphics.Tight(size))
	if canvas != nil {
		u.Paint(canvas)
	}
	return nil
}

// clickTarget finds the center of the first button in the tree.
func clickTarget(u *ui.Ui) graphics.Offset {
	var found *graphics.Offset
	var walk func(ch ui.Child, origin graphics.Offset)
	walk = func(ch ui.Child, origin graphics.Offset) {
		origin = origin.Add(ch.Origin())
		if found == nil && ch.Name() == "Button" {
			size := ch.Size()
			center := origin.Add(graphics.Offset{X: size.Width / 2, Y: size.Height / 2})
			found = &center
			return
		}
		children := ch.Children()
		for i := 0; i < children.Len(); i++ {
			walk(children.At(i), origin)
		}
	}
	root := u.Root().Children()
	for i := 0; i < root.Len(); i++ {
		walk(root.At(i), graphics.Offset{})
	}
	if found == nil {
		return graphics.Offset{}
	}
	return *found
}
