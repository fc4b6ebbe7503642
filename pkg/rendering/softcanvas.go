package rendering

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/go-loom/loom/pkg/graphics"
)

// SoftCanvas is a software rasterizing Canvas that draws into an
// *image.RGBA. It exists for headless rendering: demos, golden images,
// and end-to-end tests without a windowing host.
//
// The rasterizer handles translation and scaling exactly; rotated
// geometry is filled using its transformed bounding box.
type SoftCanvas struct {
	img   *image.RGBA
	state softState
	stack []softState
}

type softState struct {
	matrix graphics.Affine
	clip   graphics.Rect
}

// NewSoftCanvas creates a software canvas over a fresh RGBA image.
func NewSoftCanvas(width, height int) *SoftCanvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	return &SoftCanvas{
		img: img,
		state: softState{
			matrix: graphics.Identity(),
			clip:   graphics.RectFromLTWH(0, 0, float64(width), float64(height)),
		},
	}
}

// Image returns the backing image.
func (c *SoftCanvas) Image() *image.RGBA {
	return c.img
}

// Save implements Canvas.
func (c *SoftCanvas) Save() {
	c.stack = append(c.stack, c.state)
}

// Restore implements Canvas.
func (c *SoftCanvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.state = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// Translate implements Canvas.
func (c *SoftCanvas) Translate(dx, dy float64) {
	c.Transform(graphics.Translation(dx, dy))
}

// Transform implements Canvas.
func (c *SoftCanvas) Transform(m graphics.Affine) {
	c.state.matrix = c.state.matrix.Multiply(m)
}

// ClipRect implements Canvas.
func (c *SoftCanvas) ClipRect(rect graphics.Rect) {
	c.state.clip = intersectRect(c.state.clip, c.deviceBounds(rect))
}

// Clear implements Canvas.
func (c *SoftCanvas) Clear(col graphics.Color) {
	bounds := c.img.Bounds()
	rgba := toRGBA(col)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c.img.SetRGBA(x, y, rgba)
		}
	}
}

// FillRect implements Canvas.
func (c *SoftCanvas) FillRect(rect graphics.Rect, paint Paint) {
	c.fillDevice(c.deviceBounds(rect), paint.Color, nil)
}

// StrokeRect implements Canvas.
func (c *SoftCanvas) StrokeRect(rect graphics.Rect, paint Paint) {
	w := strokeWidth(paint)
	c.FillRect(graphics.Rect{Left: rect.Left, Top: rect.Top, Right: rect.Right, Bottom: rect.Top + w}, paint)
	c.FillRect(graphics.Rect{Left: rect.Left, Top: rect.Bottom - w, Right: rect.Right, Bottom: rect.Bottom}, paint)
	c.FillRect(graphics.Rect{Left: rect.Left, Top: rect.Top, Right: rect.Left + w, Bottom: rect.Bottom}, paint)
	c.FillRect(graphics.Rect{Left: rect.Right - w, Top: rect.Top, Right: rect.Right, Bottom: rect.Bottom}, paint)
}

// FillRRect implements Canvas.
func (c *SoftCanvas) FillRRect(rrect graphics.RRect, paint Paint) {
	radius := rrect.UniformRadius()
	device := c.deviceBounds(rrect.Rect)
	if radius <= 0 {
		c.fillDevice(device, paint.Color, nil)
		return
	}
	scale := c.approxScale()
	inside := roundedInsideTest(device, radius*scale)
	c.fillDevice(device, paint.Color, inside)
}

// StrokeRRect implements Canvas.
func (c *SoftCanvas) StrokeRRect(rrect graphics.RRect, paint Paint) {
	radius := rrect.UniformRadius()
	device := c.deviceBounds(rrect.Rect)
	w := strokeWidth(paint) * c.approxScale()
	scale := c.approxScale()
	outer := roundedInsideTest(device, radius*scale)
	innerRect := device.Inset(w)
	inner := roundedInsideTest(innerRect, math.Max(0, radius*scale-w))
	c.fillDevice(device, paint.Color, func(x, y float64) bool {
		if outer != nil && !outer(x, y) {
			return false
		}
		if innerRect.Width() <= 0 || innerRect.Height() <= 0 {
			return true
		}
		if !innerRect.Contains(graphics.Offset{X: x, Y: y}) {
			return true
		}
		return inner != nil && !inner(x, y)
	})
}

// DrawLine implements Canvas. Lines are rasterized by sampling along the
// segment; this is adequate for separators and debug overlays.
func (c *SoftCanvas) DrawLine(start, end graphics.Offset, paint Paint) {
	p0 := c.state.matrix.Apply(start)
	p1 := c.state.matrix.Apply(end)
	dx := p1.X - p0.X
	dy := p1.Y - p0.Y
	steps := int(math.Max(math.Abs(dx), math.Abs(dy))) + 1
	rgba := toRGBA(paint.Color)
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := p0.X + dx*t
		y := p0.Y + dy*t
		if c.state.clip.Contains(graphics.Offset{X: x, Y: y}) {
			blendPixel(c.img, int(x), int(y), rgba)
		}
	}
}

// DrawTextLayout implements Canvas. Glyphs are drawn when the layout's
// face wraps an x/image font.Face; other faces are measurement-only and
// render as a baseline marker so missing glyph support is visible rather
// than silent.
func (c *SoftCanvas) DrawTextLayout(layout *TextLayout, position graphics.Offset) {
	if layout == nil {
		return
	}
	xface, ok := layout.Face().(interface{ XFace() font.Face })
	if !ok {
		for i := range layout.Lines {
			baseline := position.Y + layout.LineHeight*float64(i) + layout.Ascent
			c.DrawLine(
				graphics.Offset{X: position.X, Y: baseline},
				graphics.Offset{X: position.X + layout.Lines[i].Width, Y: baseline},
				FillPaint(layout.Style.Color),
			)
		}
		return
	}
	origin := c.state.matrix.Apply(position)
	src := image.NewUniform(toRGBA(layout.Style.Color))
	for i, line := range layout.Lines {
		drawer := font.Drawer{
			Dst:  c.img,
			Src:  src,
			Face: xface.XFace(),
			Dot: fixed.P(
				int(origin.X+layout.LineOffset(i)),
				int(origin.Y+layout.LineHeight*float64(i)+layout.Ascent),
			),
		}
		drawer.DrawString(line.Text)
	}
}

// deviceBounds maps a local rect to device space as a bounding box.
func (c *SoftCanvas) deviceBounds(rect graphics.Rect) graphics.Rect {
	corners := [4]graphics.Offset{
		{X: rect.Left, Y: rect.Top},
		{X: rect.Right, Y: rect.Top},
		{X: rect.Left, Y: rect.Bottom},
		{X: rect.Right, Y: rect.Bottom},
	}
	out := graphics.Rect{Left: math.Inf(1), Top: math.Inf(1), Right: math.Inf(-1), Bottom: math.Inf(-1)}
	for _, corner := range corners {
		p := c.state.matrix.Apply(corner)
		out.Left = math.Min(out.Left, p.X)
		out.Top = math.Min(out.Top, p.Y)
		out.Right = math.Max(out.Right, p.X)
		out.Bottom = math.Max(out.Bottom, p.Y)
	}
	return out
}

// approxScale estimates the uniform scale factor of the current transform.
func (c *SoftCanvas) approxScale() float64 {
	m := c.state.matrix
	sx := math.Hypot(m.A, m.D)
	sy := math.Hypot(m.B, m.E)
	return (sx + sy) / 2
}

func (c *SoftCanvas) fillDevice(device graphics.Rect, col graphics.Color, inside func(x, y float64) bool) {
	clipped := intersectRect(device, c.state.clip)
	if clipped.Width() <= 0 || clipped.Height() <= 0 {
		return
	}
	rgba := toRGBA(col)
	minX := int(math.Floor(clipped.Left))
	maxX := int(math.Ceil(clipped.Right))
	minY := int(math.Floor(clipped.Top))
	maxY := int(math.Ceil(clipped.Bottom))
	for y := minY; y < maxY; y++ {
		for x := minX; x < maxX; x++ {
			cx := float64(x) + 0.5
			cy := float64(y) + 0.5
			if !clipped.Contains(graphics.Offset{X: cx, Y: cy}) {
				continue
			}
			if inside != nil && !inside(cx, cy) {
				continue
			}
			blendPixel(c.img, x, y, rgba)
		}
	}
}

// roundedInsideTest returns a pixel test for a rounded rect in device space,
// or nil when no rounding applies.
func roundedInsideTest(device graphics.Rect, radius float64) func(x, y float64) bool {
	if radius <= 0 {
		return nil
	}
	r := math.Min(radius, math.Min(device.Width(), device.Height())/2)
	return func(x, y float64) bool {
		var cx, cy float64
		switch {
		case x < device.Left+r && y < device.Top+r:
			cx, cy = device.Left+r, device.Top+r
		case x > device.Right-r && y < device.Top+r:
			cx, cy = device.Right-r, device.Top+r
		case x < device.Left+r && y > device.Bottom-r:
			cx, cy = device.Left+r, device.Bottom-r
		case x > device.Right-r && y > device.Bottom-r:
			cx, cy = device.Right-r, device.Bottom-r
		default:
			return true
		}
		return math.Hypot(x-cx, y-cy) <= r
	}
}

func strokeWidth(paint Paint) float64 {
	if paint.StrokeWidth > 0 {
		return paint.StrokeWidth
	}
	return 1
}

func intersectRect(a, b graphics.Rect) graphics.Rect {
	return graphics.Rect{
		Left:   math.Max(a.Left, b.Left),
		Top:    math.Max(a.Top, b.Top),
		Right:  math.Min(a.Right, b.Right),
		Bottom: math.Min(a.Bottom, b.Bottom),
	}
}

func toRGBA(c graphics.Color) color.RGBA {
	r, g, b, a := c.Components()
	return color.RGBA{R: r, G: g, B: b, A: a}
}

// blendPixel composites src over the destination pixel.
func blendPixel(img *image.RGBA, x, y int, src color.RGBA) {
	if !(image.Point{X: x, Y: y}).In(img.Bounds()) {
		return
	}
	if src.A == 0xFF {
		img.SetRGBA(x, y, src)
		return
	}
	if src.A == 0 {
		return
	}
	dst := img.RGBAAt(x, y)
	inv := 0xFF - uint32(src.A)
	blend := func(s, d uint8) uint8 {
		return uint8((uint32(s)*uint32(src.A) + uint32(d)*inv) / 0xFF)
	}
	img.SetRGBA(x, y, color.RGBA{
		R: blend(src.R, dst.R),
		G: blend(src.G, dst.G),
		B: blend(src.B, dst.B),
		A: uint8(0xFF - (inv*(0xFF-uint32(dst.A)))/0xFF),
	})
}
