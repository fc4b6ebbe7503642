// Package app connects a Ui to a windowing host. The host owns the event
// loop and the surface; App adapts host callbacks into the pass protocol
// and tells the host when a new frame is worth scheduling.
package app

import (
	"github.com/go-loom/loom/pkg/graphics"
	"github.com/go-loom/loom/pkg/rendering"
	"github.com/go-loom/loom/pkg/ui"
)

// Host is the surface owner. RequestFrame asks it to schedule a Frame
// call soon; calls may be coalesced.
type Host interface {
	RequestFrame()
}

// App owns a Ui and the application's build function, and drives passes
// from host callbacks. All methods must be called from the host's event
// loop goroutine.
type App struct {
	ui    *ui.Ui
	host  Host
	build func(*ui.Cx)
	size  graphics.Size
}

// New creates an App around the given host and build function. The text
// factory measures text during layout; rendering.NewFontRegistry is the
// common choice.
func New(host Host, text rendering.TextFactory, build func(*ui.Cx)) *App {
	return &App{
		ui:    ui.New(text),
		host:  host,
		build: build,
	}
}

// Ui returns the driven Ui.
func (a *App) Ui() *ui.Ui {
	return a.ui
}

// Resize records a new surface size and schedules a frame.
func (a *App) Resize(size graphics.Size) {
	if a.size == size {
		return
	}
	a.size = size
	a.host.RequestFrame()
}

// PointerEvent routes a pointer event into the dispatch phase and reports
// whether any node handled it. A handled event always schedules a frame,
// since the submitted action must be delivered through the next build.
func (a *App) PointerEvent(event ui.Event) bool {
	handled := a.ui.Dispatch(event)
	if handled || a.ui.NeedsLayout() || a.ui.NeedsPaint() {
		a.host.RequestFrame()
	}
	return handled
}

// Frame runs one full frame onto the canvas: build, layout against the
// current surface size, paint. A build failure aborts the frame and is
// returned; the previous frame's content stays valid.
func (a *App) Frame(canvas rendering.Canvas) error {
	if err := a.ui.Run(a.build); err != nil {
		return err
	}
	a.ui.Layout(graphics.Tight(a.size))
	a.ui.Paint(canvas)
	return nil
}
