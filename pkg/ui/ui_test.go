package ui

import (
	stderrors "errors"
	"testing"

	"github.com/go-loom/loom/pkg/errors"
	"github.com/go-loom/loom/pkg/graphics"
	"github.com/go-loom/loom/pkg/rendering"
)

// Fixed site tokens stand in for call-site identity where tests need to
// control it explicitly; Caller-derived tokens are exercised separately.
const (
	siteBox CallSite = 0x1000
	sitePad CallSite = 0x2000
	siteAlt CallSite = 0x3000
)

type boxProps struct {
	Width, Height float64
	Tag           string
}

func (p boxProps) CreateObject() RenderObject { return &boxObject{props: p} }
func (p boxProps) Name() string               { return "Box" }

type boxObject struct {
	props      boxProps
	updates    int
	events     int
	hotChanges []bool
}

func (o *boxObject) Update(ctx *UpdateCtx, props Properties) {
	next := props.(boxProps)
	o.updates++
	if next == o.props {
		return
	}
	if next.Width != o.props.Width || next.Height != o.props.Height {
		ctx.RequestLayout()
	} else {
		ctx.RequestPaint()
	}
	o.props = next
}

func (o *boxObject) Event(ctx *EventCtx, event Event, _ *Children) {
	o.events++
	switch event.Kind {
	case PointerDown:
		if ctx.IsHot() && event.Button == MouseButtonLeft {
			ctx.SetActive(true)
			ctx.RequestPaint()
		}
	case PointerUp:
		if ctx.IsActive() {
			ctx.SetActive(false)
			if ctx.IsHot() {
				ctx.SubmitAction("clicked:" + o.props.Tag)
				ctx.SetHandled()
			}
			ctx.RequestPaint()
		}
	}
}

func (o *boxObject) Lifecycle(_ *LifeCycleCtx, event LifeCycle) {
	if event.Kind == LifeCycleHotChanged {
		o.hotChanges = append(o.hotChanges, event.Hot)
	}
}

func (o *boxObject) Layout(_ *LayoutCtx, bc graphics.Constraints, _ *Children) graphics.Size {
	return bc.Constrain(graphics.Size{Width: o.props.Width, Height: o.props.Height})
}

func (o *boxObject) Paint(ctx *PaintCtx, _ *Children) {
	ctx.Canvas().FillRect(ctx.Size().ToRect(), rendering.FillPaint(graphics.ColorBlack))
}

type padProps struct {
	Inset float64
}

func (p padProps) CreateObject() RenderObject { return &padObject{props: p} }
func (p padProps) Name() string               { return "Pad" }

type padObject struct {
	props padProps
}

func (o *padObject) Update(ctx *UpdateCtx, props Properties) {
	next := props.(padProps)
	if next == o.props {
		return
	}
	o.props = next
	ctx.RequestLayout()
}

func (o *padObject) Event(ctx *EventCtx, event Event, children *Children) {
	for i := 0; i < children.Len(); i++ {
		children.At(i).Event(ctx, event)
	}
}

func (o *padObject) Lifecycle(_ *LifeCycleCtx, _ LifeCycle) {}

func (o *padObject) Layout(ctx *LayoutCtx, bc graphics.Constraints, children *Children) graphics.Size {
	pad := graphics.Size{Width: 2 * o.props.Inset, Height: 2 * o.props.Inset}
	if children.Len() == 0 {
		return bc.Constrain(pad)
	}
	child := children.At(0)
	size := child.Layout(ctx, bc.Shrink(pad).Loosen())
	child.SetOrigin(graphics.Offset{X: o.props.Inset, Y: o.props.Inset})
	return bc.Constrain(graphics.Size{Width: size.Width + pad.Width, Height: size.Height + pad.Height})
}

func (o *padObject) Paint(ctx *PaintCtx, children *Children) {
	for i := 0; i < children.Len(); i++ {
		children.At(i).Paint(ctx)
	}
}

// altProps shares the Box call site in the type-change test but creates a
// different object type.
type altProps struct{}

func (altProps) CreateObject() RenderObject { return &altObject{} }
func (altProps) Name() string               { return "Alt" }

type altObject struct{}

func (*altObject) Update(_ *UpdateCtx, _ Properties)       {}
func (*altObject) Event(_ *EventCtx, _ Event, _ *Children) {}
func (*altObject) Lifecycle(_ *LifeCycleCtx, _ LifeCycle)  {}
func (*altObject) Paint(_ *PaintCtx, _ *Children)          {}
func (*altObject) Layout(_ *LayoutCtx, bc graphics.Constraints, _ *Children) graphics.Size {
	return bc.Constrain(graphics.Size{})
}

// oversizeProps creates an object that violates its layout constraints.
type oversizeProps struct{}

func (oversizeProps) CreateObject() RenderObject { return &oversizeObject{} }
func (oversizeProps) Name() string               { return "Oversize" }

type oversizeObject struct{}

func (*oversizeObject) Update(_ *UpdateCtx, _ Properties)       {}
func (*oversizeObject) Event(_ *EventCtx, _ Event, _ *Children) {}
func (*oversizeObject) Lifecycle(_ *LifeCycleCtx, _ LifeCycle)  {}
func (*oversizeObject) Paint(_ *PaintCtx, _ *Children)          {}
func (*oversizeObject) Layout(_ *LayoutCtx, _ graphics.Constraints, _ *Children) graphics.Size {
	return graphics.Size{Width: 1000, Height: 1000}
}

// shieldProps creates an object that handles every pointer event, standing
// in for an overlay that swallows input.
type shieldProps struct{}

func (shieldProps) CreateObject() RenderObject { return &shieldObject{} }
func (shieldProps) Name() string               { return "Shield" }

type shieldObject struct{}

func (*shieldObject) Update(_ *UpdateCtx, _ Properties)      {}
func (*shieldObject) Lifecycle(_ *LifeCycleCtx, _ LifeCycle) {}
func (*shieldObject) Paint(_ *PaintCtx, _ *Children)         {}
func (*shieldObject) Event(ctx *EventCtx, event Event, _ *Children) {
	if event.isPointer() {
		ctx.SetHandled()
	}
}
func (*shieldObject) Layout(_ *LayoutCtx, bc graphics.Constraints, _ *Children) graphics.Size {
	return bc.Constrain(graphics.Size{Width: 100, Height: 100})
}

func boxAt(t *testing.T, u *Ui, i int) *boxObject {
	t.Helper()
	children := u.Root().Children()
	if i >= children.Len() {
		t.Fatalf("want child %d, tree has %d children", i, children.Len())
	}
	obj, ok := ObjectAs[*boxObject](children.At(i))
	if !ok {
		t.Fatalf("child %d is %s, not a box", i, children.At(i).Name())
	}
	return obj
}

func pump(t *testing.T, u *Ui, build func(*Cx)) {
	t.Helper()
	if err := u.Run(build); err != nil {
		t.Fatalf("build pass failed: %v", err)
	}
}

func TestIdentityStableAcrossPasses(t *testing.T) {
	u := New(nil)
	build := func(cx *Cx) {
		cx.RenderObject(siteBox, boxProps{Width: 10, Height: 10, Tag: "a"})
	}
	pump(t, u, build)
	first := boxAt(t, u, 0)
	for i := 0; i < 5; i++ {
		pump(t, u, build)
	}
	if got := boxAt(t, u, 0); got != first {
		t.Error("object identity changed across passes with a stable declaration")
	}
	if first.updates != 5 {
		t.Errorf("updates = %d, want 5", first.updates)
	}
}

func TestCallerSiteWithOccurrenceCounter(t *testing.T) {
	u := New(nil)
	declare := func(cx *Cx, p boxProps) {
		cx.RenderObject(Caller(1), p)
	}
	build := func(cx *Cx) {
		for _, tag := range []string{"a", "b", "c"} {
			declare(cx, boxProps{Width: 5, Height: 5, Tag: tag})
		}
	}
	pump(t, u, build)
	if n := u.Root().Children().Len(); n != 3 {
		t.Fatalf("children = %d, want 3", n)
	}
	objs := []*boxObject{boxAt(t, u, 0), boxAt(t, u, 1), boxAt(t, u, 2)}
	pump(t, u, build)
	for i, obj := range objs {
		if boxAt(t, u, i) != obj {
			t.Errorf("child %d lost identity across passes", i)
		}
	}
}

func TestUpdateNoOpKeepsCleanFlags(t *testing.T) {
	u := New(nil)
	build := func(cx *Cx) {
		cx.RenderObject(siteBox, boxProps{Width: 10, Height: 10})
	}
	pump(t, u, build)
	u.Layout(graphics.Loose(graphics.Size{Width: 100, Height: 100}))
	recorder := &rendering.PictureRecorder{}
	u.Paint(recorder.BeginRecording(graphics.Size{Width: 100, Height: 100}))
	recorder.EndRecording()

	if u.NeedsLayout() || u.NeedsPaint() {
		t.Fatal("flags dirty after layout and paint")
	}
	pump(t, u, build)
	if u.NeedsLayout() {
		t.Error("unchanged props requested layout")
	}
	if u.NeedsPaint() {
		t.Error("unchanged props requested paint")
	}
}

func TestSizeChangeRequestsLayout(t *testing.T) {
	u := New(nil)
	pump(t, u, func(cx *Cx) {
		cx.RenderObject(siteBox, boxProps{Width: 10, Height: 10})
	})
	u.Layout(graphics.Loose(graphics.Size{Width: 100, Height: 100}))

	pump(t, u, func(cx *Cx) {
		cx.RenderObject(siteBox, boxProps{Width: 20, Height: 10})
	})
	if !u.NeedsLayout() {
		t.Fatal("size change did not request layout")
	}
	size := u.Layout(graphics.Loose(graphics.Size{Width: 100, Height: 100}))
	if size.Width != 20 {
		t.Errorf("root width = %v, want 20", size.Width)
	}
}

func TestPruneAndRecreate(t *testing.T) {
	u := New(nil)
	build := func(second bool) func(*Cx) {
		return func(cx *Cx) {
			cx.RenderObject(siteBox, boxProps{Width: 10, Height: 10, Tag: "keep"})
			if second {
				cx.RenderObject(sitePad, boxProps{Width: 5, Height: 5, Tag: "cond"})
			}
		}
	}
	pump(t, u, build(true))
	kept := boxAt(t, u, 0)
	removed := boxAt(t, u, 1)

	pump(t, u, build(false))
	if n := u.Root().Children().Len(); n != 1 {
		t.Fatalf("children after prune = %d, want 1", n)
	}
	if boxAt(t, u, 0) != kept {
		t.Error("surviving child lost identity")
	}
	if !u.NeedsLayout() {
		t.Error("pruning did not request layout")
	}

	pump(t, u, build(true))
	if boxAt(t, u, 1) == removed {
		t.Error("pruned child came back with retained state")
	}
}

func TestKeyedReorderPreservesState(t *testing.T) {
	u := New(nil)
	build := func(tags []string) func(*Cx) {
		return func(cx *Cx) {
			for _, tag := range tags {
				cx.KeyedRenderObject(siteBox, tag, boxProps{Width: 10, Height: 10, Tag: tag}, nil)
			}
		}
	}
	pump(t, u, build([]string{"a", "b", "c"}))
	a, b, c := boxAt(t, u, 0), boxAt(t, u, 1), boxAt(t, u, 2)

	pump(t, u, build([]string{"c", "a", "b"}))
	if boxAt(t, u, 0) != c || boxAt(t, u, 1) != a || boxAt(t, u, 2) != b {
		t.Error("keyed children did not follow their keys across a reorder")
	}
}

func TestTypeChangeRecreatesObject(t *testing.T) {
	u := New(nil)
	pump(t, u, func(cx *Cx) {
		cx.RenderObject(siteAlt, boxProps{Width: 10, Height: 10})
	})
	if _, ok := ObjectAs[*boxObject](u.Root().Children().At(0)); !ok {
		t.Fatal("expected a box object")
	}

	pump(t, u, func(cx *Cx) {
		cx.RenderObject(siteAlt, altProps{})
	})
	if n := u.Root().Children().Len(); n != 1 {
		t.Fatalf("children = %d, want 1", n)
	}
	if _, ok := ObjectAs[*altObject](u.Root().Children().At(0)); !ok {
		t.Error("type change did not recreate the object")
	}
}

func TestClickActionRoundTrip(t *testing.T) {
	u := New(nil)
	build := func(cx *Cx) {
		cx.RenderObject(siteBox, boxProps{Width: 50, Height: 20, Tag: "go"})
	}
	pump(t, u, build)
	u.Layout(graphics.Loose(graphics.Size{Width: 100, Height: 100}))

	inside := graphics.Offset{X: 10, Y: 10}
	u.Dispatch(Event{Kind: PointerMove, Position: inside})
	u.Dispatch(Event{Kind: PointerDown, Position: inside, Button: MouseButtonLeft})
	if !u.Dispatch(Event{Kind: PointerUp, Position: inside, Button: MouseButtonLeft}) {
		t.Fatal("click release was not handled")
	}

	var action any
	var ok bool
	pump(t, u, func(cx *Cx) {
		action, ok = cx.RenderObject(siteBox, boxProps{Width: 50, Height: 20, Tag: "go"})
	})
	if !ok || action != "clicked:go" {
		t.Fatalf("action = %v, %v; want clicked:go, true", action, ok)
	}

	// The action is consumed by the declaration that observed it.
	pump(t, u, func(cx *Cx) {
		_, ok = cx.RenderObject(siteBox, boxProps{Width: 50, Height: 20, Tag: "go"})
	})
	if ok {
		t.Error("action reported twice")
	}
}

func TestReleaseOutsideDoesNotClick(t *testing.T) {
	u := New(nil)
	pump(t, u, func(cx *Cx) {
		cx.RenderObject(siteBox, boxProps{Width: 50, Height: 20, Tag: "go"})
	})
	u.Layout(graphics.Loose(graphics.Size{Width: 100, Height: 100}))

	u.Dispatch(Event{Kind: PointerDown, Position: graphics.Offset{X: 10, Y: 10}, Button: MouseButtonLeft})
	u.Dispatch(Event{Kind: PointerUp, Position: graphics.Offset{X: 90, Y: 90}, Button: MouseButtonLeft})

	var ok bool
	pump(t, u, func(cx *Cx) {
		_, ok = cx.RenderObject(siteBox, boxProps{Width: 50, Height: 20, Tag: "go"})
	})
	if ok {
		t.Error("release outside the node still produced an action")
	}
	if boxAt(t, u, 0).props.Tag != "go" {
		t.Fatal("fixture broke")
	}
}

func TestHandledStopsPropagation(t *testing.T) {
	u := New(nil)
	pump(t, u, func(cx *Cx) {
		cx.RenderObject(siteBox, boxProps{Width: 50, Height: 50, Tag: "front"})
		cx.RenderObject(sitePad, boxProps{Width: 50, Height: 50, Tag: "back"})
	})
	u.Layout(graphics.Loose(graphics.Size{Width: 100, Height: 100}))

	front, back := boxAt(t, u, 0), boxAt(t, u, 1)
	inside := graphics.Offset{X: 10, Y: 10}
	u.Dispatch(Event{Kind: PointerDown, Position: inside, Button: MouseButtonLeft})
	u.Dispatch(Event{Kind: PointerUp, Position: inside, Button: MouseButtonLeft})

	if front.events != 2 {
		t.Errorf("front events = %d, want 2", front.events)
	}
	// The release was handled by the front child, so the back child only
	// saw the press.
	if back.events != 1 {
		t.Errorf("back events = %d, want 1", back.events)
	}
}

func TestHotLifecycleOnMove(t *testing.T) {
	u := New(nil)
	pump(t, u, func(cx *Cx) {
		cx.RenderObject(siteBox, boxProps{Width: 20, Height: 20})
	})
	u.Layout(graphics.Loose(graphics.Size{Width: 100, Height: 100}))
	box := boxAt(t, u, 0)

	u.Dispatch(Event{Kind: PointerMove, Position: graphics.Offset{X: 5, Y: 5}})
	u.Dispatch(Event{Kind: PointerMove, Position: graphics.Offset{X: 6, Y: 6}})
	u.Dispatch(Event{Kind: PointerMove, Position: graphics.Offset{X: 50, Y: 50}})

	want := []bool{true, false}
	if len(box.hotChanges) != len(want) {
		t.Fatalf("hot changes = %v, want %v", box.hotChanges, want)
	}
	for i := range want {
		if box.hotChanges[i] != want[i] {
			t.Fatalf("hot changes = %v, want %v", box.hotChanges, want)
		}
	}
}

func TestHandledEventStillUpdatesHot(t *testing.T) {
	u := New(nil)
	pump(t, u, func(cx *Cx) {
		cx.RenderObject(siteAlt, shieldProps{})
		cx.RenderObjectWith(sitePad, padProps{Inset: 10}, func(cx *Cx) {
			cx.RenderObject(siteBox, boxProps{Width: 20, Height: 20})
		})
	})
	u.Layout(graphics.Loose(graphics.Size{Width: 100, Height: 100}))

	pad := u.Root().Children().At(1)
	inner, ok := ObjectAs[*boxObject](pad.Children().At(0))
	if !ok {
		t.Fatal("inner child is not a box")
	}

	// The shield handles both moves; hot state must track anyway.
	u.Dispatch(Event{Kind: PointerMove, Position: graphics.Offset{X: 15, Y: 15}})
	if !pad.Children().At(0).IsHot() {
		t.Fatal("handled move did not refresh hot state behind the shield")
	}
	u.Dispatch(Event{Kind: PointerMove, Position: graphics.Offset{X: 90, Y: 90}})
	if pad.Children().At(0).IsHot() {
		t.Error("node kept a stale hot flag after the pointer left")
	}
	want := []bool{true, false}
	if len(inner.hotChanges) != len(want) {
		t.Fatalf("hot changes = %v, want %v", inner.hotChanges, want)
	}
	for i := range want {
		if inner.hotChanges[i] != want[i] {
			t.Fatalf("hot changes = %v, want %v", inner.hotChanges, want)
		}
	}
}

func TestHotExcludesTrailingEdges(t *testing.T) {
	u := New(nil)
	pump(t, u, func(cx *Cx) {
		cx.RenderObject(siteBox, boxProps{Width: 20, Height: 20})
	})
	u.Layout(graphics.Loose(graphics.Size{Width: 100, Height: 100}))

	u.Dispatch(Event{Kind: PointerMove, Position: graphics.Offset{X: 0, Y: 0}})
	if !u.Root().Children().At(0).IsHot() {
		t.Error("leading edge should be inside the node")
	}
	// The shared boundary pixel belongs to an adjacent node, never both.
	u.Dispatch(Event{Kind: PointerMove, Position: graphics.Offset{X: 20, Y: 10}})
	if u.Root().Children().At(0).IsHot() {
		t.Error("trailing edge should be outside the node")
	}
}

func TestEventTranslationThroughContainer(t *testing.T) {
	u := New(nil)
	pump(t, u, func(cx *Cx) {
		cx.RenderObjectWith(sitePad, padProps{Inset: 10}, func(cx *Cx) {
			cx.RenderObject(siteBox, boxProps{Width: 20, Height: 20, Tag: "inner"})
		})
	})
	u.Layout(graphics.Loose(graphics.Size{Width: 100, Height: 100}))

	pad := u.Root().Children().At(0)
	inner, ok := ObjectAs[*boxObject](pad.Children().At(0))
	if !ok {
		t.Fatal("inner child is not a box")
	}

	// (5,5) is inside the pad but outside the inset child.
	u.Dispatch(Event{Kind: PointerMove, Position: graphics.Offset{X: 5, Y: 5}})
	if pad.Children().At(0).IsHot() {
		t.Error("child hot although the pointer is over the container's chrome")
	}
	// (15,15) lands at (5,5) in the child's space.
	u.Dispatch(Event{Kind: PointerMove, Position: graphics.Offset{X: 15, Y: 15}})
	if !pad.Children().At(0).IsHot() {
		t.Error("child not hot after a move over its translated bounds")
	}
	if len(inner.hotChanges) != 1 || !inner.hotChanges[0] {
		t.Errorf("hot changes = %v, want [true]", inner.hotChanges)
	}
}

func TestLayoutClampsContractViolation(t *testing.T) {
	u := New(nil)
	pump(t, u, func(cx *Cx) {
		cx.RenderObject(siteBox, oversizeProps{})
	})
	u.Layout(graphics.Loose(graphics.Size{Width: 100, Height: 80}))

	size := u.Root().Children().At(0).Size()
	if size.Width != 100 || size.Height != 80 {
		t.Errorf("size = %v, want clamped to 100x80", size)
	}
}

func TestPaintScopesTransform(t *testing.T) {
	u := New(nil)
	pump(t, u, func(cx *Cx) {
		cx.RenderObjectWith(sitePad, padProps{Inset: 10}, func(cx *Cx) {
			cx.RenderObject(siteBox, boxProps{Width: 20, Height: 20})
		})
	})
	u.Layout(graphics.Loose(graphics.Size{Width: 100, Height: 100}))

	recorder := &rendering.PictureRecorder{}
	u.Paint(recorder.BeginRecording(graphics.Size{Width: 100, Height: 100}))
	ops := recorder.EndRecording().Ops()

	saves, restores := 0, 0
	sawInset := false
	for _, op := range ops {
		switch op := op.(type) {
		case rendering.OpSave:
			saves++
		case rendering.OpRestore:
			restores++
		case rendering.OpTranslate:
			if op.DX == 10 && op.DY == 10 {
				sawInset = true
			}
		}
	}
	if saves == 0 || saves != restores {
		t.Errorf("saves = %d, restores = %d; want equal and non-zero", saves, restores)
	}
	if !sawInset {
		t.Error("child paint was not translated by its origin")
	}
	if u.NeedsPaint() {
		t.Error("paint pass left the dirty flag set")
	}
}

type recordingHandler struct {
	pass []*errors.PassError
}

func (h *recordingHandler) HandleError(_ *errors.Error)      {}
func (h *recordingHandler) HandlePanic(_ *errors.PanicError) {}
func (h *recordingHandler) HandlePassError(err *errors.PassError) {
	h.pass = append(h.pass, err)
}

func TestBuildPanicReportedAndRecovered(t *testing.T) {
	handler := &recordingHandler{}
	errors.SetHandler(handler)
	defer errors.SetHandler(nil)

	u := New(nil)
	pump(t, u, func(cx *Cx) {
		cx.RenderObject(siteBox, boxProps{Width: 10, Height: 10, Tag: "keep"})
		cx.RenderObject(siteAlt, boxProps{Width: 5, Height: 5, Tag: "other"})
	})
	kept := boxAt(t, u, 0)

	err := u.Run(func(cx *Cx) {
		cx.RenderObject(siteBox, boxProps{Width: 10, Height: 10, Tag: "keep"})
		cx.RenderObjectWith(sitePad, padProps{Inset: 1}, func(cx *Cx) {
			panic("boom")
		})
	})
	var passErr *errors.PassError
	if !stderrors.As(err, &passErr) {
		t.Fatalf("err = %v, want *PassError", err)
	}
	if passErr.Node != "Pad" {
		t.Errorf("Node = %q, want Pad", passErr.Node)
	}
	if passErr.Recovered != "boom" {
		t.Errorf("Recovered = %v, want boom", passErr.Recovered)
	}
	if len(handler.pass) != 1 {
		t.Errorf("handler saw %d pass errors, want 1", len(handler.pass))
	}

	// The interrupted pass pruned nothing, so the unvisited sibling is
	// still alive and the tree stays usable.
	if boxAt(t, u, 0) != kept {
		t.Error("visited child lost identity after a panic")
	}
	found := false
	children := u.Root().Children()
	for i := 0; i < children.Len(); i++ {
		if obj, ok := ObjectAs[*boxObject](children.At(i)); ok && obj.props.Tag == "other" {
			found = true
		}
	}
	if !found {
		t.Error("unvisited child was pruned by a panicking pass")
	}

	pump(t, u, func(cx *Cx) {
		cx.RenderObject(siteBox, boxProps{Width: 10, Height: 10, Tag: "keep"})
	})
	u.Layout(graphics.Loose(graphics.Size{Width: 100, Height: 100}))
	if n := u.Root().Children().Len(); n != 1 {
		t.Errorf("children after recovery pass = %d, want 1", n)
	}
}

func TestRunReentrancyRejected(t *testing.T) {
	u := New(nil)
	var nested error
	pump(t, u, func(cx *Cx) {
		nested = u.Run(func(*Cx) {})
		cx.RenderObject(siteBox, boxProps{Width: 10, Height: 10})
	})
	if nested == nil {
		t.Error("nested Run did not fail")
	}
	if n := u.Root().Children().Len(); n != 1 {
		t.Errorf("children = %d, want 1", n)
	}
}

func TestDeclareOutsideBuildIgnored(t *testing.T) {
	u := New(nil)
	var escaped *Cx
	pump(t, u, func(cx *Cx) {
		escaped = cx
		cx.RenderObject(siteBox, boxProps{Width: 10, Height: 10})
	})

	if _, ok := escaped.RenderObject(sitePad, boxProps{Width: 1, Height: 1}); ok {
		t.Error("declaration outside the build phase returned an action")
	}
	if n := u.Root().Children().Len(); n != 1 {
		t.Errorf("children = %d, want 1", n)
	}
}
