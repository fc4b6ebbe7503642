package ui

import (
	"github.com/go-loom/loom/pkg/graphics"
)

// Children is a sequencing cursor over a node's child render objects. It
// supports indexed access for fixed, positionally-addressed child sets and
// forwards phase calls to individual children without exposing the tree's
// storage representation.
type Children struct {
	tree    *Tree
	handles []Handle
}

// Len returns the number of children.
func (c *Children) Len() int {
	return len(c.handles)
}

// At returns a reference to the i-th child in declaration order.
func (c *Children) At(i int) Child {
	return Child{tree: c.tree, handle: c.handles[i]}
}

// Child is a reference to one child slot, used to forward phase calls.
type Child struct {
	tree   *Tree
	handle Handle
}

// Name returns the child's debug name.
func (ch Child) Name() string {
	return ch.tree.at(ch.handle).name
}

// Size returns the child's size from its most recent layout.
func (ch Child) Size() graphics.Size {
	return ch.tree.at(ch.handle).size
}

// Origin returns the child's position in its parent's coordinate space,
// as assigned by the parent via SetOrigin.
func (ch Child) Origin() graphics.Offset {
	return ch.tree.at(ch.handle).origin
}

// SetOrigin positions the child within the parent's coordinate space.
// Parents call this during layout; event translation and paint placement
// both derive from it.
func (ch Child) SetOrigin(origin graphics.Offset) {
	s := ch.tree.at(ch.handle)
	if s.origin != origin {
		s.origin = origin
		ch.tree.requestPaint(ch.handle)
	}
}

// BaselineOffset returns the distance from the child's bottom edge to its
// text baseline, or zero if the child did not set one.
func (ch Child) BaselineOffset() float64 {
	return ch.tree.at(ch.handle).baseline
}

// IsHot reports whether the pointer is over the child's bounds.
func (ch Child) IsHot() bool {
	return ch.tree.at(ch.handle).hot
}

// IsActive reports whether the child is the target of an in-progress
// pointer gesture.
func (ch Child) IsActive() bool {
	return ch.tree.at(ch.handle).active
}

// Event forwards an input event to the child, translating pointer
// positions into the child's coordinate space and maintaining the child's
// hot state. Once the event is handled, delivery to render objects stops,
// but pointer events keep descending so hot state never goes stale on
// nodes the pointer left.
func (ch Child) Event(ctx *EventCtx, event Event) {
	s := ch.tree.at(ch.handle)
	forwarded := event
	if event.isPointer() {
		forwarded = event.translated(s.origin)
		ch.setHot(s.size.Contains(forwarded.Position))
	}
	if ctx.IsHandled() {
		if event.isPointer() {
			children := ch.Children()
			for i := 0; i < children.Len(); i++ {
				children.At(i).Event(ctx, forwarded)
			}
		}
		return
	}
	childCtx := &EventCtx{tree: ch.tree, handle: ch.handle, handled: ctx.handled}
	s.object.Event(childCtx, forwarded, ch.Children())
}

func (ch Child) setHot(hot bool) {
	s := ch.tree.at(ch.handle)
	if s.hot == hot {
		return
	}
	s.hot = hot
	lctx := &LifeCycleCtx{tree: ch.tree, handle: ch.handle}
	s.object.Lifecycle(lctx, LifeCycle{Kind: LifeCycleHotChanged, Hot: hot})
}

// Lifecycle forwards a lifecycle notification to the child.
func (ch Child) Lifecycle(ctx *LifeCycleCtx, event LifeCycle) {
	childCtx := &LifeCycleCtx{tree: ch.tree, handle: ch.handle}
	ch.tree.at(ch.handle).object.Lifecycle(childCtx, event)
}

// Layout measures the child under the given constraints and returns its
// size. The returned size is defensively clamped into the constraint
// bounds; a violation is a contract bug in the child and is logged.
func (ch Child) Layout(ctx *LayoutCtx, bc graphics.Constraints) graphics.Size {
	s := ch.tree.at(ch.handle)
	if DebugMode && !bc.IsValid() {
		logger().Warn("invalid constraints passed to child layout",
			"node", s.name,
			"min", bc.Min,
			"max", bc.Max,
		)
	}
	childCtx := &LayoutCtx{tree: ch.tree, handle: ch.handle, text: ctx.text}
	size := s.object.Layout(childCtx, bc, ch.Children())
	if !bc.IsSatisfiedBy(size) {
		if DebugMode {
			logger().Warn("layout size violates constraints",
				"node", s.name,
				"size", size,
				"min", bc.Min,
				"max", bc.Max,
			)
		}
		size = bc.Constrain(size)
	}
	s.size = size
	s.needsLayout = false
	return size
}

// Paint forwards painting to the child with the canvas transform saved
// and the origin translation applied. The transform is restored on every
// exit path, so a panic inside the child cannot leak transform state.
func (ch Child) Paint(ctx *PaintCtx) {
	s := ch.tree.at(ch.handle)
	canvas := ctx.canvas
	canvas.Save()
	defer canvas.Restore()
	canvas.Translate(s.origin.X, s.origin.Y)
	childCtx := &PaintCtx{tree: ch.tree, handle: ch.handle, canvas: canvas}
	s.object.Paint(childCtx, ch.Children())
	s.needsPaint = false
}

// Children returns a cursor over the child's own children.
func (ch Child) Children() *Children {
	return &Children{tree: ch.tree, handles: ch.tree.at(ch.handle).children}
}
