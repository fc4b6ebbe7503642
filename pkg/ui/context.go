package ui

import (
	"github.com/go-loom/loom/pkg/graphics"
	"github.com/go-loom/loom/pkg/rendering"
)

// The context types are thin, phase-scoped views over one slot's shared
// tree state. Each exposes exactly the mutations legal during its phase,
// so phase-inappropriate mutation is prevented by construction. Contexts
// are never retained past the phase call they are passed to.

// UpdateCtx is the context for the update phase.
type UpdateCtx struct {
	tree   *Tree
	handle Handle
}

// RequestLayout schedules a layout pass because a property change affects
// the node's measured size.
func (c *UpdateCtx) RequestLayout() {
	c.tree.requestLayout(c.handle)
}

// RequestPaint schedules a repaint because a property change affects the
// node's appearance without changing its size.
func (c *UpdateCtx) RequestPaint() {
	c.tree.requestPaint(c.handle)
}

// EventCtx is the context for the event phase.
type EventCtx struct {
	tree    *Tree
	handle  Handle
	handled *bool
}

// IsHot reports whether the pointer is over the node's bounds.
func (c *EventCtx) IsHot() bool {
	return c.tree.at(c.handle).hot
}

// IsActive reports whether the node is the target of an in-progress
// pointer gesture.
func (c *EventCtx) IsActive() bool {
	return c.tree.at(c.handle).active
}

// SetActive marks or clears the node as the target of an in-progress
// pointer gesture.
func (c *EventCtx) SetActive(active bool) {
	c.tree.at(c.handle).active = active
}

// SetHandled stops propagation of the current event to siblings and
// ancestors.
func (c *EventCtx) SetHandled() {
	*c.handled = true
}

// IsHandled reports whether the current event was already handled.
func (c *EventCtx) IsHandled() bool {
	return *c.handled
}

// RequestPaint schedules a repaint.
func (c *EventCtx) RequestPaint() {
	c.tree.requestPaint(c.handle)
}

// RequestLayout schedules a layout pass.
func (c *EventCtx) RequestLayout() {
	c.tree.requestLayout(c.handle)
}

// SubmitAction records a value that the node's next declaration returns
// to the application (e.g. "was clicked").
func (c *EventCtx) SubmitAction(action any) {
	s := c.tree.at(c.handle)
	s.action = action
	s.hasAction = true
}

// LifeCycleCtx is the context for lifecycle notifications.
type LifeCycleCtx struct {
	tree   *Tree
	handle Handle
}

// RequestPaint schedules a repaint.
func (c *LifeCycleCtx) RequestPaint() {
	c.tree.requestPaint(c.handle)
}

// LayoutCtx is the context for the layout phase.
type LayoutCtx struct {
	tree   *Tree
	handle Handle
	text   rendering.TextFactory
}

// IsHot reports whether the pointer is over the node's bounds, for style
// decisions that depend on interaction state.
func (c *LayoutCtx) IsHot() bool {
	return c.tree.at(c.handle).hot
}

// IsActive reports whether the node is the target of an in-progress
// pointer gesture.
func (c *LayoutCtx) IsActive() bool {
	return c.tree.at(c.handle).active
}

// SetBaselineOffset records the distance from the node's bottom edge to
// its text baseline, used by parents for cross-node text alignment.
func (c *LayoutCtx) SetBaselineOffset(offset float64) {
	c.tree.at(c.handle).baseline = offset
}

// Text returns the text layout factory for measuring text during layout.
func (c *LayoutCtx) Text() rendering.TextFactory {
	return c.text
}

// PaintCtx is the context for the paint phase.
type PaintCtx struct {
	tree   *Tree
	handle Handle
	canvas rendering.Canvas
}

// Canvas returns the drawing backend for the current paint pass.
func (c *PaintCtx) Canvas() rendering.Canvas {
	return c.canvas
}

// Size returns the node's laid-out size.
func (c *PaintCtx) Size() graphics.Size {
	return c.tree.at(c.handle).size
}

// IsHot reports whether the pointer is over the node's bounds.
func (c *PaintCtx) IsHot() bool {
	return c.tree.at(c.handle).hot
}

// IsActive reports whether the node is the target of an in-progress
// pointer gesture.
func (c *PaintCtx) IsActive() bool {
	return c.tree.at(c.handle).active
}

// WithSave runs fn with the canvas transform and clip saved, restoring
// them on every exit path, including panics, so transform state cannot
// leak out of a child paint.
func (c *PaintCtx) WithSave(fn func(*PaintCtx)) {
	c.canvas.Save()
	defer c.canvas.Restore()
	fn(c)
}
