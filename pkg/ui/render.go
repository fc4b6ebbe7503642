// Package ui implements the retained-mode composition core: application
// code declares a tree of widgets with ordinary function calls each pass,
// and the package reconciles those calls against a persistent tree of
// render objects, then drives event dispatch, layout, and painting over
// that tree.
//
// Node identity is derived from the declaration call site plus a
// per-parent occurrence counter, so authors never manage keys explicitly;
// an explicit key can still be supplied for declarations inside loops.
package ui

import (
	"github.com/go-loom/loom/pkg/graphics"
)

// Properties is the declarative half of the render-object contract: an
// immutable snapshot of a node's configuration for one pass. Each
// Properties type pairs with exactly one RenderObject type, constructed
// by CreateObject on a declaration's first appearance.
//
// Properties values are produced fresh each pass. A render object's
// Update decides what changed by comparing the new snapshot against its
// retained copy; when nothing changed, Update must be a no-op.
type Properties interface {
	// CreateObject constructs the render object for a first-seen
	// declaration. It must not return nil for valid props.
	CreateObject() RenderObject

	// Name returns a stable debug name for the properties/object pairing.
	Name() string
}

// RenderObject is the behavioral half of the contract: persistent state
// for one tree node, updated in place across passes. The interface is the
// uniform dynamic-dispatch surface that lets a heterogeneous tree be
// stored and walked behind one representation; use ObjectAs to get the
// concrete type back.
//
// All methods are total over valid inputs. There is no error channel:
// contract violations are checked defensively where cheap and degrade
// visually rather than corrupting the tree.
type RenderObject interface {
	// Update receives the new properties snapshot for an existing node.
	// It must apply only the delta, request layout or paint when a change
	// affects measured size or appearance, and do nothing at all when the
	// props are unchanged. The reconciler guarantees the dynamic type of
	// props matches the type this object was created from.
	Update(ctx *UpdateCtx, props Properties)

	// Event receives one input event. The node may mutate its hot/active
	// flags and request paint, and is responsible for forwarding the
	// event to the children it wants to keep reactive; forwarding is not
	// automatic.
	Event(ctx *EventCtx, event Event, children *Children)

	// Lifecycle receives structural notifications not tied to a specific
	// input event, such as a hot-state transition.
	Lifecycle(ctx *LifeCycleCtx, event LifeCycle)

	// Layout measures the node under the inbound constraints. It must lay
	// out exactly the children it intends to paint and return a size that
	// satisfies the constraints. It may set a baseline offset for parent
	// alignment.
	Layout(ctx *LayoutCtx, bc graphics.Constraints, children *Children) graphics.Size

	// Paint issues drawing calls scoped to the node's own box and/or
	// forwards painting to children through the cursor, which scopes the
	// canvas transform around each child.
	Paint(ctx *PaintCtx, children *Children)
}

// ObjectAs returns the concrete render object behind a child reference.
// The second result reports whether the downcast succeeded.
func ObjectAs[T RenderObject](child Child) (T, bool) {
	var zero T
	if child.tree == nil || !child.tree.valid(child.handle) {
		return zero, false
	}
	obj, ok := child.tree.at(child.handle).object.(T)
	if !ok {
		return zero, false
	}
	return obj, true
}
