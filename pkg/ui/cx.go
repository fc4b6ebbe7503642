package ui

import (
	"fmt"
	"reflect"
)

// Cx is the build context threaded through declaration calls during one
// pass. It resolves each declaration to a slot in the tree: existing
// slots are updated in place, new ones created at the declaration's
// position, and slots not revisited are pruned when the parent's
// declarations complete.
//
// A Cx is only valid during the build phase of the pass it was created
// for; declaring nodes from event, layout, or paint code is a usage
// contract violation.
type Cx struct {
	ui     *Ui
	tree   *Tree
	parent Handle

	// prev maps the parent's previous children by key; entries are
	// removed as declarations revisit them, so what remains at the end
	// of the parent's build is exactly the set to prune.
	prev map[Key]Handle

	// prevOrder preserves the previous child order for recovery when a
	// build function panics mid-parent.
	prevOrder []Handle

	newChildren []Handle

	// occur counts declarations per call site within this parent and
	// pass, disambiguating repeated declarations from one source line.
	occur map[CallSite]int
}

func newCx(ui *Ui, parent Handle) *Cx {
	children := ui.tree.at(parent).children
	cx := &Cx{
		ui:        ui,
		tree:      ui.tree,
		parent:    parent,
		prevOrder: children,
	}
	if len(children) > 0 {
		cx.prev = make(map[Key]Handle, len(children))
		for _, h := range children {
			cx.prev[ui.tree.at(h).key] = h
		}
	}
	return cx
}

// RenderObject declares a leaf node. The site token should come from
// Caller so identity tracks the application's call site. It returns the
// action submitted by the node's event handling since the previous
// declaration, if any.
func (cx *Cx) RenderObject(site CallSite, props Properties) (any, bool) {
	return cx.declare(site, nil, props, nil)
}

// RenderObjectWith declares a container node whose children are declared
// by content. Children declared inside content belong to this node.
func (cx *Cx) RenderObjectWith(site CallSite, props Properties, content func(*Cx)) (any, bool) {
	return cx.declare(site, nil, props, content)
}

// KeyedRenderObject declares a node with an explicit key in addition to
// the call-site identity. Use it for declarations inside loops where the
// occurrence counter alone would tie identity to iteration order.
// The key must be comparable and unique among siblings from the same site.
func (cx *Cx) KeyedRenderObject(site CallSite, key any, props Properties, content func(*Cx)) (any, bool) {
	return cx.declare(site, key, props, content)
}

func (cx *Cx) declare(site CallSite, user any, props Properties, content func(*Cx)) (any, bool) {
	if cx.ui.phase != phaseBuild {
		if DebugMode {
			logger().Warn("declaration outside the build phase ignored",
				"node", props.Name(),
				"phase", cx.ui.phase,
			)
		}
		return nil, false
	}

	if cx.occur == nil {
		cx.occur = make(map[CallSite]int)
	}
	seq := cx.occur[site]
	cx.occur[site]++
	key := Key{site: site, user: user, seq: seq}

	h, found := cx.prev[key]
	if found {
		delete(cx.prev, key)
		s := cx.tree.at(h)
		if s.propsType == reflect.TypeOf(props) {
			s.lastSeen = cx.tree.pass
			s.object.Update(&UpdateCtx{tree: cx.tree, handle: h}, props)
		} else {
			// Same identity, different declared type: the old state
			// cannot carry over, so the slot is recreated from scratch.
			logger().Debug("recreating node with changed type",
				"old", s.name,
				"new", props.Name(),
			)
			cx.tree.destroy(h)
			found = false
		}
	}
	if !found {
		object := props.CreateObject()
		if object == nil {
			panic(fmt.Sprintf("ui: %s.CreateObject returned nil", props.Name()))
		}
		h = cx.tree.alloc(key, props, object)
		logger().Debug("created node", "name", props.Name())
	}
	cx.newChildren = append(cx.newChildren, h)

	if content != nil {
		child := newCx(cx.ui, h)
		name := cx.tree.at(h).name
		func() {
			defer func() {
				if r := recover(); r != nil {
					// Keep the tree's ownership structure consistent
					// before unwinding further.
					child.abandon()
					if _, ok := r.(nodePanic); !ok {
						r = nodePanic{node: name, value: r}
					}
					panic(r)
				}
			}()
			content(child)
		}()
		child.finish()
	}

	s := cx.tree.at(h)
	action, has := s.action, s.hasAction
	s.action, s.hasAction = nil, false
	return action, has
}

// finish prunes the parent's unvisited children and installs the new
// child order. Called once all declarations for the parent completed.
func (cx *Cx) finish() {
	for _, h := range cx.prev {
		if DebugMode {
			logger().Debug("pruned node", "name", cx.tree.at(h).name)
		}
		cx.tree.destroy(h)
	}
	cx.tree.at(cx.parent).children = cx.newChildren
	// Removing or adding children changes what the parent draws.
	if len(cx.prev) > 0 || !sameHandles(cx.prevOrder, cx.newChildren) {
		cx.tree.requestLayout(cx.parent)
	}
	cx.prev = nil
}

// abandon repairs the parent's child list after a panic interrupted its
// declarations: visited and new children keep their declared positions,
// unvisited survivors keep their old relative order, and nothing is
// pruned.
func (cx *Cx) abandon() {
	kept := cx.newChildren
	seen := make(map[Handle]bool, len(kept))
	for _, h := range kept {
		seen[h] = true
	}
	for _, h := range cx.prevOrder {
		if cx.tree.valid(h) && !seen[h] {
			kept = append(kept, h)
		}
	}
	cx.tree.at(cx.parent).children = kept
	cx.prev = nil
}

// nodePanic tags a panic unwinding out of a content closure with the
// name of the nearest enclosing node, for error reporting at the top of
// the pass.
type nodePanic struct {
	node  string
	value any
}

func sameHandles(a, b []Handle) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
