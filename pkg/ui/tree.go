package ui

import (
	"reflect"
	"runtime"

	"github.com/go-loom/loom/pkg/graphics"
)

// CallSite is a stable token for a declaration call site, derived from the
// caller's program counter.
type CallSite uintptr

// Caller returns the call site skip frames above the caller of Caller.
// Widget declaration functions call Caller(1) so the resulting token
// identifies the application line that declared the widget.
func Caller(skip int) CallSite {
	pc, _, _, _ := runtime.Caller(skip + 1)
	return CallSite(pc)
}

// Key identifies a slot among its siblings. It combines the declaration
// call site with a per-parent occurrence counter (reset each pass) that
// disambiguates repeated declarations from the same site, plus an optional
// caller-supplied key for loops where the counter alone would tie identity
// to iteration order.
//
// Keys need to be unique only among siblings within one pass.
type Key struct {
	site CallSite
	user any
	seq  int
}

// Handle is a stable index of a slot in the tree's arena.
type Handle int32

// nilHandle marks the absence of a slot.
const nilHandle Handle = -1

// slot is a tree node's persistent storage unit: identity, the owned
// render object, and per-node bookkeeping. Slots are owned exclusively by
// their parent; children are referenced by handle only, so the tree has
// no cycles and no shared ownership.
type slot struct {
	inUse     bool
	key       Key
	name      string
	object    RenderObject
	propsType reflect.Type
	children  []Handle

	origin   graphics.Offset
	size     graphics.Size
	baseline float64

	hot    bool
	active bool

	needsLayout bool
	needsPaint  bool

	// lastSeen is the pass number of the most recent reconciliation that
	// visited this slot.
	lastSeen uint64

	// action holds a value submitted from the event phase until the next
	// declaration of this node consumes it.
	action    any
	hasAction bool
}

// Tree is an arena of slots indexed by stable handles. The parent holds an
// ordered sequence of child handles; traversal is always top-down, so no
// back-references are needed.
type Tree struct {
	slots []slot
	free  []Handle
	pass  uint64

	needsLayout bool
	needsPaint  bool
}

// NewTree creates an empty tree.
func NewTree() *Tree {
	return &Tree{}
}

func (t *Tree) alloc(key Key, props Properties, object RenderObject) Handle {
	var h Handle
	if n := len(t.free); n > 0 {
		h = t.free[n-1]
		t.free = t.free[:n-1]
	} else {
		t.slots = append(t.slots, slot{})
		h = Handle(len(t.slots) - 1)
	}
	t.slots[h] = slot{
		inUse:       true,
		key:         key,
		name:        props.Name(),
		object:      object,
		propsType:   reflect.TypeOf(props),
		needsLayout: true,
		needsPaint:  true,
		lastSeen:    t.pass,
	}
	t.needsLayout = true
	t.needsPaint = true
	return h
}

// destroy releases a slot and its whole subtree back to the arena.
func (t *Tree) destroy(h Handle) {
	if !t.valid(h) {
		return
	}
	s := t.at(h)
	children := s.children
	*s = slot{}
	t.free = append(t.free, h)
	for _, child := range children {
		t.destroy(child)
	}
}

func (t *Tree) at(h Handle) *slot {
	return &t.slots[h]
}

func (t *Tree) valid(h Handle) bool {
	return h >= 0 && int(h) < len(t.slots) && t.slots[h].inUse
}

func (t *Tree) requestLayout(h Handle) {
	t.at(h).needsLayout = true
	t.needsLayout = true
	// A relayout implies repainting the affected area.
	t.at(h).needsPaint = true
	t.needsPaint = true
}

func (t *Tree) requestPaint(h Handle) {
	t.at(h).needsPaint = true
	t.needsPaint = true
}

// NeedsLayout reports whether any slot requested layout since the last
// layout pass.
func (t *Tree) NeedsLayout() bool {
	return t.needsLayout
}

// NeedsPaint reports whether any slot requested paint since the last
// paint pass.
func (t *Tree) NeedsPaint() bool {
	return t.needsPaint
}
