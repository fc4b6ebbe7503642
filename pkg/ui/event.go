package ui

import "github.com/go-loom/loom/pkg/graphics"

// MouseButton identifies which pointer button an event carries.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

// EventKind identifies the kind of an input event.
type EventKind int

const (
	// PointerDown is a button press at a position.
	PointerDown EventKind = iota
	// PointerUp is a button release at a position.
	PointerUp
	// PointerMove is a pointer position change.
	PointerMove
)

func (k EventKind) String() string {
	switch k {
	case PointerDown:
		return "pointer-down"
	case PointerUp:
		return "pointer-up"
	case PointerMove:
		return "pointer-move"
	default:
		return "unknown"
	}
}

// Event is one discrete input event, delivered in-process through the
// event phase. Position is in the coordinate space of the node receiving
// the event; the children cursor translates it when forwarding.
type Event struct {
	Kind     EventKind
	Position graphics.Offset
	Button   MouseButton
}

// translated returns the event with its position shifted into a child's
// coordinate space.
func (e Event) translated(origin graphics.Offset) Event {
	e.Position = e.Position.Sub(origin)
	return e
}

// isPointer reports whether the event carries a pointer position.
func (e Event) isPointer() bool {
	switch e.Kind {
	case PointerDown, PointerUp, PointerMove:
		return true
	}
	return false
}

// LifeCycleKind identifies the kind of a lifecycle notification.
type LifeCycleKind int

const (
	// LifeCycleHotChanged reports that the pointer entered or left the
	// node's bounds.
	LifeCycleHotChanged LifeCycleKind = iota
)

// LifeCycle is a structural notification delivered outside the normal
// event flow.
type LifeCycle struct {
	Kind LifeCycleKind
	// Hot is the new hot state for LifeCycleHotChanged.
	Hot bool
}
