package ui

import (
	"fmt"

	"github.com/go-loom/loom/pkg/errors"
	"github.com/go-loom/loom/pkg/graphics"
	"github.com/go-loom/loom/pkg/rendering"
)

type phase int

const (
	phaseIdle phase = iota
	phaseBuild
	phaseEvent
	phaseLayout
	phasePaint
)

func (p phase) String() string {
	switch p {
	case phaseIdle:
		return "idle"
	case phaseBuild:
		return "build"
	case phaseEvent:
		return "event"
	case phaseLayout:
		return "layout"
	case phasePaint:
		return "paint"
	default:
		return "unknown"
	}
}

// Ui owns the persistent node tree and drives the pass protocol over it:
// build reconciles declarations against the tree, Dispatch routes input,
// Layout measures and Paint draws. All methods must be called from a
// single goroutine.
type Ui struct {
	tree  *Tree
	root  Handle
	text  rendering.TextFactory
	phase phase
}

// New creates an empty Ui. The text factory is handed to layout contexts
// so nodes can measure text; rendering.NewFontRegistry is the common
// choice.
func New(text rendering.TextFactory) *Ui {
	tree := NewTree()
	root := tree.alloc(Key{}, rootProps{}, &rootObject{})
	return &Ui{
		tree: tree,
		root: root,
		text: text,
	}
}

// Run executes one build pass: build declares the desired tree through
// the Cx and the tree is reconciled to match. A panic inside build is
// recovered, reported, and returned as an error; the tree is left in a
// consistent state with no pruning performed for the interrupted parents.
func (ui *Ui) Run(build func(*Cx)) (err error) {
	if ui.phase != phaseIdle {
		if DebugMode {
			logger().Warn("Run called re-entrantly", "phase", ui.phase)
		}
		return fmt.Errorf("ui: Run called during %s phase", ui.phase)
	}
	ui.phase = phaseBuild
	defer func() { ui.phase = phaseIdle }()

	ui.tree.pass++
	cx := newCx(ui, ui.root)
	defer func() {
		if r := recover(); r != nil {
			cx.abandon()
			node := "Root"
			if np, ok := r.(nodePanic); ok {
				node = np.node
				r = np.value
			}
			passErr := &errors.PassError{
				Node:       node,
				Recovered:  r,
				StackTrace: errors.CaptureStack(),
			}
			errors.ReportPassError(passErr)
			err = passErr
		}
	}()
	build(cx)
	cx.finish()
	return nil
}

// Dispatch routes an input event through the tree and reports whether any
// node handled it.
func (ui *Ui) Dispatch(event Event) bool {
	if ui.phase != phaseIdle {
		if DebugMode {
			logger().Warn("Dispatch called re-entrantly", "phase", ui.phase)
		}
		return false
	}
	ui.phase = phaseEvent
	defer func() { ui.phase = phaseIdle }()

	handled := false
	ctx := &EventCtx{tree: ui.tree, handle: ui.root, handled: &handled}
	ui.tree.at(ui.root).object.Event(ctx, event, ui.rootChildren())
	return handled
}

// Layout measures the tree under the given constraints and returns the
// root size. Nodes pruned by the last build pass never take part.
func (ui *Ui) Layout(bc graphics.Constraints) graphics.Size {
	if ui.phase != phaseIdle {
		if DebugMode {
			logger().Warn("Layout called re-entrantly", "phase", ui.phase)
		}
		return graphics.Size{}
	}
	ui.phase = phaseLayout
	defer func() { ui.phase = phaseIdle }()

	root := Child{tree: ui.tree, handle: ui.root}
	ctx := &LayoutCtx{tree: ui.tree, handle: ui.root, text: ui.text}
	size := root.Layout(ctx, bc)
	ui.tree.needsLayout = false
	return size
}

// Paint draws the tree onto the canvas.
func (ui *Ui) Paint(canvas rendering.Canvas) {
	if ui.phase != phaseIdle {
		if DebugMode {
			logger().Warn("Paint called re-entrantly", "phase", ui.phase)
		}
		return
	}
	ui.phase = phasePaint
	defer func() { ui.phase = phaseIdle }()

	root := Child{tree: ui.tree, handle: ui.root}
	ctx := &PaintCtx{tree: ui.tree, handle: ui.root, canvas: canvas}
	root.Paint(ctx)
	ui.tree.needsPaint = false
}

// Root returns a reference to the virtual root node, mainly for tests
// and tooling that inspect the tree.
func (ui *Ui) Root() Child {
	return Child{tree: ui.tree, handle: ui.root}
}

// Text returns the text factory the Ui measures text with.
func (ui *Ui) Text() rendering.TextFactory {
	return ui.text
}

// NeedsLayout reports whether any node requested layout since the last
// Layout call.
func (ui *Ui) NeedsLayout() bool {
	return ui.tree.NeedsLayout()
}

// NeedsPaint reports whether any node requested paint since the last
// Paint call.
func (ui *Ui) NeedsPaint() bool {
	return ui.tree.NeedsPaint()
}

func (ui *Ui) rootChildren() *Children {
	return &Children{tree: ui.tree, handles: ui.tree.at(ui.root).children}
}

// rootProps and rootObject form the virtual root that hosts the
// application's top-level declarations. The root stacks its children at
// the origin, sizes itself to their union, and forwards events to every
// child in declaration order; Child.Event stops delivering once one
// handles it.
type rootProps struct{}

func (rootProps) CreateObject() RenderObject { return &rootObject{} }
func (rootProps) Name() string               { return "Root" }

type rootObject struct{}

func (*rootObject) Update(_ *UpdateCtx, _ Properties) {}

func (*rootObject) Event(ctx *EventCtx, event Event, children *Children) {
	for i := 0; i < children.Len(); i++ {
		children.At(i).Event(ctx, event)
	}
}

func (*rootObject) Lifecycle(_ *LifeCycleCtx, _ LifeCycle) {}

func (*rootObject) Layout(ctx *LayoutCtx, bc graphics.Constraints, children *Children) graphics.Size {
	var union graphics.Size
	loose := bc.Loosen()
	for i := 0; i < children.Len(); i++ {
		child := children.At(i)
		size := child.Layout(ctx, loose)
		child.SetOrigin(graphics.Offset{})
		if size.Width > union.Width {
			union.Width = size.Width
		}
		if size.Height > union.Height {
			union.Height = size.Height
		}
	}
	return bc.Constrain(union)
}

func (*rootObject) Paint(ctx *PaintCtx, children *Children) {
	for i := 0; i < children.Len(); i++ {
		children.At(i).Paint(ctx)
	}
}
