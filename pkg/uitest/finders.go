package uitest

import (
	"fmt"

	"github.com/go-loom/loom/pkg/ui"
)

// Result wraps finder matches with convenient accessors.
type Result struct {
	matches []ui.Child
	desc    string
}

// First returns the first match. Panics with the finder description if
// nothing matched.
func (r Result) First() ui.Child {
	if len(r.matches) == 0 {
		panic(fmt.Sprintf("no nodes matched %s", r.desc))
	}
	return r.matches[0]
}

// At returns the match at index. Panics if out of range.
func (r Result) At(index int) ui.Child {
	if index < 0 || index >= len(r.matches) {
		panic(fmt.Sprintf("index %d out of range, %s matched %d nodes", index, r.desc, len(r.matches)))
	}
	return r.matches[index]
}

// All returns every match in depth-first declaration order.
func (r Result) All() []ui.Child {
	return r.matches
}

// Count returns the number of matches.
func (r Result) Count() int {
	return len(r.matches)
}

// Exists reports whether anything matched.
func (r Result) Exists() bool {
	return len(r.matches) > 0
}

// FindByName returns the nodes whose debug name matches, in depth-first
// declaration order.
func (t *Tester) FindByName(name string) Result {
	return t.find(fmt.Sprintf("name %q", name), func(ch ui.Child) bool {
		return ch.Name() == name
	})
}

// Find returns the nodes accepted by the predicate, in depth-first
// declaration order.
func (t *Tester) Find(desc string, pred func(ui.Child) bool) Result {
	return t.find(desc, pred)
}

func (t *Tester) find(desc string, pred func(ui.Child) bool) Result {
	result := Result{desc: desc}
	var walk func(ch ui.Child)
	walk = func(ch ui.Child) {
		if pred(ch) {
			result.matches = append(result.matches, ch)
		}
		children := ch.Children()
		for i := 0; i < children.Len(); i++ {
			walk(children.At(i))
		}
	}
	root := t.ui.Root().Children()
	for i := 0; i < root.Len(); i++ {
		walk(root.At(i))
	}
	return result
}
