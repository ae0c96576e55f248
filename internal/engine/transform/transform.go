package transform

import (
	"fmt"

	"github.com/dshills/quill/internal/engine/doc"
)

// Transform is an append-only log of steps applied to a document. It
// tracks the document before each step and the composed position
// mapping across all steps.
//
// A failed step returns an error and leaves the log, the document and
// the mapping untouched, so the transform stays usable.
type Transform struct {
	current *doc.Node
	steps   []Step
	docs    []*doc.Node
	mapping *Mapping
}

// New creates an empty transform starting at the given document.
func New(d *doc.Node) *Transform {
	return &Transform{current: d, mapping: NewMapping()}
}

// Doc returns the document after all steps.
func (t *Transform) Doc() *doc.Node {
	return t.current
}

// Before returns the document the transform started at.
func (t *Transform) Before() *doc.Node {
	if len(t.docs) > 0 {
		return t.docs[0]
	}
	return t.current
}

// DocAt returns the document before step i.
func (t *Transform) DocAt(i int) *doc.Node {
	return t.docs[i]
}

// Steps returns the applied steps in order. The slice is owned by the
// transform and must not be modified.
func (t *Transform) Steps() []Step {
	return t.steps
}

// StepCount returns the number of applied steps.
func (t *Transform) StepCount() int {
	return len(t.steps)
}

// Mapping returns the composed position mapping across all steps.
func (t *Transform) Mapping() *Mapping {
	return t.mapping
}

// DocChanged returns true if any step has been applied.
func (t *Transform) DocChanged() bool {
	return len(t.steps) > 0
}

// AddStep applies a step and appends it to the log.
func (t *Transform) AddStep(s Step) error {
	next, err := s.Apply(t.current)
	if err != nil {
		return fmt.Errorf("step %d: %w", len(t.steps), err)
	}
	t.docs = append(t.docs, t.current)
	t.current = next
	t.steps = append(t.steps, s)
	t.mapping.AppendMap(s.GetMap())
	return nil
}

// Replace replaces the range [from, to) with the given slice. A
// replacement of nothing with nothing is a no-op and appends no step.
func (t *Transform) Replace(from, to int, slice *doc.Slice) error {
	if from == to && slice.Size() == 0 {
		return nil
	}
	return t.AddStep(NewReplaceStep(from, to, slice))
}

// ReplaceWith replaces the range [from, to) with a single node.
func (t *Transform) ReplaceWith(from, to int, n *doc.Node) error {
	return t.Replace(from, to, doc.SliceOf(n))
}

// Delete removes the range [from, to).
func (t *Transform) Delete(from, to int) error {
	return t.Replace(from, to, doc.EmptySlice)
}

// Insert inserts a node at the given position.
func (t *Transform) Insert(pos int, n *doc.Node) error {
	return t.ReplaceWith(pos, pos, n)
}
