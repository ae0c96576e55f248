package transform

import (
	"fmt"

	"github.com/dshills/quill/internal/engine/doc"
)

// Step is a single reversible structural edit. A step generally applies
// only to the document it was created for, since the positions stored
// in it only make sense there.
type Step interface {
	// Apply applies the step to the given document, returning the
	// transformed document or an error when the step does not fit.
	Apply(d *doc.Node) (*doc.Node, error)

	// GetMap returns the position map describing the changes this step
	// makes, usable to translate between pre- and post-step positions.
	GetMap() *StepMap

	// Invert returns a step that undoes this one. Needs the document
	// as it was before the step.
	Invert(d *doc.Node) (Step, error)

	// Map translates the step through a mapping, returning nil when
	// the mapped range was entirely deleted.
	Map(mapping *Mapping) Step
}

// ReplaceStep replaces the range [From, To) with a slice.
type ReplaceStep struct {
	From  int
	To    int
	Slice *doc.Slice
}

// NewReplaceStep creates a replace step.
func NewReplaceStep(from, to int, slice *doc.Slice) *ReplaceStep {
	return &ReplaceStep{From: from, To: to, Slice: slice}
}

// Apply performs the replacement on the given document.
func (s *ReplaceStep) Apply(d *doc.Node) (*doc.Node, error) {
	return d.Replace(s.From, s.To, s.Slice)
}

// GetMap returns a single-range map from the replaced span to the
// inserted one.
func (s *ReplaceStep) GetMap() *StepMap {
	return NewStepMap([]int{s.From, s.To - s.From, s.Slice.Size()})
}

// Invert returns a step restoring the replaced content from the
// pre-step document.
func (s *ReplaceStep) Invert(d *doc.Node) (Step, error) {
	slice, err := d.Slice(s.From, s.To)
	if err != nil {
		return nil, fmt.Errorf("inverting replace step: %w", err)
	}
	return NewReplaceStep(s.From, s.From+s.Slice.Size(), slice), nil
}

// Map translates the step through a mapping.
func (s *ReplaceStep) Map(mapping *Mapping) Step {
	from := mapping.MapResult(s.From, 1)
	to := mapping.MapResult(s.To, -1)
	if from.Deleted && to.Deleted {
		return nil
	}
	return NewReplaceStep(from.Pos, max(from.Pos, to.Pos), s.Slice)
}

// String returns a debug representation of the step.
func (s *ReplaceStep) String() string {
	if s.Slice.Size() == 0 {
		return fmt.Sprintf("delete(%d, %d)", s.From, s.To)
	}
	return fmt.Sprintf("replace(%d, %d, %s)", s.From, s.To, s.Slice)
}
