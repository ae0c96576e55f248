package engine

import (
	"sync"

	"github.com/dshills/quill/internal/engine/delta"
	"github.com/dshills/quill/internal/engine/doc"
	"github.com/dshills/quill/internal/engine/selection"
	"github.com/dshills/quill/internal/engine/state"
	"github.com/dshills/quill/internal/engine/transform"
)

// Re-export commonly used types for convenience.
type (
	// Node is an immutable document node.
	Node = doc.Node

	// Fragment is an immutable sequence of sibling nodes.
	Fragment = doc.Fragment

	// Slice is document content with open edges.
	Slice = doc.Slice

	// Mark is a piece of inline formatting.
	Mark = doc.Mark

	// MarkType identifies a kind of inline formatting.
	MarkType = doc.MarkType

	// NodeType describes a kind of document node.
	NodeType = doc.NodeType

	// ResolvedPos is a position resolved against a document.
	ResolvedPos = doc.ResolvedPos

	// Metrics summarizes the visible text of a document.
	Metrics = doc.Metrics

	// Step is a single reversible structural edit.
	Step = transform.Step

	// StepMap translates positions across a single step.
	StepMap = transform.StepMap

	// Mapping is a composed sequence of step maps.
	Mapping = transform.Mapping

	// Transform is the append-only step log.
	Transform = transform.Transform

	// Selection is a position or range in a document.
	Selection = selection.Selection

	// Bias is the direction used when snapping positions to the
	// nearest valid cursor position.
	Bias = selection.Bias

	// Delta is an atomic record of edits and editor-state changes.
	Delta = delta.Delta

	// MetaToken is an identity-based delta metadata key.
	MetaToken = delta.MetaToken

	// EditorState is a snapshot of the document and editor state.
	EditorState = state.EditorState
)

// Re-export constants.
const (
	BiasBackward = selection.BiasBackward
	BiasForward  = selection.BiasForward
)

// RevisionID identifies a state revision in an Engine. Revisions count
// up from zero and never repeat within one Engine.
type RevisionID uint64

// Engine is the main facade for the document engine. It holds the
// current editor state, hands out deltas and applies finished ones,
// bumping a revision counter per application.
//
// All Engine methods are thread-safe. The states it hands out are
// immutable snapshots; a delta is a single-owner builder and must be
// mutated by one goroutine only.
type Engine struct {
	mu       sync.RWMutex
	state    *state.EditorState
	revision RevisionID

	readOnly bool
	initDoc  *doc.Node
	initJSON string
}

// New creates an Engine with the given options. Without options it
// starts from a document holding a single empty paragraph.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}

	d := e.initDoc
	if d == nil && e.initJSON != "" {
		var err error
		if d, err = doc.FromJSON(e.initJSON); err != nil {
			return nil, err
		}
	}
	if d == nil {
		d = doc.NewNode(doc.TypeDoc, doc.NewNode(doc.TypeParagraph))
	}
	e.state = state.New(d)
	return e, nil
}

// State returns the current editor state.
func (e *Engine) State() *state.EditorState {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state
}

// Doc returns the current document.
func (e *Engine) Doc() *doc.Node {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state.Doc
}

// Selection returns the current selection.
func (e *Engine) Selection() selection.Selection {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state.Sel
}

// Revision returns the current revision.
func (e *Engine) Revision() RevisionID {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.revision
}

// IsReadOnly returns true for read-only engines.
func (e *Engine) IsReadOnly() bool {
	return e.readOnly
}

// NewDelta creates a delta starting at the current state.
func (e *Engine) NewDelta() *delta.Delta {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state.NewDelta()
}

// Apply installs a finished delta as the next state and bumps the
// revision. The delta must have been created from the engine's current
// state; callers apply deltas in the order they were created.
func (e *Engine) Apply(d *delta.Delta) (RevisionID, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.readOnly {
		return e.revision, ErrReadOnly
	}
	e.state = e.state.Apply(d)
	e.revision++
	return e.revision, nil
}

// Edit builds a delta against the current state using the given
// function, then applies it. The delta is returned so the caller can
// inspect its flags and metadata.
func (e *Engine) Edit(build func(*delta.Delta) error) (*delta.Delta, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.readOnly {
		return nil, ErrReadOnly
	}
	d := e.state.NewDelta()
	if err := build(d); err != nil {
		return nil, err
	}
	e.state = e.state.Apply(d)
	e.revision++
	return d, nil
}

// InsertText inserts text at the current selection.
func (e *Engine) InsertText(text string) (*delta.Delta, error) {
	return e.Edit(func(d *delta.Delta) error {
		return d.InsertText(text)
	})
}

// DeleteSelection removes the current selection's range.
func (e *Engine) DeleteSelection() (*delta.Delta, error) {
	return e.Edit(func(d *delta.Delta) error {
		return d.DeleteSelection()
	})
}

// Metrics returns text metrics for the current document.
func (e *Engine) Metrics() doc.Metrics {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return doc.ComputeMetrics(e.state.Doc)
}
