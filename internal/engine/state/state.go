package state

import (
	"github.com/dshills/quill/internal/engine/delta"
	"github.com/dshills/quill/internal/engine/doc"
	"github.com/dshills/quill/internal/engine/selection"
)

// EditorState is an immutable snapshot of the editable document and
// the editor state that travels with it. A new state is produced by
// applying a delta; old states stay valid.
type EditorState struct {
	// Doc is the current document.
	Doc *doc.Node

	// Sel is the current selection, valid against Doc.
	Sel selection.Selection

	// StoredMarks are the marks for the next insertion, or nil to
	// inherit from the selection position.
	StoredMarks []doc.Mark
}

// New creates a state over the given document with the selection at
// the document start.
func New(d *doc.Node) *EditorState {
	return &EditorState{Doc: d, Sel: selection.AtStart(d)}
}

// NewWithSelection creates a state with an explicit selection and
// stored marks.
func NewWithSelection(d *doc.Node, sel selection.Selection, storedMarks []doc.Mark) *EditorState {
	return &EditorState{Doc: d, Sel: sel, StoredMarks: storedMarks}
}

// NewDelta creates a delta starting at this state. The state is not
// modified; the delta owns its own log, selection cache, marks and
// metadata.
func (s *EditorState) NewDelta() *delta.Delta {
	return delta.New(s.Doc, s.Sel, s.StoredMarks)
}

// Apply produces the next state from a finished delta: the delta's
// document, its (lazily mapped) selection and its stored marks.
func (s *EditorState) Apply(d *delta.Delta) *EditorState {
	return &EditorState{
		Doc:         d.Doc(),
		Sel:         d.Selection(),
		StoredMarks: d.StoredMarks(),
	}
}

// CanCoalesce reports whether two consecutive deltas may be merged
// into one history event. Deltas carrying metadata are handled by
// whoever attached it and are never coalesced.
func CanCoalesce(a, b *delta.Delta) bool {
	return a.IsGeneric() && b.IsGeneric()
}
