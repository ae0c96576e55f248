package delta

import (
	"time"

	"github.com/dshills/quill/internal/engine/doc"
	"github.com/dshills/quill/internal/engine/selection"
	"github.com/dshills/quill/internal/engine/transform"
)

// updateFlag records which pieces of auxiliary state were explicitly
// touched since the delta was created. The flags are independent facts;
// a flag is only true when the corresponding setter ran and no
// conflicting operation cleared it since.
type updateFlag uint8

const (
	updatedSelection updateFlag = 1 << iota
	updatedMarks
	updatedScroll
)

// Delta is an atomic record of document edits plus auxiliary editor
// state changes: selection, active formatting marks, scroll intent and
// arbitrary metadata. A delta is built up by a single caller in
// sequence and handed to the state-application step once complete.
//
// The selection is re-derived lazily: structural edits only note that
// the cached selection is stale, and the mapping work over the edits
// appended since the last read happens on the next Selection call.
type Delta struct {
	tr *transform.Transform

	// baseSel is the selection as of step baseSelFor; it is brought up
	// to date through the mapping suffix on demand.
	baseSel    selection.Selection
	baseSelFor int

	// storedMarks are the marks applied to the next inserted inline
	// content. Nil means "inherit from the document position".
	storedMarks []doc.Mark

	updated updateFlag
	time    int64
	meta    map[string]any
}

// New creates a delta from an editor-state snapshot: the current
// document, selection and stored marks.
func New(d *doc.Node, sel selection.Selection, storedMarks []doc.Mark) *Delta {
	return &Delta{
		tr:          transform.New(d),
		baseSel:     sel,
		storedMarks: storedMarks,
		time:        time.Now().UnixMilli(),
	}
}

// Doc returns the document after all edits in the delta.
func (d *Delta) Doc() *doc.Node {
	return d.tr.Doc()
}

// Before returns the document the delta started at.
func (d *Delta) Before() *doc.Node {
	return d.tr.Before()
}

// Steps returns the applied steps in order.
func (d *Delta) Steps() []transform.Step {
	return d.tr.Steps()
}

// Mapping returns the composed position mapping across all steps.
func (d *Delta) Mapping() *transform.Mapping {
	return d.tr.Mapping()
}

// DocChanged returns true if the delta contains structural edits.
func (d *Delta) DocChanged() bool {
	return d.tr.DocChanged()
}

// Selection returns the delta's current selection, valid against the
// current document. The cached selection is mapped through the edits
// appended since it was last read, then the result is cached again, so
// repeated reads do no further mapping work.
func (d *Delta) Selection() selection.Selection {
	if d.baseSelFor < d.tr.StepCount() {
		d.baseSel = d.baseSel.Map(d.tr.Doc(), d.tr.Mapping().Slice(d.baseSelFor, d.tr.StepCount()))
		d.baseSelFor = d.tr.StepCount()
	}
	return d.baseSel
}

// SetSelection replaces the selection. The given selection must be
// valid against the delta's current document. Setting a selection
// discards the stored marks: an explicit mark choice made against an
// earlier cursor position is no longer trustworthy.
func (d *Delta) SetSelection(sel selection.Selection) *Delta {
	d.baseSel = sel
	d.baseSelFor = d.tr.StepCount()
	d.updated = d.updated&^updatedMarks | updatedSelection
	d.storedMarks = nil
	return d
}

// SelectionSet reports whether the selection was explicitly set on
// this delta.
func (d *Delta) SelectionSet() bool {
	return d.updated&updatedSelection != 0
}

// StoredMarks returns the marks applied to the next inserted inline
// content, or nil when marks are inherited from the document position.
func (d *Delta) StoredMarks() []doc.Mark {
	return d.storedMarks
}

// SetStoredMarks replaces the stored marks and records them as
// explicitly set.
func (d *Delta) SetStoredMarks(marks []doc.Mark) *Delta {
	d.storedMarks = marks
	d.updated |= updatedMarks
	return d
}

// EnsureMarks sets the stored marks, but only if they differ from the
// current ones.
func (d *Delta) EnsureMarks(marks []doc.Mark) *Delta {
	if !doc.SameMarks(d.storedMarks, marks) {
		d.SetStoredMarks(marks)
	}
	return d
}

// StoredMarksSet reports whether the stored marks were explicitly set
// on this delta and not discarded since.
func (d *Delta) StoredMarksSet() bool {
	return d.updated&updatedMarks != 0
}

// AddStoredMark adds a mark to the stored marks, seeding them from the
// marks at the selection head when no stored marks are present. Unlike
// SetStoredMarks this is an incremental adjustment and does not mark
// the stored marks as explicitly set.
func (d *Delta) AddStoredMark(mark doc.Mark) *Delta {
	d.storedMarks = mark.AddToSet(d.seededMarks())
	return d
}

// RemoveStoredMark removes a mark from the stored marks, with the same
// seeding rule as AddStoredMark.
func (d *Delta) RemoveStoredMark(mark doc.Mark) *Delta {
	d.storedMarks = mark.RemoveFromSet(d.seededMarks())
	return d
}

// RemoveStoredMarkType removes all marks of a type from the stored
// marks, with the same seeding rule as AddStoredMark.
func (d *Delta) RemoveStoredMarkType(t *doc.MarkType) *Delta {
	d.storedMarks = doc.RemoveTypeFromSet(t, d.seededMarks())
	return d
}

// seededMarks returns the stored marks, falling back to the marks at
// the current selection's head.
func (d *Delta) seededMarks() []doc.Mark {
	if d.storedMarks != nil {
		return d.storedMarks
	}
	head := d.Selection().ResolvedHead()
	if head == nil {
		return nil
	}
	return head.Marks()
}

// Time returns the delta's timestamp in Unix milliseconds.
func (d *Delta) Time() int64 {
	return d.time
}

// SetTime overwrites the delta's timestamp.
func (d *Delta) SetTime(t int64) *Delta {
	d.time = t
	return d
}

// ScrollIntoView requests that the selection be scrolled into view
// when the delta is applied. There is no way to retract the request.
func (d *Delta) ScrollIntoView() *Delta {
	d.updated |= updatedScroll
	return d
}

// ScrolledIntoView reports whether scrolling was requested.
func (d *Delta) ScrolledIntoView() bool {
	return d.updated&updatedScroll != 0
}

// AddStep applies a structural edit and appends it to the log. Any
// structural edit discards the stored marks: the document change may
// have invalidated the formatting context they were chosen for.
func (d *Delta) AddStep(s transform.Step) error {
	if err := d.tr.AddStep(s); err != nil {
		return err
	}
	d.storedMarks = nil
	d.updated &^= updatedMarks
	return nil
}

// Replace replaces the range [from, to) with the given slice. A
// replacement of nothing with nothing appends no step.
func (d *Delta) Replace(from, to int, slice *doc.Slice) error {
	if from == to && slice.Size() == 0 {
		return nil
	}
	return d.AddStep(transform.NewReplaceStep(from, to, slice))
}

// ReplaceWith replaces the range [from, to) with a single node.
func (d *Delta) ReplaceWith(from, to int, n *doc.Node) error {
	return d.Replace(from, to, doc.SliceOf(n))
}

// Delete removes the range [from, to).
func (d *Delta) Delete(from, to int) error {
	return d.Replace(from, to, doc.EmptySlice)
}

// Insert inserts a node at the given position.
func (d *Delta) Insert(pos int, n *doc.Node) error {
	return d.ReplaceWith(pos, pos, n)
}

// ReplaceSelection replaces the current selection with the given
// slice and moves the selection to the end of the inserted content.
// The cursor is biased toward the inserted content when its rightmost
// entity is inline, or when the slice is closed on the right and ends
// in a textblock.
func (d *Delta) ReplaceSelection(slice *doc.Slice) error {
	sel := d.Selection()
	from, to := sel.From(), sel.To()
	startLen := d.tr.StepCount()
	if err := d.Replace(from, to, slice); err != nil {
		return err
	}

	last := slice.Content.LastChild()
	for i := 0; i < slice.OpenEnd && last != nil; i++ {
		last = last.Content.LastChild()
	}
	bias := selection.BiasForward
	if last != nil && (last.IsInline() || slice.OpenEnd == 0 && last.IsTextBlock()) {
		bias = selection.BiasBackward
	}
	d.selectionToInsertionEnd(startLen, bias)
	return nil
}

// ReplaceSelectionWith replaces the current selection with a single
// node. Unless inheritMarks is false, the node receives the stored
// marks when present, and otherwise the marks active at the replaced
// range: the marks on the side toward the range's end when the
// selection is non-empty, or the marks adjoining the cursor otherwise.
func (d *Delta) ReplaceSelectionWith(n *doc.Node, inheritMarks bool) error {
	sel := d.Selection()
	if inheritMarks {
		marks := d.storedMarks
		if marks == nil {
			if sel.Empty() {
				marks = sel.ResolvedFrom().Marks()
			} else {
				marks = sel.ResolvedFrom().MarksAcross(sel.ResolvedTo())
			}
		}
		n = n.WithMarks(marks)
	}
	startLen := d.tr.StepCount()
	if err := d.ReplaceWith(sel.From(), sel.To(), n); err != nil {
		return err
	}
	bias := selection.BiasForward
	if n.IsInline() {
		bias = selection.BiasBackward
	}
	d.selectionToInsertionEnd(startLen, bias)
	return nil
}

// DeleteSelection removes the current selection's range.
func (d *Delta) DeleteSelection() error {
	return d.ReplaceSelection(doc.EmptySlice)
}

// InsertText replaces the current selection with the given text,
// inheriting marks. Empty text deletes the selection instead.
func (d *Delta) InsertText(text string) error {
	if text == "" {
		return d.DeleteSelection()
	}
	return d.ReplaceSelectionWith(doc.NewText(text), true)
}

// InsertTextRange replaces the range [from, to) with the given text.
// Empty text deletes the range. The text carries the stored marks when
// present, and otherwise the marks active at from: toward `to` when
// the range is non-empty, or adjoining the point otherwise. Unlike
// InsertText, the selection is not re-placed beyond what the range
// replacement implies.
func (d *Delta) InsertTextRange(text string, from, to int) error {
	if text == "" {
		return d.Delete(from, to)
	}
	marks := d.storedMarks
	if marks == nil {
		rFrom, err := d.Doc().Resolve(from)
		if err != nil {
			return err
		}
		if from == to {
			marks = rFrom.Marks()
		} else {
			rTo, err := d.Doc().Resolve(to)
			if err != nil {
				return err
			}
			marks = rFrom.MarksAcross(rTo)
		}
	}
	return d.ReplaceWith(from, to, doc.NewText(text, marks...))
}

// selectionToInsertionEnd moves the selection to the end of the
// content inserted by the last step, when any step was appended since
// startLen. Only the last step's map matters: each replace operation
// contributes exactly one step, so its map alone locates the inserted
// content's end.
func (d *Delta) selectionToInsertionEnd(startLen int, bias selection.Bias) {
	last := d.tr.StepCount() - 1
	if last < startLen {
		return
	}
	end := -1
	d.tr.Mapping().Maps()[last].ForEach(func(_, _, _, newTo int) {
		if newTo > end {
			end = newTo
		}
	})
	if end < 0 {
		return
	}
	rp, err := d.tr.Doc().Resolve(end)
	if err != nil {
		return
	}
	d.SetSelection(selection.Near(d.tr.Doc(), rp, bias))
}
