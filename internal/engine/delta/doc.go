// Package delta provides the editing delta: an atomic, composable
// record of structural document edits plus the auxiliary editor state
// that travels with them: selection, stored formatting marks, scroll
// intent and metadata.
//
// A delta is created from an editor-state snapshot, mutated in
// sequence by a single caller, and then applied to produce the next
// editor state:
//
//	d := delta.New(st.Doc, st.Sel, st.StoredMarks)
//	if err := d.InsertText("hello"); err != nil {
//	    // the document did not change; d is still usable
//	}
//	d.ScrollIntoView()
//	next := st.Apply(d)
//
// # Lazy selection mapping
//
// The selection is position-addressed, and every structural edit can
// displace it. Instead of re-mapping eagerly on each edit, the delta
// remembers up to which step its cached selection is valid and maps it
// through the remaining steps on the next read. Appending many edits
// and reading the selection once therefore pays the mapping cost once.
//
// # Stored marks
//
// Stored marks override the formatting inherited from the cursor
// position for the next insertion. Any structural edit or explicit
// selection change discards them, since the context they were chosen
// for may be gone. SetStoredMarks records an explicit override
// (StoredMarksSet becomes true); AddStoredMark and RemoveStoredMark
// are incremental adjustments and deliberately do not.
//
// # Update flags
//
// SelectionSet, StoredMarksSet and ScrolledIntoView report whether the
// corresponding state was explicitly touched. The state-application
// step uses them to distinguish explicit choices from drift.
package delta
