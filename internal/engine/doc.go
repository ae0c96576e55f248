// Package engine provides the core rich-text document engine for Quill.
//
// The engine package serves as the main facade, combining the document
// model, the structural-edit log, the selection hierarchy and the
// editing delta into a unified, thread-safe API suitable for building
// rich-text editors.
//
// # Architecture
//
// The engine is built on several sub-packages:
//
//   - doc: immutable document tree (nodes, text, marks, slices, positions)
//   - transform: steps, position maps and the append-only edit log
//   - selection: text and node selections, mapping, nearest-valid resolver
//   - delta: the editing delta: edits plus selection, stored marks,
//     scroll intent and metadata, with lazy selection re-mapping
//   - state: the editor-state snapshot deltas are created from and
//     applied to
//
// # Thread Safety
//
// All Engine operations are thread-safe. The engine uses a read-write
// mutex to allow concurrent reads while serializing state changes. The
// documents and states it hands out are immutable and may be shared
// freely across goroutines; a delta is a single-owner builder and must
// be mutated by one goroutine until it is applied.
//
// # Basic Usage
//
// Create an engine and edit through deltas:
//
//	// Create a new engine (one empty paragraph)
//	e, _ := engine.New()
//
//	// Insert text at the selection
//	e.InsertText("Hello, World!")
//
//	// Build a delta by hand for more involved edits
//	d := e.NewDelta()
//	d.SetStoredMarks([]engine.Mark{doc.NewMark(doc.MarkBold)})
//	d.InsertText("bold")
//	d.ScrollIntoView()
//	e.Apply(d)
//
// # Loading Documents
//
// Create an engine from existing content:
//
//	// From a document value
//	e, _ := engine.New(engine.WithDocument(d))
//
//	// From document JSON
//	e, _ := engine.New(engine.WithJSON(data))
//
// # Error Handling
//
// Structural edits that do not fit the document (bad positions,
// content the target type rejects, mismatched slice depths) return
// errors wrapping the sentinel values in this package. A failed edit
// leaves the delta at the state preceding the call; it is safe to
// continue using or to discard, but it is not rolled back.
//
// Typical errors:
//   - ErrPositionOutOfRange: position outside the document
//   - ErrRangeInvalid: invalid range (e.g., end < start)
//   - ErrInvalidContent: content the target node type rejects
//   - ErrReplaceShape: slice open depths that do not line up
//   - ErrReadOnly: write attempted on a read-only engine
package engine
