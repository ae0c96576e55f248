// Package selection provides the selection hierarchy for the document
// engine: text selections (cursors and ranges in inline content), node
// selections (a single selected leaf), position mapping through edits,
// and the nearest-valid-selection resolver.
//
// Selections are immutable and resolved against a specific document.
// After the document changes, a selection is brought up to date with
// Map, which translates its positions through the edits' position
// mapping and falls back to the nearest valid selection when the
// original shape no longer fits (e.g. the selected node was deleted).
//
// Basic usage:
//
//	sel, err := selection.NewCursor(d, 3)
//	moved := sel.Map(newDoc, tr.Mapping())
//
//	// Snap an arbitrary position to a valid cursor position,
//	// preferring positions before it:
//	near := selection.Near(d, rp, selection.BiasBackward)
package selection
