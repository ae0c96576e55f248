// Package doc provides the immutable rich-text document model: typed
// element nodes, text nodes with formatting marks, and the position
// scheme shared by the transform and selection packages.
//
// The doc package provides:
//
//   - Node: immutable document tree nodes (elements and text)
//   - Fragment: immutable sibling sequences with cached sizes
//   - Mark / MarkType: inline formatting with ordered, type-unique sets
//   - Slice: content with open edges for structural replacement
//   - ResolvedPos: a position resolved to its chain of ancestors
//   - Replace: structural range replacement honoring open depths
//   - JSON codec and HTML export
//
// Positions are counted in tokens: one per rune of text, one per leaf
// node, and one for each side of a non-leaf node. A document like
//
//	doc(paragraph("ab"))
//
// has positions 0 (before the paragraph), 1 (before "a"), 2 (between
// "a" and "b"), 3 (after "b") and 4 (after the paragraph).
//
// Basic usage:
//
//	d := doc.NewNode(doc.TypeDoc,
//	    doc.NewNode(doc.TypeParagraph, doc.NewText("hello")))
//
//	// Replace "ell" with "ipp"
//	d2, err := d.Replace(2, 5, doc.SliceOf(doc.NewText("ipp")))
//
//	// Resolve a position and inspect its surroundings
//	rp, err := d2.Resolve(3)
//	marks := rp.Marks()
//
// Immutability:
//
// Nodes, fragments and slices are never modified after construction.
// Operations return new values that share unchanged subtrees with
// their inputs, so copies are cheap and old documents stay valid.
package doc
