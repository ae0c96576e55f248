package doc

import "fmt"

// pathEntry records one level of a resolved position's ancestor chain.
type pathEntry struct {
	node   *Node // ancestor node at this depth
	index  int   // index of the child the position points at or into
	before int   // absolute position before that child
}

// ResolvedPos is a position resolved against a specific document,
// carrying the chain of ancestor nodes around it. Resolving is O(depth);
// callers that need several queries at one position should resolve once
// and reuse the result.
type ResolvedPos struct {
	// Pos is the absolute position this was resolved from.
	Pos int

	path       []pathEntry
	textOffset int
}

// Resolve resolves a position in the document rooted at n.
func (n *Node) Resolve(pos int) (*ResolvedPos, error) {
	if pos < 0 || pos > n.Content.Size() {
		return nil, fmt.Errorf("resolve %d in document of size %d: %w", pos, n.Content.Size(), ErrPositionOutOfRange)
	}
	r := &ResolvedPos{Pos: pos}
	node, start, parentOffset := n, 0, pos
	for {
		index, offset := node.Content.findIndex(parentOffset)
		rem := parentOffset - offset
		r.path = append(r.path, pathEntry{node: node, index: index, before: start + offset})
		if rem == 0 {
			break
		}
		node = node.Child(index)
		if node.IsText() {
			r.textOffset = rem
			break
		}
		parentOffset = rem - 1
		start += offset + 1
	}
	return r, nil
}

// Depth returns the number of ancestor levels above the position's
// parent. Zero means the position points directly into the document.
func (r *ResolvedPos) Depth() int {
	return len(r.path) - 1
}

// Node returns the ancestor node at the given depth. Depth 0 is the
// document itself.
func (r *ResolvedPos) Node(depth int) *Node {
	return r.path[depth].node
}

// Parent returns the node the position points into.
func (r *ResolvedPos) Parent() *Node {
	return r.path[len(r.path)-1].node
}

// Index returns the child index the position points at within the
// ancestor at the given depth.
func (r *ResolvedPos) Index(depth int) int {
	return r.path[depth].index
}

// Start returns the absolute position at the start of the content of
// the ancestor at the given depth.
func (r *ResolvedPos) Start(depth int) int {
	if depth == 0 {
		return 0
	}
	return r.path[depth-1].before + 1
}

// End returns the absolute position at the end of the content of the
// ancestor at the given depth.
func (r *ResolvedPos) End(depth int) int {
	return r.Start(depth) + r.Node(depth).Content.Size()
}

// Before returns the absolute position directly before the ancestor at
// the given depth. Not valid for depth 0.
func (r *ResolvedPos) Before(depth int) int {
	return r.path[depth-1].before
}

// After returns the absolute position directly after the ancestor at
// the given depth. Not valid for depth 0.
func (r *ResolvedPos) After(depth int) int {
	return r.path[depth-1].before + r.Node(depth).NodeSize()
}

// ParentOffset returns the position's offset within its parent's
// content.
func (r *ResolvedPos) ParentOffset() int {
	return r.Pos - r.Start(r.Depth())
}

// TextOffset returns the offset into the text node the position points
// into, or zero when it sits between nodes.
func (r *ResolvedPos) TextOffset() int {
	return r.textOffset
}

// NodeAfter returns the node directly after the position, cutting a
// text node the position points into. Nil at the end of the parent.
func (r *ResolvedPos) NodeAfter() *Node {
	last := r.path[len(r.path)-1]
	parent := r.Parent()
	index := last.index
	if index == parent.ChildCount() {
		return nil
	}
	child := parent.Child(index)
	if dOff := r.Pos - last.before; dOff > 0 {
		return child.cutText(dOff, child.textLen())
	}
	return child
}

// NodeBefore returns the node directly before the position. Nil at the
// start of the parent.
func (r *ResolvedPos) NodeBefore() *Node {
	last := r.path[len(r.path)-1]
	parent := r.Parent()
	if dOff := r.Pos - last.before; dOff > 0 {
		return parent.Child(last.index).cutText(0, dOff)
	}
	if last.index == 0 {
		return nil
	}
	return parent.Child(last.index - 1)
}

// Marks returns the formatting marks adjoining this position, favoring
// the node before the gap, the way a cursor inherits formatting when
// the user starts typing.
func (r *ResolvedPos) Marks() []Mark {
	parent := r.Parent()
	if parent.Content.Size() == 0 {
		return nil
	}
	if r.textOffset > 0 {
		return parent.Child(r.Index(r.Depth())).Marks
	}
	index := r.Index(r.Depth())
	main := parent.MaybeChild(index - 1)
	if main == nil {
		main = parent.MaybeChild(index)
	}
	if main == nil {
		return nil
	}
	return main.Marks
}

// MarksAcross returns the marks of the inline content directly after
// this position, used when replacing the non-empty range ending at
// end: the new content inherits the formatting of what it replaces.
// Returns nil when the position is not followed by inline content.
//
// The end position takes no part in the lookup today. Mark types here
// carry no notion of excluding themselves span-finally, which is the
// only thing end would be consulted for; it stays in the signature so
// the range contract is explicit at call sites.
func (r *ResolvedPos) MarksAcross(end *ResolvedPos) []Mark {
	after := r.Parent().MaybeChild(r.Index(r.Depth()))
	if after == nil || !after.IsInline() {
		return nil
	}
	return after.Marks
}

// SharedDepth returns the deepest depth at which this position and the
// given position share an ancestor's content.
func (r *ResolvedPos) SharedDepth(pos int) int {
	for depth := r.Depth(); depth > 0; depth-- {
		if r.Start(depth) <= pos && pos <= r.End(depth) {
			return depth
		}
	}
	return 0
}

// String returns a debug representation of the position.
func (r *ResolvedPos) String() string {
	return fmt.Sprintf("pos %d in %s (depth %d)", r.Pos, r.Parent().Type, r.Depth())
}
