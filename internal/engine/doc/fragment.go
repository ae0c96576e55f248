package doc

import (
	"fmt"
	"strings"
)

// Fragment is an immutable sequence of sibling nodes. The size of a
// fragment is the sum of its children's node sizes.
type Fragment struct {
	children []*Node
	size     int
}

// EmptyFragment is the shared empty fragment.
var EmptyFragment = &Fragment{}

// NewFragment creates a fragment from the given nodes. Adjacent text
// nodes with the same marks are merged.
func NewFragment(nodes ...*Node) *Fragment {
	f := &Fragment{}
	for _, n := range nodes {
		f = f.appendNode(n)
	}
	return f
}

// fragmentOf wraps a prebuilt child slice without merging. The slice
// must not be mutated afterwards.
func fragmentOf(children []*Node) *Fragment {
	size := 0
	for _, c := range children {
		size += c.NodeSize()
	}
	return &Fragment{children: children, size: size}
}

// Size returns the total size of the fragment's content.
func (f *Fragment) Size() int {
	return f.size
}

// ChildCount returns the number of direct children.
func (f *Fragment) ChildCount() int {
	return len(f.children)
}

// Child returns the child at the given index. It panics if the index
// is out of range, matching slice semantics.
func (f *Fragment) Child(i int) *Node {
	return f.children[i]
}

// MaybeChild returns the child at the given index, or nil.
func (f *Fragment) MaybeChild(i int) *Node {
	if i < 0 || i >= len(f.children) {
		return nil
	}
	return f.children[i]
}

// FirstChild returns the first child, or nil for an empty fragment.
func (f *Fragment) FirstChild() *Node {
	if len(f.children) == 0 {
		return nil
	}
	return f.children[0]
}

// LastChild returns the last child, or nil for an empty fragment.
func (f *Fragment) LastChild() *Node {
	if len(f.children) == 0 {
		return nil
	}
	return f.children[len(f.children)-1]
}

// appendNode returns a fragment with n added at the end, merging text
// nodes that carry the same marks.
func (f *Fragment) appendNode(n *Node) *Fragment {
	if last := f.LastChild(); last != nil && last.IsText() && n.IsText() && SameMarks(last.Marks, n.Marks) {
		merged := last.WithText(last.Text + n.Text)
		children := append(f.children[:len(f.children)-1:len(f.children)-1], merged)
		return fragmentOf(children)
	}
	children := append(f.children[:len(f.children):len(f.children)], n)
	return fragmentOf(children)
}

// Append returns a fragment holding this fragment's children followed
// by the other's.
func (f *Fragment) Append(other *Fragment) *Fragment {
	if other.size == 0 {
		return f
	}
	if f.size == 0 {
		return other
	}
	result := f
	for _, c := range other.children {
		result = result.appendNode(c)
	}
	return result
}

// Cut returns the sub-fragment between the given positions. Children
// straddling a boundary are cut; non-leaf children are entered one
// token deep, mirroring the node size scheme.
func (f *Fragment) Cut(from, to int) *Fragment {
	if from == 0 && to == f.size {
		return f
	}
	result := &Fragment{}
	if to <= from {
		return result
	}
	pos := 0
	for _, child := range f.children {
		if pos >= to {
			break
		}
		end := pos + child.NodeSize()
		if end > from {
			cut := child
			if pos < from || end > to {
				if child.IsText() {
					cut = child.cutText(max(0, from-pos), min(child.textLen(), to-pos))
				} else {
					cut = child.Copy(child.Content.Cut(max(0, from-pos-1), min(child.Content.Size(), to-pos-1)))
				}
			}
			result = result.appendNode(cut)
		}
		pos = end
	}
	return result
}

// ReplaceChild returns a fragment with the child at index i replaced.
func (f *Fragment) ReplaceChild(i int, n *Node) *Fragment {
	if f.children[i] == n {
		return f
	}
	children := make([]*Node, len(f.children))
	copy(children, f.children)
	children[i] = n
	return fragmentOf(children)
}

// findIndex locates the child containing the given position. It
// returns the child index and the position at which that child starts.
// A position exactly on a child boundary yields the index of the child
// starting there.
func (f *Fragment) findIndex(pos int) (index, offset int) {
	if pos == 0 {
		return 0, 0
	}
	if pos == f.size {
		return len(f.children), pos
	}
	cur := 0
	for i, child := range f.children {
		end := cur + child.NodeSize()
		if end > pos {
			return i, cur
		}
		cur = end
	}
	// Unreachable for positions validated against size.
	return len(f.children), cur
}

// Eq returns true if two fragments hold equal children.
func (f *Fragment) Eq(other *Fragment) bool {
	if len(f.children) != len(other.children) {
		return false
	}
	for i := range f.children {
		if !f.children[i].Eq(other.children[i]) {
			return false
		}
	}
	return true
}

// String returns a human-readable representation of the fragment.
func (f *Fragment) String() string {
	var b strings.Builder
	for i, c := range f.children {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, c)
	}
	return b.String()
}
