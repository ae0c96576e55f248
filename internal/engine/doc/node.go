package doc

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Node is an immutable document node. Element nodes carry a content
// fragment; text nodes carry a rune string instead. Positions are
// counted in tokens: one per rune of text, one per leaf node, and one
// for each side of a non-leaf node.
type Node struct {
	// Type is the node's type.
	Type *NodeType

	// Attrs holds type-specific attributes (e.g. image src, heading level).
	Attrs map[string]string

	// Marks are the inline formatting marks applied to this node.
	// Only meaningful for inline nodes.
	Marks []Mark

	// Text is the node's text. Only set for text nodes.
	Text string

	// Content holds the node's children. Never nil for element nodes.
	Content *Fragment
}

// NewNode creates an element node of the given type with the given
// children.
func NewNode(t *NodeType, children ...*Node) *Node {
	return &Node{Type: t, Content: NewFragment(children...)}
}

// NewNodeAttrs creates an element node with attributes.
func NewNodeAttrs(t *NodeType, attrs map[string]string, children ...*Node) *Node {
	return &Node{Type: t, Attrs: attrs, Content: NewFragment(children...)}
}

// NewText creates a text node.
func NewText(text string, marks ...Mark) *Node {
	return &Node{Type: TypeText, Text: text, Marks: marks, Content: EmptyFragment}
}

// NodeSize returns the number of position tokens this node occupies.
func (n *Node) NodeSize() int {
	if n.IsText() {
		return n.textLen()
	}
	if n.Type.IsLeaf() {
		return 1
	}
	return n.Content.Size() + 2
}

// IsText returns true for text nodes.
func (n *Node) IsText() bool {
	return n.Type.Text
}

// IsInline returns true for nodes living in inline content.
func (n *Node) IsInline() bool {
	return n.Type.Inline
}

// IsBlock returns true for block-level nodes.
func (n *Node) IsBlock() bool {
	return !n.Type.Inline
}

// IsTextBlock returns true for block nodes with inline content.
func (n *Node) IsTextBlock() bool {
	return n.Type.IsTextBlock()
}

// IsLeaf returns true for nodes that never have children.
func (n *Node) IsLeaf() bool {
	return n.Type.IsLeaf()
}

// ChildCount returns the number of direct children.
func (n *Node) ChildCount() int {
	return n.Content.ChildCount()
}

// Child returns the child at the given index.
func (n *Node) Child(i int) *Node {
	return n.Content.Child(i)
}

// MaybeChild returns the child at the given index, or nil.
func (n *Node) MaybeChild(i int) *Node {
	return n.Content.MaybeChild(i)
}

// Copy returns a node with the same type, attrs and marks but the
// given content.
func (n *Node) Copy(content *Fragment) *Node {
	if content == n.Content {
		return n
	}
	return &Node{Type: n.Type, Attrs: n.Attrs, Marks: n.Marks, Text: n.Text, Content: content}
}

// WithText returns a text node like n but with different text.
func (n *Node) WithText(text string) *Node {
	if text == n.Text {
		return n
	}
	return &Node{Type: n.Type, Attrs: n.Attrs, Marks: n.Marks, Text: text, Content: n.Content}
}

// WithMarks returns a node like n but with the given mark set.
func (n *Node) WithMarks(marks []Mark) *Node {
	if SameMarks(marks, n.Marks) {
		return n
	}
	return &Node{Type: n.Type, Attrs: n.Attrs, Marks: marks, Text: n.Text, Content: n.Content}
}

// textLen returns the text length in runes. Zero for element nodes.
func (n *Node) textLen() int {
	return utf8.RuneCountInString(n.Text)
}

// cutText returns a text node holding the runes in [from, to).
func (n *Node) cutText(from, to int) *Node {
	if from == 0 && to == n.textLen() {
		return n
	}
	runes := []rune(n.Text)
	return n.WithText(string(runes[from:to]))
}

// Cut returns the part of this node between the given content
// positions, keeping boundary children open.
func (n *Node) Cut(from, to int) *Node {
	if n.IsText() {
		return n.cutText(from, to)
	}
	return n.Copy(n.Content.Cut(from, to))
}

// TextContent returns the concatenated text of all text nodes below n.
func (n *Node) TextContent() string {
	if n.IsText() {
		return n.Text
	}
	var b strings.Builder
	for i := 0; i < n.ChildCount(); i++ {
		b.WriteString(n.Child(i).TextContent())
	}
	return b.String()
}

// Eq returns true if two nodes are structurally equal.
func (n *Node) Eq(other *Node) bool {
	if n == other {
		return true
	}
	if n.Type != other.Type || n.Text != other.Text || !SameMarks(n.Marks, other.Marks) {
		return false
	}
	if len(n.Attrs) != len(other.Attrs) {
		return false
	}
	for k, v := range n.Attrs {
		if other.Attrs[k] != v {
			return false
		}
	}
	return n.Content.Eq(other.Content)
}

// checkContent validates that the fragment is acceptable content for
// this node's type.
func (n *Node) checkContent(content *Fragment) error {
	for i := 0; i < content.ChildCount(); i++ {
		child := content.Child(i)
		switch n.Type.Content {
		case ContentNone:
			return fmt.Errorf("%s cannot have children: %w", n.Type, ErrInvalidContent)
		case ContentInline:
			if !child.IsInline() {
				return fmt.Errorf("%s in %s: %w", child.Type, n.Type, ErrInvalidContent)
			}
		case ContentBlock:
			if child.IsInline() {
				return fmt.Errorf("%s in %s: %w", child.Type, n.Type, ErrInvalidContent)
			}
		}
	}
	return nil
}

// String returns a debug representation, e.g. paragraph("hello").
func (n *Node) String() string {
	if n.IsText() {
		return fmt.Sprintf("%q", n.Text)
	}
	if n.ChildCount() == 0 {
		return n.Type.Name
	}
	return fmt.Sprintf("%s(%s)", n.Type.Name, n.Content)
}
