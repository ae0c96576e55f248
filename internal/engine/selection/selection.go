package selection

import (
	"errors"
	"fmt"

	"github.com/dshills/quill/internal/engine/doc"
	"github.com/dshills/quill/internal/engine/transform"
)

// ErrInvalidSelection indicates a selection that does not fit the
// document it was created against.
var ErrInvalidSelection = errors.New("invalid selection")

// Bias is the direction used when snapping a position to the nearest
// valid cursor position.
type Bias int

const (
	// BiasBackward searches toward lower positions.
	BiasBackward Bias = -1

	// BiasForward searches toward higher positions.
	BiasForward Bias = 1
)

// Selection is a position or range in a document. Implementations are
// immutable and tied to the document they were resolved against.
type Selection interface {
	// From returns the lower bound of the selection.
	From() int

	// To returns the upper bound of the selection.
	To() int

	// Anchor returns the side that stays fixed when extending.
	Anchor() int

	// Head returns the moving side, where typing happens.
	Head() int

	// Empty returns true when the selection covers no content.
	Empty() bool

	// Eq returns true if the other selection covers the same positions
	// and is of the same kind.
	Eq(other Selection) bool

	// ResolvedFrom returns the resolved lower bound.
	ResolvedFrom() *doc.ResolvedPos

	// ResolvedTo returns the resolved upper bound.
	ResolvedTo() *doc.ResolvedPos

	// ResolvedHead returns the resolved head position.
	ResolvedHead() *doc.ResolvedPos

	// Map translates the selection through a position mapping into the
	// given document, snapping to the nearest valid selection when the
	// mapped positions no longer support this selection kind.
	Map(d *doc.Node, mapping *transform.Mapping) Selection
}

// resolveClamped resolves a position, clamping it into the document.
func resolveClamped(d *doc.Node, pos int) *doc.ResolvedPos {
	if pos < 0 {
		pos = 0
	}
	if size := d.Content.Size(); pos > size {
		pos = size
	}
	rp, err := d.Resolve(pos)
	if err != nil {
		// Unreachable: the position was just clamped into range.
		panic(fmt.Sprintf("resolve clamped position %d: %v", pos, err))
	}
	return rp
}

// TextSelection is a cursor or range whose endpoints sit in inline
// content.
type TextSelection struct {
	rAnchor *doc.ResolvedPos
	rHead   *doc.ResolvedPos
}

// NewTextSelection creates a text selection between two positions.
func NewTextSelection(d *doc.Node, anchor, head int) (*TextSelection, error) {
	rAnchor, err := d.Resolve(anchor)
	if err != nil {
		return nil, err
	}
	rHead, err := d.Resolve(head)
	if err != nil {
		return nil, err
	}
	return &TextSelection{rAnchor: rAnchor, rHead: rHead}, nil
}

// NewCursor creates a collapsed text selection at a position.
func NewCursor(d *doc.Node, pos int) (*TextSelection, error) {
	rp, err := d.Resolve(pos)
	if err != nil {
		return nil, err
	}
	return textAt(rp), nil
}

// textAt builds a collapsed text selection at a resolved position.
func textAt(rp *doc.ResolvedPos) *TextSelection {
	return &TextSelection{rAnchor: rp, rHead: rp}
}

// Anchor returns the fixed side of the selection.
func (s *TextSelection) Anchor() int { return s.rAnchor.Pos }

// Head returns the moving side of the selection.
func (s *TextSelection) Head() int { return s.rHead.Pos }

// From returns the lower bound.
func (s *TextSelection) From() int { return min(s.rAnchor.Pos, s.rHead.Pos) }

// To returns the upper bound.
func (s *TextSelection) To() int { return max(s.rAnchor.Pos, s.rHead.Pos) }

// Empty returns true for a collapsed selection.
func (s *TextSelection) Empty() bool { return s.rAnchor.Pos == s.rHead.Pos }

// ResolvedFrom returns the resolved lower bound.
func (s *TextSelection) ResolvedFrom() *doc.ResolvedPos {
	if s.rAnchor.Pos <= s.rHead.Pos {
		return s.rAnchor
	}
	return s.rHead
}

// ResolvedTo returns the resolved upper bound.
func (s *TextSelection) ResolvedTo() *doc.ResolvedPos {
	if s.rAnchor.Pos <= s.rHead.Pos {
		return s.rHead
	}
	return s.rAnchor
}

// ResolvedHead returns the resolved head.
func (s *TextSelection) ResolvedHead() *doc.ResolvedPos { return s.rHead }

// Eq returns true for text selections with equal anchor and head.
func (s *TextSelection) Eq(other Selection) bool {
	o, ok := other.(*TextSelection)
	return ok && o.rAnchor.Pos == s.rAnchor.Pos && o.rHead.Pos == s.rHead.Pos
}

// Map translates the selection through the mapping. When the mapped
// head no longer sits in a textblock, the nearest valid selection is
// used instead.
//
// Both endpoints map with backward association: a cursor sitting
// exactly where content is inserted stays before the insertion.
// Operations that want the cursor after inserted content place it
// explicitly rather than relying on mapping.
func (s *TextSelection) Map(d *doc.Node, mapping *transform.Mapping) Selection {
	rHead := resolveClamped(d, mapping.Map(s.rHead.Pos, -1))
	if !rHead.Parent().IsTextBlock() {
		return Near(d, rHead, BiasForward)
	}
	rAnchor := resolveClamped(d, mapping.Map(s.rAnchor.Pos, -1))
	if !rAnchor.Parent().IsTextBlock() {
		rAnchor = rHead
	}
	return &TextSelection{rAnchor: rAnchor, rHead: rHead}
}

// String returns a debug representation.
func (s *TextSelection) String() string {
	if s.Empty() {
		return fmt.Sprintf("cursor(%d)", s.rHead.Pos)
	}
	return fmt.Sprintf("text(%d, %d)", s.rAnchor.Pos, s.rHead.Pos)
}

// NodeSelection selects a single non-text node.
type NodeSelection struct {
	rAnchor *doc.ResolvedPos
	node    *doc.Node
}

// NewNodeSelection creates a node selection over the node directly
// after the given position.
func NewNodeSelection(d *doc.Node, pos int) (*NodeSelection, error) {
	rp, err := d.Resolve(pos)
	if err != nil {
		return nil, err
	}
	node := rp.NodeAfter()
	if node == nil || node.IsText() {
		return nil, fmt.Errorf("no selectable node at %d: %w", pos, ErrInvalidSelection)
	}
	return &NodeSelection{rAnchor: rp, node: node}, nil
}

// Node returns the selected node.
func (s *NodeSelection) Node() *doc.Node { return s.node }

// Anchor returns the position before the selected node.
func (s *NodeSelection) Anchor() int { return s.rAnchor.Pos }

// Head returns the position after the selected node.
func (s *NodeSelection) Head() int { return s.rAnchor.Pos + s.node.NodeSize() }

// From returns the position before the selected node.
func (s *NodeSelection) From() int { return s.rAnchor.Pos }

// To returns the position after the selected node.
func (s *NodeSelection) To() int { return s.rAnchor.Pos + s.node.NodeSize() }

// Empty returns false; a node selection always covers its node.
func (s *NodeSelection) Empty() bool { return false }

// ResolvedFrom returns the resolved position before the node.
func (s *NodeSelection) ResolvedFrom() *doc.ResolvedPos { return s.rAnchor }

// ResolvedTo returns the resolved position after the node.
func (s *NodeSelection) ResolvedTo() *doc.ResolvedPos {
	return resolveClamped(s.rAnchor.Node(0), s.To())
}

// ResolvedHead returns the resolved position after the node.
func (s *NodeSelection) ResolvedHead() *doc.ResolvedPos { return s.ResolvedTo() }

// Eq returns true for node selections anchored at the same position.
func (s *NodeSelection) Eq(other Selection) bool {
	o, ok := other.(*NodeSelection)
	return ok && o.rAnchor.Pos == s.rAnchor.Pos
}

// Map translates the selection through the mapping. When the selected
// node was deleted, the nearest valid selection is used instead.
func (s *NodeSelection) Map(d *doc.Node, mapping *transform.Mapping) Selection {
	r := mapping.MapResult(s.rAnchor.Pos, -1)
	rp := resolveClamped(d, r.Pos)
	if r.Deleted {
		return Near(d, rp, BiasForward)
	}
	if sel, err := NewNodeSelection(d, rp.Pos); err == nil {
		return sel
	}
	return Near(d, rp, BiasForward)
}

// String returns a debug representation.
func (s *NodeSelection) String() string {
	return fmt.Sprintf("node(%d, %s)", s.rAnchor.Pos, s.node.Type)
}
