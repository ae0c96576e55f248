package doc

import "fmt"

// Slice is a piece of document content with, on each side, a number of
// ancestor levels left "open": an open edge means the outermost nodes
// on that side are incomplete and may be joined with compatible nodes
// around the insertion point.
type Slice struct {
	// Content is the slice's fragment.
	Content *Fragment

	// OpenStart is the open depth at the left edge.
	OpenStart int

	// OpenEnd is the open depth at the right edge.
	OpenEnd int
}

// EmptySlice is the shared empty slice.
var EmptySlice = &Slice{Content: EmptyFragment}

// NewSlice creates a slice with the given open depths.
func NewSlice(content *Fragment, openStart, openEnd int) *Slice {
	return &Slice{Content: content, OpenStart: openStart, OpenEnd: openEnd}
}

// SliceOf creates a closed slice holding a single node.
func SliceOf(n *Node) *Slice {
	return &Slice{Content: NewFragment(n)}
}

// Size returns the size the slice adds when inserted: the content size
// minus the tokens saved by joining at open edges.
func (s *Slice) Size() int {
	return s.Content.Size() - s.OpenStart - s.OpenEnd
}

// Eq returns true if two slices have equal content and open depths.
func (s *Slice) Eq(other *Slice) bool {
	return s.OpenStart == other.OpenStart && s.OpenEnd == other.OpenEnd && s.Content.Eq(other.Content)
}

// String returns a debug representation of the slice.
func (s *Slice) String() string {
	return fmt.Sprintf("slice(%s, %d, %d)", s.Content, s.OpenStart, s.OpenEnd)
}

// Slice extracts the content between two positions as a slice whose
// open depths record how far the endpoints sat inside nested nodes.
func (n *Node) Slice(from, to int) (*Slice, error) {
	if from > to {
		return nil, fmt.Errorf("slice [%d, %d): %w", from, to, ErrRangeInvalid)
	}
	if from == to {
		return EmptySlice, nil
	}
	rFrom, err := n.Resolve(from)
	if err != nil {
		return nil, err
	}
	rTo, err := n.Resolve(to)
	if err != nil {
		return nil, err
	}
	depth := rFrom.SharedDepth(to)
	node, start := rFrom.Node(depth), rFrom.Start(depth)
	content := node.Content.Cut(from-start, to-start)
	return NewSlice(content, rFrom.Depth()-depth, rTo.Depth()-depth), nil
}
