package doc

import "fmt"

// Replace returns a new document with the content between the given
// positions replaced by the slice. Open slice edges are joined with
// the nodes cut open at the corresponding end of the range. The
// receiver is not modified. Returns an error when the slice's open
// depths do not line up with the range or the result would violate
// content constraints.
func (n *Node) Replace(from, to int, slice *Slice) (*Node, error) {
	if from > to {
		return nil, fmt.Errorf("replace [%d, %d): %w", from, to, ErrRangeInvalid)
	}
	rFrom, err := n.Resolve(from)
	if err != nil {
		return nil, err
	}
	rTo, err := n.Resolve(to)
	if err != nil {
		return nil, err
	}
	if slice.OpenStart > rFrom.Depth() {
		return nil, fmt.Errorf("inserted content deeper than insertion position: %w", ErrReplaceShape)
	}
	if rFrom.Depth()-slice.OpenStart != rTo.Depth()-slice.OpenEnd {
		return nil, fmt.Errorf("inconsistent open depths: %w", ErrReplaceShape)
	}
	return replaceOuter(rFrom, rTo, slice, 0)
}

func replaceOuter(rFrom, rTo *ResolvedPos, slice *Slice, depth int) (*Node, error) {
	index := rFrom.Index(depth)
	node := rFrom.Node(depth)

	// Both endpoints inside the same child and the slice still has
	// closed levels to spare: recurse into that child.
	if index == rTo.Index(depth) && depth < rFrom.Depth()-slice.OpenStart {
		inner, err := replaceOuter(rFrom, rTo, slice, depth+1)
		if err != nil {
			return nil, err
		}
		return node.Copy(node.Content.ReplaceChild(index, inner)), nil
	}

	if slice.Content.Size() == 0 {
		content, err := replaceTwoWay(rFrom, rTo, depth)
		if err != nil {
			return nil, err
		}
		return closeNode(node, content)
	}

	// Fully closed slice inserted directly between the endpoints.
	if slice.OpenStart == 0 && slice.OpenEnd == 0 && rFrom.Depth() == depth && rTo.Depth() == depth {
		parent := rFrom.Parent()
		content := parent.Content
		merged := content.Cut(0, rFrom.ParentOffset()).
			Append(slice.Content).
			Append(content.Cut(rTo.ParentOffset(), content.Size()))
		return closeNode(parent, merged)
	}

	start, end, err := prepareSliceForReplace(slice, rFrom)
	if err != nil {
		return nil, err
	}
	content, err := replaceThreeWay(rFrom, start, end, rTo, depth)
	if err != nil {
		return nil, err
	}
	return closeNode(node, content)
}

// closeNode validates content against the node's type and returns the
// node rebuilt around it.
func closeNode(node *Node, content *Fragment) (*Node, error) {
	if err := node.checkContent(content); err != nil {
		return nil, err
	}
	return node.Copy(content), nil
}

// joinable checks that the nodes cut open on both sides at the given
// depth accept the same kind of content, and returns the node whose
// type will wrap the joined content.
func joinable(before, after *ResolvedPos, depth int) (*Node, error) {
	node := before.Node(depth)
	if !node.Type.CompatibleContent(after.Node(depth).Type) {
		return nil, fmt.Errorf("cannot join %s onto %s: %w", after.Node(depth).Type, node.Type, ErrInvalidContent)
	}
	return node, nil
}

// addNode appends a node to the target list, merging adjacent text
// nodes that carry the same marks.
func addNode(child *Node, target *[]*Node) {
	last := len(*target) - 1
	if last >= 0 && child.IsText() {
		prev := (*target)[last]
		if prev.IsText() && SameMarks(child.Marks, prev.Marks) {
			(*target)[last] = prev.WithText(prev.Text + child.Text)
			return
		}
	}
	*target = append(*target, child)
}

// addRange appends the children between two resolved positions at the
// given depth. A nil start means "from the beginning", a nil end means
// "to the end". Text nodes the positions point into are cut.
func addRange(start, end *ResolvedPos, depth int, target *[]*Node) {
	var node *Node
	if end != nil {
		node = end.Node(depth)
	} else {
		node = start.Node(depth)
	}
	startIndex := 0
	endIndex := node.ChildCount()
	if end != nil {
		endIndex = end.Index(depth)
	}
	if start != nil {
		startIndex = start.Index(depth)
		if start.Depth() > depth {
			startIndex++
		} else if start.TextOffset() > 0 {
			addNode(start.NodeAfter(), target)
			startIndex++
		}
	}
	for i := startIndex; i < endIndex; i++ {
		addNode(node.Child(i), target)
	}
	if end != nil && end.Depth() == depth && end.TextOffset() > 0 {
		addNode(end.NodeBefore(), target)
	}
}

// replaceTwoWay builds the content around a plain deletion, joining
// the nodes cut open at both range ends level by level.
func replaceTwoWay(rFrom, rTo *ResolvedPos, depth int) (*Fragment, error) {
	var content []*Node
	addRange(nil, rFrom, depth, &content)
	if rFrom.Depth() > depth {
		wrap, err := joinable(rFrom, rTo, depth+1)
		if err != nil {
			return nil, err
		}
		inner, err := replaceTwoWay(rFrom, rTo, depth+1)
		if err != nil {
			return nil, err
		}
		closed, err := closeNode(wrap, inner)
		if err != nil {
			return nil, err
		}
		addNode(closed, &content)
	}
	addRange(rTo, nil, depth, &content)
	return fragmentOf(content), nil
}

// replaceThreeWay builds the content around an insertion, stitching
// the document's open edges to the slice's open edges.
func replaceThreeWay(rFrom, rStart, rEnd, rTo *ResolvedPos, depth int) (*Fragment, error) {
	var openStart, openEnd *Node
	var err error
	if rFrom.Depth() > depth {
		if openStart, err = joinable(rFrom, rStart, depth+1); err != nil {
			return nil, err
		}
	}
	if rTo.Depth() > depth {
		if openEnd, err = joinable(rEnd, rTo, depth+1); err != nil {
			return nil, err
		}
	}

	var content []*Node
	addRange(nil, rFrom, depth, &content)
	switch {
	case openStart != nil && openEnd != nil && rStart.Index(depth) == rEnd.Index(depth):
		if !openStart.Type.CompatibleContent(openEnd.Type) {
			return nil, fmt.Errorf("cannot join %s onto %s: %w", openEnd.Type, openStart.Type, ErrInvalidContent)
		}
		inner, err := replaceThreeWay(rFrom, rStart, rEnd, rTo, depth+1)
		if err != nil {
			return nil, err
		}
		closed, err := closeNode(openStart, inner)
		if err != nil {
			return nil, err
		}
		addNode(closed, &content)
	default:
		if openStart != nil {
			inner, err := replaceTwoWay(rFrom, rStart, depth+1)
			if err != nil {
				return nil, err
			}
			closed, err := closeNode(openStart, inner)
			if err != nil {
				return nil, err
			}
			addNode(closed, &content)
		}
		addRange(rStart, rEnd, depth, &content)
		if openEnd != nil {
			inner, err := replaceTwoWay(rEnd, rTo, depth+1)
			if err != nil {
				return nil, err
			}
			closed, err := closeNode(openEnd, inner)
			if err != nil {
				return nil, err
			}
			addNode(closed, &content)
		}
	}
	addRange(rTo, nil, depth, &content)
	return fragmentOf(content), nil
}

// prepareSliceForReplace wraps the slice's content in copies of the
// ancestors around the insertion point, so that positions inside it
// can be resolved against the same node shapes as the target range.
func prepareSliceForReplace(slice *Slice, along *ResolvedPos) (start, end *ResolvedPos, err error) {
	extra := along.Depth() - slice.OpenStart
	node := along.Node(extra).Copy(slice.Content)
	for i := extra - 1; i >= 0; i-- {
		node = along.Node(i).Copy(NewFragment(node))
	}
	if start, err = node.Resolve(slice.OpenStart + extra); err != nil {
		return nil, nil, err
	}
	if end, err = node.Resolve(node.Content.Size() - slice.OpenEnd - extra); err != nil {
		return nil, nil, err
	}
	return start, end, nil
}
