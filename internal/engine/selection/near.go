package selection

import "github.com/dshills/quill/internal/engine/doc"

// Near returns the best valid selection near the given resolved
// position, searching in the bias direction first and in the opposite
// direction when nothing is found. As a last resort it returns a
// collapsed text selection at the position itself.
func Near(d *doc.Node, rp *doc.ResolvedPos, bias Bias) Selection {
	if s := findFrom(d, rp, int(bias)); s != nil {
		return s
	}
	if s := findFrom(d, rp, -int(bias)); s != nil {
		return s
	}
	return textAt(rp)
}

// AtStart returns the first valid selection in the document.
func AtStart(d *doc.Node) Selection {
	if s := findIn(d, d, 0, 0, 1); s != nil {
		return s
	}
	return textAt(resolveClamped(d, 0))
}

// AtEnd returns the last valid selection in the document.
func AtEnd(d *doc.Node) Selection {
	size := d.Content.Size()
	if s := findIn(d, d, size, d.ChildCount(), -1); s != nil {
		return s
	}
	return textAt(resolveClamped(d, size))
}

// findFrom searches for a valid selection starting at the resolved
// position and walking outward through its ancestors in the given
// direction.
func findFrom(d *doc.Node, rp *doc.ResolvedPos, dir int) Selection {
	if rp.Parent().IsTextBlock() {
		return textAt(rp)
	}
	if s := findIn(d, rp.Parent(), rp.Pos, rp.Index(rp.Depth()), dir); s != nil {
		return s
	}
	for depth := rp.Depth() - 1; depth >= 0; depth-- {
		var found Selection
		if dir < 0 {
			found = findIn(d, rp.Node(depth), rp.Before(depth+1), rp.Index(depth), dir)
		} else {
			found = findIn(d, rp.Node(depth), rp.After(depth+1), rp.Index(depth)+1, dir)
		}
		if found != nil {
			return found
		}
	}
	return nil
}

// findIn scans the children of a node, starting at the given child
// index and position, for the first place a selection can live: a
// textblock for a cursor, or a selectable leaf for a node selection.
func findIn(d *doc.Node, node *doc.Node, pos, index, dir int) Selection {
	if node.IsTextBlock() {
		return textAt(resolveClamped(d, pos))
	}
	i := index
	if dir < 0 {
		i = index - 1
	}
	for ; i >= 0 && i < node.ChildCount(); i += dir {
		child := node.Child(i)
		if !child.IsLeaf() {
			enter := 0
			if dir < 0 {
				enter = child.ChildCount()
			}
			if inner := findIn(d, child, pos+dir, enter, dir); inner != nil {
				return inner
			}
		} else if !child.IsText() {
			nodePos := pos
			if dir < 0 {
				nodePos = pos - child.NodeSize()
			}
			if sel, err := NewNodeSelection(d, nodePos); err == nil {
				return sel
			}
		}
		pos += child.NodeSize() * dir
	}
	return nil
}
