package doc

import "testing"

// Test helpers shared by the doc package tests.

func para(children ...*Node) *Node {
	return NewNode(TypeParagraph, children...)
}

func docOf(children ...*Node) *Node {
	return NewNode(TypeDoc, children...)
}

func TestTextNodeSize(t *testing.T) {
	if got := NewText("hello").NodeSize(); got != 5 {
		t.Errorf("expected size 5, got %d", got)
	}
	// Sizes count runes, not bytes.
	if got := NewText("héllo").NodeSize(); got != 5 {
		t.Errorf("expected size 5 for multibyte text, got %d", got)
	}
}

func TestElementNodeSize(t *testing.T) {
	p := para(NewText("ab"))
	if got := p.NodeSize(); got != 4 {
		t.Errorf("expected paragraph size 4, got %d", got)
	}
	d := docOf(p)
	if got := d.Content.Size(); got != 4 {
		t.Errorf("expected doc content size 4, got %d", got)
	}
}

func TestLeafNodeSize(t *testing.T) {
	img := NewNodeAttrs(TypeImage, map[string]string{"src": "x.png"})
	if got := img.NodeSize(); got != 1 {
		t.Errorf("expected leaf size 1, got %d", got)
	}
}

func TestFragmentMergesText(t *testing.T) {
	f := NewFragment(NewText("ab"), NewText("cd"))
	if f.ChildCount() != 1 {
		t.Fatalf("expected merged text, got %d children", f.ChildCount())
	}
	if f.Child(0).Text != "abcd" {
		t.Errorf("expected %q, got %q", "abcd", f.Child(0).Text)
	}
}

func TestFragmentKeepsDifferentMarksApart(t *testing.T) {
	f := NewFragment(NewText("ab"), NewText("cd", NewMark(MarkBold)))
	if f.ChildCount() != 2 {
		t.Errorf("expected 2 children, got %d", f.ChildCount())
	}
}

func TestFragmentCutText(t *testing.T) {
	f := NewFragment(NewText("hello"))
	cut := f.Cut(1, 4)
	if cut.Size() != 3 {
		t.Fatalf("expected size 3, got %d", cut.Size())
	}
	if cut.Child(0).Text != "ell" {
		t.Errorf("expected %q, got %q", "ell", cut.Child(0).Text)
	}
}

func TestFragmentCutOpensNodes(t *testing.T) {
	f := NewFragment(para(NewText("ab")), para(NewText("cd")))
	// Cut from inside the first paragraph to inside the second.
	cut := f.Cut(2, 6)
	if cut.ChildCount() != 2 {
		t.Fatalf("expected 2 children, got %d", cut.ChildCount())
	}
	if got := cut.Child(0).TextContent(); got != "b" {
		t.Errorf("expected first paragraph %q, got %q", "b", got)
	}
	if got := cut.Child(1).TextContent(); got != "c" {
		t.Errorf("expected second paragraph %q, got %q", "c", got)
	}
}

func TestTextContent(t *testing.T) {
	d := docOf(para(NewText("hello ")), para(NewText("world")))
	if got := d.TextContent(); got != "hello world" {
		t.Errorf("expected %q, got %q", "hello world", got)
	}
}

func TestNodeEq(t *testing.T) {
	a := docOf(para(NewText("hi", NewMark(MarkBold))))
	b := docOf(para(NewText("hi", NewMark(MarkBold))))
	c := docOf(para(NewText("hi")))
	if !a.Eq(b) {
		t.Error("equal documents should compare equal")
	}
	if a.Eq(c) {
		t.Error("documents with different marks should differ")
	}
}

func TestMarkAddToSet(t *testing.T) {
	bold := NewMark(MarkBold)
	italic := NewMark(MarkItalic)

	set := bold.AddToSet(nil)
	set = italic.AddToSet(set)
	if len(set) != 2 {
		t.Fatalf("expected 2 marks, got %d", len(set))
	}
	// Rank order: bold before italic regardless of insertion order.
	if set[0].Type != MarkBold || set[1].Type != MarkItalic {
		t.Error("marks should be ordered by type rank")
	}
}

func TestMarkAddToSetReplacesSameType(t *testing.T) {
	link1 := NewMarkAttrs(MarkLink, map[string]string{"href": "a"})
	link2 := NewMarkAttrs(MarkLink, map[string]string{"href": "b"})

	set := link2.AddToSet(link1.AddToSet(nil))
	if len(set) != 1 {
		t.Fatalf("expected 1 mark, got %d", len(set))
	}
	if set[0].Attrs["href"] != "b" {
		t.Error("adding a mark of an existing type should replace it")
	}
}

func TestMarkRemoveFromSet(t *testing.T) {
	bold := NewMark(MarkBold)
	italic := NewMark(MarkItalic)
	set := italic.AddToSet(bold.AddToSet(nil))

	set = bold.RemoveFromSet(set)
	if len(set) != 1 || set[0].Type != MarkItalic {
		t.Errorf("expected only italic left, got %v", set)
	}
}

func TestRemoveTypeFromSet(t *testing.T) {
	set := []Mark{NewMark(MarkBold), NewMarkAttrs(MarkLink, map[string]string{"href": "a"})}
	set = RemoveTypeFromSet(MarkLink, set)
	if len(set) != 1 || set[0].Type != MarkBold {
		t.Errorf("expected only bold left, got %v", set)
	}
}

func TestSameMarks(t *testing.T) {
	a := []Mark{NewMark(MarkBold)}
	b := []Mark{NewMark(MarkBold)}
	if !SameMarks(a, b) {
		t.Error("equal sets should compare equal")
	}
	if !SameMarks(nil, []Mark{}) {
		t.Error("nil and empty set should compare equal")
	}
	if SameMarks(a, nil) {
		t.Error("different sets should differ")
	}
}
