package selection

import (
	"testing"

	"github.com/dshills/quill/internal/engine/doc"
	"github.com/dshills/quill/internal/engine/transform"
)

func para(children ...*doc.Node) *doc.Node {
	return doc.NewNode(doc.TypeParagraph, children...)
}

func docOf(children ...*doc.Node) *doc.Node {
	return doc.NewNode(doc.TypeDoc, children...)
}

func hr() *doc.Node {
	return doc.NewNode(doc.TypeHorizontalRule)
}

func TestCursorBasics(t *testing.T) {
	d := docOf(para(doc.NewText("hello")))

	c, err := NewCursor(d, 3)
	if err != nil {
		t.Fatalf("cursor failed: %v", err)
	}
	if !c.Empty() {
		t.Error("cursor should be empty")
	}
	if c.From() != 3 || c.To() != 3 || c.Anchor() != 3 || c.Head() != 3 {
		t.Errorf("expected all bounds at 3, got %d/%d/%d/%d", c.From(), c.To(), c.Anchor(), c.Head())
	}
}

func TestTextSelectionBounds(t *testing.T) {
	d := docOf(para(doc.NewText("hello")))

	// Head before anchor, as after extending leftward.
	s, err := NewTextSelection(d, 5, 2)
	if err != nil {
		t.Fatalf("selection failed: %v", err)
	}
	if s.From() != 2 || s.To() != 5 {
		t.Errorf("expected bounds [2,5], got [%d,%d]", s.From(), s.To())
	}
	if s.Anchor() != 5 || s.Head() != 2 {
		t.Errorf("expected anchor 5 head 2, got %d/%d", s.Anchor(), s.Head())
	}
	if s.Empty() {
		t.Error("range selection should not be empty")
	}
	if s.ResolvedFrom().Pos != 2 || s.ResolvedTo().Pos != 5 {
		t.Error("resolved bounds should match From/To")
	}
}

func TestSelectionEq(t *testing.T) {
	d := docOf(para(doc.NewText("hello")), hr())

	a, _ := NewTextSelection(d, 1, 3)
	b, _ := NewTextSelection(d, 1, 3)
	c, _ := NewTextSelection(d, 3, 1)
	if !a.Eq(b) {
		t.Error("same bounds should compare equal")
	}
	if a.Eq(c) {
		t.Error("swapped anchor and head should differ")
	}

	n, err := NewNodeSelection(d, 7)
	if err != nil {
		t.Fatalf("node selection failed: %v", err)
	}
	if a.Eq(n) {
		t.Error("text and node selections should differ")
	}
}

func TestNodeSelection(t *testing.T) {
	d := docOf(para(doc.NewText("ab")), hr(), para(doc.NewText("cd")))

	s, err := NewNodeSelection(d, 4)
	if err != nil {
		t.Fatalf("node selection failed: %v", err)
	}
	if s.Node().Type != doc.TypeHorizontalRule {
		t.Errorf("expected horizontal rule, got %s", s.Node().Type)
	}
	if s.From() != 4 || s.To() != 5 {
		t.Errorf("expected span [4,5], got [%d,%d]", s.From(), s.To())
	}
	if s.Empty() {
		t.Error("node selection should not be empty")
	}
}

func TestNodeSelectionRejectsText(t *testing.T) {
	d := docOf(para(doc.NewText("ab")))
	if _, err := NewNodeSelection(d, 1); err == nil {
		t.Error("expected error selecting a text node")
	}
}

func TestTextSelectionMapThroughInsertion(t *testing.T) {
	d := docOf(para(doc.NewText("hello")))
	c, _ := NewCursor(d, 3)

	tr := transform.New(d)
	if err := tr.Insert(1, doc.NewText("XY")); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	mapped := c.Map(tr.Doc(), tr.Mapping())
	if mapped.Head() != 5 {
		t.Errorf("expected cursor at 5, got %d", mapped.Head())
	}
}

func TestTextSelectionMapOutOfTextblock(t *testing.T) {
	d := docOf(para(doc.NewText("ab")), para(doc.NewText("cd")))
	c, _ := NewCursor(d, 6)

	// Deleting the second paragraph leaves the head between blocks.
	tr := transform.New(d)
	if err := tr.Delete(4, 8); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	mapped := c.Map(tr.Doc(), tr.Mapping())
	ts, ok := mapped.(*TextSelection)
	if !ok {
		t.Fatalf("expected text selection, got %T", mapped)
	}
	if !ts.Empty() || ts.Head() != 3 {
		t.Errorf("expected cursor at end of remaining paragraph, got %d", ts.Head())
	}
}

func TestNodeSelectionMapAfterNodeDeleted(t *testing.T) {
	d := docOf(para(doc.NewText("ab")), hr(), para(doc.NewText("cd")))
	s, _ := NewNodeSelection(d, 4)

	tr := transform.New(d)
	if err := tr.Delete(4, 5); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	mapped := s.Map(tr.Doc(), tr.Mapping())
	if _, ok := mapped.(*NodeSelection); ok && mapped.(*NodeSelection).Node().Type == doc.TypeHorizontalRule {
		t.Error("selection still points at the deleted node")
	}
	if mapped.From() < 0 || mapped.To() > tr.Doc().Content.Size() {
		t.Error("mapped selection out of document bounds")
	}
}

func TestNearPrefersBiasDirection(t *testing.T) {
	d := docOf(para(doc.NewText("ab")), hr(), para(doc.NewText("cd")))

	rp, err := d.Resolve(5)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	fwd := Near(d, rp, BiasForward)
	ts, ok := fwd.(*TextSelection)
	if !ok || ts.Head() != 6 {
		t.Errorf("expected cursor at 6, got %v", fwd)
	}

	back := Near(d, rp, BiasBackward)
	if ns, ok := back.(*NodeSelection); !ok || ns.Node().Type != doc.TypeHorizontalRule {
		t.Errorf("expected node selection of the rule, got %v", back)
	}
}

func TestAtStartAndAtEnd(t *testing.T) {
	d := docOf(para(doc.NewText("ab")), para(doc.NewText("cd")))

	start := AtStart(d)
	if !start.Empty() || start.Head() != 1 {
		t.Errorf("expected cursor at 1, got %v", start)
	}
	end := AtEnd(d)
	if !end.Empty() || end.Head() != 7 {
		t.Errorf("expected cursor at 7, got %v", end)
	}
}

func TestAtStartSelectsLeadingLeaf(t *testing.T) {
	d := docOf(hr(), para(doc.NewText("ab")))

	start := AtStart(d)
	if ns, ok := start.(*NodeSelection); !ok || ns.Node().Type != doc.TypeHorizontalRule {
		t.Errorf("expected the leading rule to be selected, got %v", start)
	}
}
