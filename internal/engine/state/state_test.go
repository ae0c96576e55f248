package state

import (
	"testing"

	"github.com/dshills/quill/internal/engine/doc"
)

func testDoc(text string) *doc.Node {
	return doc.NewNode(doc.TypeDoc, doc.NewNode(doc.TypeParagraph, doc.NewText(text)))
}

func TestNewPlacesSelectionAtStart(t *testing.T) {
	s := New(testDoc("hello"))
	if !s.Sel.Empty() || s.Sel.Head() != 1 {
		t.Errorf("expected cursor at 1, got %v", s.Sel)
	}
}

func TestApplyProducesNewState(t *testing.T) {
	s := New(testDoc("hello"))

	d := s.NewDelta()
	if err := d.InsertText("X"); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	next := s.Apply(d)

	if next == s {
		t.Fatal("apply should produce a new state")
	}
	if got := next.Doc.TextContent(); got != "Xhello" {
		t.Errorf("expected %q, got %q", "Xhello", got)
	}
	if got := s.Doc.TextContent(); got != "hello" {
		t.Errorf("old state changed: %q", got)
	}
	if next.Sel.Head() != 2 {
		t.Errorf("expected cursor at 2, got %d", next.Sel.Head())
	}
}

func TestApplyCarriesStoredMarks(t *testing.T) {
	s := New(testDoc("hello"))

	d := s.NewDelta()
	d.SetStoredMarks([]doc.Mark{doc.NewMark(doc.MarkBold)})
	next := s.Apply(d)

	if len(next.StoredMarks) != 1 || next.StoredMarks[0].Type != doc.MarkBold {
		t.Errorf("expected bold stored marks, got %v", next.StoredMarks)
	}

	// They carry into the next delta as the insertion marks.
	d2 := next.NewDelta()
	if err := d2.InsertText("B"); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	p := d2.Doc().Child(0)
	if p.Child(0).Text != "B" || len(p.Child(0).Marks) != 1 {
		t.Errorf("expected bold %q run first, got %s", "B", p)
	}
}

func TestCanCoalesce(t *testing.T) {
	s := New(testDoc("hello"))

	a := s.NewDelta()
	b := s.NewDelta()
	if !CanCoalesce(a, b) {
		t.Error("deltas without metadata should coalesce")
	}
	b.SetMeta("origin", "paste")
	if CanCoalesce(a, b) {
		t.Error("a delta with metadata should not coalesce")
	}
}
