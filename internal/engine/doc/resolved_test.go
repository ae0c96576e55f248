package doc

import "testing"

func TestResolveInsideText(t *testing.T) {
	d := docOf(para(NewText("hello")))

	rp, err := d.Resolve(3)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if rp.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", rp.Depth())
	}
	if rp.Parent().Type != TypeParagraph {
		t.Errorf("expected paragraph parent, got %s", rp.Parent().Type.Name)
	}
	if rp.ParentOffset() != 2 {
		t.Errorf("expected parent offset 2, got %d", rp.ParentOffset())
	}
	if rp.TextOffset() != 2 {
		t.Errorf("expected text offset 2, got %d", rp.TextOffset())
	}
	if rp.Start(1) != 1 || rp.End(1) != 6 {
		t.Errorf("expected paragraph content span [1,6], got [%d,%d]", rp.Start(1), rp.End(1))
	}
}

func TestResolveBetweenBlocks(t *testing.T) {
	d := docOf(para(NewText("ab")), para(NewText("cd")))

	rp, err := d.Resolve(4)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if rp.Depth() != 0 {
		t.Errorf("expected depth 0, got %d", rp.Depth())
	}
	if rp.Index(0) != 1 {
		t.Errorf("expected index 1, got %d", rp.Index(0))
	}
	before := rp.NodeBefore()
	after := rp.NodeAfter()
	if before == nil || before.TextContent() != "ab" {
		t.Error("expected node before to be the first paragraph")
	}
	if after == nil || after.TextContent() != "cd" {
		t.Error("expected node after to be the second paragraph")
	}
}

func TestResolveOutOfRange(t *testing.T) {
	d := docOf(para(NewText("ab")))
	if _, err := d.Resolve(-1); err == nil {
		t.Error("expected error for negative position")
	}
	if _, err := d.Resolve(d.Content.Size() + 1); err == nil {
		t.Error("expected error for position past the end")
	}
}

func TestResolvedMarks(t *testing.T) {
	d := docOf(para(NewText("ab", NewMark(MarkBold)), NewText("cd")))

	// Inside the bold run.
	rp, err := d.Resolve(2)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	marks := rp.Marks()
	if len(marks) != 1 || marks[0].Type != MarkBold {
		t.Errorf("expected bold mark, got %v", marks)
	}

	// At the boundary the node before wins.
	rp, err = d.Resolve(3)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	marks = rp.Marks()
	if len(marks) != 1 || marks[0].Type != MarkBold {
		t.Errorf("expected bold mark at boundary, got %v", marks)
	}

	// Start of the plain run with nothing before it.
	rp, err = d.Resolve(1)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	marks = rp.Marks()
	if len(marks) != 1 || marks[0].Type != MarkBold {
		t.Errorf("expected marks of following text at block start, got %v", marks)
	}
}

func TestMarksAcross(t *testing.T) {
	d := docOf(para(NewText("ab"), NewText("cd", NewMark(MarkItalic))))

	rFrom, err := d.Resolve(1)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	rTo, err := d.Resolve(4)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	marks := rFrom.MarksAcross(rTo)
	if len(marks) != 0 {
		t.Errorf("expected no marks across plain text start, got %v", marks)
	}

	rFrom, err = d.Resolve(3)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	marks = rFrom.MarksAcross(rTo)
	if len(marks) != 1 || marks[0].Type != MarkItalic {
		t.Errorf("expected italic across deletion start, got %v", marks)
	}
}
