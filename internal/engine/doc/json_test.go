package doc

import (
	"errors"
	"testing"
)

func sampleDoc() *Node {
	return docOf(
		NewNodeAttrs(TypeHeading, map[string]string{"level": "2"}, NewText("Title")),
		para(
			NewText("plain "),
			NewText("bold", NewMark(MarkBold)),
			NewNodeAttrs(TypeImage, map[string]string{"src": "x.png"}),
		),
	)
}

func TestJSONRoundTrip(t *testing.T) {
	d := sampleDoc()

	out, err := d.JSON()
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	back, err := FromJSON(out)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if !back.Eq(d) {
		t.Errorf("round trip changed document:\n in: %s\nout: %s", d, back)
	}
}

func TestFromJSONLiteral(t *testing.T) {
	in := `{"type":"doc","content":[{"type":"paragraph","content":[
		{"type":"text","text":"hi","marks":[{"type":"italic"}]}]}]}`

	d, err := FromJSON(in)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	want := docOf(para(NewText("hi", NewMark(MarkItalic))))
	if !d.Eq(want) {
		t.Errorf("expected %s, got %s", want, d)
	}
}

func TestFromJSONUnknownType(t *testing.T) {
	if _, err := FromJSON(`{"type":"mystery"}`); !errors.Is(err, ErrUnknownType) {
		t.Errorf("expected ErrUnknownType, got %v", err)
	}
}

func TestFromJSONMalformed(t *testing.T) {
	if _, err := FromJSON(`not json`); !errors.Is(err, ErrBadJSON) {
		t.Errorf("expected ErrBadJSON, got %v", err)
	}
}

func TestFromJSONRejectsBadContent(t *testing.T) {
	// Block content inside a paragraph.
	in := `{"type":"doc","content":[{"type":"paragraph","content":[{"type":"paragraph"}]}]}`
	if _, err := FromJSON(in); !errors.Is(err, ErrInvalidContent) {
		t.Errorf("expected ErrInvalidContent, got %v", err)
	}
}
