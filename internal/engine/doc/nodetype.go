package doc

import "fmt"

// ContentKind classifies what a node type may contain.
type ContentKind uint8

const (
	// ContentNone marks leaf node types (text, image, horizontal rule).
	ContentNone ContentKind = iota

	// ContentInline marks node types holding inline content (paragraph).
	ContentInline

	// ContentBlock marks node types holding block content (doc, blockquote).
	ContentBlock
)

// String returns a human-readable representation of the content kind.
func (k ContentKind) String() string {
	switch k {
	case ContentNone:
		return "none"
	case ContentInline:
		return "inline"
	case ContentBlock:
		return "block"
	default:
		return "unknown"
	}
}

// NodeType describes a kind of document node. Node types are compared
// by identity.
type NodeType struct {
	// Name is the type's unique name.
	Name string

	// Inline is true for node types that live in inline content.
	Inline bool

	// Text is true for the text node type only.
	Text bool

	// Content specifies what children this node type accepts.
	Content ContentKind
}

// IsLeaf returns true if nodes of this type never have children.
func (t *NodeType) IsLeaf() bool {
	return t.Content == ContentNone
}

// IsTextBlock returns true for block types with inline content, such
// as paragraphs and headings. Cursor positions live inside textblocks.
func (t *NodeType) IsTextBlock() bool {
	return !t.Inline && t.Content == ContentInline
}

// CompatibleContent returns true if content valid in this type is also
// valid in the other. Used to decide whether two nodes can be joined
// across an open slice edge.
func (t *NodeType) CompatibleContent(other *NodeType) bool {
	return t.Content != ContentNone && t.Content == other.Content
}

// String returns the type name.
func (t *NodeType) String() string {
	return t.Name
}

// Built-in node types.
var (
	TypeDoc            = &NodeType{Name: "doc", Content: ContentBlock}
	TypeParagraph      = &NodeType{Name: "paragraph", Content: ContentInline}
	TypeHeading        = &NodeType{Name: "heading", Content: ContentInline}
	TypeBlockquote     = &NodeType{Name: "blockquote", Content: ContentBlock}
	TypeText           = &NodeType{Name: "text", Inline: true, Text: true}
	TypeImage          = &NodeType{Name: "image", Inline: true}
	TypeHardBreak      = &NodeType{Name: "hard_break", Inline: true}
	TypeHorizontalRule = &NodeType{Name: "horizontal_rule"}
)

// typeRegistry maps type names to node types for JSON decoding.
var typeRegistry = map[string]*NodeType{}

// markRegistry maps mark type names to mark types for JSON decoding.
var markRegistry = map[string]*MarkType{}

func init() {
	for _, t := range []*NodeType{
		TypeDoc, TypeParagraph, TypeHeading, TypeBlockquote,
		TypeText, TypeImage, TypeHardBreak, TypeHorizontalRule,
	} {
		typeRegistry[t.Name] = t
	}
	for _, t := range []*MarkType{MarkBold, MarkItalic, MarkCode, MarkLink} {
		markRegistry[t.Name] = t
	}
}

// TypeByName looks up a node type by name.
func TypeByName(name string) (*NodeType, error) {
	t, ok := typeRegistry[name]
	if !ok {
		return nil, fmt.Errorf("node type %q: %w", name, ErrUnknownType)
	}
	return t, nil
}

// MarkTypeByName looks up a mark type by name.
func MarkTypeByName(name string) (*MarkType, error) {
	t, ok := markRegistry[name]
	if !ok {
		return nil, fmt.Errorf("mark type %q: %w", name, ErrUnknownType)
	}
	return t, nil
}
