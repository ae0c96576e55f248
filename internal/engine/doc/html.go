package doc

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// htmlTags maps node types to the elements they render as. Text nodes
// and the document root are handled separately.
var htmlTags = map[*NodeType]atom.Atom{
	TypeParagraph:      atom.P,
	TypeBlockquote:     atom.Blockquote,
	TypeImage:          atom.Img,
	TypeHardBreak:      atom.Br,
	TypeHorizontalRule: atom.Hr,
}

// markTags maps mark types to the elements wrapping marked text.
var markTags = map[*MarkType]atom.Atom{
	MarkBold:   atom.Strong,
	MarkItalic: atom.Em,
	MarkCode:   atom.Code,
	MarkLink:   atom.A,
}

// ToHTML renders the document as an HTML fragment.
func ToHTML(n *Node) (string, error) {
	var b strings.Builder
	for _, el := range htmlNodes(n) {
		if err := html.Render(&b, el); err != nil {
			return "", err
		}
	}
	return b.String(), nil
}

// htmlNodes converts a document node to HTML nodes. The document root
// contributes its children only.
func htmlNodes(n *Node) []*html.Node {
	if n.Type == TypeDoc {
		var out []*html.Node
		for i := 0; i < n.ChildCount(); i++ {
			out = append(out, htmlNodes(n.Child(i))...)
		}
		return out
	}
	if n.IsText() {
		el := &html.Node{Type: html.TextNode, Data: n.Text}
		return []*html.Node{wrapMarks(el, n.Marks)}
	}

	el := htmlElement(n)
	for i := 0; i < n.ChildCount(); i++ {
		for _, child := range htmlNodes(n.Child(i)) {
			el.AppendChild(child)
		}
	}
	if len(n.Marks) > 0 {
		el = wrapMarks(el, n.Marks)
	}
	return []*html.Node{el}
}

func htmlElement(n *Node) *html.Node {
	if n.Type == TypeHeading {
		level := n.Attrs["level"]
		if level == "" {
			level = "1"
		}
		tag := "h" + level
		return &html.Node{Type: html.ElementNode, DataAtom: atom.Lookup([]byte(tag)), Data: tag}
	}
	tag := htmlTags[n.Type]
	el := &html.Node{Type: html.ElementNode, DataAtom: tag, Data: tag.String()}
	for k, v := range n.Attrs {
		el.Attr = append(el.Attr, html.Attribute{Key: k, Val: v})
	}
	return el
}

// wrapMarks wraps an HTML node in mark elements, outermost first.
func wrapMarks(el *html.Node, marks []Mark) *html.Node {
	for i := len(marks) - 1; i >= 0; i-- {
		m := marks[i]
		tag := markTags[m.Type]
		wrapper := &html.Node{Type: html.ElementNode, DataAtom: tag, Data: tag.String()}
		if m.Type == MarkLink {
			wrapper.Attr = append(wrapper.Attr, html.Attribute{Key: "href", Val: m.Attrs["href"]})
		}
		wrapper.AppendChild(el)
		el = wrapper
	}
	return el
}
