package doc

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Metrics summarizes the visible text of a document.
type Metrics struct {
	// Graphemes is the number of user-perceived characters.
	Graphemes int

	// Words is the number of whitespace-separated words.
	Words int

	// Blocks is the number of top-level blocks.
	Blocks int
}

// ComputeMetrics walks the document and counts graphemes, words and
// top-level blocks. Grapheme counting uses Unicode segmentation, so
// combining sequences and emoji count as one character each.
func ComputeMetrics(n *Node) Metrics {
	m := Metrics{Blocks: n.ChildCount()}
	var walk func(*Node)
	walk = func(node *Node) {
		if node.IsText() {
			m.Graphemes += uniseg.GraphemeClusterCount(node.Text)
			m.Words += len(strings.Fields(node.Text))
			return
		}
		for i := 0; i < node.ChildCount(); i++ {
			walk(node.Child(i))
		}
	}
	walk(n)
	return m
}
