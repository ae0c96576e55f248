package doc

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// FromJSON decodes a document node from its JSON form:
//
//	{"type": "doc", "content": [
//	  {"type": "paragraph", "content": [
//	    {"type": "text", "text": "hi", "marks": [{"type": "bold"}]}
//	  ]}
//	]}
func FromJSON(data string) (*Node, error) {
	if !gjson.Valid(data) {
		return nil, ErrBadJSON
	}
	return nodeFromResult(gjson.Parse(data))
}

func nodeFromResult(r gjson.Result) (*Node, error) {
	typeName := r.Get("type").String()
	if typeName == "" {
		return nil, fmt.Errorf("node without type: %w", ErrBadJSON)
	}
	t, err := TypeByName(typeName)
	if err != nil {
		return nil, err
	}

	var attrs map[string]string
	if a := r.Get("attrs"); a.Exists() {
		attrs = map[string]string{}
		a.ForEach(func(key, value gjson.Result) bool {
			attrs[key.String()] = value.String()
			return true
		})
	}

	var marks []Mark
	for _, m := range r.Get("marks").Array() {
		mt, err := MarkTypeByName(m.Get("type").String())
		if err != nil {
			return nil, err
		}
		var mattrs map[string]string
		if a := m.Get("attrs"); a.Exists() {
			mattrs = map[string]string{}
			a.ForEach(func(key, value gjson.Result) bool {
				mattrs[key.String()] = value.String()
				return true
			})
		}
		marks = append(marks, NewMarkAttrs(mt, mattrs))
	}

	if t.Text {
		text := r.Get("text").String()
		if text == "" {
			return nil, fmt.Errorf("empty text node: %w", ErrBadJSON)
		}
		n := NewText(text, marks...)
		n.Attrs = attrs
		return n, nil
	}

	var children []*Node
	for _, c := range r.Get("content").Array() {
		child, err := nodeFromResult(c)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	node := NewNodeAttrs(t, attrs, children...)
	node.Marks = marks
	if err := node.checkContent(node.Content); err != nil {
		return nil, err
	}
	return node, nil
}

// JSON encodes the node in the format accepted by FromJSON.
func (n *Node) JSON() (string, error) {
	out, err := sjson.Set("{}", "type", n.Type.Name)
	if err != nil {
		return "", err
	}
	if n.IsText() {
		if out, err = sjson.Set(out, "text", n.Text); err != nil {
			return "", err
		}
	}
	for k, v := range n.Attrs {
		if out, err = sjson.Set(out, "attrs."+k, v); err != nil {
			return "", err
		}
	}
	for _, m := range n.Marks {
		mark, err := sjson.Set("{}", "type", m.Type.Name)
		if err != nil {
			return "", err
		}
		for k, v := range m.Attrs {
			if mark, err = sjson.Set(mark, "attrs."+k, v); err != nil {
				return "", err
			}
		}
		if out, err = sjson.SetRaw(out, "marks.-1", mark); err != nil {
			return "", err
		}
	}
	for i := 0; i < n.ChildCount(); i++ {
		child, err := n.Child(i).JSON()
		if err != nil {
			return "", err
		}
		if out, err = sjson.SetRaw(out, "content.-1", child); err != nil {
			return "", err
		}
	}
	return out, nil
}
