package doc

// MarkType identifies a kind of inline formatting (bold, italic, ...).
// Mark types are compared by identity; two marks of the same type may
// still differ in attributes (e.g. two links with different targets).
type MarkType struct {
	// Name is the type's unique name.
	Name string

	// Rank orders marks of different types within a mark set.
	// Lower ranks sort first.
	Rank int
}

// Built-in mark types.
var (
	MarkBold   = &MarkType{Name: "bold", Rank: 0}
	MarkItalic = &MarkType{Name: "italic", Rank: 1}
	MarkCode   = &MarkType{Name: "code", Rank: 2}
	MarkLink   = &MarkType{Name: "link", Rank: 3}
)

// Mark represents a piece of inline formatting attached to text or
// inline nodes. Mark is an immutable value type.
type Mark struct {
	Type  *MarkType
	Attrs map[string]string
}

// NewMark creates a mark of the given type with no attributes.
func NewMark(t *MarkType) Mark {
	return Mark{Type: t}
}

// NewMarkAttrs creates a mark of the given type with attributes.
func NewMarkAttrs(t *MarkType, attrs map[string]string) Mark {
	return Mark{Type: t, Attrs: attrs}
}

// Eq returns true if two marks have the same type and attributes.
func (m Mark) Eq(other Mark) bool {
	if m.Type != other.Type {
		return false
	}
	if len(m.Attrs) != len(other.Attrs) {
		return false
	}
	for k, v := range m.Attrs {
		if other.Attrs[k] != v {
			return false
		}
	}
	return true
}

// InSet returns true if a mark equal to m appears in the given set.
func (m Mark) InSet(set []Mark) bool {
	for _, other := range set {
		if m.Eq(other) {
			return true
		}
	}
	return false
}

// AddToSet returns a new set with m added. Sets are kept ordered by
// type rank, and at most one mark per type is retained: adding a mark
// whose type is already present replaces the existing mark.
func (m Mark) AddToSet(set []Mark) []Mark {
	result := make([]Mark, 0, len(set)+1)
	placed := false
	for _, other := range set {
		if other.Type == m.Type {
			if !placed {
				result = append(result, m)
				placed = true
			}
			continue
		}
		if !placed && other.Type.Rank > m.Type.Rank {
			result = append(result, m)
			placed = true
		}
		result = append(result, other)
	}
	if !placed {
		result = append(result, m)
	}
	return result
}

// RemoveFromSet returns a new set with any mark equal to m removed.
func (m Mark) RemoveFromSet(set []Mark) []Mark {
	for i, other := range set {
		if m.Eq(other) {
			result := make([]Mark, 0, len(set)-1)
			result = append(result, set[:i]...)
			return append(result, set[i+1:]...)
		}
	}
	return set
}

// RemoveTypeFromSet returns a new set with all marks of type t removed.
func RemoveTypeFromSet(t *MarkType, set []Mark) []Mark {
	result := set[:0:0]
	for _, m := range set {
		if m.Type != t {
			result = append(result, m)
		}
	}
	return result
}

// SameMarks returns true if two mark sets contain equal marks in the
// same order.
func SameMarks(a, b []Mark) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Eq(b[i]) {
			return false
		}
	}
	return true
}
