package transform

import "fmt"

// MapResult is the outcome of mapping a position through a step map.
type MapResult struct {
	// Pos is the mapped position.
	Pos int

	// Deleted is true when the position sat strictly inside a replaced
	// range and therefore no longer points at the same content.
	Deleted bool
}

// StepMap encodes the position changes made by a single step as a
// sequence of (start, oldSize, newSize) ranges, ordered by start
// position in the old document.
type StepMap struct {
	ranges []int
}

// EmptyStepMap is the map of a step that moved nothing.
var EmptyStepMap = &StepMap{}

// NewStepMap creates a step map from (start, oldSize, newSize)
// triples.
func NewStepMap(ranges []int) *StepMap {
	if len(ranges)%3 != 0 {
		panic(fmt.Sprintf("step map ranges length %d is not a multiple of 3", len(ranges)))
	}
	return &StepMap{ranges: ranges}
}

// Map maps a position through this step map. Assoc determines which
// side the position associates with when content is inserted exactly
// at it: negative stays before the insertion, positive moves after.
func (m *StepMap) Map(pos, assoc int) int {
	return m.MapResult(pos, assoc).Pos
}

// MapResult maps a position and reports whether it was deleted.
func (m *StepMap) MapResult(pos, assoc int) MapResult {
	diff := 0
	for i := 0; i+2 < len(m.ranges); i += 3 {
		start := m.ranges[i]
		if start > pos {
			break
		}
		oldSize, newSize := m.ranges[i+1], m.ranges[i+2]
		end := start + oldSize
		if pos <= end {
			var side int
			switch {
			case oldSize == 0:
				side = assoc
			case pos == start:
				side = -1
			case pos == end:
				side = 1
			default:
				side = assoc
			}
			result := start + diff
			if side > 0 {
				result += newSize
			}
			return MapResult{Pos: result, Deleted: pos > start && pos < end}
		}
		diff += newSize - oldSize
	}
	return MapResult{Pos: pos + diff}
}

// ForEach calls f for every changed range, with the range's bounds in
// the old document and in the new one.
func (m *StepMap) ForEach(f func(oldStart, oldEnd, newStart, newEnd int)) {
	diff := 0
	for i := 0; i+2 < len(m.ranges); i += 3 {
		start, oldSize, newSize := m.ranges[i], m.ranges[i+1], m.ranges[i+2]
		f(start, start+oldSize, start+diff, start+diff+newSize)
		diff += newSize - oldSize
	}
}

// Mapping is a composed sequence of step maps, mapping positions from
// the document before the first step to the document after the last.
type Mapping struct {
	maps []*StepMap
}

// NewMapping creates a mapping over the given step maps.
func NewMapping(maps ...*StepMap) *Mapping {
	return &Mapping{maps: maps}
}

// Maps returns the underlying step maps in order.
func (m *Mapping) Maps() []*StepMap {
	return m.maps
}

// AppendMap adds a step map at the end of the mapping.
func (m *Mapping) AppendMap(sm *StepMap) {
	m.maps = append(m.maps, sm)
}

// Slice returns a mapping over the sub-range [from, to) of step maps.
// The result shares the underlying maps; it is O(1), which is what
// makes deferred position mapping over a suffix of the log cheap.
func (m *Mapping) Slice(from, to int) *Mapping {
	return &Mapping{maps: m.maps[from:to]}
}

// Map maps a position through all step maps in order.
func (m *Mapping) Map(pos, assoc int) int {
	for _, sm := range m.maps {
		pos = sm.Map(pos, assoc)
	}
	return pos
}

// MapResult maps a position through all step maps, reporting whether
// any step deleted it.
func (m *Mapping) MapResult(pos, assoc int) MapResult {
	deleted := false
	for _, sm := range m.maps {
		r := sm.MapResult(pos, assoc)
		pos = r.Pos
		deleted = deleted || r.Deleted
	}
	return MapResult{Pos: pos, Deleted: deleted}
}
