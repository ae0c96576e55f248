package transform

import "testing"

func TestStepMapDeletion(t *testing.T) {
	m := NewStepMap([]int{2, 3, 0})

	if got := m.Map(1, 1); got != 1 {
		t.Errorf("position before range: expected 1, got %d", got)
	}
	if got := m.Map(7, 1); got != 4 {
		t.Errorf("position after range: expected 4, got %d", got)
	}
	if got := m.Map(2, -1); got != 2 {
		t.Errorf("range start: expected 2, got %d", got)
	}
	if got := m.Map(5, 1); got != 2 {
		t.Errorf("range end: expected 2, got %d", got)
	}

	r := m.MapResult(3, -1)
	if r.Pos != 2 || !r.Deleted {
		t.Errorf("inside range: expected pos 2 deleted, got %d/%v", r.Pos, r.Deleted)
	}
	if r := m.MapResult(2, -1); r.Deleted {
		t.Error("range start should not count as deleted")
	}
}

func TestStepMapInsertionAssoc(t *testing.T) {
	m := NewStepMap([]int{3, 0, 2})

	if got := m.Map(3, -1); got != 3 {
		t.Errorf("backward assoc: expected 3, got %d", got)
	}
	if got := m.Map(3, 1); got != 5 {
		t.Errorf("forward assoc: expected 5, got %d", got)
	}
	if got := m.Map(4, -1); got != 6 {
		t.Errorf("after insertion: expected 6, got %d", got)
	}
}

func TestStepMapForEach(t *testing.T) {
	m := NewStepMap([]int{1, 2, 4, 6, 3, 0})

	type span struct{ oldStart, oldEnd, newStart, newEnd int }
	var got []span
	m.ForEach(func(os, oe, ns, ne int) {
		got = append(got, span{os, oe, ns, ne})
	})
	want := []span{{1, 3, 1, 5}, {6, 9, 8, 8}}
	if len(got) != len(want) {
		t.Fatalf("expected %d ranges, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("range %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestStepMapPanicsOnBadRanges(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for malformed ranges")
		}
	}()
	NewStepMap([]int{1, 2})
}

func TestMappingComposes(t *testing.T) {
	m := NewMapping()
	m.AppendMap(NewStepMap([]int{1, 0, 2})) // insert 2 at 1
	m.AppendMap(NewStepMap([]int{6, 2, 0})) // delete [6,8)

	if got := m.Map(5, 1); got != 6 {
		t.Errorf("expected 6, got %d", got)
	}
	if got := m.Map(8, 1); got != 8 {
		t.Errorf("expected 8, got %d", got)
	}
	if r := m.MapResult(5, -1); !r.Deleted {
		t.Error("position mapped into a deleted range should report deleted")
	}
}

func TestMappingSlice(t *testing.T) {
	m := NewMapping(
		NewStepMap([]int{0, 0, 5}),
		NewStepMap([]int{10, 0, 3}),
	)

	// The suffix mapping skips the first step's shift.
	suffix := m.Slice(1, 2)
	if got := suffix.Map(4, 1); got != 4 {
		t.Errorf("expected 4, got %d", got)
	}
	if got := suffix.Map(12, 1); got != 15 {
		t.Errorf("expected 15, got %d", got)
	}

	empty := m.Slice(2, 2)
	if got := empty.Map(7, 1); got != 7 {
		t.Errorf("empty slice should be identity, got %d", got)
	}
}
