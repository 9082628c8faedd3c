// Package sequencer computes integer positions for ordered sibling collections
// (tasks within a list, lists within a board).
//
// Positions are sort keys, not indexes: they are distinct at rest but need not
// be contiguous. Appends never touch existing rows; an insert in the middle
// shifts the tail up by one.
package sequencer

import (
	"sort"

	"github.com/google/uuid"

	"github.com/heartmarshall/taskboard-backend/internal/domain"
)

// Slot is one member of an ordered collection.
type Slot = domain.Slot

// Placement is the outcome of inserting an item at an index.
// When Shift is set, every sibling with Position >= ShiftFrom must be
// incremented by one in the same transaction that assigns Position.
type Placement struct {
	Position  int
	Shift     bool
	ShiftFrom int
}

// Sort orders slots ascending by position. Ties keep their input order.
func Sort(slots []Slot) {
	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].Position < slots[j].Position
	})
}

// Append returns the position for a new last item: max+1, or 0 when empty.
func Append(siblings []Slot) int {
	if len(siblings) == 0 {
		return 0
	}
	maxPos := siblings[0].Position
	for _, s := range siblings[1:] {
		if s.Position > maxPos {
			maxPos = s.Position
		}
	}
	return maxPos + 1
}

// IndexOf returns the index of id in slots, or -1.
func IndexOf(slots []Slot, id uuid.UUID) int {
	for i, s := range slots {
		if s.ID == id {
			return i
		}
	}
	return -1
}

// Without returns a copy of slots with id removed.
func Without(slots []Slot, id uuid.UUID) []Slot {
	out := make([]Slot, 0, len(slots))
	for _, s := range slots {
		if s.ID != id {
			out = append(out, s)
		}
	}
	return out
}

// ClampIndex bounds index to [0, n].
func ClampIndex(index, n int) int {
	if index < 0 {
		return 0
	}
	if index > n {
		return n
	}
	return index
}

// InsertAt computes where an item lands when inserted at index into siblings.
// siblings must be sorted and must not contain the moving item.
func InsertAt(siblings []Slot, index int) Placement {
	index = ClampIndex(index, len(siblings))
	if index == len(siblings) {
		return Placement{Position: Append(siblings)}
	}
	pos := siblings[index].Position
	return Placement{Position: pos, Shift: true, ShiftFrom: pos}
}

// IsNoopMove reports whether moving id to index within the same collection
// leaves the order unchanged. current must be sorted and contain id.
func IsNoopMove(current []Slot, id uuid.UUID, index int) bool {
	at := IndexOf(current, id)
	if at < 0 {
		return false
	}
	return at == ClampIndex(index, len(current)-1)
}

// Move applies an insert-at-index to an in-memory collection and returns the
// new sorted collection. dest must be sorted; it may contain id (same-list
// move) or not (cross-list move).
func Move(dest []Slot, id uuid.UUID, index int) []Slot {
	siblings := Without(dest, id)
	p := InsertAt(siblings, index)

	out := make([]Slot, 0, len(siblings)+1)
	for _, s := range siblings {
		if p.Shift && s.Position >= p.ShiftFrom {
			s.Position++
		}
		out = append(out, s)
	}
	out = append(out, Slot{ID: id, Position: p.Position})
	Sort(out)
	return out
}

// Reorder assigns caller-supplied positions to matching slots and returns
// the collection re-sorted. Items naming ids outside the collection are
// ignored. Duplicate positions are accepted as given; their relative order
// afterwards is unspecified.
func Reorder(slots []Slot, items []domain.ReorderItem) []Slot {
	want := make(map[uuid.UUID]int, len(items))
	for _, it := range items {
		want[it.ID] = it.Position
	}
	out := make([]Slot, len(slots))
	for i, s := range slots {
		if pos, ok := want[s.ID]; ok {
			s.Position = pos
		}
		out[i] = s
	}
	Sort(out)
	return out
}

// Applicable filters items down to those naming members of slots.
func Applicable(slots []Slot, items []domain.ReorderItem) []domain.ReorderItem {
	known := make(map[uuid.UUID]struct{}, len(slots))
	for _, s := range slots {
		known[s.ID] = struct{}{}
	}
	out := make([]domain.ReorderItem, 0, len(items))
	for _, it := range items {
		if _, ok := known[it.ID]; ok {
			out = append(out, it)
		}
	}
	return out
}
