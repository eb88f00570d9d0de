package dse

import (
	"sort"

	"github.com/katalvlaran/movedce/bytecode"
)

// orderedSet is a sorted-slice-backed set of code offsets. It exists to
// give extraction deterministic, reproducible iteration order — the
// standard library has no ordered-map/ordered-set container, and no
// example in the reference pack ships a generic ordered-set-of-uint32 type
// either, so this is implemented directly (see DESIGN.md).
type orderedSet struct {
	offsets []bytecode.CodeOffset
}

func newOrderedSet() *orderedSet {
	return &orderedSet{}
}

func (s *orderedSet) indexOf(offset bytecode.CodeOffset) (int, bool) {
	i := sort.Search(len(s.offsets), func(i int) bool { return s.offsets[i] >= offset })
	if i < len(s.offsets) && s.offsets[i] == offset {
		return i, true
	}
	return i, false
}

// Insert adds offset to the set, keeping it sorted. No-op if already present.
func (s *orderedSet) Insert(offset bytecode.CodeOffset) {
	i, ok := s.indexOf(offset)
	if ok {
		return
	}
	s.offsets = append(s.offsets, 0)
	copy(s.offsets[i+1:], s.offsets[i:])
	s.offsets[i] = offset
}

// Remove deletes offset from the set. No-op if absent.
func (s *orderedSet) Remove(offset bytecode.CodeOffset) {
	i, ok := s.indexOf(offset)
	if !ok {
		return
	}
	s.offsets = append(s.offsets[:i], s.offsets[i+1:]...)
}

// Contains reports whether offset is in the set.
func (s *orderedSet) Contains(offset bytecode.CodeOffset) bool {
	_, ok := s.indexOf(offset)
	return ok
}

// Len reports the number of elements.
func (s *orderedSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.offsets)
}

// PopLast removes and returns the largest offset in the set. Choosing the
// largest offset first is a deterministic policy that tends to unwind
// chains of pass-through definitions from the tail end first.
func (s *orderedSet) PopLast() (bytecode.CodeOffset, bool) {
	if len(s.offsets) == 0 {
		return 0, false
	}
	last := s.offsets[len(s.offsets)-1]
	s.offsets = s.offsets[:len(s.offsets)-1]
	return last, true
}

// All returns the elements in ascending order. The returned slice must not
// be mutated by the caller.
func (s *orderedSet) All() []bytecode.CodeOffset {
	if s == nil {
		return nil
	}
	return s.offsets
}

// Every reports whether pred holds for every element of the set. An empty
// set vacuously satisfies any predicate.
func (s *orderedSet) Every(pred func(bytecode.CodeOffset) bool) bool {
	for _, o := range s.All() {
		if !pred(o) {
			return false
		}
	}
	return true
}
