package dse

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/movedce/bytecode"
)

func TestOrderedSet_InsertKeepsSortedAndDeduplicates(t *testing.T) {
	s := newOrderedSet()
	s.Insert(5)
	s.Insert(1)
	s.Insert(3)
	s.Insert(1)

	assert.Equal(t, []bytecode.CodeOffset{1, 3, 5}, s.All())
}

func TestOrderedSet_RemoveAndContains(t *testing.T) {
	s := newOrderedSet()
	s.Insert(1)
	s.Insert(2)
	s.Insert(3)

	s.Remove(2)
	assert.False(t, s.Contains(2))
	assert.True(t, s.Contains(1))
	assert.True(t, s.Contains(3))
	assert.Equal(t, 2, s.Len())
}

func TestOrderedSet_PopLastIsLargestFirstDeterministic(t *testing.T) {
	s := newOrderedSet()
	s.Insert(1)
	s.Insert(5)
	s.Insert(3)

	var popped []bytecode.CodeOffset
	for {
		v, ok := s.PopLast()
		if !ok {
			break
		}
		popped = append(popped, v)
	}
	assert.Equal(t, []bytecode.CodeOffset{5, 3, 1}, popped)
}

func TestOrderedSet_EveryVacuouslyTrueOnEmpty(t *testing.T) {
	s := newOrderedSet()
	assert.True(t, s.Every(func(bytecode.CodeOffset) bool { return false }))
}
