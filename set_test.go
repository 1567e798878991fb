package avltree

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetInsertReportsNewness(t *testing.T) {
	s := NewSet[int]()

	assert.True(t, s.Insert(5), "first insert of a key should report true")
	assert.False(t, s.Insert(5), "re-inserting an existing key should report false")

	count, ok := s.Count(5)
	require.True(t, ok)
	assert.Equal(t, uint(2), count)
	assert.Equal(t, 1, s.Size())
}

func TestSetEraseDecrementsBeforeRemoving(t *testing.T) {
	s := NewSet[int]()
	s.Insert(7)
	s.Insert(7)

	assert.False(t, s.Erase(7), "erase should only decrement while count > 1")
	count, ok := s.Count(7)
	require.True(t, ok)
	assert.Equal(t, uint(1), count)
	assert.True(t, s.Contains(7))

	assert.True(t, s.Erase(7), "erase on the 1->0 transition should remove the node")
	assert.False(t, s.Contains(7))
	assert.Equal(t, 0, s.Size())
}

func TestSetEraseAbsentKey(t *testing.T) {
	s := NewSet[int]()
	s.Insert(1)

	assert.False(t, s.Erase(2))
	assert.Equal(t, 1, s.Size())
}

func TestSetCountOnMissingKey(t *testing.T) {
	s := NewSet[int]()
	count, ok := s.Count(42)
	assert.False(t, ok)
	assert.Equal(t, uint(0), count)
}

func TestSetClear(t *testing.T) {
	s := NewSet[int]()
	for _, k := range []int{3, 1, 4, 1, 5} {
		s.Insert(k)
	}
	require.NotEqual(t, 0, s.Size())

	s.Clear()

	assert.True(t, s.Empty())
	assert.Nil(t, s.root)
	assert.Empty(t, s.Keys())
}

func TestSetKeysAscending(t *testing.T) {
	s := NewSet[string]()
	for _, k := range []string{"banana", "apple", "cherry", "apple"} {
		s.Insert(k)
	}

	want := []string{"apple", "banana", "cherry"}
	if diff := cmp.Diff(want, s.Keys()); diff != "" {
		t.Errorf("Keys() mismatch (-want +got):\n%s", diff)
	}
}
