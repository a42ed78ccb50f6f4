package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-colony/core"
)

func TestStoreRemoveKeepsIndex(t *testing.T) {
	s := NewStore[int]()
	ents := []core.Entity{1, 2, 3, 4}
	for i, e := range ents {
		s.Set(e, i*10)
	}

	// Removing a middle entity moves the last one into its slot
	s.Remove(2)
	assert.Equal(t, []core.Entity{1, 4, 3}, s.All())
	assert.False(t, s.Has(2))

	v, ok := s.Get(4)
	require.True(t, ok)
	assert.Equal(t, 30, v)

	s.Set(4, 99)
	v, _ = s.Get(4)
	assert.Equal(t, 99, v)
	assert.Equal(t, 3, s.Count())

	s.Remove(4)
	s.Remove(4)
	assert.Equal(t, []core.Entity{1, 3}, s.All())

	s.Clear()
	assert.Zero(t, s.Count())
	_, ok = s.Get(1)
	assert.False(t, ok)
}

func TestStoreAllIsSnapshot(t *testing.T) {
	s := NewStore[string]()
	s.Set(7, "a")
	all := s.All()
	s.Set(8, "b")
	assert.Len(t, all, 1)
}
