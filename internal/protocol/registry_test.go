package protocol

import (
	"testing"

	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"
)

func TestRegistryNextIDIsNonZeroAndUnique(t *testing.T) {
	r := newPacketIDRegistry()
	seen := make(map[uint32]bool)
	for i := 0; i < 100; i++ {
		id, err := r.nextID()
		require.Nil(t, err)
		assert.NotZero(t, id)
		assert.False(t, seen[id], "duplicate packet id %d", id)
		seen[id] = true
	}
	assert.Equal(t, 100, r.len())
}

func TestRegistryRemoveSwapsWithLast(t *testing.T) {
	r := newPacketIDRegistry()
	r.insert(1)
	r.insert(2)
	r.insert(3)

	ok := r.remove(1)
	require.True(t, ok)
	assert.Equal(t, 2, r.len())
	assert.True(t, r.contains(2))
	assert.True(t, r.contains(3))
	assert.False(t, r.contains(1))
}

func TestRegistryRemoveMissing(t *testing.T) {
	r := newPacketIDRegistry()
	r.insert(1)
	assert.False(t, r.remove(99))
	assert.Equal(t, 1, r.len())
}

func TestRegistryGrowsPastChunk(t *testing.T) {
	r := newPacketIDRegistry()
	for i := 0; i < registryChunk+5; i++ {
		_, err := r.nextID()
		require.Nil(t, err)
	}
	assert.Equal(t, registryChunk+5, r.len())
}
