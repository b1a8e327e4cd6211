package alloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimit_Budget(t *testing.T) {
	l := NewLimit[int](NewHeap[int](), 10)
	assert.Equal(t, 10, l.MaxSize())

	a, err := l.Allocate(6)
	require.NoError(t, err)
	assert.Equal(t, 6, l.Used())

	_, err = l.Allocate(5)
	require.ErrorIs(t, err, ErrExhausted)
	require.ErrorIs(t, err, ErrAllocation)
	assert.Equal(t, 6, l.Used(), "failed allocation must not consume budget")

	b, err := l.Allocate(4)
	require.NoError(t, err)
	assert.Equal(t, 10, l.Used())

	l.Deallocate(a)
	l.Deallocate(b)
	assert.Zero(t, l.Used())
	assert.Equal(t, 10, l.Budget())
}

func TestLimit_TooLarge(t *testing.T) {
	l := NewLimit[int](NewHeap[int](), 4)
	_, err := l.Allocate(5)
	require.ErrorIs(t, err, ErrTooLarge)
}

func TestLimit_DelegatesConstructDestroy(t *testing.T) {
	f := NewFaulty[int](nil)
	l := NewLimit[int](f, 8)

	var slot int
	require.NoError(t, l.Construct(&slot, 5))
	assert.Equal(t, 5, slot)
	l.Destroy(&slot)
	assert.Zero(t, slot)

	c := f.Counts()
	assert.Equal(t, 1, c.Constructs)
	assert.Equal(t, 1, c.Destroys)
}
