package vector

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/vectorkit/vector/alloc"
)

// tracked counts live deep copies through the Cloner and Disposer hooks.
type tracked struct {
	id        int
	live      *int
	failClone bool
}

var errCloneRefused = errors.New("clone refused")

func (t tracked) Clone() (tracked, error) {
	if t.failClone {
		return tracked{}, errCloneRefused
	}
	*t.live++
	return t, nil
}

func (t *tracked) Dispose() {
	if t.live != nil {
		*t.live--
	}
}

// newTracked returns an element already counted as live.
func newTracked(live *int, id int) tracked {
	*live++
	return tracked{id: id, live: live}
}

// newInts builds a heap-backed vector holding values.
func newInts(t testing.TB, values ...int) *Vector[int] {
	t.Helper()
	v, err := Of(values...)
	require.NoError(t, err)
	return v
}

// newFaultyInts builds a vector over a Faulty allocator holding values.
func newFaultyInts(t testing.TB, values ...int) (*Vector[int], *alloc.Faulty[int]) {
	t.Helper()
	f := alloc.NewFaulty[int](nil)
	v, err := From(values, WithAllocator[int](f))
	require.NoError(t, err)
	return v, f
}

// requireInvariants checks the length/capacity relationship and that the
// unconstructed tail holds zero values.
func requireInvariants[T comparable](t testing.TB, v *Vector[T]) {
	t.Helper()
	require.GreaterOrEqual(t, v.Len(), 0)
	require.LessOrEqual(t, v.Len(), v.Cap(), "length must never exceed capacity")
	if v.Cap() > 0 {
		require.NotNil(t, v.data, "storage must exist when capacity > 0")
	}
	var zero T
	for i := v.Len(); i < v.Cap(); i++ {
		require.Equal(t, zero, v.data[i], "slot %d past the length should be unconstructed", i)
	}
}
