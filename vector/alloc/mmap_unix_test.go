//go:build linux || darwin || freebsd

package alloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMmap_TracksMappedBytes(t *testing.T) {
	m, err := NewMmap[uint64]()
	require.NoError(t, err)

	a, err := m.Allocate(512)
	require.NoError(t, err)
	b, err := m.Allocate(10)
	require.NoError(t, err)

	assert.Equal(t, 2, m.Blocks())
	assert.Equal(t, 512*8+10*8, m.Mapped())

	m.Deallocate(a)
	assert.Equal(t, 10*8, m.Mapped())
	m.Deallocate(b)
	assert.Zero(t, m.Mapped())

	m.Deallocate(make([]uint64, 3)) // foreign block is ignored
	require.NoError(t, m.Err())
}
