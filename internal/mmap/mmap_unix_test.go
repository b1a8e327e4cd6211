//go:build linux || darwin || freebsd

package mmap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAnonymous_ZeroedAndWritable(t *testing.T) {
	data, release, err := Anonymous(100)
	require.NoError(t, err)
	require.Len(t, data, 100)
	require.GreaterOrEqual(t, cap(data), PageSize(), "mapping should cover a whole page")

	for i, b := range data {
		require.Zero(t, b, "byte %d should start zeroed", i)
	}
	data[0] = 0xAB
	data[99] = 0xCD
	require.Equal(t, byte(0xAB), data[0])
	require.Equal(t, byte(0xCD), data[99])

	require.NoError(t, release())
	require.NoError(t, release(), "second release should be a no-op")
}

func TestAnonymous_Empty(t *testing.T) {
	data, release, err := Anonymous(0)
	require.NoError(t, err)
	require.Empty(t, data)
	require.NoError(t, release())
}

func TestAnonymous_Negative(t *testing.T) {
	_, _, err := Anonymous(-1)
	require.Error(t, err)
}
