package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/vectorkit/vector/alloc"
)

func TestBench_JSON(t *testing.T) {
	out, err := runCLI(t, "bench", "-n", "2000", "--alloc", "pool", "--json")
	require.NoError(t, err)

	var results []BenchResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, len(benchCases))
	for _, r := range results {
		assert.Equal(t, 2000, r.N, r.Name)
		assert.GreaterOrEqual(t, r.VectorMS, 0.0)
	}
}

func TestBench_LocalizedNumbers(t *testing.T) {
	out, err := runCLI(t, "bench", "-n", "1000000", "--lang", "de")
	require.NoError(t, err)
	assert.Contains(t, out, "Append 1.000.000 elements:")
	assert.Contains(t, out, "Insert front 20.000 elements:", "front operations are capped")
}

func TestBench_RejectsBadFlags(t *testing.T) {
	_, err := runCLI(t, "bench", "-n", "0")
	require.Error(t, err)

	_, err = runCLI(t, "bench", "--lang", "!!")
	require.Error(t, err)
}

func TestRunBenchCases_PropagatesAllocationFailure(t *testing.T) {
	l := alloc.NewLimit[int](alloc.NewHeap[int](), 100)
	_, err := runBenchCases(l, 1000, 1)
	require.ErrorIs(t, err, alloc.ErrAllocation)
	assert.Contains(t, err.Error(), "Append")
}

func TestVersion(t *testing.T) {
	out, err := runCLI(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "vecctl dev")
}
