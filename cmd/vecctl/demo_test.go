package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/vectorkit/vector/alloc"
)

func TestDemo_AllAllocatorsPass(t *testing.T) {
	for _, name := range []string{"heap", "pool", "mmap"} {
		t.Run(name, func(t *testing.T) {
			out, err := runCLI(t, "demo", "--alloc", name)
			require.NoError(t, err, out)
			assert.Contains(t, out, "Functionality Checks ("+name+")")
			assert.Contains(t, out, "Rollback on relocation test: PASSED")
			assert.NotContains(t, out, "FAILED")
		})
	}
}

func TestDemo_JSON(t *testing.T) {
	out, err := runCLI(t, "demo", "--json")
	require.NoError(t, err)

	var report DemoReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, "heap", report.Allocator)
	assert.Zero(t, report.Failed)
	assert.GreaterOrEqual(t, len(report.Checks), 15)
	for _, c := range report.Checks {
		assert.True(t, c.Passed, c.Name)
	}
}

func TestDemo_UnknownAllocator(t *testing.T) {
	_, err := runCLI(t, "demo", "--alloc", "arena")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown allocator "arena"`)
}

func TestRunChecks_OverLimitedAllocator(t *testing.T) {
	// A budget too small for Reserve(100) surfaces as an error, not a FAILED check.
	l := alloc.NewLimit[int](alloc.NewHeap[int](), 64)
	_, err := runChecks(l)
	require.ErrorIs(t, err, alloc.ErrAllocation)
}

func TestChecker_ReportsMismatch(t *testing.T) {
	var c checker
	c.expect("match", 3, 3)
	c.expect("mismatch", []int{1, 2}, []int{1, 3})
	require.Len(t, c.results, 2)
	assert.True(t, c.results[0].Passed)
	assert.False(t, c.results[1].Passed)
	assert.Equal(t, "[1 2]", c.results[1].Expected)
	assert.Equal(t, "[1 3]", c.results[1].Got)
}
