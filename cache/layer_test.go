package cache_test

import (
	"testing"

	"github.com/asrivast28/ramble-go/bnset"
	"github.com/asrivast28/ramble-go/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A tiny non-symmetric candidate graph: 0 -> {1,2}, 1 -> {0}, 2 -> {0,1}.
// After symmetry correction: PC(0) should drop nothing (1 and 2 both claim
// 0), but PC(1) only candidate-claims {0}; 2's claim on 1 is one-directional
// so PC(2) loses 1 unless 1 also claims 2 — it doesn't, so 2 drops 1.
func testComputer(calls *int) cache.Computer {
	raw := map[int][]int{
		0: {1, 2},
		1: {0},
		2: {0, 1},
	}
	return func(target int) (*bnset.Set, error) {
		*calls++
		return bnset.FromSlice(3, raw[target])
	}
}

func TestLayer_GetCandidatePC_ComputesOnceAndCaches(t *testing.T) {
	calls := 0
	l := cache.NewLayer(testComputer(&calls), testComputer(&calls))

	set1, ok, err := l.GetCandidatePC(0)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, []int{1, 2}, set1.Elements())

	_, ok, err = l.GetCandidatePC(0)
	require.NoError(t, err)
	assert.False(t, ok) // still uncorrected
	assert.Equal(t, 1, calls, "second call must hit the cache, not recompute")
}

func TestLayer_GetPC_SymmetryCorrection(t *testing.T) {
	calls := 0
	l := cache.NewLayer(testComputer(&calls), testComputer(&calls))

	pc2, err := l.GetPC(2)
	require.NoError(t, err)
	// 2's candidate set is {0,1}; 0 reciprocates (PC(0) contains 2) but 1
	// does not (PC(1) = {0} only), so 1 is dropped.
	assert.Equal(t, []int{0}, pc2.Elements())

	pc0, err := l.GetPC(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, pc0.Elements())
}

func TestLayer_GetPC_IdempotentAfterCorrection(t *testing.T) {
	calls := 0
	l := cache.NewLayer(testComputer(&calls), testComputer(&calls))

	first, err := l.GetPC(2)
	require.NoError(t, err)
	second, err := l.GetPC(2)
	require.NoError(t, err)
	assert.True(t, first.Equal(second))
}
