package coordinator_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/asrivast28/ramble-go/coordinator"
)

func TestFixWeightedImbalance_NoChangeBelowThreshold(t *testing.T) {
	items := []coordinator.Weighted{{Index: 0, Weight: 1}, {Index: 1, Weight: 1}, {Index: 2, Weight: 1}, {Index: 3, Weight: 1}}
	byWorker := [][]int{{0, 1}, {2, 3}}
	out, fixed := coordinator.FixWeightedImbalance(items, byWorker, 0.5)
	require.False(t, fixed)
	require.Equal(t, byWorker, out)
}

func TestFixWeightedImbalance_RebalancesSkewedAssignment(t *testing.T) {
	items := []coordinator.Weighted{{Index: 0, Weight: 10}, {Index: 1, Weight: 10}, {Index: 2, Weight: 1}, {Index: 3, Weight: 1}}
	byWorker := [][]int{{0, 1, 2, 3}, {}}
	out, fixed := coordinator.FixWeightedImbalance(items, byWorker, 0.1)
	require.True(t, fixed)
	require.Len(t, out, 2)

	seen := map[int]bool{}
	for _, idxs := range out {
		for _, idx := range idxs {
			seen[idx] = true
		}
	}
	require.Len(t, seen, 4)
}

func TestFixWeightedImbalance_EmptyInputsAreNoop(t *testing.T) {
	out, fixed := coordinator.FixWeightedImbalance(nil, [][]int{{}}, 0.1)
	require.False(t, fixed)
	require.Equal(t, [][]int{{}}, out)
}
