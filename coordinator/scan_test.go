package coordinator_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/asrivast28/ramble-go/coordinator"
)

func TestSegmentedArgmin_PicksSmallestPValuePerPrimary(t *testing.T) {
	pairs := []coordinator.PrimaryPair{
		{Primary: 0, Secondary: 1, PValue: 0.3},
		{Primary: 0, Secondary: 2, PValue: 0.1},
		{Primary: 1, Secondary: 0, PValue: 0.5},
		{Primary: 0, Secondary: 3, PValue: 0.1}, // ties with secondary=2, smaller secondary wins
	}
	out := coordinator.SegmentedArgmin(pairs)
	require.Len(t, out, 2)
	require.Equal(t, 0, out[0].Primary)
	require.Equal(t, 2, out[0].Secondary)
	require.Equal(t, 1, out[1].Primary)
	require.Equal(t, 0, out[1].Secondary)
}

func TestSegmentedArgmin_Empty(t *testing.T) {
	require.Empty(t, coordinator.SegmentedArgmin(nil))
}
