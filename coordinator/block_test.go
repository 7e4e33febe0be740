package coordinator_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/asrivast28/ramble-go/coordinator"
)

func TestBlockDistribute_EvenSplit(t *testing.T) {
	blocks, err := coordinator.BlockDistribute(10, 5)
	require.NoError(t, err)
	require.Len(t, blocks, 5)
	for _, b := range blocks {
		require.Equal(t, 2, b.Count)
	}
	require.Equal(t, 0, blocks[0].Start)
	require.Equal(t, 8, blocks[4].Start)
}

func TestBlockDistribute_UnevenSplitFrontLoaded(t *testing.T) {
	blocks, err := coordinator.BlockDistribute(10, 3)
	require.NoError(t, err)
	require.Equal(t, []int{4, 3, 3}, []int{blocks[0].Count, blocks[1].Count, blocks[2].Count})

	total := 0
	for _, b := range blocks {
		total += b.Count
	}
	require.Equal(t, 10, total)
}

func TestBlockDistribute_RejectsNonPositiveWorkers(t *testing.T) {
	_, err := coordinator.BlockDistribute(10, 0)
	require.ErrorIs(t, err, coordinator.ErrNoWorkers)
}
