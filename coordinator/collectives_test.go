package coordinator_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/asrivast28/ramble-go/bnset"
	"github.com/asrivast28/ramble-go/coordinator"
)

func mustSet(t *testing.T, capacity int, elems ...int) *bnset.Set {
	t.Helper()
	s, err := bnset.FromSlice(capacity, elems)
	require.NoError(t, err)
	return s
}

func TestSequential_UnionAll(t *testing.T) {
	var c coordinator.Sequential
	union, err := c.UnionAll([]*bnset.Set{
		mustSet(t, 8, 0, 1),
		mustSet(t, 8, 1, 2),
		mustSet(t, 8, 3),
	})
	require.NoError(t, err)
	require.ElementsMatch(t, []int{0, 1, 2, 3}, union.Elements())
}

func TestSequential_IntersectAll(t *testing.T) {
	var c coordinator.Sequential
	inter, err := c.IntersectAll([]*bnset.Set{
		mustSet(t, 8, 0, 1, 2),
		mustSet(t, 8, 1, 2, 3),
		mustSet(t, 8, 1, 2, 4),
	})
	require.NoError(t, err)
	require.ElementsMatch(t, []int{1, 2}, inter.Elements())
}

func TestParallel_UnionAll_MatchesSequential(t *testing.T) {
	sets := make([]*bnset.Set, 0, 50)
	for i := 0; i < 50; i++ {
		sets = append(sets, mustSet(t, 64, i, (i+1)%64))
	}

	var seq coordinator.Sequential
	want, err := seq.UnionAll(sets)
	require.NoError(t, err)

	var par coordinator.Parallel
	got, err := par.UnionAll(sets)
	require.NoError(t, err)
	require.ElementsMatch(t, want.Elements(), got.Elements())
}

func TestParallel_IntersectAll_MatchesSequential(t *testing.T) {
	sets := []*bnset.Set{
		mustSet(t, 8, 0, 1, 2, 3),
		mustSet(t, 8, 1, 2, 3, 4),
		mustSet(t, 8, 1, 2, 3, 5),
		mustSet(t, 8, 1, 2, 3, 6),
	}

	var seq coordinator.Sequential
	want, err := seq.IntersectAll(sets)
	require.NoError(t, err)

	var par coordinator.Parallel
	got, err := par.IntersectAll(sets)
	require.NoError(t, err)
	require.ElementsMatch(t, want.Elements(), got.Elements())
}

func TestParallel_UnionAll_EmptyInput(t *testing.T) {
	var par coordinator.Parallel
	union, err := par.UnionAll(nil)
	require.NoError(t, err)
	require.Equal(t, 0, union.Size())
}
