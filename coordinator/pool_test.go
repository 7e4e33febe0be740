package coordinator_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/asrivast28/ramble-go/bnset"
	"github.com/asrivast28/ramble-go/cache"
	"github.com/asrivast28/ramble-go/coordinator"
)

// fakeDriver implements learn.Driver for Pool tests without needing a real
// dataset/oracle: CandidatePC(target) = {(target+1) mod n}.
type fakeDriver struct{ n int }

func (d *fakeDriver) Name() string { return "fake" }

func (d *fakeDriver) CandidatePC(target int, _ *cache.Layer) (*bnset.Set, error) {
	return bnset.FromSlice(d.n, []int{(target + 1) % d.n})
}

func (d *fakeDriver) CandidateMB(target int, _ *cache.Layer) (*bnset.Set, error) {
	return d.CandidatePC(target, nil)
}

func TestPool_RunCandidatePC_CoversAllTargets(t *testing.T) {
	const n = 7
	d := &fakeDriver{n: n}
	l := cache.NewLayer(
		func(target int) (*bnset.Set, error) { return d.CandidatePC(target, nil) },
		func(target int) (*bnset.Set, error) { return d.CandidateMB(target, nil) },
	)
	pool := coordinator.NewPool(3)
	targets := make([]int, n)
	for i := range targets {
		targets[i] = i
	}

	results, err := pool.RunCandidatePC(context.Background(), d, l, targets)
	require.NoError(t, err)
	require.Len(t, results, n)
	for i, r := range results {
		require.NoError(t, r.Err)
		require.Equal(t, i, r.Target)
		require.True(t, r.Set.Contains((i+1)%n))
	}
}

func TestPool_RejectsNonPositiveWorkers(t *testing.T) {
	pool := coordinator.NewPool(0)
	_, err := pool.RunCandidatePC(context.Background(), &fakeDriver{n: 3}, nil, []int{0, 1, 2})
	require.ErrorIs(t, err, coordinator.ErrNoWorkers)
}
