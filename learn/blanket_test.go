package learn_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/asrivast28/ramble-go/bnset"
	"github.com/asrivast28/ramble-go/cache"
	"github.com/asrivast28/ramble-go/learn"
)

func newLayer(t *testing.T, d learn.Driver) *cache.Layer {
	t.Helper()
	var l *cache.Layer
	l = cache.NewLayer(
		func(target int) (*bnset.Set, error) { return d.CandidatePC(target, l) },
		func(target int) (*bnset.Set, error) { return d.CandidateMB(target, l) },
	)
	return l
}

func TestGS_CandidateMB_KeepsDependentDropsIndependent(t *testing.T) {
	oracle, n := newTestOracle(t)
	d := learn.NewGS(learn.Config{Oracle: oracle, N: n, MaxConditioning: n})

	mb, err := d.CandidateMB(1, nil)
	require.NoError(t, err)
	require.True(t, mb.Contains(0), "column 0 is an exact copy of target 1, must be in MB")
	require.False(t, mb.Contains(2), "column 2 is independent of target 1, must not be in MB")
}

func TestIAMB_CandidateMB_KeepsDependentDropsIndependent(t *testing.T) {
	oracle, n := newTestOracle(t)
	d := learn.NewIAMB(learn.Config{Oracle: oracle, N: n, MaxConditioning: n})

	mb, err := d.CandidateMB(1, nil)
	require.NoError(t, err)
	require.True(t, mb.Contains(0))
	require.False(t, mb.Contains(2))
}

func TestInterIAMB_CandidateMB_KeepsDependentDropsIndependent(t *testing.T) {
	oracle, n := newTestOracle(t)
	d := learn.NewInterIAMB(learn.Config{Oracle: oracle, N: n, MaxConditioning: n})

	mb, err := d.CandidateMB(1, nil)
	require.NoError(t, err)
	require.True(t, mb.Contains(0))
	require.False(t, mb.Contains(2))
}

func TestGS_CandidatePC_DerivedFromMBViaCache(t *testing.T) {
	oracle, n := newTestOracle(t)
	d := learn.NewGS(learn.Config{Oracle: oracle, N: n, MaxConditioning: n})
	l := newLayer(t, d)

	pc, err := l.GetPC(1)
	require.NoError(t, err)
	require.True(t, pc.Contains(0))
	require.False(t, pc.Contains(2))
}
