package learn

import (
	"github.com/asrivast28/ramble-go/bnset"
	"github.com/asrivast28/ramble-go/cache"
	"github.com/asrivast28/ramble-go/ciquery"
	"github.com/asrivast28/ramble-go/coordinator"
	"github.com/asrivast28/ramble-go/internal/logger"
)

// Driver is the shared interface implemented by every algorithm. Shared
// loop logic (grow/shrink, false-positive removal, spouse-finding) lives in
// free functions in this package that take an Oracle and operate on
// bnset.Sets directly; Driver itself only needs to expose the two
// per-target discovery operations a cache.Layer memoizes.
type Driver interface {
	// Name is the canonical --algorithm value for this driver.
	Name() string

	// CandidatePC computes target's (uncorrected) candidate parents-and-
	// children set. cache is used to fetch other variables' candidate sets
	// when the algorithm's derivation needs them (PC-from-MB derivation,
	// spouse-finding); symmetry correction is done by the cache itself.
	CandidatePC(target int, cache *cache.Layer) (*bnset.Set, error)

	// CandidateMB computes target's (uncorrected) candidate Markov blanket.
	CandidateMB(target int, cache *cache.Layer) (*bnset.Set, error)
}

// Config bundles the shared, read-only parameters every driver needs:
// an Oracle over the bound dataset, the total variable count, and the
// conditioning-set size cap (spec §4.D's `max_conditioning`). NumWorkers,
// Imbalance, Collectives, and Log only matter to Global (the PC-Stable
// family): every other driver gets its parallelism from a
// coordinator.Pool wrapping the whole driver instead.
type Config struct {
	Oracle          *ciquery.Oracle
	N               int
	MaxConditioning int

	// NumWorkers is how many goroutines Global's round-based skeleton
	// search fans out across; <= 1 runs sequentially.
	NumWorkers int
	// Imbalance is the threshold on (max-to-mean worker-weight ratio - 1)
	// above which Global rebalances edges between rounds (spec §5's
	// imbalance check).
	Imbalance float64
	// Collectives merges per-worker "changed primaries" sets at the end
	// of each round; nil defaults to coordinator.Sequential{}.
	Collectives coordinator.Collectives
	// Log receives round/rebalance messages; nil means no logging.
	Log logger.Logger
}

func (c Config) allExcept(target int, extra ...int) *bnset.Set {
	s := bnset.New(c.N)
	for v := 0; v < c.N; v++ {
		if v != target {
			_ = s.Insert(v)
		}
	}
	for _, e := range extra {
		_ = s.Erase(e)
	}
	return s
}

// smallerOf returns whichever of a, b has fewer elements (ties favor a),
// per the repeated "Z = smaller of MB(x)\{y} and MB(y)\{x}" pattern used by
// both the PC-from-MB derivation and v-structure detection.
func smallerOf(a, b *bnset.Set) *bnset.Set {
	if b.Size() < a.Size() {
		return b
	}
	return a
}
