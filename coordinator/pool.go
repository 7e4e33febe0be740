package coordinator

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/asrivast28/ramble-go/bnset"
	"github.com/asrivast28/ramble-go/cache"
	"github.com/asrivast28/ramble-go/internal/logger"
)

// Driver is the subset of learn.Driver the Pool needs. Declared locally
// (rather than importing the learn package) so that learn can in turn
// depend on coordinator for its own parallel rounds without an import
// cycle; any learn.Driver already satisfies this interface.
type Driver interface {
	CandidatePC(target int, cache *cache.Layer) (*bnset.Set, error)
	CandidateMB(target int, cache *cache.Layer) (*bnset.Set, error)
}

// Pool runs a Driver's per-target discovery across numWorkers goroutines,
// each handling one contiguous Block of the target list (the "N² − N
// ordered pairs, flat-distributed in contiguous blocks" unit of work spec
// §5 describes, specialized here to one row of that matrix per target since
// learn.Driver already amortizes the inner loop). A Pool of size 1 takes
// the same code path as every other size — there is no separate sequential
// implementation to keep in sync.
type Pool struct {
	NumWorkers int

	// Log receives phase-transition messages (block distribution, per-round
	// fan-out). Nil means no logging.
	Log logger.Logger
}

// NewPool constructs a Pool with the given worker count (must be positive).
func NewPool(numWorkers int) *Pool {
	return &Pool{NumWorkers: numWorkers}
}

// TargetResult is one target's computed candidate set, or the error that
// computing it produced.
type TargetResult struct {
	Target int
	Set    *bnset.Set
	Err    error
}

// RunCandidatePC computes driver.CandidatePC for every target in targets,
// block-distributing targets across p.NumWorkers goroutines. cacheLayer is
// shared across all workers; cache.Layer synchronizes per-target entry
// computation internally, so concurrent discovery of distinct targets is
// safe.
func (p *Pool) RunCandidatePC(ctx context.Context, driver Driver, cacheLayer *cache.Layer, targets []int) ([]TargetResult, error) {
	return p.run(ctx, targets, func(target int) (*bnset.Set, error) {
		return driver.CandidatePC(target, cacheLayer)
	})
}

// RunCandidateMB mirrors RunCandidatePC for CandidateMB.
func (p *Pool) RunCandidateMB(ctx context.Context, driver Driver, cacheLayer *cache.Layer, targets []int) ([]TargetResult, error) {
	return p.run(ctx, targets, func(target int) (*bnset.Set, error) {
		return driver.CandidateMB(target, cacheLayer)
	})
}

// RunCorrectedPC computes cacheLayer.GetPC (the symmetry-corrected PC set)
// for every target in targets, block-distributed the same way as
// RunCandidatePC. This is the entry point the full-network build uses: it
// wants the corrected sets, not the raw candidates.
func (p *Pool) RunCorrectedPC(ctx context.Context, cacheLayer *cache.Layer, targets []int) ([]TargetResult, error) {
	return p.run(ctx, targets, cacheLayer.GetPC)
}

func (p *Pool) run(ctx context.Context, targets []int, compute func(int) (*bnset.Set, error)) ([]TargetResult, error) {
	log := p.Log
	if log == nil {
		log = logger.Null{}
	}

	numWorkers := p.NumWorkers
	if numWorkers <= 0 {
		return nil, ErrNoWorkers
	}
	if numWorkers > len(targets) {
		numWorkers = len(targets)
	}
	if numWorkers == 0 {
		return nil, nil
	}

	blocks, err := BlockDistribute(len(targets), numWorkers)
	if err != nil {
		return nil, err
	}
	log.Debug("coordinator: distributing %d targets across %d workers", len(targets), numWorkers)

	results := make([]TargetResult, len(targets))
	g, _ := errgroup.WithContext(ctx)
	for _, b := range blocks {
		b := b
		g.Go(func() error {
			for i := b.Start; i < b.Start+b.Count; i++ {
				target := targets[i]
				set, err := compute(target)
				results[i] = TargetResult{Target: target, Set: set, Err: err}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	log.Debug("coordinator: finished %d targets", len(targets))
	return results, nil
}
