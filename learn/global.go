package learn

import (
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/asrivast28/ramble-go/bnset"
	"github.com/asrivast28/ramble-go/cache"
	"github.com/asrivast28/ramble-go/coordinator"
	"github.com/asrivast28/ramble-go/internal/logger"
)

// Global implements the PC-Stable family: rather than growing one target's
// candidate set at a time, it tests every variable pair together, in rounds
// of increasing conditioning-set size, so that the neighbor sets used within
// a round stay fixed until the round completes ("stability"). The skeleton
// is computed once (lazily, on first use) and cached for every subsequent
// target. Grounded on original_source/detail/GlobalLearning.hpp's
// PCStableCommon::getSkeleton_sequential; the round loop itself drives the
// coordinator package's block distribution, union collective, segmented
// argmin, and imbalance repair directly (spec §5's bulk-synchronous grow
// protocol), while directing colliders still lives in the orient package.
type Global struct {
	Config
	name          string
	checkBackward bool

	once         sync.Once
	skeleton     map[int]*bnset.Set
	removedEdges []RemovedEdge
	err          error
}

// RemovedEdge records an edge PC-Stable eliminated using a conditioning set
// of size >= 1, retained so the orienter can later tell whether a vertex was
// part of the set that d-separated the edge's endpoints (spec §3's
// "Removed-edge record").
type RemovedEdge struct {
	U, V   int
	PValue float64
	DSep   *bnset.Set
}

// NewPCStable constructs the PC-Stable driver: each round, an edge is tested
// against subsets of both endpoints' current neighbor sets.
func NewPCStable(cfg Config) Driver {
	return &Global{Config: cfg, name: "pc.stable", checkBackward: true}
}

// NewPCStable2 constructs the PC-Stable2 driver: each direction of an edge
// is tested independently against only its first endpoint's neighbor set,
// which halves the per-edge conditioning-set search at the cost of testing
// every pair twice.
func NewPCStable2(cfg Config) Driver {
	return &Global{Config: cfg, name: "pc.stable.2", checkBackward: false}
}

func (d *Global) Name() string { return d.name }

func (d *Global) CandidatePC(target int, _ *cache.Layer) (*bnset.Set, error) {
	if err := d.ensureSkeleton(); err != nil {
		return nil, err
	}
	return d.skeleton[target].Clone(), nil
}

func (d *Global) CandidateMB(target int, cacheLayer *cache.Layer) (*bnset.Set, error) {
	pc, err := d.CandidatePC(target, cacheLayer)
	if err != nil {
		return nil, err
	}
	return spouseMB(d.Config, cacheLayer, target, pc)
}

// RemovedEdges returns the d-separating-set records gathered while building
// the skeleton, forcing skeleton computation first if it hasn't run yet.
func (d *Global) RemovedEdges() ([]RemovedEdge, error) {
	if err := d.ensureSkeleton(); err != nil {
		return nil, err
	}
	return d.removedEdges, nil
}

func (d *Global) ensureSkeleton() error {
	d.once.Do(func() {
		d.skeleton, d.removedEdges, d.err = computeSkeleton(d.Config, d.checkBackward)
	})
	return d.err
}

type pairEdge struct{ x, y int }

// contiguousAssignment converts a BlockDistribute split into, for each
// worker, the list of edge indices (into whatever slice the caller is
// scanning this round) it owns.
func contiguousAssignment(total, numWorkers int) ([][]int, error) {
	blocks, err := coordinator.BlockDistribute(total, numWorkers)
	if err != nil {
		return nil, err
	}
	out := make([][]int, len(blocks))
	for w, b := range blocks {
		idxs := make([]int, b.Count)
		for i := 0; i < b.Count; i++ {
			idxs[i] = b.Start + i
		}
		out[w] = idxs
	}
	return out, nil
}

// binomial estimates C(n, k), used as a relative per-edge cost: testing a
// conditioning-set size of k against a neighbor set of size n tries roughly
// C(n, k) subsets.
func binomial(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	result := 1.0
	for i := 0; i < k; i++ {
		result *= float64(n-i) / float64(i+1)
	}
	return result
}

type edgeOutcome struct {
	remove bool
	pv     float64
	dsep   *bnset.Set
	err    error
}

// computeSkeleton runs the round-based all-pairs PC-Stable search and
// returns the final (uncorrected, but inherently symmetric) neighbor set for
// every variable, plus the d-separating-set record for every edge removed
// using a non-empty conditioning set (needed later to distinguish colliders
// from non-colliders when orienting).
//
// Each round is a bulk-synchronous step: cfg.NumWorkers goroutines test
// their assigned edges against the round's neighbor-set snapshot (no worker
// mutates neighbors until every worker has finished reading it), the
// per-worker "primaries whose neighbor set shrank" sets are merged with
// cfg.Collectives.UnionAll, the round's strongest removal per primary is
// found with coordinator.SegmentedArgmin for diagnostics, and the edges
// surviving into the next round are rebalanced across workers with
// coordinator.FixWeightedImbalance when cfg.Imbalance is exceeded.
func computeSkeleton(cfg Config, checkBackward bool) (map[int]*bnset.Set, []RemovedEdge, error) {
	numWorkers := cfg.NumWorkers
	if numWorkers <= 0 {
		numWorkers = 1
	}
	collectives := cfg.Collectives
	if collectives == nil {
		collectives = coordinator.Sequential{}
	}
	log := cfg.Log
	if log == nil {
		log = logger.Null{}
	}

	neighbors := make(map[int]*bnset.Set, cfg.N)
	for v := 0; v < cfg.N; v++ {
		neighbors[v] = cfg.allExcept(v)
	}

	var edges []pairEdge
	for x := 0; x < cfg.N; x++ {
		for y := x + 1; y < cfg.N; y++ {
			edges = append(edges, pairEdge{x, y})
			if !checkBackward {
				edges = append(edges, pairEdge{y, x})
			}
		}
	}

	maxSize := cfg.MaxConditioning
	if cfg.N-2 < maxSize {
		maxSize = cfg.N - 2
	}
	if maxSize < 0 {
		maxSize = 0
	}

	assignment, err := contiguousAssignment(len(edges), numWorkers)
	if err != nil {
		return nil, nil, err
	}

	var removed []RemovedEdge
	for s := 0; s <= maxSize && len(edges) > 0; s++ {
		outcomes := make([]edgeOutcome, len(edges))

		g := new(errgroup.Group)
		for _, idxs := range assignment {
			idxs := idxs
			g.Go(func() error {
				for _, i := range idxs {
					e := edges[i]
					remove, pv, dsep, cerr := checkEdgeStable(cfg, neighbors, e.x, e.y, s, checkBackward)
					outcomes[i] = edgeOutcome{remove: remove, pv: pv, dsep: dsep, err: cerr}
				}
				return nil
			})
		}
		_ = g.Wait()
		for _, o := range outcomes {
			if o.err != nil {
				return nil, nil, o.err
			}
		}

		changedSets := make([]*bnset.Set, len(assignment))
		removedThisRound := 0
		for w, idxs := range assignment {
			changed := bnset.New(cfg.N)
			for _, i := range idxs {
				if outcomes[i].remove {
					removedThisRound++
					_ = changed.Insert(edges[i].x)
					_ = changed.Insert(edges[i].y)
				}
			}
			changedSets[w] = changed
		}
		changedPrimaries, err := collectives.UnionAll(changedSets)
		if err != nil {
			return nil, nil, err
		}
		log.Debug("learn: round %d, %d of %d edges removed, %d primaries touched", s, removedThisRound, len(edges), changedPrimaries.Size())

		var roundPairs []coordinator.PrimaryPair
		var survivors []pairEdge
		for i, e := range edges {
			o := outcomes[i]
			if !o.remove {
				survivors = append(survivors, e)
				continue
			}
			_ = neighbors[e.x].Erase(e.y)
			_ = neighbors[e.y].Erase(e.x)
			if s > 0 {
				u, v := e.x, e.y
				if u > v {
					u, v = v, u
				}
				removed = append(removed, RemovedEdge{U: u, V: v, PValue: o.pv, DSep: o.dsep})
				roundPairs = append(roundPairs, coordinator.PrimaryPair{Primary: u, Secondary: v, PValue: o.pv})
			}
		}

		if len(roundPairs) > 0 {
			strongest := coordinator.SegmentedArgmin(roundPairs)
			log.Trace("learn: round %d, strongest removal for primary %d was secondary %d at p=%.4f",
				s, strongest[0].Primary, strongest[0].Secondary, strongest[0].PValue)
		}

		next := survivors[:0]
		for _, e := range survivors {
			if neighbors[e.x].Size() > s+1 || neighbors[e.y].Size() > s+1 {
				next = append(next, e)
			}
		}
		edges = next
		if len(edges) == 0 {
			break
		}

		baseline, err := contiguousAssignment(len(edges), numWorkers)
		if err != nil {
			return nil, nil, err
		}
		weighted := make([]coordinator.Weighted, len(edges))
		for i, e := range edges {
			cost := binomial(neighbors[e.x].Size(), s+1) + binomial(neighbors[e.y].Size(), s+1)
			weighted[i] = coordinator.Weighted{Index: i, Weight: cost}
		}
		if rebalanced, changed := coordinator.FixWeightedImbalance(weighted, baseline, cfg.Imbalance); changed {
			log.Info("learn: round %d, rebalancing %d edges across %d workers (imbalance threshold %.2f exceeded)", s, len(edges), numWorkers, cfg.Imbalance)
			assignment = rebalanced
		} else {
			assignment = baseline
		}
	}
	return neighbors, removed, nil
}

// checkEdgeStable tests whether x and y should be disconnected at
// conditioning-set size s, using a snapshot of their current neighbor sets
// (with the other endpoint removed). PC-Stable also falls back to y's
// neighbors when x's don't suffice; PC-Stable2 tests (x, y) and (y, x) as
// separate directed edges instead, so it never falls back. On removal, it
// also returns the p-value and witnessing conditioning set.
func checkEdgeStable(cfg Config, neighbors map[int]*bnset.Set, x, y, s int, checkBackward bool) (bool, float64, *bnset.Set, error) {
	xN := neighbors[x].Clone()
	_ = xN.Erase(y)
	if xN.Size() >= s {
		pv, dsep, err := cfg.Oracle.MaxPValueSubset(x, y, xN, s)
		if err != nil {
			return false, 0, nil, err
		}
		if cfg.Oracle.Indep(pv) {
			set, serr := bnset.FromSlice(cfg.N, dsep)
			if serr != nil {
				return false, 0, nil, serr
			}
			return true, pv, set, nil
		}
	}
	if !checkBackward {
		return false, 0, nil, nil
	}
	yN := neighbors[y].Clone()
	_ = yN.Erase(x)
	if yN.Size() >= s {
		pv, dsep, err := cfg.Oracle.MaxPValueSubset(x, y, yN, s)
		if err != nil {
			return false, 0, nil, err
		}
		if cfg.Oracle.Indep(pv) {
			set, serr := bnset.FromSlice(cfg.N, dsep)
			if serr != nil {
				return false, 0, nil, serr
			}
			return true, pv, set, nil
		}
	}
	return false, 0, nil, nil
}
