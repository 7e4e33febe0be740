package coordinator

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/asrivast28/ramble-go/bnset"
)

// Collectives is the cross-worker synchronization surface spec §5 requires:
// a set-union (used to broadcast which primaries changed during a grow
// round) and a set-intersection (used by PC-Stable's "kept neighborhood is
// what every worker agrees to keep" shrink phase). A single-process run
// uses Sequential, which needs no synchronization at all; Parallel reduces
// concurrently and is safe to call with sets computed by goroutines running
// under the same pool.
type Collectives interface {
	// UnionAll returns the union of every set in sets.
	UnionAll(sets []*bnset.Set) (*bnset.Set, error)
	// IntersectAll returns the intersection of every set in sets.
	IntersectAll(sets []*bnset.Set) (*bnset.Set, error)
}

// Sequential is the degenerate P=1 Collectives: there is only ever one
// worker's view, so both collectives are identity operations over a
// single-element input.
type Sequential struct{}

func (Sequential) UnionAll(sets []*bnset.Set) (*bnset.Set, error) {
	return reduceSets(sets, (*bnset.Set).Union)
}

func (Sequential) IntersectAll(sets []*bnset.Set) (*bnset.Set, error) {
	return reduceSets(sets, (*bnset.Set).Intersection)
}

// Parallel is a goroutine-based Collectives: sets are split into
// min(runtime.GOMAXPROCS(0), len(sets)) contiguous chunks, each chunk is
// folded by its own goroutine, and the per-chunk partials are then folded
// sequentially. Correct for any number of workers, including 1.
type Parallel struct{}

func (Parallel) UnionAll(sets []*bnset.Set) (*bnset.Set, error) {
	return reduceSetsConcurrently(sets, (*bnset.Set).Union)
}

func (Parallel) IntersectAll(sets []*bnset.Set) (*bnset.Set, error) {
	return reduceSetsConcurrently(sets, (*bnset.Set).Intersection)
}

func reduceSets(sets []*bnset.Set, op func(*bnset.Set, *bnset.Set) (*bnset.Set, error)) (*bnset.Set, error) {
	if len(sets) == 0 {
		return bnset.New(0), nil
	}
	acc := sets[0].Clone()
	for _, s := range sets[1:] {
		next, err := op(acc, s)
		if err != nil {
			return nil, err
		}
		acc = next
	}
	return acc, nil
}

// reduceSetsConcurrently folds sets in chunks computed concurrently, then
// combines the per-chunk partials sequentially (the partials slice is always
// small: one entry per goroutine, not one per input set).
func reduceSetsConcurrently(sets []*bnset.Set, op func(*bnset.Set, *bnset.Set) (*bnset.Set, error)) (*bnset.Set, error) {
	if len(sets) == 0 {
		return bnset.New(0), nil
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > len(sets) {
		workers = len(sets)
	}
	if workers <= 1 {
		return reduceSets(sets, op)
	}

	blocks, err := BlockDistribute(len(sets), workers)
	if err != nil {
		return nil, err
	}

	partials := make([]*bnset.Set, workers)
	g, _ := errgroup.WithContext(context.Background())
	for i, b := range blocks {
		i, b := i, b
		if b.Count == 0 {
			continue
		}
		g.Go(func() error {
			partial, err := reduceSets(sets[b.Start:b.Start+b.Count], op)
			if err != nil {
				return err
			}
			partials[i] = partial
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	nonEmpty := partials[:0]
	for _, p := range partials {
		if p != nil {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return reduceSets(nonEmpty, op)
}
