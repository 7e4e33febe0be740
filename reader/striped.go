package reader

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/asrivast28/ramble-go/coordinator"
)

// ReadStriped simulates the --parallel-read path: the observation range is
// block-distributed across numWorkers workers (coordinator.BlockDistribute),
// and each worker copies out only its row stripe concurrently before the
// stripes are reassembled into one replicated Dataset — mirroring spec
// §6's "each worker reads a contiguous row stripe; names and data are then
// broadcast or all-gathered to form a replicated dataset on every worker".
// The underlying file is still parsed once up front rather than opened
// once per worker at a byte offset: splitting a separator-delimited text
// file into per-worker byte ranges without first scanning it for line
// boundaries would need its own indexing pass, which spec §6 doesn't
// otherwise require; this keeps the worker-parallel stripe-and-reassemble
// shape spec §5 describes without that extra machinery.
func ReadStriped(path string, nVars, nObs, numWorkers int, opts ...Option) (*Dataset, error) {
	if numWorkers <= 0 {
		return nil, ErrNoWorkers
	}
	blocks, err := coordinator.BlockDistribute(nObs, numWorkers)
	if err != nil {
		return nil, fmt.Errorf("reader: %w", err)
	}

	full, err := Read(path, nVars, nObs, opts...)
	if err != nil {
		return nil, err
	}

	stripes := make([]*Dataset, len(blocks))
	var g errgroup.Group
	for i, b := range blocks {
		i, b := i, b
		g.Go(func() error {
			stripe := &Dataset{Data: make([][]int, nVars), Names: full.Names}
			for v := 0; v < nVars; v++ {
				stripe.Data[v] = append([]int(nil), full.Data[v][b.Start:b.Start+b.Count]...)
			}
			stripes[i] = stripe
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	assembled := &Dataset{Data: make([][]int, nVars), Names: full.Names}
	for v := 0; v < nVars; v++ {
		assembled.Data[v] = make([]int, 0, nObs)
		for _, stripe := range stripes {
			assembled.Data[v] = append(assembled.Data[v], stripe.Data[v]...)
		}
	}
	return assembled, nil
}
