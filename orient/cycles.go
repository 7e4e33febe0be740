package orient

import (
	"github.com/asrivast28/ramble-go/bnet"
	"github.com/asrivast28/ramble-go/internal/logger"
)

type arc struct{ u, v int }

// BreakDirectedCycles runs spec §4.F Phase 2: while the directed subgraph
// has a directed cycle, take the cycles bnet.DirectedView.Cycles reports
// (the back-edge cycles of one DFS, not necessarily every simple cycle),
// count how many of them each arc belongs to, and reverse the arc with the
// highest count (ties
// broken by (source, target) ascending, for reproducibility across worker
// counts per spec §5). log receives one line per reversed arc; nil means no
// logging. Grounded on original_source/detail/BayesianNetwork.hpp's
// EdgeCycleCounter + breakDirectedCycles, generalized from
// boost::tiernan_all_cycles to bnet.DirectedView.Cycles().
func BreakDirectedCycles(g *bnet.Graph, log logger.Logger) error {
	if log == nil {
		log = logger.Null{}
	}
	for {
		dv := g.Directed()
		cycles := dv.Cycles()
		if len(cycles) == 0 {
			return nil
		}

		counts := make(map[arc]int)
		for _, cyc := range cycles {
			for i := 0; i < len(cyc)-1; i++ {
				counts[arc{cyc[i], cyc[i+1]}]++
			}
		}

		best := arc{}
		bestCount := -1
		for a, c := range counts {
			if c > bestCount || (c == bestCount && (a.u < best.u || (a.u == best.u && a.v < best.v))) {
				best = a
				bestCount = c
			}
		}

		log.Info("orient: breaking cycle by reversing %d->%d (member of %d cycles)", best.u, best.v, bestCount)

		if err := g.RemoveArc(best.u, best.v); err != nil {
			return err
		}
		if err := g.AddArc(best.v, best.u); err != nil {
			return err
		}
	}
}
