// Package orient's entry point: Orient runs the three-phase pipeline over
// an undirected (or partially directed) skeleton.
package orient

import (
	"github.com/asrivast28/ramble-go/bnet"
	"github.com/asrivast28/ramble-go/internal/logger"
)

// Orient runs spec §4.F's full pipeline against g in place: Phase 1 detects
// and commits v-structures using test, Phase 2 breaks any directed cycles
// those orientations created, and Phase 3 propagates the remaining
// orientations via Meek's rules until the graph stops changing. log
// receives phase-transition and cycle-break messages; nil means no logging.
func Orient(g *bnet.Graph, test ColliderTest, log logger.Logger) error {
	if log == nil {
		log = logger.Null{}
	}
	log.Info("orient: phase 1, detecting v-structures")
	if err := OrientVStructures(g, test); err != nil {
		return err
	}
	log.Info("orient: phase 2, breaking directed cycles")
	if err := BreakDirectedCycles(g, log); err != nil {
		return err
	}
	log.Info("orient: phase 3, applying Meek's rules")
	return ApplyMeekRules(g)
}
