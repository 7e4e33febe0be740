package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/asrivast28/ramble-go/bnet"
	"github.com/asrivast28/ramble-go/bnset"
	"github.com/asrivast28/ramble-go/cache"
	"github.com/asrivast28/ramble-go/ciquery"
	"github.com/asrivast28/ramble-go/coordinator"
	"github.com/asrivast28/ramble-go/counter"
	"github.com/asrivast28/ramble-go/internal/config"
	"github.com/asrivast28/ramble-go/learn"
	"github.com/asrivast28/ramble-go/orient"
	"github.com/asrivast28/ramble-go/reader"
)

// ErrNeedsTarget indicates no --target was given for a single-neighborhood
// run: either --discover-mb was set, or --learn-network was not.
var ErrNeedsTarget = errors.New("ramble: --target is required with --discover-mb or without --learn-network")

func run(cfg *config.Config) error {
	readOpts := []reader.Option{
		reader.WithSeparator(rune(cfg.Separator[0])),
		reader.WithColObs(cfg.ColObs),
		reader.WithVarNames(cfg.VarNames),
		reader.WithObsIndices(cfg.ObsIndices),
	}

	var ds *reader.Dataset
	var err error
	if cfg.ParallelRead > 0 {
		ds, err = reader.ReadStriped(cfg.File, cfg.NVars, cfg.NObs, cfg.ParallelRead, readOpts...)
	} else {
		ds, err = reader.Read(cfg.File, cfg.NVars, cfg.NObs, readOpts...)
	}
	if err != nil {
		return err
	}

	tbl, err := counter.NewTable(ds.Data, counter.WithNames(ds.Names))
	if err != nil {
		return err
	}

	oracle := ciquery.NewOracle(tbl, ciquery.WithAlpha(cfg.Alpha), ciquery.WithLogger(log))
	maxConditioning := cfg.MaxConditioning
	if maxConditioning < 0 {
		maxConditioning = cfg.NVars
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}
	collectives := coordinator.Collectives(coordinator.Sequential{})
	if workers > 1 {
		collectives = coordinator.Parallel{}
	}
	driverCfg := learn.Config{
		Oracle:          oracle,
		N:               cfg.NVars,
		MaxConditioning: maxConditioning,
		NumWorkers:      workers,
		Imbalance:       cfg.Imbalance,
		Collectives:     collectives,
		Log:             log,
	}

	driver, err := newDriver(cfg.Algorithm, driverCfg)
	if err != nil {
		return err
	}

	var cacheLayer *cache.Layer
	cacheLayer = cache.NewLayer(
		func(target int) (*bnset.Set, error) { return driver.CandidatePC(target, cacheLayer) },
		func(target int) (*bnset.Set, error) { return driver.CandidateMB(target, cacheLayer) },
	)

	if cfg.Target != "" {
		return runSingleTarget(cfg, tbl, cacheLayer)
	}
	if cfg.DiscoverMB {
		return ErrNeedsTarget
	}
	if !cfg.LearnNetwork {
		return ErrNeedsTarget
	}
	return runNetwork(cfg, tbl, oracle, driver, cacheLayer)
}

func newDriver(name string, cfg learn.Config) (learn.Driver, error) {
	switch name {
	case "gs":
		return learn.NewGS(cfg), nil
	case "iamb":
		return learn.NewIAMB(cfg), nil
	case "inter.iamb":
		return learn.NewInterIAMB(cfg), nil
	case "mmpc":
		return learn.NewMMPC(cfg), nil
	case "hiton":
		return learn.NewHITON(cfg), nil
	case "si.hiton.pc":
		return learn.NewSIHITON(cfg), nil
	case "getpc":
		return learn.NewGetPC(cfg), nil
	case "pc.stable":
		return learn.NewPCStable(cfg), nil
	case "pc.stable.2":
		return learn.NewPCStable2(cfg), nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownAlgorithm, name)
	}
}

// runSingleTarget computes one variable's PC or MB set and prints its
// member names, comma-separated, to stdout.
func runSingleTarget(cfg *config.Config, tbl *counter.Table, cacheLayer *cache.Layer) error {
	idx, ok := tbl.IndexOf(cfg.Target)
	if !ok {
		return fmt.Errorf("%w: target %q not in dataset", config.ErrMissingFlag, cfg.Target)
	}

	var set *bnset.Set
	var err error
	if cfg.DiscoverMB {
		set, err = cacheLayer.GetMB(idx)
	} else {
		set, err = cacheLayer.GetPC(idx)
	}
	if err != nil {
		return err
	}

	names := make([]string, 0, set.Size())
	for _, v := range set.Elements() {
		name, err := tbl.Name(v)
		if err != nil {
			return err
		}
		names = append(names, name)
	}
	fmt.Println(strings.Join(names, ","))
	return nil
}

// runNetwork learns the full skeleton (every variable's symmetry-corrected
// PC set), optionally orients it, and writes Graphviz DOT to cfg.Output.
func runNetwork(cfg *config.Config, tbl *counter.Table, oracle *ciquery.Oracle, driver learn.Driver, cacheLayer *cache.Layer) error {
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}
	targets := make([]int, cfg.NVars)
	for v := range targets {
		targets[v] = v
	}
	pool := coordinator.NewPool(workers)
	pool.Log = log
	results, err := pool.RunCorrectedPC(context.Background(), cacheLayer, targets)
	if err != nil {
		return err
	}

	g := bnet.NewGraph(cfg.NVars)
	for _, res := range results {
		if res.Err != nil {
			return res.Err
		}
		v := res.Target
		for _, u := range res.Set.Elements() {
			if u <= v {
				continue
			}
			if err := g.AddArc(v, u); err != nil && !errors.Is(err, bnet.ErrArcExists) {
				return err
			}
			if err := g.AddArc(u, v); err != nil && !errors.Is(err, bnet.ErrArcExists) {
				return err
			}
		}
	}

	if cfg.DirectEdges {
		test, err := colliderTest(cfg.NVars, oracle, driver, cacheLayer)
		if err != nil {
			return err
		}
		if err := orient.Orient(g, test, log); err != nil {
			return err
		}
	}

	dot := writeDOT(g, tbl.Names())
	if cfg.Output == "" {
		fmt.Print(dot)
		return nil
	}
	return os.WriteFile(cfg.Output, []byte(dot), 0o644)
}

// colliderTest picks the v-structure test matching driver's family: Global
// (PC-Stable/PC-Stable2) reuses the removed-edge d-separating sets already
// gathered while building the skeleton; every other family falls back to
// the MB-based local test.
func colliderTest(nVars int, oracle *ciquery.Oracle, driver learn.Driver, cacheLayer *cache.Layer) (orient.ColliderTest, error) {
	if g, ok := driver.(*learn.Global); ok {
		removed, err := g.RemovedEdges()
		if err != nil {
			return nil, err
		}
		return orient.GlobalColliderTest(oracle, removed), nil
	}
	mbOf := func(v int) (*bnset.Set, error) { return cacheLayer.GetMB(v) }
	return orient.LocalColliderTest(oracle, mbOf, nVars), nil
}
