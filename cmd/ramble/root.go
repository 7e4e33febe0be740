package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/asrivast28/ramble-go/internal/config"
	"github.com/asrivast28/ramble-go/internal/logger"
)

var log logger.Logger = logger.Null{}

func newRootCmd() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:          "ramble",
		Short:        "Constraint-based Bayesian network structure learning",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags(), configFile)
			if err != nil {
				return err
			}
			log = logger.New(logger.ParseLevel(cfg.LogLevel), os.Stderr)
			return run(cfg)
		},
	}

	flags := cmd.Flags()
	flags.Int("nvars", 0, "Variable count (required)")
	flags.Int("nobs", 0, "Observation count (required)")
	flags.String("file", "", "Dataset path (required, must exist)")
	flags.String("algorithm", "", fmt.Sprintf("One of %v", config.Algorithms))
	flags.Float64("alpha", 0.05, "Independence threshold")
	flags.String("target", "", "Compute only this variable's neighborhood")
	flags.Bool("discover-mb", false, "Output the target's Markov blanket instead of its PC set")
	flags.Bool("learn-network", false, "Learn the full network instead of a single neighborhood")
	flags.Bool("direct-edges", false, "Orient the learned skeleton")
	flags.String("output", "", "Graphviz DOT output path")
	flags.Bool("col-obs", false, "Dataset file has one variable per row, one observation per column")
	flags.Bool("var-names", false, "Dataset file's first line carries variable names")
	flags.Bool("obs-indices", false, "Dataset file's data lines are prefixed with a row index")
	flags.String("separator", "\t", "Dataset field separator")
	flags.Int("parallel-read", 0, "Read the dataset file with this many striped workers (0: sequential)")
	flags.Float64("imbalance", 0.2, "Threshold for coordinator work redistribution")
	flags.Int("max-conditioning", -1, "Cap on conditioning-set size (-1: unbounded)")
	flags.String("log-level", "info", "off/error/info/debug/trace")
	flags.Int("workers", 1, "Goroutine worker count for network building and PC-Stable rounds")
	flags.StringVar(&configFile, "config", "", "Optional config file (yaml/toml/json)")

	return cmd
}
