package main

import (
	"github.com/katalvlaran/lvpal/algorithms"
	"github.com/katalvlaran/lvpal/benchmark"
	"github.com/spf13/cobra"
)

func newBenchCmd(a *app) *cobra.Command {
	var (
		lengths     []int
		parallelism int
		seed        int64
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark every algorithm across input sizes",
		Long: `Benchmark every algorithm on seeded random texts of each configured
length. Cells show time and heap allocation, SKIPPED when the skip policy
excludes the algorithm at that size, or ERROR when it failed.

Examples:
  lpsviz bench
  lpsviz bench --lengths 100,1000,10000 --parallelism 4
  LVPAL_BENCHMARK_SKIP_BRUTE_FORCE=500 lpsviz bench --format yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(a.format); err != nil {
				return err
			}
			cfg, logger, err := a.load()
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			opts := append(cfg.Benchmark.Options(), benchmark.WithLogger(logger))
			if cmd.Flags().Changed("lengths") {
				opts = append(opts, benchmark.WithLengths(lengths...))
			}
			if cmd.Flags().Changed("parallelism") {
				opts = append(opts, benchmark.WithParallelism(parallelism))
			}
			if cmd.Flags().Changed("seed") {
				opts = append(opts, benchmark.WithSeed(seed))
			}

			rep, err := benchmark.Run(cmd.Context(), algorithms.NewRegistry(), opts...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch a.format {
			case formatJSON:
				return writeJSON(out, rep)
			case formatYAML:
				return writeYAML(out, rep)
			}

			return rep.WriteTable(out)
		},
	}
	cmd.Flags().IntSliceVar(&lengths, "lengths", nil, "input lengths (overrides config)")
	cmd.Flags().IntVar(&parallelism, "parallelism", 1, "cells run at once (overrides config)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "text generator seed (overrides config)")

	return cmd
}
