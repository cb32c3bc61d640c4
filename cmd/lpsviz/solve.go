package main

import (
	"fmt"

	"github.com/katalvlaran/lvpal/algorithms"
	"github.com/katalvlaran/lvpal/lps"
	"github.com/spf13/cobra"
)

const allAlgorithms = "all"

func newSolveCmd(a *app) *cobra.Command {
	var algorithm string

	cmd := &cobra.Command{
		Use:   "solve [text]",
		Short: "Find the longest palindromic substring of a text",
		Long: `Find the longest palindromic substring of a text with one algorithm,
or with all of them to compare answers and timings.

Examples:
  lpsviz solve babad
  lpsviz solve --algorithm all --format json racecar
  echo -n forgeeksskeegfor | lpsviz solve -`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(a.format); err != nil {
				return err
			}
			text, err := a.readText(args)
			if err != nil {
				return err
			}

			reg := algorithms.NewRegistry()
			var results []lps.Result
			if algorithm == allAlgorithms {
				results, err = algorithms.SolveAll(reg, text)
				if err != nil {
					return err
				}
			} else {
				solver, err := reg.Lookup(lps.ID(algorithm))
				if err != nil {
					return err
				}
				res, _, err := solver.Solve(text)
				if err != nil {
					return err
				}
				results = []lps.Result{res}
			}

			return writeResults(cmd.OutOrStdout(), a.format, results)
		},
	}
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", string(lps.Manacher),
		fmt.Sprintf("algorithm id, or %q", allAlgorithms))

	return cmd
}

func newTraceCmd(a *app) *cobra.Command {
	var (
		algorithm string
		limit     int
	)

	cmd := &cobra.Command{
		Use:   "trace [text]",
		Short: "Print the step events of one traced run",
		Long: `Print the step events an algorithm emits while solving a text.
The JSON output is the array served by POST /visualize.

Examples:
  lpsviz trace --algorithm expand_center aba
  lpsviz trace --algorithm manacher --format json abba`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(a.format); err != nil {
				return err
			}
			text, err := a.readText(args)
			if err != nil {
				return err
			}

			solver, err := algorithms.NewRegistry().Lookup(lps.ID(algorithm))
			if err != nil {
				return err
			}
			_, trace, err := solver.Solve(text, lps.WithTraceLimit(limit))
			if err != nil {
				return err
			}
			if err := trace.Err(); err != nil {
				return err
			}

			return writeTrace(cmd.OutOrStdout(), a.format, trace)
		},
	}
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", string(lps.Manacher), "algorithm id")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of events (0 = unlimited)")

	return cmd
}
