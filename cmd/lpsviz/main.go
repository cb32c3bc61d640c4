// Package main implements lpsviz, the command-line front end of the
// palindrome solvers: it serves the visualizer API, solves and traces single
// texts, and runs the benchmark matrix.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/lvpal/internal/config"
	"github.com/katalvlaran/lvpal/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// version information
var version = "dev"

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

// app carries the state shared by the subcommands.
type app struct {
	configPath string
	format     string
	in         io.Reader
	out        io.Writer
}

func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	a := &app{in: in, out: out}

	root := &cobra.Command{
		Use:   "lpsviz",
		Short: "Longest palindromic substring solvers, traces and benchmarks",
		Long: `lpsviz runs four longest-palindromic-substring algorithms:
brute_force, dynamic_programming, expand_center and manacher.

It can serve the visualizer HTTP API, solve or trace a single text, and
benchmark the algorithms across input sizes.`,
		Version:      version,
		SilenceUsage: true,
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(out)

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a YAML config file")
	root.PersistentFlags().StringVar(&a.format, "format", formatTable, "output format: table, json or yaml")

	root.AddCommand(
		newServeCmd(a),
		newSolveCmd(a),
		newTraceCmd(a),
		newBenchCmd(a),
	)

	return root
}

// load reads the configuration and builds the logger.
func (a *app) load() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return nil, nil, err
	}
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build logger: %w", err)
	}

	return cfg, logger, nil
}

// readText returns args[0], or stdin when it is absent or "-".
func (a *app) readText(args []string) (string, error) {
	if len(args) > 0 && args[0] != "-" {
		return args[0], nil
	}
	content, err := io.ReadAll(a.in)
	if err != nil {
		return "", fmt.Errorf("failed to read from stdin: %w", err)
	}

	return trimNewline(string(content)), nil
}

func trimNewline(s string) string {
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}

	return s
}
