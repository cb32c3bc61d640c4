package benchmark_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/katalvlaran/lvpal/algorithms"
	"github.com/katalvlaran/lvpal/benchmark"
	"github.com/katalvlaran/lvpal/lps"
	"github.com/katalvlaran/lvpal/step"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// panicSolver bypasses the lps envelope so the harness sees the raw panic.
type panicSolver struct{}

func (panicSolver) ID() lps.ID { return "panicky" }

func (panicSolver) Solve(string, ...lps.Option) (lps.Result, *step.Trace, error) {
	panic("boom")
}

func clock() step.Clock {
	return step.NewManualClock(time.Unix(0, 0), time.Millisecond)
}

// TestRun_Matrix checks the shape, the skip policy and the ok cells.
func TestRun_Matrix(t *testing.T) {
	rep, err := benchmark.Run(context.Background(), algorithms.NewRegistry(),
		benchmark.WithLengths(10, 40),
		benchmark.WithPolicy(benchmark.Policy{lps.BruteForce: 20}),
		benchmark.WithClock(clock()),
	)
	require.NoError(t, err)

	assert.NotEmpty(t, rep.RunID)
	assert.Equal(t, []int{10, 40}, rep.Lengths)
	assert.Len(t, rep.Cells, 8)
	assert.Equal(t, 1, rep.Count(benchmark.StatusSkipped))
	assert.Equal(t, 7, rep.Count(benchmark.StatusOK))

	skipped, ok := rep.Cell(1, lps.BruteForce)
	require.True(t, ok)
	assert.Equal(t, benchmark.StatusSkipped, skipped.Status)
	assert.Zero(t, skipped.ElapsedMS)

	for i := range rep.Lengths {
		ref, _ := rep.Cell(i, lps.Manacher)
		for _, id := range rep.Algorithms {
			c, _ := rep.Cell(i, id)
			if c.Status != benchmark.StatusOK {
				continue
			}
			assert.Equal(t, 1.0, c.ElapsedMS, "%s at %d", id, c.Length)
			assert.Equal(t, ref.Answer, c.Answer, "%s at %d", id, c.Length)
		}
	}
}

// TestRun_ParallelMatchesSequential checks cell order and answers do not
// depend on parallelism.
func TestRun_ParallelMatchesSequential(t *testing.T) {
	reg := algorithms.NewRegistry()
	opts := []benchmark.Option{benchmark.WithLengths(5, 50, 120, 300), benchmark.WithSeed(9)}

	seq, err := benchmark.Run(context.Background(), reg, opts...)
	require.NoError(t, err)
	par, err := benchmark.Run(context.Background(), reg, append(opts, benchmark.WithParallelism(4))...)
	require.NoError(t, err)

	require.Len(t, par.Cells, len(seq.Cells))
	for i := range seq.Cells {
		assert.Equal(t, seq.Cells[i].Algorithm, par.Cells[i].Algorithm)
		assert.Equal(t, seq.Cells[i].Length, par.Cells[i].Length)
		assert.Equal(t, seq.Cells[i].Status, par.Cells[i].Status)
		assert.Equal(t, seq.Cells[i].Answer, par.Cells[i].Answer)
	}
}

// TestRun_PanicBecomesErrorCell checks the matrix continues past a panic.
func TestRun_PanicBecomesErrorCell(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	reg, err := lps.NewRegistry(panicSolver{}, algorithms.Solvers()[3])
	require.NoError(t, err)

	rep, err := benchmark.Run(context.Background(), reg,
		benchmark.WithLengths(10),
		benchmark.WithLogger(zap.New(core)),
	)
	require.NoError(t, err)

	c, ok := rep.Cell(0, "panicky")
	require.True(t, ok)
	assert.Equal(t, benchmark.StatusError, c.Status)
	assert.Contains(t, c.Err, "boom")

	m, _ := rep.Cell(0, lps.Manacher)
	assert.Equal(t, benchmark.StatusOK, m.Status)

	assert.Equal(t, 1, logs.FilterMessage("solver panicked").Len())
	started := logs.FilterMessage("benchmark started").All()
	require.Len(t, started, 1)
	assert.Equal(t, rep.RunID, started[0].ContextMap()["run_id"])
}

// TestRun_Cancelled returns the context error.
func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := benchmark.Run(ctx, algorithms.NewRegistry(), benchmark.WithLengths(10))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestRun_InvalidConfig covers the rejected configurations.
func TestRun_InvalidConfig(t *testing.T) {
	reg := algorithms.NewRegistry()
	tests := []struct {
		name string
		reg  *lps.Registry
		opts []benchmark.Option
	}{
		{"no lengths", reg, []benchmark.Option{benchmark.WithLengths()}},
		{"negative length", reg, []benchmark.Option{benchmark.WithLengths(-1)}},
		{"empty alphabet", reg, []benchmark.Option{benchmark.WithAlphabet("")}},
		{"nil registry", nil, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := benchmark.Run(context.Background(), tc.reg, tc.opts...)
			assert.ErrorIs(t, err, benchmark.ErrInvalidConfig)
		})
	}
}

// TestCompare checks the single-text contract.
func TestCompare(t *testing.T) {
	text := strings.Repeat("ab", 60)
	cells, err := benchmark.Compare(context.Background(), algorithms.NewRegistry(), text,
		benchmark.Policy{lps.BruteForce: 100, lps.DynamicProgramming: 100})
	require.NoError(t, err)
	require.Len(t, cells, 4)

	assert.Equal(t, benchmark.StatusSkipped, cells[lps.BruteForce].Status)
	assert.Equal(t, benchmark.StatusSkipped, cells[lps.DynamicProgramming].Status)
	assert.Equal(t, benchmark.StatusOK, cells[lps.ExpandCenter].Status)
	assert.Equal(t, 119, cells[lps.Manacher].Answer)
	assert.Equal(t, 120, cells[lps.Manacher].Length)
}

// TestCompare_InvalidInput rejects non-UTF-8 text up front.
func TestCompare_InvalidInput(t *testing.T) {
	_, err := benchmark.Compare(context.Background(), algorithms.NewRegistry(), "\xff", nil)
	assert.ErrorIs(t, err, lps.ErrInvalidInput)
}

// TestWriteTable checks the labels.
func TestWriteTable(t *testing.T) {
	rep, err := benchmark.Run(context.Background(), algorithms.NewRegistry(),
		benchmark.WithLengths(8),
		benchmark.WithPolicy(benchmark.Policy{lps.BruteForce: 4}),
		benchmark.WithClock(clock()),
	)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, rep.WriteTable(&buf))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "dynamic_programming")
	assert.True(t, strings.HasPrefix(lines[1], "8 "))
	assert.Contains(t, lines[1], "SKIPPED")
	assert.Contains(t, lines[1], "1.000 ms")
}
