package benchmark

import (
	"context"
	"fmt"
	"runtime"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/katalvlaran/lvpal/lps"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Status is the outcome of one cell.
type Status string

const (
	StatusOK      Status = "ok"
	StatusSkipped Status = "skipped"
	StatusError   Status = "error"
)

// Cell is the measurement of one algorithm at one input length.
type Cell struct {
	Algorithm lps.ID `json:"algorithm" yaml:"algorithm"`
	Length    int    `json:"length" yaml:"length"`
	Status    Status `json:"status" yaml:"status"`

	// Elapsed and ElapsedMS hold the same duration; only ok cells set them.
	Elapsed   time.Duration `json:"-" yaml:"-"`
	ElapsedMS float64       `json:"elapsed_ms,omitempty" yaml:"elapsed_ms,omitempty"`

	// AllocBytes is the heap allocated during the solve.
	AllocBytes uint64 `json:"alloc_bytes,omitempty" yaml:"alloc_bytes,omitempty"`

	// Answer is the palindrome length found.
	Answer int `json:"answer,omitempty" yaml:"answer,omitempty"`

	Err string `json:"error,omitempty" yaml:"error,omitempty"`
}

// AllocKB returns AllocBytes in kilobytes.
func (c Cell) AllocKB() float64 { return float64(c.AllocBytes) / 1024 }

// Report is the matrix produced by Run. Cells are ordered by length, then by
// registry order.
type Report struct {
	RunID      string    `json:"run_id" yaml:"run_id"`
	Started    time.Time `json:"started" yaml:"started"`
	Lengths    []int     `json:"lengths" yaml:"lengths"`
	Algorithms []lps.ID  `json:"algorithms" yaml:"algorithms"`
	Cells      []Cell    `json:"cells" yaml:"cells"`
}

// Cell returns the cell for algorithm id at the i-th length.
func (r *Report) Cell(i int, id lps.ID) (Cell, bool) {
	if i < 0 || i >= len(r.Lengths) {
		return Cell{}, false
	}
	for j, a := range r.Algorithms {
		if a == id {
			return r.Cells[i*len(r.Algorithms)+j], true
		}
	}

	return Cell{}, false
}

// Count returns the number of cells with status s.
func (r *Report) Count(s Status) int {
	n := 0
	for _, c := range r.Cells {
		if c.Status == s {
			n++
		}
	}

	return n
}

// Run benchmarks every solver of reg at every configured length.
//
// The returned error is ErrInvalidConfig or the context error; solver
// failures are recorded in their cells instead.
func Run(ctx context.Context, reg *lps.Registry, opts ...Option) (*Report, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	if reg == nil {
		return nil, fmt.Errorf("%w: nil registry", ErrInvalidConfig)
	}
	solvers := reg.Solvers()
	if len(solvers) == 0 {
		return nil, fmt.Errorf("%w: empty registry", ErrInvalidConfig)
	}

	rep := &Report{
		RunID:      uuid.NewString(),
		Started:    o.Clock.Now(),
		Lengths:    append([]int(nil), o.Lengths...),
		Algorithms: reg.IDs(),
		Cells:      make([]Cell, len(o.Lengths)*len(solvers)),
	}
	log := o.Logger.With(zap.String("run_id", rep.RunID))
	log.Info("benchmark started",
		zap.Ints("lengths", rep.Lengths),
		zap.Int("algorithms", len(solvers)),
		zap.Int("parallelism", o.Parallelism),
		zap.Int64("seed", o.Seed),
	)

	texts := make([]string, len(o.Lengths))
	for i, n := range o.Lengths {
		texts[i] = Text(o.Seed, i, n, o.Alphabet)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Parallelism)
schedule:
	for i, n := range o.Lengths {
		for j, s := range solvers {
			if gctx.Err() != nil {
				break schedule
			}
			idx := i*len(solvers) + j
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				rep.Cells[idx] = measure(s, texts[i], n, o, log)

				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	log.Info("benchmark finished",
		zap.Int("ok", rep.Count(StatusOK)),
		zap.Int("skipped", rep.Count(StatusSkipped)),
		zap.Int("failed", rep.Count(StatusError)),
	)

	return rep, nil
}

// Compare runs every solver of reg once on text under policy. It returns
// lps.ErrInvalidInput for text that is not UTF-8, or the context error.
func Compare(ctx context.Context, reg *lps.Registry, text string, policy Policy, opts ...Option) (map[lps.ID]Cell, error) {
	if !utf8.ValidString(text) {
		return nil, fmt.Errorf("benchmark: %w", lps.ErrInvalidInput)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	o.Policy = policy
	if reg == nil {
		return nil, fmt.Errorf("%w: nil registry", ErrInvalidConfig)
	}

	n := utf8.RuneCountInString(text)
	out := make(map[lps.ID]Cell)
	for _, s := range reg.Solvers() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		out[s.ID()] = measure(s, text, n, o, o.Logger)
	}

	return out, nil
}

// measure runs s once on text, or records why it did not.
func measure(s lps.Solver, text string, n int, o Options, log *zap.Logger) (c Cell) {
	c = Cell{Algorithm: s.ID(), Length: n}
	fields := []zap.Field{zap.String("algorithm", string(s.ID())), zap.Int("length", n)}

	if !o.Policy.Allows(s.ID(), n) {
		c.Status = StatusSkipped
		log.Debug("cell skipped by policy", fields...)

		return c
	}

	defer func() {
		if r := recover(); r != nil {
			c = Cell{Algorithm: s.ID(), Length: n, Status: StatusError, Err: fmt.Sprintf("panic: %v", r)}
			log.Warn("solver panicked", append(fields, zap.Any("panic", r))...)
		}
	}()

	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)
	res, _, err := s.Solve(text, lps.WithClock(o.Clock))
	runtime.ReadMemStats(&after)

	if err != nil {
		c.Status = StatusError
		c.Err = err.Error()
		log.Warn("solver failed", append(fields, zap.Error(err))...)

		return c
	}

	c.Status = StatusOK
	c.Elapsed = res.Elapsed
	c.ElapsedMS = res.ElapsedMillis()
	c.AllocBytes = after.TotalAlloc - before.TotalAlloc
	c.Answer = res.Length
	log.Debug("cell measured", append(fields,
		zap.Duration("elapsed", c.Elapsed),
		zap.Uint64("alloc_bytes", c.AllocBytes),
	)...)

	return c
}
