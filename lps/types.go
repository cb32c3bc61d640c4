package lps

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/lvpal/step"
)

// Sentinel errors shared by every solver.
var (
	// ErrInvalidInput indicates the text is not a valid character sequence.
	ErrInvalidInput = errors.New("lps: input is not valid UTF-8 text")

	// ErrUnknownAlgorithm indicates a registry lookup for an unregistered id.
	ErrUnknownAlgorithm = errors.New("lps: unknown algorithm")

	// ErrDuplicateAlgorithm indicates a second registration under the same id.
	ErrDuplicateAlgorithm = errors.New("lps: algorithm already registered")

	// ErrAlgorithmFailure indicates an internal invariant violation.
	ErrAlgorithmFailure = errors.New("lps: algorithm failure")
)

// ID names an algorithm. The values are part of the external contract.
type ID string

const (
	BruteForce         ID = "brute_force"
	DynamicProgramming ID = "dynamic_programming"
	ExpandCenter       ID = "expand_center"
	Manacher           ID = "manacher"
)

// Result is the answer of one solver run.
//
// Start and End are inclusive codepoint indices; Length == End-Start+1.
// The empty input yields Start=0, End=-1, Length=0 and an empty Substring.
type Result struct {
	Substring string
	Start     int
	End       int
	Length    int
	Algorithm ID
	Elapsed   time.Duration
}

// ElapsedMillis returns Elapsed in fractional milliseconds.
func (r Result) ElapsedMillis() float64 {
	return float64(r.Elapsed) / float64(time.Millisecond)
}

// Same reports whether r and o describe the same answer, ignoring timing.
func (r Result) Same(o Result) bool {
	return r.Substring == o.Substring && r.Start == o.Start && r.End == o.End &&
		r.Length == o.Length && r.Algorithm == o.Algorithm
}

type resultJSON struct {
	Substring string  `json:"substring"`
	Start     int     `json:"start_index"`
	End       int     `json:"end_index"`
	Length    int     `json:"length"`
	Algorithm ID      `json:"algorithm"`
	ElapsedMS float64 `json:"execution_time_ms"`
}

// MarshalJSON renders the result with the field names used by the API.
func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(resultJSON{
		Substring: r.Substring,
		Start:     r.Start,
		End:       r.End,
		Length:    r.Length,
		Algorithm: r.Algorithm,
		ElapsedMS: r.ElapsedMillis(),
	})
}

// UnmarshalJSON is the inverse of MarshalJSON; used by API clients.
// Elapsed is rounded back to the nearest nanosecond.
func (r *Result) UnmarshalJSON(data []byte) error {
	var w resultJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("lps: decode result: %w", err)
	}
	*r = Result{
		Substring: w.Substring,
		Start:     w.Start,
		End:       w.End,
		Length:    w.Length,
		Algorithm: w.Algorithm,
		Elapsed:   time.Duration(math.Round(w.ElapsedMS * float64(time.Millisecond))),
	}

	return nil
}

// Option configures a single Solve call.
type Option func(*Options)

// Options holds the resolved settings of a Solve call.
type Options struct {
	// Trace selects the traced mode.
	Trace bool

	// TraceLimit caps the number of events; 0 means unlimited.
	TraceLimit int

	// Clock times the run. Defaults to step.SystemClock.
	Clock step.Clock
}

// DefaultOptions returns silent mode with the system clock.
func DefaultOptions() Options {
	return Options{Clock: step.SystemClock{}}
}

// WithTrace enables event recording.
func WithTrace() Option {
	return func(o *Options) { o.Trace = true }
}

// WithTraceLimit enables event recording with a cap on the number of
// events. A run that would exceed it returns an unavailable trace.
func WithTraceLimit(n int) Option {
	return func(o *Options) {
		o.Trace = true
		if n > 0 {
			o.TraceLimit = n
		}
	}
}

// WithClock injects the time source. A nil clock is ignored.
func WithClock(c step.Clock) Option {
	return func(o *Options) {
		if c != nil {
			o.Clock = c
		}
	}
}
