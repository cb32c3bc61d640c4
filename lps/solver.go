package lps

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/katalvlaran/lvpal/step"
)

// Algorithm is the bare scan of one solver. It returns the start and length
// (in codepoints) of the maximal palindrome it selected. It must not mutate
// text and must only touch tr through its methods (tr may be nil).
type Algorithm func(text []rune, tr *step.Tracer) (start, length int, err error)

// Solver is the call contract consumed by the benchmark harness, the HTTP
// layer and the CLI.
type Solver interface {
	// ID returns the stable algorithm identifier.
	ID() ID

	// Solve returns the longest palindromic substring of text. The Trace is
	// nil in silent mode; in traced mode it is non-nil and may be
	// unavailable (see step.Trace.Err) without affecting the Result.
	Solve(text string, opts ...Option) (Result, *step.Trace, error)
}

// SolverOption configures a Solver built by New.
type SolverOption func(*algorithmSolver)

// WithResultLine attaches the closing result event to the given line of the
// solver's pseudocode listing. Without it the result event has no line.
func WithResultLine(line int) SolverOption {
	return func(s *algorithmSolver) {
		if line > 0 {
			s.resultLine = line
		}
	}
}

// New adapts fn into a Solver registered under id.
func New(id ID, fn Algorithm, opts ...SolverOption) Solver {
	s := &algorithmSolver{id: id, fn: fn}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

type algorithmSolver struct {
	id         ID
	fn         Algorithm
	resultLine int
}

func (s *algorithmSolver) ID() ID { return s.id }

func (s *algorithmSolver) Solve(text string, opts ...Option) (Result, *step.Trace, error) {
	// 1. Validate before any computation.
	if !utf8.ValidString(text) {
		return Result{}, nil, fmt.Errorf("%s: %w", s.id, ErrInvalidInput)
	}

	// 2. Resolve options.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	runes := []rune(text)

	var tr *step.Tracer
	if o.Trace {
		tr = step.NewTracer(step.WithLimit(o.TraceLimit))
	}

	// 3. Run under the injected clock.
	begin := o.Clock.Now()
	start, length, err := s.call(runes, tr)
	elapsed := o.Clock.Now().Sub(begin)
	if err != nil {
		return Result{}, nil, err
	}

	// 4. The answer must describe a palindrome inside the text.
	if err = checkAnswer(runes, start, length); err != nil {
		return Result{}, nil, fmt.Errorf("%s: %w", s.id, err)
	}

	res := Result{
		Substring: string(runes[start : start+length]),
		Start:     start,
		End:       start + length - 1,
		Length:    length,
		Algorithm: s.id,
		Elapsed:   elapsed,
	}

	// 5. Close the sequence.
	if tr.Enabled() {
		tr.Emit(step.KindResult, s.resultLine,
			fmt.Sprintf("longest palindrome %q, length %d", res.Substring, res.Length),
			step.Span{Start: res.Start, End: res.End, Length: res.Length})
	}

	return res, tr.Finish(), nil
}

// call runs the algorithm and turns a panic into ErrAlgorithmFailure.
func (s *algorithmSolver) call(text []rune, tr *step.Tracer) (start, length int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s: %w: %v", s.id, ErrAlgorithmFailure, r)
		}
	}()

	start, length, err = s.fn(text, tr)
	if err != nil {
		if !errors.Is(err, ErrAlgorithmFailure) {
			err = fmt.Errorf("%w: %w", ErrAlgorithmFailure, err)
		}
		err = fmt.Errorf("%s: %w", s.id, err)
	}

	return start, length, err
}

// checkAnswer rejects answers that cannot be correct. Complexity: O(length).
func checkAnswer(text []rune, start, length int) error {
	n := len(text)
	switch {
	case n == 0 && (start != 0 || length != 0):
		return fmt.Errorf("%w: empty text answered with start=%d length=%d", ErrAlgorithmFailure, start, length)
	case n > 0 && length < 1:
		return fmt.Errorf("%w: non-empty text answered with length %d", ErrAlgorithmFailure, length)
	case start < 0 || length < 0 || start+length > n:
		return fmt.Errorf("%w: answer [%d,+%d) outside text of length %d", ErrAlgorithmFailure, start, length, n)
	case !IsPalindrome(text[start : start+length]):
		return fmt.Errorf("%w: answer [%d,+%d) is not a palindrome", ErrAlgorithmFailure, start, length)
	}

	return nil
}

// IsPalindrome reports whether s reads the same in both directions.
func IsPalindrome(s []rune) bool {
	for lo, hi := 0, len(s)-1; lo < hi; lo, hi = lo+1, hi-1 {
		if s[lo] != s[hi] {
			return false
		}
	}

	return true
}
