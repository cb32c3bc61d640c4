package expand

import (
	"fmt"

	"github.com/katalvlaran/lvpal/lps"
	"github.com/katalvlaran/lvpal/step"
)

// New returns the expand-around-center solver.
func New() lps.Solver {
	return lps.New(lps.ExpandCenter, longest, lps.WithResultLine(lineResult))
}

// Solve runs the expand-around-center solver on text.
func Solve(text string, opts ...lps.Option) (lps.Result, *step.Trace, error) {
	return New().Solve(text, opts...)
}

// Pseudocode lines reported on events.
const (
	lineInit       = 1
	lineOddCenter  = 3
	lineEvenCenter = 4
	lineCompare    = 6
	lineUpdate     = 8
	lineExpand     = 9
	lineResult     = 10
)

// best tracks the running answer.
type best struct {
	start, length int
}

// longest expands around all 2n-1 centers, odd center i before even center
// (i, i+1), and keeps the first longest palindrome. Returns (start, length).
//
// Complexity:
//
//	Time   = O(n²) worst case (uniform text), O(n) when no center grows
//	Memory = O(1) silent, O(n²) events traced
func longest(s []rune, tr *step.Tracer) (int, int, error) {
	n := len(s)
	if tr.Enabled() {
		tr.Emit(step.KindInit, lineInit, "start expand around center", nil)
	}
	if n == 0 {
		return 0, 0, nil
	}

	var b best
	for i := 0; i < n; i++ {
		// odd center
		if tr.Enabled() {
			tr.Emit(step.KindCenter, lineOddCenter, fmt.Sprintf("expand around center %d", i), step.Center{Index: i})
		}
		b.grow(s, i, i, tr)

		// even center
		if i+1 < n {
			if tr.Enabled() {
				tr.Emit(step.KindCenter, lineEvenCenter, fmt.Sprintf("expand around center %d, %d", i, i+1), nil, i, i+1)
			}
			b.grow(s, i, i+1, tr)
		}
	}

	return b.start, b.length, nil
}

// grow widens [lo, hi] while it stays a palindrome inside s, raising b on
// every strictly longer match.
//
// Complexity: O(min(lo+1, n-hi)) time, O(1) memory.
func (b *best) grow(s []rune, lo, hi int, tr *step.Tracer) {
	n := len(s)
	for lo >= 0 && hi < n {
		if tr.Enabled() {
			tr.Emit(step.KindCompare, lineCompare, fmt.Sprintf("compare s[%d] and s[%d]", lo, hi), nil, lo, hi)
		}
		if s[lo] != s[hi] {
			if tr.Enabled() {
				tr.Emit(step.KindMismatch, lineCompare, "mismatch", nil, lo, hi)
			}

			return
		}
		if tr.Enabled() {
			tr.Emit(step.KindMatch, lineCompare, "match", nil, lo, hi)
		}

		if l := hi - lo + 1; l > b.length {
			b.start, b.length = lo, l
			if tr.Enabled() {
				tr.Emit(step.KindUpdateMax, lineUpdate, fmt.Sprintf("new max length %d", l),
					step.Span{Start: lo, End: hi, Length: l})
			}
		}

		lo--
		hi++
		if tr.Enabled() && lo >= 0 && hi < n {
			tr.Emit(step.KindExpand, lineExpand, "expand outward", nil, lo, hi)
		}
	}
}
