package manacher

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvpal/lps"
	"github.com/katalvlaran/lvpal/step"
)

// Sentinels of the transformed string. Decoded codepoints are never negative.
const (
	LeftSentinel  rune = -1 // ^
	Filler        rune = -2 // #
	RightSentinel rune = -3 // $
)

// Pseudocode lines reported on events.
const (
	lineInit         = 1
	lineInitVars     = 2
	lineSelectCenter = 3
	lineMirror       = 4
	lineSeed         = 5
	lineProbe        = 6
	lineUpdateCenter = 7
	lineResult       = 8
)

// New returns the Manacher solver.
func New() lps.Solver {
	return lps.New(lps.Manacher, longest, lps.WithResultLine(lineResult))
}

// Solve runs the Manacher solver on text.
func Solve(text string, opts ...lps.Option) (lps.Result, *step.Trace, error) {
	return New().Solve(text, opts...)
}

// Transform builds T = ^ # s0 # ... # s(n-1) # $. len(T) == 2n+3.
func Transform(s []rune) []rune {
	t := make([]rune, 0, 2*len(s)+3)
	t = append(t, LeftSentinel, Filler)
	for _, r := range s {
		t = append(t, r, Filler)
	}

	return append(t, RightSentinel)
}

// Printable renders T with the sentinels shown as ^, # and $.
func Printable(t []rune) string {
	var b strings.Builder
	b.Grow(len(t))
	for _, r := range t {
		switch r {
		case LeftSentinel:
			b.WriteByte('^')
		case Filler:
			b.WriteByte('#')
		case RightSentinel:
			b.WriteByte('$')
		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}

// Radii returns the radius array P of T = Transform(s).
func Radii(s []rune) ([]int, error) {
	p, _, err := scan(Transform(s), nil)

	return p, err
}

// longest maps the widest radius in T back to the input. Returns
// (start, length).
//
// Complexity: O(n) time and memory.
func longest(s []rune, tr *step.Tracer) (int, int, error) {
	if tr.Enabled() {
		tr.Emit(step.KindInit, lineInit, "start Manacher", nil)
	}
	if len(s) == 0 {
		return 0, 0, nil
	}

	t := Transform(s)
	if tr.Enabled() {
		tr.Emit(step.KindTransform, lineInit, "transformed string", step.Transformed{String: Printable(t)})
		tr.Emit(step.KindInitVars, lineInitVars, "initialized P, C, R", nil)
	}

	p, center, err := scan(t, tr)
	if err != nil {
		return 0, 0, err
	}

	maxLen := p[center]
	start := (center - maxLen) / 2
	if tr.Enabled() {
		tr.Emit(step.KindUpdateMax, 0, fmt.Sprintf("final max length %d", maxLen),
			step.Span{Start: start, End: start + maxLen - 1, Length: maxLen})
	}

	return start, maxLen, nil
}

// scan fills P for t and returns it with the lowest index of its maximum.
// A probe that escapes T reports lps.ErrAlgorithmFailure.
//
// Complexity: O(len(t)) time; R only grows, so matched probes total at
// most len(t) and each center adds one mismatch.
func scan(t []rune, tr *step.Tracer) ([]int, int, error) {
	m := len(t)
	p := make([]int, m)
	c, r := 0, 0
	best := 0

	for i := 1; i < m-1; i++ {
		if tr.Enabled() {
			tr.Emit(step.KindSelectCenter, lineSelectCenter, fmt.Sprintf("process center %d (%s)", i, Printable(t[i:i+1])),
				step.Center{Index: i})
		}

		mirror := 2*c - i
		if tr.Enabled() {
			tr.Emit(step.KindCalcMirror, lineMirror, fmt.Sprintf("mirror index = %d", mirror),
				step.MirrorCalc{Index: i, MirrorIndex: mirror})
		}
		if i < r {
			p[i] = min(r-i, p[mirror])
			if tr.Enabled() {
				tr.Emit(step.KindMirror, lineSeed, fmt.Sprintf("seed P[%d] from mirror", i),
					step.MirrorSeed{Index: i, MirrorIndex: mirror, Value: p[i]})
			}
		}

		for {
			lo, hi := i-1-p[i], i+1+p[i]
			if lo < 0 || hi >= m {
				return nil, 0, fmt.Errorf("%w: probe [%d,%d] escaped the sentinels of T (len %d)",
					lps.ErrAlgorithmFailure, lo, hi, m)
			}
			if tr.Enabled() {
				tr.Emit(step.KindCompare, lineProbe, fmt.Sprintf("compare %s and %s", Printable(t[hi:hi+1]), Printable(t[lo:lo+1])), nil, hi, lo)
			}
			if t[lo] != t[hi] {
				if tr.Enabled() {
					tr.Emit(step.KindMismatch, lineProbe, "mismatch", nil, hi, lo)
				}

				break
			}
			if tr.Enabled() {
				tr.Emit(step.KindMatch, lineProbe, "match", nil, hi, lo)
			}
			p[i]++
		}

		if i+p[i] > r {
			c, r = i, i+p[i]
			if tr.Enabled() {
				tr.Emit(step.KindUpdateCenter, lineUpdateCenter, fmt.Sprintf("center -> %d, right -> %d", c, r),
					step.Boundary{Center: c, Right: r})
			}
		}
		if p[i] > p[best] {
			best = i
		}
	}

	return p, best, nil
}
