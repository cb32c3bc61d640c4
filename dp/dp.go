package dp

import (
	"fmt"

	"github.com/katalvlaran/lvpal/lps"
	"github.com/katalvlaran/lvpal/step"
)

// New returns the dynamic programming solver.
func New() lps.Solver {
	return lps.New(lps.DynamicProgramming, longest, lps.WithResultLine(lineResult))
}

// Solve runs the dynamic programming solver on text.
func Solve(text string, opts ...lps.Option) (lps.Result, *step.Trace, error) {
	return New().Solve(text, opts...)
}

// TableBytes returns the size of the dp table for an input of n codepoints.
func TableBytes(n int) int {
	return n * n
}

// Pseudocode lines reported on events.
const (
	lineInit    = 1
	lineBase    = 2
	lineLoopLen = 3
	lineSelect  = 4
	lineCompare = 6
	lineSet     = 7
	lineUpdate  = 8
	lineResult  = 9
)

// table is the n×n palindrome table stored row-major.
type table struct {
	n     int
	cells []bool
}

func newTable(n int) *table {
	return &table{n: n, cells: make([]bool, n*n)}
}

func (t *table) at(i, j int) bool { return t.cells[i*t.n+j] }

// set writes dp[i][j] and reports the write to tr at pseudocode line.
func (t *table) set(i, j int, v bool, tr *step.Tracer, line int, desc string) {
	t.cells[i*t.n+j] = v
	if tr.Enabled() {
		tr.Emit(step.KindDPUpdate, line, desc, step.Cell{Row: i, Col: j, Value: v})
	}
}

// longest fills the upper triangle of dp by increasing substring length:
// dp[i][j] holds when s[i] == s[j] and dp[i+1][j-1] holds. The first cell of
// the greatest length wins. Returns (start, length).
//
// Complexity:
//
//	Time   = O(n²)
//	Memory = O(n²) for the table (see TableBytes), O(n²) events traced
func longest(s []rune, tr *step.Tracer) (int, int, error) {
	n := len(s)
	if tr.Enabled() {
		tr.Emit(step.KindInit, lineInit, "start dynamic programming", nil)
	}
	if n == 0 {
		return 0, 0, nil
	}

	dp := newTable(n)
	start, maxLen := 0, 1

	// Length 1
	for i := 0; i < n; i++ {
		dp.set(i, i, true, tr, lineBase, fmt.Sprintf("base case: s[%d] is a palindrome", i))
	}

	// Length 2
	for i := 0; i+1 < n; i++ {
		if tr.Enabled() {
			tr.Emit(step.KindCompare, lineCompare, fmt.Sprintf("check s[%d] == s[%d]", i, i+1), nil, i, i+1)
		}
		if s[i] != s[i+1] {
			if tr.Enabled() {
				tr.Emit(step.KindMismatch, lineCompare, "mismatch", nil, i, i+1)
			}
			dp.set(i, i+1, false, tr, lineSet, "set dp cell")

			continue
		}
		if tr.Enabled() {
			tr.Emit(step.KindMatch, lineCompare, "match", nil, i, i+1)
		}
		dp.set(i, i+1, true, tr, lineSet, "set dp cell")
		if maxLen < 2 {
			start, maxLen = i, 2
			if tr.Enabled() {
				tr.Emit(step.KindUpdateMax, lineUpdate, "new max length 2", step.Span{Start: i, End: i + 1, Length: 2})
			}
		}
	}

	// Length 3..n
	for length := 3; length <= n; length++ {
		if tr.Enabled() {
			tr.Emit(step.KindLoopLen, lineLoopLen, fmt.Sprintf("check length %d", length), nil)
		}
		for i := 0; i+length <= n; i++ {
			j := i + length - 1
			if tr.Enabled() {
				tr.Emit(step.KindSelect, lineSelect, fmt.Sprintf("check substring s[%d:%d]", i, j+1), nil, i, j)
				tr.Emit(step.KindCompare, lineCompare, fmt.Sprintf("check s[%d] == s[%d]", i, j), nil, i, j)
			}
			if s[i] != s[j] {
				if tr.Enabled() {
					tr.Emit(step.KindMismatch, lineCompare, "ends differ", nil, i, j)
				}
				dp.set(i, j, false, tr, lineSet, "set dp cell")

				continue
			}
			if tr.Enabled() {
				tr.Emit(step.KindMatch, lineCompare, "ends match", nil, i, j)
			}

			inner := dp.at(i+1, j-1)
			if tr.Enabled() {
				desc := "inner substring is a palindrome"
				if !inner {
					desc = "inner substring is not a palindrome"
				}
				tr.Emit(step.KindDPCheck, lineCompare, desc, step.Cell{Row: i + 1, Col: j - 1, Value: inner})
			}
			dp.set(i, j, inner, tr, lineSet, "set dp cell")
			if inner && length > maxLen {
				start, maxLen = i, length
				if tr.Enabled() {
					tr.Emit(step.KindUpdateMax, lineUpdate, fmt.Sprintf("new max length %d", maxLen),
						step.Span{Start: i, End: j, Length: maxLen})
				}
			}
		}
	}

	return start, maxLen, nil
}
