package bruteforce

import (
	"fmt"

	"github.com/katalvlaran/lvpal/lps"
	"github.com/katalvlaran/lvpal/step"
)

// New returns the brute force solver.
func New() lps.Solver {
	return lps.New(lps.BruteForce, longest, lps.WithResultLine(lineResult))
}

// Solve runs the brute force solver on text.
func Solve(text string, opts ...lps.Option) (lps.Result, *step.Trace, error) {
	return New().Solve(text, opts...)
}

// Pseudocode lines reported on events.
const (
	lineInit   = 1
	lineLoopI  = 2
	lineSelect = 3
	lineCheck  = 4
	lineFound  = 5
	lineUpdate = 6
	lineResult = 7
)

// longest scans every (i, j) pair and keeps the first longest palindrome.
// Returns (start, length); the empty text yields (0, 0).
//
// Complexity:
//
//	Time   = O(n³); n² substrings, each checked in O(n)
//	Memory = O(1) silent, O(n³) events traced
func longest(s []rune, tr *step.Tracer) (int, int, error) {
	n := len(s)
	if tr.Enabled() {
		tr.Emit(step.KindInit, lineInit, "start brute force", nil)
	}
	if n == 0 {
		return 0, 0, nil
	}

	start, maxLen := 0, 0
	for i := 0; i < n; i++ {
		if tr.Enabled() {
			tr.Emit(step.KindLoopI, lineLoopI, fmt.Sprintf("outer loop i=%d", i), nil)
		}
		for j := i; j < n; j++ {
			if tr.Enabled() {
				tr.Emit(step.KindSelect, lineSelect, fmt.Sprintf("check substring s[%d:%d]", i, j+1), nil, i, j)
				tr.Emit(step.KindCheck, lineCheck, "is it a palindrome?", nil)
			}
			if !isPalindrome(s, i, j, tr) {
				continue
			}

			length := j - i + 1
			if length > maxLen {
				start, maxLen = i, length
				if tr.Enabled() {
					tr.Emit(step.KindUpdateMax, lineUpdate, fmt.Sprintf("new max length %d", maxLen),
						step.Span{Start: i, End: j, Length: maxLen})
				}
			} else if tr.Enabled() {
				tr.Emit(step.KindFound, lineFound, "palindrome found, not longer than max", nil, i, j)
			}
		}
	}

	return start, maxLen, nil
}

// isPalindrome compares s[lo..hi] from both ends inward and stops at the
// first mismatch.
//
// Complexity: O(hi-lo) time, O(1) memory.
func isPalindrome(s []rune, lo, hi int, tr *step.Tracer) bool {
	for lo < hi {
		if tr.Enabled() {
			tr.Emit(step.KindCompare, lineCheck, fmt.Sprintf("compare s[%d] and s[%d]", lo, hi), nil, lo, hi)
		}
		if s[lo] != s[hi] {
			if tr.Enabled() {
				tr.Emit(step.KindMismatch, lineCheck, "mismatch", nil, lo, hi)
			}

			return false
		}
		if tr.Enabled() {
			tr.Emit(step.KindMatch, lineCheck, "match", nil, lo, hi)
		}
		lo++
		hi--
	}

	return true
}
