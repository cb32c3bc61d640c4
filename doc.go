// Package lvpal finds the longest palindromic substring of a text with four
// algorithms of increasing sophistication, and records what each one does
// step by step so a visualizer can replay it.
//
// 🚀 What is in lvpal?
//
//   - Solvers: brute force O(n³), dynamic programming O(n²), expand around
//     center O(n²), Manacher O(n)
//   - Traces: every solver can emit an ordered, validated sequence of step
//     events (compare, match, dp_update, mirror, ...) without changing its
//     answer
//   - Benchmarks: a seeded size matrix with time, heap allocation and a skip
//     policy for the slow algorithms
//   - Service: an HTTP API (/visualize, /solve, /benchmark) and the lpsviz CLI
//
// Under the hood the packages are layered leaves first:
//
//	step/         event kinds, payloads, Tracer, Trace, Cursor, Clock
//	lps/          Result, Solver, Registry, options, sentinel errors
//	bruteforce/   every window, checked from both ends
//	dp/           the n×n palindrome table, filled by length
//	expand/       2n-1 centers grown outward
//	manacher/     the ^#…#$ transform and its radius array
//	algorithms/   the default registry of the four solvers
//	benchmark/    the size matrix, Compare and the skip Policy
//	cmd/lpsviz/   serve, solve, trace, bench
//
// Quick example:
//
//	res, trace, err := manacher.Solve("babad", lps.WithTrace())
//	// res.Substring == "bab", res.Start == 0, res.End == 2
//	for ev := range trace.All() {
//		fmt.Println(ev.Kind, ev.Positions)
//	}
//
// Lengths and indices count Unicode codepoints, not bytes. When several
// maximal palindromes exist only the length is guaranteed to agree across
// algorithms.
package lvpal
