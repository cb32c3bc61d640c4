// Package lps holds the contract shared by every longest-palindromic-substring
// solver: the Result type, stable algorithm identifiers, solve options, the
// Solver interface, and the Registry that maps identifiers to solvers.
//
// What
//
//   - Result: {Substring, Start, End, Length, Algorithm, Elapsed}.
//   - ID: brute_force, dynamic_programming, expand_center, manacher.
//   - Solver: Solve(text, opts...) (Result, *step.Trace, error).
//   - Registry: explicit id → solver table built at startup; unknown ids
//     fail with ErrUnknownAlgorithm.
//   - New: adapts an Algorithm (the bare scan over []rune) into a Solver.
//
// Execution
//
//	New wraps each algorithm with the same envelope:
//	  1. validate the text (UTF-8) and decode it to codepoints;
//	  2. create a tracer when WithTrace is given, nil otherwise (silent);
//	  3. read the injected Clock, run the algorithm, read the Clock again;
//	  4. convert a panic or an out-of-range answer into ErrAlgorithmFailure;
//	  5. close the trace with a result event.
//	Steps 1, 3, 4 and 5 are identical in both modes, so the traced result is
//	always the silent result.
//
// Tie-breaking
//
//	Every solver prefers the first maximum its own scan order meets. The scan
//	orders differ, so Start may differ between algorithms when several maximal
//	palindromes exist; Length never does.
//
// Errors
//
//   - ErrInvalidInput: text is not valid UTF-8.
//   - ErrUnknownAlgorithm: Registry.Lookup miss.
//   - ErrDuplicateAlgorithm: registering an id twice.
//   - ErrAlgorithmFailure: internal invariant violation inside a solver.
package lps
