// Package benchmark compares the registered solvers across input sizes.
//
// A run builds a matrix of cells, one per (length, algorithm):
//
//	for each length L in Lengths:
//	    text := random string of L codepoints over Alphabet (seeded)
//	    for each solver in the registry:
//	        if Policy forbids (solver, L): cell = skipped
//	        else: run silently, record elapsed time and heap bytes allocated
//
// Texts are generated from independent streams derived from Seed and the
// length index, so the same configuration always benchmarks the same texts
// whatever the parallelism.
//
// A solver that returns an error or panics yields an error cell and the
// matrix continues. Run checks ctx between cells and returns ctx.Err() when
// it is cancelled.
//
// Memory is the runtime.MemStats TotalAlloc delta around one solve. With
// WithParallelism(k > 1) concurrent cells share the counter, so the figure
// becomes an upper bound rather than an exact measurement.
package benchmark
