// Package logging builds the zap loggers used by the server and the CLI.
//
// Solver packages never log. The benchmark harness and the HTTP layer take a
// *zap.Logger built here; tests use NewObserved to assert on entries.
package logging
