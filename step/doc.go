// Package step defines the instrumentation vocabulary shared by every
// longest-palindromic-substring solver: a closed set of event kinds, typed
// payload variants, and the Tracer that records them in order.
//
// What
//
//   - Kind: closed enumeration of event kinds (compare, match, dp_update, ...).
//   - Payload: sealed set of kind-specific records (Span, Cell, Center,
//     MirrorSeed, MirrorCalc, Boundary, Transformed).
//   - Event: {Kind, Line, Description, Positions, Payload}, validated by New.
//     Line points into the solver's pseudocode listing so a viewer can
//     highlight it; 0 means the event has no line.
//   - Tracer: append-only recorder. A nil *Tracer is the silent mode.
//   - Trace: the finished, immutable sequence with a forward-only Cursor.
//   - Clock: injectable time source used by callers that time a run.
//
// Modes
//
//	silent: solvers receive a nil *Tracer. Enabled() is false, so no event is
//	        built and no description is formatted.
//	traced: solvers receive NewTracer(). Every instrumentation point appends one
//	        Event; the caller closes the sequence with a result event.
//
// Tracing never influences the computed answer. If an event fails validation,
// or the optional event limit is exceeded, the tracer stops recording and the
// finished Trace reports itself unavailable (Err() != nil). The solver result
// is still returned to the caller.
//
// Wire format
//
//	Trace marshals to a JSON array of flat records:
//
//	  {"type":"compare","line":4,"description":"...","indices":[0,4]}
//	  {"type":"select_center","line":3,"description":"...","index":5}
//	  {"type":"dp_update","description":"...","row":0,"col":4,"value":true}
//	  {"type":"update_center","description":"...","center":5,"right":9}
//
//	Field names and Kind strings are a stable external contract.
//
// Complexity
//
//   - Record: amortized O(1) plus O(len(Positions)).
//   - Memory: O(#events); O(n³) for brute force, O(n²) for dp and expand-center,
//     O(n) for Manacher.
package step
