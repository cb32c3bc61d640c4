// Package algorithms wires the four longest-palindromic-substring solvers
// into one registry.
//
// It provides:
//
//   - NewRegistry: the default lps.Registry, in ascending sophistication:
//     brute_force, dynamic_programming, expand_center, manacher.
//
//   - SolveAll: runs every registered solver on one text and checks that
//     the answers agree on length.
//
// Only Length is part of the cross-solver contract. The bundled solvers all
// keep the lowest start among equally long candidates ("babad" gives "bab"
// everywhere), but a solver registered later may choose differently.
package algorithms
