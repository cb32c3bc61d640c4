package benchmark

import "github.com/katalvlaran/lvpal/lps"

// DefaultBruteForceMax is the largest length brute force runs at by default.
const DefaultBruteForceMax = 1000

// Policy maps an algorithm to the largest input length it may run at.
// Algorithms without an entry, or with a value <= 0, are unlimited.
type Policy map[lps.ID]int

// DefaultPolicy caps brute force at DefaultBruteForceMax.
func DefaultPolicy() Policy {
	return Policy{lps.BruteForce: DefaultBruteForceMax}
}

// Allows reports whether id may run on an input of n codepoints.
func (p Policy) Allows(id lps.ID, n int) bool {
	limit, ok := p[id]

	return !ok || limit <= 0 || n <= limit
}

// Limit returns the cap for id and whether one is set.
func (p Policy) Limit(id lps.ID) (int, bool) {
	limit, ok := p[id]
	if !ok || limit <= 0 {
		return 0, false
	}

	return limit, true
}

// Clone returns an independent copy of p.
func (p Policy) Clone() Policy {
	out := make(Policy, len(p))
	for id, limit := range p {
		out[id] = limit
	}

	return out
}
