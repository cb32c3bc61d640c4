package algorithms

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvpal/bruteforce"
	"github.com/katalvlaran/lvpal/dp"
	"github.com/katalvlaran/lvpal/expand"
	"github.com/katalvlaran/lvpal/lps"
	"github.com/katalvlaran/lvpal/manacher"
)

// ErrDisagreement indicates two solvers returned answers of different length.
var ErrDisagreement = errors.New("algorithms: solvers disagree on the answer length")

// Solvers returns fresh instances of the four solvers in registry order.
func Solvers() []lps.Solver {
	return []lps.Solver{
		bruteforce.New(),
		dp.New(),
		expand.New(),
		manacher.New(),
	}
}

// NewRegistry returns a registry holding the four solvers.
func NewRegistry() *lps.Registry {
	r, err := lps.NewRegistry(Solvers()...)
	if err != nil {
		// ids are distinct constants
		panic(fmt.Sprintf("algorithms: %v", err))
	}

	return r
}

// SolveAll runs every solver of r on text in registry order. It fails on the
// first solver error, and with ErrDisagreement when the lengths differ.
func SolveAll(r *lps.Registry, text string, opts ...lps.Option) ([]lps.Result, error) {
	solvers := r.Solvers()
	out := make([]lps.Result, 0, len(solvers))
	for _, s := range solvers {
		res, _, err := s.Solve(text, opts...)
		if err != nil {
			return nil, err
		}
		if len(out) > 0 && out[0].Length != res.Length {
			return nil, fmt.Errorf("%w: %s=%d, %s=%d", ErrDisagreement,
				out[0].Algorithm, out[0].Length, res.Algorithm, res.Length)
		}
		out = append(out, res)
	}

	return out, nil
}
