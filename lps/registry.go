package lps

import (
	"fmt"
	"sync"
)

// Registry maps algorithm ids to solvers. It is built once at startup and
// then shared read-only; Register and Lookup are safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	solvers map[ID]Solver
	order   []ID
}

// NewRegistry returns a registry holding the given solvers in order.
func NewRegistry(solvers ...Solver) (*Registry, error) {
	r := &Registry{solvers: make(map[ID]Solver, len(solvers))}
	for _, s := range solvers {
		if err := r.Register(s); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Register adds s under s.ID().
func (r *Registry) Register(s Solver) error {
	if s == nil {
		return fmt.Errorf("lps: register nil solver")
	}
	id := s.ID()

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.solvers[id]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateAlgorithm, id)
	}
	r.solvers[id] = s
	r.order = append(r.order, id)

	return nil
}

// Lookup returns the solver registered under id.
func (r *Registry) Lookup(id ID) (Solver, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.solvers[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, id)
	}

	return s, nil
}

// IDs returns the registered ids in registration order.
func (r *Registry) IDs() []ID {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]ID(nil), r.order...)
}

// Solvers returns the registered solvers in registration order.
func (r *Registry) Solvers() []Solver {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Solver, len(r.order))
	for i, id := range r.order {
		out[i] = r.solvers[id]
	}

	return out
}
