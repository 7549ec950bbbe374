// Package registry holds the ordered collection of registered solvers.
//
// Registration is explicit: the production set is assembled by [Default]
// at process start, with no reflection or automatic discovery. The
// registration order is part of the contract: it is the tie-break
// between candidates of equal priority at dispatch time.
//
// A registry populated before traffic starts is safe for unsynchronized
// concurrent reads; calling Register or Clear after startup is
// unsupported.
package registry

import (
	"github.com/san-kum/physica/internal/logger"
	"github.com/san-kum/physica/internal/solver"
)

// Registry is an append-only ordered collection of solvers.
type Registry struct {
	solvers []solver.Solver
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{}
}

// Register appends a solver. Registering the same solver twice yields
// two dispatch candidates; it is not deduplicated. A nil or unnamed
// solver is a broken plug-in and panics.
func (r *Registry) Register(s solver.Solver) {
	if s == nil {
		panic("registry: nil solver")
	}
	if s.Name() == "" {
		panic("registry: solver with empty name")
	}
	r.solvers = append(r.solvers, s)
	log := logger.Logger()
	log.Info().
		Str("solver", s.Name()).
		Str("domain", s.Domain()).
		Int("priority", s.Priority()).
		Msg("registered solver")
}

// All returns the solvers in registration order. The returned slice is
// a copy; mutating it does not affect the registry.
func (r *Registry) All() []solver.Solver {
	out := make([]solver.Solver, len(r.solvers))
	copy(out, r.solvers)
	return out
}

// Len returns the number of registered solvers.
func (r *Registry) Len() int {
	return len(r.solvers)
}

// Clear empties the registry. Intended for test isolation only.
func (r *Registry) Clear() {
	r.solvers = nil
}
