// Package dispatch selects and runs exactly one solver for a set of
// variable assignments.
//
// Candidates pass a three-stage filter (context compatibility,
// structural match on names, semantic validation on values), then are
// ranked by priority with registration order breaking ties. Only the top
// candidate runs; its failure is final and never falls through to the
// next candidate.
//
// Absence of a match and a solver's computational failure are both
// normal outcomes carried as data, never errors crossing the dispatch
// boundary.
package dispatch

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/san-kum/physica/internal/logger"
	"github.com/san-kum/physica/internal/regime"
	"github.com/san-kum/physica/internal/registry"
	"github.com/san-kum/physica/internal/solver"
	"github.com/san-kum/physica/internal/vars"
)

// Status classifies a dispatch outcome.
type Status int

const (
	// Solved means a solver matched, ran, and derived the unknown.
	Solved Status = iota
	// NoMatch means no registered solver passed all three filter stages.
	NoMatch
	// Failed means the selected solver hit a computational error.
	Failed
)

func (s Status) String() string {
	switch s {
	case Solved:
		return "solved"
	case NoMatch:
		return "no_match"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome is the result of one dispatch. Values carries the mutated
// store on success; Reason is a human-readable explanation for NoMatch
// and Failed.
type Outcome struct {
	Status  Status
	Solver  string
	Domain  string
	Values  *vars.Store
	Reason  string
	Context regime.Context
}

// Dispatcher matches variable stores against a registry.
type Dispatcher struct {
	reg        *registry.Registry
	log        zerolog.Logger
	thresholds regime.Thresholds
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithThresholds overrides the default inference cutoffs, so a tuned
// configuration (v/c cutoff, quantum ratio, Knudsen band) carries
// through to every Dispatch and Explain call.
func WithThresholds(th regime.Thresholds) Option {
	return func(d *Dispatcher) { d.thresholds = th }
}

// New returns a dispatcher over the given registry.
func New(reg *registry.Registry, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		reg:        reg,
		log:        logger.Logger().With().Str("component", "dispatch").Logger(),
		thresholds: regime.DefaultThresholds(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Solvers returns the registered solvers in registration order.
func (d *Dispatcher) Solvers() []solver.Solver {
	return d.reg.All()
}

// Dispatch infers the physical context from v, under the dispatcher's
// thresholds, and dispatches.
func (d *Dispatcher) Dispatch(v *vars.Store) Outcome {
	return d.DispatchWith(v, regime.InferWith(v, d.thresholds))
}

// DispatchWith dispatches under an explicit context. The context is
// taken as given, even when its heuristics were wrong; it is never
// re-derived here.
func (d *Dispatcher) DispatchWith(v *vars.Store, ctx regime.Context) Outcome {
	names := v.Names()

	type candidate struct {
		s     solver.Solver
		prio  int
		order int
	}
	var candidates []candidate
	for i, s := range d.reg.All() {
		if !contextCompatible(s, ctx) {
			continue
		}
		if !s.CanSolve(names, ctx) {
			continue
		}
		if !s.ValidateInputs(v) {
			continue
		}
		candidates = append(candidates, candidate{s: s, prio: s.Priority(), order: i})
	}

	// Priority descending; the stable sort keeps registration order
	// among equal priorities, so the first-registered of a tie wins.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].prio > candidates[j].prio
	})

	if len(candidates) == 0 {
		d.log.Debug().Strs("names", names).Msg("no compatible solver")
		return Outcome{
			Status:  NoMatch,
			Values:  v,
			Reason:  fmt.Sprintf("no solver matches variables %v under %s/%s", names, ctx.Regime, ctx.Substance),
			Context: ctx,
		}
	}

	top := candidates[0].s
	if err := runSolver(top, v); err != nil {
		d.log.Warn().Str("solver", top.Name()).Err(err).Msg("solver failed")
		return Outcome{
			Status:  Failed,
			Solver:  top.Name(),
			Domain:  top.Domain(),
			Values:  v,
			Reason:  err.Error(),
			Context: ctx,
		}
	}

	d.log.Info().Str("solver", top.Name()).Str("domain", top.Domain()).Msg("solved")
	return Outcome{
		Status:  Solved,
		Solver:  top.Name(),
		Domain:  top.Domain(),
		Values:  v,
		Context: ctx,
	}
}

// runSolver confines a buggy solver's panic to a per-solver failure.
func runSolver(s solver.Solver, v *vars.Store) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: panic in %s: %v", solver.ErrCompute, s.Name(), r)
		}
	}()
	return s.Solve(v)
}

// contextCompatible is the first filter stage: the solver's regime
// restriction, substance restriction, and declared physics type must
// all fit the inferred context.
func contextCompatible(s solver.Solver, ctx regime.Context) bool {
	if req := solver.RequiredRegimeOf(s); req != regime.Classical && req != ctx.Regime {
		return false
	}
	if subs := solver.RequiredSubstancesOf(s); len(subs) > 0 {
		found := false
		for _, sub := range subs {
			if sub == ctx.Substance {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return regime.Allows(ctx.Regime, solver.PhysicsTypeOf(s))
}
