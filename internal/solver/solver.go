// Package solver defines the contract every physical-law implementation
// satisfies, plus the optional capability interfaces the dispatcher
// probes for metadata.
//
// Solvers are immutable, stateless singletons registered once at process
// start. All methods must be safe for unsynchronized concurrent calls.
//
// The contract splits eligibility into two pure predicates:
//
//   - [Solver.CanSolve] is structural: does the solver recognize enough
//     of the variable names present, under this context? Values are not
//     consulted.
//   - [Solver.ValidateInputs] is semantic: are exactly the right number
//     of the recognized quantities known (so the remaining one is
//     uniquely determined), and are the known values physically sane?
//
// A law with N recognized quantities that solves for one unknown must
// reject both N-2 and N known inputs; "at least" is never enough.
package solver

import (
	"github.com/san-kum/physica/internal/regime"
	"github.com/san-kum/physica/internal/vars"
)

// Priority bands. Higher means more specific and preferred at dispatch.
const (
	// PriorityGeometry (90-100): geometry-exact solvers tied to fixed
	// coordinate layouts.
	PriorityGeometry = 90
	// PriorityNamedLaw (70-89): specific named laws.
	PriorityNamedLaw = 70
	// PriorityGeneral (50-69): general laws.
	PriorityGeneral = 50
	// PriorityCatchAll (30-49): catch-alls.
	PriorityCatchAll = 30
	// DefaultPriority is the mid-range default.
	DefaultPriority = 50
)

// Solver is the required contract for one closed-form physical law.
type Solver interface {
	// Name is the unique solver identity.
	Name() string
	// Domain is the coarse category label used for grouping and display.
	Domain() string
	// Priority ranks this solver against other matching candidates.
	Priority() int
	// CanSolve reports structural eligibility from variable names alone.
	// It must be pure.
	CanSolve(names []string, ctx regime.Context) bool
	// ValidateInputs reports semantic eligibility from full values.
	// It must be pure.
	ValidateInputs(v *vars.Store) bool
	// Solve fills in the single unknown, appending to v without removing
	// or altering known entries. It assumes ValidateInputs held; a
	// defensive implementation returns a typed compute error (never a
	// silent NaN) when the math is undefined.
	Solve(v *vars.Store) error
}

// RegimeConstrained restricts a solver to one regime. Without it the
// solver accepts the permissive classical default.
type RegimeConstrained interface {
	RequiredRegime() regime.Regime
}

// SubstanceConstrained restricts a solver to a set of substances.
// An empty set means unrestricted, as does not implementing this.
type SubstanceConstrained interface {
	RequiredSubstances() []regime.Substance
}

// PhysicsTyped declares the kind of law, cross-checked against the
// regime validity table at dispatch time. Default is PhysicsUnknown,
// which passes every regime.
type PhysicsTyped interface {
	PhysicsType() regime.PhysicsType
}

// UnitMapper exposes display units for derived variables.
type UnitMapper interface {
	OutputUnits() map[string]string
}

// Equationer exposes the governing equation for display.
type Equationer interface {
	Equation() string
}

// Describer exposes a one-line human description.
type Describer interface {
	Describe() string
}

// RequiredRegimeOf returns the solver's regime restriction or the
// classical default.
func RequiredRegimeOf(s Solver) regime.Regime {
	if rc, ok := s.(RegimeConstrained); ok {
		return rc.RequiredRegime()
	}
	return regime.Classical
}

// RequiredSubstancesOf returns the solver's substance restriction;
// empty means unrestricted.
func RequiredSubstancesOf(s Solver) []regime.Substance {
	if sc, ok := s.(SubstanceConstrained); ok {
		return sc.RequiredSubstances()
	}
	return nil
}

// PhysicsTypeOf returns the solver's declared physics type or
// PhysicsUnknown.
func PhysicsTypeOf(s Solver) regime.PhysicsType {
	if pt, ok := s.(PhysicsTyped); ok {
		return pt.PhysicsType()
	}
	return regime.PhysicsUnknown
}

// EquationOf returns the display equation or "".
func EquationOf(s Solver) string {
	if eq, ok := s.(Equationer); ok {
		return eq.Equation()
	}
	return ""
}

// DescriptionOf returns the one-line description or "".
func DescriptionOf(s Solver) string {
	if d, ok := s.(Describer); ok {
		return d.Describe()
	}
	return ""
}
