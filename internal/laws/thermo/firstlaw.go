package thermo

import (
	"fmt"

	"github.com/san-kum/physica/internal/regime"
	"github.com/san-kum/physica/internal/solver"
	"github.com/san-kum/physica/internal/vars"
)

var (
	heatAliases   = []string{"Q", "q", "heat"}
	workAliases   = []string{"W", "w", "work"}
	deltaUAliases = []string{"ΔU", "dU", "deltaU", "du"}
)

// FirstLaw solves the first law of thermodynamics, ΔU = Q − W, given any
// two of heat, work and internal-energy change.
type FirstLaw struct{}

func NewFirstLaw() *FirstLaw {
	return &FirstLaw{}
}

func (f *FirstLaw) Name() string   { return "first_law" }
func (f *FirstLaw) Domain() string { return "thermodynamics" }
func (f *FirstLaw) Priority() int  { return 75 }

func (f *FirstLaw) PhysicsType() regime.PhysicsType { return regime.PhysicsThermodynamics }
func (f *FirstLaw) Equation() string                { return "ΔU = Q - W" }
func (f *FirstLaw) Describe() string {
	return "first law of thermodynamics (energy conservation)"
}

func (f *FirstLaw) OutputUnits() map[string]string {
	return map[string]string{"Q": "J", "W": "J", "ΔU": "J"}
}

func (f *FirstLaw) CanSolve(names []string, ctx regime.Context) bool {
	return solver.PresentGroups(names, heatAliases, workAliases, deltaUAliases) >= 2
}

func (f *FirstLaw) ValidateInputs(v *vars.Store) bool {
	return solver.KnownGroups(v, heatAliases, workAliases, deltaUAliases) == 2
}

func (f *FirstLaw) Solve(v *vars.Store) error {
	heat, hasQ := solver.Lookup(v, heatAliases...)
	work, hasW := solver.Lookup(v, workAliases...)
	dU, hasU := solver.Lookup(v, deltaUAliases...)

	switch {
	case hasQ && hasW && !hasU:
		return v.Set("ΔU", heat-work)
	case hasU && hasW && !hasQ:
		return v.Set("Q", dU+work)
	case hasQ && hasU && !hasW:
		return v.Set("W", heat-dU)
	default:
		return fmt.Errorf("%w: first law needs exactly 2 of Q, W, ΔU", solver.ErrCompute)
	}
}
