package thermo

import (
	"fmt"

	"github.com/san-kum/physica/internal/regime"
	"github.com/san-kum/physica/internal/solver"
	"github.com/san-kum/physica/internal/vars"
)

var (
	massAliases   = []string{"m", "mass"}
	shcAliases    = []string{"c"}
	deltaTAliases = []string{"ΔT", "dT", "deltaT"}
)

// Calorimetry solves Q = m·c·ΔT given any three of heat, mass, specific
// heat and temperature change.
type Calorimetry struct{}

func NewCalorimetry() *Calorimetry {
	return &Calorimetry{}
}

func (c *Calorimetry) Name() string   { return "calorimetry" }
func (c *Calorimetry) Domain() string { return "thermodynamics" }
func (c *Calorimetry) Priority() int  { return 72 }

func (c *Calorimetry) PhysicsType() regime.PhysicsType { return regime.PhysicsThermodynamics }
func (c *Calorimetry) Equation() string                { return "Q = m·c·ΔT" }
func (c *Calorimetry) Describe() string                { return "sensible heat transfer" }

func (c *Calorimetry) OutputUnits() map[string]string {
	return map[string]string{"Q": "J", "m": "kg", "c": "J/(kg·K)", "ΔT": "K"}
}

func (c *Calorimetry) CanSolve(names []string, ctx regime.Context) bool {
	return solver.PresentGroups(names, heatAliases, massAliases, shcAliases, deltaTAliases) >= 3
}

func (c *Calorimetry) ValidateInputs(v *vars.Store) bool {
	if solver.KnownGroups(v, heatAliases, massAliases, shcAliases, deltaTAliases) != 3 {
		return false
	}
	if m, ok := solver.Lookup(v, massAliases...); ok && m <= 0 {
		return false
	}
	if sh, ok := solver.Lookup(v, shcAliases...); ok && sh <= 0 {
		return false
	}
	return true
}

func (c *Calorimetry) Solve(v *vars.Store) error {
	heat, hasQ := solver.Lookup(v, heatAliases...)
	m, hasM := solver.Lookup(v, massAliases...)
	sh, hasC := solver.Lookup(v, shcAliases...)
	dT, hasDT := solver.Lookup(v, deltaTAliases...)

	switch {
	case !hasQ:
		return v.Set("Q", m*sh*dT)
	case !hasM:
		if sh*dT == 0 {
			return fmt.Errorf("%w: zero temperature change", solver.ErrDivisionByZero)
		}
		return v.Set("m", heat/(sh*dT))
	case !hasC:
		if m*dT == 0 {
			return fmt.Errorf("%w: zero temperature change", solver.ErrDivisionByZero)
		}
		return v.Set("c", heat/(m*dT))
	case !hasDT:
		return v.Set("ΔT", heat/(m*sh))
	default:
		return fmt.Errorf("%w: calorimetry needs exactly 3 of Q, m, c, ΔT", solver.ErrCompute)
	}
}
