package thermo

import (
	"fmt"

	"github.com/san-kum/physica/internal/regime"
	"github.com/san-kum/physica/internal/solver"
	"github.com/san-kum/physica/internal/vars"
)

// GasConstant is the universal gas constant in J/(mol·K).
const GasConstant = 8.314

var gasGroups = [][]string{{"P"}, {"V"}, {"n"}, {"T"}}

// IdealGas solves the equation of state PV = nRT given any three of
// pressure, volume, amount and temperature.
type IdealGas struct{}

func NewIdealGas() *IdealGas {
	return &IdealGas{}
}

func (g *IdealGas) Name() string   { return "ideal_gas" }
func (g *IdealGas) Domain() string { return "thermodynamics" }
func (g *IdealGas) Priority() int  { return 65 }

func (g *IdealGas) PhysicsType() regime.PhysicsType { return regime.PhysicsIdealGas }
func (g *IdealGas) Equation() string                { return "PV = nRT" }
func (g *IdealGas) Describe() string                { return "ideal gas equation of state" }

func (g *IdealGas) RequiredSubstances() []regime.Substance {
	return []regime.Substance{regime.IdealGas}
}

func (g *IdealGas) OutputUnits() map[string]string {
	return map[string]string{"P": "Pa", "V": "m³", "n": "mol", "T": "K"}
}

func (g *IdealGas) CanSolve(names []string, ctx regime.Context) bool {
	return solver.PresentGroups(names, gasGroups...) >= 3
}

func (g *IdealGas) ValidateInputs(v *vars.Store) bool {
	if solver.KnownGroups(v, gasGroups...) != 3 {
		return false
	}
	// Known quantities must be physical: absolute pressure, volume,
	// amount and temperature are all strictly positive.
	for _, sym := range []string{"P", "V", "n", "T"} {
		if val, ok := v.Get(sym); ok && val <= 0 {
			return false
		}
	}
	return true
}

func (g *IdealGas) Solve(v *vars.Store) error {
	p, hasP := v.Get("P")
	vol, hasV := v.Get("V")
	n, hasN := v.Get("n")
	t, hasT := v.Get("T")

	switch {
	case !hasP:
		if vol == 0 {
			return fmt.Errorf("%w: zero volume", solver.ErrDivisionByZero)
		}
		return v.Set("P", n*GasConstant*t/vol)
	case !hasV:
		if p == 0 {
			return fmt.Errorf("%w: zero pressure", solver.ErrDivisionByZero)
		}
		return v.Set("V", n*GasConstant*t/p)
	case !hasN:
		if t == 0 {
			return fmt.Errorf("%w: zero temperature", solver.ErrDivisionByZero)
		}
		return v.Set("n", p*vol/(GasConstant*t))
	case !hasT:
		if n == 0 {
			return fmt.Errorf("%w: zero amount of substance", solver.ErrDivisionByZero)
		}
		return v.Set("T", p*vol/(n*GasConstant))
	default:
		return fmt.Errorf("%w: ideal gas law needs exactly 3 of P, V, n, T", solver.ErrCompute)
	}
}
