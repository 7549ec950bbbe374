package em

import (
	"fmt"

	"github.com/san-kum/physica/internal/regime"
	"github.com/san-kum/physica/internal/solver"
	"github.com/san-kum/physica/internal/vars"
)

// ParallelPlateCapacitor solves C = ε₀·A/d given any two of plate area,
// separation and capacitance. Zero separation passes validation (the
// values are structurally complete) but fails at solve time with a
// typed error.
type ParallelPlateCapacitor struct{}

func NewParallelPlateCapacitor() *ParallelPlateCapacitor {
	return &ParallelPlateCapacitor{}
}

func (c *ParallelPlateCapacitor) Name() string   { return "parallel_plate_capacitor" }
func (c *ParallelPlateCapacitor) Domain() string { return "electromagnetics" }
func (c *ParallelPlateCapacitor) Priority() int  { return 80 }

func (c *ParallelPlateCapacitor) PhysicsType() regime.PhysicsType { return regime.PhysicsElectrostatics }
func (c *ParallelPlateCapacitor) Equation() string                { return "C = ε₀·A / d" }
func (c *ParallelPlateCapacitor) Describe() string {
	return "capacitance of a parallel-plate capacitor"
}

func (c *ParallelPlateCapacitor) OutputUnits() map[string]string {
	return map[string]string{"C": "F", "A": "m²", "d": "m"}
}

func (c *ParallelPlateCapacitor) CanSolve(names []string, ctx regime.Context) bool {
	return solver.PresentGroups(names, []string{"A"}, []string{"d"}, []string{"C"}) >= 2
}

func (c *ParallelPlateCapacitor) ValidateInputs(v *vars.Store) bool {
	if solver.KnownGroups(v, []string{"A"}, []string{"d"}, []string{"C"}) != 2 {
		return false
	}
	if a, ok := v.Get("A"); ok && a <= 0 {
		return false
	}
	if d, ok := v.Get("d"); ok && d < 0 {
		return false
	}
	return true
}

func (c *ParallelPlateCapacitor) Solve(v *vars.Store) error {
	area, hasA := v.Get("A")
	sep, hasD := v.Get("d")
	cp, hasC := v.Get("C")

	switch {
	case hasA && hasD && !hasC:
		if sep == 0 {
			return fmt.Errorf("%w: zero plate separation", solver.ErrDivisionByZero)
		}
		return v.Set("C", Epsilon0*area/sep)
	case hasC && hasD && !hasA:
		return v.Set("A", cp*sep/Epsilon0)
	case hasA && hasC && !hasD:
		if cp == 0 {
			return fmt.Errorf("%w: zero capacitance", solver.ErrDivisionByZero)
		}
		return v.Set("d", Epsilon0*area/cp)
	default:
		return fmt.Errorf("%w: capacitor needs exactly 2 of A, d, C", solver.ErrCompute)
	}
}
