package em

import (
	"fmt"

	"github.com/san-kum/physica/internal/regime"
	"github.com/san-kum/physica/internal/solver"
	"github.com/san-kum/physica/internal/vars"
)

var coulombInputs = []string{"q1", "q2", "x1", "y1", "x2", "y2"}

// CoulombForce solves F = k·q₁·q₂/r² for two charges at fixed plane
// coordinates. It is geometry-exact: all six inputs must be known and
// the force unknown.
type CoulombForce struct{}

func NewCoulombForce() *CoulombForce {
	return &CoulombForce{}
}

func (c *CoulombForce) Name() string   { return "coulomb_force" }
func (c *CoulombForce) Domain() string { return "electromagnetics" }
func (c *CoulombForce) Priority() int  { return 95 }

func (c *CoulombForce) PhysicsType() regime.PhysicsType        { return regime.PhysicsElectrostatics }
func (c *CoulombForce) RequiredSubstances() []regime.Substance { return emSubstances }
func (c *CoulombForce) Equation() string                       { return "F = k·q₁·q₂ / r²" }
func (c *CoulombForce) Describe() string {
	return "Coulomb force between two point charges in the plane"
}

func (c *CoulombForce) OutputUnits() map[string]string {
	return map[string]string{"F": "N"}
}

func (c *CoulombForce) CanSolve(names []string, ctx regime.Context) bool {
	for _, sym := range coulombInputs {
		if !solver.HasAny(names, sym) {
			return false
		}
	}
	return true
}

func (c *CoulombForce) ValidateInputs(v *vars.Store) bool {
	for _, sym := range coulombInputs {
		if !v.Has(sym) {
			return false
		}
	}
	return !v.Has("F")
}

func (c *CoulombForce) Solve(v *vars.Store) error {
	q1, _ := v.Get("q1")
	q2, _ := v.Get("q2")
	x1, _ := v.Get("x1")
	y1, _ := v.Get("y1")
	x2, _ := v.Get("x2")
	y2, _ := v.Get("y2")

	dx, dy := x2-x1, y2-y1
	r2 := dx*dx + dy*dy
	if r2 == 0 {
		return fmt.Errorf("%w: point charges coincide at (%g, %g)", solver.ErrDivisionByZero, x1, y1)
	}
	return v.Set("F", Coulomb*q1*q2/r2)
}
