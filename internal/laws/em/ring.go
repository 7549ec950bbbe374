package em

import (
	"fmt"
	"math"

	"github.com/san-kum/physica/internal/regime"
	"github.com/san-kum/physica/internal/solver"
	"github.com/san-kum/physica/internal/vars"
)

// ChargedRingField solves the on-axis field of a uniformly charged ring
// of radius R at axial distance z:
//
//	E = k·q·z / (z² + R²)^(3/2)
//
// Geometry-exact: q, R and z must be known, E unknown.
type ChargedRingField struct{}

func NewChargedRingField() *ChargedRingField {
	return &ChargedRingField{}
}

func (r *ChargedRingField) Name() string   { return "charged_ring_field" }
func (r *ChargedRingField) Domain() string { return "electromagnetics" }
func (r *ChargedRingField) Priority() int  { return 92 }

func (r *ChargedRingField) PhysicsType() regime.PhysicsType        { return regime.PhysicsElectrostatics }
func (r *ChargedRingField) RequiredSubstances() []regime.Substance { return emSubstances }
func (r *ChargedRingField) Equation() string                       { return "E = k·q·z / (z² + R²)^(3/2)" }
func (r *ChargedRingField) Describe() string {
	return "on-axis field of a uniformly charged ring"
}

func (r *ChargedRingField) OutputUnits() map[string]string {
	return map[string]string{"E": "N/C"}
}

func (r *ChargedRingField) CanSolve(names []string, ctx regime.Context) bool {
	return solver.HasAny(names, chargeAliases...) &&
		solver.HasAny(names, "R") &&
		solver.HasAny(names, "z") &&
		!solver.HasAny(names, fieldAliases...)
}

func (r *ChargedRingField) ValidateInputs(v *vars.Store) bool {
	if !solver.Known(v, chargeAliases...) || !v.Has("R") || !v.Has("z") {
		return false
	}
	if solver.Known(v, fieldAliases...) {
		return false
	}
	radius, _ := v.Get("R")
	return radius > 0
}

func (r *ChargedRingField) Solve(v *vars.Store) error {
	q, _ := solver.Lookup(v, chargeAliases...)
	radius, _ := v.Get("R")
	z, _ := v.Get("z")

	denom := math.Pow(z*z+radius*radius, 1.5)
	if denom == 0 {
		return fmt.Errorf("%w: degenerate ring geometry", solver.ErrDivisionByZero)
	}
	return v.Set("E", Coulomb*q*z/denom)
}
