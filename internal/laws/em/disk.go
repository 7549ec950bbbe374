package em

import (
	"fmt"
	"math"

	"github.com/san-kum/physica/internal/regime"
	"github.com/san-kum/physica/internal/solver"
	"github.com/san-kum/physica/internal/vars"
)

// ChargedDiskField solves the on-axis field of a uniformly charged disk
// of radius R at axial distance z ≥ 0:
//
//	E = σ/(2ε₀) · (1 − z/√(z² + R²))
//
// Geometry-exact: σ, R and z must be known, E unknown. As R → ∞ it
// recovers the infinite-plane result, which is why it outranks
// [InfinitePlaneField].
type ChargedDiskField struct{}

func NewChargedDiskField() *ChargedDiskField {
	return &ChargedDiskField{}
}

func (d *ChargedDiskField) Name() string   { return "charged_disk_field" }
func (d *ChargedDiskField) Domain() string { return "electromagnetics" }
func (d *ChargedDiskField) Priority() int  { return 92 }

func (d *ChargedDiskField) PhysicsType() regime.PhysicsType        { return regime.PhysicsElectrostatics }
func (d *ChargedDiskField) RequiredSubstances() []regime.Substance { return emSubstances }
func (d *ChargedDiskField) Equation() string                       { return "E = σ/2ε₀ · (1 − z/√(z² + R²))" }
func (d *ChargedDiskField) Describe() string {
	return "on-axis field of a uniformly charged disk"
}

func (d *ChargedDiskField) OutputUnits() map[string]string {
	return map[string]string{"E": "N/C"}
}

func (d *ChargedDiskField) CanSolve(names []string, ctx regime.Context) bool {
	return solver.HasAny(names, surfaceDensityAliases...) &&
		solver.HasAny(names, "R") &&
		solver.HasAny(names, "z") &&
		!solver.HasAny(names, fieldAliases...)
}

func (d *ChargedDiskField) ValidateInputs(v *vars.Store) bool {
	if !solver.Known(v, surfaceDensityAliases...) || !v.Has("R") || !v.Has("z") {
		return false
	}
	if solver.Known(v, fieldAliases...) {
		return false
	}
	radius, _ := v.Get("R")
	z, _ := v.Get("z")
	return radius > 0 && z >= 0
}

func (d *ChargedDiskField) Solve(v *vars.Store) error {
	sigma, _ := solver.Lookup(v, surfaceDensityAliases...)
	radius, _ := v.Get("R")
	z, _ := v.Get("z")

	hyp := math.Sqrt(z*z + radius*radius)
	if hyp == 0 {
		return fmt.Errorf("%w: degenerate disk geometry", solver.ErrDivisionByZero)
	}
	return v.Set("E", sigma/(2*Epsilon0)*(1-z/hyp))
}
