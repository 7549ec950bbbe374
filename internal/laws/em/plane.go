package em

import (
	"fmt"

	"github.com/san-kum/physica/internal/regime"
	"github.com/san-kum/physica/internal/solver"
	"github.com/san-kum/physica/internal/vars"
)

var surfaceDensityAliases = []string{"σ", "sigma"}

// InfinitePlaneField solves E = σ/(2ε₀) for an infinite charged plane.
// The field is uniform, so only one of surface density and field is
// needed to derive the other.
type InfinitePlaneField struct{}

func NewInfinitePlaneField() *InfinitePlaneField {
	return &InfinitePlaneField{}
}

func (p *InfinitePlaneField) Name() string   { return "infinite_plane_field" }
func (p *InfinitePlaneField) Domain() string { return "electromagnetics" }
func (p *InfinitePlaneField) Priority() int  { return 85 }

func (p *InfinitePlaneField) PhysicsType() regime.PhysicsType        { return regime.PhysicsElectrostatics }
func (p *InfinitePlaneField) RequiredSubstances() []regime.Substance { return emSubstances }
func (p *InfinitePlaneField) Equation() string                       { return "E = σ / 2ε₀" }
func (p *InfinitePlaneField) Describe() string {
	return "uniform field of an infinite charged plane"
}

func (p *InfinitePlaneField) OutputUnits() map[string]string {
	return map[string]string{"E": "N/C", "σ": "C/m²"}
}

func (p *InfinitePlaneField) CanSolve(names []string, ctx regime.Context) bool {
	return solver.PresentGroups(names, surfaceDensityAliases, fieldAliases) >= 1 &&
		!solver.HasAny(names, distanceAliases...)
}

func (p *InfinitePlaneField) ValidateInputs(v *vars.Store) bool {
	return solver.KnownGroups(v, surfaceDensityAliases, fieldAliases) == 1
}

func (p *InfinitePlaneField) Solve(v *vars.Store) error {
	sigma, hasS := solver.Lookup(v, surfaceDensityAliases...)
	e, hasE := solver.Lookup(v, fieldAliases...)

	switch {
	case hasS && !hasE:
		return v.Set("E", sigma/(2*Epsilon0))
	case hasE && !hasS:
		return v.Set("σ", 2*Epsilon0*e)
	default:
		return fmt.Errorf("%w: infinite plane field needs exactly 1 of σ, E", solver.ErrCompute)
	}
}
