package em

import (
	"fmt"
	"math"

	"github.com/san-kum/physica/internal/regime"
	"github.com/san-kum/physica/internal/solver"
	"github.com/san-kum/physica/internal/vars"
)

var (
	chargeAliases    = []string{"q", "charge"}
	distanceAliases  = []string{"r", "distance"}
	fieldAliases     = []string{"E", "field"}
	potentialAliases = []string{"φ", "phi"}

	emSubstances = []regime.Substance{regime.PointCharges, regime.Fields}
)

// PointChargeField solves E = k·q/r² for a single point charge, given
// any two of charge, distance and field magnitude.
type PointChargeField struct{}

func NewPointChargeField() *PointChargeField {
	return &PointChargeField{}
}

func (p *PointChargeField) Name() string   { return "point_charge_field" }
func (p *PointChargeField) Domain() string { return "electromagnetics" }
func (p *PointChargeField) Priority() int  { return 90 }

func (p *PointChargeField) PhysicsType() regime.PhysicsType     { return regime.PhysicsElectrostatics }
func (p *PointChargeField) RequiredSubstances() []regime.Substance { return emSubstances }
func (p *PointChargeField) Equation() string                    { return "E = k·q / r²" }
func (p *PointChargeField) Describe() string                    { return "electric field of a point charge" }

func (p *PointChargeField) OutputUnits() map[string]string {
	return map[string]string{"E": "N/C", "q": "C", "r": "m"}
}

func (p *PointChargeField) CanSolve(names []string, ctx regime.Context) bool {
	return solver.PresentGroups(names, chargeAliases, distanceAliases, fieldAliases) >= 2
}

func (p *PointChargeField) ValidateInputs(v *vars.Store) bool {
	if solver.KnownGroups(v, chargeAliases, distanceAliases, fieldAliases) != 2 {
		return false
	}
	if r, ok := solver.Lookup(v, distanceAliases...); ok && r <= 0 {
		return false
	}
	return true
}

func (p *PointChargeField) Solve(v *vars.Store) error {
	q, hasQ := solver.Lookup(v, chargeAliases...)
	r, hasR := solver.Lookup(v, distanceAliases...)
	e, hasE := solver.Lookup(v, fieldAliases...)

	switch {
	case hasQ && hasR && !hasE:
		return v.Set("E", Coulomb*q/(r*r))
	case hasE && hasR && !hasQ:
		return v.Set("q", e*r*r/Coulomb)
	case hasQ && hasE && !hasR:
		if e == 0 {
			return fmt.Errorf("%w: zero field has no defined distance", solver.ErrDivisionByZero)
		}
		if q/e < 0 {
			return fmt.Errorf("%w: charge and field signs disagree", solver.ErrDomain)
		}
		return v.Set("r", math.Sqrt(Coulomb*q/e))
	default:
		return fmt.Errorf("%w: point charge field needs exactly 2 of q, r, E", solver.ErrCompute)
	}
}

// PointChargePotential solves φ = k·q/r given any two of charge,
// distance and potential. At r = 0 the potential is legitimately
// infinite and is returned as ±Inf rather than as an error.
type PointChargePotential struct{}

func NewPointChargePotential() *PointChargePotential {
	return &PointChargePotential{}
}

func (p *PointChargePotential) Name() string   { return "point_charge_potential" }
func (p *PointChargePotential) Domain() string { return "electromagnetics" }
func (p *PointChargePotential) Priority() int  { return 90 }

func (p *PointChargePotential) PhysicsType() regime.PhysicsType        { return regime.PhysicsElectrostatics }
func (p *PointChargePotential) RequiredSubstances() []regime.Substance { return emSubstances }
func (p *PointChargePotential) Equation() string                       { return "φ = k·q / r" }
func (p *PointChargePotential) Describe() string {
	return "electric potential of a point charge"
}

func (p *PointChargePotential) OutputUnits() map[string]string {
	return map[string]string{"φ": "V", "q": "C", "r": "m"}
}

func (p *PointChargePotential) CanSolve(names []string, ctx regime.Context) bool {
	return solver.PresentGroups(names, chargeAliases, distanceAliases, potentialAliases) >= 2
}

func (p *PointChargePotential) ValidateInputs(v *vars.Store) bool {
	if solver.KnownGroups(v, chargeAliases, distanceAliases, potentialAliases) != 2 {
		return false
	}
	if r, ok := solver.Lookup(v, distanceAliases...); ok && r < 0 {
		return false
	}
	return true
}

func (p *PointChargePotential) Solve(v *vars.Store) error {
	q, hasQ := solver.Lookup(v, chargeAliases...)
	r, hasR := solver.Lookup(v, distanceAliases...)
	phi, hasPhi := solver.Lookup(v, potentialAliases...)

	switch {
	case hasQ && hasR && !hasPhi:
		// r = 0 yields ±Inf, which the store represents.
		return v.Set("φ", Coulomb*q/r)
	case hasPhi && hasR && !hasQ:
		return v.Set("q", phi*r/Coulomb)
	case hasQ && hasPhi && !hasR:
		if phi == 0 {
			return fmt.Errorf("%w: zero potential has no defined distance", solver.ErrDivisionByZero)
		}
		if q/phi < 0 {
			return fmt.Errorf("%w: charge and potential signs disagree", solver.ErrDomain)
		}
		return v.Set("r", Coulomb*q/phi)
	default:
		return fmt.Errorf("%w: point charge potential needs exactly 2 of q, r, φ", solver.ErrCompute)
	}
}
