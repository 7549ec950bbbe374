package em

import (
	"fmt"
	"math"

	"github.com/san-kum/physica/internal/regime"
	"github.com/san-kum/physica/internal/solver"
	"github.com/san-kum/physica/internal/vars"
)

var lineDensityAliases = []string{"λ", "lambda"}

// InfiniteLineField solves E = 2k·λ/r for an infinite line charge,
// given any two of line density, radial distance and field.
type InfiniteLineField struct{}

func NewInfiniteLineField() *InfiniteLineField {
	return &InfiniteLineField{}
}

func (l *InfiniteLineField) Name() string   { return "infinite_line_field" }
func (l *InfiniteLineField) Domain() string { return "electromagnetics" }
func (l *InfiniteLineField) Priority() int  { return 85 }

func (l *InfiniteLineField) PhysicsType() regime.PhysicsType        { return regime.PhysicsElectrostatics }
func (l *InfiniteLineField) RequiredSubstances() []regime.Substance { return emSubstances }
func (l *InfiniteLineField) Equation() string                       { return "E = 2k·λ / r" }
func (l *InfiniteLineField) Describe() string {
	return "electric field of an infinite line charge"
}

func (l *InfiniteLineField) OutputUnits() map[string]string {
	return map[string]string{"E": "N/C", "λ": "C/m", "r": "m"}
}

func (l *InfiniteLineField) CanSolve(names []string, ctx regime.Context) bool {
	return solver.PresentGroups(names, lineDensityAliases, distanceAliases, fieldAliases) >= 2
}

func (l *InfiniteLineField) ValidateInputs(v *vars.Store) bool {
	if solver.KnownGroups(v, lineDensityAliases, distanceAliases, fieldAliases) != 2 {
		return false
	}
	if r, ok := solver.Lookup(v, distanceAliases...); ok && r <= 0 {
		return false
	}
	return true
}

func (l *InfiniteLineField) Solve(v *vars.Store) error {
	lam, hasL := solver.Lookup(v, lineDensityAliases...)
	r, hasR := solver.Lookup(v, distanceAliases...)
	e, hasE := solver.Lookup(v, fieldAliases...)

	switch {
	case hasL && hasR && !hasE:
		return v.Set("E", 2*Coulomb*lam/r)
	case hasE && hasR && !hasL:
		return v.Set("λ", e*r/(2*Coulomb))
	case hasL && hasE && !hasR:
		if e == 0 {
			return fmt.Errorf("%w: zero field has no defined distance", solver.ErrDivisionByZero)
		}
		if lam/e < 0 {
			return fmt.Errorf("%w: density and field signs disagree", solver.ErrDomain)
		}
		return v.Set("r", 2*Coulomb*lam/e)
	default:
		return fmt.Errorf("%w: infinite line field needs exactly 2 of λ, r, E", solver.ErrCompute)
	}
}

// FiniteLineField solves the perpendicular-bisector field of a finite
// line charge of length L:
//
//	E = k·λ·L / (r·√(r² + L²/4))
//
// It only derives E; inverting for r or L has no simple closed form.
type FiniteLineField struct{}

func NewFiniteLineField() *FiniteLineField {
	return &FiniteLineField{}
}

func (l *FiniteLineField) Name() string   { return "finite_line_field" }
func (l *FiniteLineField) Domain() string { return "electromagnetics" }
func (l *FiniteLineField) Priority() int  { return 91 }

func (l *FiniteLineField) PhysicsType() regime.PhysicsType        { return regime.PhysicsElectrostatics }
func (l *FiniteLineField) RequiredSubstances() []regime.Substance { return emSubstances }
func (l *FiniteLineField) Equation() string                       { return "E = k·λ·L / (r·√(r² + L²/4))" }
func (l *FiniteLineField) Describe() string {
	return "field of a finite line charge on its perpendicular bisector"
}

func (l *FiniteLineField) OutputUnits() map[string]string {
	return map[string]string{"E": "N/C"}
}

func (l *FiniteLineField) CanSolve(names []string, ctx regime.Context) bool {
	return solver.PresentGroups(names, lineDensityAliases, distanceAliases, []string{"L"}) == 3 &&
		!solver.HasAny(names, fieldAliases...)
}

func (l *FiniteLineField) ValidateInputs(v *vars.Store) bool {
	if !solver.Known(v, lineDensityAliases...) || !v.Has("L") || !solver.Known(v, distanceAliases...) {
		return false
	}
	if solver.Known(v, fieldAliases...) {
		return false
	}
	r, _ := solver.Lookup(v, distanceAliases...)
	length, _ := v.Get("L")
	return r > 0 && length > 0
}

func (l *FiniteLineField) Solve(v *vars.Store) error {
	lam, _ := solver.Lookup(v, lineDensityAliases...)
	r, _ := solver.Lookup(v, distanceAliases...)
	length, _ := v.Get("L")

	denom := r * math.Sqrt(r*r+length*length/4)
	if denom == 0 {
		return fmt.Errorf("%w: zero distance from line", solver.ErrDivisionByZero)
	}
	return v.Set("E", Coulomb*lam*length/denom)
}
