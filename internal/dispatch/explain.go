package dispatch

import (
	"github.com/san-kum/physica/internal/regime"
	"github.com/san-kum/physica/internal/solver"
	"github.com/san-kum/physica/internal/vars"
)

// Verdict records, for one registered solver, each filter stage's
// independent answer for a given input. All three stages are evaluated
// even when an earlier one already rejected, so diagnostics can say
// exactly why a solver was passed over.
type Verdict struct {
	Name        string
	Domain      string
	Description string
	Equation    string
	Priority    int
	ContextOK   bool
	Structural  bool
	Validated   bool
}

// Eligible reports whether all three stages passed.
func (v Verdict) Eligible() bool {
	return v.ContextOK && v.Structural && v.Validated
}

// Explain evaluates every registered solver against v, inferring the
// context under the dispatcher's thresholds, and returns the per-solver
// verdicts in registration order.
func (d *Dispatcher) Explain(v *vars.Store) (regime.Context, []Verdict) {
	ctx := regime.InferWith(v, d.thresholds)
	return ctx, d.ExplainWith(v, ctx)
}

// ExplainWith is Explain under an explicit context.
func (d *Dispatcher) ExplainWith(v *vars.Store, ctx regime.Context) []Verdict {
	names := v.Names()
	solvers := d.reg.All()
	verdicts := make([]Verdict, 0, len(solvers))
	for _, s := range solvers {
		verdicts = append(verdicts, Verdict{
			Name:        s.Name(),
			Domain:      s.Domain(),
			Description: solver.DescriptionOf(s),
			Equation:    solver.EquationOf(s),
			Priority:    s.Priority(),
			ContextOK:   contextCompatible(s, ctx),
			Structural:  s.CanSolve(names, ctx),
			Validated:   s.ValidateInputs(v),
		})
	}
	return verdicts
}
