package dispatch

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/physica/internal/regime"
	"github.com/san-kum/physica/internal/registry"
	"github.com/san-kum/physica/internal/solver"
	"github.com/san-kum/physica/internal/vars"
)

// fakeSolver is a fully scriptable solver for exercising the dispatch
// algorithm without real physics.
type fakeSolver struct {
	name       string
	priority   int
	canSolve   bool
	validates  bool
	solveErr   error
	panics     bool
	solveCalls int
	regime     *regime.Regime
	substances []regime.Substance
	physics    regime.PhysicsType
}

func (f *fakeSolver) Name() string   { return f.name }
func (f *fakeSolver) Domain() string { return "test" }
func (f *fakeSolver) Priority() int  { return f.priority }

func (f *fakeSolver) CanSolve(names []string, ctx regime.Context) bool { return f.canSolve }
func (f *fakeSolver) ValidateInputs(v *vars.Store) bool                { return f.validates }

func (f *fakeSolver) Solve(v *vars.Store) error {
	f.solveCalls++
	if f.panics {
		panic("fake solver exploded")
	}
	if f.solveErr != nil {
		return f.solveErr
	}
	return v.Set("derived_by", float64(len(f.name)))
}

func (f *fakeSolver) PhysicsType() regime.PhysicsType { return f.physics }

func (f *fakeSolver) RequiredSubstances() []regime.Substance { return f.substances }

// constrained wraps fakeSolver with a regime restriction.
type constrained struct {
	*fakeSolver
}

func (c *constrained) RequiredRegime() regime.Regime { return *c.fakeSolver.regime }

func matching(name string, prio int) *fakeSolver {
	return &fakeSolver{name: name, priority: prio, canSolve: true, validates: true}
}

func store(t *testing.T, m map[string]float64) *vars.Store {
	t.Helper()
	s, err := vars.FromMap(m)
	require.NoError(t, err)
	return s
}

func TestValidateFalseNeverSolves(t *testing.T) {
	reg := registry.New()
	s := &fakeSolver{name: "structural_only", priority: 90, canSolve: true, validates: false}
	reg.Register(s)

	out := New(reg).DispatchWith(store(t, map[string]float64{"x": 1}), regime.Context{})

	assert.Equal(t, NoMatch, out.Status)
	assert.Zero(t, s.solveCalls, "solve must never run when validation rejected")
}

func TestPriorityOrderingBeatsRegistrationOrder(t *testing.T) {
	low := matching("low", 40)
	high := matching("high", 90)

	reg := registry.New()
	reg.Register(low) // registered first, still loses
	reg.Register(high)

	out := New(reg).DispatchWith(store(t, map[string]float64{"x": 1}), regime.Context{})

	require.Equal(t, Solved, out.Status)
	assert.Equal(t, "high", out.Solver)
	assert.Equal(t, 1, high.solveCalls)
	assert.Zero(t, low.solveCalls)
}

func TestTieBreakFirstRegisteredWins(t *testing.T) {
	for i := 0; i < 20; i++ {
		first := matching("first", 70)
		second := matching("second", 70)

		reg := registry.New()
		reg.Register(first)
		reg.Register(second)

		out := New(reg).DispatchWith(store(t, map[string]float64{"x": 1}), regime.Context{})
		require.Equal(t, Solved, out.Status)
		require.Equal(t, "first", out.Solver, "tie-break must be deterministic across runs")
	}
}

func TestFailureDoesNotFallThrough(t *testing.T) {
	// The top candidate failing is final: the lower-priority match is
	// not tried. Single-shot dispatch is the documented policy.
	failing := matching("failing", 90)
	failing.solveErr = solver.ErrDivisionByZero
	backup := matching("backup", 50)

	reg := registry.New()
	reg.Register(failing)
	reg.Register(backup)

	out := New(reg).DispatchWith(store(t, map[string]float64{"x": 1}), regime.Context{})

	require.Equal(t, Failed, out.Status)
	assert.Equal(t, "failing", out.Solver)
	assert.Contains(t, out.Reason, "division by zero")
	assert.Zero(t, backup.solveCalls, "no fallback to the next candidate")
}

func TestPanicIsConfinedToFailure(t *testing.T) {
	exploding := matching("exploding", 90)
	exploding.panics = true

	reg := registry.New()
	reg.Register(exploding)

	var out Outcome
	require.NotPanics(t, func() {
		out = New(reg).DispatchWith(store(t, map[string]float64{"x": 1}), regime.Context{})
	})
	assert.Equal(t, Failed, out.Status)
	assert.Contains(t, out.Reason, "exploding")
}

func TestAbsenceOnEmptyRegistry(t *testing.T) {
	out := New(registry.New()).DispatchWith(store(t, map[string]float64{"x": 1}), regime.Context{})
	assert.Equal(t, NoMatch, out.Status)
	assert.NotEmpty(t, out.Reason)
}

func TestRegimeRestrictionFilters(t *testing.T) {
	rel := regime.Relativistic
	s := &constrained{fakeSolver: matching("relativistic_only", 90)}
	s.fakeSolver.regime = &rel

	reg := registry.New()
	reg.Register(s)
	d := New(reg)

	out := d.DispatchWith(store(t, map[string]float64{"x": 1}), regime.Context{Regime: regime.Classical})
	assert.Equal(t, NoMatch, out.Status, "classical context must reject a relativistic-only solver")

	out = d.DispatchWith(store(t, map[string]float64{"x": 1}), regime.Context{Regime: regime.Relativistic})
	assert.Equal(t, Solved, out.Status)
}

func TestSubstanceRestrictionFilters(t *testing.T) {
	s := matching("charges_only", 90)
	s.substances = []regime.Substance{regime.PointCharges}

	reg := registry.New()
	reg.Register(s)
	d := New(reg)

	out := d.DispatchWith(store(t, map[string]float64{"x": 1}), regime.Context{Substance: regime.IdealGas})
	assert.Equal(t, NoMatch, out.Status)

	out = d.DispatchWith(store(t, map[string]float64{"x": 1}), regime.Context{Substance: regime.PointCharges})
	assert.Equal(t, Solved, out.Status)
}

func TestPhysicsTypeTableFilters(t *testing.T) {
	s := matching("gas_law", 90)
	s.physics = regime.PhysicsIdealGas

	reg := registry.New()
	reg.Register(s)
	d := New(reg)

	out := d.DispatchWith(store(t, map[string]float64{"x": 1}), regime.Context{Regime: regime.Relativistic})
	assert.Equal(t, NoMatch, out.Status, "ideal gas law is invalid outside the classical regime")

	out = d.DispatchWith(store(t, map[string]float64{"x": 1}), regime.Context{Regime: regime.Classical})
	assert.Equal(t, Solved, out.Status)
}

func TestExplainReportsAllThreeVerdicts(t *testing.T) {
	rejected := &fakeSolver{name: "wrong_names", priority: 60, canSolve: false, validates: true}
	wrongCount := &fakeSolver{name: "wrong_count", priority: 55, canSolve: true, validates: false}
	winner := matching("winner", 70)

	reg := registry.New()
	reg.Register(rejected)
	reg.Register(wrongCount)
	reg.Register(winner)

	verdicts := New(reg).ExplainWith(store(t, map[string]float64{"x": 1}), regime.Context{})
	require.Len(t, verdicts, 3)

	byName := map[string]Verdict{}
	for _, v := range verdicts {
		byName[v.Name] = v
	}
	assert.False(t, byName["wrong_names"].Structural)
	assert.True(t, byName["wrong_names"].ContextOK)
	assert.True(t, byName["wrong_names"].Validated)

	assert.True(t, byName["wrong_count"].Structural)
	assert.False(t, byName["wrong_count"].Validated)
	assert.False(t, byName["wrong_count"].Eligible())

	assert.True(t, byName["winner"].Eligible())
	assert.Equal(t, 70, byName["winner"].Priority)
}

// --- scenarios against the production registry ---

func TestScenarioFirstLawDeltaU(t *testing.T) {
	d := New(registry.Default())
	out := d.Dispatch(store(t, map[string]float64{"Q": 100, "W": 40}))

	require.Equal(t, Solved, out.Status)
	assert.Equal(t, "first_law", out.Solver)
	assert.Equal(t, "thermodynamics", out.Domain)
	got, ok := out.Values.Get("ΔU")
	require.True(t, ok)
	assert.InDelta(t, 60, got, 1e-9)
}

func TestScenarioFirstLawHeat(t *testing.T) {
	d := New(registry.Default())
	out := d.Dispatch(store(t, map[string]float64{"ΔU": 60, "W": 40}))

	require.Equal(t, Solved, out.Status)
	got, ok := out.Values.Get("Q")
	require.True(t, ok)
	assert.InDelta(t, 100, got, 1e-9)
}

func TestScenarioIdealGasMoles(t *testing.T) {
	d := New(registry.Default())
	out := d.Dispatch(store(t, map[string]float64{"P": 101325, "V": 0.5, "T": 300}))

	require.Equal(t, Solved, out.Status)
	assert.Equal(t, "ideal_gas", out.Solver)
	got, ok := out.Values.Get("n")
	require.True(t, ok)
	assert.InDelta(t, 20.31, got, 0.01)
}

func TestScenarioSingleVariableAbsence(t *testing.T) {
	d := New(registry.Default())
	out := d.Dispatch(store(t, map[string]float64{"Q": 100}))
	assert.Equal(t, NoMatch, out.Status)
}

func TestScenarioCoincidentChargesFailure(t *testing.T) {
	d := New(registry.Default())
	out := d.Dispatch(store(t, map[string]float64{
		"q1": 1e-6, "q2": 2e-6,
		"x1": 1, "y1": 1, "x2": 1, "y2": 1,
	}))

	require.Equal(t, Failed, out.Status)
	assert.Equal(t, "coulomb_force", out.Solver)
	assert.Contains(t, out.Reason, "coincide")
}

func TestScenarioRoundTripStability(t *testing.T) {
	d := New(registry.Default())

	first := d.Dispatch(store(t, map[string]float64{"Q": 100, "W": 40}))
	require.Equal(t, Solved, first.Status)
	dU, _ := first.Values.Get("ΔU")

	second := d.Dispatch(store(t, map[string]float64{"ΔU": dU, "W": 40}))
	require.Equal(t, Solved, second.Status)
	q, _ := second.Values.Get("Q")
	assert.InDelta(t, 100, q, 1e-9, "re-derivation must be round-trip stable")

	// Feeding the completed store back yields no match; the known value
	// is never silently overwritten.
	completed := store(t, map[string]float64{"Q": 100, "W": 40, "ΔU": dU})
	third := d.Dispatch(completed)
	assert.Equal(t, NoMatch, third.Status)
	still, _ := completed.Get("ΔU")
	assert.Equal(t, dU, still)
}

func TestScenarioGeometryOutranksIdealization(t *testing.T) {
	// λ, L and r match both line laws; the finite-geometry one must win.
	d := New(registry.Default())
	out := d.Dispatch(store(t, map[string]float64{"λ": 1e-9, "L": 2.0, "r": 0.5}))

	require.Equal(t, Solved, out.Status)
	assert.Equal(t, "finite_line_field", out.Solver)
	e, ok := out.Values.Get("E")
	require.True(t, ok)
	assert.False(t, math.IsNaN(e))
}

func TestScenarioRelativisticContext(t *testing.T) {
	// A fast particle forces the relativistic regime; the gas law's
	// physics type is invalid there even with matching variables.
	d := New(registry.Default())
	out := d.Dispatch(store(t, map[string]float64{"P": 101325, "V": 0.5, "T": 300, "v": 6e7}))
	assert.Equal(t, NoMatch, out.Status)
}

func TestThresholdOptionFlipsDispatch(t *testing.T) {
	// A slow-moving gas sample is classical under the default v/c
	// cutoff and solvable by the gas law.
	in := map[string]float64{"P": 101325, "V": 0.5, "T": 300, "v": 1e6}

	out := New(registry.Default()).Dispatch(store(t, in))
	require.Equal(t, Solved, out.Status)
	assert.Equal(t, "ideal_gas", out.Solver)

	// Lowering the cutoff below v/c ≈ 0.0033 reclassifies the same
	// input as relativistic, where the gas law is invalid.
	th := regime.DefaultThresholds()
	th.RelativisticVC = 1e-3
	strict := New(registry.Default(), WithThresholds(th))

	out = strict.Dispatch(store(t, in))
	assert.Equal(t, NoMatch, out.Status)
	assert.Equal(t, regime.Relativistic, out.Context.Regime)
}

func TestExplainUsesConfiguredThresholds(t *testing.T) {
	th := regime.DefaultThresholds()
	th.RelativisticVC = 1e-3
	d := New(registry.Default(), WithThresholds(th))

	ctx, _ := d.Explain(store(t, map[string]float64{"P": 101325, "V": 0.5, "T": 300, "v": 1e6}))
	assert.Equal(t, regime.Relativistic, ctx.Regime)
}

func TestDispatchErrorsAreData(t *testing.T) {
	d := New(registry.Default())
	out := d.Dispatch(store(t, map[string]float64{
		"q1": 1e-6, "q2": 2e-6,
		"x1": 0, "y1": 0, "x2": 0, "y2": 0,
	}))
	require.Equal(t, Failed, out.Status)
	require.NotEmpty(t, out.Reason)
	// The failure never mutates the store: no force was derived.
	assert.False(t, out.Values.Has("F"))
}
