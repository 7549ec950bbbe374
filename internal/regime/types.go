// Package regime classifies the physical setting of a problem.
//
// A [Context] carries the inferred regime (classical, statistical,
// quantum, relativistic) and substance (ideal gas, real gas, point
// charges, fields) for one set of variable assignments, plus optional
// derived parameters such as the Knudsen number or the v/c ratio.
//
// Contexts are computed fresh per request by [Infer], are immutable once
// built, and are never persisted. Inference is heuristic: downstream
// consumers must tolerate an occasionally wrong classification and never
// re-derive it.
package regime

// Regime is the coarse physical regime of a problem.
type Regime int

const (
	// Classical is macroscopic classical mechanics, the permissive default.
	Classical Regime = iota
	// Statistical is the mesoscopic transitional regime.
	Statistical
	// Quantum is the microscopic regime.
	Quantum
	// Relativistic covers velocities approaching the speed of light.
	Relativistic
)

func (r Regime) String() string {
	switch r {
	case Classical:
		return "classical"
	case Statistical:
		return "statistical"
	case Quantum:
		return "quantum"
	case Relativistic:
		return "relativistic"
	default:
		return "unknown"
	}
}

// Substance is the inferred matter/field classification.
type Substance int

const (
	// IdealGas is the default substance.
	IdealGas Substance = iota
	// RealGas indicates pressure/temperature outside the ideal range.
	RealGas
	// PointCharges indicates discrete charge variables are present.
	PointCharges
	// Fields indicates continuous charge or field variables are present.
	Fields
)

func (s Substance) String() string {
	switch s {
	case IdealGas:
		return "ideal_gas"
	case RealGas:
		return "real_gas"
	case PointCharges:
		return "point_charges"
	case Fields:
		return "fields"
	default:
		return "unknown"
	}
}

// PhysicsType tags the kind of law a solver implements, cross-checked
// against the regime at dispatch time.
type PhysicsType int

const (
	PhysicsUnknown PhysicsType = iota
	PhysicsIdealGas
	PhysicsThermodynamics
	PhysicsElectrostatics
	PhysicsKinetic
	PhysicsQuantum
	PhysicsRelativistic
)

func (p PhysicsType) String() string {
	switch p {
	case PhysicsIdealGas:
		return "ideal_gas_law"
	case PhysicsThermodynamics:
		return "thermodynamics"
	case PhysicsElectrostatics:
		return "electrostatics"
	case PhysicsKinetic:
		return "kinetic"
	case PhysicsQuantum:
		return "quantum"
	case PhysicsRelativistic:
		return "relativistic"
	default:
		return "unknown"
	}
}

// regimePhysics is the fixed regime to physics-type validity table.
var regimePhysics = map[Regime]map[PhysicsType]bool{
	Classical: {
		PhysicsIdealGas:       true,
		PhysicsThermodynamics: true,
		PhysicsElectrostatics: true,
		PhysicsKinetic:        true,
	},
	Statistical: {
		PhysicsThermodynamics: true,
		PhysicsKinetic:        true,
	},
	Quantum: {
		PhysicsQuantum: true,
	},
	Relativistic: {
		PhysicsRelativistic:   true,
		PhysicsElectrostatics: true,
	},
}

// Allows reports whether a law of physics type p is valid under regime r.
// PhysicsUnknown is always allowed.
func Allows(r Regime, p PhysicsType) bool {
	if p == PhysicsUnknown {
		return true
	}
	return regimePhysics[r][p]
}

// Context is the per-request physical classification. Regime and
// Substance are always assigned; derived parameters are nil when the
// inputs needed to compute them were absent.
type Context struct {
	Regime    Regime
	Substance Substance

	Length      *float64 // characteristic length, m
	Velocity    *float64 // characteristic velocity, m/s
	Temperature *float64 // K
	Pressure    *float64 // Pa
	Knudsen     *float64 // mean free path / characteristic length
	VCRatio     *float64 // velocity / speed of light
}
