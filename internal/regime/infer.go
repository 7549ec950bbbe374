package regime

import (
	"math"

	"github.com/san-kum/physica/internal/vars"
)

// Physical constants used by the classification heuristics.
const (
	SpeedOfLight      = 2.99792458e8  // m/s
	Planck            = 6.62607015e-34 // J·s
	Boltzmann         = 1.380649e-23  // J/K
	molecularDiameter = 3.7e-10       // m, nitrogen-like
)

// Thresholds are the tunable cutoffs of the inference heuristics.
type Thresholds struct {
	// RelativisticVC is the v/c ratio above which the regime is relativistic.
	RelativisticVC float64 `yaml:"relativistic_vc"`
	// QuantumWavelength is the de Broglie wavelength to size ratio above
	// which the regime is quantum.
	QuantumWavelength float64 `yaml:"quantum_wavelength"`
	// QuantumEnergy is the kinetic energy (J) below which the regime is
	// quantum.
	QuantumEnergy float64 `yaml:"quantum_energy"`
	// KnudsenLow and KnudsenHigh bound the transitional band in which the
	// regime is statistical-mesoscopic.
	KnudsenLow  float64 `yaml:"knudsen_low"`
	KnudsenHigh float64 `yaml:"knudsen_high"`
	// RealGasPressure (Pa) and RealGasTemperature (K) mark where the
	// ideal-gas approximation stops holding.
	RealGasPressure    float64 `yaml:"real_gas_pressure"`
	RealGasTemperature float64 `yaml:"real_gas_temperature"`
}

// DefaultThresholds returns the standard cutoffs.
func DefaultThresholds() Thresholds {
	return Thresholds{
		RelativisticVC:     0.1,
		QuantumWavelength:  0.1,
		QuantumEnergy:      1e-20,
		KnudsenLow:         0.01,
		KnudsenHigh:        10.0,
		RealGasPressure:    1e7,
		RealGasTemperature: 150.0,
	}
}

// chargeNames and fieldNames drive substance detection. Lowercase q is
// charge; uppercase Q is heat and does not trigger the electromagnetic
// branch.
var (
	chargeNames = []string{"q", "q1", "q2"}
	fieldNames  = []string{"σ", "sigma", "λ", "lambda", "E", "φ", "phi", "C"}
	gasNames    = []string{"P", "V", "n", "T"}
)

// Infer classifies the regime and substance for the given assignments
// using the default thresholds.
func Infer(v *vars.Store) Context {
	return InferWith(v, DefaultThresholds())
}

// InferWith classifies with explicit thresholds.
//
// Regime precedence is fixed: relativistic, then quantum, then
// statistical, then the classical default. Substance: charge variables
// win over field variables, which win over gas variables.
func InferWith(v *vars.Store, th Thresholds) Context {
	ctx := Context{Regime: Classical, Substance: IdealGas}

	velocity, hasV := v.Get("v")
	mass, hasM := v.Get("m")
	length, hasL := v.Get("L")
	temp, hasT := v.Get("T")
	press, hasP := v.Get("P")

	if hasV {
		ctx.Velocity = ptr(velocity)
		ratio := math.Abs(velocity) / SpeedOfLight
		ctx.VCRatio = ptr(ratio)
	}
	if hasL {
		ctx.Length = ptr(length)
	}
	if hasT {
		ctx.Temperature = ptr(temp)
	}
	if hasP {
		ctx.Pressure = ptr(press)
	}

	if hasT && hasP && hasL && temp > 0 && press > 0 && length > 0 {
		mfp := Boltzmann * temp / (math.Sqrt2 * math.Pi * molecularDiameter * molecularDiameter * press)
		ctx.Knudsen = ptr(mfp / length)
	}

	ctx.Regime = inferRegime(th, ctx, mass, hasM, velocity, hasV, length, hasL)
	ctx.Substance = inferSubstance(v, th, press, hasP, temp, hasT)
	return ctx
}

func inferRegime(th Thresholds, ctx Context, mass float64, hasM bool, velocity float64, hasV bool, length float64, hasL bool) Regime {
	if ctx.VCRatio != nil && *ctx.VCRatio > th.RelativisticVC {
		return Relativistic
	}
	if hasM && hasV && mass > 0 && velocity != 0 {
		deBroglie := Planck / (mass * math.Abs(velocity))
		if hasL && length > 0 && deBroglie/length > th.QuantumWavelength {
			return Quantum
		}
		if kinetic := 0.5 * mass * velocity * velocity; kinetic < th.QuantumEnergy {
			return Quantum
		}
	}
	if ctx.Knudsen != nil && *ctx.Knudsen > th.KnudsenLow && *ctx.Knudsen < th.KnudsenHigh {
		return Statistical
	}
	return Classical
}

func inferSubstance(v *vars.Store, th Thresholds, press float64, hasP bool, temp float64, hasT bool) Substance {
	for _, name := range chargeNames {
		if v.Has(name) {
			return PointCharges
		}
	}
	for _, name := range fieldNames {
		if v.Has(name) {
			return Fields
		}
	}
	known := 0
	for _, name := range gasNames {
		if v.Has(name) {
			known++
		}
	}
	if known >= 2 {
		if (hasP && press > th.RealGasPressure) || (hasT && temp > 0 && temp < th.RealGasTemperature) {
			return RealGas
		}
	}
	return IdealGas
}

func ptr(f float64) *float64 { return &f }
