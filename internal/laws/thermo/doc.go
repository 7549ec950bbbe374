// Package thermo provides thermodynamics law solvers.
//
// Each law is a stateless solver implementing the [solver.Solver]
// contract:
//
//   - [FirstLaw]: energy conservation, ΔU = Q − W
//   - [IdealGas]: equation of state, PV = nRT
//   - [Calorimetry]: sensible heat, Q = m·c·ΔT
//
// Every law recognizes a fixed set of quantities, each with its own
// accepted aliases, and solves for exactly one missing quantity. The
// derived value is written under the quantity's canonical symbol.
package thermo
