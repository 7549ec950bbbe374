// Package em provides electrostatics law solvers.
//
// The geometry-exact laws (Coulomb force between two placed charges,
// ring and disk fields on axis) sit at the top of the priority range;
// idealized geometries (infinite line, infinite plane) rank below them.
//
// Sign conventions: charges, fields and potentials are signed; a
// negative E simply points opposite the reference direction. Exact
// geometric coincidences (two charges at the same point, zero plate
// separation) surface as typed compute errors rather than infinities.
package em

// Electrostatic constants.
const (
	// Coulomb is k = 1/(4πε₀) in N·m²/C².
	Coulomb = 8.9875517923e9
	// Epsilon0 is the vacuum permittivity in F/m.
	Epsilon0 = 8.8541878128e-12
)
