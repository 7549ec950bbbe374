package registry

import (
	"github.com/san-kum/physica/internal/laws/em"
	"github.com/san-kum/physica/internal/laws/thermo"
)

// Default builds the production registry. Registration is explicit and
// ordered most-specific first; among equal priorities the earlier
// registration wins the dispatch tie-break.
func Default() *Registry {
	r := New()

	// Electromagnetics, geometry-exact laws first.
	r.Register(em.NewCoulombForce())
	r.Register(em.NewChargedRingField())
	r.Register(em.NewChargedDiskField())
	r.Register(em.NewFiniteLineField())
	r.Register(em.NewPointChargeField())
	r.Register(em.NewPointChargePotential())
	r.Register(em.NewInfiniteLineField())
	r.Register(em.NewInfinitePlaneField())
	r.Register(em.NewParallelPlateCapacitor())

	// Thermodynamics.
	r.Register(thermo.NewFirstLaw())
	r.Register(thermo.NewCalorimetry())
	r.Register(thermo.NewIdealGas())

	return r
}
