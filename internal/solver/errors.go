package solver

import (
	"errors"
	"fmt"
)

// Compute errors a solver may return from Solve. All wrap ErrCompute so
// the dispatcher can recognize any of them with errors.Is.
var (
	// ErrCompute is the root of all solver computation failures.
	ErrCompute = errors.New("solver: computation failed")

	// ErrDivisionByZero indicates the rearranged formula divides by a
	// zero quantity (e.g. coincident charges, zero plate separation).
	ErrDivisionByZero = fmt.Errorf("%w: division by zero", ErrCompute)

	// ErrDomain indicates a known value lies outside the formula's
	// physical domain (e.g. square root of a negative discriminant).
	ErrDomain = fmt.Errorf("%w: value outside physical domain", ErrCompute)
)
