// Package vars provides the per-request variable store: a mapping from
// variable symbol (e.g. "Q", "ΔU", "q1") to a known numeric value.
//
// Symbols are case- and alias-sensitive; "Q" (heat) and "q" (charge) are
// distinct entries. Alias resolution belongs to the individual solvers,
// not to the store. Values must be finite or infinite, never NaN; an
// infinite value can be legitimately produced (potential at zero
// distance) and stays representable.
//
// A Store lives for a single solve call. It is never shared between
// concurrent dispatches, so it needs no synchronization.
package vars

import (
	"fmt"
	"math"
	"sort"
)

// Store maps variable symbols to known values.
type Store struct {
	m map[string]float64
}

// New returns an empty store.
func New() *Store {
	return &Store{m: make(map[string]float64)}
}

// FromMap builds a store from raw assignments. NaN values are rejected.
func FromMap(assignments map[string]float64) (*Store, error) {
	s := New()
	for sym, val := range assignments {
		if err := s.Set(sym, val); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Set records a value for sym. NaN is rejected; ±Inf is allowed.
func (s *Store) Set(sym string, val float64) error {
	if sym == "" {
		return fmt.Errorf("vars: empty variable symbol")
	}
	if math.IsNaN(val) {
		return fmt.Errorf("vars: %s = NaN is not a value", sym)
	}
	s.m[sym] = val
	return nil
}

// Get returns the value for sym and whether it is known.
func (s *Store) Get(sym string) (float64, bool) {
	v, ok := s.m[sym]
	return v, ok
}

// Has reports whether sym is known.
func (s *Store) Has(sym string) bool {
	_, ok := s.m[sym]
	return ok
}

// Len returns the number of known variables.
func (s *Store) Len() int {
	return len(s.m)
}

// Names returns the known symbols in sorted order.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.m))
	for sym := range s.m {
		names = append(names, sym)
	}
	sort.Strings(names)
	return names
}

// Clone returns an independent copy of the store.
func (s *Store) Clone() *Store {
	c := New()
	for sym, val := range s.m {
		c.m[sym] = val
	}
	return c
}

// Map returns a copy of the underlying assignments.
func (s *Store) Map() map[string]float64 {
	m := make(map[string]float64, len(s.m))
	for sym, val := range s.m {
		m[sym] = val
	}
	return m
}
