package solver

import "github.com/san-kum/physica/internal/vars"

// Alias helpers. The store is alias-agnostic; each solver resolves the
// spellings it recognizes ("Q", "q" and "heat" all denote heat transfer
// to the first law, while "q" is a charge to Coulomb's law).

// Lookup returns the value of the first known alias.
func Lookup(v *vars.Store, aliases ...string) (float64, bool) {
	for _, a := range aliases {
		if val, ok := v.Get(a); ok {
			return val, true
		}
	}
	return 0, false
}

// Known reports whether any alias is known in the store.
func Known(v *vars.Store, aliases ...string) bool {
	_, ok := Lookup(v, aliases...)
	return ok
}

// KnownGroups counts how many alias groups have at least one known value.
func KnownGroups(v *vars.Store, groups ...[]string) int {
	n := 0
	for _, g := range groups {
		if Known(v, g...) {
			n++
		}
	}
	return n
}

// HasAny reports whether any alias appears among the given names.
func HasAny(names []string, aliases ...string) bool {
	for _, name := range names {
		for _, a := range aliases {
			if name == a {
				return true
			}
		}
	}
	return false
}

// PresentGroups counts how many alias groups appear among the names.
func PresentGroups(names []string, groups ...[]string) int {
	n := 0
	for _, g := range groups {
		if HasAny(names, g...) {
			n++
		}
	}
	return n
}
