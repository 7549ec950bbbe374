package registry

import (
	"testing"

	"github.com/san-kum/physica/internal/regime"
	"github.com/san-kum/physica/internal/solver"
	"github.com/san-kum/physica/internal/vars"
)

type stubSolver struct {
	name string
}

func (s *stubSolver) Name() string   { return s.name }
func (s *stubSolver) Domain() string { return "test" }
func (s *stubSolver) Priority() int  { return solver.DefaultPriority }
func (s *stubSolver) CanSolve(names []string, ctx regime.Context) bool { return false }
func (s *stubSolver) ValidateInputs(v *vars.Store) bool                { return false }
func (s *stubSolver) Solve(v *vars.Store) error                        { return nil }

func TestRegisterPreservesOrder(t *testing.T) {
	r := New()
	r.Register(&stubSolver{name: "a"})
	r.Register(&stubSolver{name: "b"})
	r.Register(&stubSolver{name: "c"})

	all := r.All()
	if len(all) != 3 {
		t.Fatalf("expected 3 solvers, got %d", len(all))
	}
	for i, want := range []string{"a", "b", "c"} {
		if all[i].Name() != want {
			t.Errorf("position %d = %s, want %s", i, all[i].Name(), want)
		}
	}
}

func TestDuplicateRegistrationYieldsTwoCandidates(t *testing.T) {
	r := New()
	s := &stubSolver{name: "dup"}
	r.Register(s)
	r.Register(s)
	if r.Len() != 2 {
		t.Errorf("expected 2 entries, got %d", r.Len())
	}
}

func TestAllReturnsCopy(t *testing.T) {
	r := New()
	r.Register(&stubSolver{name: "a"})
	all := r.All()
	all[0] = &stubSolver{name: "evil"}
	if r.All()[0].Name() != "a" {
		t.Error("mutating the returned slice leaked into the registry")
	}
}

func TestClear(t *testing.T) {
	r := New()
	r.Register(&stubSolver{name: "a"})
	r.Clear()
	if r.Len() != 0 {
		t.Errorf("expected empty registry, got %d", r.Len())
	}
}

func TestRegisterNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on nil solver")
		}
	}()
	New().Register(nil)
}

func TestRegisterUnnamedPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on unnamed solver")
		}
	}()
	New().Register(&stubSolver{})
}

func TestDefaultRegistry(t *testing.T) {
	r := Default()
	if r.Len() != 12 {
		t.Errorf("expected 12 registered solvers, got %d", r.Len())
	}
	seen := make(map[string]bool)
	for _, s := range r.All() {
		if seen[s.Name()] {
			t.Errorf("duplicate solver name %q in default registry", s.Name())
		}
		seen[s.Name()] = true
		if s.Priority() < 0 || s.Priority() > 100 {
			t.Errorf("%s priority %d outside 0-100", s.Name(), s.Priority())
		}
	}
	if !seen["coulomb_force"] || !seen["first_law"] || !seen["ideal_gas"] {
		t.Error("default registry missing expected laws")
	}
}
