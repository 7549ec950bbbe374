package solver

import (
	"errors"
	"testing"

	"github.com/san-kum/physica/internal/vars"
)

func TestLookupFirstAliasWins(t *testing.T) {
	v := vars.New()
	v.Set("heat", 50)
	v.Set("Q", 100)
	got, ok := Lookup(v, "Q", "q", "heat")
	if !ok || got != 100 {
		t.Errorf("Lookup = %v (%v), want 100", got, ok)
	}
}

func TestLookupMiss(t *testing.T) {
	v := vars.New()
	if _, ok := Lookup(v, "Q", "q"); ok {
		t.Error("expected miss on empty store")
	}
}

func TestKnownGroups(t *testing.T) {
	v := vars.New()
	v.Set("Q", 100)
	v.Set("w", 40)
	groups := [][]string{
		{"Q", "q", "heat"},
		{"W", "w", "work"},
		{"ΔU", "dU", "deltaU"},
	}
	if got := KnownGroups(v, groups...); got != 2 {
		t.Errorf("KnownGroups = %d, want 2", got)
	}
}

func TestPresentGroups(t *testing.T) {
	names := []string{"P", "V", "T"}
	groups := [][]string{{"P"}, {"V"}, {"n"}, {"T"}}
	if got := PresentGroups(names, groups...); got != 3 {
		t.Errorf("PresentGroups = %d, want 3", got)
	}
}

func TestComputeErrorsWrapRoot(t *testing.T) {
	if !errors.Is(ErrDivisionByZero, ErrCompute) {
		t.Error("ErrDivisionByZero must wrap ErrCompute")
	}
	if !errors.Is(ErrDomain, ErrCompute) {
		t.Error("ErrDomain must wrap ErrCompute")
	}
}
