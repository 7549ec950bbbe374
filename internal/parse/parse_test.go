package parse

import (
	"testing"
)

func TestAssignments(t *testing.T) {
	s, err := Assignments("Q=100, W=40")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if q, _ := s.Get("Q"); q != 100 {
		t.Errorf("Q = %v, want 100", q)
	}
	if w, _ := s.Get("W"); w != 40 {
		t.Errorf("W = %v, want 40", w)
	}
}

func TestAssignmentsUnicodeSymbol(t *testing.T) {
	s, err := Assignments("ΔU=60; W=40")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if du, ok := s.Get("ΔU"); !ok || du != 60 {
		t.Errorf("ΔU = %v (%v), want 60", du, ok)
	}
}

func TestAssignmentsScientificNotation(t *testing.T) {
	s, err := Assignments("q=1e-6, r=0.5")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if q, _ := s.Get("q"); q != 1e-6 {
		t.Errorf("q = %v, want 1e-6", q)
	}
}

func TestAssignmentsWhitespaceTolerance(t *testing.T) {
	s, err := Assignments("  P = 101325 ,V=0.5,  T =300 ")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if s.Len() != 3 {
		t.Errorf("expected 3 assignments, got %d", s.Len())
	}
}

func TestAssignmentsErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"no equals", "Q 100"},
		{"bad number", "Q=abc"},
		{"missing symbol", "=100"},
		{"nan", "Q=NaN"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Assignments(tt.input); err == nil {
				t.Errorf("Assignments(%q) expected error", tt.input)
			}
		})
	}
}
