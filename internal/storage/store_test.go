package storage

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/physica/internal/dispatch"
	"github.com/san-kum/physica/internal/regime"
	"github.com/san-kum/physica/internal/registry"
	"github.com/san-kum/physica/internal/vars"
)

func solvedOutcome(t *testing.T) (map[string]float64, dispatch.Outcome) {
	t.Helper()
	input := map[string]float64{"Q": 100, "W": 40}
	v, err := vars.FromMap(input)
	if err != nil {
		t.Fatalf("building store: %v", err)
	}
	out := dispatch.New(registry.Default()).Dispatch(v)
	if out.Status != dispatch.Solved {
		t.Fatalf("expected solved outcome, got %v: %s", out.Status, out.Reason)
	}
	return input, out
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	input, out := solvedOutcome(t)

	id, err := st.Save(input, out)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if id == "" {
		t.Error("expected non-empty record id")
	}

	rec, err := st.Load(id)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if rec.Solver != "first_law" {
		t.Errorf("solver = %s, want first_law", rec.Solver)
	}
	if rec.Values["ΔU"] != 60 {
		t.Errorf("ΔU = %v, want 60", rec.Values["ΔU"])
	}
	if rec.Input["Q"] != 100 {
		t.Errorf("input Q = %v, want 100", rec.Input["Q"])
	}
	if rec.Regime != regime.Classical.String() {
		t.Errorf("regime = %s, want classical", rec.Regime)
	}
}

func TestStoreList(t *testing.T) {
	st := New(t.TempDir())
	input, out := solvedOutcome(t)

	if _, err := st.Save(input, out); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if _, err := st.Save(input, out); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	records, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("expected 2 records, got %d", len(records))
	}
}

func TestStoreListEmptyDir(t *testing.T) {
	st := New(filepath.Join(t.TempDir(), "never-created"))
	records, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected no records, got %d", len(records))
	}
}

func TestExportCSV(t *testing.T) {
	st := New(t.TempDir())
	input, out := solvedOutcome(t)

	id, err := st.Save(input, out)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	csvPath := filepath.Join(t.TempDir(), "out.csv")
	if err := st.ExportCSV(id, csvPath); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	f, err := os.Open(csvPath)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	// header + Q, W, ΔU
	if len(rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(rows))
	}
	origins := map[string]string{}
	for _, row := range rows[1:] {
		origins[row[0]] = row[2]
	}
	if origins["ΔU"] != "derived" {
		t.Errorf("ΔU origin = %s, want derived", origins["ΔU"])
	}
	if origins["Q"] != "input" {
		t.Errorf("Q origin = %s, want input", origins["Q"])
	}
}
