// Package storage persists solve records under a data directory, one
// JSON file per record, with CSV export for spreadsheets.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/physica/internal/dispatch"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// Record is one archived dispatch outcome.
type Record struct {
	ID        string             `json:"id"`
	Timestamp time.Time          `json:"timestamp"`
	Status    string             `json:"status"`
	Solver    string             `json:"solver,omitempty"`
	Domain    string             `json:"domain,omitempty"`
	Regime    string             `json:"regime"`
	Substance string             `json:"substance"`
	Input     map[string]float64 `json:"input"`
	Values    map[string]float64 `json:"values,omitempty"`
	Reason    string             `json:"reason,omitempty"`
}

// Save archives one outcome. input is the store as the caller supplied
// it, before the solver appended derived entries.
func (s *Store) Save(input map[string]float64, out dispatch.Outcome) (string, error) {
	if err := s.Init(); err != nil {
		return "", err
	}

	rec := Record{
		ID:        fmt.Sprintf("%s_%d", out.Status, time.Now().UnixNano()),
		Timestamp: time.Now(),
		Status:    out.Status.String(),
		Solver:    out.Solver,
		Domain:    out.Domain,
		Regime:    out.Context.Regime.String(),
		Substance: out.Context.Substance.String(),
		Input:     input,
		Reason:    out.Reason,
	}
	if out.Values != nil {
		rec.Values = out.Values.Map()
	}

	path := filepath.Join(s.baseDir, rec.ID+".json")
	file, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rec); err != nil {
		return "", err
	}
	return rec.ID, nil
}

// List returns all records, oldest first.
func (s *Store) List() ([]Record, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Record{}, nil
		}
		return nil, err
	}

	records := make([]Record, 0)
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name()))
		if err != nil {
			continue
		}
		var rec Record
		if err := json.Unmarshal(data, &rec); err != nil {
			continue
		}
		records = append(records, rec)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Timestamp.Before(records[j].Timestamp)
	})
	return records, nil
}

// Load returns one record by id.
func (s *Store) Load(id string) (*Record, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, id+".json"))
	if err != nil {
		return nil, err
	}
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// ExportCSV writes one record's variables as symbol,value,origin rows.
func (s *Store) ExportCSV(id string, path string) error {
	rec, err := s.Load(id)
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	if err := w.Write([]string{"symbol", "value", "origin"}); err != nil {
		return err
	}

	syms := make([]string, 0, len(rec.Values))
	for sym := range rec.Values {
		syms = append(syms, sym)
	}
	sort.Strings(syms)

	for _, sym := range syms {
		origin := "derived"
		if _, ok := rec.Input[sym]; ok {
			origin = "input"
		}
		row := []string{sym, strconv.FormatFloat(rec.Values[sym], 'g', -1, 64), origin}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
