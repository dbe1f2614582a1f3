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

	"github.com/san-kum/odekit/internal/dynamo"
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

type RunMetadata struct {
	ID        string             `json:"id"`
	Problem   string             `json:"problem"`
	Method    string             `json:"method"`
	Timestamp time.Time          `json:"timestamp"`
	Span      dynamo.Span        `json:"span"`
	N         int                `json:"n,omitempty"`
	Tol       float64            `json:"tol,omitempty"`
	U0        []float64          `json:"u0"`
	Params    map[string]float64 `json:"params,omitempty"`
	Stats     dynamo.Stats       `json:"stats"`
	Points    int                `json:"points"`
}

// Save writes metadata.json and states.csv into a new run directory and returns the run id.
// ID, Timestamp and Points are filled in from the trajectory.
func (s *Store) Save(meta RunMetadata, tr *dynamo.Trajectory) (string, error) {
	now := time.Now()
	meta.ID = fmt.Sprintf("%s_%s_%d", meta.Problem, meta.Method, now.UnixNano())
	meta.Timestamp = now
	meta.Points = tr.Len()
	meta.Stats = tr.Stats

	runDir := filepath.Join(s.baseDir, meta.ID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	if err := writeJSON(filepath.Join(runDir, "metadata.json"), meta); err != nil {
		return "", err
	}
	if err := writeStates(filepath.Join(runDir, "states.csv"), tr); err != nil {
		return "", err
	}
	return meta.ID, nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeStates(path string, tr *dynamo.Trajectory) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)

	if tr.Len() > 0 {
		header := []string{"time"}
		for i := range tr.States[0] {
			header = append(header, fmt.Sprintf("u%d", i))
		}
		if err := w.Write(header); err != nil {
			return err
		}
	}

	for i, state := range tr.States {
		row := []string{strconv.FormatFloat(tr.Times[i], 'g', -1, 64)}
		for _, val := range state {
			row = append(row, strconv.FormatFloat(val, 'g', -1, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

// List returns the saved runs, oldest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadTrajectory reads states.csv back. Stats are taken from the metadata.
func (s *Store) LoadTrajectory(runID string) (*dynamo.Trajectory, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(filepath.Join(s.baseDir, runID, "states.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	tr := dynamo.NewTrajectory(len(records))
	tr.Stats = meta.Stats
	for i := 1; i < len(records); i++ {
		record := records[i]
		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			return nil, fmt.Errorf("states.csv line %d: %w", i+1, err)
		}
		state := make(dynamo.State, len(record)-1)
		for j := 1; j < len(record); j++ {
			state[j-1], err = strconv.ParseFloat(record[j], 64)
			if err != nil {
				return nil, fmt.Errorf("states.csv line %d: %w", i+1, err)
			}
		}
		tr.Append(t, state)
	}
	return tr, nil
}
