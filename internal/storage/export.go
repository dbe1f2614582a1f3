package storage

import (
	"encoding/json"
	"io"

	"github.com/san-kum/odekit/internal/dynamo"
)

type ExportData struct {
	RunMetadata
	Times  []float64   `json:"times"`
	States [][]float64 `json:"states"`
}

// ExportJSON writes the run metadata together with the full trajectory.
func ExportJSON(w io.Writer, meta RunMetadata, tr *dynamo.Trajectory) error {
	data := ExportData{
		RunMetadata: meta,
		Times:       tr.Times,
		States:      make([][]float64, len(tr.States)),
	}
	for i, s := range tr.States {
		data.States[i] = s
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
