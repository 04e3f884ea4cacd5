package storage

import (
	"encoding/json"
	"io"
)

type ExportData struct {
	ID       string               `json:"id"`
	Scenario string               `json:"scenario"`
	Dt       float64              `json:"dt"`
	Duration float64              `json:"duration"`
	Steps    int                  `json:"steps"`
	Metrics  map[string]float64   `json:"metrics"`
	Times    []float64            `json:"times"`
	Series   map[string][]float64 `json:"series"`
}

// ExportJSON writes a full run (metadata plus every series) as
// indented JSON.
func ExportJSON(w io.Writer, meta *RunMetadata, data *SeriesData) error {
	out := ExportData{
		ID:       meta.ID,
		Scenario: meta.Scenario,
		Dt:       meta.Dt,
		Duration: meta.Duration,
		Steps:    len(data.Times),
		Metrics:  meta.Metrics,
		Times:    data.Times,
		Series:   make(map[string][]float64, len(data.Names)),
	}
	for j, name := range data.Names {
		out.Series[name] = data.Columns[j]
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
