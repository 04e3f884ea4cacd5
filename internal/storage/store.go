// Package storage persists simulation runs as flat files: one
// directory per run with a metadata.json summary and a series.csv of
// the full trajectory.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/love-os-architect/Love-OS-The-Physics-of-Relationships/internal/circuit"
	"github.com/love-os-architect/Love-OS-The-Physics-of-Relationships/internal/drive"
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
	Scenario  string             `json:"scenario"`
	Timestamp time.Time          `json:"timestamp"`
	Dt        float64            `json:"dt"`
	Duration  float64            `json:"duration"`
	Metrics   map[string]float64 `json:"metrics"`
}

// columns is the fixed series.csv layout after the time column.
var columns = []string{
	"voltage", "resistance", "current", "charge", "didt",
	"p_in", "p_r", "e_l", "e_c", "eta",
}

// SeriesData is a loaded series.csv, columns aligned with Names.
type SeriesData struct {
	Times   []float64
	Names   []string
	Columns [][]float64
}

func (s *Store) Save(scenario string, dt, duration float64, metrics map[string]float64, drv drive.Series, res *circuit.Result) (string, error) {
	runID := fmt.Sprintf("%s_%d", scenario, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Scenario:  scenario,
		Timestamp: time.Now(),
		Dt:        dt,
		Duration:  duration,
		Metrics:   metrics,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "series.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	header := append([]string{"time"}, columns...)
	if err := w.Write(header); err != nil {
		return "", err
	}

	cols := [][]float64{
		drv.Voltage, drv.Resistance, res.Current, res.Charge,
		res.CurrentRate, res.PowerIn, res.PowerLoss,
		res.EnergyL, res.EnergyC, res.Efficiency,
	}

	for i := range res.Times {
		row := make([]string, 0, len(header))
		row = append(row, strconv.FormatFloat(res.Times[i], 'f', 6, 64))
		for _, col := range cols {
			row = append(row, strconv.FormatFloat(col[i], 'f', 6, 64))
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

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

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}

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

func (s *Store) LoadSeries(runID string) (*SeriesData, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "series.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return &SeriesData{}, nil
	}

	names := records[0][1:]
	data := &SeriesData{
		Times:   make([]float64, 0, len(records)-1),
		Names:   names,
		Columns: make([][]float64, len(names)),
	}
	for j := range data.Columns {
		data.Columns[j] = make([]float64, 0, len(records)-1)
	}

	for _, record := range records[1:] {
		if len(record) != len(names)+1 {
			continue
		}
		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		data.Times = append(data.Times, t)
		for j := 0; j < len(names); j++ {
			val, err := strconv.ParseFloat(record[j+1], 64)
			if err != nil {
				val = 0
			}
			data.Columns[j] = append(data.Columns[j], val)
		}
	}

	return data, nil
}

// Column returns the named series, nil if absent.
func (d *SeriesData) Column(name string) []float64 {
	for j, n := range d.Names {
		if n == name {
			return d.Columns[j]
		}
	}
	return nil
}
