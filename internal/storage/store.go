package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/gemini001100/Aeroforge-Ultra-Range-Electric-Aviation/internal/flight"
	"github.com/gemini001100/Aeroforge-Ultra-Range-Electric-Aviation/internal/montecarlo"
)

// Store is a directory of analysis runs, one subdirectory per run with
// metadata.json and results.csv.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// RunMetadata describes one stored analysis.
type RunMetadata struct {
	ID        string                 `json:"id"`
	Timestamp time.Time              `json:"timestamp"`
	Runs      int                    `json:"runs"`
	Seed      int64                  `json:"seed"`
	Evaluator string                 `json:"evaluator"`
	Nominal   flight.ParameterVector `json:"nominal"`
	Summary   montecarlo.Summary     `json:"summary"`
}

// resultColumns is the results.csv header: run index, the sampled
// uncertain fields, then the outcome.
var resultColumns = []string{
	"run",
	flight.FieldEta,
	flight.FieldPackDens,
	flight.FieldLiftDrag,
	flight.FieldHarvest,
	flight.FieldSicGain,
	"range_km",
}

// Save persists one analysis and returns its run ID.
func (s *Store) Save(seed int64, evaluator string, nominal flight.ParameterVector, res *montecarlo.Result) (string, error) {
	runID := fmt.Sprintf("mc_%s_%s", time.Now().Format("20060102_150405"), uuid.NewString()[:8])
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Timestamp: time.Now(),
		Runs:      len(res.Ensemble),
		Seed:      seed,
		Evaluator: evaluator,
		Nominal:   nominal,
		Summary:   res.Summary,
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

	csvFile, err := os.Create(filepath.Join(runDir, "results.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	if err := WriteResultsCSV(csvFile, res.Ensemble); err != nil {
		return "", err
	}

	return runID, nil
}

// WriteResultsCSV writes the ensemble table, one row per run.
func WriteResultsCSV(out io.Writer, ensemble montecarlo.Ensemble) error {
	w := csv.NewWriter(out)
	defer w.Flush()

	if err := w.Write(resultColumns); err != nil {
		return err
	}

	for _, r := range ensemble {
		row := []string{strconv.Itoa(r.Index)}
		for _, name := range resultColumns[1 : len(resultColumns)-1] {
			v, err := r.Params.Field(name)
			if err != nil {
				return err
			}
			row = append(row, strconv.FormatFloat(v, 'f', 6, 64))
		}
		row = append(row, strconv.FormatFloat(r.RangeKm, 'f', 6, 64))
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

// List returns metadata for every stored run.
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

// Load reads the metadata of one run.
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

// LoadEnsemble reconstructs the ensemble of a stored run. Fixed fields
// come from the stored nominal vector, sampled fields from the table.
func (s *Store) LoadEnsemble(runID string) (montecarlo.Ensemble, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(filepath.Join(s.baseDir, runID, "results.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 1 {
		return montecarlo.Ensemble{}, nil
	}

	header := records[0]
	ensemble := make(montecarlo.Ensemble, 0, len(records)-1)

	for _, record := range records[1:] {
		if len(record) != len(header) {
			return nil, fmt.Errorf("storage: malformed row in %s/results.csv", runID)
		}

		run := montecarlo.Run{Params: meta.Nominal}
		for col, cell := range record {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("storage: parse %s: %w", header[col], err)
			}
			switch header[col] {
			case "run":
				run.Index = int(v)
			case "range_km":
				run.RangeKm = v
			default:
				if err := run.Params.SetField(header[col], v); err != nil {
					return nil, err
				}
			}
		}
		ensemble = append(ensemble, run)
	}

	return ensemble, nil
}
