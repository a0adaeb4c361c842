package storage

import (
	"encoding/json"
	"io"

	"github.com/gemini001100/Aeroforge-Ultra-Range-Electric-Aviation/internal/montecarlo"
)

// ExportData is the JSON export shape of one stored run.
type ExportData struct {
	Meta     RunMetadata         `json:"meta"`
	Ensemble montecarlo.Ensemble `json:"ensemble"`
}

// ExportJSON writes a full run (metadata plus ensemble) as indented JSON.
func ExportJSON(out io.Writer, meta RunMetadata, ensemble montecarlo.Ensemble) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(ExportData{Meta: meta, Ensemble: ensemble})
}
