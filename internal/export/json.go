package export

import (
	"encoding/json"
	"io"

	"time-commander/internal"
)

// JSONExporter writes the history as an indented JSON array, keeping the
// duration as raw seconds for downstream tooling.
type JSONExporter struct{}

// Export writes rows as JSON
func (e *JSONExporter) Export(rows []internal.HistoryRow, w io.Writer) error {
	if rows == nil {
		rows = []internal.HistoryRow{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

// Extension returns the file extension
func (e *JSONExporter) Extension() string {
	return "json"
}
