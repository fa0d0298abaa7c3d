package export

import (
	"io"

	"gopkg.in/yaml.v3"

	"time-commander/internal"
)

// YAMLExporter writes the history as a YAML document.
type YAMLExporter struct{}

// Export writes rows as YAML
func (e *YAMLExporter) Export(rows []internal.HistoryRow, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(rows)
}

// Extension returns the file extension
func (e *YAMLExporter) Extension() string {
	return "yaml"
}
