package export

import (
	"fmt"
	"io"
	"os"

	"time-commander/internal"
)

// Exporter defines the interface for all export formats
type Exporter interface {
	Export(rows []internal.HistoryRow, w io.Writer) error
	Extension() string
}

// NewExporter creates a new exporter based on format
func NewExporter(format string) (Exporter, error) {
	switch format {
	case "csv":
		return &CSVExporter{}, nil
	case "json":
		return &JSONExporter{}, nil
	case "yaml", "yml":
		return &YAMLExporter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (supported: csv, json, yaml)", format)
	}
}

// WriteFile renders rows to path in the given format. Failures wrap as
// *internal.ExportError and propagate; they affect only the export itself.
func WriteFile(format, path string, rows []internal.HistoryRow) error {
	exp, err := NewExporter(format)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return &internal.ExportError{Format: format, Path: path, Err: err}
	}
	if err := exp.Export(rows, f); err != nil {
		f.Close()
		return &internal.ExportError{Format: format, Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &internal.ExportError{Format: format, Path: path, Err: err}
	}
	return nil
}
