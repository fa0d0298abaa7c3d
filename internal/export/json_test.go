package export

import (
	"bytes"
	"encoding/json"
	"testing"

	"time-commander/internal"
)

func TestJSONExporter(t *testing.T) {
	var buf bytes.Buffer
	if err := (&JSONExporter{}).Export(sampleRows, &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	var decoded []internal.HistoryRow
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("re-parsing export failed: %v", err)
	}
	if len(decoded) != len(sampleRows) {
		t.Fatalf("decoded %d rows, want %d", len(decoded), len(sampleRows))
	}
	for i, row := range sampleRows {
		if decoded[i] != row {
			t.Errorf("row %d = %+v, want %+v", i, decoded[i], row)
		}
	}
}

func TestJSONExporterEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := (&JSONExporter{}).Export(nil, &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if got := bytes.TrimSpace(buf.Bytes()); string(got) != "[]" {
		t.Errorf("empty export = %q, want []", got)
	}
}
