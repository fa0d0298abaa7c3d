package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"time-commander/internal"
)

// CSVExporter writes the history in the flat delimited layout consumed by
// spreadsheet imports: a Date,Start,End,Total,Pauses header and one row per
// day, with the total rendered as HH:MM:SS.
type CSVExporter struct{}

// Export writes rows as CSV
func (e *CSVExporter) Export(rows []internal.HistoryRow, w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"Date", "Start", "End", "Total", "Pauses"}); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{
			row.RecordDate,
			row.StartTime,
			row.EndTime,
			internal.FormatDuration(row.TotalDuration),
			strconv.Itoa(row.TotalPauses),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// Extension returns the file extension
func (e *CSVExporter) Extension() string {
	return "csv"
}
