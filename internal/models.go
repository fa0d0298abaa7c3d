package internal

import (
	"fmt"
	"time"
)

// Record represents a single completed timer interval. CreatedAt marks
// when the timer started (not when it stopped) and is stored as local
// epoch seconds so records group by calendar date without string parsing.
type Record struct {
	ID        int64
	CreatedAt int64
	Duration  int64
}

// NewRecord creates an unpersisted record; the store assigns ID on insert.
func NewRecord(createdAt, duration int64) Record {
	return Record{
		CreatedAt: createdAt,
		Duration:  duration,
	}
}

// Date returns the local calendar date (YYYY-MM-DD) the record belongs to.
func (r Record) Date() string {
	return time.Unix(r.CreatedAt, 0).Format("2006-01-02")
}

// StartClock returns the time of day (HH:MM:SS) the record's session began.
func (r Record) StartClock() string {
	return time.Unix(r.CreatedAt, 0).Format("15:04:05")
}

// HistoryRow is the per-date aggregate of all records sharing a calendar
// date. Rows are derived data: recomputed from the full record set on every
// refresh, never persisted or patched in place.
type HistoryRow struct {
	RecordDate    string `json:"record_date" yaml:"record_date"`
	TotalPauses   int    `json:"total_pauses" yaml:"total_pauses"`
	TotalDuration int64  `json:"total_duration" yaml:"total_duration"`
	StartTime     string `json:"start_time" yaml:"start_time"`
	EndTime       string `json:"end_time" yaml:"end_time"`
}

// FormatDuration renders a second count as zero-padded HH:MM:SS. The hour
// field is not wrapped at 24, so multi-day totals stay readable.
func FormatDuration(seconds int64) string {
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
}
