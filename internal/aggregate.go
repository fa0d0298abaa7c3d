package internal

import (
	"sort"
	"time"
)

// Aggregate folds raw records into one HistoryRow per calendar date.
//
// For each date group: TotalPauses is the record count minus one (N
// sessions on a date imply N-1 pause/resume boundaries), TotalDuration is
// the sum of durations, StartTime is the time of day of the earliest
// record, and EndTime is the time of day at which the latest-started
// session actually ended (its CreatedAt plus its own Duration). An end past
// midnight is truncated to the time-of-day component.
//
// The result is sorted by date ascending. An empty input yields nil.
func Aggregate(records []Record) []HistoryRow {
	if len(records) == 0 {
		return nil
	}

	groups := make(map[string][]Record)
	for _, r := range records {
		date := r.Date()
		groups[date] = append(groups[date], r)
	}

	rows := make([]HistoryRow, 0, len(groups))
	for date, group := range groups {
		first := group[0]
		last := group[0]
		var total int64
		for _, r := range group {
			total += r.Duration
			if r.CreatedAt < first.CreatedAt {
				first = r
			}
			if r.CreatedAt > last.CreatedAt {
				last = r
			}
		}

		rows = append(rows, HistoryRow{
			RecordDate:    date,
			TotalPauses:   len(group) - 1,
			TotalDuration: total,
			StartTime:     first.StartClock(),
			EndTime:       time.Unix(last.CreatedAt+last.Duration, 0).Format("15:04:05"),
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].RecordDate < rows[j].RecordDate
	})
	return rows
}
