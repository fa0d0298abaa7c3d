package internal

import "time"

// CreateTestRecord builds an unpersisted record whose session started at
// the given local wall-clock instant.
func CreateTestRecord(year int, month time.Month, day, hour, min, sec int, duration int64) Record {
	created := time.Date(year, month, day, hour, min, sec, 0, time.Local)
	return Record{
		CreatedAt: created.Unix(),
		Duration:  duration,
	}
}

// CreateTestRecords builds one record per duration, all on the same date,
// spaced an hour apart starting at 09:00.
func CreateTestRecords(year int, month time.Month, day int, durations ...int64) []Record {
	records := make([]Record, 0, len(durations))
	for i, d := range durations {
		records = append(records, CreateTestRecord(year, month, day, 9+i, 0, 0, d))
	}
	return records
}
