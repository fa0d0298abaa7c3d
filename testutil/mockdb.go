package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"
)

// CreateRecordDB creates an in-memory SQLite database with the record
// table for testing
func CreateRecordDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create in-memory database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	createTableSQL := `
	CREATE TABLE IF NOT EXISTS record (
		id INTEGER PRIMARY KEY,
		created_at INTEGER NOT NULL,
		duration INTEGER NOT NULL
	)`
	if _, err := db.Exec(createTableSQL); err != nil {
		db.Close()
		t.Fatalf("Failed to create record table: %v", err)
	}

	return db
}

// SeedRecords inserts (created_at, duration) pairs into the record table
func SeedRecords(t *testing.T, db *sql.DB, records [][2]int64) {
	t.Helper()
	for _, r := range records {
		if _, err := db.Exec(
			"INSERT INTO record (created_at, duration) VALUES (?, ?)",
			r[0], r[1],
		); err != nil {
			t.Fatalf("Failed to seed record: %v", err)
		}
	}
}
