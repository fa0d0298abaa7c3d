package internal

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// OpenDatabase opens the sqlite database at path, creating the file if it
// does not exist.
func OpenDatabase(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	return db, nil
}

// Migrate creates the record table if it does not already exist. Safe to
// run on every startup.
func Migrate(db *sql.DB) error {
	const ddl = `
	CREATE TABLE IF NOT EXISTS record (
		id INTEGER PRIMARY KEY,
		created_at INTEGER NOT NULL,
		duration INTEGER NOT NULL
	)`
	if _, err := db.Exec(ddl); err != nil {
		return &StoreError{Op: "migrate", Err: err}
	}
	LogDebug("record table ready")
	return nil
}
