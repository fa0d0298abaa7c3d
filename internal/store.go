package internal

import (
	"database/sql"
)

// RecordStore is the persistence boundary for raw timer records.
type RecordStore interface {
	// Insert persists a record and assigns its ID.
	Insert(r *Record) error
	// Delete removes a record by identifier.
	Delete(id int64) error
	// QueryAll returns every persisted record, order unspecified.
	QueryAll() ([]Record, error)
}

// SQLiteStore implements RecordStore over a sqlite database handle. The
// handle is exclusively owned by the process for its lifetime and accessed
// from a single goroutine.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore wraps an open database. Run Migrate on the handle first.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Insert persists a record; the store assigns the identifier.
func (s *SQLiteStore) Insert(r *Record) error {
	res, err := s.db.Exec(
		"INSERT INTO record (created_at, duration) VALUES (?, ?)",
		r.CreatedAt, r.Duration,
	)
	if err != nil {
		return &StoreError{Op: "insert", Err: err}
	}
	if id, err := res.LastInsertId(); err == nil {
		r.ID = id
	}
	return nil
}

// Delete removes a record by id. The timer flow never deletes; this exists
// for manual corrections.
func (s *SQLiteStore) Delete(id int64) error {
	if _, err := s.db.Exec("DELETE FROM record WHERE id = ?", id); err != nil {
		return &StoreError{Op: "delete", Err: err}
	}
	return nil
}

// QueryAll returns every persisted record. A row that fails to decode fails
// the whole read; callers degrade to an empty history rather than showing
// partial aggregates.
func (s *SQLiteStore) QueryAll() ([]Record, error) {
	rows, err := s.db.Query("SELECT id, created_at, duration FROM record")
	if err != nil {
		return nil, &StoreError{Op: "query", Err: err}
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.ID, &r.CreatedAt, &r.Duration); err != nil {
			return nil, &StoreError{Op: "scan", Err: err}
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, &StoreError{Op: "query", Err: err}
	}
	return records, nil
}
