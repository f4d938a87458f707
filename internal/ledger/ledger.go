// Package ledger persists a record of key ceremony runs in a SQLite
// database kept alongside the election record files. The ledger is an
// audit aid: it never stores key material, only identifiers and hashes.
package ledger

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS ceremony_runs (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    election_scope_id TEXT NOT NULL,
    guardian_count INTEGER NOT NULL,
    quorum INTEGER NOT NULL,
    joint_key_hash TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL
);`

// Store is a handle to the ceremony ledger database.
type Store struct {
	db *sql.DB
}

// Record is one completed ceremony run.
type Record struct {
	ElectionScopeID string
	GuardianCount   int
	Quorum          int
	JointKeyHash    string
	CreatedAt       time.Time
}

// Open opens (creating if necessary) the ledger database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open ceremony ledger %q: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize ceremony ledger: %w", err)
	}
	return &Store{db: db}, nil
}

// RecordRun appends a ceremony run to the ledger.
func (s *Store) RecordRun(ctx context.Context, rec Record) error {
	createdAt := rec.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO ceremony_runs (election_scope_id, guardian_count, quorum, joint_key_hash, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		rec.ElectionScopeID, rec.GuardianCount, rec.Quorum, rec.JointKeyHash, createdAt)
	if err != nil {
		return fmt.Errorf("record ceremony run: %w", err)
	}
	return nil
}

// Runs returns all recorded ceremony runs, newest first.
func (s *Store) Runs(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT election_scope_id, guardian_count, quorum, joint_key_hash, created_at
		 FROM ceremony_runs ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("query ceremony runs: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.ElectionScopeID, &rec.GuardianCount, &rec.Quorum,
			&rec.JointKeyHash, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan ceremony run: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ceremony runs: %w", err)
	}
	return records, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
