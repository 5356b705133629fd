// Package sqlite provides a file-backed record store on SQLite.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/DanielPopoola/cxtrauma-orders/internal/core/domain"
	"github.com/DanielPopoola/cxtrauma-orders/internal/core/ports"
)

var _ ports.RecordStore = (*RecordStore)(nil)

const schema = `
CREATE TABLE IF NOT EXISTS records (
    seq        INTEGER PRIMARY KEY AUTOINCREMENT,
    namespace  TEXT    NOT NULL,
    id         TEXT    NOT NULL,
    payload    TEXT    NOT NULL,
    created_at TEXT    NOT NULL,
    UNIQUE (namespace, id)
);

CREATE INDEX IF NOT EXISTS idx_records_namespace ON records(namespace, seq);
`

type RecordStore struct {
	db *sql.DB
}

// New opens (creating if needed) the database at dbPath and applies the schema.
func New(dbPath string) (*RecordStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// SQLite allows a single writer.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &RecordStore{db: db}, nil
}

func (s *RecordStore) Close() error {
	return s.db.Close()
}

func (s *RecordStore) Append(ctx context.Context, record domain.Record) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO records (namespace, id, payload, created_at) VALUES (?, ?, ?, ?)",
		record.Namespace, record.ID, string(record.Payload), record.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("failed to append record: %w", err)
	}
	return nil
}

func (s *RecordStore) List(ctx context.Context, namespace string) ([]domain.Record, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT namespace, id, payload, created_at FROM records WHERE namespace = ? ORDER BY seq",
		namespace,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	defer rows.Close()

	records := []domain.Record{}
	for rows.Next() {
		var (
			rec       domain.Record
			payload   string
			createdAt string
		)
		if err := rows.Scan(&rec.Namespace, &rec.ID, &payload, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		rec.Payload = []byte(payload)
		rec.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse record time: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate records: %w", err)
	}

	return records, nil
}
