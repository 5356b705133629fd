package postgres

import (
	"context"
	"fmt"

	"github.com/DanielPopoola/cxtrauma-orders/internal/core/domain"
	"github.com/DanielPopoola/cxtrauma-orders/internal/core/ports"
)

var _ ports.RecordStore = (*RecordStore)(nil)

// RecordStore appends records to the records table. Rows are never updated.
type RecordStore struct {
	db *DB
}

func NewRecordStore(db *DB) *RecordStore {
	return &RecordStore{db: db}
}

func (r *RecordStore) Append(ctx context.Context, record domain.Record) error {
	query := `
		INSERT INTO records (namespace, id, payload, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Pool.Exec(ctx, query,
		record.Namespace,
		record.ID,
		[]byte(record.Payload),
		record.CreatedAt,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			return fmt.Errorf("record %s/%s already exists: %w", record.Namespace, record.ID, err)
		}
		return fmt.Errorf("failed to append record: %w", err)
	}

	return nil
}

// List returns the records of a namespace in insertion order.
func (r *RecordStore) List(ctx context.Context, namespace string) ([]domain.Record, error) {
	query := `
		SELECT namespace, id, payload, created_at
		FROM records
		WHERE namespace = $1
		ORDER BY seq
	`

	rows, err := r.db.Pool.Query(ctx, query, namespace)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	defer rows.Close()

	records := []domain.Record{}
	for rows.Next() {
		var (
			rec     domain.Record
			payload []byte
		)
		if err := rows.Scan(&rec.Namespace, &rec.ID, &payload, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		rec.Payload = payload
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate records: %w", err)
	}

	return records, nil
}
