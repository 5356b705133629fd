package postgres

import (
	"context"
	"fmt"
)

// schema is applied on startup; every statement is idempotent.
const schema = `
CREATE TABLE IF NOT EXISTS records (
    seq        BIGSERIAL PRIMARY KEY,
    namespace  TEXT        NOT NULL,
    id         TEXT        NOT NULL,
    payload    JSONB       NOT NULL,
    created_at TIMESTAMPTZ NOT NULL,
    UNIQUE (namespace, id)
);

CREATE INDEX IF NOT EXISTS idx_records_namespace ON records (namespace, seq);
`

// Migrate creates the tables the record store needs.
func (db *DB) Migrate(ctx context.Context) error {
	if _, err := db.Pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("execute migration: %w", err)
	}
	return nil
}
