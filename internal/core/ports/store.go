package ports

import (
	"context"

	"github.com/DanielPopoola/cxtrauma-orders/internal/core/domain"
)

// RecordStore is an append-only store of JSON records grouped by namespace.
type RecordStore interface {
	Append(ctx context.Context, record domain.Record) error
	List(ctx context.Context, namespace string) ([]domain.Record, error)
}

// CartSessionStore keeps the entries of each cart session between requests.
// Load returns a CART_NOT_FOUND domain error for unknown sessions.
type CartSessionStore interface {
	Create(ctx context.Context, sessionID string) error
	Load(ctx context.Context, sessionID string) ([]domain.Exam, error)
	Save(ctx context.Context, sessionID string, items []domain.Exam) error
}
