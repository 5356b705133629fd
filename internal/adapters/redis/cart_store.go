package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/DanielPopoola/cxtrauma-orders/internal/core/domain"
	"github.com/DanielPopoola/cxtrauma-orders/internal/core/ports"
)

const keyPrefix = "cxtrauma:cart:"

var _ ports.CartSessionStore = (*CartSessionStore)(nil)

// CartSessionStore stores each session's exams as a JSON array under its own
// key. Every write refreshes the key's TTL.
type CartSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCartSessionStore(client *redis.Client, ttl time.Duration) *CartSessionStore {
	return &CartSessionStore{client: client, ttl: ttl}
}

func (s *CartSessionStore) Create(ctx context.Context, sessionID string) error {
	data, err := json.Marshal([]domain.Exam{})
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, key(sessionID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("create cart session: %w", err)
	}
	return nil
}

func (s *CartSessionStore) Load(ctx context.Context, sessionID string) ([]domain.Exam, error) {
	data, err := s.client.Get(ctx, key(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.NewCartNotFoundError(sessionID)
	}
	if err != nil {
		return nil, fmt.Errorf("load cart session: %w", err)
	}

	var items []domain.Exam
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode cart session: %w", err)
	}
	return items, nil
}

// Save overwrites an existing session only; an expired session is reported
// as not found.
func (s *CartSessionStore) Save(ctx context.Context, sessionID string, items []domain.Exam) error {
	if items == nil {
		items = []domain.Exam{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}

	err = s.client.SetArgs(ctx, key(sessionID), data, redis.SetArgs{Mode: "XX", TTL: s.ttl}).Err()
	if errors.Is(err, redis.Nil) {
		return domain.NewCartNotFoundError(sessionID)
	}
	if err != nil {
		return fmt.Errorf("save cart session: %w", err)
	}
	return nil
}

func key(sessionID string) string {
	return keyPrefix + sessionID
}
