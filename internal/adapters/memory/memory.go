// Package memory keeps records and cart sessions in process memory.
package memory

import (
	"context"
	"sync"

	"github.com/DanielPopoola/cxtrauma-orders/internal/core/domain"
	"github.com/DanielPopoola/cxtrauma-orders/internal/core/ports"
)

var (
	_ ports.RecordStore      = (*RecordStore)(nil)
	_ ports.CartSessionStore = (*CartSessionStore)(nil)
)

type RecordStore struct {
	mu      sync.RWMutex
	records map[string][]domain.Record
}

func NewRecordStore() *RecordStore {
	return &RecordStore{records: make(map[string][]domain.Record)}
}

func (s *RecordStore) Append(ctx context.Context, record domain.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[record.Namespace] = append(s.records[record.Namespace], record)
	return nil
}

func (s *RecordStore) List(ctx context.Context, namespace string) ([]domain.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Record{}, s.records[namespace]...), nil
}

type CartSessionStore struct {
	mu       sync.RWMutex
	sessions map[string][]domain.Exam
}

func NewCartSessionStore() *CartSessionStore {
	return &CartSessionStore{sessions: make(map[string][]domain.Exam)}
}

func (s *CartSessionStore) Create(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = []domain.Exam{}
	return nil
}

func (s *CartSessionStore) Load(ctx context.Context, sessionID string) ([]domain.Exam, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items, ok := s.sessions[sessionID]
	if !ok {
		return nil, domain.NewCartNotFoundError(sessionID)
	}
	return append([]domain.Exam{}, items...), nil
}

func (s *CartSessionStore) Save(ctx context.Context, sessionID string, items []domain.Exam) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[sessionID]; !ok {
		return domain.NewCartNotFoundError(sessionID)
	}
	s.sessions[sessionID] = append([]domain.Exam{}, items...)
	return nil
}
