package service

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/DanielPopoola/cxtrauma-orders/internal/core/domain"
)

// MockRecordStore
type MockRecordStore struct {
	mu      sync.Mutex
	records []domain.Record

	AppendFn func(ctx context.Context, record domain.Record) error
}

func NewMockRecordStore() *MockRecordStore {
	return &MockRecordStore{}
}

func (m *MockRecordStore) Append(ctx context.Context, record domain.Record) error {
	if m.AppendFn != nil {
		return m.AppendFn(ctx, record)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, record)
	return nil
}

func (m *MockRecordStore) List(ctx context.Context, namespace string) ([]domain.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Record
	for _, r := range m.records {
		if r.Namespace == namespace {
			out = append(out, r)
		}
	}
	return out, nil
}

// MockSessionStore
type MockSessionStore struct {
	mu       sync.Mutex
	sessions map[string][]domain.Exam

	SaveFn func(ctx context.Context, sessionID string, items []domain.Exam) error
}

func NewMockSessionStore() *MockSessionStore {
	return &MockSessionStore{sessions: make(map[string][]domain.Exam)}
}

func (m *MockSessionStore) Create(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[sessionID] = []domain.Exam{}
	return nil
}

func (m *MockSessionStore) Load(ctx context.Context, sessionID string) ([]domain.Exam, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	items, ok := m.sessions[sessionID]
	if !ok {
		return nil, domain.NewCartNotFoundError(sessionID)
	}
	return append([]domain.Exam{}, items...), nil
}

func (m *MockSessionStore) Save(ctx context.Context, sessionID string, items []domain.Exam) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, sessionID, items)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[sessionID]; !ok {
		return domain.NewCartNotFoundError(sessionID)
	}
	m.sessions[sessionID] = append([]domain.Exam{}, items...)
	return nil
}

// MockMetrics
type MockMetrics struct {
	mu        sync.Mutex
	Accepted  int
	Rejected  int
	Mutations map[string]int
	Checkouts []int64
}

func NewMockMetrics() *MockMetrics {
	return &MockMetrics{Mutations: make(map[string]int)}
}

func (m *MockMetrics) ObserveSubmission(accepted bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if accepted {
		m.Accepted++
	} else {
		m.Rejected++
	}
}

func (m *MockMetrics) ObserveCartMutation(op string, count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Mutations[op]++
}

func (m *MockMetrics) ObserveCheckout(total int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Checkouts = append(m.Checkouts, total)
}

// MockDelayer counts waits and returns Err.
type MockDelayer struct {
	Calls int
	Err   error
}

func (m *MockDelayer) Wait(ctx context.Context) error {
	m.Calls++
	if m.Err != nil {
		return m.Err
	}
	return ctx.Err()
}

type fixedClock time.Time

func (c fixedClock) Now() time.Time { return time.Time(c) }

var testTime = time.Date(2025, 1, 20, 14, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func validForm() domain.FormValues {
	return domain.FormValues{
		FullName:       "María José González",
		IdentityNumber: "12.345.678-5",
		Phone:          "+56 9 1234 5678",
		Email:          "maria@example.cl",
		CenterID:       "hospital-quillota",
	}
}
