package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/DanielPopoola/cxtrauma-orders/internal/core/domain"
	"github.com/DanielPopoola/cxtrauma-orders/internal/core/ports"
	"github.com/google/uuid"
)

// CartService keeps one cart per session. Every operation loads the
// session, applies the mutation to a domain.Cart and saves it back while
// holding mu, so concurrent requests never interleave on a session.
type CartService struct {
	mu        sync.Mutex
	sessions  ports.CartSessionStore
	catalog   ports.Catalog
	store     ports.RecordStore
	clock     ports.Clock
	metrics   ports.Metrics
	namespace string
	logger    *slog.Logger
}

func NewCartService(
	sessions ports.CartSessionStore,
	catalog ports.Catalog,
	store ports.RecordStore,
	clock ports.Clock,
	metrics ports.Metrics,
	namespace string,
	logger *slog.Logger,
) *CartService {
	return &CartService{
		sessions:  sessions,
		catalog:   catalog,
		store:     store,
		clock:     clock,
		metrics:   metrics,
		namespace: namespace,
		logger:    logger,
	}
}

// NewSession starts an empty cart and returns its id.
func (s *CartService) NewSession(ctx context.Context) (string, domain.CartSnapshot, error) {
	id := uuid.New().String()
	if err := s.sessions.Create(ctx, id); err != nil {
		return "", domain.CartSnapshot{}, fmt.Errorf("create cart session: %w", err)
	}
	return id, domain.NewCart(nil).Snapshot(), nil
}

func (s *CartService) Snapshot(ctx context.Context, sessionID string) (domain.CartSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.load(ctx, sessionID, "")
	if err != nil {
		return domain.CartSnapshot{}, err
	}
	return cart.Snapshot(), nil
}

// AddExam adds the catalog exam with the given id; adding an exam already in
// the cart changes nothing.
func (s *CartService) AddExam(ctx context.Context, sessionID, examID string) (domain.CartSnapshot, error) {
	exam, ok := s.catalog.Exam(examID)
	if !ok {
		return domain.CartSnapshot{}, domain.NewUnknownExamError(examID)
	}
	return s.mutate(ctx, sessionID, "add", func(c *domain.Cart) domain.CartSnapshot {
		return c.AddItem(exam)
	})
}

// RemoveExam drops an exam; unknown ids are ignored.
func (s *CartService) RemoveExam(ctx context.Context, sessionID, examID string) (domain.CartSnapshot, error) {
	return s.mutate(ctx, sessionID, "remove", func(c *domain.Cart) domain.CartSnapshot {
		return c.RemoveItem(examID)
	})
}

func (s *CartService) Clear(ctx context.Context, sessionID string) (domain.CartSnapshot, error) {
	return s.mutate(ctx, sessionID, "clear", func(c *domain.Cart) domain.CartSnapshot {
		return c.Clear()
	})
}

// Checkout records the selected exams as a pending exam order and empties
// the cart. An empty cart cannot be checked out.
func (s *CartService) Checkout(ctx context.Context, sessionID string) (*domain.ExamOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.load(ctx, sessionID, "checkout")
	if err != nil {
		return nil, err
	}
	if cart.IsEmpty() {
		return nil, domain.NewEmptyCartError()
	}

	now := s.clock.Now()
	order := domain.NewExamOrder(uuid.New().String(), cart.Snapshot(), now)

	record, err := domain.NewRecord(s.namespace, order.ID, order, now)
	if err != nil {
		return nil, fmt.Errorf("encode exam order: %w", err)
	}
	if err := s.store.Append(ctx, record); err != nil {
		return nil, fmt.Errorf("store exam order: %w", err)
	}

	cart.Clear()
	if err := s.sessions.Save(ctx, sessionID, cart.Items()); err != nil {
		return nil, fmt.Errorf("save cart session: %w", err)
	}

	s.metrics.ObserveCheckout(order.Total)

	codes := make([]string, 0, len(order.Exams))
	for _, exam := range order.Exams {
		codes = append(codes, exam.Code)
	}
	s.logger.Info("exam order requested",
		"order_id", order.ID,
		"session_id", sessionID,
		"exams", codes,
		"count", len(order.Exams),
		"total", domain.FormatPrice(order.Total),
		"timestamp", order.Timestamp,
	)

	return order, nil
}

func (s *CartService) mutate(
	ctx context.Context,
	sessionID, op string,
	fn func(*domain.Cart) domain.CartSnapshot,
) (domain.CartSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.load(ctx, sessionID, op)
	if err != nil {
		return domain.CartSnapshot{}, err
	}

	snapshot := fn(cart)
	if err := s.sessions.Save(ctx, sessionID, snapshot.Items); err != nil {
		return domain.CartSnapshot{}, fmt.Errorf("save cart session: %w", err)
	}
	return snapshot, nil
}

// load restores the session's cart. op, when set, is reported to metrics on
// every change notification.
func (s *CartService) load(ctx context.Context, sessionID, op string) (*domain.Cart, error) {
	items, err := s.sessions.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	var onChange func(domain.CartSnapshot)
	if op != "" {
		onChange = func(snap domain.CartSnapshot) {
			s.metrics.ObserveCartMutation(op, snap.Count)
		}
	}
	return domain.RestoreCart(items, onChange), nil
}
