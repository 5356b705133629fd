package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DanielPopoola/cxtrauma-orders/internal/core/domain"
	"github.com/DanielPopoola/cxtrauma-orders/internal/core/ports"
	"github.com/google/uuid"
)

// SubmissionService validates an intake form and, once it passes, waits out
// the simulated latency and appends the resulting request to the store.
type SubmissionService struct {
	validator *FormValidator
	catalog   ports.Catalog
	store     ports.RecordStore
	delay     ports.Delayer
	clock     ports.Clock
	metrics   ports.Metrics
	namespace string
	logger    *slog.Logger
}

func NewSubmissionService(
	validator *FormValidator,
	catalog ports.Catalog,
	store ports.RecordStore,
	delay ports.Delayer,
	clock ports.Clock,
	metrics ports.Metrics,
	namespace string,
	logger *slog.Logger,
) *SubmissionService {
	return &SubmissionService{
		validator: validator,
		catalog:   catalog,
		store:     store,
		delay:     delay,
		clock:     clock,
		metrics:   metrics,
		namespace: namespace,
		logger:    logger,
	}
}

// Validate runs the batch validator, including the catalog lookup of the center.
func (s *SubmissionService) Validate(form domain.FormValues) domain.ValidationReport {
	report := s.validator.Validate(form)
	if res, ok := report.Result(domain.FieldCenter); ok && res.Valid {
		if _, found := s.catalog.Center(form.CenterID); !found {
			report.Invalidate(domain.FieldCenter, UnknownCenterMessage)
		}
	}
	return report
}

// Submit returns a *domain.ValidationError when any field fails. Nothing is
// stored in that case.
func (s *SubmissionService) Submit(ctx context.Context, form domain.FormValues) (*domain.OrderRequest, error) {
	form = form.Trimmed()

	report := s.Validate(form)
	if !report.Valid() {
		s.metrics.ObserveSubmission(false)
		s.logger.Info("submission rejected", "invalid_fields", len(report.Failures()))
		return nil, domain.NewValidationError(report)
	}

	if err := s.delay.Wait(ctx); err != nil {
		return nil, fmt.Errorf("submission interrupted: %w", err)
	}

	center, _ := s.catalog.Center(form.CenterID)
	now := s.clock.Now()
	request := domain.NewOrderRequest(uuid.New().String(), form, center, now)

	record, err := domain.NewRecord(s.namespace, request.ID, request, now)
	if err != nil {
		return nil, fmt.Errorf("encode order request: %w", err)
	}
	if err := s.store.Append(ctx, record); err != nil {
		return nil, fmt.Errorf("store order request: %w", err)
	}

	s.metrics.ObserveSubmission(true)
	s.logger.Info("new imaging order request",
		"request_id", request.ID,
		"patient", request.FullName,
		"identity_number", request.IdentityNumber,
		"phone", request.Phone,
		"email", request.Email,
		"center", request.CenterName,
		"location", request.CenterLocation,
		"doctor", request.DoctorName,
		"timestamp", request.Timestamp,
		"status", request.Status,
	)

	return request, nil
}
