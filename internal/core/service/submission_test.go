package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/DanielPopoola/cxtrauma-orders/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const requestsNamespace = "cxtrauma_requests"

type submissionFixture struct {
	service *SubmissionService
	store   *MockRecordStore
	delay   *MockDelayer
	metrics *MockMetrics
}

func newSubmissionFixture(t *testing.T) *submissionFixture {
	t.Helper()
	f := &submissionFixture{
		store:   NewMockRecordStore(),
		delay:   &MockDelayer{},
		metrics: NewMockMetrics(),
	}
	f.service = NewSubmissionService(
		newTestValidator(t),
		domain.DefaultCatalog(),
		f.store,
		f.delay,
		fixedClock(testTime),
		f.metrics,
		requestsNamespace,
		discardLogger(),
	)
	return f
}

func TestSubmissionService_Submit(t *testing.T) {
	t.Run("stores a pending request", func(t *testing.T) {
		f := newSubmissionFixture(t)
		form := validForm()
		form.IdentityNumber = " 123456785 "

		req, err := f.service.Submit(context.Background(), form)
		require.NoError(t, err)

		assert.NotEmpty(t, req.ID)
		assert.Equal(t, "12.345.678-5", req.IdentityNumber)
		assert.Equal(t, "Hospital Quillota", req.CenterName)
		assert.Equal(t, "Quillota", req.CenterLocation)
		assert.Equal(t, "Dr. Morales Castro", req.DoctorName)
		assert.Equal(t, domain.StatusPending, req.Status)
		assert.True(t, testTime.Equal(req.Timestamp))
		assert.Equal(t, 1, f.delay.Calls)
		assert.Equal(t, 1, f.metrics.Accepted)

		records, err := f.store.List(context.Background(), requestsNamespace)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, req.ID, records[0].ID)

		var stored domain.OrderRequest
		require.NoError(t, json.Unmarshal(records[0].Payload, &stored))
		assert.Equal(t, req.FullName, stored.FullName)
		assert.Equal(t, "hospital-quillota", stored.CenterID)
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		f := newSubmissionFixture(t)
		form := validForm()
		form.FullName = "  Ana Pérez  "
		form.Email = " ana@example.cl "

		req, err := f.service.Submit(context.Background(), form)
		require.NoError(t, err)
		assert.Equal(t, "Ana Pérez", req.FullName)
		assert.Equal(t, "ana@example.cl", req.Email)
	})

	t.Run("rejects invalid form without waiting or storing", func(t *testing.T) {
		f := newSubmissionFixture(t)
		form := validForm()
		form.FullName = "Al"
		form.Phone = "123"

		req, err := f.service.Submit(context.Background(), form)

		assert.Nil(t, req)
		require.Error(t, err)
		assert.True(t, domain.IsErrorCode(err, domain.ErrCodeValidationFailed))

		var validationErr *domain.ValidationError
		require.True(t, errors.As(err, &validationErr))
		assert.Len(t, validationErr.Report.Fields, len(domain.FormFields))
		assert.Len(t, validationErr.Report.Failures(), 2)

		assert.Zero(t, f.delay.Calls)
		assert.Equal(t, 1, f.metrics.Rejected)
		records, _ := f.store.List(context.Background(), requestsNamespace)
		assert.Empty(t, records)
	})

	t.Run("unknown center fails the center field", func(t *testing.T) {
		f := newSubmissionFixture(t)
		form := validForm()
		form.CenterID = "hospital-arica"

		_, err := f.service.Submit(context.Background(), form)

		var validationErr *domain.ValidationError
		require.True(t, errors.As(err, &validationErr))
		res, ok := validationErr.Report.Result(domain.FieldCenter)
		require.True(t, ok)
		assert.False(t, res.Valid)
		assert.Equal(t, UnknownCenterMessage, res.Message)
	})

	t.Run("cancelled wait stores nothing", func(t *testing.T) {
		f := newSubmissionFixture(t)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := f.service.Submit(ctx, validForm())

		assert.ErrorIs(t, err, context.Canceled)
		records, _ := f.store.List(context.Background(), requestsNamespace)
		assert.Empty(t, records)
		assert.Zero(t, f.metrics.Accepted)
	})

	t.Run("store failure is returned", func(t *testing.T) {
		f := newSubmissionFixture(t)
		f.store.AppendFn = func(ctx context.Context, record domain.Record) error {
			return errors.New("quota exceeded")
		}

		_, err := f.service.Submit(context.Background(), validForm())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "quota exceeded")
		assert.Zero(t, f.metrics.Accepted)
	})

	t.Run("each submission gets its own id", func(t *testing.T) {
		f := newSubmissionFixture(t)

		first, err := f.service.Submit(context.Background(), validForm())
		require.NoError(t, err)
		second, err := f.service.Submit(context.Background(), validForm())
		require.NoError(t, err)

		assert.NotEqual(t, first.ID, second.ID)
	})
}

func TestSubmissionService_Validate(t *testing.T) {
	f := newSubmissionFixture(t)

	report := f.service.Validate(validForm())
	assert.True(t, report.Valid())

	form := validForm()
	form.CenterID = ""
	res, _ := f.service.Validate(form).Result(domain.FieldCenter)
	assert.Equal(t, fieldMessages[domain.FieldCenter], res.Message)
}

func TestSubmissionService_DelayDeadline(t *testing.T) {
	f := newSubmissionFixture(t)
	f.delay.Err = context.DeadlineExceeded

	_, err := f.service.Submit(context.Background(), validForm())

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Contains(t, err.Error(), "submission interrupted")
}
