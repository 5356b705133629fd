package domain_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DanielPopoola/cxtrauma-orders/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderRequest(t *testing.T) {
	at := time.Date(2025, 3, 4, 10, 30, 0, 0, time.FixedZone("CLT", -3*3600))
	form := domain.FormValues{
		FullName:       "Ana Pérez",
		IdentityNumber: "123456785",
		Phone:          "+56 9 1234 5678",
		Email:          "ana@example.cl",
		CenterID:       "clinica-vina",
	}

	req := domain.NewOrderRequest("req-1", form, domain.DefaultCenters()[0], at)

	assert.Equal(t, "12.345.678-5", req.IdentityNumber)
	assert.Equal(t, "Clínica Viña del Mar", req.CenterName)
	assert.Equal(t, "Viña del Mar", req.CenterLocation)
	assert.Equal(t, "Dr. Silva López", req.DoctorName)
	assert.Equal(t, domain.StatusPending, req.Status)
	assert.Equal(t, time.UTC, req.Timestamp.Location())

	data, err := json.Marshal(req)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"timestamp":"2025-03-04T13:30:00Z"`)
	assert.Contains(t, string(data), `"centerId":"clinica-vina"`)
	assert.Contains(t, string(data), `"status":"pending"`)
}

func TestNewExamOrder(t *testing.T) {
	cart := domain.NewCart(nil)
	cart.AddItem(domain.DefaultExams()[1])
	cart.AddItem(domain.DefaultExams()[2])

	order := domain.NewExamOrder("order-1", cart.Snapshot(), time.Now())

	assert.Len(t, order.Exams, 2)
	assert.Equal(t, int64(37000), order.Total)
	assert.Equal(t, domain.StatusPending, order.Status)
}

func TestNewRecord(t *testing.T) {
	rec, err := domain.NewRecord("ns", "id-1", map[string]int{"a": 1}, time.Now())
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1}`, string(rec.Payload))

	_, err = domain.NewRecord("ns", "id-2", make(chan int), time.Now())
	assert.Error(t, err)
}

func TestValidationError(t *testing.T) {
	report := domain.ValidationReport{}
	for _, f := range domain.FormFields {
		report.Fields = append(report.Fields, domain.FieldResult{Field: f, Valid: true})
	}
	report.Invalidate(domain.FieldPhone, "bad phone")
	report.Invalidate(domain.FieldEmail, "bad email")

	err := domain.NewValidationError(report)

	assert.True(t, domain.IsErrorCode(err, domain.ErrCodeValidationFailed))
	assert.Len(t, report.Failures(), 2)

	var fieldErr *domain.FieldInvalid
	require.True(t, errors.As(err, &fieldErr))
	assert.Equal(t, domain.FieldPhone, fieldErr.Field)

	result, ok := report.Result(domain.FieldEmail)
	require.True(t, ok)
	assert.Equal(t, "bad email", result.Message)
}
