package domain

import (
	"encoding/json"
	"time"
)

// RequestStatus is the lifecycle state of a stored request. Nothing in this
// service advances it past pending.
type RequestStatus string

const StatusPending RequestStatus = "pending"

// OrderRequest is the record handed to the store after a successful
// submission of the intake form.
type OrderRequest struct {
	ID             string        `json:"id"`
	FullName       string        `json:"fullName"`
	IdentityNumber string        `json:"identityNumber"`
	Phone          string        `json:"phone"`
	Email          string        `json:"email"`
	CenterID       string        `json:"centerId"`
	CenterName     string        `json:"centerName"`
	CenterLocation string        `json:"centerLocation"`
	DoctorName     string        `json:"doctorName"`
	Timestamp      time.Time     `json:"timestamp"`
	Status         RequestStatus `json:"status"`
}

// NewOrderRequest combines validated form values with the selected center.
func NewOrderRequest(id string, form FormValues, center MedicalCenter, at time.Time) *OrderRequest {
	return &OrderRequest{
		ID:             id,
		FullName:       form.FullName,
		IdentityNumber: FormatIdentity(form.IdentityNumber),
		Phone:          form.Phone,
		Email:          form.Email,
		CenterID:       center.ID,
		CenterName:     center.Name,
		CenterLocation: center.Location,
		DoctorName:     center.Doctor,
		Timestamp:      at.UTC(),
		Status:         StatusPending,
	}
}

// ExamOrder is the record of a checked-out cart.
type ExamOrder struct {
	ID        string        `json:"id"`
	Exams     []Exam        `json:"exams"`
	Total     int64         `json:"total"`
	Timestamp time.Time     `json:"timestamp"`
	Status    RequestStatus `json:"status"`
}

func NewExamOrder(id string, snapshot CartSnapshot, at time.Time) *ExamOrder {
	return &ExamOrder{
		ID:        id,
		Exams:     snapshot.Items,
		Total:     snapshot.Total,
		Timestamp: at.UTC(),
		Status:    StatusPending,
	}
}

// Record is one entry of an append-only namespaced store.
type Record struct {
	Namespace string          `json:"namespace"`
	ID        string          `json:"id"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
}

// NewRecord marshals v as the payload of a record.
func NewRecord(namespace, id string, v any, at time.Time) (Record, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return Record{}, err
	}
	return Record{
		Namespace: namespace,
		ID:        id,
		Payload:   payload,
		CreatedAt: at.UTC(),
	}, nil
}
