package ports

import (
	"context"
	"time"

	"github.com/DanielPopoola/cxtrauma-orders/internal/core/domain"
)

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// Delayer suspends a submission for the latency it simulates.
type Delayer interface {
	Wait(ctx context.Context) error
}

// Catalog resolves reference data by id.
type Catalog interface {
	Center(id string) (domain.MedicalCenter, bool)
	Exam(id string) (domain.Exam, bool)
	Centers() []domain.MedicalCenter
	Exams() []domain.Exam
}

// Metrics records service outcomes.
type Metrics interface {
	ObserveSubmission(accepted bool)
	ObserveCartMutation(op string, count int)
	ObserveCheckout(total int64)
}
