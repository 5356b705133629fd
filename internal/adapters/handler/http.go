package handler

import (
	"context"
	"net/http"

	"github.com/DanielPopoola/cxtrauma-orders/internal/core/domain"
	"github.com/go-playground/validator"
)

type SubmissionService interface {
	Validate(form domain.FormValues) domain.ValidationReport
	Submit(ctx context.Context, form domain.FormValues) (*domain.OrderRequest, error)
}

type CartService interface {
	NewSession(ctx context.Context) (string, domain.CartSnapshot, error)
	Snapshot(ctx context.Context, sessionID string) (domain.CartSnapshot, error)
	AddExam(ctx context.Context, sessionID, examID string) (domain.CartSnapshot, error)
	RemoveExam(ctx context.Context, sessionID, examID string) (domain.CartSnapshot, error)
	Clear(ctx context.Context, sessionID string) (domain.CartSnapshot, error)
	Checkout(ctx context.Context, sessionID string) (*domain.ExamOrder, error)
}

type CatalogReader interface {
	Centers() []domain.MedicalCenter
	Exams() []domain.Exam
}

type RecordLister interface {
	List(ctx context.Context, namespace string) ([]domain.Record, error)
}

// HealthCheck reports whether a dependency is reachable.
type HealthCheck func(ctx context.Context) error

type OrderHandler struct {
	submissions SubmissionService
	carts       CartService
	catalog     CatalogReader
	records     RecordLister
	checks      map[string]HealthCheck
	validate    *validator.Validate
}

func NewOrderHandler(
	submissions SubmissionService,
	carts CartService,
	catalog CatalogReader,
	records RecordLister,
	checks map[string]HealthCheck,
) *OrderHandler {
	return &OrderHandler{
		submissions: submissions,
		carts:       carts,
		catalog:     catalog,
		records:     records,
		checks:      checks,
		validate:    validator.New(),
	}
}

func (h *OrderHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /format/identity", h.HandleFormatIdentity)
	mux.HandleFunc("POST /format/phone", h.HandleFormatPhone)
	mux.HandleFunc("POST /validate", h.HandleValidate)
	mux.HandleFunc("POST /requests", h.HandleSubmit)

	mux.HandleFunc("GET /centers", h.HandleListCenters)
	mux.HandleFunc("GET /exams", h.HandleListExams)

	mux.HandleFunc("POST /carts", h.HandleCreateCart)
	mux.HandleFunc("GET /carts/{id}", h.HandleGetCart)
	mux.HandleFunc("POST /carts/{id}/items", h.HandleAddItem)
	mux.HandleFunc("DELETE /carts/{id}/items/{examID}", h.HandleRemoveItem)
	mux.HandleFunc("DELETE /carts/{id}/items", h.HandleClearCart)
	mux.HandleFunc("POST /carts/{id}/checkout", h.HandleCheckout)

	mux.HandleFunc("GET /records/{namespace}", h.HandleListRecords)
	mux.HandleFunc("GET /healthz", h.HandleHealth)
}
