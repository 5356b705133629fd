package handler

import (
	"net/http"

	"github.com/DanielPopoola/cxtrauma-orders/internal/core/domain"
)

type ExamView struct {
	domain.Exam
	PriceDisplay string `json:"price_display" example:"$15.000"`
}

// HandleListCenters returns the medical centers an order can be sent to
// @Summary      List medical centers
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  APIResponse
// @Router       /centers [get]
func (h *OrderHandler) HandleListCenters(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.catalog.Centers())
}

// HandleListExams returns the exam catalog with display prices
// @Summary      List exams
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  APIResponse
// @Router       /exams [get]
func (h *OrderHandler) HandleListExams(w http.ResponseWriter, r *http.Request) {
	exams := h.catalog.Exams()
	views := make([]ExamView, 0, len(exams))
	for _, e := range exams {
		views = append(views, ExamView{Exam: e, PriceDisplay: domain.FormatPrice(e.Price)})
	}
	respondWithJSON(w, http.StatusOK, views)
}

// HandleListRecords returns every record appended under a namespace
// @Summary      List stored records
// @Tags         records
// @Produce      json
// @Param        namespace  path      string  true  "Record namespace"  example:"cxtrauma_requests"
// @Success      200        {object}  APIResponse
// @Router       /records/{namespace} [get]
func (h *OrderHandler) HandleListRecords(w http.ResponseWriter, r *http.Request) {
	records, err := h.records.List(r.Context(), r.PathValue("namespace"))
	if err != nil {
		respondWithError(w, err)
		return
	}
	if records == nil {
		records = []domain.Record{}
	}
	respondWithJSON(w, http.StatusOK, records)
}

// HandleHealth runs the registered dependency checks.
func (h *OrderHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	status := map[string]string{}
	healthy := true
	for name, check := range h.checks {
		if err := check(r.Context()); err != nil {
			status[name] = err.Error()
			healthy = false
			continue
		}
		status[name] = "ok"
	}

	if !healthy {
		respondWithJSON(w, http.StatusServiceUnavailable, &APIError{
			Code:    "UNHEALTHY",
			Message: "dependency check failed",
		})
		return
	}
	respondWithJSON(w, http.StatusOK, status)
}
