package handler

import (
	"net/http"

	"github.com/DanielPopoola/cxtrauma-orders/internal/core/domain"
)

// HandleValidate runs every field rule without submitting
// @Summary      Validate intake form
// @Tags         requests
// @Accept       json
// @Produce      json
// @Param        request  body      domain.FormValues  true  "Form values"
// @Success      200      {object}  APIResponse        "Report with one result per field"
// @Failure      400      {object}  APIResponse
// @Router       /validate [post]
func (h *OrderHandler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	var form domain.FormValues
	if err := h.decodeForm(r, &form); err != nil {
		respondWithError(w, err)
		return
	}

	report := h.submissions.Validate(form.Trimmed())
	respondWithJSON(w, http.StatusOK, report)
}

// HandleSubmit validates and stores an order request
// @Summary      Submit order request
// @Description  Validates the form, waits for the simulated processing delay and stores a pending request.
// @Tags         requests
// @Accept       json
// @Produce      json
// @Param        request  body      domain.FormValues  true  "Form values"
// @Success      201      {object}  APIResponse        "Stored request"
// @Failure      422      {object}  APIResponse        "Per-field validation failures"
// @Failure      500      {object}  APIResponse
// @Router       /requests [post]
func (h *OrderHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	var form domain.FormValues
	if err := h.decodeForm(r, &form); err != nil {
		respondWithError(w, err)
		return
	}

	request, err := h.submissions.Submit(r.Context(), form)
	if err != nil {
		respondWithError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, request)
}

// decodeForm only decodes: the form's validate tags belong to the
// submission validator, not to request parsing.
func (h *OrderHandler) decodeForm(r *http.Request, form *domain.FormValues) error {
	var raw struct {
		FullName       string `json:"full_name"`
		IdentityNumber string `json:"identity_number"`
		Phone          string `json:"phone"`
		Email          string `json:"email"`
		CenterID       string `json:"center_id"`
	}
	if err := h.decodeAndValidate(r, &raw); err != nil {
		return err
	}
	*form = domain.FormValues(raw)
	return nil
}
