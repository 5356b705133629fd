package handler

import (
	"net/http"

	"github.com/DanielPopoola/cxtrauma-orders/internal/core/domain"
)

type FormatIdentityRequest struct {
	Value string `json:"value" example:"123456785"`
	Caret int    `json:"caret" validate:"min=0" example:"9"`
}

type FormatIdentityResponse struct {
	Formatted  string `json:"formatted" example:"12.345.678-5"`
	Caret      int    `json:"caret" example:"12"`
	Normalized string `json:"normalized" example:"123456785"`
	Valid      bool   `json:"valid"`
}

type FormatPhoneRequest struct {
	Value     string `json:"value" example:"912345678"`
	Keystroke bool   `json:"keystroke"`
}

type FormatPhoneResponse struct {
	Formatted string `json:"formatted" example:"9 1234 5678"`
	Valid     bool   `json:"valid"`
}

// HandleFormatIdentity reformats a partially typed RUT
// @Summary      Format identity number
// @Description  Returns the display form of a RUT, the caret position after reformatting and whether the check digit matches.
// @Tags         format
// @Accept       json
// @Produce      json
// @Param        request  body      FormatIdentityRequest  true  "Raw input and caret position"
// @Success      200      {object}  APIResponse
// @Failure      400      {object}  APIResponse
// @Router       /format/identity [post]
func (h *OrderHandler) HandleFormatIdentity(w http.ResponseWriter, r *http.Request) {
	var req FormatIdentityRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		respondWithError(w, err)
		return
	}

	formatted, caret := domain.FormatIdentityAt(req.Value, req.Caret)
	respondWithJSON(w, http.StatusOK, FormatIdentityResponse{
		Formatted:  formatted,
		Caret:      caret,
		Normalized: domain.NormalizeIdentity(req.Value),
		Valid:      domain.IsValidIdentity(req.Value),
	})
}

// HandleFormatPhone reformats a partially typed mobile number
// @Summary      Format phone number
// @Description  Groups the digits of a Chilean mobile number. With keystroke set, input without a leading + gets the country prefix.
// @Tags         format
// @Accept       json
// @Produce      json
// @Param        request  body      FormatPhoneRequest  true  "Raw input"
// @Success      200      {object}  APIResponse
// @Failure      400      {object}  APIResponse
// @Router       /format/phone [post]
func (h *OrderHandler) HandleFormatPhone(w http.ResponseWriter, r *http.Request) {
	var req FormatPhoneRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		respondWithError(w, err)
		return
	}

	formatted := domain.FormatPhone(req.Value)
	if req.Keystroke {
		formatted = domain.FormatPhoneInput(req.Value)
	}

	respondWithJSON(w, http.StatusOK, FormatPhoneResponse{
		Formatted: formatted,
		Valid:     domain.IsValidPhone(req.Value),
	})
}
