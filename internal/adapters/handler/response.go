package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/DanielPopoola/cxtrauma-orders/internal/core/domain"
)

const errCodeBadRequest = "VALIDATION_ERROR"

type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

type APIError struct {
	Code    string               `json:"code"`
	Message string               `json:"message"`
	Details []domain.FieldResult `json:"details,omitempty"`
}

func respondWithJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	response := APIResponse{
		Success: status >= 200 && status < 300,
	}

	if response.Success {
		response.Data = data
	} else {
		if apiErr, ok := data.(*APIError); ok {
			response.Error = apiErr
		}
	}

	_ = json.NewEncoder(w).Encode(response)
}

func respondWithError(w http.ResponseWriter, err error) {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		respondWithJSON(w, http.StatusUnprocessableEntity, &APIError{
			Code:    validationErr.Code,
			Message: validationErr.Message,
			Details: validationErr.Report.Fields,
		})
		return
	}

	var domainErr *domain.DomainError
	code := "INTERNAL_ERROR"
	message := "internal server error"
	status := http.StatusInternalServerError

	if errors.As(err, &domainErr) {
		code = domainErr.Code
		message = domainErr.Message

		switch domainErr.Code {
		case domain.ErrCodeUnknownCenter, domain.ErrCodeUnknownExam, errCodeBadRequest:
			status = http.StatusBadRequest
		case domain.ErrCodeCartNotFound:
			status = http.StatusNotFound
		case domain.ErrCodeEmptyCart:
			status = http.StatusConflict
		default:
			status = http.StatusInternalServerError
		}
	}

	respondWithJSON(w, status, &APIError{
		Code:    code,
		Message: message,
	})
}

// decodeAndValidate reads a JSON body into dst and runs the struct's
// validate tags.
func (h *OrderHandler) decodeAndValidate(r *http.Request, dst interface{}) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return &domain.DomainError{Code: errCodeBadRequest, Message: "could not read request body", Err: err}
	}

	if err := json.Unmarshal(body, dst); err != nil {
		return &domain.DomainError{Code: errCodeBadRequest, Message: "malformed JSON body", Err: err}
	}

	if err := h.validate.Struct(dst); err != nil {
		return &domain.DomainError{Code: errCodeBadRequest, Message: err.Error()}
	}
	return nil
}
