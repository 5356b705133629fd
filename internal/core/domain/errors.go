package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a business logic error
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *DomainError) Unwrap() error {
	return e.Err
}

const (
	ErrCodeValidationFailed = "VALIDATION_FAILED"
	ErrCodeUnknownCenter    = "UNKNOWN_CENTER"
	ErrCodeUnknownExam      = "UNKNOWN_EXAM"
	ErrCodeCartNotFound     = "CART_NOT_FOUND"
	ErrCodeEmptyCart        = "EMPTY_CART"
	ErrCodeInvalidCatalog   = "INVALID_CATALOG"
)

// FieldInvalid is a recoverable, user-facing failure of a single form field.
type FieldInvalid struct {
	Field  Field
	Reason string
}

func (e *FieldInvalid) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// ValidationError carries the complete report of a failed batch validation.
type ValidationError struct {
	DomainError
	Report ValidationReport
}

func NewValidationError(report ValidationReport) *ValidationError {
	return &ValidationError{
		DomainError: DomainError{
			Code:    ErrCodeValidationFailed,
			Message: fmt.Sprintf("%d invalid field(s)", len(report.Failures())),
			Err:     errors.Join(report.Failures()...),
		},
		Report: report,
	}
}

func NewUnknownCenterError(id string) *DomainError {
	return &DomainError{
		Code:    ErrCodeUnknownCenter,
		Message: fmt.Sprintf("medical center %q does not exist", id),
	}
}

func NewUnknownExamError(id string) *DomainError {
	return &DomainError{
		Code:    ErrCodeUnknownExam,
		Message: fmt.Sprintf("exam %q does not exist", id),
	}
}

func NewCartNotFoundError(id string) *DomainError {
	return &DomainError{
		Code:    ErrCodeCartNotFound,
		Message: fmt.Sprintf("cart %s not found", id),
	}
}

func NewEmptyCartError() *DomainError {
	return &DomainError{
		Code:    ErrCodeEmptyCart,
		Message: "cart has no exams to check out",
	}
}

func NewInvalidCatalogError(reason string) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidCatalog,
		Message: "invalid catalog: " + reason,
	}
}

// IsErrorCode checks if an error is a DomainError with a specific code
func IsErrorCode(err error, code string) bool {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Code == code
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}
