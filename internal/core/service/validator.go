package service

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/DanielPopoola/cxtrauma-orders/internal/core/domain"
	"github.com/go-playground/validator"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var fieldMessages = map[domain.Field]string{
	domain.FieldFullName:       "Por favor ingrese su nombre completo",
	domain.FieldIdentityNumber: "RUT inválido. Verifique el formato (Ej: 12.345.678-9)",
	domain.FieldPhone:          "Teléfono inválido. Use formato +56 9 XXXX XXXX",
	domain.FieldEmail:          "Email inválido. Verifique el formato",
	domain.FieldCenter:         "Por favor seleccione un centro médico",
}

// UnknownCenterMessage is reported on the center field when its id is not in the catalog.
const UnknownCenterMessage = "El centro médico seleccionado no existe"

var structFields = map[string]domain.Field{
	"FullName":       domain.FieldFullName,
	"IdentityNumber": domain.FieldIdentityNumber,
	"Phone":          domain.FieldPhone,
	"Email":          domain.FieldEmail,
	"CenterID":       domain.FieldCenter,
}

// FormValidator evaluates every intake form rule and reports all failures at once.
type FormValidator struct {
	validate *validator.Validate
}

func NewFormValidator() (*FormValidator, error) {
	v := validator.New()

	rules := map[string]func(string) bool{
		"rut":          domain.IsValidIdentity,
		"cl_mobile":    domain.IsValidPhone,
		"simple_email": emailPattern.MatchString,
	}
	for tag, rule := range rules {
		rule := rule
		err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return rule(fl.Field().String())
		})
		if err != nil {
			return nil, fmt.Errorf("register %s validation: %w", tag, err)
		}
	}

	return &FormValidator{validate: v}, nil
}

// Validate checks the trimmed form values. The report always holds one
// result per field, in domain.FormFields order.
func (fv *FormValidator) Validate(form domain.FormValues) domain.ValidationReport {
	report := domain.ValidationReport{Fields: make([]domain.FieldResult, 0, len(domain.FormFields))}
	for _, f := range domain.FormFields {
		report.Fields = append(report.Fields, domain.FieldResult{Field: f, Valid: true})
	}

	err := fv.validate.Struct(form.Trimmed())
	if err == nil {
		return report
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		for _, f := range domain.FormFields {
			report.Invalidate(f, fieldMessages[f])
		}
		return report
	}

	for _, fe := range fieldErrs {
		field, ok := structFields[fe.StructField()]
		if !ok {
			continue
		}
		report.Invalidate(field, fieldMessages[field])
	}
	return report
}
