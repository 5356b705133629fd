package domain

import "strings"

// Field names one input of the intake form.
type Field string

const (
	FieldFullName       Field = "full_name"
	FieldIdentityNumber Field = "identity_number"
	FieldPhone          Field = "phone"
	FieldEmail          Field = "email"
	FieldCenter         Field = "center_id"
)

// FormFields is the order in which fields are reported.
var FormFields = []Field{FieldFullName, FieldIdentityNumber, FieldPhone, FieldEmail, FieldCenter}

// FormValues is the intake form as captured on a submission attempt.
type FormValues struct {
	FullName       string `json:"full_name" validate:"min=3"`
	IdentityNumber string `json:"identity_number" validate:"rut"`
	Phone          string `json:"phone" validate:"cl_mobile"`
	Email          string `json:"email" validate:"simple_email"`
	CenterID       string `json:"center_id" validate:"required"`
}

// Trimmed returns a copy with surrounding whitespace removed from every field.
func (v FormValues) Trimmed() FormValues {
	return FormValues{
		FullName:       strings.TrimSpace(v.FullName),
		IdentityNumber: strings.TrimSpace(v.IdentityNumber),
		Phone:          strings.TrimSpace(v.Phone),
		Email:          strings.TrimSpace(v.Email),
		CenterID:       v.CenterID,
	}
}

// FieldResult is the verdict for one field.
type FieldResult struct {
	Field   Field  `json:"field"`
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

// ValidationReport holds one result per form field, in FormFields order.
type ValidationReport struct {
	Fields []FieldResult `json:"fields"`
}

// Valid reports whether every field passed.
func (r ValidationReport) Valid() bool {
	for _, f := range r.Fields {
		if !f.Valid {
			return false
		}
	}
	return true
}

func (r ValidationReport) Result(field Field) (FieldResult, bool) {
	for _, f := range r.Fields {
		if f.Field == field {
			return f, true
		}
	}
	return FieldResult{}, false
}

// Failures returns a FieldInvalid for every failing field.
func (r ValidationReport) Failures() []error {
	var errs []error
	for _, f := range r.Fields {
		if !f.Valid {
			errs = append(errs, &FieldInvalid{Field: f.Field, Reason: f.Message})
		}
	}
	return errs
}

// Invalidate marks field as failed with the given message.
func (r *ValidationReport) Invalidate(field Field, message string) {
	for i := range r.Fields {
		if r.Fields[i].Field == field {
			r.Fields[i].Valid = false
			r.Fields[i].Message = message
			return
		}
	}
	r.Fields = append(r.Fields, FieldResult{Field: field, Message: message})
}
