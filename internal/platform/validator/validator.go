package validator

import (
	"fmt"
	"strings"
)

// FieldError reports one rejected request field by its JSON name.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (fe FieldError) Error() string {
	return fe.Field + ": " + fe.Message
}

// ValidationError collects structural problems with a request body. It is
// rendered as the response body, so field order is kept stable.
type ValidationError struct {
	Errors []FieldError `json:"errors"`
}

// Reject builds a ValidationError for a single field.
func Reject(field, format string, args ...interface{}) ValidationError {
	return ValidationError{Errors: []FieldError{{
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}}}
}

func (ve ValidationError) Error() string {
	if len(ve.Errors) == 0 {
		return "request validation failed"
	}
	parts := make([]string, len(ve.Errors))
	for i, fe := range ve.Errors {
		parts[i] = fe.Error()
	}
	return "request validation failed: " + strings.Join(parts, "; ")
}

// Messages indexes the first message per field.
func (ve ValidationError) Messages() map[string]string {
	out := make(map[string]string, len(ve.Errors))
	for _, fe := range ve.Errors {
		if _, seen := out[fe.Field]; !seen {
			out[fe.Field] = fe.Message
		}
	}
	return out
}

// Validator checks the struct tags of decoded request payloads.
type Validator interface {
	Validate(s interface{}) error
}
