package intake

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrUnknownField       = errors.New("unknown form field")
	ErrAlreadySubmitted   = errors.New("form already submitted")
	ErrSessionNotFound    = errors.New("intake session not found")
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrDuplicateID        = errors.New("id already in use")
)

const (
	MsgNameTooShort    = "Name must be at least 2 characters."
	MsgAgeRequired     = "Age is required."
	MsgAgeOutOfRange   = "Age must be in range of 1 to 100."
	MsgSymptomRequired = "At least one symptom is required."
)

// Errors maps a field to the message shown next to it.
type Errors map[Field]string

func (e Errors) Has(field Field) bool {
	_, ok := e[field]
	return ok
}

func (e Errors) Clone() Errors {
	out := make(Errors, len(e))
	for field, msg := range e {
		out[field] = msg
	}
	return out
}

// Fields returns the failing fields in form order.
func (e Errors) Fields() []Field {
	fields := make([]Field, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Slice(fields, func(i, j int) bool {
		return fields[i].order() < fields[j].order()
	})
	return fields
}

type ValidationError struct {
	Errors Errors
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, field := range e.Errors.Fields() {
		parts = append(parts, fmt.Sprintf("%s: %s", field, e.Errors[field]))
	}
	return fmt.Sprintf("intake validation failed: %s", strings.Join(parts, ", "))
}
