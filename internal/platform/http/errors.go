package http

import (
	"net/http"
)

// Error is returned by handlers and rendered by the error middleware.
// Details, when set, replaces the default {"error": Message} body.
type Error struct {
	StatusCode int
	Message    string
	Details    interface{}
	Err        error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.StatusCode)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// WithDetails returns a copy of e carrying a structured response body.
func (e *Error) WithDetails(details interface{}) *Error {
	clone := *e
	clone.Details = details
	return &clone
}

func New(statusCode int, message string, err error) *Error {
	return &Error{
		StatusCode: statusCode,
		Message:    message,
		Err:        err,
	}
}

func NewNotFound(message string, err error) *Error {
	return New(http.StatusNotFound, message, err)
}

func NewBadRequest(message string, err error) *Error {
	return New(http.StatusBadRequest, message, err)
}

func NewConflict(message string, err error) *Error {
	return New(http.StatusConflict, message, err)
}

// NewUnprocessableEntity reports a well-formed request whose content was
// rejected, typically a form that failed its rules.
func NewUnprocessableEntity(message string, err error) *Error {
	return New(http.StatusUnprocessableEntity, message, err)
}

func NewInternalServerError(message string, err error) *Error {
	return New(http.StatusInternalServerError, message, err)
}
