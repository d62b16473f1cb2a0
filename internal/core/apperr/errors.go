// Package apperr defines the error kinds surfaced by the billing core.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Error kinds. Match them with errors.Is.
var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrRender     = errors.New("render error")
	ErrRepository = errors.New("repository error")
)

// Error carries a kind, a user-facing message and an optional cause.
type Error struct {
	Kind    error
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Is reports whether target is the kind of this error.
func (e *Error) Is(target error) bool {
	return e != nil && target == e.Kind
}

// Unwrap allows errors.Is/As to inspect the underlying cause.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func newError(kind error, msg string, err error) *Error {
	return &Error{Kind: kind, Message: msg, Err: err}
}

// Validation reports a missing or malformed input.
func Validation(msg string) *Error {
	return newError(ErrValidation, msg, nil)
}

// Validationf is Validation with formatting.
func Validationf(format string, args ...any) *Error {
	return newError(ErrValidation, fmt.Sprintf(format, args...), nil)
}

// NotFound reports an unresolvable reference.
func NotFound(msg string) *Error {
	return newError(ErrNotFound, msg, nil)
}

// Conflict reports an operation refused by the current state.
func Conflict(msg string) *Error {
	return newError(ErrConflict, msg, nil)
}

// Conflictf is Conflict with formatting.
func Conflictf(format string, args ...any) *Error {
	return newError(ErrConflict, fmt.Sprintf(format, args...), nil)
}

// Render reports a document generation failure.
func Render(msg string, err error) *Error {
	return newError(ErrRender, msg, err)
}

// Repository reports a storage failure.
func Repository(msg string, err error) *Error {
	return newError(ErrRepository, msg, err)
}

// HTTPStatus maps an error to its HTTP status code.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the text safe to show to API clients.
// Causes of storage and render failures are not exposed.
func Message(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "Error interno del servidor"
}
