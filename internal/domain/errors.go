package domain

import (
	"errors"
	"strings"
)

// Each sentinel maps to exactly one HTTP status in the transport layer.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
)

// FieldError names one rejected input field.
type FieldError struct {
	Field   string
	Message string
}

func (f FieldError) String() string {
	return f.Field + ": " + f.Message
}

// ValidationError collects every field problem found in one input so the
// client sees them all at once. It matches ErrValidation under errors.Is.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	for i, f := range e.Errors {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(f.String())
	}
	return b.String()
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// Field returns the message recorded for name, if any.
func (e *ValidationError) Field(name string) (string, bool) {
	for _, f := range e.Errors {
		if f.Field == name {
			return f.Message, true
		}
	}
	return "", false
}

// NewValidationError rejects a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Errors: []FieldError{{Field: field, Message: message}}}
}

// NewValidationErrors wraps errs as-is.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// CheckFields returns nil for an empty list and a *ValidationError otherwise.
// Validators end with it so a clean input yields an untyped nil.
func CheckFields(errs []FieldError) error {
	if len(errs) == 0 {
		return nil
	}
	return NewValidationErrors(errs)
}
