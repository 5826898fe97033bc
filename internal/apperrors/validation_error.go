package apperrors

import (
	"fmt"
	"strings"
)

// ValidationError carries the full field->messages map produced by the
// business-rule validators so the transport layer can surface it as a
// structured payload. It unwraps to ErrValidation so callers can branch
// with errors.Is.
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, messages := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(messages, "; ")))
	}
	return fmt.Sprintf("%v: %s", ErrValidation, strings.Join(parts, ", "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError creates a ValidationError from a field->messages map.
func NewValidationError(fields map[string][]string) *ValidationError {
	return &ValidationError{Fields: fields}
}
