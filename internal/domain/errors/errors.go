package errors

import (
	"errors"
	"fmt"
)

var (
	// Gateway errors
	ErrGatewayNotConfigured = errors.New("stripe secret key not configured")

	// Webhook errors
	ErrInvalidSignature = errors.New("invalid webhook signature")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrInvalidInput     = errors.New("invalid input")
)

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}
