package services

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrNotFound is returned when an entity is not found
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists is returned when attempting to create a duplicate entity
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrStateViolation is returned when an operation is not valid in the
	// entity's current state
	ErrStateViolation = errors.New("operation not valid in current state")
)

// ValidationError wraps field-specific validation errors
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// BusyError is returned when a project already has a running session.
type BusyError struct {
	ProjectID     string
	SessionID     string
	SessionNumber int
	StartedAt     *time.Time
}

func (e *BusyError) Error() string {
	return fmt.Sprintf("project %s busy: session %d is running", e.ProjectID, e.SessionNumber)
}

// IsBusyError checks if an error indicates a concurrent running session
func IsBusyError(err error) bool {
	var be *BusyError
	return errors.As(err, &be)
}
