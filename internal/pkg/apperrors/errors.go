package apperrors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrSessionInvalid     = errors.New("invalid session token")
	ErrSessionExpired     = errors.New("session expired")
	ErrSessionRevoked     = errors.New("session revoked")
	ErrSessionNotFound    = errors.New("session not found")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")

	// Account errors
	ErrAccountNotFound       = errors.New("account not found")
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// Record errors
	ErrStudentNotFound = errors.New("student record not found")

	// Notification errors
	ErrDispatchFailed = errors.New("failed to dispatch notification")
)

// NewFieldError creates a validation error for a specific missing or invalid field.
func NewFieldError(field, message string) error {
	return &FieldError{Field: field, Message: message}
}

// FieldError carries the field that failed validation
type FieldError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *FieldError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("%s is required", e.Field)
}

// Unwrap makes FieldError match ErrValidationFailed via errors.Is
func (e *FieldError) Unwrap() error {
	return ErrValidationFailed
}
