package services

import "github.com/go-faster/errors"

// Sentinel errors for lookups that came up empty. Handlers match these with
// errors.Is and turn them into 404 responses.
var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrAttendanceNotFound = errors.New("attendance record not found")
)

// ValidationError reports input that fails a domain rule. Maps to 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

// ConflictError reports a write that would violate a uniqueness rule.
// Maps to 409.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

func newConflictError(msg string) *ConflictError {
	return &ConflictError{Message: msg}
}
