package apperrors

import "fmt"

// ValidationError signals bad or missing caller input. Never retried,
// surfaced as a client error.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func NewValidation(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// NotFoundError signals that an entity or relation is absent.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

func NewNotFound(message string) *NotFoundError {
	return &NotFoundError{Message: message}
}

// ConflictError signals a uniqueness violation, e.g. creating a link that
// already exists for the same pair and type.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

func NewConflict(message string) *ConflictError {
	return &ConflictError{Message: message}
}

// StorageError wraps a failure of the underlying store. The original error
// message is kept for diagnostics and never swallowed.
type StorageError struct {
	Message string
	Err     error
}

func (e *StorageError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *StorageError) Unwrap() error { return e.Err }

func NewStorage(err error) *StorageError {
	return &StorageError{Message: "storage failure", Err: err}
}
