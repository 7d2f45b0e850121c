// Package apperr defines the error taxonomy shared by every layer: services
// translate store errors into it, handlers map it onto HTTP statuses.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrStoreUnavailable means the persistent store could not be opened.
	// Fatal at startup.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrNotFound means an operation referenced an id that does not resolve.
	ErrNotFound = errors.New("record not found")

	// ErrPersistence means a write was rejected by the store, or a
	// multi-step transaction partially failed and was rolled back.
	ErrPersistence = errors.New("persistence failure")
)

// ValidationError reports caller-supplied data violating a field constraint.
// No mutation is attempted when one is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: field '%s' %s", e.Field, e.Reason)
}

func Validation(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Persistence wraps a store error into ErrPersistence, keeping the cause text.
func Persistence(err error) error {
	return fmt.Errorf("%w: %v", ErrPersistence, err)
}
