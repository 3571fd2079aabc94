package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the
	// store. This is the generic version of the entity-specific not found
	// errors (e.g., ErrProfileNotFound, ErrDeckNotFound).
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists is returned when an operation would create a duplicate
	// of a singleton entity (e.g., a second profile for the same tenant).
	ErrAlreadyExists = errors.New("entity already exists")

	// Entity-specific "not found" errors

	// ErrProfileNotFound indicates that the tenant has no profile yet.
	ErrProfileNotFound = fmt.Errorf("%w: profile", ErrNotFound)

	// ErrChatSessionNotFound indicates that the requested chat session does not exist.
	ErrChatSessionNotFound = fmt.Errorf("%w: chat session", ErrNotFound)

	// ErrNoteNotFound indicates that the requested note does not exist.
	ErrNoteNotFound = fmt.Errorf("%w: note", ErrNotFound)

	// ErrDeckNotFound indicates that the requested flashcard deck does not exist.
	ErrDeckNotFound = fmt.Errorf("%w: deck", ErrNotFound)

	// ErrCardNotFound indicates that the requested flashcard does not exist
	// within its deck. Only surfaced on the strict (rating-driven) review path.
	ErrCardNotFound = fmt.Errorf("%w: card", ErrNotFound)

	// ErrGoalNotFound indicates that the requested goal does not exist.
	ErrGoalNotFound = fmt.Errorf("%w: goal", ErrNotFound)

	// ErrProfileExists indicates that the tenant already has a profile.
	// Returned when attempting to create a second profile for the same tenant.
	ErrProfileExists = fmt.Errorf("%w: profile", ErrAlreadyExists)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExistsError checks if the error is any kind of "already exists" error.
func IsAlreadyExistsError(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// StoreError is a custom error type for store-specific errors with additional context.
type StoreError struct {
	Entity    string // The entity type (e.g., "note", "deck")
	Operation string // The operation that failed (e.g., "create", "update")
	Message   string // Error message
	Err       error  // Original error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf(
			"%s operation on %s failed: %s: %v",
			e.Operation,
			e.Entity,
			e.Message,
			e.Err,
		)
	}
	return fmt.Sprintf("%s operation on %s failed: %s", e.Operation, e.Entity, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError with the given entity, operation, message, and wrapped error.
func NewStoreError(entity, operation, message string, err error) *StoreError {
	return &StoreError{
		Entity:    entity,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
