package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	// This is a generic version of the entity-specific not found errors
	// (e.g., ErrProductNotFound).
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity (e.g., a product with an existing slug).
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when an entity fails validation before
	// being stored, or when a write violates a check, foreign-key or
	// not-null constraint.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrProductNotFound indicates that the requested product does not exist in the store.
	ErrProductNotFound = fmt.Errorf("%w: product", ErrNotFound)

	// ErrEmailExists indicates that a user with the given email already exists.
	ErrEmailExists = fmt.Errorf("%w: email", ErrDuplicate)
)

// DuplicateError carries the details of a unique constraint violation as
// reported by the database. It matches ErrDuplicate with errors.Is.
type DuplicateError struct {
	Constraint string // Name of the violated constraint, e.g. "products_slug_key"
	Detail     string // Human-readable detail, e.g. "Key (slug)=(red-shirt) already exists."
	Err        error  // Original driver error
}

func (e *DuplicateError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s", ErrDuplicate, e.Detail)
	}
	return ErrDuplicate.Error()
}

// Unwrap returns the original driver error.
func (e *DuplicateError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrDuplicate, or ErrEmailExists when the
// violated constraint is the users email key.
func (e *DuplicateError) Is(target error) bool {
	switch target {
	case ErrDuplicate:
		return true
	case ErrEmailExists:
		return e.Constraint == UsersEmailConstraint
	}
	return false
}

// UsersEmailConstraint is the unique constraint on users.email.
const UsersEmailConstraint = "users_email_key"

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

// DuplicateDetail returns the database detail of a duplicate error, or an
// empty string when err carries none.
func DuplicateDetail(err error) string {
	var dupErr *DuplicateError
	if errors.As(err, &dupErr) {
		return dupErr.Detail
	}
	return ""
}

// StoreError is a custom error type for store-specific errors with additional context.
type StoreError struct {
	Entity    string // The entity type (e.g., "user", "product")
	Operation string // The operation that failed (e.g., "create", "update")
	Message   string // Error message
	Err       error  // Original error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s: %s: %v", e.Operation, e.Entity, e.Message, e.Err)
	}
	return fmt.Sprintf("%s %s: %s", e.Operation, e.Entity, e.Message)
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
