package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/shop-api/internal/domain"
	"github.com/phrazzld/shop-api/internal/platform/logger"
	"github.com/phrazzld/shop-api/internal/redact"
	"github.com/phrazzld/shop-api/internal/store"
)

// Service error kinds. Callers use errors.Is to classify and errors.As to
// reach the typed carriers below.
//
// Error handling principles:
//  1. Client-correctable conditions (duplicate, not found, validation) keep
//     enough detail for the caller to act on.
//  2. Everything else becomes an UnexpectedError whose message is fixed; the
//     cause is logged, never returned to clients.
//  3. The API layer maps these kinds to HTTP status codes.
var (
	// ErrDuplicateEntry indicates a uniqueness violation reported by the store.
	// API layer should map this to HTTP 400 Bad Request.
	ErrDuplicateEntry = errors.New("duplicate entry")

	// ErrNotFound indicates that a lookup by identifier, slug or title found nothing.
	// API layer should map this to HTTP 404 Not Found.
	ErrNotFound = errors.New("not found")

	// ErrUnexpected indicates a server-side failure.
	// API layer should map this to HTTP 500 Internal Server Error.
	ErrUnexpected = errors.New("unexpected error, check server logs")
)

// DuplicateEntryError carries the store's detail text for a uniqueness violation,
// e.g. "Key (slug)=(red-t-shirt) already exists.".
type DuplicateEntryError struct {
	Detail string
	Err    error
}

func (e *DuplicateEntryError) Error() string {
	if e.Detail == "" {
		return ErrDuplicateEntry.Error()
	}
	return e.Detail
}

func (e *DuplicateEntryError) Unwrap() error { return e.Err }

// Is matches ErrDuplicateEntry.
func (e *DuplicateEntryError) Is(target error) bool { return target == ErrDuplicateEntry }

// NotFoundError names the entity kind and the term that was looked up.
type NotFoundError struct {
	Entity string
	Term   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with term '%s' not found", e.Entity, e.Term)
}

// Is matches ErrNotFound.
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// UnexpectedError hides an internal failure behind a fixed message.
// Operation and Err are for logs and tests only.
type UnexpectedError struct {
	Operation string
	Err       error
}

func (e *UnexpectedError) Error() string { return ErrUnexpected.Error() }

func (e *UnexpectedError) Unwrap() error { return e.Err }

// Is matches ErrUnexpected.
func (e *UnexpectedError) Is(target error) bool { return target == ErrUnexpected }

// classifyError converts a store or domain error into a service error.
// Validation errors pass through unchanged; uniqueness violations keep the
// store detail; anything else is logged and replaced by an UnexpectedError.
func classifyError(ctx context.Context, fallback *slog.Logger, operation string, err error) error {
	if err == nil {
		return nil
	}

	var (
		dupErr *DuplicateEntryError
		nfErr  *NotFoundError
		unErr  *UnexpectedError
	)
	if errors.As(err, &dupErr) || errors.As(err, &nfErr) || errors.As(err, &unErr) {
		return err
	}

	if errors.Is(err, domain.ErrValidation) {
		return err
	}

	if store.IsDuplicateError(err) {
		return &DuplicateEntryError{Detail: store.DuplicateDetail(err), Err: err}
	}

	logger.FromContextOrDefault(ctx, fallback).Error("unexpected store failure",
		slog.String("operation", operation),
		slog.String("error", redact.Error(err)))
	return &UnexpectedError{Operation: operation, Err: err}
}
