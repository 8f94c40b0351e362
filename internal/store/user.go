package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/shop-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store. The user must already carry a
	// HashedPassword; the plaintext Password is never written.
	// Returns ErrEmailExists (as a *DuplicateError) if the email is taken.
	Create(ctx context.Context, user *domain.User) error

	// WithTx returns a new UserStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) UserStore
}
