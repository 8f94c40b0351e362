package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/shop-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPgError(code string) *pgconn.PgError {
	return &pgconn.PgError{
		Code:           code,
		Message:        "error message",
		Detail:         "Key (slug)=(red-t-shirt) already exists.",
		TableName:      "products",
		ColumnName:     "slug",
		ConstraintName: "products_slug_key",
	}
}

type mockResult struct {
	rowsAffected int64
	err          error
}

func (m mockResult) LastInsertId() (int64, error) { return 0, m.err }
func (m mockResult) RowsAffected() (int64, error) { return m.rowsAffected, m.err }

func TestMapError(t *testing.T) {
	t.Parallel()

	t.Run("nil", func(t *testing.T) {
		assert.NoError(t, MapError(nil))
	})

	t.Run("no rows", func(t *testing.T) {
		err := MapError(sql.ErrNoRows)
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("unique violation carries detail", func(t *testing.T) {
		pgErr := newPgError(uniqueViolationCode)
		err := MapError(fmt.Errorf("exec: %w", pgErr))

		var dupErr *store.DuplicateError
		require.True(t, errors.As(err, &dupErr))
		assert.Equal(t, "products_slug_key", dupErr.Constraint)
		assert.Equal(t, "Key (slug)=(red-t-shirt) already exists.", dupErr.Detail)
		assert.ErrorIs(t, err, store.ErrDuplicate)
		assert.ErrorIs(t, err, pgErr)
	})

	t.Run("email unique violation", func(t *testing.T) {
		pgErr := newPgError(uniqueViolationCode)
		pgErr.ConstraintName = store.UsersEmailConstraint

		assert.ErrorIs(t, MapError(pgErr), store.ErrEmailExists)
	})

	for _, code := range []string{foreignKeyViolationCode, checkViolationCode, notNullViolationCode} {
		t.Run("integrity "+code, func(t *testing.T) {
			err := MapError(newPgError(code))
			assert.ErrorIs(t, err, store.ErrInvalidEntity)
			assert.False(t, store.IsDuplicateError(err))
		})
	}

	t.Run("other pg error passes through", func(t *testing.T) {
		pgErr := newPgError("40001")
		assert.Same(t, pgErr, MapError(pgErr))
	})

	t.Run("plain error passes through", func(t *testing.T) {
		plain := errors.New("connection refused")
		assert.Same(t, plain, MapError(plain))
	})
}

func TestCheckRowsAffected(t *testing.T) {
	t.Parallel()

	assert.NoError(t, CheckRowsAffected(mockResult{rowsAffected: 1}, store.ErrProductNotFound))
	assert.ErrorIs(t, CheckRowsAffected(mockResult{}, store.ErrProductNotFound), store.ErrProductNotFound)
	assert.ErrorIs(t, CheckRowsAffected(mockResult{}, nil), store.ErrNotFound)
	assert.Error(t, CheckRowsAffected(nil, nil))

	err := CheckRowsAffected(mockResult{err: errors.New("driver")}, nil)
	assert.Contains(t, err.Error(), "failed to get rows affected")
}
