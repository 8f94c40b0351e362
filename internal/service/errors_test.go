package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/phrazzld/shop-api/internal/domain"
	"github.com/phrazzld/shop-api/internal/platform/logger"
	"github.com/phrazzld/shop-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors(t *testing.T) {
	assert.Equal(t, "unexpected error, check server logs", ErrUnexpected.Error())
	assert.False(t, errors.Is(ErrNotFound, ErrDuplicateEntry))
	assert.False(t, errors.Is(ErrDuplicateEntry, ErrUnexpected))
}

func TestDuplicateEntryError(t *testing.T) {
	t.Run("uses detail as message", func(t *testing.T) {
		err := &DuplicateEntryError{Detail: "Key (slug)=(red-shirt) already exists."}
		assert.Equal(t, "Key (slug)=(red-shirt) already exists.", err.Error())
		assert.ErrorIs(t, err, ErrDuplicateEntry)
	})

	t.Run("falls back to generic message", func(t *testing.T) {
		err := &DuplicateEntryError{}
		assert.Equal(t, "duplicate entry", err.Error())
	})
}

func TestNotFoundError(t *testing.T) {
	err := &NotFoundError{Entity: "product", Term: "red-t-shirt"}
	assert.Equal(t, "product with term 'red-t-shirt' not found", err.Error())
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrUnexpected)
}

func TestUnexpectedError_HidesCause(t *testing.T) {
	cause := errors.New("connection refused to postgres://admin:secret@db:5432/shop")
	err := &UnexpectedError{Operation: "create product", Err: cause}

	assert.Equal(t, ErrUnexpected.Error(), err.Error())
	assert.NotContains(t, err.Error(), "secret")
	assert.ErrorIs(t, err, ErrUnexpected)
	assert.ErrorIs(t, err, cause)
}

func TestClassifyError(t *testing.T) {
	ctx := context.Background()

	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, classifyError(ctx, nil, "op", nil))
	})

	t.Run("duplicate keeps store detail", func(t *testing.T) {
		dup := &store.DuplicateError{
			Constraint: "products_slug_key",
			Detail:     "Key (slug)=(red-shirt) already exists.",
		}
		err := classifyError(ctx, nil, "create product", fmt.Errorf("insert: %w", dup))

		var dupErr *DuplicateEntryError
		require.ErrorAs(t, err, &dupErr)
		assert.Equal(t, "Key (slug)=(red-shirt) already exists.", dupErr.Error())
		assert.ErrorIs(t, err, store.ErrDuplicate)
	})

	t.Run("validation passes through", func(t *testing.T) {
		valErr := domain.NewValidationError("title", "cannot be empty", domain.ErrEmptyTitle)
		err := classifyError(ctx, nil, "create product", valErr)
		assert.Same(t, valErr, err)
	})

	t.Run("typed service errors pass through", func(t *testing.T) {
		nf := &NotFoundError{Entity: "product", Term: "x"}
		assert.Same(t, nf, classifyError(ctx, nil, "op", nf))
	})

	t.Run("other errors become unexpected and are logged redacted", func(t *testing.T) {
		log, buf := logger.NewTestLogger()
		cause := errors.New("dial postgres://admin:hunter2@db:5432/shop failed")

		err := classifyError(ctx, log, "update product", cause)

		var unErr *UnexpectedError
		require.ErrorAs(t, err, &unErr)
		assert.Equal(t, "update product", unErr.Operation)
		assert.Equal(t, ErrUnexpected.Error(), err.Error())

		output := buf.String()
		assert.Contains(t, output, "update product")
		assert.NotContains(t, output, "hunter2")
	})
}
