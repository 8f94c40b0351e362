package postgres

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/phrazzld/shop-api/internal/domain"
	"github.com/phrazzld/shop-api/internal/store"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const selectProducts = "SELECT id, title, slug, description, price, stock, gender, created_at, updated_at FROM products"

func newMockProductStore(t *testing.T) (*PostgresProductStore, *sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresProductStore(db, nil), db, mock
}

func productRows(products ...*domain.Product) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "title", "slug", "description", "price", "stock", "gender", "created_at", "updated_at",
	})
	for _, p := range products {
		rows.AddRow(p.ID.String(), p.Title, p.Slug, p.Description, p.Price.String(), p.Stock, p.Gender,
			p.CreatedAt, p.UpdatedAt)
	}
	return rows
}

func testProduct(t *testing.T, title string, urls ...string) *domain.Product {
	t.Helper()
	p, err := domain.NewProduct(title, "", "soft cotton", decimal.RequireFromString("19.99"), 5, domain.GenderMen, urls)
	require.NoError(t, err)
	return p
}

func TestNewPostgresProductStore_NilDBPanics(t *testing.T) {
	assert.Panics(t, func() { NewPostgresProductStore(nil, nil) })
}

func TestPostgresProductStore_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("inserts product then images in order", func(t *testing.T) {
		s, _, mock := newMockProductStore(t)
		p := testProduct(t, "Red T-Shirt", "a.jpg", "b.jpg")

		mock.ExpectExec("INSERT INTO products").
			WithArgs(p.ID, "Red T-Shirt", "red-t-shirt", "soft cotton", p.Price, 5, "men", p.CreatedAt, p.UpdatedAt).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery("INSERT INTO product_images").
			WithArgs("a.jpg", p.ID).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(11)))
		mock.ExpectQuery("INSERT INTO product_images").
			WithArgs("b.jpg", p.ID).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(12)))

		require.NoError(t, s.Create(ctx, p))

		assert.Equal(t, int64(11), p.Images[0].ID)
		assert.Equal(t, int64(12), p.Images[1].ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate slug maps to duplicate error with detail", func(t *testing.T) {
		s, _, mock := newMockProductStore(t)
		p := testProduct(t, "Red T-Shirt", "a.jpg")

		mock.ExpectExec("INSERT INTO products").WillReturnError(newPgError(uniqueViolationCode))

		err := s.Create(ctx, p)

		require.Error(t, err)
		assert.ErrorIs(t, err, store.ErrDuplicate)
		assert.Equal(t, "Key (slug)=(red-t-shirt) already exists.", store.DuplicateDetail(err))
		assert.NoError(t, mock.ExpectationsWereMet(), "no image insert after a failed product insert")
	})

	t.Run("invalid product is rejected before any query", func(t *testing.T) {
		s, _, mock := newMockProductStore(t)
		p := testProduct(t, "Red T-Shirt")
		p.Gender = "pets"

		err := s.Create(ctx, p)

		assert.ErrorIs(t, err, domain.ErrInvalidGender)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgresProductStore_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("loads images in id order", func(t *testing.T) {
		s, _, mock := newMockProductStore(t)
		p := testProduct(t, "Red T-Shirt")

		mock.ExpectQuery(regexp.QuoteMeta(selectProducts + " WHERE id = $1")).
			WithArgs(p.ID).
			WillReturnRows(productRows(p))
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, url, product_id FROM product_images WHERE product_id IN ($1) ORDER BY id ASC")).
			WithArgs(p.ID).
			WillReturnRows(sqlmock.NewRows([]string{"id", "url", "product_id"}).
				AddRow(int64(1), "a.jpg", p.ID.String()).
				AddRow(int64(2), "b.jpg", p.ID.String()))

		got, err := s.GetByID(ctx, p.ID)

		require.NoError(t, err)
		assert.Equal(t, p.ID, got.ID)
		assert.Equal(t, "red-t-shirt", got.Slug)
		assert.True(t, decimal.RequireFromString("19.99").Equal(got.Price))
		assert.Equal(t, []string{"a.jpg", "b.jpg"}, got.ImageURLs())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing product", func(t *testing.T) {
		s, _, mock := newMockProductStore(t)
		id := uuid.New()

		mock.ExpectQuery(regexp.QuoteMeta(selectProducts + " WHERE id = $1")).
			WithArgs(id).
			WillReturnRows(productRows())

		got, err := s.GetByID(ctx, id)

		assert.Nil(t, got)
		assert.ErrorIs(t, err, store.ErrProductNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgresProductStore_GetByTitleOrSlug(t *testing.T) {
	s, _, mock := newMockProductStore(t)
	p := testProduct(t, "Red T-Shirt")

	mock.ExpectQuery(regexp.QuoteMeta(selectProducts +
		" WHERE (UPPER(title) = $1 OR slug = $2) ORDER BY created_at ASC, id ASC LIMIT $3")).
		WithArgs("RED T-SHIRT", "red t-shirt", 1).
		WillReturnRows(productRows(p))
	mock.ExpectQuery("FROM product_images").
		WillReturnRows(sqlmock.NewRows([]string{"id", "url", "product_id"}))

	got, err := s.GetByTitleOrSlug(context.Background(), "Red T-Shirt", "Red T-Shirt")

	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)
	assert.NotNil(t, got.Images)
	assert.Empty(t, got.Images)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresProductStore_List(t *testing.T) {
	ctx := context.Background()

	t.Run("search pages over products and batches image loading", func(t *testing.T) {
		s, _, mock := newMockProductStore(t)
		first := testProduct(t, "Red Shirt")
		second := testProduct(t, "Blue Shirt")

		mock.ExpectQuery(regexp.QuoteMeta(selectProducts +
			" WHERE (title LIKE $1 OR description LIKE $1 OR slug LIKE $1 OR gender LIKE $1" +
			" OR CAST(stock AS TEXT) LIKE $1 OR CAST(price AS TEXT) LIKE $1)" +
			" ORDER BY created_at ASC, id ASC LIMIT $2 OFFSET $3")).
			WithArgs("%shirt%", 5, 10).
			WillReturnRows(productRows(first, second))
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, url, product_id FROM product_images WHERE product_id IN ($1, $2) ORDER BY id ASC")).
			WithArgs(first.ID, second.ID).
			WillReturnRows(sqlmock.NewRows([]string{"id", "url", "product_id"}).
				AddRow(int64(1), "r1.jpg", first.ID.String()).
				AddRow(int64(2), "b1.jpg", second.ID.String()).
				AddRow(int64(3), "r2.jpg", first.ID.String()))

		got, err := s.List(ctx, domain.ListParams{Limit: 5, Offset: 10, Search: "shirt"})

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, first.ID, got[0].ID)
		assert.Equal(t, []string{"r1.jpg", "r2.jpg"}, got[0].ImageURLs())
		assert.Equal(t, []string{"b1.jpg"}, got[1].ImageURLs())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("defaults and empty page", func(t *testing.T) {
		s, _, mock := newMockProductStore(t)

		mock.ExpectQuery(regexp.QuoteMeta(selectProducts + " ORDER BY created_at ASC, id ASC LIMIT $1")).
			WithArgs(10).
			WillReturnRows(productRows())

		got, err := s.List(ctx, domain.ListParams{})

		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("search term is bound verbatim", func(t *testing.T) {
		s, _, mock := newMockProductStore(t)

		mock.ExpectQuery(regexp.QuoteMeta("WHERE (title LIKE $1")).
			WithArgs("%shirt %", 10).
			WillReturnRows(productRows())

		_, err := s.List(ctx, domain.ListParams{Search: "shirt "})

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query failure", func(t *testing.T) {
		s, _, mock := newMockProductStore(t)
		mock.ExpectQuery("FROM products").WillReturnError(errors.New("connection reset"))

		got, err := s.List(ctx, domain.ListParams{})

		assert.Nil(t, got)
		assert.EqualError(t, err, "connection reset")
	})
}

func TestPostgresProductStore_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("saves scalars", func(t *testing.T) {
		s, _, mock := newMockProductStore(t)
		p := testProduct(t, "Red T-Shirt")
		p.UpdatedAt = time.Now().UTC()

		mock.ExpectExec("UPDATE products").
			WithArgs("Red T-Shirt", "red-t-shirt", "soft cotton", p.Price, 5, "men", p.UpdatedAt, p.ID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, s.Update(ctx, p))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing product", func(t *testing.T) {
		s, _, mock := newMockProductStore(t)
		mock.ExpectExec("UPDATE products").WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, s.Update(ctx, testProduct(t, "Gone")), store.ErrProductNotFound)
	})

	t.Run("duplicate title", func(t *testing.T) {
		s, _, mock := newMockProductStore(t)
		pgErr := newPgError(uniqueViolationCode)
		pgErr.ConstraintName = "products_title_key"
		mock.ExpectExec("UPDATE products").WillReturnError(pgErr)

		err := s.Update(ctx, testProduct(t, "Taken"))

		var dupErr *store.DuplicateError
		require.ErrorAs(t, err, &dupErr)
		assert.Equal(t, "products_title_key", dupErr.Constraint)
	})
}

func TestPostgresProductStore_Delete(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("deletes", func(t *testing.T) {
		s, _, mock := newMockProductStore(t)
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM products WHERE id = $1")).
			WithArgs(id).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, s.Delete(ctx, id))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing product", func(t *testing.T) {
		s, _, mock := newMockProductStore(t)
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM products WHERE id = $1")).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, s.Delete(ctx, id), store.ErrProductNotFound)
	})
}

func TestPostgresProductStore_DeleteAll(t *testing.T) {
	s, _, mock := newMockProductStore(t)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM products")).WillReturnResult(sqlmock.NewResult(0, 7))

	n, err := s.DeleteAll(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(7), n)
}

func TestPostgresProductStore_WithTx(t *testing.T) {
	s, db, mock := newMockProductStore(t)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM product_images WHERE product_id = $1")).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectRollback()

	tx, err := db.Begin()
	require.NoError(t, err)

	require.NoError(t, s.WithTx(tx).DeleteImages(context.Background(), id))
	require.NoError(t, tx.Rollback())
	assert.NoError(t, mock.ExpectationsWereMet())
}
