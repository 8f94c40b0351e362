package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/shop-api/internal/domain"
)

// ProductStore defines the interface for product and product image persistence.
//
// Every read returns products with their images loaded, ordered by image id.
type ProductStore interface {
	// Create inserts the product row followed by its images. Image IDs are
	// filled in on the passed product. Callers wanting atomicity run it on a
	// transactional store (see WithTx).
	// Returns a *DuplicateError on a title or slug clash.
	Create(ctx context.Context, product *domain.Product) error

	// GetByID retrieves a product by its ID.
	// Returns ErrProductNotFound if the product does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)

	// GetByTitleOrSlug retrieves the product whose title equals title
	// case-insensitively or whose slug equals slug exactly.
	// Returns ErrProductNotFound if no product matches.
	GetByTitleOrSlug(ctx context.Context, title, slug string) (*domain.Product, error)

	// List returns one page of products in insertion order, filtered by
	// params.Search when it is non-empty. Never returns nil on success.
	List(ctx context.Context, params domain.ListParams) ([]*domain.Product, error)

	// Update saves the scalar fields of product. Images are left untouched.
	// Returns ErrProductNotFound if the product does not exist.
	Update(ctx context.Context, product *domain.Product) error

	// DeleteImages removes every image of the product.
	DeleteImages(ctx context.Context, productID uuid.UUID) error

	// CreateImages inserts images in order and fills in their IDs.
	CreateImages(ctx context.Context, images []domain.ProductImage) error

	// Delete removes the product. Its images are removed by cascade.
	// Returns ErrProductNotFound if the product does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteAll removes every product (and, by cascade, every image) and
	// returns the number of products removed.
	DeleteAll(ctx context.Context) (int64, error)

	// WithTx returns a new ProductStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) ProductStore
}
