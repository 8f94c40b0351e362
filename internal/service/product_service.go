package service

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/phrazzld/shop-api/internal/domain"
	"github.com/phrazzld/shop-api/internal/platform/logger"
	"github.com/phrazzld/shop-api/internal/store"
	"github.com/shopspring/decimal"
)

// CreateProductInput holds the fields of a new product.
// An empty Slug is derived from Title.
type CreateProductInput struct {
	Title       string
	Slug        string
	Description string
	Price       decimal.Decimal
	Stock       int
	Gender      string
	Images      []string
}

// ProductService provides the product catalog operations.
type ProductService interface {
	// Create stores a product together with its images.
	// Returns a *DuplicateEntryError when the title or slug is already taken.
	Create(ctx context.Context, input CreateProductInput) (*domain.Product, error)

	// FindAll returns one page of products with their images.
	FindAll(ctx context.Context, params domain.ListParams) ([]*domain.Product, error)

	// FindOne looks a product up by ID when term is a UUID, otherwise by
	// case-insensitive title or by slug.
	// Returns a *NotFoundError naming term when nothing matches.
	FindOne(ctx context.Context, term string) (*domain.Product, error)

	// Update merges upd onto the product with the given ID. When upd carries
	// images, the existing set is replaced in the same transaction as the
	// field update.
	Update(ctx context.Context, id uuid.UUID, upd domain.ProductUpdate) (*domain.Product, error)

	// Remove deletes the product found by term and returns a confirmation
	// message referencing term.
	Remove(ctx context.Context, term string) (string, error)
}

// ProductSeeder is the subset of product operations used to load the
// built-in catalog.
type ProductSeeder interface {
	Create(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	DeleteAll(ctx context.Context) (int64, error)
}

// ProductServiceImpl implements the ProductService interface
type ProductServiceImpl struct {
	productStore store.ProductStore
	db           store.TxBeginner
	logger       *slog.Logger
}

// NewProductService creates a new ProductService
func NewProductService(
	productStore store.ProductStore,
	db store.TxBeginner,
	logger *slog.Logger,
) *ProductServiceImpl {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProductServiceImpl{
		productStore: productStore,
		db:           db,
		logger:       logger.With("component", "product_service"),
	}
}

var (
	_ ProductService = (*ProductServiceImpl)(nil)
	_ ProductSeeder  = (*ProductServiceImpl)(nil)
)

// Create implements ProductService.Create
func (s *ProductServiceImpl) Create(ctx context.Context, input CreateProductInput) (*domain.Product, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	product, err := domain.NewProduct(
		input.Title,
		input.Slug,
		input.Description,
		input.Price,
		input.Stock,
		input.Gender,
		input.Images,
	)
	if err != nil {
		log.Debug("product rejected by validation", "error", err)
		return nil, err
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.productStore.WithTx(tx).Create(ctx, product)
	})
	if err != nil {
		return nil, classifyError(ctx, s.logger, "create product", err)
	}

	log.Info("product created",
		"product_id", product.ID,
		"slug", product.Slug,
		"image_count", len(product.Images))
	return product, nil
}

// FindAll implements ProductService.FindAll
func (s *ProductServiceImpl) FindAll(ctx context.Context, params domain.ListParams) ([]*domain.Product, error) {
	products, err := s.productStore.List(ctx, params.WithDefaults())
	if err != nil {
		return nil, classifyError(ctx, s.logger, "list products", err)
	}
	return products, nil
}

// FindOne implements ProductService.FindOne
func (s *ProductServiceImpl) FindOne(ctx context.Context, term string) (*domain.Product, error) {
	term = strings.TrimSpace(term)

	var (
		product *domain.Product
		err     error
	)
	if domain.IsUUID(term) {
		product, err = s.productStore.GetByID(ctx, uuid.MustParse(term))
	} else {
		product, err = s.productStore.GetByTitleOrSlug(ctx, term, term)
	}
	if err != nil {
		if store.IsNotFoundError(err) {
			logger.FromContextOrDefault(ctx, s.logger).Debug("product not found", "term", term)
			return nil, &NotFoundError{Entity: "product", Term: term}
		}
		return nil, classifyError(ctx, s.logger, "find product", err)
	}

	return product, nil
}

// Update implements ProductService.Update
func (s *ProductServiceImpl) Update(
	ctx context.Context,
	id uuid.UUID,
	upd domain.ProductUpdate,
) (*domain.Product, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	product, err := s.productStore.GetByID(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, &NotFoundError{Entity: "product", Term: id.String()}
		}
		return nil, classifyError(ctx, s.logger, "load product for update", err)
	}

	if err := upd.Apply(product); err != nil {
		log.Debug("product update rejected by validation", "product_id", id, "error", err)
		return nil, err
	}

	var images []domain.ProductImage
	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.productStore.WithTx(tx)

		if upd.ReplacesImages() {
			if err := txStore.DeleteImages(ctx, id); err != nil {
				return err
			}
			images = domain.NewProductImages(id, upd.Images)
			if err := txStore.CreateImages(ctx, images); err != nil {
				return err
			}
		}

		return txStore.Update(ctx, product)
	})
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, &NotFoundError{Entity: "product", Term: id.String()}
		}
		return nil, classifyError(ctx, s.logger, "update product", err)
	}

	if upd.ReplacesImages() {
		product.Images = images
	}

	log.Info("product updated",
		"product_id", id,
		"images_replaced", upd.ReplacesImages())
	return product, nil
}

// Remove implements ProductService.Remove
func (s *ProductServiceImpl) Remove(ctx context.Context, term string) (string, error) {
	product, err := s.FindOne(ctx, term)
	if err != nil {
		return "", err
	}

	if err := s.productStore.Delete(ctx, product.ID); err != nil {
		if store.IsNotFoundError(err) {
			return "", &NotFoundError{Entity: "product", Term: strings.TrimSpace(term)}
		}
		return "", classifyError(ctx, s.logger, "remove product", err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("product removed", "product_id", product.ID)
	return fmt.Sprintf("product '%s' removed", strings.TrimSpace(term)), nil
}

// DeleteAll removes every product and its images.
func (s *ProductServiceImpl) DeleteAll(ctx context.Context) (int64, error) {
	n, err := s.productStore.DeleteAll(ctx)
	if err != nil {
		return 0, classifyError(ctx, s.logger, "delete all products", err)
	}
	logger.FromContextOrDefault(ctx, s.logger).Info("all products deleted", "count", n)
	return n, nil
}
