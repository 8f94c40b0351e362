package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/phrazzld/shop-api/internal/domain"
	"github.com/phrazzld/shop-api/internal/pkg/query"
	"github.com/phrazzld/shop-api/internal/platform/logger"
	"github.com/phrazzld/shop-api/internal/store"
)

const (
	productsTable      = "products"
	productImagesTable = "product_images"
)

var productColumns = []string{
	"id", "title", "slug", "description", "price", "stock", "gender", "created_at", "updated_at",
}

// productSearchColumns are matched against the search pattern. Numeric
// columns are compared in their text form.
var productSearchColumns = []string{
	"title",
	"description",
	"slug",
	"gender",
	"CAST(stock AS TEXT)",
	"CAST(price AS TEXT)",
}

// PostgresProductStore implements the store.ProductStore interface
// using a PostgreSQL database as the storage backend.
type PostgresProductStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresProductStore creates a new PostgreSQL implementation of the ProductStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresProductStore(db store.DBTX, logger *slog.Logger) *PostgresProductStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresProductStore{
		db:     db,
		logger: logger.With(slog.String("component", "product_store")),
	}
}

// Ensure PostgresProductStore implements store.ProductStore interface
var _ store.ProductStore = (*PostgresProductStore)(nil)

// WithTx implements store.ProductStore.WithTx
func (s *PostgresProductStore) WithTx(tx *sql.Tx) store.ProductStore {
	return &PostgresProductStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create implements store.ProductStore.Create
func (s *PostgresProductStore) Create(ctx context.Context, product *domain.Product) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := product.Validate(); err != nil {
		log.Warn("product validation failed during create",
			slog.String("error", err.Error()),
			slog.String("product_id", product.ID.String()))
		return err
	}

	insertSQL := `
		INSERT INTO products (id, title, slug, description, price, stock, gender, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := s.db.ExecContext(
		ctx,
		insertSQL,
		product.ID,
		product.Title,
		product.Slug,
		product.Description,
		product.Price,
		product.Stock,
		product.Gender,
		product.CreatedAt,
		product.UpdatedAt,
	)
	if err != nil {
		mapped := MapError(err)
		if store.IsDuplicateError(mapped) {
			log.Warn("attempted to create duplicate product",
				slog.String("product_id", product.ID.String()),
				slog.String("detail", store.DuplicateDetail(mapped)))
		} else {
			log.Error("failed to create product",
				slog.String("error", err.Error()),
				slog.String("product_id", product.ID.String()))
		}
		return mapped
	}

	for i := range product.Images {
		product.Images[i].ProductID = product.ID
	}
	if err := s.CreateImages(ctx, product.Images); err != nil {
		return err
	}

	log.Info("product created successfully",
		slog.String("product_id", product.ID.String()),
		slog.Int("image_count", len(product.Images)))
	return nil
}

// CreateImages implements store.ProductStore.CreateImages
func (s *PostgresProductStore) CreateImages(ctx context.Context, images []domain.ProductImage) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	insertSQL := `
		INSERT INTO product_images (url, product_id)
		VALUES ($1, $2)
		RETURNING id
	`
	for i := range images {
		err := s.db.QueryRowContext(ctx, insertSQL, images[i].URL, images[i].ProductID).Scan(&images[i].ID)
		if err != nil {
			log.Error("failed to create product image",
				slog.String("error", err.Error()),
				slog.String("product_id", images[i].ProductID.String()),
				slog.Int("position", i))
			return MapError(err)
		}
	}

	return nil
}

// GetByID implements store.ProductStore.GetByID
func (s *PostgresProductStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	stmt := query.From(productsTable).
		Select(productColumns...).
		Where(query.Eq("id", id)).
		Build()

	return s.getOne(ctx, stmt, slog.String("product_id", id.String()))
}

// GetByTitleOrSlug implements store.ProductStore.GetByTitleOrSlug
func (s *PostgresProductStore) GetByTitleOrSlug(ctx context.Context, title, slug string) (*domain.Product, error) {
	stmt := query.From(productsTable).
		Select(productColumns...).
		Where(query.Or(
			query.Eq("UPPER(title)", strings.ToUpper(title)),
			query.Eq("slug", strings.ToLower(slug)),
		)).
		OrderBy("created_at", query.Asc).
		OrderBy("id", query.Asc).
		Limit(1).
		Build()

	return s.getOne(ctx, stmt, slog.String("slug", slug))
}

func (s *PostgresProductStore) getOne(ctx context.Context, stmt query.Statement, attr slog.Attr) (*domain.Product, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	product, err := scanProduct(s.db.QueryRowContext(ctx, stmt.SQL, stmt.Args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("product not found", attr)
			return nil, store.ErrProductNotFound
		}
		log.Error("failed to get product", slog.String("error", err.Error()), attr)
		return nil, MapError(err)
	}

	if err := s.loadImages(ctx, []*domain.Product{product}); err != nil {
		return nil, err
	}

	return product, nil
}

// List implements store.ProductStore.List
// The page is taken over products; images for the whole page are then
// fetched in a single query.
func (s *PostgresProductStore) List(ctx context.Context, params domain.ListParams) ([]*domain.Product, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	params = params.WithDefaults()

	b := query.From(productsTable).Select(productColumns...)
	if params.Search != "" {
		b = b.Where(query.LikeAny(query.Contains(params.Search), productSearchColumns...))
	}
	stmt := b.OrderBy("created_at", query.Asc).
		OrderBy("id", query.Asc).
		Limit(params.Limit).
		Offset(params.Offset).
		Build()

	products, err := s.queryProducts(ctx, stmt, params.Limit)
	if err != nil {
		log.Error("failed to list products",
			slog.String("error", err.Error()),
			slog.Int("limit", params.Limit),
			slog.Int("offset", params.Offset))
		return nil, err
	}

	if err := s.loadImages(ctx, products); err != nil {
		return nil, err
	}

	log.Debug("products listed",
		slog.Int("count", len(products)),
		slog.Int("limit", params.Limit),
		slog.Int("offset", params.Offset),
		slog.Bool("search", params.Search != ""))
	return products, nil
}

// queryProducts runs stmt and scans every row. The rows are closed before
// it returns so the connection is free for the image query.
func (s *PostgresProductStore) queryProducts(ctx context.Context, stmt query.Statement, sizeHint int) ([]*domain.Product, error) {
	rows, err := s.db.QueryContext(ctx, stmt.SQL, stmt.Args...)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	products := make([]*domain.Product, 0, sizeHint)
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}

// loadImages attaches images, ordered by id, to each product.
func (s *PostgresProductStore) loadImages(ctx context.Context, products []*domain.Product) error {
	if len(products) == 0 {
		return nil
	}
	log := logger.FromContextOrDefault(ctx, s.logger)

	byID := make(map[uuid.UUID]*domain.Product, len(products))
	ids := make([]any, 0, len(products))
	for _, p := range products {
		p.Images = make([]domain.ProductImage, 0)
		byID[p.ID] = p
		ids = append(ids, p.ID)
	}

	stmt := query.From(productImagesTable).
		Select("id", "url", "product_id").
		Where(query.In("product_id", ids...)).
		OrderBy("id", query.Asc).
		Build()

	rows, err := s.db.QueryContext(ctx, stmt.SQL, stmt.Args...)
	if err != nil {
		log.Error("failed to load product images", slog.String("error", err.Error()))
		return MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	for rows.Next() {
		var img domain.ProductImage
		if err := rows.Scan(&img.ID, &img.URL, &img.ProductID); err != nil {
			log.Error("failed to scan product image row", slog.String("error", err.Error()))
			return err
		}
		if p, ok := byID[img.ProductID]; ok {
			p.Images = append(p.Images, img)
		}
	}

	return rows.Err()
}

// Update implements store.ProductStore.Update
func (s *PostgresProductStore) Update(ctx context.Context, product *domain.Product) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	updateSQL := `
		UPDATE products
		SET title = $1, slug = $2, description = $3, price = $4, stock = $5, gender = $6, updated_at = $7
		WHERE id = $8
	`
	result, err := s.db.ExecContext(
		ctx,
		updateSQL,
		product.Title,
		product.Slug,
		product.Description,
		product.Price,
		product.Stock,
		product.Gender,
		product.UpdatedAt,
		product.ID,
	)
	if err != nil {
		mapped := MapError(err)
		if store.IsDuplicateError(mapped) {
			log.Warn("product update would create a duplicate",
				slog.String("product_id", product.ID.String()),
				slog.String("detail", store.DuplicateDetail(mapped)))
		} else {
			log.Error("failed to update product",
				slog.String("error", err.Error()),
				slog.String("product_id", product.ID.String()))
		}
		return mapped
	}

	if err := CheckRowsAffected(result, store.ErrProductNotFound); err != nil {
		log.Debug("product not found for update", slog.String("product_id", product.ID.String()))
		return err
	}

	log.Info("product updated successfully", slog.String("product_id", product.ID.String()))
	return nil
}

// DeleteImages implements store.ProductStore.DeleteImages
func (s *PostgresProductStore) DeleteImages(ctx context.Context, productID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, "DELETE FROM product_images WHERE product_id = $1", productID)
	if err != nil {
		log.Error("failed to delete product images",
			slog.String("error", err.Error()),
			slog.String("product_id", productID.String()))
		return MapError(err)
	}

	if n, err := result.RowsAffected(); err == nil {
		log.Debug("product images deleted",
			slog.String("product_id", productID.String()),
			slog.Int64("count", n))
	}
	return nil
}

// Delete implements store.ProductStore.Delete
func (s *PostgresProductStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, "DELETE FROM products WHERE id = $1", id)
	if err != nil {
		log.Error("failed to delete product",
			slog.String("error", err.Error()),
			slog.String("product_id", id.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrProductNotFound); err != nil {
		log.Debug("product not found for delete", slog.String("product_id", id.String()))
		return err
	}

	log.Info("product deleted successfully", slog.String("product_id", id.String()))
	return nil
}

// DeleteAll implements store.ProductStore.DeleteAll
func (s *PostgresProductStore) DeleteAll(ctx context.Context) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, "DELETE FROM products")
	if err != nil {
		log.Error("failed to delete all products", slog.String("error", err.Error()))
		return 0, MapError(err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	log.Info("all products deleted", slog.Int64("count", n))
	return n, nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*domain.Product, error) {
	var p domain.Product
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Slug,
		&p.Description,
		&p.Price,
		&p.Stock,
		&p.Gender,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
