// Package seed loads a small demo catalog into an empty or existing database.
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/shop-api/internal/platform/logger"
	"github.com/phrazzld/shop-api/internal/service"
)

// Result summarises a seeding run.
type Result struct {
	Deleted int64
	Created int
}

// Run replaces every product with the built-in catalog. Products are
// created one by one; the first failure stops the run.
func Run(ctx context.Context, products service.ProductSeeder) (Result, error) {
	log := logger.FromContext(ctx).With(slog.String("component", "seed"))

	deleted, err := products.DeleteAll(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("failed to clear products: %w", err)
	}
	log.Info("cleared existing products", slog.Int64("count", deleted))

	res := Result{Deleted: deleted}
	for _, in := range Catalog() {
		if _, err := products.Create(ctx, in); err != nil {
			return res, fmt.Errorf("failed to seed product %q: %w", in.Title, err)
		}
		res.Created++
	}

	log.Info("seeded products", slog.Int("count", res.Created))
	return res, nil
}
