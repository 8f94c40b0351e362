package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/shop-api/internal/config"
	"github.com/phrazzld/shop-api/internal/platform/postgres"
	"github.com/phrazzld/shop-api/internal/seed"
	"github.com/phrazzld/shop-api/internal/service"
	"github.com/phrazzld/shop-api/internal/service/auth"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userService    service.UserService
	productService *service.ProductServiceImpl
}

// newApplication wires stores and services on top of an open database.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) *application {
	userStore := postgres.NewPostgresUserStore(db, logger)
	productStore := postgres.NewPostgresProductStore(db, logger)
	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)

	app := &application{
		config:         cfg,
		logger:         logger,
		db:             db,
		userService:    service.NewUserService(userStore, hasher, db, logger),
		productService: service.NewProductService(productStore, db, logger),
	}

	logger.Info("application initialized", slog.Int("bcrypt_cost", hasher.Cost()))
	return app
}

// Run serves HTTP until ctx is canceled, then shuts down gracefully.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// seed replaces the catalog with the demo products.
func (app *application) seed(ctx context.Context) error {
	res, err := seed.Run(ctx, app.productService)
	if err != nil {
		return fmt.Errorf("seed failed: %w", err)
	}
	app.logger.Info("seed completed",
		slog.Int64("deleted", res.Deleted),
		slog.Int("created", res.Created))
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		closeDB(app.db, app.logger)
	}
	app.logger.Info("application shutdown completed")
}
