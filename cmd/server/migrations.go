package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/shop-api/internal/platform/postgres"
)

const (
	migrateUp     = "up"
	migrateStatus = "status"
	migrateReset  = "reset"
)

func validMigrateCommand(cmd string) bool {
	switch cmd {
	case migrateUp, migrateStatus, migrateReset:
		return true
	}
	return false
}

// handleMigrations executes a -migrate command against db.
func handleMigrations(ctx context.Context, db *sql.DB, cmd string, logger *slog.Logger) error {
	logger.Info("executing migrations", slog.String("command", cmd))

	switch cmd {
	case migrateUp:
		if err := postgres.Migrate(ctx, db, logger); err != nil {
			return err
		}
	case migrateReset:
		if err := postgres.ResetMigrations(ctx, db, logger); err != nil {
			return err
		}
	case migrateStatus:
	default:
		return fmt.Errorf("unknown migrate command %q", cmd)
	}

	version, err := postgres.MigrationVersion(ctx, db, logger)
	if err != nil {
		return err
	}
	logger.Info("schema version", slog.Int64("version", version))
	return nil
}
