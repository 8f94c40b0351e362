// Package main implements the entry point for the shop API server, which
// serves user registration and the product catalog over HTTP.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
	"github.com/phrazzld/shop-api/internal/config"
	"github.com/phrazzld/shop-api/internal/platform/logger"
)

// options are the command-line flags.
type options struct {
	configFile string
	envFile    string
	migrate    string
	seed       bool
}

// parseFlags reads options from args (without the program name).
func parseFlags(args []string, output io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&opts.configFile, "config", "", "path to a YAML config file (default: ./config.yaml if present)")
	fs.StringVar(&opts.envFile, "env-file", ".env", "dotenv file loaded before configuration")
	fs.StringVar(&opts.migrate, "migrate", "", "run a migration command (up, status, reset) and exit")
	fs.BoolVar(&opts.seed, "seed", false, "replace all products with the demo catalog and exit")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if opts.migrate != "" && !validMigrateCommand(opts.migrate) {
		return opts, fmt.Errorf("unknown migrate command %q", opts.migrate)
	}
	return opts, nil
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts); err != nil {
		log.Fatalf("shop-api: %v", err)
	}
}

// run loads configuration, sets up logging and the database, then either
// executes a one-shot command (migrate, seed) or serves HTTP until ctx ends.
func run(ctx context.Context, opts options) error {
	if _, err := config.LoadDotEnv(opts.envFile); err != nil {
		return err
	}

	cfg, err := config.LoadFile(opts.configFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}
	l.Info("server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel))
	ctx = logger.WithLogger(ctx, l)

	db, err := setupAppDatabase(ctx, cfg, l)
	if err != nil {
		return err
	}

	if opts.migrate != "" {
		defer closeDB(db, l)
		return handleMigrations(ctx, db, opts.migrate, l)
	}

	app := newApplication(cfg, l, db)

	if opts.seed {
		defer app.cleanup()
		return app.seed(ctx)
	}

	return app.Run(ctx)
}
