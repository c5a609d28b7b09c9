package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/iudanet/expensekeeper/internal/server/storage/backend"
)

func (a *app) migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		Long: `Initialize or update the database schema to the latest version.

Migrations are embedded into the binary and also run on every serve start.`,
		PreRunE: a.initConfig,
		RunE:    a.runMigrate,
	}
}

func (a *app) runMigrate(cmd *cobra.Command, _ []string) error {
	cfg := a.cfg

	a.logger.Info("running database migrations",
		slog.String("driver", cfg.Database.Driver))

	// Open применяет все миграции goose
	store, err := backend.Open(cmd.Context(), cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	if err := store.Close(); err != nil {
		return fmt.Errorf("failed to close storage: %w", err)
	}

	a.logger.Info("database migrations completed successfully")
	return nil
}
