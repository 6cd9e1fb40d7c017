package main

// Create tables or indexes for the configured store:
//   go run ./cmd/migrate

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"recruit-api/internal/shared/config"
	"recruit-api/internal/shared/storage/docstore"
	"recruit-api/internal/shared/telemetry"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		telemetry.Error("migrate.failed", map[string]any{"error": err})
		telemetry.Sync()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "migrate",
		Short:         "Create store tables and indexes",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runMigrate,
	}
	cmd.Flags().String("database-url", "", "Store connection string (overrides DATABASE_URL)")
	return cmd
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	if url, _ := cmd.Flags().GetString("database-url"); url != "" {
		cfg.DatabaseURL = url
	}
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}

	ctx := cmd.Context()
	store, err := docstore.OpenForMigrate(ctx, cfg.DatabaseURL, cfg.DatabaseName)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() { _ = store.Close(context.Background()) }()

	if err := store.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	telemetry.Info("migrate.done", map[string]any{"kind": store.Kind(), "database": store.Name()})
	return nil
}
