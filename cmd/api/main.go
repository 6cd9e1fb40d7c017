package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"recruit-api/internal/bootstrap"
	"recruit-api/internal/shared/config"
	"recruit-api/internal/shared/server"
	"recruit-api/internal/shared/telemetry"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := newRootCmd().Execute(); err != nil {
		telemetry.Error("api.exit", map[string]any{"error": err})
		telemetry.Sync()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "api",
		Short:         "Serve the recruiting HTTP API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runAPI,
	}
	cmd.Flags().String("port", "", "Listen port (overrides PORT)")
	return cmd
}

func runAPI(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	if port, _ := cmd.Flags().GetString("port"); port != "" {
		cfg.Port = port
	}

	app, err := bootstrap.Build(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = app.Close(context.Background()) }()

	srv := &http.Server{
		Addr:              server.Addr(cfg.Port),
		Handler:           app.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		telemetry.Info("api.listen", map[string]any{"addr": srv.Addr, "env": cfg.Env})
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	telemetry.Info("api.shutdown", nil)
	return srv.Shutdown(shutdownCtx)
}
