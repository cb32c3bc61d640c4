package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/lvpal/algorithms"
	"github.com/katalvlaran/lvpal/internal/config"
	"github.com/katalvlaran/lvpal/internal/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the visualizer HTTP API",
		Long: `Serve the visualizer HTTP API until interrupted.

Endpoints:
  GET  /            liveness message
  GET  /health      status and registered algorithms
  GET  /metrics     Prometheus metrics
  POST /visualize   {"text", "algorithm"} -> event array
  POST /solve       {"text", "algorithm"} -> result
  POST /benchmark   {"text"} -> milliseconds per algorithm, null when skipped

Examples:
  # Serve with defaults on 0.0.0.0:8000
  lpsviz serve

  # Override the port from the environment
  LVPAL_SERVER_PORT=9000 lpsviz serve --config lvpal.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := a.load()
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			srv, err := server.NewServer(algorithms.NewRegistry(), logger, serverConfig(cfg))
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				errCh <- srv.Start()
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}

				return fmt.Errorf("server error: %w", err)
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout.Duration())
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error("shutdown error", zap.Error(err))

				return err
			}

			return nil
		},
	}
}

// serverConfig maps the loaded configuration onto the HTTP server.
func serverConfig(cfg *config.Config) *server.Config {
	return &server.Config{
		Host:        cfg.Server.Host,
		Port:        cfg.Server.Port,
		CORSOrigins: cfg.Server.CORSOrigins,
		RateLimit:   cfg.Server.RateLimit,
		RateBurst:   cfg.Server.RateBurst,
		Limits:      cfg.Limits.Policy(),
		TraceEvents: cfg.Limits.TraceEvents,
	}
}
