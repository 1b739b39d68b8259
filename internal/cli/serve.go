package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/tabula-historica/snapshot/internal/config"
	httpAdapter "github.com/tabula-historica/snapshot/pkg/adapters/http"
	"github.com/tabula-historica/snapshot/pkg/ports"
)

// ShutdownTimeout bounds how long outstanding requests may take once the server is stopping.
const ShutdownTimeout = 5 * time.Second

// Serve serves the published snapshot over HTTP until ctx is cancelled.
func Serve(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	ln, err := net.Listen("tcp", cfg.Serve.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.Serve.Addr, err)
	}
	return ServeListener(ctx, ln, cfg, logger)
}

// ServeListener is Serve on an existing listener.
func ServeListener(ctx context.Context, ln net.Listener, cfg config.Config, logger *slog.Logger) error {
	store, cleanup := publishedStore(cfg)
	defer cleanup()

	srv := &http.Server{
		Handler: httpAdapter.NewHandler(store,
			httpAdapter.WithName(cfg.Serve.Name),
			httpAdapter.WithLogger(logger),
		),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("Serving snapshot", "addr", ln.Addr().String(), "store", ports.Describe(store), "name", cfg.Serve.Name)
		serverErrors <- srv.Serve(ln)
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case <-ctx.Done():
		logger.Info("Shutting down server")

		// Give outstanding requests a deadline for completion.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("Graceful shutdown did not complete", "timeout", ShutdownTimeout, "error", err)
			if err := srv.Close(); err != nil {
				return fmt.Errorf("failed to close server: %w", err)
			}
		}
		return nil
	}
}
