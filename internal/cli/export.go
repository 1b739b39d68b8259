package cli

import (
	"context"
	"log/slog"

	"github.com/tabula-historica/snapshot/internal/config"
	"github.com/tabula-historica/snapshot/pkg/domain"
)

// Export publishes the snapshot described by cfg.
func Export(ctx context.Context, cfg config.Config, logger *slog.Logger) (*domain.Report, error) {
	exp, cleanup := newExporter(cfg, logger)
	defer cleanup()

	return exp.Export(ctx)
}
