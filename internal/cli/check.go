package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/tabula-historica/snapshot/internal/config"
	"github.com/tabula-historica/snapshot/pkg/adapters/file"
	"github.com/tabula-historica/snapshot/pkg/domain"
)

// Check renders the snapshot and compares it with the published output file.
// Differences are written to w and reported as domain.ErrStale.
func Check(ctx context.Context, cfg config.Config, w io.Writer, logger *slog.Logger) error {
	exp, cleanup := newExporter(cfg, logger)
	defer cleanup()

	fresh, _, err := exp.Render(ctx)
	if err != nil {
		return err
	}

	published, err := file.New(cfg.Output).Load(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			fmt.Fprintf(w, "%s has not been published\n", cfg.Output)
			return fmt.Errorf("%w: %s missing", domain.ErrStale, cfg.Output)
		}
		return err
	}

	if bytes.Equal(published, fresh) {
		logger.Info("Snapshot up to date", "output", cfg.Output)
		return nil
	}

	fmt.Fprintf(w, "%s is out of date:\n", cfg.Output)
	changed, err := WriteDiff(w, published, fresh)
	if err != nil {
		return err
	}
	if changed == 0 {
		// Same content, different formatting.
		fmt.Fprintln(w, "(formatting differs)")
	}
	return fmt.Errorf("%w: %s", domain.ErrStale, cfg.Output)
}
