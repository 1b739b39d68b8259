package snapshot

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tabula-historica/snapshot/internal/logging"
	"github.com/tabula-historica/snapshot/pkg/adapters/file"
	"github.com/tabula-historica/snapshot/pkg/domain"
	"github.com/tabula-historica/snapshot/pkg/ports"
)

const (
	// DefaultInputPath is the project document exported when no input is configured.
	// Relative to the working directory.
	DefaultInputPath = "../projects/final_project/project.json"
	// DefaultOutputPath is where the snapshot is published when no output is configured.
	DefaultOutputPath = "../static/static-project.json"
)

// Exporter loads a project document, strips its private keys and saves the snapshot.
type Exporter struct {
	loader       ports.DocumentLoader
	saver        ports.SnapshotSaver
	mirrors      []ports.SnapshotSaver
	keys         []string
	allowMissing bool
	indent       string
	logger       *slog.Logger
}

// Option defines a functional option for configuring the Exporter.
type Option func(*Exporter)

// WithStripKeys replaces the list of top-level keys to remove.
// An empty list keeps domain.DefaultStripKeys.
func WithStripKeys(keys ...string) Option {
	return func(e *Exporter) {
		if len(keys) > 0 {
			e.keys = append([]string(nil), keys...)
		}
	}
}

// WithAllowMissing makes absent keys a no-op instead of a failure.
func WithAllowMissing(allow bool) Option {
	return func(e *Exporter) {
		e.allowMissing = allow
	}
}

// WithIndent pretty-prints the snapshot using indent for each nesting level.
func WithIndent(indent string) Option {
	return func(e *Exporter) {
		e.indent = indent
	}
}

// WithMirror publishes the snapshot to additional locations after the primary one.
func WithMirror(savers ...ports.SnapshotSaver) Option {
	return func(e *Exporter) {
		e.mirrors = append(e.mirrors, savers...)
	}
}

// WithLogger sets a custom structured logger for the exporter.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Exporter) {
		e.logger = logger
	}
}

// New creates an Exporter reading from loader and publishing to saver.
func New(loader ports.DocumentLoader, saver ports.SnapshotSaver, opts ...Option) *Exporter {
	e := &Exporter{
		loader: loader,
		saver:  saver,
		keys:   domain.DefaultStripKeys(),
	}

	for _, opt := range opts {
		opt(e)
	}

	if e.logger == nil {
		e.logger = logging.NewNop()
	}

	return e
}

// Keys returns the top-level keys the exporter removes.
func (e *Exporter) Keys() []string {
	return append([]string(nil), e.keys...)
}

// Render loads the project document and returns the snapshot without saving it.
func (e *Exporter) Render(ctx context.Context) ([]byte, *domain.Report, error) {
	source := ports.Describe(e.loader)

	data, err := e.loader.Load(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load project: %w", err)
	}

	stripped, err := Strip(data, e.keys, e.allowMissing)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", source, err)
	}

	out, err := Indent(stripped.Data, e.indent)
	if err != nil {
		return nil, nil, err
	}

	if len(stripped.Missing) > 0 {
		e.logger.Warn("Keys absent from project", "source", source, "keys", stripped.Missing)
	}

	report := &domain.Report{
		Source:      source,
		Removed:     stripped.Removed,
		Missing:     stripped.Missing,
		InputBytes:  len(data),
		OutputBytes: len(out),
	}
	return out, report, nil
}

// Export renders the snapshot and saves it to the primary location, then to every mirror.
// Nothing is saved if the project cannot be loaded or stripped. When a mirror fails, the
// primary snapshot stays published and the report is returned along with the error.
func (e *Exporter) Export(ctx context.Context) (*domain.Report, error) {
	out, report, err := e.Render(ctx)
	if err != nil {
		return nil, err
	}

	report.Destination = ports.Describe(e.saver)
	if err := e.saver.Save(ctx, out); err != nil {
		return nil, fmt.Errorf("failed to save snapshot: %w", err)
	}
	e.logger.Info("Snapshot exported",
		"source", report.Source,
		"destination", report.Destination,
		"removed", report.Removed,
		"bytes", report.OutputBytes,
	)

	for _, m := range e.mirrors {
		if err := m.Save(ctx, out); err != nil {
			return report, fmt.Errorf("failed to mirror snapshot to %s: %w", ports.Describe(m), err)
		}
		e.logger.Debug("Snapshot mirrored", "destination", ports.Describe(m))
	}

	return report, nil
}

// ExportSnapshot exports DefaultInputPath to DefaultOutputPath, removing the default keys.
func ExportSnapshot(ctx context.Context) error {
	_, err := New(file.New(DefaultInputPath), file.New(DefaultOutputPath)).Export(ctx)
	return err
}
