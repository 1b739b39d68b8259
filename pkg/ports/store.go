package ports

import "context"

// DocumentLoader reads a raw project document or snapshot from a location.
type DocumentLoader interface {
	// Load returns the full contents of the location.
	// Returns domain.ErrNotFound if nothing is stored there.
	Load(ctx context.Context) ([]byte, error)
}

// SnapshotSaver persists a rendered snapshot to a location.
type SnapshotSaver interface {
	// Save replaces the contents of the location with data.
	// Implementations must not leave a partially written snapshot behind on failure.
	Save(ctx context.Context, data []byte) error
}

// SnapshotStore is a location that can be both written and read back,
// such as the published output file or a Redis key.
type SnapshotStore interface {
	DocumentLoader
	SnapshotSaver
}

// Describer is implemented by locations that can name themselves in logs and reports.
type Describer interface {
	Describe() string
}

// Describe returns a human readable name for a location.
func Describe(v any) string {
	if d, ok := v.(Describer); ok {
		return d.Describe()
	}
	return "<unnamed>"
}
