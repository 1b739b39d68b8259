package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tabula-historica/snapshot/pkg/adapters/file"
	"github.com/tabula-historica/snapshot/pkg/domain"
	"github.com/tabula-historica/snapshot/pkg/ports"
)

// Ensure Store implements SnapshotStore
var _ ports.SnapshotStore = (*file.Store)(nil)

func TestStore_Contract(t *testing.T) {
	store := file.New(filepath.Join(t.TempDir(), "static-project.json"))
	ports.RunSnapshotStoreContract(t, store)
}

func TestStore_SaveMissingDirectory(t *testing.T) {
	store := file.New(filepath.Join(t.TempDir(), "missing", "static-project.json"))

	err := store.Save(context.Background(), []byte(`{}`))
	assert.ErrorIs(t, err, domain.ErrWrite)
}

func TestStore_SaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store := file.New(filepath.Join(dir, "out.json"))

	require.NoError(t, store.Save(context.Background(), []byte(`{"a":1}`)))
	require.NoError(t, store.Save(context.Background(), []byte(`{"a":2}`)))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "out.json", entries[0].Name())
}

func TestStore_SavePermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	store := file.New(path)

	require.NoError(t, store.Save(context.Background(), []byte(`{}`)))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, file.DefaultPerm, info.Mode().Perm())
}

func TestStore_Cancelled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	store := file.New(path)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, store.Save(ctx, []byte(`{}`)), context.Canceled)
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "cancelled save must not create the file")

	_, err = store.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStore_Describe(t *testing.T) {
	assert.Equal(t, "a/b.json", file.New("a/b.json").Describe())
}
