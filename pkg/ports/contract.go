package ports

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tabula-historica/snapshot/pkg/domain"
)

// RunSnapshotStoreContract runs a suite of tests to verify that a SnapshotStore implementation
// adheres to the defined interface contract. The store must start empty.
func RunSnapshotStoreContract(t *testing.T, store SnapshotStore) {
	ctx := context.Background()

	t.Run("Load Empty", func(t *testing.T) {
		_, err := store.Load(ctx)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("Save and Load", func(t *testing.T) {
		data := []byte(`{"name":"demo","layers":[{"id":1}]}`)
		require.NoError(t, store.Save(ctx, data), "Save should not return error")

		loaded, err := store.Load(ctx)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, data, loaded)
	})

	t.Run("Save Overwrites", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, []byte(`{"name":"first","extra":true}`)))
		require.NoError(t, store.Save(ctx, []byte(`{"name":"second"}`)))

		loaded, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, `{"name":"second"}`, string(loaded))
	})

	t.Run("Saved Data Is Isolated", func(t *testing.T) {
		data := []byte(`{"name":"isolated"}`)
		require.NoError(t, store.Save(ctx, data))
		data[2] = 'X'

		loaded, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, `{"name":"isolated"}`, string(loaded))
	})
}
