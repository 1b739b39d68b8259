package memory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tabula-historica/snapshot/pkg/adapters/memory"
	"github.com/tabula-historica/snapshot/pkg/ports"
)

func TestMemoryStore_Contract(t *testing.T) {
	store := memory.NewStore("contract")
	ports.RunSnapshotStoreContract(t, store)
}

func TestMemoryStore_Preloaded(t *testing.T) {
	src := []byte(`{"name":"demo"}`)
	store := memory.NewStoreWith("project", src)
	src[0] = 'X'

	data, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, `{"name":"demo"}`, string(data))
	assert.Equal(t, "memory:project", store.Describe())
	assert.Zero(t, store.Saves())
}

func TestMemoryStore_ConcurrentSaves(t *testing.T) {
	store := memory.NewStore("race")
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.Save(ctx, []byte(`{}`))
			_, _ = store.Load(ctx)
		}()
	}
	wg.Wait()

	assert.Equal(t, 20, store.Saves())
}
