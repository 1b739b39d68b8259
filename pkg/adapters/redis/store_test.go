package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tabula-historica/snapshot/pkg/adapters/redis"
	"github.com/tabula-historica/snapshot/pkg/domain"
	"github.com/tabula-historica/snapshot/pkg/ports"
)

// Ensure Store implements SnapshotStore
var _ ports.SnapshotStore = (*redis.Store)(nil)

func TestRedisStore_Contract(t *testing.T) {
	mr := miniredis.RunT(t)

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})

	store := redis.NewFromClient(client)
	ports.RunSnapshotStoreContract(t, store)
}

func TestRedisStore_KeyAndTTL(t *testing.T) {
	mr := miniredis.RunT(t)

	store := redis.New(mr.Addr(), "", 0,
		redis.WithKey("site:project"),
		redis.WithTTL(10*time.Second),
	)
	defer store.Close()

	ctx := context.Background()
	require.NoError(t, store.Save(ctx, []byte(`{"name":"demo"}`)))

	val, err := mr.Get("site:project")
	require.NoError(t, err)
	assert.Equal(t, `{"name":"demo"}`, val)
	assert.Equal(t, 10*time.Second, mr.TTL("site:project"))

	mr.FastForward(11 * time.Second)

	_, err = store.Load(ctx)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRedisStore_EmptyKeyKeepsDefault(t *testing.T) {
	mr := miniredis.RunT(t)

	store := redis.New(mr.Addr(), "", 0, redis.WithKey(""))
	defer store.Close()

	require.NoError(t, store.Save(context.Background(), []byte(`{}`)))
	assert.True(t, mr.Exists(redis.DefaultKey))
	assert.Contains(t, store.Describe(), redis.DefaultKey)
}

func TestRedisStore_Unavailable(t *testing.T) {
	mr := miniredis.RunT(t)
	store := redis.New(mr.Addr(), "", 0)
	defer store.Close()
	mr.Close()

	err := store.Save(context.Background(), []byte(`{}`))
	assert.ErrorIs(t, err, domain.ErrWrite)
}
