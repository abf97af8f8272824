package storage

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisStore(client), server
}

func TestRedisStore_LoadMissingKey(t *testing.T) {
	store, _ := newTestRedisStore(t)

	value, found, err := store.Load(context.Background(), KeyMenu)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, value)
}

func TestRedisStore_SaveThenLoad(t *testing.T) {
	store, server := newTestRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, KeyCart, `[{"id":1}]`))

	value, found, err := store.Load(ctx, KeyCart)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[{"id":1}]`, value)

	raw, err := server.Get(KeyCart)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":1}]`, raw)
}

func TestRedisStore_LoadAfterServerError(t *testing.T) {
	store, server := newTestRedisStore(t)
	server.Close()

	_, _, err := store.Load(context.Background(), KeyMenu)
	assert.Error(t, err)
}
