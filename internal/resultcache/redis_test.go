//go:build integration

package resultcache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"

	"github.com/optimode/contactkit/internal/resultcache"
)

func startRedis(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	container, err := tcredis.Run(ctx, "redis:7-alpine")
	require.NoError(t, err)
	t.Cleanup(func() { _ = testcontainers.TerminateContainer(container) })

	url, err := container.ConnectionString(ctx)
	require.NoError(t, err)
	return url
}

func TestRedis_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store, err := resultcache.DialRedis(ctx, startRedis(t), "contactkit:test:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	_, err = store.Get(ctx, "missing")
	assert.ErrorIs(t, err, resultcache.ErrNotFound)

	require.NoError(t, store.Set(ctx, "k", []byte(`{"valid":true}`), time.Minute))
	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.JSONEq(t, `{"valid":true}`, string(got))
	assert.NoError(t, store.Ping(ctx))
}

func TestRedis_SharedAcrossCaches(t *testing.T) {
	ctx := context.Background()
	url := startRedis(t)

	storeA, err := resultcache.DialRedis(ctx, url, "contactkit:")
	require.NoError(t, err)
	defer func() { _ = storeA.Close() }()
	storeB, err := resultcache.DialRedis(ctx, url, "contactkit:")
	require.NoError(t, err)
	defer func() { _ = storeB.Close() }()

	a := resultcache.New[phoneResult](storeA, resultcache.Config{TTL: time.Minute})
	b := resultcache.New[phoneResult](storeB, resultcache.Config{TTL: time.Minute})

	calls := 0
	compute := func(context.Context) (phoneResult, error) {
		calls++
		return phoneResult{Valid: true, Carrier: "Partner"}, nil
	}

	key := resultcache.Key("0541234567", "IL")
	_, hit, err := a.GetOrCompute(ctx, key, compute)
	require.NoError(t, err)
	assert.False(t, hit)

	res, hit, err := b.GetOrCompute(ctx, key, compute)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, "Partner", res.Carrier)
	assert.Equal(t, 1, calls)
}
