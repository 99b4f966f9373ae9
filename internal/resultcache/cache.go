// Package resultcache caches computed validation results keyed by the
// normalized input and region. Concurrent misses for the same key are
// collapsed into one computation.
package resultcache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// ErrNotFound is returned by a Store when a key is missing or expired.
var ErrNotFound = errors.New("resultcache: key not found")

// Store holds encoded values. Implementations must be safe for
// concurrent use.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores value for ttl. A zero ttl means no expiry.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Ping(ctx context.Context) error
	Close() error
}

// Cache is a typed view over a Store. Values round-trip through JSON so
// a cached value is returned exactly as it was stored, whatever the backend.
type Cache[V any] struct {
	store  Store
	ttl    time.Duration
	group  singleflight.Group
	logger *zap.Logger
}

// Config configures a Cache.
type Config struct {
	// TTL applies to every entry. Zero keeps entries until evicted.
	TTL time.Duration
	// Logger receives store errors, which are otherwise treated as misses.
	Logger *zap.Logger
}

// New wraps store.
func New[V any](store Store, cfg Config) *Cache[V] {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &Cache[V]{store: store, ttl: cfg.TTL, logger: cfg.Logger}
}

// Key joins a region and a normalized value into a cache key.
func Key(value, region string) string {
	return region + "|" + value
}

// GetOrCompute returns the value stored under key, or calls compute and
// stores its result. hit reports whether the value came from the store.
// Callers racing on the same missing key share a single compute call.
// A compute error is returned as is and nothing is stored.
func (c *Cache[V]) GetOrCompute(ctx context.Context, key string, compute func(context.Context) (V, error)) (v V, hit bool, err error) {
	if v, ok := c.get(ctx, key); ok {
		return v, true, nil
	}

	res, err, _ := c.group.Do(key, func() (any, error) {
		// another caller may have stored it while we waited
		if v, ok := c.get(ctx, key); ok {
			return v, nil
		}
		v, err := compute(ctx)
		if err != nil {
			return v, err
		}
		c.put(ctx, key, v)
		return v, nil
	})
	if err != nil {
		var zero V
		return zero, false, err
	}
	return res.(V), false, nil
}

// Ping checks the backing store.
func (c *Cache[V]) Ping(ctx context.Context) error {
	return c.store.Ping(ctx)
}

// Close releases the backing store.
func (c *Cache[V]) Close() error {
	return c.store.Close()
}

func (c *Cache[V]) get(ctx context.Context, key string) (V, bool) {
	var v V
	data, err := c.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			c.logger.Warn("result cache read failed", zap.String("key", key), zap.Error(err))
		}
		return v, false
	}
	if err := json.Unmarshal(data, &v); err != nil {
		c.logger.Warn("result cache entry undecodable", zap.String("key", key), zap.Error(err))
		return v, false
	}
	return v, true
}

func (c *Cache[V]) put(ctx context.Context, key string, v V) {
	data, err := json.Marshal(v)
	if err != nil {
		c.logger.Warn("result cache encode failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.store.Set(ctx, key, data, c.ttl); err != nil {
		c.logger.Warn("result cache write failed", zap.String("key", key), zap.Error(err))
	}
}
