package cache

import (
	"context"
	"strings"
	"time"

	"github.com/matzehuels/stackchart/pkg/observability"
)

// Observed reports every lookup and write of inner to the registered
// observability cache hooks. The key type is the key's prefix ("artifact").
func Observed(inner Cache) Cache {
	return &observed{inner: inner}
}

type observed struct {
	inner Cache
}

func (c *observed) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, hit, err := c.inner.Get(ctx, key)
	if err == nil {
		if hit {
			observability.Cache().OnCacheHit(ctx, keyType(key))
		} else {
			observability.Cache().OnCacheMiss(ctx, keyType(key))
		}
	}
	return data, hit, err
}

func (c *observed) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if err := c.inner.Set(ctx, key, data, ttl); err != nil {
		return err
	}
	observability.Cache().OnCacheSet(ctx, keyType(key), len(data))
	return nil
}

func (c *observed) Delete(ctx context.Context, key string) error { return c.inner.Delete(ctx, key) }
func (c *observed) Close() error                                 { return c.inner.Close() }

func keyType(key string) string {
	if i := strings.IndexByte(key, ':'); i > 0 {
		return key[:i]
	}
	return "unknown"
}
