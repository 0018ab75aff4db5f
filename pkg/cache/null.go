package cache

import (
	"context"
	"time"
)

// NullCache is the cache used by `render --no-cache` and by runners built
// without one: every chart is rendered from scratch and no artifact is
// kept.
type NullCache struct{}

var _ Cache = (*NullCache)(nil)

// NewNullCache returns a cache that never hits.
func NewNullCache() Cache { return &NullCache{} }

// Get reports a miss for every artifact key.
func (*NullCache) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }

// Set drops the rendered artifact.
func (*NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }

func (*NullCache) Delete(context.Context, string) error { return nil }

func (*NullCache) Close() error { return nil }
