// Package observability lets a host watch what stackchart does without the
// libraries depending on any metrics or tracing backend.
//
// Three event families exist: [PipelineHooks] for data loads and renders,
// [CacheHooks] for artifact cache traffic and [GraphHooks] for state graph
// flushes. Each defaults to a no-op. A host swaps in its own
// implementation once at startup:
//
//	observability.SetCacheHooks(observability.LogCacheHooks{Logger: logger})
//
// and libraries emit through the current registration:
//
//	observability.Pipeline().OnLoadStart(ctx, path)
package observability

import (
	"context"
	"sync/atomic"
	"time"
)

// PipelineHooks receives events from the render pipeline.
type PipelineHooks interface {
	OnLoadStart(ctx context.Context, source string)
	OnLoadComplete(ctx context.Context, source string, rows int, duration time.Duration, err error)

	OnRenderStart(ctx context.Context, formats []string)
	OnRenderComplete(ctx context.Context, formats []string, duration time.Duration, err error)
}

// CacheHooks receives artifact cache traffic. keyType is the key prefix,
// e.g. "artifact".
type CacheHooks interface {
	OnCacheHit(ctx context.Context, keyType string)
	OnCacheMiss(ctx context.Context, keyType string)
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// GraphHooks receives one event per state graph flush: how many nodes
// recomputed and how many of those produced a new value.
type GraphHooks interface {
	OnFlush(graph string, recomputed, changed int, duration time.Duration)
}

type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnLoadStart(context.Context, string)                               {}
func (NoopPipelineHooks) OnLoadComplete(context.Context, string, int, time.Duration, error) {}
func (NoopPipelineHooks) OnRenderStart(context.Context, []string)                           {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, []string, time.Duration, error)  {}

type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

type NoopGraphHooks struct{}

func (NoopGraphHooks) OnFlush(string, int, int, time.Duration) {}

// registry is replaced wholesale on every Set call so readers never take a
// lock on the hot path.
type registry struct {
	pipeline PipelineHooks
	cache    CacheHooks
	graph    GraphHooks
}

var current atomic.Pointer[registry]

func init() { Reset() }

func update(fn func(r *registry)) {
	for {
		old := current.Load()
		next := *old
		fn(&next)
		if current.CompareAndSwap(old, &next) {
			return
		}
	}
}

// SetPipelineHooks registers pipeline hooks. nil is ignored.
func SetPipelineHooks(h PipelineHooks) {
	if h != nil {
		update(func(r *registry) { r.pipeline = h })
	}
}

// SetCacheHooks registers cache hooks. nil is ignored.
func SetCacheHooks(h CacheHooks) {
	if h != nil {
		update(func(r *registry) { r.cache = h })
	}
}

// SetGraphHooks registers graph hooks. nil is ignored.
func SetGraphHooks(h GraphHooks) {
	if h != nil {
		update(func(r *registry) { r.graph = h })
	}
}

func Pipeline() PipelineHooks { return current.Load().pipeline }
func Cache() CacheHooks       { return current.Load().cache }
func Graph() GraphHooks       { return current.Load().graph }

// Reset restores the no-op hooks.
func Reset() {
	current.Store(&registry{
		pipeline: NoopPipelineHooks{},
		cache:    NoopCacheHooks{},
		graph:    NoopGraphHooks{},
	})
}
