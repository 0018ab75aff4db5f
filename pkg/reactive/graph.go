// Package reactive implements the explicit dependency graph that keeps a
// chart's derived values in step with its inputs.
//
// # Model
//
// A [Graph] holds three kinds of node:
//
//   - [Source]: a settable value cell
//   - [Memo]: a pure derivation of earlier nodes, cached by value equality
//   - effects: side-effect sinks run after each propagation
//
// A node may only depend on nodes that already exist when it is created, so
// the graph is acyclic by construction and creation order is a topological
// order. Each node also gets a layer (1 + the highest layer among its
// dependencies) which groups nodes that can be computed independently.
//
// # Propagation
//
// Setting a source to a new value marks its direct dependents dirty and
// flushes synchronously: dirty nodes are recomputed in creation order, each
// at most once per flush, and a memo whose new value equals its old one
// does not mark its own dependents. Reading a dirty memo recomputes it on
// the spot, so reads are never stale.
//
// [Graph.Batch] defers propagation until several sources have been set.
// While a batch is open, sources keep returning their old values, so
// readers see either the complete old snapshot or the complete new one.
//
// A Graph is not safe for concurrent use.
package reactive

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/stackchart/pkg/observability"
)

// Kind distinguishes the node types.
type Kind int

const (
	KindSource Kind = iota
	KindMemo
	KindEffect
)

func (k Kind) String() string {
	switch k {
	case KindSource:
		return "source"
	case KindMemo:
		return "memo"
	case KindEffect:
		return "effect"
	}
	return "unknown"
}

// Node is anything another node can depend on.
type Node interface {
	node() *node
}

type node struct {
	id         int
	name       string
	kind       Kind
	deps       []int
	dependents []int
	layer      int
	dirty      bool
	computes   int
	// recompute refreshes the cached value and reports whether it changed.
	recompute func() bool
}

func (n *node) node() *node { return n }

// NodeInfo describes one node for inspection and debugging.
type NodeInfo struct {
	ID       int
	Name     string
	Kind     Kind
	Layer    int
	Deps     []int
	Computes int
}

// Stats summarises graph activity.
type Stats struct {
	Nodes      int
	Flushes    int
	Recomputes int
}

// Graph owns the nodes of one chart and the order they recompute in.
type Graph struct {
	name    string
	logger  *log.Logger
	nodes   []*node
	pending []func() bool // source commits waiting for a batch to close

	batchDepth int
	flushing   bool
	flushes    int
	recomputes int
}

// Option configures a Graph.
type Option func(*Graph)

// WithLogger sets the logger used for flush diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(g *Graph) {
		if l != nil {
			g.logger = l
		}
	}
}

// New creates an empty graph.
func New(name string, opts ...Option) *Graph {
	g := &Graph{name: name, logger: log.Default()}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Name returns the graph's name.
func (g *Graph) Name() string { return g.name }

func (g *Graph) add(name string, kind Kind, deps []Node) *node {
	n := &node{id: len(g.nodes), name: name, kind: kind}
	for _, d := range deps {
		dn := d.node()
		if dn.id >= len(g.nodes) || g.nodes[dn.id] != dn {
			panic(fmt.Sprintf("reactive: %s depends on a node from another graph", name))
		}
		n.deps = append(n.deps, dn.id)
		dn.dependents = append(dn.dependents, n.id)
		n.layer = max(n.layer, dn.layer+1)
	}
	g.nodes = append(g.nodes, n)
	return n
}

// markDependents flags the direct dependents of n as dirty.
func (g *Graph) markDependents(n *node) {
	for _, id := range n.dependents {
		g.nodes[id].dirty = true
	}
}

// refresh brings a dirty node up to date, pulling its dependencies first.
func (g *Graph) refresh(n *node) {
	if !n.dirty {
		return
	}
	for _, id := range n.deps {
		g.refresh(g.nodes[id])
	}
	n.dirty = false
	n.computes++
	g.recomputes++
	if n.recompute() {
		g.markDependents(n)
	}
}

// Batch runs fn with propagation deferred. Sources set inside fn commit
// together when the outermost batch returns, followed by a single flush.
func (g *Graph) Batch(fn func()) {
	g.batchDepth++
	defer func() {
		g.batchDepth--
		if g.batchDepth == 0 {
			g.commit()
		}
	}()
	fn()
}

// commit applies pending source writes and flushes.
func (g *Graph) commit() {
	pending := g.pending
	g.pending = nil
	changed := false
	for _, apply := range pending {
		if apply() {
			changed = true
		}
	}
	if changed {
		g.flush()
	}
}

// write either queues or applies a source write.
func (g *Graph) write(apply func() bool) {
	if g.batchDepth > 0 || g.flushing {
		g.pending = append(g.pending, apply)
		return
	}
	if apply() {
		g.flush()
	}
}

// flush recomputes every dirty node in creation order, then runs effects.
func (g *Graph) flush() {
	start := time.Now()
	g.flushing = true

	var recomputed, changed int
	var effects []*node
	for _, n := range g.nodes {
		if !n.dirty {
			continue
		}
		if n.kind == KindEffect {
			effects = append(effects, n)
			continue
		}
		n.dirty = false
		n.computes++
		g.recomputes++
		recomputed++
		if n.recompute() {
			changed++
			g.markDependents(n)
		}
	}
	g.flushes++

	dur := time.Since(start)
	g.logger.Debug("flush", "graph", g.name, "recomputed", recomputed, "changed", changed, "took", dur)
	observability.Graph().OnFlush(g.name, recomputed, changed, dur)

	for _, n := range effects {
		n.dirty = false
		n.computes++
		n.recompute()
	}
	g.flushing = false

	// Writes made by effects were queued; apply them as the next step.
	if len(g.pending) > 0 && g.batchDepth == 0 {
		g.commit()
	}
}

// Nodes lists every node in creation order.
func (g *Graph) Nodes() []NodeInfo {
	out := make([]NodeInfo, len(g.nodes))
	for i, n := range g.nodes {
		out[i] = NodeInfo{
			ID:       n.id,
			Name:     n.name,
			Kind:     n.kind,
			Layer:    n.layer,
			Deps:     append([]int(nil), n.deps...),
			Computes: n.computes,
		}
	}
	return out
}

// Stats returns activity counters.
func (g *Graph) Stats() Stats {
	return Stats{Nodes: len(g.nodes), Flushes: g.flushes, Recomputes: g.recomputes}
}

// Effect registers fn to run once now and again after every flush in which
// one of deps changed.
func (g *Graph) Effect(name string, fn func(), deps ...Node) {
	n := g.add(name, KindEffect, deps)
	n.recompute = func() bool {
		fn()
		return false
	}
	n.computes++
	fn()
}
