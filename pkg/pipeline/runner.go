package pipeline

import (
	"context"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/stackchart/pkg/bounds"
	"github.com/matzehuels/stackchart/pkg/cache"
	"github.com/matzehuels/stackchart/pkg/chart"
	"github.com/matzehuels/stackchart/pkg/config"
	"github.com/matzehuels/stackchart/pkg/dataset"
	"github.com/matzehuels/stackchart/pkg/errors"
	"github.com/matzehuels/stackchart/pkg/watch"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger; it doesn't
// keep mounted charts between runs.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner. A nil cache disables caching.
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Logger: logger}
}

// Loaded is the output of the load stage.
type Loaded struct {
	File  *config.File
	Table *dataset.Table

	ConfigHash string
	DataHash   string
	DataPath   string
}

// Execute runs the complete load → mount → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)

	result := &Result{Artifacts: make(map[string][]byte)}

	configHash, dataPath, dataHash, err := r.hashInputs(opts)
	if err != nil {
		return nil, err
	}
	result.ConfigHash, result.DataHash = configHash, dataHash

	if !opts.Refresh {
		if artifacts, ok := r.cached(ctx, configHash, dataHash, opts); ok {
			result.Artifacts = artifacts
			result.CacheInfo.RenderHit = true
			opts.Logger.Info("rendered from cache", "formats", opts.Formats, "data", dataPath)
			return result, nil
		}
	}

	// Stage 1: Load
	loadStart := time.Now()
	loaded, err := r.Load(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.Rows = len(loaded.Table.Records)
	result.Stats.Series = len(loaded.File.Series)
	opts.Logger.Info("loaded data",
		"rows", result.Stats.Rows,
		"columns", len(loaded.Table.Columns),
		"duration", result.Stats.LoadTime)

	// Stage 2: Mount
	m, err := r.Mount(loaded, opts)
	if err != nil {
		return nil, err
	}
	result.ChartID = m.ID

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, err := Render(ctx, m, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	opts.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	for format, data := range artifacts {
		key := cache.ArtifactKey(configHash, dataHash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, key, data, TTLArtifact); err != nil {
			opts.Logger.Warn("cache write failed", "format", format, "err", err)
		}
	}
	return result, nil
}

// Load reads the chart description and its data.
func (r *Runner) Load(ctx context.Context, opts Options) (*Loaded, error) {
	f, err := config.Load(opts.Config)
	if err != nil {
		return nil, err
	}
	if opts.Sheet != "" {
		f.Data.Sheet = opts.Sheet
	}
	dataPath := f.DataPath()
	if opts.Data != "" {
		dataPath = opts.Data
	}

	t, err := dataset.Load(ctx, dataPath, dataset.Options{Sheet: f.Data.Sheet})
	if err != nil {
		return nil, err
	}
	return &Loaded{File: f, Table: t, DataPath: dataPath}, nil
}

// Mount binds loaded data to its chart, applies the size, debug and pointer
// overrides and settles the state.
func (r *Runner) Mount(l *Loaded, opts Options) (*chart.Mounted[dataset.Record], error) {
	r.applyLogger(&opts)

	c, err := l.File.Chart(l.Table)
	if err != nil {
		return nil, err
	}
	c.Logger = opts.Logger
	if opts.Debug {
		c.Debug = true
	}

	fallback := watch.At(bounds.New(orDefault(opts.Width, config.DefaultWidth), orDefault(opts.Height, config.DefaultHeight)))
	c.Aspect = resize(c.Aspect, fallback, opts.Width, opts.Height)
	node := hostNode(c.Aspect, fallback)

	m := c.Mount(l.Table.Records)
	pointer := watch.Pointer{}
	if opts.Pointer != nil {
		pointer = *opts.Pointer
	}
	m.Observe(node, pointer)

	outer := m.State.Outer.Get()
	if outer.IsEmpty() {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "chart has no area (%gx%g)", outer.Width(), outer.Height())
	}
	opts.Logger.Debug("mounted chart",
		"id", m.ID[:8],
		"size", c.Aspect,
		"inner", m.State.Inner.Get())
	return m, nil
}

// resize applies CLI size overrides, keeping the declared ratio when only
// one side is given.
func resize(a chart.AspectRatio, node watch.Node, width, height float64) chart.AspectRatio {
	if width == 0 && height == 0 {
		return a
	}
	if width > 0 && height > 0 {
		return chart.Outer(width, height)
	}
	ratio := float64(config.DefaultWidth) / config.DefaultHeight
	if w, h := a.Size(node); w > 0 && h > 0 {
		ratio = w / h
	}
	if width > 0 {
		return chart.OuterWidth(width, ratio)
	}
	return chart.OuterHeight(height, ratio)
}

// hostNode is the node the chart is observed in: the chart's own size when
// it is fixed, the fallback when the chart takes its width from the node.
func hostNode(a chart.AspectRatio, fallback watch.Node) watch.Node {
	if a.FollowsNode() {
		return fallback
	}
	if w, h := a.Size(fallback); w > 0 && h > 0 {
		return watch.At(bounds.New(w, h))
	}
	return fallback
}

func orDefault(v, def float64) float64 {
	if v > 0 {
		return v
	}
	return def
}

// hashInputs hashes the description and the data file it points at.
func (r *Runner) hashInputs(opts Options) (configHash, dataPath, dataHash string, err error) {
	raw, err := os.ReadFile(opts.Config)
	if err != nil {
		if os.IsNotExist(err) {
			return "", "", "", errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", opts.Config)
		}
		return "", "", "", errors.Wrap(errors.ErrCodeInvalidPath, err, "read %s", opts.Config)
	}
	f, err := config.Load(opts.Config)
	if err != nil {
		return "", "", "", err
	}
	dataPath = f.DataPath()
	if opts.Data != "" {
		dataPath = opts.Data
	}
	dataHash, err = cache.HashFile(dataPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", "", "", errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", dataPath)
		}
		return "", "", "", errors.Wrap(errors.ErrCodeInvalidPath, err, "read %s", dataPath)
	}
	return cache.Hash(raw), dataPath, dataHash, nil
}

// cached returns every requested format from the cache, or false if any
// is missing.
func (r *Runner) cached(ctx context.Context, configHash, dataHash string, opts Options) (map[string][]byte, bool) {
	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		key := cache.ArtifactKey(configHash, dataHash, opts.ArtifactKeyOpts(format))
		data, hit, err := r.Cache.Get(ctx, key)
		if err != nil || !hit {
			return nil, false
		}
		artifacts[format] = data
	}
	return artifacts, true
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
