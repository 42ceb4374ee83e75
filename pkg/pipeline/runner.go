package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mkuhnert/chartflow/pkg/cache"
	"github.com/mkuhnert/chartflow/pkg/chart"
	"github.com/mkuhnert/chartflow/pkg/chart/source"
	"github.com/mkuhnert/chartflow/pkg/observability"
	"github.com/mkuhnert/chartflow/pkg/sankey"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete load → layout → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{}

	// Stage 1: Load
	loadStart := time.Now()
	tbl, err := r.Load(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Table = tbl
	result.TableHash = hashTable(tbl)
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.RowCount = len(tbl.Rows)

	r.Logger.Info("loaded data",
		"chart", opts.Name,
		"rows", len(tbl.Rows),
		"duration", result.Stats.LoadTime)

	// Stage 2: Layout (Sankey only; linear types lay out during render)
	if opts.IsSankey() {
		layoutStart := time.Now()
		layout, layoutHit, err := r.LayoutWithCacheInfo(ctx, tbl, result.TableHash, opts)
		switch {
		case errors.Is(err, sankey.ErrEmptyGraph):
			// No usable flows is not a failure: the render stage
			// emits a neutral placeholder instead.
			result.Empty = true
			result.Stats.LayoutTime = time.Since(layoutStart)
			r.Logger.Warn("no renderable flows", "chart", opts.Name)
		case err != nil:
			return nil, fmt.Errorf("layout: %w", err)
		default:
			result.Layout = layout
			result.Stats.LayoutTime = time.Since(layoutStart)
			result.Stats.NodeCount = layout.NodeCount()
			result.Stats.FlowCount = len(layout.Flows)
			result.CacheInfo.LayoutHit = layoutHit

			r.Logger.Info("computed layout",
				"levels", layout.LevelCount(),
				"nodes", layout.NodeCount(),
				"flows", len(layout.Flows),
				"duration", result.Stats.LayoutTime)
		}
	}

	// Stage 3: Render
	renderStart := time.Now()
	artifact, renderHit, err := r.RenderWithCacheInfo(ctx, result, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifact = artifact
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered output",
		"format", opts.Format,
		"bytes", len(artifact),
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Load reads and decodes the chart's data file.
func (r *Runner) Load(ctx context.Context, opts Options) (chart.Table, error) {
	start := time.Now()
	observability.Pipeline().OnLoadStart(ctx, opts.Name, opts.Config.Data)

	tbl, err := source.ReadTable(opts.Config.Data)
	observability.Pipeline().OnLoadComplete(ctx, opts.Name, opts.Config.Data,
		len(tbl.Rows), time.Since(start), err)
	return tbl, err
}

// LayoutWithCacheInfo computes the Sankey layout with caching and
// returns cache hit info.
func (r *Runner) LayoutWithCacheInfo(ctx context.Context, tbl chart.Table, tableHash string, opts Options) (*sankey.Layout, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	keyer := r.scopedKeyer(opts.Name)
	cacheKey := keyer.LayoutKey(tableHash, opts.LayoutKeyOpts())

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var cached sankey.Layout
			if err := json.Unmarshal(data, &cached); err == nil {
				observability.Cache().OnCacheHit(ctx, "layout")
				return &cached, true, nil
			}
			// Fall through to recompute on deserialization failure
		}
		observability.Cache().OnCacheMiss(ctx, "layout")
	}

	start := time.Now()
	observability.Pipeline().OnLayoutStart(ctx, opts.Config.Type, len(tbl.Rows))
	layout, err := sankey.Build(tbl, sankey.Options{
		NodePadding:  opts.Config.NodePadding,
		Proportional: opts.Config.Proportional,
	})
	observability.Pipeline().OnLayoutComplete(ctx, opts.Config.Type, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	if data, err := json.Marshal(layout); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLLayout)
		observability.Cache().OnCacheSet(ctx, "layout", len(data))
	}

	return layout, false, nil
}

// Layout is a convenience wrapper that discards the cache hit info.
func (r *Runner) Layout(ctx context.Context, tbl chart.Table, opts Options) (*sankey.Layout, error) {
	layout, _, err := r.LayoutWithCacheInfo(ctx, tbl, hashTable(tbl), opts)
	return layout, err
}

// RenderWithCacheInfo renders the artifact with caching and returns
// cache hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, result *Result, opts Options) ([]byte, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	// Key on the layout when there is one, otherwise on the raw table.
	contentHash := result.TableHash
	if result.Layout != nil {
		if data, err := json.Marshal(result.Layout); err == nil {
			contentHash = cache.Hash(data)
		}
	}

	keyer := r.scopedKeyer(opts.Name)
	cacheKey := keyer.ArtifactKey(contentHash, opts.ArtifactKeyOpts())

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, "artifact")
			return data, true, nil
		}
		observability.Cache().OnCacheMiss(ctx, "artifact")
	}

	start := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Format)
	artifact, err := renderArtifact(result, opts)
	observability.Pipeline().OnRenderComplete(ctx, opts.Format, len(artifact), time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	_ = r.Cache.Set(ctx, cacheKey, artifact, cache.TTLArtifact)
	observability.Cache().OnCacheSet(ctx, "artifact", len(artifact))

	return artifact, false, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// scopedKeyer namespaces cache keys per chart.
func (r *Runner) scopedKeyer(name string) cache.Keyer {
	return cache.NewScopedKeyer(r.Keyer, "chart:"+name+":")
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

// hashTable derives a stable content hash from a decoded table.
func hashTable(tbl chart.Table) string {
	data, _ := json.Marshal(tbl)
	return cache.Hash(data)
}
