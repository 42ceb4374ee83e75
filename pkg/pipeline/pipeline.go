// Package pipeline provides the core chart rendering pipeline for
// chartflow.
//
// This package implements the complete load → layout → render pipeline
// used by the CLI. Centralizing the logic keeps caching and
// instrumentation behavior identical across entry points.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Read and decode the chart's data file into a table
//  2. Layout: Compute positioned geometry for the chart type
//  3. Render: Generate output in the requested format (SVG, JSON, DOT, PDF, PNG)
//
// Each stage can be run independently or as part of the complete
// pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Name:   "energy",
//	    Config: cfg,
//	    Format: pipeline.FormatSVG,
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifact
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mkuhnert/chartflow/pkg/cache"
	"github.com/mkuhnert/chartflow/pkg/chart"
	"github.com/mkuhnert/chartflow/pkg/errors"
	"github.com/mkuhnert/chartflow/pkg/sankey"
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatJSON = "json"
	FormatDOT  = "dot"
	FormatPDF  = "pdf"
	FormatPNG  = "png"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatJSON: true,
	FormatDOT:  true,
	FormatPDF:  true,
	FormatPNG:  true,
}

// DefaultPNGScale is the resolution multiplier for PNG export.
const DefaultPNGScale = 2.0

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one chart's pipeline run.
type Options struct {
	// Name identifies the chart, scoping its cache keys.
	Name string `json:"name"`

	// Config is the chart definition, including the data file path.
	Config chart.Config `json:"config"`

	// Format selects the output format.
	Format string `json:"format,omitempty"`

	// Refresh bypasses the cache and recomputes every stage.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Table is the decoded input data.
	Table chart.Table

	// TableHash is the content hash of the decoded table.
	TableHash string

	// Layout is the positioned Sankey geometry. Nil for linear chart
	// types, which go straight from table to shapes.
	Layout *sankey.Layout

	// Empty reports that no rows survived filtering. The artifact is a
	// neutral placeholder rather than a rendered chart.
	Empty bool

	// Artifact is the rendered output.
	Artifact []byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	RowCount   int
	NodeCount  int
	FlowCount  int
	LoadTime   time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether the layout came from cache
	RenderHit bool // Whether the artifact came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, json, dot, pdf, png)", format)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent - calling it multiple times has the same
// effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	if err := errors.ValidateChartName(o.Name); err != nil {
		return err
	}

	o.Config.ApplyDefaults()
	if err := o.Config.Validate(); err != nil {
		return err
	}

	if o.Format == "" {
		o.Format = FormatSVG
	}
	if err := ValidateFormat(o.Format); err != nil {
		return err
	}
	if o.Format == FormatDOT && o.Config.Type != chart.TypeSankey {
		return errors.New(errors.ErrCodeInvalidFormat,
			"dot output requires a sankey chart, got type %q", o.Config.Type)
	}

	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	o.validated = true
	return nil
}

// IsSankey returns true if this run renders a Sankey diagram.
func (o *Options) IsSankey() bool {
	return o.Config.Type == chart.TypeSankey
}

// LayoutKeyOpts returns cache key options for layout computation.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		ChartType:    o.Config.Type,
		NodePadding:  o.Config.NodePadding,
		Proportional: o.Config.Proportional,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts() cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:        o.Format,
		Width:         o.Config.Width,
		Height:        o.Config.Height,
		NodeThickness: o.Config.NodeThickness,
		Title:         o.Config.Title,
	}
}
