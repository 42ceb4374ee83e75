// Package pkg provides the core libraries for chartflow chart rendering.
//
// # Overview
//
// Chartflow turns tabular flow data into positioned chart geometry and
// rendered output. The pkg directory is organized into five main areas:
//
//  1. [chart] - Config files and table decoding (CSV, TSV, JSON, YAML)
//  2. [sankey] - The Sankey layout engine (levels, sizing, flow routing)
//  3. [linear] - Bar, column, donut, dot and scatter geometry
//  4. [render] - SVG assembly, Graphviz node-link output, PDF/PNG conversion
//  5. [pipeline] - Orchestration (load → layout → render) with caching
//
// # Architecture
//
// The typical data flow through chartflow:
//
//	Config file (TOML/JSON)
//	         ↓
//	chart.LoadFile → source.ReadTable
//	         ↓
//	sankey.Build (or linear shapes)
//	         ↓
//	chartsvg / nodelink render
//	         ↓
//	SVG, JSON, DOT, PDF, PNG
//
// Supporting packages: [cache] for layout/artifact reuse, [errors] for
// coded errors, [observability] for instrumentation hooks, and
// [buildinfo] for version stamping.
//
// [chart]: github.com/mkuhnert/chartflow/pkg/chart
// [sankey]: github.com/mkuhnert/chartflow/pkg/sankey
// [linear]: github.com/mkuhnert/chartflow/pkg/linear
// [render]: github.com/mkuhnert/chartflow/pkg/render
// [pipeline]: github.com/mkuhnert/chartflow/pkg/pipeline
// [cache]: github.com/mkuhnert/chartflow/pkg/cache
// [errors]: github.com/mkuhnert/chartflow/pkg/errors
// [observability]: github.com/mkuhnert/chartflow/pkg/observability
// [buildinfo]: github.com/mkuhnert/chartflow/pkg/buildinfo
package pkg
