// Package chart defines the tabular data model and chart configuration
// shared by every chart type.
//
// A [Table] is an ordered sequence of positional rows; which columns
// carry which role is decided by the consuming layout engine (for
// Sankey diagrams the first three columns are source, target, value).
// A [Config] bundles the layout and cosmetic knobs for one chart, and a
// [File] groups several named charts loaded from a TOML or JSON file.
package chart
