// Package sankey lays out flow diagrams from tabular edge data.
//
// The engine is a single forward pipeline, a pure function from table
// to layout executed fresh on every call:
//
//  1. Build raw edges from rows (source, target, value), dropping
//     unusable rows and rejecting self-loops.
//  2. Aggregate duplicate source→target pairs by summing values.
//  3. Assign each node a discrete level: the longest path from any
//     source node, so every flow points strictly rightward.
//  4. Size nodes proportionally to throughput within their level,
//     enforce visibility minimums, stack with padding, normalize
//     overflowing levels globally, and center each level vertically.
//  5. Position each flow's tapered band at both endpoints and borrow
//     space from larger flows so thin flows stay visible.
//  6. Emit renderable primitives (rectangles and ribbon endpoints).
//
// The only fatal conditions are structural: a self-loop, or level
// assignment that cannot converge because of a cycle. Both surface as
// a *StructuralError. Empty or fully-filtered input returns the
// ErrEmptyGraph sentinel, which callers treat as "nothing to render"
// rather than a failure.
//
// All geometry is expressed in percent of the vertical band until
// [Layout.Primitives] converts it to frame coordinates; the package
// decides no colors, markup, or text escaping.
package sankey
