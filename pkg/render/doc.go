// Package render hosts the output side of chartflow.
//
// # Overview
//
//   - Generic format conversion (SVG to PDF/PNG)
//   - Positioned-geometry SVG assembly (in [chartsvg] subpackage)
//   - Graphviz node-link diagrams of flow graphs (in [nodelink] subpackage)
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats
// using the external rsvg-convert tool (from librsvg). Both renderer
// subpackages produce SVG that these functions accept.
//
//	svg := chartsvg.RenderSankey(layout.Primitives(800, 600, 12))
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// [chartsvg]: github.com/mkuhnert/chartflow/pkg/render/chartsvg
// [nodelink]: github.com/mkuhnert/chartflow/pkg/render/nodelink
package render
