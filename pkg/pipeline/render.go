package pipeline

import (
	"github.com/mkuhnert/chartflow/pkg/chart"
	"github.com/mkuhnert/chartflow/pkg/errors"
	"github.com/mkuhnert/chartflow/pkg/linear"
	"github.com/mkuhnert/chartflow/pkg/render"
	"github.com/mkuhnert/chartflow/pkg/render/chartsvg"
	"github.com/mkuhnert/chartflow/pkg/render/nodelink"
	"github.com/mkuhnert/chartflow/pkg/sankey"
)

// render produces the artifact for a completed load/layout result.
func renderArtifact(result *Result, opts Options) ([]byte, error) {
	if result.Empty {
		return renderEmpty(result, opts)
	}
	switch opts.Format {
	case FormatJSON:
		return renderJSON(result, opts)
	case FormatDOT:
		return []byte(nodelink.ToDOT(result.Layout, nodelink.Options{})), nil
	case FormatSVG:
		return renderSVG(result, opts)
	case FormatPDF:
		svg, err := renderSVG(result, opts)
		if err != nil {
			return nil, err
		}
		return render.ToPDF(svg)
	case FormatPNG:
		svg, err := renderSVG(result, opts)
		if err != nil {
			return nil, err
		}
		return render.ToPNG(svg, DefaultPNGScale)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q", opts.Format)
	}
}

// renderEmpty produces the placeholder artifact for a chart whose rows
// were all filtered out.
func renderEmpty(result *Result, opts Options) ([]byte, error) {
	cfg := opts.Config

	var svgOpts []chartsvg.RenderOption
	if cfg.Title != "" {
		svgOpts = append(svgOpts, chartsvg.WithTitle(cfg.Title))
	}

	switch opts.Format {
	case FormatJSON:
		return chartsvg.RenderJSON(&sankey.Layout{})
	case FormatDOT:
		return []byte(nodelink.ToDOT(&sankey.Layout{}, nodelink.Options{})), nil
	case FormatPDF:
		return render.ToPDF(chartsvg.RenderEmpty(cfg.Width, cfg.Height, svgOpts...))
	case FormatPNG:
		return render.ToPNG(chartsvg.RenderEmpty(cfg.Width, cfg.Height, svgOpts...), DefaultPNGScale)
	default:
		return chartsvg.RenderEmpty(cfg.Width, cfg.Height, svgOpts...), nil
	}
}

func renderSVG(result *Result, opts Options) ([]byte, error) {
	cfg := opts.Config

	var svgOpts []chartsvg.RenderOption
	if cfg.Title != "" {
		svgOpts = append(svgOpts, chartsvg.WithTitle(cfg.Title))
	}

	if opts.IsSankey() {
		p := result.Layout.Primitives(cfg.Width, cfg.Height, cfg.NodeThickness)
		return chartsvg.RenderSankey(p, svgOpts...), nil
	}

	series := linear.FromTable(result.Table)
	switch cfg.Type {
	case chart.TypeBar:
		return chartsvg.RenderBars(linear.Bars(series, cfg.Width, cfg.Height), cfg.Width, cfg.Height, svgOpts...), nil
	case chart.TypeColumn:
		return chartsvg.RenderColumns(linear.Columns(series, cfg.Width, cfg.Height), cfg.Width, cfg.Height, svgOpts...), nil
	case chart.TypeDonut:
		return chartsvg.RenderDonut(linear.Donut(series), cfg.Width, cfg.Height, svgOpts...), nil
	case chart.TypeDot:
		return chartsvg.RenderDots(linear.Dots(series, cfg.Width, cfg.Height), cfg.Width, cfg.Height, svgOpts...), nil
	case chart.TypeScatter:
		return chartsvg.RenderDots(linear.Scatter(result.Table, cfg.Width, cfg.Height), cfg.Width, cfg.Height, svgOpts...), nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidChartType, "unknown chart type: %q", cfg.Type)
	}
}

// renderJSON serializes the chart's geometry. Sankey charts export
// their full layout; linear charts export their positioned shapes.
func renderJSON(result *Result, opts Options) ([]byte, error) {
	cfg := opts.Config

	if opts.IsSankey() {
		return chartsvg.RenderJSON(result.Layout)
	}

	series := linear.FromTable(result.Table)
	switch cfg.Type {
	case chart.TypeBar:
		return chartsvg.RenderJSON(linear.Bars(series, cfg.Width, cfg.Height))
	case chart.TypeColumn:
		return chartsvg.RenderJSON(linear.Columns(series, cfg.Width, cfg.Height))
	case chart.TypeDonut:
		return chartsvg.RenderJSON(linear.Donut(series))
	case chart.TypeDot:
		return chartsvg.RenderJSON(linear.Dots(series, cfg.Width, cfg.Height))
	case chart.TypeScatter:
		return chartsvg.RenderJSON(linear.Scatter(result.Table, cfg.Width, cfg.Height))
	default:
		return nil, errors.New(errors.ErrCodeInvalidChartType, "unknown chart type: %q", cfg.Type)
	}
}
