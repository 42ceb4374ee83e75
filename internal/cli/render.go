package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mkuhnert/chartflow/pkg/chart"
	"github.com/mkuhnert/chartflow/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	chartName string // chart to render (required when the config defines several)
	format    string // output format: svg, json, dot, pdf, png
	output    string // output file path; defaults to <chart>.<format>
	noCache   bool   // disable the layout/artifact cache
	refresh   bool   // recompute even when cached
}

// newRenderCmd creates the render command for generating chart output.
//
// Default settings:
//   - format: svg
//   - output: <chart>.<format> in the working directory
//   - caching: enabled (~/.cache/chartflow)
func newRenderCmd() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [config]",
		Short: "Render a chart from a config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.chartName, "chart", "c", "", "chart name (defaults to the only chart, or an interactive picker)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: svg (default), json, dot, pdf, png")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: <chart>.<format>)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the layout and artifact cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute even when a cached result exists")

	return cmd
}

func runRender(ctx context.Context, configPath string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	file, err := chart.LoadFile(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	name, cfg, err := selectChart(file, opts.chartName)
	if err != nil {
		return err
	}

	runner, err := newRunner(opts.noCache, logger)
	if err != nil {
		return fmt.Errorf("init cache: %w", err)
	}
	defer runner.Close()

	// PDF and PNG shell out to rsvg-convert, which can take a while on
	// large diagrams.
	var spinner *Spinner
	if opts.format == pipeline.FormatPDF || opts.format == pipeline.FormatPNG {
		spinner = newSpinnerWithContext(ctx, "Converting with rsvg-convert...")
		spinner.Start()
	}

	p := newProgress(logger)
	result, err := runner.Execute(ctx, pipeline.Options{
		Name:    name,
		Config:  cfg,
		Format:  opts.format,
		Refresh: opts.refresh,
		Logger:  logger,
	})
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		return err
	}

	out := opts.output
	if out == "" {
		format := opts.format
		if format == "" {
			format = pipeline.FormatSVG
		}
		out = name + "." + format
	}
	if dir := filepath.Dir(out); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(out, result.Artifact, 0644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	p.done(fmt.Sprintf("Rendered %q", name))
	if result.Empty {
		printWarning("Chart %q has no renderable flows; wrote a placeholder", name)
	}
	printSuccess("Wrote %s", out)
	printStats(result.Stats.NodeCount, result.Stats.FlowCount,
		result.CacheInfo.LayoutHit && result.CacheInfo.RenderHit)
	return nil
}
