package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkuhnert/chartflow/pkg/chart"
	"github.com/mkuhnert/chartflow/pkg/pipeline"
)

// newInspectCmd creates the inspect command for examining a chart's
// data and layout without writing any output file.
func newInspectCmd() *cobra.Command {
	var chartName string

	cmd := &cobra.Command{
		Use:   "inspect [config]",
		Short: "Show a chart's decoded data and layout statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd.Context(), args[0], chartName)
		},
	}

	cmd.Flags().StringVarP(&chartName, "chart", "c", "", "chart name (defaults to the only chart, or an interactive picker)")

	return cmd
}

func runInspect(ctx context.Context, configPath, chartName string) error {
	logger := loggerFromContext(ctx)

	file, err := chart.LoadFile(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	name, cfg, err := selectChart(file, chartName)
	if err != nil {
		return err
	}

	// Inspection always recomputes; results are not worth caching here.
	runner, err := newRunner(true, logger)
	if err != nil {
		return err
	}
	defer runner.Close()

	opts := pipeline.Options{Name: name, Config: cfg, Logger: logger}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	tbl, err := runner.Load(ctx, opts)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}

	fmt.Println(StyleTitle.Render(name))
	printKeyValue("type", opts.Config.Type)
	printKeyValue("data", opts.Config.Data)
	printKeyValue("rows", fmt.Sprintf("%d", len(tbl.Rows)))
	printKeyValue("frame", fmt.Sprintf("%g × %g", opts.Config.Width, opts.Config.Height))

	if !opts.IsSankey() {
		return nil
	}

	layout, err := runner.Layout(ctx, tbl, opts)
	if err != nil {
		return fmt.Errorf("layout: %w", err)
	}

	printKeyValue("levels", fmt.Sprintf("%d", layout.LevelCount()))
	printKeyValue("nodes", fmt.Sprintf("%d", layout.NodeCount()))
	printKeyValue("flows", fmt.Sprintf("%d", len(layout.Flows)))
	printKeyValue("scale", fmt.Sprintf("%.3f", layout.Scale))

	printNewline()
	for _, lvl := range layout.Levels {
		fmt.Println(StyleHighlight.Render(fmt.Sprintf("level %d", lvl.Index)))
		for _, n := range lvl.Nodes {
			printDetail("%s  throughput=%g  top=%.2f%%  height=%.2f%%",
				n.Label, n.Throughput, n.Top, n.Height)
		}
	}
	return nil
}

// newChartsCmd creates the charts command, which lists every chart a
// config file defines.
func newChartsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "charts [config]",
		Short: "List the charts defined in a config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := chart.LoadFile(args[0])
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			for _, name := range file.Names() {
				cfg := file.Charts[name]
				typ := cfg.Type
				if typ == "" {
					typ = chart.TypeSankey
				}
				printKeyValue(name, fmt.Sprintf("%s (%s)", typ, cfg.Data))
			}
			return nil
		},
	}
}
