package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mkuhnert/chartflow/pkg/cache"
	"github.com/mkuhnert/chartflow/pkg/chart"
	"github.com/mkuhnert/chartflow/pkg/sankey"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"json", false},
		{"dot", false},
		{"pdf", false},
		{"png", false},
		{"invalid", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
	}
}

func TestOptionsValidateAndSetDefaults(t *testing.T) {
	opts := Options{
		Name:   "energy",
		Config: chart.Config{Data: "flows.csv"},
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults: %v", err)
	}

	if opts.Format != FormatSVG {
		t.Errorf("Format default = %q, want %q", opts.Format, FormatSVG)
	}
	if opts.Config.Type != chart.TypeSankey {
		t.Errorf("chart type default = %q, want %q", opts.Config.Type, chart.TypeSankey)
	}
	if opts.Config.Width != chart.DefaultWidth {
		t.Errorf("width default = %v, want %v", opts.Config.Width, chart.DefaultWidth)
	}
	if opts.Logger == nil {
		t.Error("logger default not applied")
	}
}

func TestOptionsValidate_Errors(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"empty chart name", Options{Config: chart.Config{Data: "d.csv"}}},
		{"missing data", Options{Name: "c", Config: chart.Config{}}},
		{"bad format", Options{Name: "c", Config: chart.Config{Data: "d.csv"}, Format: "gif"}},
		{"dot for bar chart", Options{Name: "c", Config: chart.Config{Data: "d.csv", Type: chart.TypeBar}, Format: FormatDOT}},
		{"bad chart type", Options{Name: "c", Config: chart.Config{Data: "d.csv", Type: "pie3d"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.opts.ValidateAndSetDefaults(); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func writeDataFile(t *testing.T, rows string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "flows.csv")
	if err := os.WriteFile(path, []byte("from,to,value\n"+rows), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func sankeyOpts(t *testing.T, format string) Options {
	t.Helper()
	return Options{
		Name: "energy",
		Config: chart.Config{
			Data: writeDataFile(t, "Coal,Electricity,40\nGas,Electricity,60\nElectricity,Homes,100\n"),
		},
		Format: format,
	}
}

func TestRunnerExecute_SVG(t *testing.T) {
	r := NewRunner(cache.NewNullCache(), nil, nil)
	defer r.Close()

	result, err := r.Execute(context.Background(), sankeyOpts(t, FormatSVG))
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if result.Stats.RowCount != 3 {
		t.Errorf("RowCount = %d, want 3", result.Stats.RowCount)
	}
	if result.Stats.NodeCount != 4 {
		t.Errorf("NodeCount = %d, want 4", result.Stats.NodeCount)
	}
	if result.Stats.FlowCount != 3 {
		t.Errorf("FlowCount = %d, want 3", result.Stats.FlowCount)
	}
	if result.TableHash == "" {
		t.Error("TableHash not set")
	}
	svg := string(result.Artifact)
	if !strings.HasPrefix(svg, "<svg") {
		t.Errorf("artifact not SVG: %q", svg[:20])
	}
}

func TestRunnerExecute_JSON(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	defer r.Close()

	result, err := r.Execute(context.Background(), sankeyOpts(t, FormatJSON))
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	var layout sankey.Layout
	if err := json.Unmarshal(result.Artifact, &layout); err != nil {
		t.Fatalf("artifact is not a JSON layout: %v", err)
	}
	if layout.LevelCount() != 3 {
		t.Errorf("LevelCount = %d, want 3", layout.LevelCount())
	}
}

func TestRunnerExecute_DOT(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	defer r.Close()

	result, err := r.Execute(context.Background(), sankeyOpts(t, FormatDOT))
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	dot := string(result.Artifact)
	if !strings.HasPrefix(dot, "digraph G {") {
		t.Errorf("artifact not DOT: %q", dot[:20])
	}
	if !strings.Contains(dot, `"Gas" -> "Electricity" [label="60"];`) {
		t.Errorf("edge missing from DOT:\n%s", dot)
	}
}

func TestRunnerExecute_BarChart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "totals.csv")
	if err := os.WriteFile(path, []byte("label,value\na,10\nb,20\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	r := NewRunner(nil, nil, nil)
	defer r.Close()

	result, err := r.Execute(context.Background(), Options{
		Name:   "totals",
		Config: chart.Config{Type: chart.TypeBar, Data: path},
		Format: FormatSVG,
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if result.Layout != nil {
		t.Error("linear charts should not produce a Sankey layout")
	}
	if got := strings.Count(string(result.Artifact), "<rect"); got != 2 {
		t.Errorf("bar count = %d, want 2", got)
	}
}

func TestRunnerExecute_StructuralError(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	defer r.Close()

	opts := Options{
		Name: "bad",
		Config: chart.Config{
			Data: writeDataFile(t, "A,A,5\n"),
		},
	}
	_, err := r.Execute(context.Background(), opts)
	if err == nil {
		t.Fatal("expected self-loop error")
	}
	var serr *sankey.StructuralError
	if !errors.As(err, &serr) {
		t.Fatalf("error is not structural: %v", err)
	}
	if serr.Row != 2 {
		t.Errorf("Row = %d, want 2", serr.Row)
	}
}

func TestRunnerExecute_CachesLayoutAndArtifact(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := NewRunner(c, nil, nil)
	defer r.Close()

	opts := sankeyOpts(t, FormatSVG)

	first, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("first Execute: %v", err)
	}
	if first.CacheInfo.LayoutHit || first.CacheInfo.RenderHit {
		t.Error("first run should not hit the cache")
	}

	second, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("second Execute: %v", err)
	}
	if !second.CacheInfo.LayoutHit {
		t.Error("second run should hit the layout cache")
	}
	if !second.CacheInfo.RenderHit {
		t.Error("second run should hit the artifact cache")
	}
	if string(first.Artifact) != string(second.Artifact) {
		t.Error("cached artifact differs from rendered artifact")
	}

	// Refresh bypasses the cache
	opts.Refresh = true
	third, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("refresh Execute: %v", err)
	}
	if third.CacheInfo.LayoutHit || third.CacheInfo.RenderHit {
		t.Error("refresh run should not hit the cache")
	}
}

func TestRunnerExecute_CacheKeySeparatesOptions(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := NewRunner(c, nil, nil)
	defer r.Close()

	opts := sankeyOpts(t, FormatSVG)
	if _, err := r.Execute(context.Background(), opts); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	// Same data, different layout option: must not reuse the entry.
	opts.Config.Proportional = true
	result, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if result.CacheInfo.LayoutHit {
		t.Error("changed layout options should miss the cache")
	}
}

func TestRunnerExecute_EmptyGraphPlaceholder(t *testing.T) {
	r := NewRunner(cache.NewNullCache(), nil, nil)
	defer r.Close()

	opts := Options{
		Name: "energy",
		Config: chart.Config{
			// Every row is filtered: zero value, negative value, blank node.
			Data: writeDataFile(t, "Coal,Electricity,0\nGas,Electricity,-5\n,Homes,10\n"),
		},
		Format: FormatSVG,
	}

	result, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !result.Empty {
		t.Error("Empty = false, want true")
	}
	if result.Stats.NodeCount != 0 || result.Stats.FlowCount != 0 {
		t.Errorf("stats = %d nodes / %d flows, want zero", result.Stats.NodeCount, result.Stats.FlowCount)
	}
	if !strings.Contains(string(result.Artifact), "no data") {
		t.Errorf("placeholder artifact missing marker text:\n%s", result.Artifact)
	}
}
