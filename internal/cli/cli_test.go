package cli

import (
	"testing"

	"github.com/mkuhnert/chartflow/pkg/chart"
)

func TestSelectChart(t *testing.T) {
	file := &chart.File{
		Charts: map[string]chart.Config{
			"energy": {Data: "flows.csv"},
		},
	}

	t.Run("by name", func(t *testing.T) {
		name, cfg, err := selectChart(file, "energy")
		if err != nil {
			t.Fatalf("selectChart: %v", err)
		}
		if name != "energy" || cfg.Data != "flows.csv" {
			t.Errorf("selectChart = %q, %+v", name, cfg)
		}
	})

	t.Run("unknown name", func(t *testing.T) {
		if _, _, err := selectChart(file, "missing"); err == nil {
			t.Error("expected error for unknown chart")
		}
	})

	t.Run("single chart default", func(t *testing.T) {
		name, _, err := selectChart(file, "")
		if err != nil {
			t.Fatalf("selectChart: %v", err)
		}
		if name != "energy" {
			t.Errorf("name = %q, want energy", name)
		}
	})

	t.Run("empty config", func(t *testing.T) {
		if _, _, err := selectChart(&chart.File{}, ""); err == nil {
			t.Error("expected error for empty config")
		}
	})
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1024, "1.0 KiB"},
		{1536, "1.5 KiB"},
		{1048576, "1.0 MiB"},
	}

	for _, tt := range tests {
		if got := formatBytes(tt.in); got != tt.want {
			t.Errorf("formatBytes(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
