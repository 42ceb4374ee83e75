package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/x/term"

	"github.com/mkuhnert/chartflow/pkg/cache"
	"github.com/mkuhnert/chartflow/pkg/chart"
	"github.com/mkuhnert/chartflow/pkg/pipeline"
)

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func newRunner(noCache bool, logger *log.Logger) (*pipeline.Runner, error) {
	c, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(c, nil, logger), nil
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/chartflow/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// =============================================================================
// Chart Selection
// =============================================================================

// selectChart resolves which chart to operate on. When name is empty
// and the config defines a single chart, that chart is used. With
// multiple charts, an interactive picker runs on a terminal; otherwise
// the available names are listed in the error.
func selectChart(file *chart.File, name string) (string, chart.Config, error) {
	if name != "" {
		cfg, ok := file.Charts[name]
		if !ok {
			return "", chart.Config{}, fmt.Errorf("chart %q not defined (available: %v)", name, file.Names())
		}
		return name, cfg, nil
	}

	names := file.Names()
	switch len(names) {
	case 0:
		return "", chart.Config{}, fmt.Errorf("config defines no charts")
	case 1:
		return names[0], file.Charts[names[0]], nil
	}

	if term.IsTerminal(os.Stdin.Fd()) {
		picked, err := pickChart(file)
		if err != nil {
			return "", chart.Config{}, err
		}
		if picked == "" {
			return "", chart.Config{}, fmt.Errorf("no chart selected")
		}
		return picked, file.Charts[picked], nil
	}

	return "", chart.Config{}, fmt.Errorf("config defines multiple charts, pick one with --chart (available: %v)", names)
}
