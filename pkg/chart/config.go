package chart

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/mkuhnert/chartflow/pkg/errors"
)

// Chart types.
const (
	TypeSankey  = "sankey"
	TypeBar     = "bar"
	TypeColumn  = "column"
	TypeDonut   = "donut"
	TypeDot     = "dot"
	TypeScatter = "scatter"
)

// ValidTypes is the set of supported chart types.
var ValidTypes = map[string]bool{
	TypeSankey:  true,
	TypeBar:     true,
	TypeColumn:  true,
	TypeDonut:   true,
	TypeDot:     true,
	TypeScatter: true,
}

// Config describes one chart: which table to read, how to lay it out,
// and the cosmetic knobs the renderer consumes.
//
// The zero value is not directly usable - call [Config.ApplyDefaults]
// or load via [LoadFile], which applies defaults for you.
type Config struct {
	Type  string `toml:"type" json:"type"`
	Title string `toml:"title,omitempty" json:"title,omitempty"`

	// Data is the path to the table file, resolved relative to the
	// config file when loaded via LoadFile.
	Data string `toml:"data" json:"data"`

	Width  float64 `toml:"width,omitempty" json:"width,omitempty"`
	Height float64 `toml:"height,omitempty" json:"height,omitempty"`

	// Sankey-specific knobs.
	NodeThickness float64 `toml:"node_thickness,omitempty" json:"node_thickness,omitempty"`
	NodePadding   float64 `toml:"node_padding,omitempty" json:"node_padding,omitempty"`

	// Proportional disables minimum-size floors so node and flow sizes
	// stay strictly proportional to value.
	Proportional bool `toml:"proportional,omitempty" json:"proportional,omitempty"`
}

// Default dimensions, shared by CLI and pipeline.
const (
	DefaultWidth         = 800.0
	DefaultHeight        = 600.0
	DefaultNodeThickness = 12.0
	DefaultNodePadding   = 1.0
)

// ApplyDefaults fills unset fields with defaults.
func (c *Config) ApplyDefaults() {
	if c.Type == "" {
		c.Type = TypeSankey
	}
	if c.Width == 0 {
		c.Width = DefaultWidth
	}
	if c.Height == 0 {
		c.Height = DefaultHeight
	}
	if c.NodeThickness == 0 {
		c.NodeThickness = DefaultNodeThickness
	}
	if c.NodePadding == 0 {
		c.NodePadding = DefaultNodePadding
	}
}

// Validate checks that the config is renderable.
func (c *Config) Validate() error {
	if !ValidTypes[c.Type] {
		return fmt.Errorf("invalid chart type: %q (must be one of: sankey, bar, column, donut, dot, scatter)", c.Type)
	}
	if c.Data == "" {
		return fmt.Errorf("chart has no data file")
	}
	return nil
}

// File is a parsed chart config file: one or more named charts.
type File struct {
	Charts map[string]Config `toml:"charts" json:"charts"`
}

// Names returns the chart names in sorted order.
func (f *File) Names() []string {
	names := make([]string, 0, len(f.Charts))
	for name := range f.Charts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadFile reads a chart config file in TOML or JSON format, decided by
// file extension (.toml default). Data paths are resolved relative to
// the config file's directory, and defaults are applied to every chart.
func LoadFile(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var f File
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(raw, &f); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	default:
		if err := toml.Unmarshal(raw, &f); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if len(f.Charts) == 0 {
		return nil, fmt.Errorf("config defines no charts")
	}

	dir := filepath.Dir(path)
	for name, c := range f.Charts {
		c.ApplyDefaults()
		if c.Data != "" && !filepath.IsAbs(c.Data) {
			if err := errors.ValidateDataPath(c.Data); err != nil {
				return nil, fmt.Errorf("chart %q: %w", name, err)
			}
			c.Data = filepath.Join(dir, c.Data)
		}
		f.Charts[name] = c
	}
	return &f, nil
}
