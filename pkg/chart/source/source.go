// Package source reads chart tables from files. Each supported format
// has a decoder; the format is picked by file extension.
package source

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mkuhnert/chartflow/pkg/chart"
)

// Decoder parses a table from a reader.
type Decoder interface {
	Decode(r io.Reader) (chart.Table, error)
	Format() string
}

// decoders maps file extensions to their decoder.
var decoders = map[string]Decoder{
	".csv":  CSVDecoder{Comma: ','},
	".tsv":  CSVDecoder{Comma: '\t'},
	".json": JSONDecoder{},
	".yaml": YAMLDecoder{},
	".yml":  YAMLDecoder{},
}

// ForPath returns the decoder for the file's extension.
func ForPath(path string) (Decoder, error) {
	ext := strings.ToLower(filepath.Ext(path))
	d, ok := decoders[ext]
	if !ok {
		return nil, fmt.Errorf("unsupported table format: %q (must be csv, tsv, json, or yaml)", ext)
	}
	return d, nil
}

// ReadTable loads and parses the table file at path.
func ReadTable(path string) (chart.Table, error) {
	d, err := ForPath(path)
	if err != nil {
		return chart.Table{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return chart.Table{}, fmt.Errorf("open table: %w", err)
	}
	defer f.Close()

	t, err := d.Decode(f)
	if err != nil {
		return chart.Table{}, fmt.Errorf("parse %s table: %w", d.Format(), err)
	}
	return t, nil
}
