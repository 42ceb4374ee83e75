package source

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/mkuhnert/chartflow/pkg/chart"
)

// YAMLDecoder parses tables from a YAML document mirroring the JSON
// shape: a header list plus a list of row lists.
type YAMLDecoder struct{}

func (YAMLDecoder) Format() string { return "yaml" }

type yamlTable struct {
	Header []any   `yaml:"header"`
	Rows   [][]any `yaml:"rows"`
}

func (YAMLDecoder) Decode(r io.Reader) (chart.Table, error) {
	var yt yamlTable
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&yt); err != nil {
		if err == io.EOF {
			return chart.Table{}, nil
		}
		return chart.Table{}, err
	}

	t := chart.Table{Header: cellsToRow(yt.Header)}
	for _, row := range yt.Rows {
		t.Rows = append(t.Rows, cellsToRow(row))
	}
	return t, nil
}
