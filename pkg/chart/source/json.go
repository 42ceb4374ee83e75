package source

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mkuhnert/chartflow/pkg/chart"
)

// JSONDecoder parses tables from a JSON document of the shape
//
//	{"header": ["source", "target", "value"],
//	 "rows": [["a", "b", 10], ["b", "c", "5"]]}
//
// Cells may be strings or numbers; everything is normalized to the
// table's string cells.
type JSONDecoder struct{}

func (JSONDecoder) Format() string { return "json" }

type jsonTable struct {
	Header []any   `json:"header"`
	Rows   [][]any `json:"rows"`
}

func (JSONDecoder) Decode(r io.Reader) (chart.Table, error) {
	var jt jsonTable
	dec := json.NewDecoder(r)
	if err := dec.Decode(&jt); err != nil {
		return chart.Table{}, err
	}

	t := chart.Table{Header: cellsToRow(jt.Header)}
	for _, row := range jt.Rows {
		t.Rows = append(t.Rows, cellsToRow(row))
	}
	return t, nil
}

// cellsToRow stringifies heterogeneous cells. Numbers format without
// exponent noise so they survive the round trip through Row.Number.
func cellsToRow(cells []any) chart.Row {
	row := make(chart.Row, len(cells))
	for i, c := range cells {
		switch v := c.(type) {
		case string:
			row[i] = v
		case float64:
			row[i] = fmt.Sprintf("%g", v)
		case nil:
			row[i] = ""
		default:
			row[i] = fmt.Sprintf("%v", v)
		}
	}
	return row
}
