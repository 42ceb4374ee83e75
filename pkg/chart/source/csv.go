package source

import (
	"encoding/csv"
	"io"

	"github.com/mkuhnert/chartflow/pkg/chart"
)

// CSVDecoder parses delimiter-separated tables. The first record is
// the header; remaining records are data rows.
type CSVDecoder struct {
	Comma rune
}

func (d CSVDecoder) Format() string {
	if d.Comma == '\t' {
		return "tsv"
	}
	return "csv"
}

func (d CSVDecoder) Decode(r io.Reader) (chart.Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = d.Comma
	cr.FieldsPerRecord = -1 // ragged rows are filtered downstream
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return chart.Table{}, err
	}
	if len(records) == 0 {
		return chart.Table{}, nil
	}

	t := chart.Table{Header: chart.Row(records[0])}
	for _, rec := range records[1:] {
		t.Rows = append(t.Rows, chart.Row(rec))
	}
	return t, nil
}
