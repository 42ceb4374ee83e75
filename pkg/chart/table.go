package chart

import (
	"math"
	"strconv"
	"strings"
)

// Row is a single table row. Cells are kept as strings; numeric
// interpretation happens at the point of use via [Row.Number].
type Row []string

// Cell returns the trimmed cell at position i, or "" when the row is
// too short. Positional access keeps ragged input rows usable.
func (r Row) Cell(i int) string {
	if i < 0 || i >= len(r) {
		return ""
	}
	return strings.TrimSpace(r[i])
}

// Number coerces the cell at position i to a float64. Non-numeric and
// non-finite values coerce to 0, matching the convention that a zero
// value marks the row as unusable rather than failing the whole table.
func (r Row) Number(i int) float64 {
	v, err := strconv.ParseFloat(r.Cell(i), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Table is an ordered sequence of rows plus an optional header.
// It is the single input shape shared by every chart type.
type Table struct {
	Header Row
	Rows   []Row
}

// HeaderRows is the number of non-data rows preceding the table body.
// Row positions in diagnostics are 1-based and include this offset, so
// the first data row reports as row HeaderRows+1.
const HeaderRows = 1

// IsEmpty reports whether the table has no data rows.
func (t Table) IsEmpty() bool { return len(t.Rows) == 0 }

// RowPosition converts a zero-based data row index into the 1-based
// position used in user-facing diagnostics.
func RowPosition(i int) int { return i + 1 + HeaderRows }
