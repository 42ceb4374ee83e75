package sankey

import (
	"errors"
	"fmt"

	"github.com/mkuhnert/chartflow/pkg/chart"
)

// ErrEmptyGraph signals that no usable edges survive row filtering.
// It is a non-fatal condition: callers render a neutral placeholder
// instead of aborting. Check with errors.Is.
var ErrEmptyGraph = errors.New("empty graph")

// Structural error reasons.
const (
	ReasonSelfLoop = "self-loop"
	ReasonCycle    = "cycle detected"
)

// StructuralError is the single fatal error class of the layout engine:
// the input describes a graph that cannot be laid out. It carries the
// offending node label and, for row-level errors, the 1-based input row
// position (including the header offset) for diagnostics.
type StructuralError struct {
	Reason string
	Node   string
	Row    int // 0 when the error is not tied to a single row
}

func (e *StructuralError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("%s at row %d: node %q", e.Reason, e.Row, e.Node)
	}
	return fmt.Sprintf("%s: node %q", e.Reason, e.Node)
}

// Edge is one aggregated source→target connection. Value is always
// positive: non-positive rows never become edges.
type Edge struct {
	Source string
	Target string
	Value  float64
}

// buildEdges converts table rows into raw edges. Each row is read
// positionally: source label, target label, value.
//
// Rows are silently discarded when the source or target is empty or the
// value coerces to a non-positive number (non-numeric values coerce to
// 0). A retained row whose source equals its target is a fatal
// self-loop. Discard happens before the self-loop check, so a zero-value
// self-loop row is dropped without error.
func buildEdges(t chart.Table) ([]Edge, error) {
	edges := make([]Edge, 0, len(t.Rows))
	for i, row := range t.Rows {
		source := row.Cell(0)
		target := row.Cell(1)
		value := row.Number(2)
		if source == "" || target == "" || value <= 0 {
			continue
		}
		if source == target {
			return nil, &StructuralError{
				Reason: ReasonSelfLoop,
				Node:   source,
				Row:    chart.RowPosition(i),
			}
		}
		edges = append(edges, Edge{Source: source, Target: target, Value: value})
	}
	if len(edges) == 0 {
		return nil, ErrEmptyGraph
	}
	return edges, nil
}

// Aggregate merges duplicate (source, target) pairs by summing their
// values. The keying is directional: a→b and b→a stay distinct. The
// output keeps the insertion order of each pair's first occurrence,
// which makes Aggregate idempotent: aggregating an already-aggregated
// list returns an equal list.
func Aggregate(edges []Edge) []Edge {
	type key struct{ source, target string }
	index := make(map[key]int, len(edges))
	out := make([]Edge, 0, len(edges))
	for _, e := range edges {
		k := key{e.Source, e.Target}
		if i, ok := index[k]; ok {
			out[i].Value += e.Value
			continue
		}
		index[k] = len(out)
		out = append(out, e)
	}
	return out
}
