package sankey

import (
	"errors"
	"reflect"
	"testing"

	"github.com/mkuhnert/chartflow/pkg/chart"
)

// tbl builds a test table from positional rows.
func tbl(rows ...[]string) chart.Table {
	t := chart.Table{Header: chart.Row{"source", "target", "value"}}
	for _, r := range rows {
		t.Rows = append(t.Rows, chart.Row(r))
	}
	return t
}

func TestBuildEdges_DropsUnusableRows(t *testing.T) {
	table := tbl(
		[]string{"A", "B", "10"},
		[]string{"", "B", "5"},      // empty source
		[]string{"A", "", "5"},      // empty target
		[]string{"A", "C", "0"},     // zero value
		[]string{"A", "C", "-3"},    // negative value
		[]string{"A", "C", "seven"}, // non-numeric coerces to 0
		[]string{"A", "C"},          // short row
		[]string{"  B ", " C ", " 4 "},
	)

	edges, err := buildEdges(table)
	if err != nil {
		t.Fatalf("buildEdges() error = %v", err)
	}

	want := []Edge{
		{Source: "A", Target: "B", Value: 10},
		{Source: "B", Target: "C", Value: 4},
	}
	if !reflect.DeepEqual(edges, want) {
		t.Errorf("buildEdges() = %v, want %v", edges, want)
	}
}

func TestBuildEdges_SelfLoop(t *testing.T) {
	_, err := buildEdges(tbl([]string{"X", "X", "5"}))

	var serr *StructuralError
	if !errors.As(err, &serr) {
		t.Fatalf("buildEdges() error = %v, want *StructuralError", err)
	}
	if serr.Reason != ReasonSelfLoop {
		t.Errorf("Reason = %q, want %q", serr.Reason, ReasonSelfLoop)
	}
	if serr.Node != "X" {
		t.Errorf("Node = %q, want %q", serr.Node, "X")
	}
	// First data row, 1-based, counting the header row.
	if serr.Row != 2 {
		t.Errorf("Row = %d, want 2", serr.Row)
	}
}

func TestBuildEdges_ZeroValueSelfLoopDropped(t *testing.T) {
	// A self-loop with value <= 0 is filtered before the check and must
	// not raise an error.
	edges, err := buildEdges(tbl(
		[]string{"X", "X", "0"},
		[]string{"A", "B", "1"},
	))
	if err != nil {
		t.Fatalf("buildEdges() error = %v", err)
	}
	if len(edges) != 1 {
		t.Errorf("len(edges) = %d, want 1", len(edges))
	}
}

func TestBuildEdges_AllFiltered(t *testing.T) {
	_, err := buildEdges(tbl(
		[]string{"X", "X", "-1"},
		[]string{"A", "B", "0"},
	))
	if !errors.Is(err, ErrEmptyGraph) {
		t.Errorf("buildEdges() error = %v, want ErrEmptyGraph", err)
	}
}

func TestAggregate_MergesDuplicates(t *testing.T) {
	edges := Aggregate([]Edge{
		{Source: "A", Target: "B", Value: 3},
		{Source: "A", Target: "B", Value: 7},
	})

	want := []Edge{{Source: "A", Target: "B", Value: 10}}
	if !reflect.DeepEqual(edges, want) {
		t.Errorf("Aggregate() = %v, want %v", edges, want)
	}
}

func TestAggregate_DirectionalKeys(t *testing.T) {
	edges := Aggregate([]Edge{
		{Source: "A", Target: "B", Value: 3},
		{Source: "B", Target: "A", Value: 7},
	})

	if len(edges) != 2 {
		t.Fatalf("len(edges) = %d, want 2 (a→b and b→a are distinct)", len(edges))
	}
}

func TestAggregate_PreservesFirstOccurrenceOrder(t *testing.T) {
	edges := Aggregate([]Edge{
		{Source: "B", Target: "C", Value: 1},
		{Source: "A", Target: "B", Value: 2},
		{Source: "B", Target: "C", Value: 3},
	})

	want := []Edge{
		{Source: "B", Target: "C", Value: 4},
		{Source: "A", Target: "B", Value: 2},
	}
	if !reflect.DeepEqual(edges, want) {
		t.Errorf("Aggregate() = %v, want %v", edges, want)
	}
}

func TestAggregate_Idempotent(t *testing.T) {
	once := Aggregate([]Edge{
		{Source: "A", Target: "B", Value: 3},
		{Source: "A", Target: "C", Value: 1},
		{Source: "A", Target: "B", Value: 7},
	})
	twice := Aggregate(once)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("Aggregate(Aggregate(x)) = %v, want %v", twice, once)
	}
}
