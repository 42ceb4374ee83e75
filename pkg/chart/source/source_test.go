package source

import (
	"strings"
	"testing"
)

func TestCSVDecoder(t *testing.T) {
	input := "source,target,value\nA,B,10\nB,C,5\n"
	table, err := CSVDecoder{Comma: ','}.Decode(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if len(table.Rows) != 2 {
		t.Fatalf("len(Rows) = %d, want 2", len(table.Rows))
	}
	if table.Header.Cell(0) != "source" {
		t.Errorf("Header[0] = %q, want %q", table.Header.Cell(0), "source")
	}
	if table.Rows[0].Number(2) != 10 {
		t.Errorf("Rows[0].Number(2) = %f, want 10", table.Rows[0].Number(2))
	}
}

func TestCSVDecoder_RaggedRows(t *testing.T) {
	input := "source,target,value\nA,B\nA,B,10,extra\n"
	table, err := CSVDecoder{Comma: ','}.Decode(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(table.Rows) != 2 {
		t.Errorf("len(Rows) = %d, want 2 (ragged rows kept, filtered downstream)", len(table.Rows))
	}
}

func TestJSONDecoder(t *testing.T) {
	input := `{"header": ["source", "target", "value"], "rows": [["A", "B", 10], ["B", "C", "5"]]}`
	table, err := JSONDecoder{}.Decode(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if len(table.Rows) != 2 {
		t.Fatalf("len(Rows) = %d, want 2", len(table.Rows))
	}
	// Numeric and string cells both normalize.
	if table.Rows[0].Number(2) != 10 {
		t.Errorf("numeric cell = %f, want 10", table.Rows[0].Number(2))
	}
	if table.Rows[1].Number(2) != 5 {
		t.Errorf("string cell = %f, want 5", table.Rows[1].Number(2))
	}
}

func TestYAMLDecoder(t *testing.T) {
	input := "header: [source, target, value]\nrows:\n  - [A, B, 10]\n  - [B, C, 2.5]\n"
	table, err := YAMLDecoder{}.Decode(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if len(table.Rows) != 2 {
		t.Fatalf("len(Rows) = %d, want 2", len(table.Rows))
	}
	if table.Rows[1].Number(2) != 2.5 {
		t.Errorf("Rows[1].Number(2) = %f, want 2.5", table.Rows[1].Number(2))
	}
}

func TestYAMLDecoder_Empty(t *testing.T) {
	table, err := YAMLDecoder{}.Decode(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if !table.IsEmpty() {
		t.Error("empty document should yield an empty table")
	}
}

func TestForPath(t *testing.T) {
	tests := []struct {
		path    string
		format  string
		wantErr bool
	}{
		{"data.csv", "csv", false},
		{"data.tsv", "tsv", false},
		{"data.JSON", "json", false},
		{"data.yml", "yaml", false},
		{"data.xlsx", "", true},
	}
	for _, tt := range tests {
		d, err := ForPath(tt.path)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ForPath(%q) = %v, want error", tt.path, d)
			}
			continue
		}
		if err != nil {
			t.Errorf("ForPath(%q) error = %v", tt.path, err)
			continue
		}
		if d.Format() != tt.format {
			t.Errorf("ForPath(%q).Format() = %q, want %q", tt.path, d.Format(), tt.format)
		}
	}
}
