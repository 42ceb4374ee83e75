package errors

import (
	"testing"
)

func TestValidateChartName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "energy", false},
		{"valid with dash", "energy-2026", false},
		{"valid with underscore", "energy_flows", false},
		{"valid with dot", "q1.budget", false},
		{"valid with space", "Energy Flows", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 300)), true},
		{"leading dot", ".hidden", true},
		{"slash", "a/b", true},
		{"null byte", "foo\x00bar", true},
		{"control char", "foo\x01bar", true},
		{"newline", "foo\nbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateChartName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateChartName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateDataPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "data.csv", false},
		{"valid nested", "data/flows.csv", false},
		{"valid json", "flows.json", false},

		{"empty", "", true},
		{"absolute", "/etc/passwd", true},
		{"traversal", "../secrets.csv", true},
		{"embedded traversal", "data/../../x.csv", true},
		{"backslash", "data\\flows.csv", true},
		{"null byte", "data\x00.csv", true},
		{"too long", string(make([]byte, 501)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDataPath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDataPath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
