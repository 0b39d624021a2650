package parser

import (
	"testing"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected any
	}{
		{"123", int64(123)},
		{"123.45", 123.45},
		{"-100", int64(-100)},
		{"hello", "hello"},
		{"", ""},
		{"Col 1", "Col 1"},
		{"1e3", 1000.0},
		{"NaN", "NaN"},
		{"Inf", "Inf"},
		{"-infinity", "-infinity"},
		{"1e999", "1e999"},
	}

	for _, tt := range tests {
		result := ParseValue(tt.input)
		if result != tt.expected {
			t.Errorf("ParseValue(%q) = %v (type: %T), expected %v (type: %T)",
				tt.input, result, result, tt.expected, tt.expected)
		}
	}
}

func TestParseInt(t *testing.T) {
	tests := []struct {
		input    string
		expected int
		wantErr  bool
	}{
		{"8", 8, false},
		{" 12 ", 12, false},
		{"-3", -3, false},
		{"1.5", 0, true},
		{"sdf", 0, true},
	}

	for _, tt := range tests {
		result, err := ParseInt(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseInt(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if result != tt.expected {
			t.Errorf("ParseInt(%q) = %d, expected %d", tt.input, result, tt.expected)
		}
	}
}
