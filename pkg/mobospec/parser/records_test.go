package parser

import (
	"testing"
)

func TestExtractRows(t *testing.T) {
	grid := mergedHeaderGrid()
	grid = append(grid,
		[]string{"", "X870E Nova", "X870E", "ALC1220", "3", "4", "6", "1"}, // brand forward-filled
		[]string{"", "", "", "", "", "", "", ""},                           // separator, dropped
		[]string{"MSI", "Carbon WiFi", "X870E", "ALC4080", "5", "4", "10", "2"},
	)

	cols, _ := BuildColumns(grid, 3, headerOpts)
	records := ExtractRows(grid, 3, cols)

	if len(records) != 3 {
		t.Fatalf("got %d records, expected 3", len(records))
	}

	tests := []struct {
		idx   int
		key   string
		value string
	}{
		{0, "Brand", "ASUS"},
		{0, "Model", "X870E Hero"},
		{0, "General|Audio|Codec", "ALC4080"},
		{1, "Brand", "ASUS"}, // forward-filled from the merged run above
		{1, "Model", "X870E Nova"},
		{2, "Brand", "MSI"},
		{2, "Rear I/O|USB|Type A", "10"},
	}
	for _, tt := range tests {
		if got := records[tt.idx][tt.key]; got != tt.value {
			t.Errorf("record %d %q = %q, expected %q", tt.idx, tt.key, got, tt.value)
		}
	}
}

func TestExtractRowsKeepsRawValues(t *testing.T) {
	grid := Grid{
		{"Brand", "Model", "Notes"},
		{"ASUS", "Hero", "  line one\nline two  "},
	}
	cols, _ := BuildColumns(grid, 0, headerOpts)
	records := ExtractRows(grid, 0, cols)

	if len(records) != 1 {
		t.Fatalf("got %d records, expected 1", len(records))
	}
	// Normalization belongs to unflattening; the flat record stays raw.
	if got := records[0]["Notes"]; got != "  line one\nline two  " {
		t.Errorf("raw value was altered: %q", got)
	}
}

func TestExtractRowsEmptyBelowLeaf(t *testing.T) {
	grid := Grid{{"Brand", "Model"}}
	cols, _ := BuildColumns(grid, 0, headerOpts)
	if records := ExtractRows(grid, 0, cols); len(records) != 0 {
		t.Errorf("got %d records from empty sheet, expected 0", len(records))
	}
}

func TestSanitizeID(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"X870E Hero", "X870E_Hero"},
		{"B650M/ac", "B650M-ac"},
		{"Two  Spaces", "Two_Spaces"},
		{"Line\nBreak", "Line_Break"},
		{"back\\slash", "back-slash"},
	}
	for _, tt := range tests {
		if got := SanitizeID(tt.input); got != tt.expected {
			t.Errorf("SanitizeID(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}
