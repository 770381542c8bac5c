package parser

import (
	"testing"
)

var headerOpts = ColumnOptions{
	MaxParentRows:   12,
	SkipPatterns:    []string{"Use the tabs", "Missing/incorrect information"},
	IdentityColumns: []string{"Brand", "Model", "Chipset"},
}

// mergedHeaderGrid mimics the sheet layout the parser was built for:
// a decorative banner row, two parent rows with merged extents, then the
// leaf row, then data.
func mergedHeaderGrid() Grid {
	return Grid{
		{"Use the tabs below to navigate"},
		{"", "", "", "General", "", "", "Rear I/O"},
		{"", "", "", "Audio", "", "Memory", "USB"},
		{"Brand", "Model", "Chipset", "Codec", "Jacks", "Slots", "Type A", "Type C"},
		{"ASUS", "X870E Hero", "X870E", "ALC4080", "5", "4", "8", "2"},
	}
}

func TestFindLeafRow(t *testing.T) {
	tests := []struct {
		name     string
		grid     Grid
		markers  []string
		maxScan  int
		expected int
	}{
		{"merged headers", mergedHeaderGrid(), []string{"Brand", "Model"}, 25, 3},
		{"markers missing", mergedHeaderGrid(), []string{"Make", "Board Name"}, 25, -1},
		{"scan bound too small", mergedHeaderGrid(), []string{"Brand", "Model"}, 2, -1},
		{"one marker only present", Grid{{"Brand", "Price"}}, []string{"Brand", "Model"}, 10, -1},
		{"duplicate marker does not satisfy both", Grid{{"Brand", "Brand"}}, []string{"Brand", "Model"}, 10, -1},
		{"empty grid", Grid{}, []string{"Brand", "Model"}, 25, -1},
	}

	for _, tt := range tests {
		got := FindLeafRow(tt.grid, tt.markers, tt.maxScan)
		if got != tt.expected {
			t.Errorf("%s: FindLeafRow = %d, expected %d", tt.name, got, tt.expected)
		}
	}
}

func TestBuildColumnsHierarchy(t *testing.T) {
	cols, conflicts := BuildColumns(mergedHeaderGrid(), 3, headerOpts)
	if len(conflicts) != 0 {
		t.Fatalf("unexpected conflicts: %v", conflicts)
	}

	expected := []string{
		"Brand",
		"Model",
		"Chipset",
		"General|Audio|Codec",
		"General|Audio|Jacks",
		"General|Memory|Slots",
		"Rear I/O|USB|Type A",
		"Rear I/O|USB|Type C",
	}
	if len(cols) != len(expected) {
		t.Fatalf("got %d columns, expected %d: %+v", len(cols), len(expected), cols)
	}
	for i, key := range expected {
		if cols[i].Key != key {
			t.Errorf("column %d: key = %q, expected %q", i, cols[i].Key, key)
		}
	}

	codec := cols[3]
	if codec.Name != "Codec" {
		t.Errorf("leaf name = %q, expected Codec", codec.Name)
	}
	if len(codec.Path) != 2 || codec.Path[0] != "General" || codec.Path[1] != "Audio" {
		t.Errorf("parent path = %v, expected [General Audio]", codec.Path)
	}
	if codec.Col != 3 {
		t.Errorf("column index = %d, expected 3", codec.Col)
	}
}

func TestBuildColumnsUniqueness(t *testing.T) {
	cols, _ := BuildColumns(mergedHeaderGrid(), 3, headerOpts)
	seen := map[string]bool{}
	for _, c := range cols {
		if seen[c.Key] {
			t.Errorf("duplicate retained key %q", c.Key)
		}
		seen[c.Key] = true
	}
}

func TestBuildColumnsSkipsBoilerplateColumn(t *testing.T) {
	grid := Grid{
		{"Brand", "Model", "Use the tabs below", "Codec"},
		{"row", "data", "x", "y"},
	}
	cols, _ := BuildColumns(grid, 0, headerOpts)
	for _, c := range cols {
		if c.Key == "Use the tabs below" {
			t.Errorf("boilerplate column was retained: %+v", c)
		}
	}
	if len(cols) != 3 {
		t.Errorf("got %d columns, expected 3", len(cols))
	}
}

func TestBuildColumnsMergedLeafContinuation(t *testing.T) {
	// "Total USB" merged over two columns: with the merge resolved the
	// second cell repeats the text; in a raw grid it is blank. Either way
	// only one column comes out.
	filled := Grid{
		{"", "", "Rear I/O", ""},
		{"", "", "USB", "USB"},
		{"Brand", "Model", "Total USB", "Total USB"},
	}
	raw := Grid{
		{"", "", "Rear I/O", ""},
		{"", "", "USB", ""},
		{"Brand", "Model", "Total USB", ""},
	}
	for _, tt := range []struct {
		name string
		grid Grid
	}{{"merge filled", filled}, {"raw blanks", raw}} {
		cols, conflicts := BuildColumns(tt.grid, 2, headerOpts)
		if len(conflicts) != 0 {
			t.Errorf("%s: unexpected conflicts: %v", tt.name, conflicts)
		}
		if len(cols) != 3 {
			t.Fatalf("%s: got %d columns, expected 3: %+v", tt.name, len(cols), cols)
		}
		if cols[2].Key != "Rear I/O|USB|Total USB" {
			t.Errorf("%s: key = %q", tt.name, cols[2].Key)
		}
	}
}

func TestBuildColumnsConflictSurfaced(t *testing.T) {
	grid := Grid{
		{"", "General", "", "General"},
		{"Brand", "Codec", "Model", "Codec"},
	}
	cols, conflicts := BuildColumns(grid, 1, headerOpts)

	if len(conflicts) != 1 {
		t.Fatalf("got %d conflicts, expected 1: %v", len(conflicts), conflicts)
	}
	c := conflicts[0]
	if c.Key != "General|Codec" || c.FirstCol != 1 || c.SecondCol != 3 {
		t.Errorf("conflict = %+v, expected General|Codec cols 1/3", c)
	}
	// First column wins; the duplicate is not retained.
	count := 0
	for _, col := range cols {
		if col.Key == "General|Codec" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("retained %d General|Codec columns, expected 1", count)
	}
}

func TestBuildColumnsBlankLeafPromotion(t *testing.T) {
	// A parent with no leaf text below it becomes the leaf itself.
	grid := Grid{
		{"", "", "Form Factor"},
		{"Brand", "Model", ""},
	}
	cols, _ := BuildColumns(grid, 1, headerOpts)
	if len(cols) != 3 {
		t.Fatalf("got %d columns, expected 3: %+v", len(cols), cols)
	}
	if cols[2].Key != "Form Factor" || cols[2].Name != "Form Factor" {
		t.Errorf("promoted column = %+v, expected flat Form Factor", cols[2])
	}
}

func TestBuildColumnsDropsLeafRepeatedAsParent(t *testing.T) {
	// A vertically merged leaf spills its text into the parent block.
	grid := Grid{
		{"", "", "General"},
		{"", "", "Socket"},
		{"Brand", "Model", "Socket"},
	}
	cols, _ := BuildColumns(grid, 2, headerOpts)
	if len(cols) != 3 {
		t.Fatalf("got %d columns, expected 3: %+v", len(cols), cols)
	}
	if cols[2].Key != "General|Socket" {
		t.Errorf("key = %q, expected General|Socket", cols[2].Key)
	}
}

func TestBuildColumnsIdentityStaysFlat(t *testing.T) {
	// Identity columns sit under decorative parents on some sheets but
	// keep flat keys.
	grid := Grid{
		{"Motherboard", "", ""},
		{"Brand", "Model", "Chipset"},
	}
	cols, _ := BuildColumns(grid, 1, headerOpts)
	for i, key := range []string{"Brand", "Model", "Chipset"} {
		if cols[i].Key != key {
			t.Errorf("column %d: key = %q, expected flat %q", i, cols[i].Key, key)
		}
		if len(cols[i].Path) != 0 {
			t.Errorf("column %d: path = %v, expected none", i, cols[i].Path)
		}
	}
}

func TestCleanLabel(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"  Codec  ", "Codec"},
		{"Audio\nCodec", "Audio Codec"},
		{"\n Total \n", "Total"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := cleanLabel(tt.input); got != tt.expected {
			t.Errorf("cleanLabel(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}
