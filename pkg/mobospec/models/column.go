// Package models defines data structures for motherboard spec extraction.
package models

// PathDelimiter joins column path segments into a flat record key.
const PathDelimiter = "|"

// ColumnPath describes one retained spreadsheet column and its place in the
// header hierarchy.
type ColumnPath struct {
	// Key is the full delimiter-joined path, e.g. "General|Audio|Codec".
	Key string `json:"key"`
	// Name is the leaf header text, e.g. "Codec".
	Name string `json:"name"`
	// Path is the ordered list of parent section names above the leaf.
	Path []string `json:"path"`
	// Col is the 0-based column index in the source grid.
	Col int `json:"col"`
}

// PathConflict records two distinct columns resolving to the same full
// path. The first column is retained; the second is reported.
type PathConflict struct {
	// Key is the duplicated full path.
	Key string `json:"key"`
	// FirstCol and SecondCol are the 0-based column indexes involved.
	FirstCol  int `json:"first_col"`
	SecondCol int `json:"second_col"`
}
