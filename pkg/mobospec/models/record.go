package models

import "strings"

// FlatRecord maps delimiter-joined column keys to raw cell text for one data
// row. Values keep their original whitespace; normalization happens when the
// record is unflattened.
type FlatRecord map[string]string

// NestedRecord is the tree-shaped form of a FlatRecord. Internal nodes are
// map[string]any, leaves are strings.
type NestedRecord map[string]any

// Lookup returns the scalar at a delimiter-joined path, or "" when the path
// is absent or names an internal node.
func (n NestedRecord) Lookup(key string) string {
	parts := strings.Split(key, PathDelimiter)
	cur := n
	for i, part := range parts {
		val, ok := cur[part]
		if !ok {
			return ""
		}
		if i == len(parts)-1 {
			if s, ok := val.(string); ok {
				return s
			}
			return ""
		}
		next, ok := val.(NestedRecord)
		if !ok {
			return ""
		}
		cur = next
	}
	return ""
}

// Board is one motherboard entry extracted from a sheet.
type Board struct {
	// ID uniquely identifies the board: "<sheet>_<rowIdx>_<sanitized model>".
	ID string `json:"id"`
	// Brand is the manufacturer name, forward-filled down merged runs.
	Brand string `json:"brand"`
	// Model is the board model name. Rows without a model are dropped.
	Model string `json:"model"`
	// Chipset is the chipset name (X870E, B650, ...).
	Chipset string `json:"chipset"`
	// Sheet is the name of the source worksheet.
	Sheet string `json:"sheet"`
	// Flat is the raw flat record as read from the grid.
	Flat FlatRecord `json:"flat,omitempty"`
	// Specs is the nested, whitespace-normalized specification tree.
	Specs NestedRecord `json:"specs"`
}
