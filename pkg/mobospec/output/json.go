// Package output serializes extraction and comparison results to JSON for
// consumption by static sites and rendering layers.
package output

import (
	"encoding/json"

	"github.com/am5hub/mobospec-go/pkg/mobospec/models"
)

// ToJSON marshals any result value, optionally indented.
func ToJSON(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// BoardsToJSON marshals the board list the way the static data export
// expects: one array, nested specs inline.
func BoardsToJSON(boards []models.Board, pretty bool) ([]byte, error) {
	return ToJSON(boards, pretty)
}

// StructureToJSON marshals the header navigation tree.
func StructureToJSON(tree []*models.HeaderNode, pretty bool) ([]byte, error) {
	return ToJSON(tree, pretty)
}
