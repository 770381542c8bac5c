package mobospec

import (
	"github.com/am5hub/mobospec-go/pkg/mobospec/compare"
	"github.com/am5hub/mobospec-go/pkg/mobospec/models"
)

// FieldComparison carries one field's values and verdicts across the
// compared boards, in board order.
type FieldComparison struct {
	// Key is the full column path of the field.
	Key string `json:"key"`
	// Name is the field display name (the leaf header text).
	Name string `json:"name"`
	// Values are the raw cell values, one per compared board.
	Values []string `json:"values"`
	// Verdicts classify each value; same order as Values.
	Verdicts []models.Verdict `json:"verdicts"`
}

// CompareBoards runs the diff engine over every leaf field in the header
// tree for the selected boards. Fields where every verdict is identical are
// included; rendering layers decide what to elide.
func CompareBoards(eng *compare.Engine, structure []*models.HeaderNode, boards []models.Board) []FieldComparison {
	var out []FieldComparison
	walkLeaves(structure, func(node *models.HeaderNode) {
		values := make([]string, len(boards))
		for i, b := range boards {
			values[i] = b.Specs.Lookup(node.Key)
		}
		out = append(out, FieldComparison{
			Key:      node.Key,
			Name:     node.Name,
			Values:   values,
			Verdicts: eng.CompareField(node.Name, values),
		})
	})
	return out
}

func walkLeaves(nodes []*models.HeaderNode, fn func(*models.HeaderNode)) {
	for _, n := range nodes {
		if n.Key != "" {
			fn(n)
		}
		walkLeaves(n.Children, fn)
	}
}
