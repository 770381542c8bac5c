package parser

import (
	"strings"

	"github.com/am5hub/mobospec-go/pkg/mobospec/models"
)

// ExtractRows builds one raw FlatRecord per data row below the leaf row.
// Rows whose Model cell is blank are dropped (section separators, trailing
// notes). The Brand cell is forward-filled down merged vertical runs, the way
// the sheet renders them. Values are kept raw; whitespace normalization
// happens at unflatten time.
func ExtractRows(g Grid, leafRow int, cols []models.ColumnPath) []models.FlatRecord {
	var (
		records   []models.FlatRecord
		lastBrand string
	)

	for r := leafRow + 1; r < g.Rows(); r++ {
		rec := make(models.FlatRecord, len(cols))
		model := ""
		for _, col := range cols {
			val := g.At(r, col.Col)
			switch col.Key {
			case "Model":
				model = strings.TrimSpace(val)
			case "Brand":
				if strings.TrimSpace(val) == "" {
					val = lastBrand
				}
			}
			rec[col.Key] = val
		}
		if model == "" {
			continue
		}
		if b := strings.TrimSpace(rec["Brand"]); b != "" {
			lastBrand = b
		}
		records = append(records, rec)
	}

	return records
}

// SanitizeID turns a model name into the ID-safe fragment used in board IDs.
func SanitizeID(model string) string {
	s := strings.TrimSpace(strings.ReplaceAll(model, "\n", " "))
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "\\", "-")
	for strings.Contains(s, "__") {
		s = strings.ReplaceAll(s, "__", "_")
	}
	return s
}
