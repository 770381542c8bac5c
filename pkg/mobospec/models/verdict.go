package models

// VerdictKind classifies one cell of a field comparison.
type VerdictKind string

const (
	// VerdictIdentical marks cells that need no highlighting: either every
	// value in the row matched, or the cell belongs to a suppressed
	// majority.
	VerdictIdentical VerdictKind = "identical"
	// VerdictBest marks the best-scoring cell(s) of a numeric row.
	VerdictBest VerdictKind = "best"
	// VerdictOutlierNumeric marks a numeric cell ranked below best; its
	// Position places it on the severity gradient.
	VerdictOutlierNumeric VerdictKind = "outlier-numeric"
	// VerdictOutlierCategorical marks a textual cell differing from the
	// textual majority.
	VerdictOutlierCategorical VerdictKind = "outlier-categorical"
	// VerdictMissing marks blank or placeholder cells.
	VerdictMissing VerdictKind = "missing"
)

// Verdict is the per-cell comparison classification for one field across the
// compared boards.
type Verdict struct {
	// Kind is the cell classification.
	Kind VerdictKind `json:"kind"`
	// Position is the gradient position in [0,1] for outlier-numeric cells:
	// 0 sits next to best, 1 is the worst distinct score. Rank-based over
	// the distinct scores present, not proportional to raw magnitude.
	Position float64 `json:"position,omitempty"`
	// Rank is the 0-based rank of the cell's score among the distinct
	// numeric scores present (0 = best).
	Rank int `json:"rank,omitempty"`
}
