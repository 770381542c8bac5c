package models

// ScoredValue pairs a field's raw text with a derived comparable score.
// Recomputed per comparison; never persisted.
type ScoredValue struct {
	// Text is the original cell text.
	Text string `json:"text"`
	// Score is the comparable numeric score under the field's semantics.
	Score float64 `json:"score"`
	// IsNumeric reports whether Score was derived from numeric content.
	// Purely textual values score 0 with IsNumeric false.
	IsNumeric bool `json:"is_numeric"`
	// Tags carries rule-specific markers (e.g. matched controller names).
	Tags []string `json:"tags,omitempty"`
}
