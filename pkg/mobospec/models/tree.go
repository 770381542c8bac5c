package models

// HeaderNode is one node of the header navigation tree. Leaf nodes carry the
// full flat-record key; internal nodes carry children.
type HeaderNode struct {
	// Name is the section or leaf display name.
	Name string `json:"name"`
	// Key is the full delimiter-joined path (leaf nodes only).
	Key string `json:"key,omitempty"`
	// Children holds nested sections and leaves (internal nodes only).
	Children []*HeaderNode `json:"children,omitempty"`
	// SummaryKey points at the child leaf whose value summarizes this
	// section in collapsed views (set by AnnotateSummaries).
	SummaryKey string `json:"summary_key,omitempty"`
	// SummaryLabel is the display label shown next to the summary value.
	SummaryLabel string `json:"summary_label,omitempty"`
}

// Dataset is the workbook-level extraction result.
type Dataset struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Boards lists every extracted motherboard across all sheets.
	Boards []Board `json:"boards"`
	// Structure is the shared header tree, built from the first sheet that
	// parsed successfully.
	Structure []*HeaderNode `json:"structure"`
	// SheetErrors records per-sheet failures that were skipped.
	SheetErrors []string `json:"sheet_errors,omitempty"`
}

// BoardsByID returns the boards whose IDs appear in ids, preserving the order
// of ids. Unknown IDs are ignored.
func (d *Dataset) BoardsByID(ids []string) []Board {
	byID := make(map[string]Board, len(d.Boards))
	for _, b := range d.Boards {
		byID[b.ID] = b
	}
	out := make([]Board, 0, len(ids))
	for _, id := range ids {
		if b, ok := byID[id]; ok {
			out = append(out, b)
		}
	}
	return out
}
