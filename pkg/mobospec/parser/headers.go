package parser

import (
	"strings"

	"github.com/am5hub/mobospec-go/pkg/mobospec/models"
)

// ColumnOptions configures header reconstruction for one sheet.
type ColumnOptions struct {
	// MaxParentRows bounds how far above the leaf row parent labels are read.
	MaxParentRows int
	// SkipPatterns excludes boilerplate labels. A parent label containing a
	// pattern (case-insensitively) is ignored; a leaf containing one drops
	// the whole column.
	SkipPatterns []string
	// IdentityColumns are leaf names whose key stays flat (no parent path).
	IdentityColumns []string
}

// FindLeafRow locates the leaf header row: the first row within maxScan rows
// from the top whose cells contain every marker token. Returns -1 when no
// such row exists.
func FindLeafRow(g Grid, markers []string, maxScan int) int {
	if len(markers) == 0 {
		return -1
	}
	if maxScan <= 0 || maxScan > g.Rows() {
		maxScan = g.Rows()
	}
	for row := 0; row < maxScan; row++ {
		found := make(map[string]bool, len(markers))
		for _, cell := range g[row] {
			cell = cleanLabel(cell)
			for _, m := range markers {
				if cell == m {
					found[m] = true
				}
			}
		}
		if len(found) == len(markers) {
			return row
		}
	}
	return -1
}

// BuildColumns reconstructs one ColumnPath per retained column from the
// header block ending at leafRow. Parent labels extend rightward over
// contiguous blank cells (merged-cell semantics); boilerplate and decorative
// columns are dropped; adjacent columns under one merged leaf collapse into
// the first. Non-adjacent columns resolving to an identical path are a
// conflict: the first is kept and the pair is reported, never silently
// merged.
func BuildColumns(g Grid, leafRow int, opts ColumnOptions) ([]models.ColumnPath, []models.PathConflict) {
	start := leafRow - opts.MaxParentRows
	if start < 0 {
		start = 0
	}

	width := 0
	for r := start; r <= leafRow && r < g.Rows(); r++ {
		if len(g[r]) > width {
			width = len(g[r])
		}
	}

	// Parent rows with merged extents applied: a label runs until the next
	// non-blank label in the same row.
	parentRows := make([][]string, 0, leafRow-start)
	for r := start; r < leafRow; r++ {
		row := make([]string, width)
		last := ""
		for c := 0; c < width; c++ {
			cell := cleanLabel(g.At(r, c))
			if cell != "" {
				last = cell
			}
			row[c] = last
		}
		parentRows = append(parentRows, row)
	}

	var (
		cols       []models.ColumnPath
		conflicts  []models.PathConflict
		seen       = map[string]int{} // key -> first column index
		prevPath   []string           // full path of previous considered column
		prevParent []string           // its parent path, pre-promotion
		havePrev   bool
	)

	for c := 0; c < width; c++ {
		leaf := cleanLabel(g.At(leafRow, c))
		if leaf != "" && matchesAny(leaf, opts.SkipPatterns) {
			continue
		}

		var parents []string
		for _, row := range parentRows {
			p := row[c]
			if p == "" || matchesAny(p, opts.SkipPatterns) {
				continue
			}
			if len(parents) > 0 && parents[len(parents)-1] == p {
				continue
			}
			parents = append(parents, p)
		}

		// A merged leaf spills its own text into the parent block; drop the
		// trailing parent when it repeats the leaf.
		if len(parents) > 0 && leaf != "" && parents[len(parents)-1] == leaf {
			parents = parents[:len(parents)-1]
		}

		if leaf == "" {
			if len(parents) == 0 {
				continue
			}
			if havePrev && pathsEqual(parents, prevParent) {
				// Blank continuation cell of a horizontally merged leaf.
				continue
			}
			leaf = parents[len(parents)-1]
			parents = parents[:len(parents)-1]
		}

		if containsFold(opts.IdentityColumns, leaf) {
			parents = nil
		}

		full := append(append([]string(nil), parents...), leaf)
		if havePrev && pathsEqual(full, prevPath) {
			// Continuation of a merged leaf whose text was filled across
			// its extent.
			continue
		}
		prevPath, prevParent, havePrev = full, parents, true

		key := strings.Join(full, models.PathDelimiter)
		if first, dup := seen[key]; dup {
			conflicts = append(conflicts, models.PathConflict{
				Key:       key,
				FirstCol:  first,
				SecondCol: c,
			})
			continue
		}
		seen[key] = c

		cols = append(cols, models.ColumnPath{
			Key:  key,
			Name: leaf,
			Path: parents,
			Col:  c,
		})
	}

	return cols, conflicts
}

// cleanLabel trims whitespace and flattens embedded newlines.
func cleanLabel(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.TrimSpace(s)
}

func matchesAny(text string, patterns []string) bool {
	lower := strings.ToLower(text)
	for _, p := range patterns {
		if p != "" && strings.Contains(lower, strings.ToLower(p)) {
			return true
		}
	}
	return false
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}

func pathsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
