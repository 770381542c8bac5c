// Package parser reconstructs column hierarchies and data rows from raw
// spreadsheet grids.
package parser

import (
	"strings"

	"github.com/xuri/excelize/v2"
)

// Grid is an immutable 2-D view of one sheet's raw cell text, origin (0,0).
// Access outside the stored bounds reads as blank, so callers never need to
// worry about ragged rows.
type Grid [][]string

// Rows returns the number of stored rows.
func (g Grid) Rows() int {
	return len(g)
}

// At returns the raw text at (row, col), or "" when out of bounds.
func (g Grid) At(row, col int) string {
	if row < 0 || row >= len(g) {
		return ""
	}
	r := g[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return r[col]
}

// SheetGrid reads a worksheet into a Grid, capped at maxCols columns.
// Merged ranges are resolved by copying the merge origin's value into every
// covered cell, so downstream header parsing sees the label across its full
// extent the way the sheet renders it.
func SheetGrid(f *excelize.File, sheetName string, maxCols int) (Grid, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	grid := make(Grid, len(rows))
	for i, row := range rows {
		if maxCols > 0 && len(row) > maxCols {
			row = row[:maxCols]
		}
		grid[i] = append([]string(nil), row...)
	}

	merges, err := f.GetMergeCells(sheetName)
	if err != nil {
		return grid, nil // merge metadata is best-effort
	}
	for _, m := range merges {
		c1, r1, err1 := excelize.CellNameToCoordinates(m.GetStartAxis())
		c2, r2, err2 := excelize.CellNameToCoordinates(m.GetEndAxis())
		if err1 != nil || err2 != nil {
			continue
		}
		val := m.GetCellValue()
		if strings.TrimSpace(val) == "" {
			continue
		}
		for r := r1 - 1; r <= r2-1 && r < len(grid); r++ {
			if r < 0 {
				continue
			}
			for c := c1 - 1; c <= c2-1; c++ {
				if c < 0 || (maxCols > 0 && c >= maxCols) {
					continue
				}
				for len(grid[r]) <= c {
					grid[r] = append(grid[r], "")
				}
				if grid[r][c] == "" {
					grid[r][c] = val
				}
			}
		}
	}

	return grid, nil
}
