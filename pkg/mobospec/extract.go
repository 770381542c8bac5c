package mobospec

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/am5hub/mobospec-go/pkg/mobospec/config"
	"github.com/am5hub/mobospec-go/pkg/mobospec/models"
	"github.com/am5hub/mobospec-go/pkg/mobospec/parser"
	"github.com/am5hub/mobospec-go/pkg/mobospec/transform"
)

// Extract ingests a motherboard spec workbook into a Dataset. Each configured
// sheet is processed independently: the leaf header row is located, column
// paths are reconstructed from the merged header block, and every data row
// becomes one Board with a nested spec tree. Sheet failures are recorded on
// the Dataset and logged, never fatal to the other sheets. The header
// navigation tree is built once, from the first sheet that parses.
func Extract(path string, opts Options) (*models.Dataset, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer f.Close()

	cfg := opts.config()
	log := opts.logger()

	available := make(map[string]bool)
	for _, name := range f.GetSheetList() {
		available[name] = true
	}

	ds := &models.Dataset{BookName: filepath.Base(path)}

	for _, sheetName := range cfg.Workbook.Sheets {
		if !available[sheetName] {
			log.Warn("sheet not found, skipping", zap.String("sheet", sheetName))
			continue
		}

		boards, cols, err := extractSheet(f, sheetName, cfg, opts, log)
		if err != nil {
			log.Warn("sheet skipped", zap.String("sheet", sheetName), zap.Error(err))
			ds.SheetErrors = append(ds.SheetErrors, err.Error())
			continue
		}

		if ds.Structure == nil {
			ds.Structure = transform.BuildHeaderTree(cols)
		}
		ds.Boards = append(ds.Boards, boards...)
		log.Info("sheet ingested",
			zap.String("sheet", sheetName),
			zap.Int("boards", len(boards)),
			zap.Int("columns", len(cols)))
	}

	if ds.Structure == nil {
		return ds, ErrNoSheets
	}
	return ds, nil
}

func extractSheet(f *excelize.File, sheetName string, cfg config.Config, opts Options, log *zap.Logger) ([]models.Board, []models.ColumnPath, error) {
	wb := cfg.Workbook

	grid, err := parser.SheetGrid(f, sheetName, wb.MaxColumns)
	if err != nil {
		return nil, nil, &SheetError{SheetName: sheetName, Err: err}
	}

	leafRow := parser.FindLeafRow(grid, wb.Markers, wb.MaxHeaderScanRows)
	if leafRow < 0 {
		return nil, nil, &SheetError{SheetName: sheetName, Err: &HeaderNotFoundError{
			SheetName: sheetName,
			Markers:   wb.Markers,
			ScanRows:  wb.MaxHeaderScanRows,
		}}
	}

	cols, conflicts := parser.BuildColumns(grid, leafRow, parser.ColumnOptions{
		MaxParentRows:   wb.MaxParentRows,
		SkipPatterns:    wb.SkipHeaderPatterns,
		IdentityColumns: wb.IdentityColumns,
	})
	if len(conflicts) > 0 {
		// Surfaced, not silently merged: the first column of each pair is
		// retained and the sheet still loads.
		confErr := &ColumnPathConflictError{SheetName: sheetName, Conflicts: conflicts}
		log.Warn("column path conflicts", zap.String("sheet", sheetName), zap.Error(confErr))
	}

	records := parser.ExtractRows(grid, leafRow, cols)

	boards := make([]models.Board, 0, len(records))
	for idx, rec := range records {
		specs, collisions := transform.Unflatten(rec)
		for _, c := range collisions {
			log.Warn("unflatten collision, last write wins",
				zap.String("sheet", sheetName),
				zap.String("key", c.Key),
				zap.String("segment", c.Segment))
		}

		model := transform.CleanValue(rec["Model"])
		board := models.Board{
			ID:      fmt.Sprintf("%s_%d_%s", sheetName, idx, parser.SanitizeID(model)),
			Brand:   transform.CleanValue(rec["Brand"]),
			Model:   model,
			Chipset: transform.CleanValue(rec["Chipset"]),
			Sheet:   sheetName,
			Specs:   specs,
		}
		if opts.KeepFlat {
			board.Flat = rec
		}
		boards = append(boards, board)
	}

	return boards, cols, nil
}
