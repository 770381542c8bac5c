package mobospec

import (
	"errors"
	"fmt"
	"strings"

	"github.com/am5hub/mobospec-go/pkg/mobospec/models"
)

// ErrFileNotFound indicates the input workbook does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx workbook.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrNoSheets indicates none of the configured sheets could be ingested.
var ErrNoSheets = errors.New("no sheets ingested")

// HeaderNotFoundError reports that no row within the scan bound contained all
// leaf-row marker tokens. Fatal to the sheet, recoverable by skipping it.
type HeaderNotFoundError struct {
	SheetName string
	Markers   []string
	ScanRows  int
}

func (e *HeaderNotFoundError) Error() string {
	return fmt.Sprintf("sheet %q: no header row containing %s within first %d rows",
		e.SheetName, strings.Join(e.Markers, ", "), e.ScanRows)
}

// ColumnPathConflictError reports columns whose paths collide. The
// reconstructor keeps the first column of each pair and surfaces the rest
// here; the caller decides whether to abort or rename.
type ColumnPathConflictError struct {
	SheetName string
	Conflicts []models.PathConflict
}

func (e *ColumnPathConflictError) Error() string {
	keys := make([]string, 0, len(e.Conflicts))
	for _, c := range e.Conflicts {
		keys = append(keys, fmt.Sprintf("%q (cols %d, %d)", c.Key, c.FirstCol, c.SecondCol))
	}
	return fmt.Sprintf("sheet %q: conflicting column paths: %s",
		e.SheetName, strings.Join(keys, "; "))
}

// SheetError wraps an error from ingesting one sheet so that one malformed
// sheet does not prevent others from loading.
type SheetError struct {
	SheetName string
	Err       error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("ingesting sheet %q: %v", e.SheetName, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}
