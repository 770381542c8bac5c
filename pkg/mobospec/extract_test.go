package mobospec

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/am5hub/mobospec-go/pkg/mobospec/config"
)

// writeWorkbook builds a one-sheet workbook in the master-sheet shape: a
// boilerplate banner, a merged parent header row, the Brand/Model leaf row,
// then data rows with a merged Brand run and a blank separator.
func writeWorkbook(t *testing.T) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "X870E"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		t.Fatalf("NewSheet failed: %v", err)
	}
	f.SetActiveSheet(idx)

	f.SetCellValue(sheet, "A1", "Use the tabs below to navigate")

	f.SetCellValue(sheet, "D2", "General")
	if err := f.MergeCell(sheet, "D2", "E2"); err != nil {
		t.Fatalf("MergeCell failed: %v", err)
	}
	f.SetCellValue(sheet, "F2", "Storage")
	if err := f.MergeCell(sheet, "F2", "G2"); err != nil {
		t.Fatalf("MergeCell failed: %v", err)
	}

	for col, label := range map[string]string{
		"A3": "Brand", "B3": "Model", "C3": "Chipset",
		"D3": "Codec", "E3": "Jacks", "F3": "Total M.2", "G3": "Notes",
	} {
		f.SetCellValue(sheet, col, label)
	}

	rows := [][]any{
		{"ASUS", "X870E Hero", "X870E", "ALC4080", "5", "5(+2)", "launch BIOS"},
		{"", "X870E Nova", "X870E", "ALC1220", "3", "3", "-"},
		{"", "", "", "", "", "", ""},
		{"MSI", "Carbon", "X870E", "ALC4080", "5", "5", "-"},
	}
	for r, row := range rows {
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+4)
			f.SetCellValue(sheet, cell, v)
		}
	}

	path := filepath.Join(t.TempDir(), "boards.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save workbook: %v", err)
	}
	return path
}

func TestExtract(t *testing.T) {
	path := writeWorkbook(t)

	ds, err := Extract(path, DefaultOptions())
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	if ds.BookName != "boards.xlsx" {
		t.Errorf("BookName = %q", ds.BookName)
	}
	if len(ds.Boards) != 3 {
		t.Fatalf("got %d boards, expected 3 (separator row dropped)", len(ds.Boards))
	}

	hero := ds.Boards[0]
	if hero.ID != "X870E_0_X870E_Hero" {
		t.Errorf("ID = %q", hero.ID)
	}
	if hero.Brand != "ASUS" || hero.Model != "X870E Hero" || hero.Chipset != "X870E" {
		t.Errorf("identity = %q/%q/%q", hero.Brand, hero.Model, hero.Chipset)
	}
	if hero.Sheet != "X870E" {
		t.Errorf("Sheet = %q", hero.Sheet)
	}
	if got := hero.Specs.Lookup("General|Codec"); got != "ALC4080" {
		t.Errorf("General|Codec = %q", got)
	}
	if got := hero.Specs.Lookup("Storage|Total M.2"); got != "5(+2)" {
		t.Errorf("Storage|Total M.2 = %q", got)
	}
	if hero.Flat == nil {
		t.Error("Flat record missing despite KeepFlat")
	}

	// Brand forward-fills through the merged run.
	if ds.Boards[1].Brand != "ASUS" {
		t.Errorf("board 1 brand = %q, expected forward-filled ASUS", ds.Boards[1].Brand)
	}
	if ds.Boards[2].Brand != "MSI" {
		t.Errorf("board 2 brand = %q", ds.Boards[2].Brand)
	}

	// Structure mirrors the merged header block; the banner column is gone.
	if len(ds.Structure) != 5 {
		t.Fatalf("got %d top-level nodes, expected 5: Brand, Model, Chipset, General, Storage", len(ds.Structure))
	}
	general := ds.Structure[3]
	if general.Name != "General" || len(general.Children) != 2 {
		t.Fatalf("General node = %+v", general)
	}
	if general.Children[0].Key != "General|Codec" {
		t.Errorf("leaf key = %q", general.Children[0].Key)
	}
}

func TestExtractWithoutFlat(t *testing.T) {
	path := writeWorkbook(t)

	ds, err := Extract(path, Options{})
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if ds.Boards[0].Flat != nil {
		t.Error("Flat record kept despite KeepFlat=false")
	}
}

func TestExtractFileNotFound(t *testing.T) {
	_, err := Extract(filepath.Join(t.TempDir(), "missing.xlsx"), DefaultOptions())
	if !errors.Is(err, ErrFileNotFound) {
		t.Errorf("err = %v, expected ErrFileNotFound", err)
	}
}

func TestExtractInvalidFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not-a-workbook.xlsx")
	if err := os.WriteFile(path, []byte("plain text"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Extract(path, DefaultOptions())
	if !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("err = %v, expected ErrInvalidFormat", err)
	}
}

func TestExtractNoIngestableSheets(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	f.SetCellValue("Sheet1", "A1", "nothing header-like here")
	path := filepath.Join(t.TempDir(), "headerless.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}

	cfg := config.Default()
	cfg.Workbook.Sheets = []string{"Sheet1"}

	ds, err := Extract(path, Options{Config: &cfg})
	if !errors.Is(err, ErrNoSheets) {
		t.Fatalf("err = %v, expected ErrNoSheets", err)
	}
	if len(ds.SheetErrors) != 1 {
		t.Errorf("got %d sheet errors, expected 1: %v", len(ds.SheetErrors), ds.SheetErrors)
	}
}

func TestExtractSkipsAbsentSheets(t *testing.T) {
	// Only X870E exists; the other configured sheets are skipped without
	// being counted as failures.
	path := writeWorkbook(t)

	ds, err := Extract(path, DefaultOptions())
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if len(ds.SheetErrors) != 0 {
		t.Errorf("sheet errors = %v, expected none", ds.SheetErrors)
	}
}
