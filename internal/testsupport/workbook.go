package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

// Sheet describes one worksheet of a fixture workbook.
type Sheet struct {
	Name string
	Rows [][]interface{}
}

// WriteWorkbook writes an .xlsx file holding exactly the given sheets.
func WriteWorkbook(t testing.TB, path string, sheets ...Sheet) {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	const defaultSheet = "Sheet1"
	keepDefault := false
	for _, sheet := range sheets {
		if sheet.Name == defaultSheet {
			keepDefault = true
		} else if _, err := f.NewSheet(sheet.Name); err != nil {
			t.Fatalf("create sheet %q: %v", sheet.Name, err)
		}
		for i, row := range sheet.Rows {
			cell, _ := excelize.CoordinatesToCellName(1, i+1)
			values := row
			if err := f.SetSheetRow(sheet.Name, cell, &values); err != nil {
				t.Fatalf("write %q row %d: %v", sheet.Name, i+1, err)
			}
		}
	}
	if !keepDefault && len(sheets) > 0 {
		if err := f.DeleteSheet(defaultSheet); err != nil {
			t.Fatalf("delete default sheet: %v", err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save %s: %v", path, err)
	}
}

// CellValue returns the formatted value of one cell of a workbook file.
func CellValue(t testing.TB, path, sheet, cell string) string {
	t.Helper()

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()

	value, err := f.GetCellValue(sheet, cell)
	if err != nil {
		t.Fatalf("read %s!%s: %v", sheet, cell, err)
	}
	return value
}
