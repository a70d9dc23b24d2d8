package filler

import (
	"github.com/ukaji3/docbatch-go/pkg/docbatch/models"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/unicode/norm"
)

// Spreadsheet fills .xlsx templates.
type Spreadsheet struct {
	Date string
}

// Fill writes the SheetBindings values of o into the template and saves it.
func (s Spreadsheet) Fill(templatePath string, o models.Order, outputPath string) error {
	f, err := excelize.OpenFile(templatePath)
	if err != nil {
		return newFillError(o, templatePath, "open", err)
	}
	defer f.Close()

	if _, err := ApplySheetBindings(f, o, s.Date); err != nil {
		return newFillError(o, templatePath, "fill", err)
	}
	if err := f.SaveAs(outputPath); err != nil {
		return newFillError(o, templatePath, "save", err)
	}
	return nil
}

// ApplySheetBindings writes the bound values into every bound sheet present in f.
// It returns the names of the sheets that were filled.
func ApplySheetBindings(f *excelize.File, o models.Order, date string) ([]string, error) {
	sheetList := f.GetSheetList()

	var filled []string
	for _, binding := range SheetBindings {
		sheetName, ok := findSheet(sheetList, binding.Sheet)
		if !ok {
			continue
		}
		for _, c := range binding.Cells {
			if err := f.SetCellValue(sheetName, c.Cell, c.Value(o, date)); err != nil {
				return filled, err
			}
		}
		filled = append(filled, sheetName)
	}
	return filled, nil
}

// findSheet looks up a sheet by name, comparing names in NFC form so that
// composed and decomposed accents match.
func findSheet(sheetList []string, name string) (string, bool) {
	want := norm.NFC.String(name)
	for _, sheetName := range sheetList {
		if norm.NFC.String(sheetName) == want {
			return sheetName, true
		}
	}
	return "", false
}
