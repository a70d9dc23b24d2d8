package parser

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/ukaji3/docbatch-go/pkg/docbatch/models"
	"github.com/xuri/excelize/v2"
)

// ReadOrders opens the workbook at path and reads the orders of sheetName.
func ReadOrders(path, sheetName string) ([]models.Order, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer f.Close()

	return ExtractOrders(f, sheetName)
}

// ExtractOrders reads orders from a sheet whose first row is the header.
// Rows without any value are skipped. Extra columns are ignored and only
// models.RequiredColumns must be present.
func ExtractOrders(f *excelize.File, sheetName string) ([]models.Order, error) {
	idx, err := f.GetSheetIndex(sheetName)
	if err != nil || idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, sheetName)
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	var header []string
	if len(rows) > 0 {
		header = rows[0]
	}
	columns := indexHeader(header)
	if missing := missingColumns(columns); len(missing) > 0 {
		return nil, fmt.Errorf("%w in sheet %q: %s", ErrMissingColumns, sheetName, strings.Join(missing, ", "))
	}

	var orders []models.Order
	for rowIdx := 1; rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		if isBlank(row) {
			continue
		}
		get := func(column string) string {
			col, ok := columns[column]
			if !ok || col >= len(row) {
				return ""
			}
			return row[col]
		}
		o := models.Order{
			Row:           rowIdx + 1, // 1-based
			OC:            get(models.ColumnOC),
			Nombre:        get(models.ColumnNombre),
			Tipo:          get(models.ColumnTipo),
			NombreOC:      get(models.ColumnNombreOC),
			Desarrollador: get(models.ColumnDesarrollador),
			Rol:           get(models.ColumnRol),
			Aplicacion:    get(models.ColumnAplicacion),
			FirmaET:       get(models.ColumnFirmaET),
			QA:            get(models.ColumnQA),
		}
		for _, column := range models.Columns {
			col, ok := columns[column]
			if !ok || get(column) == "" || !isNumericCell(f, sheetName, col+1, rowIdx+1) {
				continue
			}
			if o.Numeric == nil {
				o.Numeric = make(map[string]bool)
			}
			o.Numeric[column] = true
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// indexHeader maps header names to 0-based column indexes.
// The first occurrence wins when a name repeats.
func indexHeader(header []string) map[string]int {
	columns := make(map[string]int, len(header))
	for colIdx, name := range header {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, ok := columns[name]; !ok {
			columns[name] = colIdx
		}
	}
	return columns
}

func missingColumns(columns map[string]int) []string {
	var missing []string
	for _, name := range models.RequiredColumns {
		if _, ok := columns[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}

// isNumericCell reports whether a cell is stored as a number. Number cells
// written without a type attribute report CellTypeUnset.
func isNumericCell(f *excelize.File, sheetName string, col, row int) bool {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return false
	}
	cellType, err := f.GetCellType(sheetName, cell)
	if err != nil {
		return false
	}
	return cellType == excelize.CellTypeNumber || cellType == excelize.CellTypeUnset
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
