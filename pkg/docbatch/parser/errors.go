// Package parser reads the parameters workbook into orders.
package parser

import "errors"

// ErrFileNotFound indicates the parameters workbook does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the parameters file is not a valid xlsx workbook.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrSheetNotFound indicates the workbook has no sheet with the requested name.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrMissingColumns indicates the sheet header lacks required columns.
var ErrMissingColumns = errors.New("missing columns")
