package docbatch

import (
	"errors"
	"fmt"

	"github.com/ukaji3/docbatch-go/pkg/docbatch/catalog"
	"github.com/ukaji3/docbatch-go/pkg/docbatch/filler"
	"github.com/ukaji3/docbatch-go/pkg/docbatch/parser"
	"github.com/ukaji3/docbatch-go/pkg/docbatch/scaffold"
)

// ErrFileNotFound indicates the parameters workbook does not exist.
var ErrFileNotFound = parser.ErrFileNotFound

// ErrInvalidFormat indicates the parameters file is not a valid xlsx workbook.
var ErrInvalidFormat = parser.ErrInvalidFormat

// ErrSheetNotFound indicates the parameters workbook lacks the configured sheet.
var ErrSheetNotFound = parser.ErrSheetNotFound

// ErrMissingColumns indicates the parameters sheet lacks required columns.
var ErrMissingColumns = parser.ErrMissingColumns

// ErrTemplateNotFound indicates a type code without an existing template file.
var ErrTemplateNotFound = catalog.ErrTemplateNotFound

// ErrUnsupportedTemplate indicates a template that is neither .docx nor .xlsx.
var ErrUnsupportedTemplate = catalog.ErrUnsupportedTemplate

// ErrRunInProgress indicates another run holds the output lock.
var ErrRunInProgress = errors.New("run in progress")

// FolderError is a recovered failure creating one order's folder tree.
type FolderError = scaffold.FolderError

// FillError is an unrecovered failure rendering or saving one artifact.
type FillError = filler.FillError

// ReadError represents a failure reading the parameters workbook.
type ReadError struct {
	Path  string
	Sheet string
	Err   error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("error reading %s (sheet %q): %v", e.Path, e.Sheet, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}
