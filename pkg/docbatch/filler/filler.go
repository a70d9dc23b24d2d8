// Package filler renders document and spreadsheet templates for one order.
package filler

import (
	"fmt"

	"github.com/ukaji3/docbatch-go/pkg/docbatch/models"
)

// DateLayout is the layout of the run date written into templates.
const DateLayout = "02/01/2006"

// Filler renders a template for an order and writes the result to outputPath.
type Filler interface {
	Fill(templatePath string, o models.Order, outputPath string) error
}

// FillError represents a failure rendering or saving one artifact.
type FillError struct {
	Key      string
	Template string
	Stage    string // "open", "fill", "save"
	Err      error
}

func (e *FillError) Error() string {
	return fmt.Sprintf("fill error for %q from %s (%s): %v", e.Key, e.Template, e.Stage, e.Err)
}

func (e *FillError) Unwrap() error {
	return e.Err
}

func newFillError(o models.Order, templatePath, stage string, err error) *FillError {
	return &FillError{
		Key:      o.NombreOC,
		Template: templatePath,
		Stage:    stage,
		Err:      err,
	}
}

// For returns the filler of a template family resolved by the catalog.
// It returns nil for any other kind.
func For(kind models.TemplateKind, date string) Filler {
	switch kind {
	case models.KindDocument:
		return Document{Date: date}
	case models.KindSpreadsheet:
		return Spreadsheet{Date: date}
	}
	return nil
}
