// Package docbatch generates per-order folder trees and filled templates from
// a parameters workbook.
package docbatch

import (
	"io"
	"log/slog"
	"time"

	"github.com/ukaji3/docbatch-go/pkg/docbatch/catalog"
	"github.com/ukaji3/docbatch-go/pkg/docbatch/filler"
	"github.com/ukaji3/docbatch-go/pkg/docbatch/scaffold"
)

// Defaults of a run started from the working directory.
const (
	DefaultParamsPath = "./Parameters/Formato Nombres.xlsx"
	DefaultSheet      = "Datos"
	DefaultOutputDir  = "./Outputs"
)

// DefaultDocumentTemplates maps type codes to Word templates.
func DefaultDocumentTemplates() map[string]string {
	return map[string]string{
		"APP_":  "./Inputs/Templates/APP_01_XXXXXXXX_XXXXXXXX.docx",
		"AEPP_": "./Inputs/Templates/AEPP_01_XXXXXXXX_XXXXXXXX.docx",
	}
}

// DefaultSpreadsheetTemplates maps type codes to Excel templates.
func DefaultSpreadsheetTemplates() map[string]string {
	return map[string]string{
		"EDLLO_": "./Inputs/Templates/EDLLO_01_XXXXXXXX_XXXXXXXX_TCS.xlsx",
		"EPP_":   "./Inputs/Templates/EPP_01_XXXXXXXX_XXXXXXXX_TCS.xlsx",
	}
}

// Options configures a run. It is built once and not modified afterwards.
type Options struct {
	// ParamsPath is the parameters workbook.
	ParamsPath string
	// Sheet is the parameters sheet name.
	Sheet string
	// OutputDir is the output root, reset at the start of every run.
	OutputDir string
	// Catalog maps type codes to templates.
	Catalog *catalog.Catalog
	// Date is the run date written into templates.
	Date time.Time
	// Subfolders are created under every order folder.
	// If nil, scaffold.DefaultSubfolders is used.
	Subfolders []string
	// Logger receives progress lines. If nil, logging is discarded.
	Logger *slog.Logger
}

// DefaultOptions returns the options of a run from the working directory.
func DefaultOptions() Options {
	return Options{
		ParamsPath: DefaultParamsPath,
		Sheet:      DefaultSheet,
		OutputDir:  DefaultOutputDir,
		Catalog:    catalog.New(DefaultDocumentTemplates(), DefaultSpreadsheetTemplates()),
		Date:       time.Now(),
		Subfolders: scaffold.DefaultSubfolders,
	}
}

// DateString returns the run date as written into templates (DD/MM/YYYY).
func (o Options) DateString() string {
	return o.Date.Format(filler.DateLayout)
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
