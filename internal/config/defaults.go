package config

import (
	"github.com/ukaji3/docbatch-go/pkg/docbatch"
	"github.com/ukaji3/docbatch-go/pkg/docbatch/scaffold"
)

const (
	defaultLogLevel  = "info"
	defaultLogFormat = "console"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	subfolders := make([]string, len(scaffold.DefaultSubfolders))
	copy(subfolders, scaffold.DefaultSubfolders)

	return Config{
		ParamsPath:  docbatch.DefaultParamsPath,
		ParamsSheet: docbatch.DefaultSheet,
		OutputDir:   docbatch.DefaultOutputDir,
		Subfolders:  subfolders,
		LogLevel:    defaultLogLevel,
		LogFormat:   defaultLogFormat,
		Templates: Templates{
			Documents:    docbatch.DefaultDocumentTemplates(),
			Spreadsheets: docbatch.DefaultSpreadsheetTemplates(),
		},
	}
}
