// Package config loads the docbatch run configuration from TOML or YAML files.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/ukaji3/docbatch-go/pkg/docbatch"
	"github.com/ukaji3/docbatch-go/pkg/docbatch/catalog"
	"gopkg.in/yaml.v3"
)

//go:embed sample_config.toml
var sampleConfig string

// Templates contains the type code to template path tables.
type Templates struct {
	Documents    map[string]string `toml:"documents" yaml:"documents"`
	Spreadsheets map[string]string `toml:"spreadsheets" yaml:"spreadsheets"`
}

// Config contains the settings of a run.
type Config struct {
	ParamsPath  string    `toml:"params_path" yaml:"params_path"`
	ParamsSheet string    `toml:"params_sheet" yaml:"params_sheet"`
	OutputDir   string    `toml:"output_dir" yaml:"output_dir"`
	Subfolders  []string  `toml:"subfolders" yaml:"subfolders"`
	LogLevel    string    `toml:"log_level" yaml:"log_level"`
	LogFormat   string    `toml:"log_format" yaml:"log_format"`
	Templates   Templates `toml:"templates" yaml:"templates"`
}

// SampleConfig returns the commented sample configuration.
func SampleConfig() string {
	return sampleConfig
}

// Load reads the configuration at path over the defaults.
// An empty path returns the defaults. Files ending in .yaml or .yml are
// decoded as YAML, everything else as TOML. A template table given in the
// file replaces the default table instead of merging with it.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return &cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	defaults := cfg.Templates
	cfg.Templates = Templates{}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		err = toml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if cfg.Templates.Documents == nil {
		cfg.Templates.Documents = defaults.Documents
	}
	if cfg.Templates.Spreadsheets == nil {
		cfg.Templates.Spreadsheets = defaults.Spreadsheets
	}

	cfg.normalize()
	return &cfg, nil
}

func (c *Config) normalize() {
	c.ParamsPath = strings.TrimSpace(c.ParamsPath)
	c.ParamsSheet = strings.TrimSpace(c.ParamsSheet)
	c.OutputDir = strings.TrimSpace(c.OutputDir)
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
}

// Validate checks the configuration for values a run cannot start with.
func (c *Config) Validate() error {
	var errs []error
	if c.ParamsPath == "" {
		errs = append(errs, errors.New("params_path must be set"))
	}
	if c.ParamsSheet == "" {
		errs = append(errs, errors.New("params_sheet must be set"))
	}
	if c.OutputDir == "" {
		errs = append(errs, errors.New("output_dir must be set"))
	} else if filepath.Clean(c.OutputDir) == "." || filepath.Clean(c.OutputDir) == string(filepath.Separator) {
		errs = append(errs, fmt.Errorf("output_dir %q would reset the working directory or filesystem root", c.OutputDir))
	}
	if len(c.Templates.Documents)+len(c.Templates.Spreadsheets) == 0 {
		errs = append(errs, errors.New("at least one template must be configured"))
	}
	for code, path := range c.Templates.Documents {
		if strings.TrimSpace(code) == "" || strings.TrimSpace(path) == "" {
			errs = append(errs, fmt.Errorf("templates.documents: empty entry %q = %q", code, path))
		}
	}
	for code, path := range c.Templates.Spreadsheets {
		if strings.TrimSpace(code) == "" || strings.TrimSpace(path) == "" {
			errs = append(errs, fmt.Errorf("templates.spreadsheets: empty entry %q = %q", code, path))
		}
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error", "":
	default:
		errs = append(errs, fmt.Errorf("log_level: unsupported value %q", c.LogLevel))
	}
	switch c.LogFormat {
	case "console", "json", "":
	default:
		errs = append(errs, fmt.Errorf("log_format: unsupported value %q", c.LogFormat))
	}
	return errors.Join(errs...)
}

// RunOptions converts the configuration into the options of one run.
func (c *Config) RunOptions(date time.Time, logger *slog.Logger) docbatch.Options {
	subfolders := make([]string, len(c.Subfolders))
	copy(subfolders, c.Subfolders)
	if len(subfolders) == 0 {
		subfolders = nil
	}

	return docbatch.Options{
		ParamsPath: c.ParamsPath,
		Sheet:      c.ParamsSheet,
		OutputDir:  c.OutputDir,
		Catalog:    catalog.New(c.Templates.Documents, c.Templates.Spreadsheets),
		Date:       date,
		Subfolders: subfolders,
		Logger:     logger,
	}
}
