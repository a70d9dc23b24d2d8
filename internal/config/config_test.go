package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/pelletier/go-toml/v2"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if diff := cmp.Diff(Default(), *cfg); diff != "" {
		t.Errorf("defaults mismatch (-want +got):\n%s", diff)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestSampleConfigMatchesDefaults(t *testing.T) {
	var cfg Config
	if err := toml.Unmarshal([]byte(SampleConfig()), &cfg); err != nil {
		t.Fatalf("parse sample config: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("sample config drifted from defaults (-want +got):\n%s", diff)
	}
}

func TestLoadTOML(t *testing.T) {
	path := writeConfig(t, "docbatch.toml", `
params_path = "in.xlsx"
output_dir = "out"
log_level = " DEBUG "

[templates.documents]
APP_ = "t/app.docx"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.ParamsPath != "in.xlsx" || cfg.OutputDir != "out" || cfg.ParamsSheet != "Datos" {
		t.Errorf("Unexpected paths: %+v", cfg)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, expected debug", cfg.LogLevel)
	}
	// A table in the file replaces the default one; an absent table keeps the default.
	if diff := cmp.Diff(map[string]string{"APP_": "t/app.docx"}, cfg.Templates.Documents); diff != "" {
		t.Errorf("documents mismatch (-want +got):\n%s", diff)
	}
	if _, ok := cfg.Templates.Spreadsheets["EPP_"]; !ok {
		t.Errorf("default spreadsheet templates lost: %v", cfg.Templates.Spreadsheets)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeConfig(t, "docbatch.yaml", `
params_sheet: Hoja
subfolders: [a, b]
templates:
  spreadsheets:
    EPP_: t/epp.xlsx
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.ParamsSheet != "Hoja" {
		t.Errorf("ParamsSheet = %q, expected Hoja", cfg.ParamsSheet)
	}
	if diff := cmp.Diff([]string{"a", "b"}, cfg.Subfolders); diff != "" {
		t.Errorf("subfolders mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(map[string]string{"EPP_": "t/epp.xlsx"}, cfg.Templates.Spreadsheets); diff != "" {
		t.Errorf("spreadsheets mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected error for missing file")
	}
	bad := writeConfig(t, "bad.toml", "params_path = [")
	if _, err := Load(bad); err == nil {
		t.Error("expected error for malformed TOML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		edit    func(c *Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"empty params", func(c *Config) { c.ParamsPath = "" }, "params_path"},
		{"empty sheet", func(c *Config) { c.ParamsSheet = "" }, "params_sheet"},
		{"empty output", func(c *Config) { c.OutputDir = "" }, "output_dir must be set"},
		{"working dir output", func(c *Config) { c.OutputDir = "./" }, "would reset"},
		{"no templates", func(c *Config) { c.Templates = Templates{} }, "at least one template"},
		{"empty template path", func(c *Config) { c.Templates.Documents["X_"] = "" }, "templates.documents"},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }, "log_level"},
		{"bad format", func(c *Config) { c.LogFormat = "xml" }, "log_format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.edit(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, expected error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestRunOptions(t *testing.T) {
	cfg := Default()
	date := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)

	opts := cfg.RunOptions(date, nil)
	if opts.ParamsPath != cfg.ParamsPath || opts.Sheet != "Datos" || opts.OutputDir != cfg.OutputDir {
		t.Errorf("Unexpected options: %+v", opts)
	}
	if opts.DateString() != "19/10/2026" {
		t.Errorf("DateString() = %q", opts.DateString())
	}
	if diff := cmp.Diff([]string{"AEPP_", "APP_", "EDLLO_", "EPP_"}, opts.Catalog.Codes()); diff != "" {
		t.Errorf("catalog mismatch (-want +got):\n%s", diff)
	}

	// Options do not share the config's slices.
	opts.Subfolders[0] = "changed"
	if cfg.Subfolders[0] == "changed" {
		t.Error("RunOptions shares the subfolder slice with the config")
	}
}
