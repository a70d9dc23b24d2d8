// Package main provides the CLI entry point for docbatch.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/ukaji3/docbatch-go/internal/config"
	"github.com/ukaji3/docbatch-go/internal/logging"
	"github.com/ukaji3/docbatch-go/internal/report"
	"github.com/ukaji3/docbatch-go/internal/runlock"
	"github.com/ukaji3/docbatch-go/pkg/docbatch"
	"github.com/ukaji3/docbatch-go/pkg/docbatch/filler"
)

type flags struct {
	configPath string
	paramsPath string
	sheet      string
	outputDir  string
	date       string
	logLevel   string
	logFormat  string
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var f flags

	rootCmd := &cobra.Command{
		Use:   "docbatch",
		Short: "Generate order folders and documents from a parameters workbook",
		Long: `docbatch reads one order per row from the parameters workbook, creates the
OC_<OC>_<NOMBRE> folder tree of every order and fills the Word or Excel
template selected by its type code into <NOMBRE_OC>.docx or .xlsx.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f)
		},
	}

	rootCmd.Flags().StringVarP(&f.configPath, "config", "c", "", "Config file (.toml, .yaml); defaults are used when empty")
	rootCmd.Flags().StringVar(&f.paramsPath, "params", "", "Parameters workbook (overrides config)")
	rootCmd.Flags().StringVar(&f.sheet, "sheet", "", "Parameters sheet name (overrides config)")
	rootCmd.Flags().StringVarP(&f.outputDir, "output", "o", "", "Output root, reset on every run (overrides config)")
	rootCmd.Flags().StringVar(&f.date, "date", "", "Run date as DD/MM/YYYY (default: today)")
	rootCmd.Flags().StringVar(&f.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.Flags().StringVar(&f.logFormat, "log-format", "", "Log format: console, json")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "sample-config",
		Short: "Print a sample configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := io.WriteString(cmd.OutOrStdout(), config.SampleConfig())
			return err
		},
	})

	return rootCmd
}

func run(cmd *cobra.Command, f flags) error {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return err
	}
	applyFlags(cfg, f)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	date, err := parseDate(f.date)
	if err != nil {
		return err
	}

	logger, err := logging.New(logging.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Writer: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	logger, _ = logging.WithRun(logger)

	lock, err := runlock.Acquire(cfg.OutputDir)
	if err != nil {
		return err
	}
	defer func() {
		if err := lock.Release(); err != nil {
			logger.Warn("failed to release run lock", "path", lock.Path(), "error", err)
		}
	}()

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "🚀 Document generation started 📜")

	result, runErr := docbatch.Run(cfg.RunOptions(date, logger))
	if err := report.Write(out, result, runErr); err != nil {
		return err
	}
	return runErr
}

func applyFlags(cfg *config.Config, f flags) {
	if f.paramsPath != "" {
		cfg.ParamsPath = f.paramsPath
	}
	if f.sheet != "" {
		cfg.ParamsSheet = f.sheet
	}
	if f.outputDir != "" {
		cfg.OutputDir = f.outputDir
	}
	if f.logLevel != "" {
		cfg.LogLevel = strings.ToLower(f.logLevel)
	}
	if f.logFormat != "" {
		cfg.LogFormat = strings.ToLower(f.logFormat)
	}
}

// parseDate parses a DD/MM/YYYY date; an empty value is today.
func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Now(), nil
	}
	date, err := time.ParseInLocation(filler.DateLayout, value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected DD/MM/YYYY): %w", value, err)
	}
	return date, nil
}
