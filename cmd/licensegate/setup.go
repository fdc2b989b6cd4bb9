package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"compat-hq/licensegate/pkg/cli"
	"compat-hq/licensegate/pkg/config"
	"compat-hq/licensegate/pkg/matrix"
	"compat-hq/licensegate/pkg/report"
	"compat-hq/licensegate/pkg/report/storage"
	"compat-hq/licensegate/pkg/scan"
	"compat-hq/licensegate/pkg/telemetry/logging"
)

// initRuntime loads configuration, installs the default logger and
// points the matrix cache at the configured source. Every subcommand
// that checks licenses starts here.
func initRuntime() (*config.Config, *slog.Logger, error) {
	if err := config.Initialize(cfgFile); err != nil {
		return nil, nil, cli.NewConfigError("", fmt.Sprintf("failed to load config: %v", err))
	}
	cfg := config.Get()

	level := cfg.Logging.Level
	if verbose {
		level = "debug"
	}
	logger, err := logging.Setup(logging.Config{
		Level:  level,
		Format: cfg.Logging.Format,
	})
	if err != nil {
		return nil, nil, cli.NewConfigError("logging", err.Error())
	}

	matrix.SetSource(cfg.Matrix.Path)
	return cfg, logger, nil
}

// scanConfigFrom maps the scan section of the config onto the scanner.
func scanConfigFrom(cfg *config.Config) scan.Config {
	sc := scan.DefaultConfig()
	if cfg.Scan.MaxFileSize > 0 {
		sc.MaxFileSize = cfg.Scan.MaxFileSize
	}
	sc.UseGitignore = !cfg.Scan.DisableGitignore
	sc.IncludeUndeclared = cfg.Scan.IncludeUndeclared
	sc.Extensions = cfg.Scan.Extensions
	return sc
}

// openReportStore opens the configured SQLite report store, creating
// the parent directory if needed.
func openReportStore(cfg *config.Config) (report.Store, error) {
	if dir := filepath.Dir(cfg.Reports.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create report directory: %w", err)
		}
	}
	sqliteConfig := storage.DefaultSQLiteConfig()
	sqliteConfig.Path = cfg.Reports.Path
	return storage.NewSQLiteStore(sqliteConfig)
}
