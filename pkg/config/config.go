package config

import (
	"fmt"
	"strings"
)

// Config is the top-level licensegate configuration.
type Config struct {
	Matrix  MatrixConfig  `yaml:"matrix"`
	Scan    ScanConfig    `yaml:"scan"`
	Logging LoggingConfig `yaml:"logging"`
	Reports ReportsConfig `yaml:"reports"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// MatrixConfig configures the compatibility matrix source.
type MatrixConfig struct {
	// Path is the matrix source file (YAML or JSON).
	Path string `yaml:"path"`

	// Watch enables hot-reloading the matrix when the source changes.
	// Only long-running commands honor it.
	Watch bool `yaml:"watch"`
}

// ScanConfig configures the file-tree scanner.
type ScanConfig struct {
	// MaxFileSize skips files larger than this many bytes.
	MaxFileSize int64 `yaml:"max_file_size"`

	// DisableGitignore turns off .gitignore handling at the scan root.
	// Gitignore patterns are honored by default.
	DisableGitignore bool `yaml:"disable_gitignore"`

	// IncludeUndeclared reports files without a license header as
	// unknown-verdict issues.
	IncludeUndeclared bool `yaml:"include_undeclared"`

	// Extensions restricts scanning to the given extensions. Empty
	// means all files.
	Extensions []string `yaml:"extensions"`
}

// LoggingConfig configures structured logging.
type LoggingConfig struct {
	// Level is one of "debug", "info", "warn", "error".
	Level string `yaml:"level"`

	// Format is one of "json", "text".
	Format string `yaml:"format"`
}

// ReportsConfig configures report persistence.
type ReportsConfig struct {
	// Enabled turns report persistence on.
	Enabled bool `yaml:"enabled"`

	// Path is the SQLite database file.
	Path string `yaml:"path"`

	// RetentionDays is how many days of report history to keep.
	RetentionDays int `yaml:"retention_days"`

	// PruneSchedule is a cron expression for scheduled pruning.
	PruneSchedule string `yaml:"prune_schedule"`
}

// MetricsConfig configures the Prometheus metrics endpoint.
type MetricsConfig struct {
	// Enabled turns the metrics endpoint on (watch command only).
	Enabled bool `yaml:"enabled"`

	// ListenAddress is the metrics HTTP listen address.
	ListenAddress string `yaml:"listen_address"`

	// Namespace is the metric namespace prefix.
	Namespace string `yaml:"namespace"`
}

// ApplyDefaults fills unset fields with default values.
func ApplyDefaults(cfg *Config) {
	if cfg.Matrix.Path == "" {
		cfg.Matrix.Path = "matrix.yaml"
	}
	if cfg.Scan.MaxFileSize == 0 {
		cfg.Scan.MaxFileSize = 4 * 1024 * 1024
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}
	if cfg.Reports.Path == "" {
		cfg.Reports.Path = "data/reports.db"
	}
	if cfg.Reports.RetentionDays == 0 {
		cfg.Reports.RetentionDays = 90
	}
	if cfg.Reports.PruneSchedule == "" {
		cfg.Reports.PruneSchedule = "0 3 * * *"
	}
	if cfg.Metrics.ListenAddress == "" {
		cfg.Metrics.ListenAddress = ":9464"
	}
	if cfg.Metrics.Namespace == "" {
		cfg.Metrics.Namespace = "licensegate"
	}
}

// Validate checks the configuration for inconsistencies.
func Validate(cfg *Config) error {
	switch strings.ToLower(cfg.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q is not one of debug, info, warn, error", cfg.Logging.Level)
	}

	switch strings.ToLower(cfg.Logging.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("logging.format %q is not one of json, text", cfg.Logging.Format)
	}

	if cfg.Scan.MaxFileSize < 0 {
		return fmt.Errorf("scan.max_file_size must not be negative")
	}
	if cfg.Reports.RetentionDays < 0 {
		return fmt.Errorf("reports.retention_days must not be negative")
	}
	for _, ext := range cfg.Scan.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("scan.extensions entry %q must start with a dot", ext)
		}
	}
	return nil
}
