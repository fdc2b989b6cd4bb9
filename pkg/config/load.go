package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// envPrefix is the prefix for environment variable overrides.
const envPrefix = "LICENSEGATE"

// Load reads configuration from a YAML file, applies defaults and
// environment overrides, and validates the result. A missing file is
// not an error: defaults plus environment are used instead, so the CLI
// works out of the box.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// Defaults-only operation.
	case err != nil:
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
		}
	}

	ApplyDefaults(&cfg)
	applyEnvOverrides(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

// applyEnvOverrides applies LICENSEGATE_* environment variables on top
// of the loaded configuration. Environment always wins over the file.
func applyEnvOverrides(cfg *Config) {
	if v, ok := lookupEnv("MATRIX_PATH"); ok {
		cfg.Matrix.Path = v
	}
	if v, ok := lookupBool("MATRIX_WATCH"); ok {
		cfg.Matrix.Watch = v
	}
	if v, ok := lookupInt64("SCAN_MAX_FILE_SIZE"); ok {
		cfg.Scan.MaxFileSize = v
	}
	if v, ok := lookupBool("SCAN_DISABLE_GITIGNORE"); ok {
		cfg.Scan.DisableGitignore = v
	}
	if v, ok := lookupBool("SCAN_INCLUDE_UNDECLARED"); ok {
		cfg.Scan.IncludeUndeclared = v
	}
	if v, ok := lookupEnv("LOGGING_LEVEL"); ok {
		cfg.Logging.Level = v
	}
	if v, ok := lookupEnv("LOGGING_FORMAT"); ok {
		cfg.Logging.Format = v
	}
	if v, ok := lookupBool("REPORTS_ENABLED"); ok {
		cfg.Reports.Enabled = v
	}
	if v, ok := lookupEnv("REPORTS_PATH"); ok {
		cfg.Reports.Path = v
	}
	if v, ok := lookupInt("REPORTS_RETENTION_DAYS"); ok {
		cfg.Reports.RetentionDays = v
	}
	if v, ok := lookupEnv("REPORTS_PRUNE_SCHEDULE"); ok {
		cfg.Reports.PruneSchedule = v
	}
	if v, ok := lookupBool("METRICS_ENABLED"); ok {
		cfg.Metrics.Enabled = v
	}
	if v, ok := lookupEnv("METRICS_LISTEN_ADDRESS"); ok {
		cfg.Metrics.ListenAddress = v
	}
}

func lookupEnv(suffix string) (string, bool) {
	return os.LookupEnv(envPrefix + "_" + suffix)
}

func lookupBool(suffix string) (bool, bool) {
	v, ok := lookupEnv(suffix)
	if !ok {
		return false, false
	}
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true, true
	case "0", "false", "no", "off":
		return false, true
	default:
		return false, false
	}
}

func lookupInt(suffix string) (int, bool) {
	v, ok := lookupEnv(suffix)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, false
	}
	return n, true
}

func lookupInt64(suffix string) (int64, bool) {
	v, ok := lookupEnv(suffix)
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
