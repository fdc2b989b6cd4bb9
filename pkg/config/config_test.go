package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load() with missing file failed: %v", err)
	}
	if cfg.Matrix.Path != "matrix.yaml" {
		t.Errorf("Matrix.Path = %q, want matrix.yaml", cfg.Matrix.Path)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "text" {
		t.Errorf("Logging = %+v", cfg.Logging)
	}
	if cfg.Reports.RetentionDays != 90 {
		t.Errorf("Reports.RetentionDays = %d, want 90", cfg.Reports.RetentionDays)
	}
	if cfg.Metrics.Namespace != "licensegate" {
		t.Errorf("Metrics.Namespace = %q", cfg.Metrics.Namespace)
	}
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
matrix:
  path: /etc/licensegate/matrix.json
  watch: true
logging:
  level: debug
  format: json
scan:
  extensions: [".go", ".py"]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Matrix.Path != "/etc/licensegate/matrix.json" {
		t.Errorf("Matrix.Path = %q", cfg.Matrix.Path)
	}
	if !cfg.Matrix.Watch {
		t.Error("Matrix.Watch = false, want true")
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Errorf("Logging = %+v", cfg.Logging)
	}
	if len(cfg.Scan.Extensions) != 2 {
		t.Errorf("Scan.Extensions = %v", cfg.Scan.Extensions)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("LICENSEGATE_MATRIX_PATH", "/override/matrix.yaml")
	t.Setenv("LICENSEGATE_LOGGING_LEVEL", "warn")
	t.Setenv("LICENSEGATE_REPORTS_ENABLED", "true")
	t.Setenv("LICENSEGATE_REPORTS_RETENTION_DAYS", "30")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Matrix.Path != "/override/matrix.yaml" {
		t.Errorf("Matrix.Path = %q", cfg.Matrix.Path)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q", cfg.Logging.Level)
	}
	if !cfg.Reports.Enabled {
		t.Error("Reports.Enabled = false, want true")
	}
	if cfg.Reports.RetentionDays != 30 {
		t.Errorf("Reports.RetentionDays = %d, want 30", cfg.Reports.RetentionDays)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("matrix: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() with invalid YAML should fail")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid defaults", func(c *Config) {}, false},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }, true},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }, true},
		{"negative file size", func(c *Config) { c.Scan.MaxFileSize = -1 }, true},
		{"negative retention", func(c *Config) { c.Reports.RetentionDays = -1 }, true},
		{"extension without dot", func(c *Config) { c.Scan.Extensions = []string{"go"} }, true},
		{"extension with dot", func(c *Config) { c.Scan.Extensions = []string{".go"} }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg Config
			ApplyDefaults(&cfg)
			tt.mutate(&cfg)
			err := Validate(&cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
