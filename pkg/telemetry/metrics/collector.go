package metrics

import (
	"time"

	"compat-hq/licensegate/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector registers and records all Prometheus metrics for the
// compatibility engine. A single collector is shared by the CLI
// commands that run long enough to be scraped.
//
// Metrics:
//   - <ns>_checks_total: Completed compatibility checks by verdict
//   - <ns>_check_duration_seconds: Wall-clock duration of a full check
//   - <ns>_files_scanned_total: Files inspected for license headers
//   - <ns>_issues_total: Per-file issues by verdict
//   - <ns>_matrix_loads_total: Matrix (re)loads by status
type Collector struct {
	config   *config.MetricsConfig
	registry *prometheus.Registry

	checksTotal   *prometheus.CounterVec
	checkDuration prometheus.Histogram
	filesScanned  prometheus.Counter
	issuesTotal   *prometheus.CounterVec
	matrixLoads   *prometheus.CounterVec
}

// NewCollector creates a collector and registers its metrics with the
// provided registry. If registry is nil a fresh one is created, which
// keeps tests isolated from the default global registry.
func NewCollector(cfg *config.MetricsConfig, registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	if cfg.Namespace == "" {
		cfg.Namespace = "licensegate"
	}

	c := &Collector{
		config:   cfg,
		registry: registry,

		checksTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Name:      "checks_total",
				Help:      "Total number of completed compatibility checks",
			},
			[]string{"verdict"},
		),

		checkDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Name:      "check_duration_seconds",
				Help:      "Duration of a full compatibility check in seconds",
				// Checks are dominated by the filesystem walk (1ms - 30s)
				Buckets: prometheus.ExponentialBuckets(0.001, 2, 15),
			},
		),

		filesScanned: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Name:      "files_scanned_total",
				Help:      "Total number of files inspected for license headers",
			},
		),

		issuesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Name:      "issues_total",
				Help:      "Total number of per-file issues by verdict",
			},
			[]string{"verdict"},
		),

		matrixLoads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Name:      "matrix_loads_total",
				Help:      "Total number of compatibility matrix loads",
			},
			[]string{"status"},
		),
	}

	registry.MustRegister(
		c.checksTotal,
		c.checkDuration,
		c.filesScanned,
		c.issuesTotal,
		c.matrixLoads,
	)

	return c
}

// RecordCheck records a completed compatibility check.
//
// verdict is the overall outcome of the check ("clean" when every file
// evaluated compatible, "issues" otherwise). fileCount is the number of
// files the scanner inspected, which may exceed the number of issues.
func (c *Collector) RecordCheck(verdict string, fileCount int, duration time.Duration) {
	if !c.config.Enabled {
		return
	}

	c.checksTotal.WithLabelValues(verdict).Inc()
	c.checkDuration.Observe(duration.Seconds())
	c.filesScanned.Add(float64(fileCount))
}

// RecordIssue records a single per-file issue by its evaluation verdict
// ("compatible" or "flagged").
func (c *Collector) RecordIssue(verdict string) {
	if !c.config.Enabled {
		return
	}

	c.issuesTotal.WithLabelValues(verdict).Inc()
}

// RecordMatrixLoad records a matrix load attempt. status is "ok" for a
// successful parse and "error" when the source could not be read.
func (c *Collector) RecordMatrixLoad(status string) {
	if !c.config.Enabled {
		return
	}

	c.matrixLoads.WithLabelValues(status).Inc()
}

// Registry returns the Prometheus registry backing this collector.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}
