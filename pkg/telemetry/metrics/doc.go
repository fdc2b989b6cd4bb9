// Package metrics provides Prometheus metrics for compatibility checks:
// verdict counts, evaluation durations, scanned-file counts and matrix
// load events. Long-running commands expose them over HTTP via Handler.
package metrics
