package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"compat-hq/licensegate/pkg/engine"
)

// Report is one persisted compatibility-check run.
type Report struct {
	// ID uniquely identifies the report.
	ID string `json:"id"`

	// CreatedAt is when the check ran.
	CreatedAt time.Time `json:"created_at"`

	// Target describes what was checked (a local path or repository URL).
	Target string `json:"target"`

	// MainLicense is the main license the check ran against.
	MainLicense string `json:"main_license"`

	// Issues holds the per-file results.
	Issues []engine.Issue `json:"issues"`

	// CompatibleCount and IncompatibleCount are denormalized for cheap
	// listing queries.
	CompatibleCount   int `json:"compatible_count"`
	IncompatibleCount int `json:"incompatible_count"`
}

// New builds a Report from an engine result.
func New(target string, result engine.Result) *Report {
	compatible := result.CompatibleCount()
	return &Report{
		ID:                uuid.NewString(),
		CreatedAt:         time.Now().UTC(),
		Target:            target,
		MainLicense:       result.MainLicense,
		Issues:            result.Issues,
		CompatibleCount:   compatible,
		IncompatibleCount: len(result.Issues) - compatible,
	}
}

// Query filters report listings.
type Query struct {
	// Since restricts results to reports created at or after this time.
	Since time.Time

	// Target restricts results to an exact target string. Empty matches
	// all targets.
	Target string

	// Limit caps the number of returned reports. Zero means no limit.
	Limit int
}

// Store persists and retrieves reports. Implementations must be safe
// for concurrent use.
type Store interface {
	// Save persists a report.
	Save(ctx context.Context, r *Report) error

	// Get retrieves a report by ID.
	Get(ctx context.Context, id string) (*Report, error)

	// List returns reports matching the query, newest first.
	List(ctx context.Context, q Query) ([]*Report, error)

	// DeleteOlderThan removes reports created before the cutoff and
	// returns how many were removed.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)

	// Count returns the total number of stored reports.
	Count(ctx context.Context) (int64, error)

	// Close releases backend resources.
	Close() error
}

// ErrNotFound is returned by Get when no report has the given ID.
var ErrNotFound = fmt.Errorf("report not found")

// StorageError describes a failed storage operation.
type StorageError struct {
	Backend   string
	Operation string
	Cause     error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("report storage error [backend=%s, operation=%s]: %v", e.Backend, e.Operation, e.Cause)
}

func (e *StorageError) Unwrap() error { return e.Cause }

// NewStorageError creates a StorageError.
func NewStorageError(backend, operation string, cause error) *StorageError {
	return &StorageError{Backend: backend, Operation: operation, Cause: cause}
}
