package engine

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"compat-hq/licensegate/pkg/matrix"
	"compat-hq/licensegate/pkg/spdx"
)

const (
	reasonNoMainLicense = "Main license not detected or invalid"
	reasonNoMatrix      = "Professional matrix not available or main license not present in the matrix"
)

// placeholderMains are normalized main-license values that mean "no main
// license was detected"; a check against them short-circuits.
var placeholderMains = map[string]bool{
	"UNKNOWN":     true,
	"NOASSERTION": true,
	"NONE":        true,
}

// Checker orchestrates compatibility checks: it normalizes the main
// license, short-circuits degenerate inputs, and parses and evaluates
// one expression per file.
type Checker struct {
	matrix matrix.Matrix
	eval   *Evaluator
	logger *slog.Logger
}

// NewChecker creates a checker over an explicit matrix. Most callers use
// the package-level CheckCompatibility, which runs against the
// process-wide matrix.
func NewChecker(m matrix.Matrix, logger *slog.Logger) *Checker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Checker{
		matrix: m,
		eval:   NewEvaluator(m, logger),
		logger: logger.With("component", "engine.checker"),
	}
}

// CheckCompatibility checks every file expression against the main
// license using the process-wide compatibility matrix.
func CheckCompatibility(mainLicense string, fileLicenses map[string]string) Result {
	return NewChecker(matrix.Default(), nil).Check(mainLicense, fileLicenses)
}

// Check evaluates every (file, expression) pair against the main
// license. Every input file receives exactly one issue; issues are
// ordered by file path so output is deterministic regardless of map
// iteration order. Check never fails: degenerate inputs degrade to
// clearly labeled incompatible issues.
func (c *Checker) Check(mainLicense string, fileLicenses map[string]string) Result {
	normalizedMain := spdx.Normalize(mainLicense)

	if normalizedMain == "" || placeholderMains[normalizedMain] {
		reported := mainLicense
		if reported == "" {
			reported = "UNKNOWN"
		}
		c.logger.Debug("main license missing or placeholder", "raw", mainLicense)
		return Result{
			MainLicense: reported,
			Issues:      c.uniformIssues(fileLicenses, reasonNoMainLicense),
		}
	}

	if c.matrix.Empty() || !c.matrix.HasMain(normalizedMain) {
		c.logger.Debug("matrix unavailable for main license", "main", normalizedMain)
		return Result{
			MainLicense: normalizedMain,
			Issues:      c.uniformIssues(fileLicenses, reasonNoMatrix),
		}
	}

	issues := make([]Issue, 0, len(fileLicenses))
	for _, file := range sortedKeys(fileLicenses) {
		expr := strings.TrimSpace(fileLicenses[file])
		issues = append(issues, c.checkFile(normalizedMain, file, expr))
	}

	return Result{MainLicense: normalizedMain, Issues: issues}
}

// checkFile parses and evaluates one file expression and maps the
// verdict to an issue.
func (c *Checker) checkFile(main, file, expr string) Issue {
	status, trace := c.eval.Evaluate(main, spdx.Parse(expr))
	reason := strings.Join(trace, "\n")

	issue := Issue{
		FilePath:        file,
		DetectedLicense: expr,
		Compatible:      status == matrix.Yes,
		Reason:          reason,
	}

	if status == matrix.Conditional || status == matrix.Unknown {
		issue.Reason = fmt.Sprintf(
			"%s\nOutcome: %s. Manual compliance verification is required.",
			reason, status,
		)
	}
	return issue
}

// uniformIssues produces one identical issue per input file, used by the
// degenerate short circuits.
func (c *Checker) uniformIssues(fileLicenses map[string]string, reason string) []Issue {
	issues := make([]Issue, 0, len(fileLicenses))
	for _, file := range sortedKeys(fileLicenses) {
		issues = append(issues, Issue{
			FilePath:        file,
			DetectedLicense: strings.TrimSpace(fileLicenses[file]),
			Compatible:      false,
			Reason:          reason,
		})
	}
	return issues
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
