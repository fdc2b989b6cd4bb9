package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"compat-hq/licensegate/pkg/engine"
)

// OutputFormat represents the output format for command results.
type OutputFormat string

const (
	// FormatText is plain text output (default).
	FormatText OutputFormat = "text"
	// FormatJSON is JSON output.
	FormatJSON OutputFormat = "json"
	// FormatCSV is CSV output (one row per file issue).
	FormatCSV OutputFormat = "csv"
)

// Formatter formats command output.
type Formatter interface {
	FormatTo(w io.Writer, data interface{}) error
}

// TextFormatter formats output as human-readable text.
type TextFormatter struct{}

// FormatTo writes data to writer in text format. Check results get a
// per-file rendering; anything else falls back to fmt.
func (f *TextFormatter) FormatTo(w io.Writer, data interface{}) error {
	result, ok := data.(*engine.Result)
	if !ok {
		_, err := fmt.Fprintf(w, "%v\n", data)
		return err
	}

	fmt.Fprintf(w, "Main license: %s\n", result.MainLicense)
	fmt.Fprintf(w, "Files checked: %d, compatible: %d\n",
		len(result.Issues), result.CompatibleCount())

	for _, issue := range result.Issues {
		fmt.Fprintf(w, "\n%s\n", issue.FilePath)
		fmt.Fprintf(w, "  License: %s\n", issue.DetectedLicense)
		fmt.Fprintf(w, "  Compatible: %t\n", issue.Compatible)
		for _, line := range strings.Split(issue.Reason, "\n") {
			fmt.Fprintf(w, "    %s\n", line)
		}
	}
	return nil
}

// JSONFormatter formats output as indented JSON.
type JSONFormatter struct {
	Indent bool
}

// FormatTo writes data to writer in JSON format.
func (f *JSONFormatter) FormatTo(w io.Writer, data interface{}) error {
	encoder := json.NewEncoder(w)
	if f.Indent {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(data)
}

// CSVFormatter formats check results as CSV, one row per file issue.
// Multi-line reasons are collapsed onto a single line.
type CSVFormatter struct{}

// FormatTo writes data to writer in CSV format. Only check results are
// supported.
func (f *CSVFormatter) FormatTo(w io.Writer, data interface{}) error {
	result, ok := data.(*engine.Result)
	if !ok {
		return fmt.Errorf("csv output supports check results, got %T", data)
	}

	csvWriter := csv.NewWriter(w)
	defer csvWriter.Flush()

	if err := csvWriter.Write([]string{"file_path", "detected_license", "compatible", "reason"}); err != nil {
		return err
	}
	for _, issue := range result.Issues {
		row := []string{
			issue.FilePath,
			issue.DetectedLicense,
			strconv.FormatBool(issue.Compatible),
			strings.ReplaceAll(issue.Reason, "\n", "; "),
		}
		if err := csvWriter.Write(row); err != nil {
			return err
		}
	}
	return csvWriter.Error()
}

// NewFormatter creates a new formatter for the specified format.
func NewFormatter(format OutputFormat) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{Indent: true}
	case FormatCSV:
		return &CSVFormatter{}
	default:
		return &TextFormatter{}
	}
}
