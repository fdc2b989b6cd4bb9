package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"compat-hq/licensegate/pkg/engine"
)

func sampleResult() *engine.Result {
	return &engine.Result{
		MainLicense: "MIT",
		Issues: []engine.Issue{
			{
				FilePath:        "lib/parser.c",
				DetectedLicense: "Apache-2.0",
				Compatible:      true,
				Reason:          "License Apache-2.0 against MIT: yes",
			},
			{
				FilePath:        "lib/vendor.c",
				DetectedLicense: "GPL-3.0-only",
				Compatible:      false,
				Reason:          "License GPL-3.0-only against MIT: no",
			},
		},
	}
}

func TestNewFormatter(t *testing.T) {
	tests := []struct {
		format OutputFormat
		want   string
	}{
		{FormatText, "*cli.TextFormatter"},
		{FormatJSON, "*cli.JSONFormatter"},
		{FormatCSV, "*cli.CSVFormatter"},
		{OutputFormat("bogus"), "*cli.TextFormatter"},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			f := NewFormatter(tt.format)
			switch tt.want {
			case "*cli.TextFormatter":
				if _, ok := f.(*TextFormatter); !ok {
					t.Errorf("Expected TextFormatter, got %T", f)
				}
			case "*cli.JSONFormatter":
				if _, ok := f.(*JSONFormatter); !ok {
					t.Errorf("Expected JSONFormatter, got %T", f)
				}
			case "*cli.CSVFormatter":
				if _, ok := f.(*CSVFormatter); !ok {
					t.Errorf("Expected CSVFormatter, got %T", f)
				}
			}
		})
	}
}

func TestTextFormatter_Result(t *testing.T) {
	var buf bytes.Buffer
	f := &TextFormatter{}

	if err := f.FormatTo(&buf, sampleResult()); err != nil {
		t.Fatalf("FormatTo: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"Main license: MIT",
		"Files checked: 2, compatible: 1",
		"lib/vendor.c",
		"Compatible: false",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestTextFormatter_Fallback(t *testing.T) {
	var buf bytes.Buffer
	f := &TextFormatter{}

	if err := f.FormatTo(&buf, "plain string"); err != nil {
		t.Fatalf("FormatTo: %v", err)
	}
	if buf.String() != "plain string\n" {
		t.Errorf("Unexpected fallback output: %q", buf.String())
	}
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := &JSONFormatter{Indent: true}

	if err := f.FormatTo(&buf, sampleResult()); err != nil {
		t.Fatalf("FormatTo: %v", err)
	}

	var decoded engine.Result
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if decoded.MainLicense != "MIT" {
		t.Errorf("Expected main_license MIT, got %q", decoded.MainLicense)
	}
	if len(decoded.Issues) != 2 {
		t.Errorf("Expected 2 issues, got %d", len(decoded.Issues))
	}
}

func TestCSVFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := &CSVFormatter{}

	if err := f.FormatTo(&buf, sampleResult()); err != nil {
		t.Fatalf("FormatTo: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected header plus 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "file_path,detected_license,compatible,reason" {
		t.Errorf("Unexpected header: %q", lines[0])
	}
	if !strings.Contains(lines[2], "false") {
		t.Errorf("Expected incompatible row, got %q", lines[2])
	}
}

func TestCSVFormatter_MultilineReason(t *testing.T) {
	result := &engine.Result{
		MainLicense: "MIT",
		Issues: []engine.Issue{
			{
				FilePath:        "a.c",
				DetectedLicense: "X",
				Compatible:      false,
				Reason:          "line one\nline two",
			},
		},
	}

	var buf bytes.Buffer
	if err := (&CSVFormatter{}).FormatTo(&buf, result); err != nil {
		t.Fatalf("FormatTo: %v", err)
	}
	if strings.Count(strings.TrimSpace(buf.String()), "\n") != 1 {
		t.Errorf("Expected reason collapsed onto one row, got:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "line one; line two") {
		t.Errorf("Expected collapsed reason, got:\n%s", buf.String())
	}
}

func TestCSVFormatter_UnsupportedData(t *testing.T) {
	var buf bytes.Buffer
	if err := (&CSVFormatter{}).FormatTo(&buf, 42); err == nil {
		t.Error("Expected error for non-result data")
	}
}
