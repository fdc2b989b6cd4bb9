package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
)

func writeMatrixFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "matrix.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write matrix file: %v", err)
	}
	return path
}

func TestValidateMatrixValidFile(t *testing.T) {
	matrixFlags.file = writeMatrixFile(t, `
matrix:
  MIT:
    Apache-2.0: "yes"
    GPL-3.0-only: "no"
`)
	matrixFlags.format = "text"

	if err := validateMatrix(&cobra.Command{}, nil); err != nil {
		t.Errorf("validateMatrix() with valid file returned error: %v", err)
	}
}

func TestValidateMatrixNonexistentFile(t *testing.T) {
	matrixFlags.file = filepath.Join(t.TempDir(), "missing.yaml")
	matrixFlags.format = "text"

	if err := validateMatrix(&cobra.Command{}, nil); err == nil {
		t.Error("validateMatrix() with missing file should return error")
	}
}

func TestValidateMatrixUnparseableFile(t *testing.T) {
	matrixFlags.file = writeMatrixFile(t, "{{not yaml")
	matrixFlags.format = "json"

	if err := validateMatrix(&cobra.Command{}, nil); err == nil {
		t.Error("validateMatrix() with unparseable file should return error")
	}
}

func TestShowMatrix(t *testing.T) {
	matrixFlags.file = writeMatrixFile(t, `
matrix:
  MIT:
    Apache-2.0: "yes"
`)
	matrixFlags.main = ""

	if err := showMatrix(&cobra.Command{}, nil); err != nil {
		t.Errorf("showMatrix() returned error: %v", err)
	}
}
