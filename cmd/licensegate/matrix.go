package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"compat-hq/licensegate/pkg/matrix"
)

var matrixFlags struct {
	file   string
	format string
	main   string
}

var matrixCmd = &cobra.Command{
	Use:   "matrix",
	Short: "Inspect compatibility matrix sources",
	Long: `Validate and inspect compatibility matrix source files.

Matrix sources are YAML or JSON files in one of three shapes: a nested
"matrix" mapping, a top-level license list, or a license list under a
"licenses" key. Rows the loader cannot interpret are skipped, so
validation reports what actually loaded.

Subcommands:
  validate - Parse a matrix source and report what loaded
  show     - Print the loaded matrix entries

Examples:
  # Validate the configured matrix
  licensegate matrix validate

  # Validate a specific file with JSON output
  licensegate matrix validate --file matrix.yaml --format json

  # Show entries for one main license
  licensegate matrix show --main MIT`,
}

var matrixValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a matrix source file",
	RunE:  validateMatrix,
}

var matrixShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print loaded matrix entries",
	RunE:  showMatrix,
}

func init() {
	rootCmd.AddCommand(matrixCmd)
	matrixCmd.AddCommand(matrixValidateCmd)
	matrixCmd.AddCommand(matrixShowCmd)

	matrixCmd.PersistentFlags().StringVarP(&matrixFlags.file, "file", "f", "", "matrix source file (default: configured path)")
	matrixValidateCmd.Flags().StringVar(&matrixFlags.format, "format", "text", "output format: text, json")
	matrixShowCmd.Flags().StringVar(&matrixFlags.main, "main", "", "restrict output to one main license")
}

// MatrixReport summarizes what a matrix source loaded into.
type MatrixReport struct {
	File    string `json:"file"`
	Valid   bool   `json:"valid"`
	Mains   int    `json:"mains"`
	Entries int    `json:"entries"`
	Error   string `json:"error,omitempty"`
}

func matrixSource() (string, error) {
	if matrixFlags.file != "" {
		return matrixFlags.file, nil
	}
	cfg, _, err := initRuntime()
	if err != nil {
		return "", err
	}
	return cfg.Matrix.Path, nil
}

func validateMatrix(cmd *cobra.Command, args []string) error {
	path, err := matrixSource()
	if err != nil {
		return err
	}
	cmd.SilenceUsage = true

	result := MatrixReport{File: path, Valid: true}
	m, err := matrix.LoadFile(path)
	if err != nil {
		result.Valid = false
		result.Error = err.Error()
	}
	result.Mains = len(m)
	for _, row := range m {
		result.Entries += len(row)
	}

	if matrixFlags.format == "json" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(result); err != nil {
			return err
		}
	} else {
		if result.Valid {
			fmt.Printf("✓ %s: %d main license(s), %d entries\n", path, result.Mains, result.Entries)
		} else {
			fmt.Printf("✗ %s: %s\n", path, result.Error)
		}
		if result.Valid && result.Mains == 0 {
			fmt.Println("  warning: source parsed but no usable rows were found")
		}
	}

	if !result.Valid {
		return fmt.Errorf("matrix validation failed")
	}
	return nil
}

func showMatrix(cmd *cobra.Command, args []string) error {
	path, err := matrixSource()
	if err != nil {
		return err
	}
	cmd.SilenceUsage = true

	m, err := matrix.LoadFile(path)
	if err != nil {
		return err
	}

	mains := make([]string, 0, len(m))
	for main := range m {
		mains = append(mains, main)
	}
	sort.Strings(mains)

	for _, main := range mains {
		if matrixFlags.main != "" && main != matrixFlags.main {
			continue
		}
		fmt.Printf("%s:\n", main)

		row := m[main]
		deps := make([]string, 0, len(row))
		for dep := range row {
			deps = append(deps, dep)
		}
		sort.Strings(deps)
		for _, dep := range deps {
			fmt.Printf("  %-30s %s\n", dep, row[dep])
		}
	}
	return nil
}
