package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "licensegate",
	Short: "Licensegate - license compatibility checker",
	Long: `Licensegate checks per-file license declarations against a project's
main license using a configurable compatibility matrix.

It scans a file tree or Git repository for SPDX-License-Identifier
headers, parses each as an SPDX license expression, and evaluates it
against the main license with a tri-state verdict:
  - yes: compatible
  - no: incompatible
  - conditional: compatible under conditions, manual review required
  - unknown: not covered by the matrix, manual review required`,
	Version: Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global persistent flags (available to all subcommands)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "config.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
