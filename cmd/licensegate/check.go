package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"compat-hq/licensegate/pkg/acquire"
	"compat-hq/licensegate/pkg/cli"
	"compat-hq/licensegate/pkg/engine"
	"compat-hq/licensegate/pkg/report"
	"compat-hq/licensegate/pkg/scan"
)

var checkFlags struct {
	repo        string
	ref         string
	mainLicense string
	format      string
	save        bool
}

var checkCmd = &cobra.Command{
	Use:   "check [path]",
	Short: "Check file licenses against the main license",
	Long: `Check per-file license declarations against the main license.

The check command scans a file tree (or a freshly cloned repository when
--repo is given) for SPDX-License-Identifier headers and evaluates each
declaration against the main license using the configured compatibility
matrix.

The command exits non-zero when any file evaluates incompatible, which
makes it usable as a CI gate.

Examples:
  # Check the current directory against MIT
  licensegate check --main-license MIT

  # Check a subtree
  licensegate check ./src --main-license Apache-2.0

  # Check a remote repository at a tag
  licensegate check --repo https://github.com/example/project --ref v1.2.0 --main-license MIT

  # JSON output for CI/CD, persisting the report
  licensegate check --main-license MIT --format json --save`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVarP(&checkFlags.repo, "repo", "r", "", "Git repository URL to clone and check")
	checkCmd.Flags().StringVar(&checkFlags.ref, "ref", "", "branch or tag to check out (with --repo)")
	checkCmd.Flags().StringVarP(&checkFlags.mainLicense, "main-license", "m", "", "main license of the project")
	checkCmd.Flags().StringVarP(&checkFlags.format, "format", "f", "text", "output format: text, json, csv")
	checkCmd.Flags().BoolVar(&checkFlags.save, "save", false, "persist the result to the report store")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, logger, err := initRuntime()
	if err != nil {
		return err
	}
	cmd.SilenceUsage = true

	ctx := cli.SetupSignalHandler()

	root := "."
	if len(args) > 0 {
		root = args[0]
	}
	target := root

	if checkFlags.repo != "" {
		opts := acquire.DefaultCloneOptions()
		opts.Ref = checkFlags.ref
		dir, cleanup, err := acquire.Clone(ctx, checkFlags.repo, opts)
		if err != nil {
			return cli.NewCommandError("check", err)
		}
		defer cleanup()
		root = dir
		target = checkFlags.repo
	}

	scanner := scan.NewScanner(scanConfigFrom(cfg), logger)
	files, err := scanner.Scan(ctx, root)
	if err != nil {
		return cli.NewCommandError("check", err)
	}
	logger.Info("scan complete", "target", target, "files", len(files))

	result := engine.CheckCompatibility(checkFlags.mainLicense, files)

	if checkFlags.save || cfg.Reports.Enabled {
		store, err := openReportStore(cfg)
		if err != nil {
			return cli.NewCommandError("check", err)
		}
		defer store.Close()

		rep := report.New(target, result)
		if err := store.Save(ctx, rep); err != nil {
			return cli.NewCommandError("check", err)
		}
		logger.Info("report saved", "report_id", rep.ID)
	}

	formatter := cli.NewFormatter(cli.OutputFormat(checkFlags.format))
	if err := formatter.FormatTo(os.Stdout, &result); err != nil {
		return cli.NewCommandError("check", err)
	}

	if n := len(result.Issues) - result.CompatibleCount(); n > 0 {
		return fmt.Errorf("found %d file(s) with compatibility issues", n)
	}
	return nil
}
