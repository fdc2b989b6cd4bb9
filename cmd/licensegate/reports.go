package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"compat-hq/licensegate/pkg/cli"
	"compat-hq/licensegate/pkg/report"
)

var reportsFlags struct {
	sinceDays int
	target    string
	limit     int
	format    string
}

var reportsCmd = &cobra.Command{
	Use:   "reports",
	Short: "Query saved check reports",
	Long: `Query the report store for previously saved check results.

Reports are written by "check --save" and by watch mode when report
persistence is enabled in the configuration.

Examples:
  # List the last 20 reports
  licensegate reports list

  # Reports for one target from the last week
  licensegate reports list --target ./src --since 7

  # Full JSON for a single report
  licensegate reports show 4f6c9a2e-...`,
}

var reportsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved reports",
	RunE:  listReports,
}

var reportsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a single report",
	Args:  cobra.ExactArgs(1),
	RunE:  showReport,
}

func init() {
	rootCmd.AddCommand(reportsCmd)
	reportsCmd.AddCommand(reportsListCmd)
	reportsCmd.AddCommand(reportsShowCmd)

	reportsListCmd.Flags().IntVar(&reportsFlags.sinceDays, "since", 0, "only reports from the last N days")
	reportsListCmd.Flags().StringVar(&reportsFlags.target, "target", "", "only reports for this target")
	reportsListCmd.Flags().IntVar(&reportsFlags.limit, "limit", 20, "maximum number of reports")
	reportsListCmd.Flags().StringVar(&reportsFlags.format, "format", "text", "output format: text, json")
}

func listReports(cmd *cobra.Command, args []string) error {
	cfg, _, err := initRuntime()
	if err != nil {
		return err
	}
	cmd.SilenceUsage = true

	store, err := openReportStore(cfg)
	if err != nil {
		return cli.NewCommandError("reports", err)
	}
	defer store.Close()

	query := report.Query{
		Target: reportsFlags.target,
		Limit:  reportsFlags.limit,
	}
	if reportsFlags.sinceDays > 0 {
		query.Since = time.Now().AddDate(0, 0, -reportsFlags.sinceDays)
	}

	reports, err := store.List(cmd.Context(), query)
	if err != nil {
		return cli.NewCommandError("reports", err)
	}

	if reportsFlags.format == "json" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(reports)
	}

	if len(reports) == 0 {
		fmt.Println("No reports found")
		return nil
	}
	for _, r := range reports {
		fmt.Printf("%s  %s  %-30s  %s  %d/%d compatible\n",
			r.ID,
			r.CreatedAt.Format(time.RFC3339),
			r.Target,
			r.MainLicense,
			r.CompatibleCount,
			r.CompatibleCount+r.IncompatibleCount,
		)
	}
	return nil
}

func showReport(cmd *cobra.Command, args []string) error {
	cfg, _, err := initRuntime()
	if err != nil {
		return err
	}
	cmd.SilenceUsage = true

	store, err := openReportStore(cfg)
	if err != nil {
		return cli.NewCommandError("reports", err)
	}
	defer store.Close()

	r, err := store.Get(cmd.Context(), args[0])
	if err != nil {
		if errors.Is(err, report.ErrNotFound) {
			return fmt.Errorf("report %s not found", args[0])
		}
		return cli.NewCommandError("reports", err)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(r)
}
