package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"compat-hq/licensegate/pkg/cli"
	"compat-hq/licensegate/pkg/engine"
	"compat-hq/licensegate/pkg/matrix"
	"compat-hq/licensegate/pkg/report"
	"compat-hq/licensegate/pkg/report/retention"
	"compat-hq/licensegate/pkg/scan"
	"compat-hq/licensegate/pkg/telemetry/metrics"
)

var watchFlags struct {
	mainLicense string
}

var watchCmd = &cobra.Command{
	Use:   "watch [path]",
	Short: "Continuously re-check when the matrix changes",
	Long: `Watch the compatibility matrix source and re-check a file tree
whenever it changes.

The watch command runs until interrupted. It performs an initial check,
then re-runs it each time the matrix source file is modified. When
metrics are enabled it serves a Prometheus endpoint, and when report
persistence is enabled each check is saved and old reports are pruned on
the configured schedule.

Examples:
  # Watch the current directory
  licensegate watch --main-license MIT

  # Watch a subtree with metrics enabled in config.yaml
  licensegate watch ./src --main-license Apache-2.0`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVarP(&watchFlags.mainLicense, "main-license", "m", "", "main license of the project")
}

func runWatch(cmd *cobra.Command, args []string) error {
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

	collector := metrics.NewCollector(&cfg.Metrics, nil)
	if cfg.Metrics.Enabled {
		mux := http.NewServeMux()
		mux.Handle("/metrics", collector.Handler())
		srv := &http.Server{Addr: cfg.Metrics.ListenAddress, Handler: mux}

		go func() {
			logger.Info("metrics endpoint listening", "address", cfg.Metrics.ListenAddress)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server failed", "error", err)
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			srv.Shutdown(shutdownCtx)
		}()
	}

	var store report.Store
	if cfg.Reports.Enabled {
		store, err = openReportStore(cfg)
		if err != nil {
			return cli.NewCommandError("watch", err)
		}
		defer store.Close()

		pruner := retention.NewPruner(store, retention.Config{
			RetentionDays: cfg.Reports.RetentionDays,
			PruneSchedule: cfg.Reports.PruneSchedule,
		})
		scheduler := retention.NewScheduler(pruner)
		if err := scheduler.Start(ctx); err != nil {
			logger.Warn("failed to start retention scheduler", "error", err)
		} else {
			defer scheduler.Stop()
		}
	}

	scanner := scan.NewScanner(scanConfigFrom(cfg), logger)

	runOnce := func() {
		start := time.Now()

		m := matrix.Default()
		if m.Empty() {
			collector.RecordMatrixLoad("error")
		} else {
			collector.RecordMatrixLoad("ok")
		}

		files, err := scanner.Scan(ctx, root)
		if err != nil {
			logger.Error("scan failed", "path", root, "error", err)
			return
		}

		result := engine.CheckCompatibility(watchFlags.mainLicense, files)

		verdict := "clean"
		for _, issue := range result.Issues {
			if issue.Compatible {
				collector.RecordIssue("compatible")
			} else {
				collector.RecordIssue("flagged")
				verdict = "issues"
			}
		}
		collector.RecordCheck(verdict, len(files), time.Since(start))

		logger.Info("check complete",
			"path", root,
			"files", len(files),
			"compatible", result.CompatibleCount(),
			"verdict", verdict,
		)

		if store != nil {
			rep := report.New(root, result)
			if err := store.Save(ctx, rep); err != nil {
				logger.Error("failed to save report", "error", err)
			} else {
				logger.Debug("report saved", "report_id", rep.ID)
			}
		}
	}

	watcher, err := matrix.NewWatcher(cfg.Matrix.Path, logger)
	if err != nil {
		return cli.NewCommandError("watch", err)
	}
	watcher.OnReload(runOnce)

	runOnce()

	fmt.Printf("Watching %s (matrix: %s), press Ctrl+C to stop\n", root, cfg.Matrix.Path)
	watcher.Run(ctx)

	logger.Info("shutting down")
	return nil
}
