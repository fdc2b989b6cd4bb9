// Package retention enforces report-history retention: a Pruner deletes
// reports past their retention window and a cron-driven Scheduler runs
// it periodically in long-running commands.
package retention
