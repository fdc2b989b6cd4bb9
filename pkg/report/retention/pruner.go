package retention

import (
	"context"
	"log/slog"
	"time"

	"compat-hq/licensegate/pkg/report"
)

// Config contains retention settings for the report history.
type Config struct {
	// RetentionDays is how many days of reports to keep. Zero disables
	// age-based pruning.
	RetentionDays int

	// PruneSchedule is a cron expression for scheduled pruning, for
	// example "0 3 * * *" for daily at 3 AM. Empty disables the
	// scheduler.
	PruneSchedule string
}

// DefaultConfig returns the default retention configuration.
func DefaultConfig() Config {
	return Config{
		RetentionDays: 90,
		PruneSchedule: "0 3 * * *",
	}
}

// Pruner deletes reports older than the retention window.
type Pruner struct {
	store  report.Store
	config Config
	logger *slog.Logger
}

// NewPruner creates a pruner over the given store.
func NewPruner(store report.Store, config Config) *Pruner {
	return &Pruner{
		store:  store,
		config: config,
		logger: slog.Default().With("component", "report.retention"),
	}
}

// Prune runs one pruning cycle and returns how many reports were
// deleted. A zero retention window is a no-op.
func (p *Pruner) Prune(ctx context.Context) (int64, error) {
	if p.config.RetentionDays <= 0 {
		return 0, nil
	}

	cutoff := time.Now().UTC().AddDate(0, 0, -p.config.RetentionDays)
	deleted, err := p.store.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	if deleted > 0 {
		p.logger.Info("report retention pruning complete",
			"deleted", deleted,
			"retention_days", p.config.RetentionDays,
		)
	}
	return deleted, nil
}
