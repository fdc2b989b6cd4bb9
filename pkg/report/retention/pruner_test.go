package retention

import (
	"context"
	"testing"
	"time"

	"compat-hq/licensegate/pkg/engine"
	"compat-hq/licensegate/pkg/report"
	"compat-hq/licensegate/pkg/report/storage"
)

func seedReport(t *testing.T, store report.Store, age time.Duration) *report.Report {
	t.Helper()
	r := report.New("target", engine.Result{MainLicense: "MIT"})
	r.CreatedAt = time.Now().UTC().Add(-age)
	if err := store.Save(context.Background(), r); err != nil {
		t.Fatal(err)
	}
	return r
}

func TestPrune_DeletesExpired(t *testing.T) {
	store := storage.NewMemoryStore()
	seedReport(t, store, 100*24*time.Hour)
	keep := seedReport(t, store, 24*time.Hour)

	p := NewPruner(store, Config{RetentionDays: 90})
	deleted, err := p.Prune(context.Background())
	if err != nil {
		t.Fatalf("Prune() failed: %v", err)
	}
	if deleted != 1 {
		t.Errorf("deleted = %d, want 1", deleted)
	}
	if _, err := store.Get(context.Background(), keep.ID); err != nil {
		t.Errorf("recent report was pruned: %v", err)
	}
}

func TestPrune_ZeroRetentionIsNoop(t *testing.T) {
	store := storage.NewMemoryStore()
	seedReport(t, store, 1000*24*time.Hour)

	p := NewPruner(store, Config{RetentionDays: 0})
	deleted, err := p.Prune(context.Background())
	if err != nil {
		t.Fatalf("Prune() failed: %v", err)
	}
	if deleted != 0 {
		t.Errorf("deleted = %d, want 0", deleted)
	}

	n, _ := store.Count(context.Background())
	if n != 1 {
		t.Errorf("Count() = %d, want 1", n)
	}
}

func TestScheduler_InvalidSchedule(t *testing.T) {
	p := NewPruner(storage.NewMemoryStore(), Config{RetentionDays: 1, PruneSchedule: "not a cron"})
	s := NewScheduler(p)
	if err := s.Start(context.Background()); err == nil {
		t.Error("Start() with invalid schedule should fail")
	}
}

func TestScheduler_EmptyScheduleIsNoop(t *testing.T) {
	p := NewPruner(storage.NewMemoryStore(), Config{RetentionDays: 1})
	s := NewScheduler(p)
	if err := s.Start(context.Background()); err != nil {
		t.Errorf("Start() with empty schedule = %v, want nil", err)
	}
	s.Stop()
}

func TestScheduler_StartStop(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p := NewPruner(storage.NewMemoryStore(), Config{RetentionDays: 1, PruneSchedule: "0 3 * * *"})
	s := NewScheduler(p)
	if err := s.Start(ctx); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	s.Stop()
	s.Stop() // idempotent
}
