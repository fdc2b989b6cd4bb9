package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"compat-hq/licensegate/pkg/report"
)

// MemoryStore implements report.Store using an in-memory map. Intended
// for tests; nothing survives the process.
type MemoryStore struct {
	mu      sync.RWMutex
	reports map[string]*report.Report
}

// NewMemoryStore creates an empty in-memory report store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{reports: make(map[string]*report.Report)}
}

// Save persists a report.
func (s *MemoryStore) Save(ctx context.Context, r *report.Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *r
	s.reports[r.ID] = &cp
	return nil
}

// Get retrieves a report by ID.
func (s *MemoryStore) Get(ctx context.Context, id string) (*report.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.reports[id]
	if !ok {
		return nil, report.ErrNotFound
	}
	cp := *r
	return &cp, nil
}

// List returns reports matching the query, newest first.
func (s *MemoryStore) List(ctx context.Context, q report.Query) ([]*report.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var results []*report.Report
	for _, r := range s.reports {
		if r.CreatedAt.Before(q.Since) {
			continue
		}
		if q.Target != "" && r.Target != q.Target {
			continue
		}
		cp := *r
		results = append(results, &cp)
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].CreatedAt.After(results[j].CreatedAt)
	})
	if q.Limit > 0 && len(results) > q.Limit {
		results = results[:q.Limit]
	}
	return results, nil
}

// DeleteOlderThan removes reports created before the cutoff.
func (s *MemoryStore) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var deleted int64
	for id, r := range s.reports {
		if r.CreatedAt.Before(cutoff) {
			delete(s.reports, id)
			deleted++
		}
	}
	return deleted, nil
}

// Count returns the total number of stored reports.
func (s *MemoryStore) Count(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.reports)), nil
}

// Close is a no-op for the memory store.
func (s *MemoryStore) Close() error { return nil }

// interface guard
var _ report.Store = (*MemoryStore)(nil)
