// Package memstore is an in-memory store.Store for tests and
// one-shot runs that don't need persistence.
package memstore

import (
	"context"
	"sort"
	"sync"

	"github.com/cognicore/lexiscan/pkg/lexiscan/aggregate"
	"github.com/cognicore/lexiscan/pkg/lexiscan/store"
)

// Store is an in-memory implementation of store.Store.
type Store struct {
	mu       sync.RWMutex
	runs     map[string]store.Run
	rows     map[string][]aggregate.CorpusRow
	failures map[string][]store.Failure
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{
		runs:     make(map[string]store.Run),
		rows:     make(map[string][]aggregate.CorpusRow),
		failures: make(map[string][]store.Failure),
	}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// SaveRun inserts or replaces a run record.
func (s *Store) SaveRun(ctx context.Context, r store.Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs[r.ID] = r
	return nil
}

// GetRun returns a run by ID.
func (s *Store) GetRun(ctx context.Context, id string) (store.Run, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.runs[id]
	return r, ok, nil
}

// ListRuns returns runs newest first. ULIDs sort by creation time,
// so descending ID order is descending time order.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]store.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	runs := make([]store.Run, 0, len(s.runs))
	for _, r := range s.runs {
		runs = append(runs, r)
	}
	sort.Slice(runs, func(i, j int) bool { return runs[i].ID > runs[j].ID })
	if limit > 0 && len(runs) > limit {
		runs = runs[:limit]
	}
	return runs, nil
}

// SaveCorpusRows replaces the corpus rows of a run.
func (s *Store) SaveCorpusRows(ctx context.Context, runID string, rows []aggregate.CorpusRow) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]aggregate.CorpusRow, len(rows))
	copy(cp, rows)
	s.rows[runID] = cp
	return nil
}

// GetCorpusRows returns the corpus rows of a run.
func (s *Store) GetCorpusRows(ctx context.Context, runID string) ([]aggregate.CorpusRow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rows := s.rows[runID]
	cp := make([]aggregate.CorpusRow, len(rows))
	copy(cp, rows)
	return cp, nil
}

// SaveFailures replaces the failure records of a run.
func (s *Store) SaveFailures(ctx context.Context, runID string, failures []store.Failure) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]store.Failure, len(failures))
	copy(cp, failures)
	s.failures[runID] = cp
	return nil
}

// GetFailures returns the failure records of a run.
func (s *Store) GetFailures(ctx context.Context, runID string) ([]store.Failure, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	failures := s.failures[runID]
	cp := make([]store.Failure, len(failures))
	copy(cp, failures)
	return cp, nil
}
