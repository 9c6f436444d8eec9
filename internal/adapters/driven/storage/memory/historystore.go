package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/payslip-drive/internal/core/domain"
	"github.com/custodia-labs/payslip-drive/internal/core/ports/driven"
)

// Ensure RunHistoryStore implements the interface.
var _ driven.RunHistoryStore = (*RunHistoryStore)(nil)

// RunHistoryStore is an in-memory implementation of driven.RunHistoryStore.
type RunHistoryStore struct {
	mu      sync.RWMutex
	records map[string]domain.RunRecord
}

// NewRunHistoryStore creates a new in-memory run history store.
func NewRunHistoryStore() *RunHistoryStore {
	return &RunHistoryStore{
		records: make(map[string]domain.RunRecord),
	}
}

// Save stores or replaces a run record.
func (s *RunHistoryStore) Save(_ context.Context, rec domain.RunRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[rec.ID] = rec
	return nil
}

// List returns up to limit records, newest first.
func (s *RunHistoryStore) List(_ context.Context, limit int) ([]domain.RunRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.RunRecord, 0, len(s.records))
	for _, rec := range s.records {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].StartedAt.After(out[j].StartedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Close is a no-op.
func (s *RunHistoryStore) Close() error {
	return nil
}
