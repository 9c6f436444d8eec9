package driven

import (
	"context"

	"github.com/custodia-labs/payslip-drive/internal/core/domain"
)

// RunHistoryStore persists past runs.
type RunHistoryStore interface {
	// Save stores a run record. Records with an existing ID are replaced.
	Save(ctx context.Context, rec domain.RunRecord) error

	// List returns up to limit records, newest first. limit <= 0 means all.
	List(ctx context.Context, limit int) ([]domain.RunRecord, error)

	// Close releases resources.
	Close() error
}
