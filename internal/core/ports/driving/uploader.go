package driving

import (
	"context"

	"github.com/custodia-labs/payslip-drive/internal/core/domain"
)

// Uploader sends every local payslip to its employee folder in remote storage.
type Uploader interface {
	// Pending lists the payslip files an upload would send.
	Pending() ([]string, error)

	// Upload runs one upload batch. The returned report is never nil.
	// A non-nil error means the batch was aborted or never started.
	Upload(ctx context.Context) (*domain.RunReport, error)
}
