package driving

import (
	"context"

	"github.com/custodia-labs/payslip-drive/internal/core/domain"
)

// Splitter splits a payroll document into one payslip per page.
type Splitter interface {
	// Split processes the document at sourcePath. The returned report is
	// never nil. A non-nil error means the run failed as a whole.
	Split(ctx context.Context, sourcePath string) (*domain.RunReport, error)
}
