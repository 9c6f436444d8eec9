package driving

import (
	"context"
	"io"

	"github.com/custodia-labs/payslip-drive/internal/core/domain"
)

// HistoryService exposes past runs.
type HistoryService interface {
	// List returns up to limit runs, newest first.
	List(ctx context.Context, limit int) ([]domain.RunRecord, error)

	// Export writes up to limit runs to w as an XLSX workbook.
	Export(ctx context.Context, w io.Writer, limit int) error
}
