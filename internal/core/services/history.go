package services

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/custodia-labs/payslip-drive/internal/core/domain"
	"github.com/custodia-labs/payslip-drive/internal/core/ports/driven"
	"github.com/custodia-labs/payslip-drive/internal/core/ports/driving"
	"github.com/custodia-labs/payslip-drive/internal/logger"
)

// Ensure HistoryService implements the interface.
var _ driving.HistoryService = (*HistoryService)(nil)

// historySheet is the worksheet name used by Export.
const historySheet = "Runs"

// HistoryService reads and exports past runs.
type HistoryService struct {
	store driven.RunHistoryStore
}

// NewHistoryService creates a history service.
func NewHistoryService(store driven.RunHistoryStore) *HistoryService {
	return &HistoryService{store: store}
}

// List returns up to limit runs, newest first.
func (s *HistoryService) List(ctx context.Context, limit int) ([]domain.RunRecord, error) {
	if s.store == nil {
		return nil, fmt.Errorf("run history: %w", domain.ErrNotFound)
	}
	records, err := s.store.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return records, nil
}

// Export writes up to limit runs to w as an XLSX workbook with one row per run.
func (s *HistoryService) Export(ctx context.Context, w io.Writer, limit int) error {
	records, err := s.List(ctx, limit)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", historySheet); err != nil {
		return fmt.Errorf("xlsx sheet: %w", err)
	}

	headers := []string{
		"Run ID", "Stage", "Source", "Started", "Ended",
		"Success", "Succeeded", "Failed", "Folders Created", "Log", "Message",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(historySheet, cell, h)
	}

	for i, r := range records {
		row := i + 2
		values := []any{
			r.ID,
			r.Kind.Title(),
			r.Source,
			r.StartedAt.Format(time.DateTime),
			formatEnded(r.EndedAt),
			r.Success,
			r.Succeeded,
			r.Failed,
			r.FoldersCreated,
			r.LogPath,
			r.Message,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			_ = f.SetCellValue(historySheet, cell, v)
		}
	}

	_ = f.SetColWidth(historySheet, "A", "A", 38)
	_ = f.SetColWidth(historySheet, "C", "C", 40)
	_ = f.SetColWidth(historySheet, "D", "E", 20)
	_ = f.SetColWidth(historySheet, "J", "K", 48)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("xlsx write: %w", err)
	}
	logger.Info("Exported %d runs", len(records))
	return nil
}

func formatEnded(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.DateTime)
}
