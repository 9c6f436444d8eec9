package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/payslip-drive/internal/core/domain"
	"github.com/custodia-labs/payslip-drive/internal/core/ports/driven"
	"github.com/custodia-labs/payslip-drive/internal/logger"
)

// runRecorder holds what split and upload runs share: the clock,
// the run log writer and the optional history store.
type runRecorder struct {
	logs    driven.RunLogWriter
	history driven.RunHistoryStore
	now     func() time.Time
}

func (r *runRecorder) start(kind domain.RunKind, source string) *domain.RunReport {
	return &domain.RunReport{
		ID:        uuid.New().String(),
		Kind:      kind,
		Source:    source,
		StartedAt: r.now(),
	}
}

// finish writes the run log and records the run. A log that cannot be
// written turns a successful run into a failed one.
func (r *runRecorder) finish(ctx context.Context, report *domain.RunReport, runLog *domain.RunLog) error {
	var err error
	path, werr := r.logs.Write(report.Kind, report.StartedAt, runLog.String())
	if werr != nil {
		err = fmt.Errorf("write run log: %w", werr)
		logger.Error("%v", err)
		if report.Success {
			report.Success = false
			report.Message = err.Error()
		}
	} else {
		report.LogPath = path
	}
	report.EndedAt = r.now()
	r.record(ctx, report)
	return err
}

// record saves the run to history. History is best effort.
func (r *runRecorder) record(ctx context.Context, report *domain.RunReport) {
	if r.history == nil {
		return
	}
	if report.EndedAt.IsZero() {
		report.EndedAt = r.now()
	}
	if err := r.history.Save(ctx, report.Record()); err != nil {
		logger.Warn("Failed to record %s run %s: %v", report.Kind, report.ID, err)
	}
}
