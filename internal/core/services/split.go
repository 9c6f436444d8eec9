package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/custodia-labs/payslip-drive/internal/core/domain"
	"github.com/custodia-labs/payslip-drive/internal/core/ports/driven"
	"github.com/custodia-labs/payslip-drive/internal/core/ports/driving"
	"github.com/custodia-labs/payslip-drive/internal/logger"
)

// Ensure SplitService implements the interface.
var _ driving.Splitter = (*SplitService)(nil)

// SplitService splits a payroll document into one PDF per classified page.
type SplitService struct {
	reader     driven.DocumentReader
	normaliser driven.TextNormaliser
	store      driven.PayslipStore
	runRecorder

	mu sync.Mutex
}

// NewSplitService creates a split service. history may be nil.
func NewSplitService(
	reader driven.DocumentReader,
	normaliser driven.TextNormaliser,
	store driven.PayslipStore,
	logs driven.RunLogWriter,
	history driven.RunHistoryStore,
) *SplitService {
	return &SplitService{
		reader:      reader,
		normaliser:  normaliser,
		store:       store,
		runRecorder: runRecorder{logs: logs, history: history, now: time.Now},
	}
}

// Split processes every page of the document at sourcePath in order.
// Pages are independent: a page that cannot be classified or written is
// counted as a failure and the run continues. The run itself fails only
// when the document cannot be opened or has no pages.
//
// The page loop does not observe ctx cancellation; ctx is only used to
// record the run.
func (s *SplitService) Split(ctx context.Context, sourcePath string) (*domain.RunReport, error) {
	report := s.start(domain.RunKindSplit, sourcePath)
	if !s.mu.TryLock() {
		report.Message = domain.ErrRunInProgress.Error()
		return report, domain.ErrRunInProgress
	}
	defer s.mu.Unlock()

	logger.Section("Split")
	logger.Info("Splitting %s into %s", sourcePath, s.store.Dir())

	var runLog domain.RunLog
	runLog.Add("# Split log - %s", report.StartedAt.Format(time.DateTime))
	runLog.Add("")
	runLog.Add("Source file: %s", sourcePath)

	if err := s.logs.EnsureDir(); err != nil {
		err = fmt.Errorf("%w: create log directory: %w", domain.ErrCritical, err)
		report.Message = err.Error()
		s.record(ctx, report)
		return report, err
	}
	if err := s.store.EnsureDir(); err != nil {
		return s.abort(ctx, report, &runLog, fmt.Errorf("create output directory: %w", err))
	}

	doc, err := s.reader.Open(sourcePath)
	if err != nil {
		return s.abort(ctx, report, &runLog, fmt.Errorf("open document: %w", err))
	}
	defer doc.Close()

	total := doc.PageCount()
	if total == 0 {
		return s.abort(ctx, report, &runLog, domain.ErrEmptyDocument)
	}
	runLog.Add("Pages detected: %d", total)
	runLog.Add("")

	for n := 1; n <= total; n++ {
		s.splitPage(doc, n, &runLog, report)
	}

	runLog.Add("")
	runLog.Add("Succeeded: %d", report.Succeeded)
	runLog.Add("Failed: %d", report.Failed)
	report.Success = true

	logger.Info("Split complete: %d succeeded, %d failed", report.Succeeded, report.Failed)
	if err := s.finish(ctx, report, &runLog); err != nil {
		return report, err
	}
	return report, nil
}

func (s *SplitService) splitPage(doc driven.Document, n int, runLog *domain.RunLog, report *domain.RunReport) {
	text, err := doc.PageText(n)
	if err != nil {
		logger.Warn("Page %d: text extraction failed, treating as empty: %v", n, err)
		text = ""
	}

	c := domain.Classify(s.normaliser.Normalise(text))
	if !c.Matched {
		logger.Debug("Page %d unmatched: %q", n, c.Snippet)
		runLog.Add("- [FAIL] Page %d: no reference or pay period found.", n)
		runLog.Add("    > Normalised text: '%s...'", c.Snippet)
		report.Failed++
		return
	}

	name := c.Filename()
	if err := s.writePage(doc, n, name); err != nil {
		logger.Warn("Page %d: write %s: %v", n, name, err)
		runLog.Add("- [FAIL] Page %d: %s could not be written: %v", n, name, err)
		report.Failed++
		return
	}

	logger.Debug("Page %d -> %s", n, name)
	runLog.Add("- [OK] Page %d: %s", n, name)
	report.Succeeded++
}

func (s *SplitService) writePage(doc driven.Document, n int, name string) error {
	w, err := s.store.Create(name)
	if err != nil {
		return err
	}
	if err := doc.WritePage(n, w); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}

// abort ends the run with a critical error. The log keeps its header and
// the error line, with no page entries.
func (s *SplitService) abort(
	ctx context.Context, report *domain.RunReport, runLog *domain.RunLog, cause error,
) (*domain.RunReport, error) {
	err := fmt.Errorf("%w: %w", domain.ErrCritical, cause)
	logger.Error("Split of %s failed: %v", report.Source, err)

	runLog.Add("")
	runLog.Add("[CRITICAL] %v", err)
	report.Success = false
	report.Message = err.Error()
	_ = s.finish(ctx, report, runLog)
	return report, err
}
