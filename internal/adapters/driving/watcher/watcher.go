// Package watcher splits payroll PDFs dropped into an inbox directory.
package watcher

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/payslip-drive/internal/core/domain"
	"github.com/custodia-labs/payslip-drive/internal/core/ports/driving"
	"github.com/custodia-labs/payslip-drive/internal/logger"
)

// DefaultDebounce is the quiet period after the last write to a file.
const DefaultDebounce = 2 * time.Second

// ResultFunc receives the outcome of each split, on the watcher goroutine.
type ResultFunc func(path string, report *domain.RunReport, err error)

// Config configures a Watcher.
type Config struct {
	// Dir is the inbox directory. It is not watched recursively.
	Dir string
	// Debounce is the quiet period before a file is split.
	Debounce time.Duration
	// InitialScan splits PDFs already present when Run starts.
	InitialScan bool
}

// Watcher runs the splitter for every PDF created or written in a directory.
// Splits run one at a time; files that settle during a split are picked up
// once it returns.
type Watcher struct {
	splitter driving.Splitter
	cfg      Config
	onResult ResultFunc
}

// New creates a watcher. onResult may be nil.
func New(splitter driving.Splitter, cfg Config, onResult ResultFunc) *Watcher {
	if cfg.Debounce <= 0 {
		cfg.Debounce = DefaultDebounce
	}
	if onResult == nil {
		onResult = func(string, *domain.RunReport, error) {}
	}
	return &Watcher{splitter: splitter, cfg: cfg, onResult: onResult}
}

// Run watches until ctx is cancelled. It returns nil on cancellation.
func (w *Watcher) Run(ctx context.Context) error {
	info, err := os.Stat(w.cfg.Dir)
	if err != nil {
		return fmt.Errorf("watch %s: %w", w.cfg.Dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("watch %s: %w: not a directory", w.cfg.Dir, domain.ErrInvalidInput)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(w.cfg.Dir); err != nil {
		return fmt.Errorf("watch %s: %w", w.cfg.Dir, err)
	}
	logger.Info("Watching %s (debounce %s)", w.cfg.Dir, w.cfg.Debounce)

	pending := map[string]time.Time{}
	timer := time.NewTimer(w.cfg.Debounce)
	timer.Stop()

	if w.cfg.InitialScan {
		existing, err := w.scan()
		if err != nil {
			return err
		}
		for _, p := range existing {
			pending[p] = time.Time{}
		}
		if len(pending) > 0 {
			timer.Reset(0)
		}
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !isCandidate(ev.Name) {
				continue
			}
			switch {
			case ev.Has(fsnotify.Create), ev.Has(fsnotify.Write):
				logger.Debug("Event %s on %s", ev.Op, ev.Name)
				pending[ev.Name] = time.Now()
				timer.Reset(w.cfg.Debounce)
			case ev.Has(fsnotify.Remove), ev.Has(fsnotify.Rename):
				delete(pending, ev.Name)
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error: %v", err)

		case <-timer.C:
			next := w.settled(pending)
			for _, p := range next {
				delete(pending, p)
				if ctx.Err() != nil {
					return nil
				}
				w.split(ctx, p)
			}
			if len(pending) > 0 {
				timer.Reset(w.cfg.Debounce)
			}
		}
	}
}

// settled returns, in name order, the pending files quiet for a full period.
func (w *Watcher) settled(pending map[string]time.Time) []string {
	cutoff := time.Now().Add(-w.cfg.Debounce)
	var out []string
	for p, last := range pending {
		if !last.After(cutoff) {
			out = append(out, p)
		}
	}
	sort.Strings(out)
	return out
}

func (w *Watcher) split(ctx context.Context, path string) {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		logger.Debug("Skipping %s: no longer a regular file", path)
		return
	}

	logger.Info("Splitting %s", path)
	report, err := w.splitter.Split(ctx, path)
	if err != nil && !errors.Is(err, domain.ErrRunInProgress) {
		logger.Warn("Split of %s failed: %v", path, err)
	}
	w.onResult(path, report, err)
}

func (w *Watcher) scan() ([]string, error) {
	entries, err := os.ReadDir(w.cfg.Dir)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", w.cfg.Dir, err)
	}
	var out []string
	for _, e := range entries {
		p := filepath.Join(w.cfg.Dir, e.Name())
		if e.Type().IsRegular() && isCandidate(p) {
			out = append(out, p)
		}
	}
	return out, nil
}

// isCandidate reports whether path names a visible PDF file.
func isCandidate(path string) bool {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") || strings.HasPrefix(base, "~") {
		return false
	}
	return strings.EqualFold(filepath.Ext(base), domain.PayslipExtension)
}
