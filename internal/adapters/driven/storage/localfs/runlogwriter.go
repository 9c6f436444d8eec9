package localfs

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/custodia-labs/payslip-drive/internal/core/domain"
	"github.com/custodia-labs/payslip-drive/internal/core/ports/driven"
)

// Ensure RunLogWriter implements the interface.
var _ driven.RunLogWriter = (*RunLogWriter)(nil)

// RunLogWriter writes one Markdown file per run kind and day.
type RunLogWriter struct {
	dir string
}

// NewRunLogWriter creates a writer for dir.
func NewRunLogWriter(dir string) *RunLogWriter {
	return &RunLogWriter{dir: dir}
}

// EnsureDir creates the log directory and any missing parents.
func (w *RunLogWriter) EnsureDir() error {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", w.dir, err)
	}
	return nil
}

// Write replaces the log for kind on day with content.
func (w *RunLogWriter) Write(kind domain.RunKind, day time.Time, content string) (string, error) {
	path := filepath.Join(w.dir, domain.LogFileName(kind, day))
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
