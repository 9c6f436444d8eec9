package driven

import (
	"time"

	"github.com/custodia-labs/payslip-drive/internal/core/domain"
)

// RunLogWriter persists the log of a run.
type RunLogWriter interface {
	// EnsureDir creates the log directory if missing. It is idempotent.
	EnsureDir() error

	// Write stores content as the log for kind on day, replacing any
	// log written earlier the same day. It returns the file path.
	Write(kind domain.RunKind, day time.Time, content string) (string, error)
}
