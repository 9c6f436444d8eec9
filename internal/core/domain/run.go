package domain

import (
	"fmt"
	"strings"
	"time"
)

// RunKind identifies the pipeline stage a run belongs to.
type RunKind string

// Available run kinds. The value is also the run log filename prefix.
const (
	// RunKindSplit splits a source document into payslips.
	RunKindSplit RunKind = "eclatement"

	// RunKindUpload uploads payslips to remote storage.
	RunKindUpload RunKind = "upload"
)

// IsValid returns true if the run kind is recognised.
func (k RunKind) IsValid() bool {
	switch k {
	case RunKindSplit, RunKindUpload:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (k RunKind) String() string {
	return string(k)
}

// Title returns a human-readable label.
func (k RunKind) Title() string {
	switch k {
	case RunKindSplit:
		return "Split"
	case RunKindUpload:
		return "Upload"
	default:
		return "Unknown"
	}
}

// LogDateLayout is the date format used in run log filenames.
const LogDateLayout = "2006-01-02"

// LogFileName returns the run log filename for a kind and day,
// e.g. "log_eclatement_2025-10-31.md". Runs on the same day share a name.
func LogFileName(kind RunKind, day time.Time) string {
	return fmt.Sprintf("log_%s_%s.md", kind, day.Format(LogDateLayout))
}

// RunReport is the outcome of one split or upload run.
type RunReport struct {
	// ID uniquely identifies the run.
	ID string

	Kind RunKind

	// Source is the input of the run: a document path for splits,
	// the output directory for uploads.
	Source string

	// Success is false when the run hit a fatal error.
	Success bool

	// Message is a one-line description of a fatal error. Empty on success.
	Message string

	// Succeeded counts matched pages for splits and uploaded files for uploads.
	Succeeded int

	// Failed counts unmatched or unwritable pages. Always zero for uploads.
	Failed int

	// FoldersCreated counts remote folders created during an upload.
	FoldersCreated int

	// LogPath is where the run log was written. Empty if none was written.
	LogPath string

	StartedAt time.Time
	EndedAt   time.Time
}

// Summary renders the report for display.
func (r *RunReport) Summary() string {
	var b strings.Builder
	switch {
	case !r.Success:
		fmt.Fprintf(&b, "%s failed: %s", r.Kind.Title(), r.Message)
	case r.Kind == RunKindSplit:
		fmt.Fprintf(&b, "Split complete.\nSucceeded: %d\nFailed: %d", r.Succeeded, r.Failed)
	default:
		fmt.Fprintf(&b, "Upload complete.\nFiles uploaded: %d\nFolders created: %d", r.Succeeded, r.FoldersCreated)
	}
	if r.LogPath != "" {
		fmt.Fprintf(&b, "\nLog saved to %s", r.LogPath)
	}
	return b.String()
}

// Duration returns how long the run took.
func (r *RunReport) Duration() time.Duration {
	if r.EndedAt.IsZero() {
		return 0
	}
	return r.EndedAt.Sub(r.StartedAt)
}

// Record converts the report into a persistable history record.
func (r *RunReport) Record() RunRecord {
	return RunRecord{
		ID:        r.ID,
		Kind:      r.Kind,
		Source:    r.Source,
		StartedAt: r.StartedAt,
		EndedAt:   r.EndedAt,
		Success:   r.Success,
		Succeeded: r.Succeeded,
		Failed:    r.Failed,
		LogPath:   r.LogPath,
		Message:   r.Message,

		FoldersCreated: r.FoldersCreated,
	}
}

// RunRecord is a past run as kept in run history.
type RunRecord struct {
	ID        string
	Kind      RunKind
	Source    string
	StartedAt time.Time
	EndedAt   time.Time
	Success   bool
	Succeeded int
	Failed    int
	LogPath   string
	Message   string

	// FoldersCreated is the number of employee folders an upload created.
	FoldersCreated int
}
