// Package messages defines Bubbletea message types for the TUI.
package messages

import (
	"github.com/custodia-labs/payslip-drive/internal/core/domain"
)

// SplitFinished carries the outcome of a split run back to the model.
type SplitFinished struct {
	Path   string
	Report *domain.RunReport
	Err    error
}

// Succeeded reports whether the split run completed.
func (m SplitFinished) Succeeded() bool {
	return m.Err == nil && m.Report != nil && m.Report.Success
}

// UploadFinished carries the outcome of an upload batch back to the model.
type UploadFinished struct {
	Report *domain.RunReport
	Err    error
}

// Succeeded reports whether the batch completed.
func (m UploadFinished) Succeeded() bool {
	return m.Err == nil && m.Report != nil && m.Report.Success
}

// PendingCounted carries the number of files an upload would send.
type PendingCounted struct {
	Count int
	Err   error
}
