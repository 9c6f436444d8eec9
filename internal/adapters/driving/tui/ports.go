// Package tui provides the interactive terminal interface: a path field,
// the Split and Upload actions and a scrollable activity log.
package tui

import (
	"github.com/custodia-labs/payslip-drive/internal/core/ports/driving"
)

// Ports aggregates the driving ports the TUI needs.
type Ports struct {
	// Splitter splits the chosen payroll document.
	Splitter driving.Splitter

	// Uploader sends the split payslips to Drive.
	Uploader driving.Uploader
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Splitter == nil {
		return ErrMissingSplitter
	}
	if p.Uploader == nil {
		return ErrMissingUploader
	}
	return nil
}
