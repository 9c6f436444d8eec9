package mcp

import (
	"github.com/custodia-labs/payslip-drive/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
type Ports struct {
	// Splitter splits payroll documents.
	Splitter driving.Splitter

	// Uploader sends payslips to Drive. The upload tools are only
	// registered when it is set.
	Uploader driving.Uploader

	// History lists past runs. Optional.
	History driving.HistoryService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Splitter == nil {
		return ErrMissingSplitter
	}
	return nil
}
