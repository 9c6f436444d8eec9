// Package mcp provides an MCP (Model Context Protocol) server adapter for
// payslip-drive. It lets AI assistants split payroll documents, upload the
// payslips and read the run history.
package mcp

import "errors"

// ErrMissingSplitter is returned when the split service is not provided.
var ErrMissingSplitter = errors.New("mcp: split service is required")

// ErrUploadNotConfirmed is returned when upload_payslips is called without confirm.
var ErrUploadNotConfirmed = errors.New("mcp: upload requires confirm=true")
