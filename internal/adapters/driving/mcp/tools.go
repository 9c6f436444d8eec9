package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/payslip-drive/internal/core/domain"
)

// SplitInput is the input schema for the split_payroll tool.
type SplitInput struct {
	Path string `json:"path" jsonschema:"path of the payroll PDF to split"`
}

// PendingInput is the input schema for the list_pending tool.
type PendingInput struct{}

// PendingOutput lists the payslips an upload would send.
type PendingOutput struct {
	Files []string `json:"files"`
	Count int      `json:"count"`
}

// UploadInput is the input schema for the upload_payslips tool.
type UploadInput struct {
	Confirm bool `json:"confirm" jsonschema:"must be true; uploads every payslip in the output directory"`
}

// RunOutput is the outcome of a split or upload run.
type RunOutput struct {
	Kind           string `json:"kind"`
	Success        bool   `json:"success"`
	Succeeded      int    `json:"succeeded"`
	Failed         int    `json:"failed"`
	FoldersCreated int    `json:"folders_created,omitempty"`
	Message        string `json:"message,omitempty"`
	LogPath        string `json:"log_path,omitempty"`
	Summary        string `json:"summary"`
}

func newRunOutput(r *domain.RunReport) RunOutput {
	return RunOutput{
		Kind:           r.Kind.String(),
		Success:        r.Success,
		Succeeded:      r.Succeeded,
		Failed:         r.Failed,
		FoldersCreated: r.FoldersCreated,
		Message:        r.Message,
		LogPath:        r.LogPath,
		Summary:        r.Summary(),
	}
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "split_payroll",
		Description: "Split a payroll PDF into one payslip file per employee page",
	}, s.handleSplit)

	if s.ports.Uploader == nil {
		return
	}

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_pending",
		Description: "List the payslip files an upload would send",
	}, s.handlePending)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "upload_payslips",
		Description: "Upload every payslip in the output directory to the employees' Google Drive folders",
	}, s.handleUpload)
}

func (s *Server) handleSplit(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SplitInput,
) (*mcp.CallToolResult, RunOutput, error) {
	if input.Path == "" {
		return nil, RunOutput{}, fmt.Errorf("%w: path is required", domain.ErrInvalidInput)
	}

	report, err := s.ports.Splitter.Split(ctx, input.Path)
	if err != nil {
		return nil, RunOutput{}, fmt.Errorf("split failed: %w", err)
	}
	return nil, newRunOutput(report), nil
}

func (s *Server) handlePending(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ PendingInput,
) (*mcp.CallToolResult, PendingOutput, error) {
	files, err := s.ports.Uploader.Pending()
	if err != nil {
		return nil, PendingOutput{}, err
	}
	if files == nil {
		files = []string{}
	}
	return nil, PendingOutput{Files: files, Count: len(files)}, nil
}

func (s *Server) handleUpload(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input UploadInput,
) (*mcp.CallToolResult, RunOutput, error) {
	if !input.Confirm {
		return nil, RunOutput{}, ErrUploadNotConfirmed
	}

	report, err := s.ports.Uploader.Upload(ctx)
	if err != nil {
		return nil, RunOutput{}, fmt.Errorf("upload failed: %w", err)
	}
	return nil, newRunOutput(report), nil
}
