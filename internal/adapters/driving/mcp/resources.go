package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/payslip-drive/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for payslip-drive resources.
	uriScheme = "payslip://"

	// runsLimit caps the runs returned by a resource read.
	runsLimit = 50
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "runs",
		Name:        "runs",
		Description: "Recent split and upload runs, newest first",
		MIMEType:    "application/json",
	}, s.handleRunsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "runs/{kind}",
		Name:        "runs-by-kind",
		Description: "Recent runs of one kind (eclatement or upload)",
		MIMEType:    "application/json",
	}, s.handleRunsByKindResource)
}

type runInfo struct {
	ID        string `json:"id"`
	Kind      string `json:"kind"`
	Source    string `json:"source"`
	StartedAt string `json:"started_at"`
	Success   bool   `json:"success"`
	Succeeded int    `json:"succeeded"`
	Failed    int    `json:"failed"`
	Folders   int    `json:"folders_created,omitempty"`
	Message   string `json:"message,omitempty"`
	LogPath   string `json:"log_path,omitempty"`
}

// handleRunsResource returns the recent runs.
func (s *Server) handleRunsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	return s.readRuns(ctx, req.Params.URI, "")
}

// handleRunsByKindResource returns the recent runs of one kind.
func (s *Server) handleRunsByKindResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	kind := extractRunKind(req.Params.URI)
	if !kind.IsValid() {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	return s.readRuns(ctx, req.Params.URI, kind)
}

func (s *Server) readRuns(ctx context.Context, uri string, kind domain.RunKind) (*mcp.ReadResourceResult, error) {
	if s.ports.History == nil {
		return jsonResult(uri, "[]"), nil
	}

	runs, err := s.ports.History.List(ctx, runsLimit)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}

	infos := make([]runInfo, 0, len(runs))
	for i := range runs {
		r := &runs[i]
		if kind != "" && r.Kind != kind {
			continue
		}
		infos = append(infos, runInfo{
			ID:        r.ID,
			Kind:      r.Kind.String(),
			Source:    r.Source,
			StartedAt: r.StartedAt.Format(time.RFC3339),
			Success:   r.Success,
			Succeeded: r.Succeeded,
			Failed:    r.Failed,
			Folders:   r.FoldersCreated,
			Message:   r.Message,
			LogPath:   r.LogPath,
		})
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling runs: %w", err)
	}
	return jsonResult(uri, string(data)), nil
}

func jsonResult(uri, text string) *mcp.ReadResourceResult {
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     text,
		}},
	}
}

// extractRunKind extracts the kind from a URI like payslip://runs/{kind}.
func extractRunKind(uri string) domain.RunKind {
	const prefix = uriScheme + "runs/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	return domain.RunKind(strings.TrimPrefix(uri, prefix))
}
