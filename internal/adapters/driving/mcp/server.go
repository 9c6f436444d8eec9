package mcp

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/payslip-drive/internal/logger"
)

// Version is the MCP server version.
const Version = "0.1.0"

// shutdownTimeout bounds how long RunHTTP waits for in-flight requests.
// An upload in progress is not cancelled by the shutdown itself.
const shutdownTimeout = 5 * time.Second

// Server exposes splitting, uploading and run history to MCP clients.
type Server struct {
	ports  *Ports
	server *mcp.Server
}

// NewServer creates a new MCP server with the given ports. Upload tools and
// history resources are only registered for the ports that are set.
func NewServer(ports *Ports) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	impl := &mcp.Implementation{
		Name:    "payslip-drive",
		Version: Version,
	}

	s := &Server{
		ports:  ports,
		server: mcp.NewServer(impl, &mcp.ServerOptions{Instructions: instructions(ports)}),
	}
	s.server.AddReceivingMiddleware(logToolCalls)

	s.registerTools()
	s.registerResources()

	return s, nil
}

// instructions tells the client how the tools fit together.
func instructions(ports *Ports) string {
	var b strings.Builder
	b.WriteString("Payroll PDFs are split into one REF_Month_YEAR.pdf file per employee page with split_payroll.")
	if ports.Uploader != nil {
		b.WriteString(" list_pending shows the payslips waiting in the output directory;" +
			" upload_payslips sends all of them to per-employee Google Drive folders and needs confirm=true." +
			" Uploads are not deduplicated, so check list_pending before uploading again.")
	}
	if ports.History != nil {
		b.WriteString(" Past runs are readable at " + uriScheme + "runs.")
	}
	return b.String()
}

// logToolCalls logs every tool call with its duration. A tool error is
// returned to the client as a result, so it is logged as a warning here.
func logToolCalls(next mcp.MethodHandler) mcp.MethodHandler {
	return func(ctx context.Context, method string, req mcp.Request) (mcp.Result, error) {
		call, ok := req.(*mcp.CallToolRequest)
		if !ok || call.Params == nil {
			return next(ctx, method, req)
		}

		start := time.Now()
		logger.Debug("MCP tool %s called", call.Params.Name)
		result, err := next(ctx, method, req)
		elapsed := time.Since(start).Round(time.Millisecond)

		switch r, _ := result.(*mcp.CallToolResult); {
		case err != nil:
			logger.Warn("MCP tool %s failed after %s: %v", call.Params.Name, elapsed, err)
		case r != nil && r.IsError:
			logger.Warn("MCP tool %s returned an error after %s", call.Params.Name, elapsed)
		default:
			logger.Debug("MCP tool %s done in %s", call.Params.Name, elapsed)
		}
		return result, err
	}
}

// Run serves MCP over stdio until the context is cancelled or the client
// disconnects.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// RunHTTP serves MCP over streamable HTTP on addr. The address is bound
// before RunHTTP blocks, so a port already in use is reported at once.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}
	return s.serveHTTP(ctx, ln)
}

func (s *Server) serveHTTP(ctx context.Context, ln net.Listener) error {
	handler := mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server {
		return s.server
	}, nil)

	httpServer := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Warn("MCP server shutdown: %v", err)
		}
	}()

	logger.Info("MCP server listening on http://%s", ln.Addr())
	err := httpServer.Serve(ln)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
