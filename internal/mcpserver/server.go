// Package mcpserver exposes the page catalog and the solving engine as MCP
// tools so that assistants can list puzzle days and solve input.
package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/mark3labs/mcp-go/server"

	"aocctl/internal/catalog"
	"aocctl/internal/solve"
	"aocctl/pkg/logging"
)

const subsystem = "MCP"

// Transports supported by Serve.
const (
	TransportStdio = "stdio"
	TransportSSE   = "sse"
)

// Server wraps an MCP server whose tools operate on a catalog and an engine.
type Server struct {
	catalog *catalog.Catalog
	engine  solve.Engine
	mcp     *server.MCPServer
}

// New creates the server and registers its tools.
func New(cat *catalog.Catalog, engine solve.Engine, version string) *Server {
	s := &Server{
		catalog: cat,
		engine:  engine,
		mcp: server.NewMCPServer(
			"aocctl",
			version,
			server.WithToolCapabilities(false),
		),
	}
	s.registerTools()
	return s
}

// MCPServer returns the underlying MCP server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

// Serve runs the server on the given transport until ctx is cancelled or the
// transport closes. addr is only used by the SSE transport.
func (s *Server) Serve(ctx context.Context, transport, addr string) error {
	switch transport {
	case TransportStdio, "":
		logging.Info(subsystem, "Serving MCP tools on stdio")
		return server.ServeStdio(s.mcp)
	case TransportSSE:
		return s.serveSSE(ctx, addr)
	default:
		return fmt.Errorf("unknown transport %q (want %s or %s)", transport, TransportStdio, TransportSSE)
	}
}

func (s *Server) serveSSE(ctx context.Context, addr string) error {
	sse := server.NewSSEServer(
		s.mcp,
		server.WithBaseURL("http://"+addr),
		server.WithSSEEndpoint("/sse"),
		server.WithMessageEndpoint("/message"),
	)

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			if err := sse.Shutdown(context.Background()); err != nil {
				logging.Error(subsystem, err, "Failed to shut down SSE server")
			}
		case <-done:
		}
	}()

	logging.Info(subsystem, "Serving MCP tools over SSE on %s", addr)
	if err := sse.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("sse server: %w", err)
	}
	return nil
}
