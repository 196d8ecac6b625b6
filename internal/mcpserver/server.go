// Package mcpserver exposes the pymap operations over the Model Context
// Protocol, so coding agents can query codebase structure without reading
// source files. Every tool call runs the pipeline fresh; there is no
// cross-call state.
package mcpserver

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"

	"github.com/mvp-joe/pymap/internal/engine"
)

// Server manages the MCP server lifecycle.
type Server struct {
	engine *engine.Engine
	log    zerolog.Logger
	mcp    *server.MCPServer
}

// New creates an MCP server backed by the given engine and registers the
// pymap tools.
func New(eng *engine.Engine, log zerolog.Logger, version string) *Server {
	mcpServer := server.NewMCPServer(
		"pymap",
		version,
		server.WithToolCapabilities(true),
	)

	AddFunctionsTool(mcpServer, eng)
	AddClassesTool(mcpServer, eng)
	AddEnumsTool(mcpServer, eng)
	AddModulesTool(mcpServer, eng)
	AddDumpTool(mcpServer, eng)

	return &Server{engine: eng, log: log, mcp: mcpServer}
}

// Serve starts the MCP server on stdio and blocks until shutdown.
func (s *Server) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Msg("starting MCP server on stdio")
		if err := server.ServeStdio(s.mcp); err != nil {
			errCh <- fmt.Errorf("MCP server error: %w", err)
		}
	}()

	select {
	case <-sigCh:
		s.log.Info().Msg("received shutdown signal, stopping")
		return nil
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
