// Package mcp adapts the quote API to the Model Context Protocol so
// assistants can browse and edit quotes through tool calls. The server
// is transport-agnostic: it runs over stdio as a subprocess or over
// streamable HTTP behind a listener.
package mcp

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jsamuelsen/futurama-quotes/internal/ports"
)

// ServerConfig configures the MCP server.
type ServerConfig struct {
	// API is the quote backend the tools call. Required.
	API ports.QuoteAPI

	// Name and Version identify the server to MCP clients.
	Name    string
	Version string

	// Logger is optional; slog.Default() is used when nil.
	Logger *slog.Logger
}

// Server exposes quote operations as MCP tools.
type Server struct {
	server *mcp.Server
	api    ports.QuoteAPI
	logger *slog.Logger
}

// NewServer creates an MCP server with the six quote tools registered.
func NewServer(cfg ServerConfig) (*Server, error) {
	if cfg.API == nil {
		return nil, errors.New("quote API is required")
	}

	if cfg.Name == "" {
		cfg.Name = "futurama-quotes"
	}

	if cfg.Version == "" {
		cfg.Version = "dev"
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		api:    cfg.API,
		logger: logger.With(slog.String("component", "mcp.Server")),
	}

	s.server = mcp.NewServer(
		&mcp.Implementation{
			Name:    cfg.Name,
			Version: cfg.Version,
		},
		&mcp.ServerOptions{
			HasTools: true,
		},
	)

	s.registerTools()

	return s, nil
}

// Run serves MCP over stdio. It blocks until the client disconnects or
// the context is canceled.
func (s *Server) Run(ctx context.Context) error {
	s.logger.InfoContext(ctx, "starting MCP server on stdio")

	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// Handler returns an http.Handler for MCP's streamable HTTP transport.
func (s *Server) Handler() http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.server
	}, nil)
}

// RunHTTP serves MCP over streamable HTTP on the given address.
// It blocks until the context is canceled, then shuts down gracefully.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:    addr,
		Handler: s.Handler(),
	}

	errCh := make(chan error, 1)

	go func() {
		s.logger.InfoContext(ctx, "starting MCP server on http", slog.String("addr", addr))

		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return httpServer.Shutdown(context.WithoutCancel(ctx))
	}
}
