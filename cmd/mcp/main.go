// Package main is the entry point for the Futurama quotes MCP server.
//
// The server exposes the quote operations as MCP tools. It can serve an
// in-process quote store (local backend) or proxy to a running quotes
// API (remote backend), over stdio or streamable HTTP.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jsamuelsen/futurama-quotes/internal/adapters/clients"
	"github.com/jsamuelsen/futurama-quotes/internal/adapters/clients/acl"
	"github.com/jsamuelsen/futurama-quotes/internal/adapters/mcp"
	"github.com/jsamuelsen/futurama-quotes/internal/adapters/storage/memory"
	"github.com/jsamuelsen/futurama-quotes/internal/app"
	"github.com/jsamuelsen/futurama-quotes/internal/platform/config"
	"github.com/jsamuelsen/futurama-quotes/internal/platform/logging"
	"github.com/jsamuelsen/futurama-quotes/internal/ports"
)

// Build-time variables, injected via ldflags.
var (
	// Version is the semantic version of the service.
	Version = "dev"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// Logs go to stderr: stdout belongs to the protocol when running
	// the stdio transport.
	logger := logging.NewWithWriter(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name + "-mcp",
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	}, os.Stderr)
	logging.SetDefault(logger)

	api, err := buildBackend(ctx, cfg, logger)
	if err != nil {
		return err
	}

	server, err := mcp.NewServer(mcp.ServerConfig{
		API:     api,
		Name:    cfg.App.Name,
		Version: Version,
		Logger:  logger,
	})
	if err != nil {
		return fmt.Errorf("creating MCP server: %w", err)
	}

	logger.Info("starting MCP server",
		slog.String("transport", cfg.MCP.Transport),
		slog.String("backend", cfg.MCP.Backend),
	)

	if cfg.MCP.Transport == "http" {
		return server.RunHTTP(ctx, cfg.MCP.HTTPAddr)
	}

	return server.Run(ctx)
}

// buildBackend selects the quote API the tools call: an in-process
// seeded store, or a remote quotes API behind the instrumented client.
func buildBackend(ctx context.Context, cfg *config.Config, logger *slog.Logger) (ports.QuoteAPI, error) {
	if cfg.MCP.Backend == "remote" {
		httpClient, err := clients.New(&clients.Config{
			BaseURL:     cfg.MCP.APIBaseURL,
			ServiceName: "quotes-api",
			Timeout:     cfg.Client.Timeout,
			Retry:       cfg.Client.Retry,
			Circuit:     cfg.Client.CircuitBreaker,
			Transport:   cfg.Client.Transport,
			Logger:      logger,
		})
		if err != nil {
			return nil, fmt.Errorf("creating HTTP client: %w", err)
		}

		return acl.NewQuotesAPIClient(httpClient), nil
	}

	store := memory.New(memory.WithLogger(logger))
	if cfg.Store.Seed {
		if err := store.Seed(ctx); err != nil {
			return nil, fmt.Errorf("seeding quote store: %w", err)
		}
	}

	return app.NewQuoteService(app.QuoteServiceConfig{
		Repository: store,
		Logger:     logger,
	}), nil
}
