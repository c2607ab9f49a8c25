// Package mcp exposes the synthesis pipeline over the Model Context Protocol.
package mcp

import (
	"context"
	"log/slog"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/seedcode/briefforge/internal/coordinator"
	"github.com/seedcode/briefforge/internal/domain/brief"
	"github.com/seedcode/briefforge/internal/domain/run"
)

// CoordinatorService defines pipeline operations needed by MCP.
type CoordinatorService interface {
	Decompose(ctx context.Context, b brief.ProjectBrief) (*coordinator.Decomposition, error)
	Execute(ctx context.Context, b brief.ProjectBrief) (*coordinator.Execution, error)
}

// RunService defines run history operations needed by MCP.
type RunService interface {
	Get(ctx context.Context, id string) (*run.Run, error)
	List(ctx context.Context, opts run.ListOptions) ([]run.Summary, error)
}

// Services contains all domain services needed by MCP.
type Services struct {
	Coordinator CoordinatorService
	Runs        RunService
}

// Config contains server configuration.
type Config struct {
	Services      Services
	AuthToken     string // empty disables auth
	TransportMode string // "stdio" or "http"
	Logger        *slog.Logger
}

// NewServer creates and configures an MCP server with all tools and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "briefforge",
		Version: "0.1.0",
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	registerDocResources(server)

	// Stdio mode is local-only; auth applies to HTTP only.
	if cfg.TransportMode != "stdio" && cfg.AuthToken != "" {
		server.AddReceivingMiddleware(authMiddleware(cfg.AuthToken))
	}
	server.AddReceivingMiddleware(wireLogMiddleware(cfg.Logger, wireReceive))
	server.AddSendingMiddleware(wireLogMiddleware(cfg.Logger, wireSend))

	registerTools(server, cfg.Services)

	return server
}
