// Package mcp exposes the sheet editor as Model Context Protocol tools
package mcp

import (
	"context"
	"log/slog"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	editorsvc "github.com/KirkDiggler/rpg-sheet/internal/services/editor"
)

const (
	serverName    = "rpg-sheet"
	serverVersion = "0.1.0"
)

// Config holds dependencies for the MCP server
type Config struct {
	EditorService editorsvc.Service
}

// Validate ensures all required dependencies are present
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	if c.EditorService == nil {
		return errors.InvalidArgument("editor service is required")
	}
	return nil
}

// Server hosts the sheet tools
type Server struct {
	mcpServer *sdk.Server
}

// New creates an MCP server with every sheet tool registered
func New(cfg *Config) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	mcpServer := sdk.NewServer(&sdk.Implementation{Name: serverName, Version: serverVersion}, nil)
	registerTools(mcpServer, cfg.EditorService)

	return &Server{mcpServer: mcpServer}, nil
}

// ServeStdio serves on stdin/stdout until ctx is cancelled or the client
// disconnects
func (s *Server) ServeStdio(ctx context.Context) error {
	return s.Serve(ctx, &sdk.StdioTransport{})
}

// Serve runs the server over transport
func (s *Server) Serve(ctx context.Context, transport sdk.Transport) error {
	slog.InfoContext(ctx, "MCP server starting", "name", serverName)

	if err := s.mcpServer.Run(ctx, transport); err != nil && ctx.Err() == nil {
		return errors.Wrap(err, "MCP server stopped")
	}
	return nil
}

func registerTools(server *sdk.Server, svc editorsvc.Service) {
	sdk.AddTool(server, ListCharactersTool(), ListCharactersHandler(svc))
	sdk.AddTool(server, GetSheetTool(), GetSheetHandler(svc))
	sdk.AddTool(server, RollCheckTool(), RollCheckHandler(svc))
	sdk.AddTool(server, ToggleSpellSlotTool(), ToggleSpellSlotHandler(svc))
}
