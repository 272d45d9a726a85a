package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheet/internal/config"
	"github.com/KirkDiggler/rpg-sheet/internal/handlers/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve sheet tools over MCP on stdio",
	Long:  `Serve get_sheet, roll_check, toggle_spell_slot and list_characters as Model Context Protocol tools on stdin/stdout.`,
	RunE:  runMCP,
}

func runMCP(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// stdout carries the protocol
	setupLogging(os.Stderr, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	editorService, cleanup, err := buildEditor(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	server, err := mcp.New(&mcp.Config{EditorService: editorService})
	if err != nil {
		return err
	}

	return server.ServeStdio(ctx)
}
