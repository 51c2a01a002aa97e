package main

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/danlite/as3pkg/internal/debug"
	"github.com/danlite/as3pkg/internal/mcp"
)

func mcpCommand(c *cli.Context) error {
	// stdout carries the protocol from here on
	debug.SetMCPMode(true)

	if c.Bool("verbose") {
		logPath, err := debug.InitDebugLogFile()
		if err != nil {
			return fmt.Errorf("failed to open debug log: %w", err)
		}
		defer func() { _ = debug.CloseDebugLog() }()
		fmt.Fprintf(c.App.ErrWriter, "Debug log: %s\n", logPath)
	}

	cfg, err := loadConfigWithOverrides(c)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	server, err := mcp.NewServer(cfg)
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	if err := server.Start(c.Context); err != nil && c.Context.Err() == nil {
		return fmt.Errorf("MCP server error: %w", err)
	}
	return nil
}
