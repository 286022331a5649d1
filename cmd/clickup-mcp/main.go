// Package main is the entry point for the clickup-mcp server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/teren-papercutlabs/clickup-mcp/internal/backend/clickup"
	"github.com/teren-papercutlabs/clickup-mcp/internal/config"
	"github.com/teren-papercutlabs/clickup-mcp/internal/exitcode"
	"github.com/teren-papercutlabs/clickup-mcp/internal/server"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		return exitcode.ConfigError
	}

	// Stdout carries the protocol framing; everything else goes to stderr.
	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	client, err := clickup.New(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		return exitcode.ConfigError
	}

	s := server.New(client)
	logger.Info("serving on stdio", "version", server.Version)

	stdio := mcpserver.NewStdioServer(s)
	if err := stdio.Listen(ctx, os.Stdin, os.Stdout); err != nil && ctx.Err() == nil {
		logger.Error("serve failed", "err", err)
		return exitcode.ServerError
	}
	return exitcode.Success
}
