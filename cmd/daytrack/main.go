// Package main is the entry point for the daytrack CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"daytrack/internal/backend/sqlitestore"
	"daytrack/internal/cli"
	"daytrack/internal/commands"
	"daytrack/internal/config"
	"daytrack/internal/storage"
)

func main() {
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

	// Create store factory
	factory := func(ctx context.Context, cfg *config.Config, logger *zap.Logger) (storage.Store, error) {
		return sqlitestore.Open(ctx, cfg.DatabasePath(), logger)
	}

	// Create dispatcher
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory)

	// Run and exit with code
	code := dispatcher.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}
