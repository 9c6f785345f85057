// Package main is the entry point for the todo CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"todo/internal/backend/memory"
	"todo/internal/cli"
	"todo/internal/commands"
	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/logging"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// The session may be blocked reading stdin, so an interrupt exits directly.
	// Tasks are not persisted, there is nothing to flush.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
		os.Exit(exitcode.Interrupted)
	}()

	// config.yaml decides the session-wide logging. A per-command --debug
	// covers dispatch and store logs for that command only.
	debug := false
	if cfg, err := config.New(""); err == nil {
		debug = cfg.Debug
	}
	logger := logging.New(debug, os.Stderr)
	defer func() { _ = logger.Sync() }()

	store := memory.New(memory.WithLogger(logger.Named("store")))
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, store)

	args := os.Args[1:]
	if len(args) > 0 {
		return dispatcher.Run(ctx, args, os.Stdout, os.Stderr)
	}

	session := cli.NewSession(dispatcher, os.Stdout, os.Stderr, logger.Named("session"))
	logger.Debug("starting session", zap.String("session", session.ID))
	return session.Run(ctx, os.Stdin)
}
