// Package main is the entry point for the taskzord CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-logr/logr"

	"taskzord/internal/cli"
	"taskzord/internal/commands"
	"taskzord/internal/config"
	"taskzord/internal/service"
	"taskzord/internal/store"
)

func main() {
	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())

	// Handle signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Every session starts from an empty store
	factory := func(ctx context.Context, cfg *config.Config, log logr.Logger) (service.Service, error) {
		return service.NewLocal(store.New(), log), nil
	}

	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory, os.Stdin)

	code := dispatcher.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	dispatcher.Close()
	cancel()
	os.Exit(code)
}
