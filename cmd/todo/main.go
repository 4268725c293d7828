// Package main is the entry point for the todo CLI.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"todo/internal/backend/httpapi"
	"todo/internal/cli"
	"todo/internal/commands"
	"todo/internal/config"
	"todo/internal/service"
)

func main() {
	// Create context that cancels on interrupt
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	factory := func(ctx context.Context, cfg *config.Config) (service.Service, error) {
		var debug *log.Logger
		if cfg.Debug {
			// the ui command redirects the standard logger to its log file
			debug = log.Default()
		}
		return httpapi.New(ctx, httpapi.Options{
			BaseURL: cfg.BaseURL,
			Token:   cfg.Token,
			Timeout: cfg.Timeout,
			Debug:   debug,
		})
	}

	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory)

	code := dispatcher.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
