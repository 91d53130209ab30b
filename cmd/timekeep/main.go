package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"timekeep/internal/cli"
	"timekeep/internal/config"
)

func main() {
	// Load configuration from defaults and environment
	cfg, err := config.NewLoader().Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Commands run until done; the watch dashboard runs until interrupted
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	root := cli.NewRootCommand(cfg)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
