// Package main implements the entry point for the trails API server, the
// backend of the Blissful Trails tour booking site. It serves packages,
// bookings, guides, stories and payment intents over HTTP from MongoDB.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

// main is the entry point for the trails-api server.
func main() {
	if err := run(); err != nil {
		log.Fatalf("trails-api: %v", err)
	}
}

// run loads configuration, sets up logging, connects to the database,
// wires the application and serves until SIGINT or SIGTERM.
func run() error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	logger, err := setupAppLogger(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := setupAppDatabase(ctx, cfg, logger)
	if err != nil {
		return err
	}

	app, err := newApplication(ctx, cfg, logger, client)
	if err != nil {
		if discErr := client.Disconnect(context.Background()); discErr != nil {
			logger.Error("failed to disconnect database client", slog.String("error", discErr.Error()))
		}
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}
