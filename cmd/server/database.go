package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/blissful-trails/trails-api/internal/config"
	"github.com/blissful-trails/trails-api/internal/platform/mongodb"
)

// setupAppDatabase connects to MongoDB and verifies the deployment answers.
// Returns the client if successful, or an error if the connection fails.
func setupAppDatabase(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*mongo.Client, error) {
	timeout := time.Duration(cfg.Database.ConnectTimeoutSeconds) * time.Second

	client, err := mongodb.Connect(ctx, cfg.Database.URL, timeout, logger.With("component", "mongodb"))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	logger.Info("Database connection established", "database", cfg.Database.Name)
	return client, nil
}
