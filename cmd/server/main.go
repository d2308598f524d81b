// Package main implements the entry point for the bankcore API server,
// a REST backend for user registration, bank-account management and
// balance movements.
package main

import (
	"context"
	"log"
	"log/slog"

	"github.com/stevenarias/bankcore/internal/config"
	"github.com/stevenarias/bankcore/internal/platform/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.Setup(logger.Config{Level: cfg.Server.LogLevel})
	if err != nil {
		log.Fatalf("Failed to set up logger: %v", err)
	}

	slog.Info("Server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel))

	app, err := newApplication(cfg, appLogger)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer app.close()

	if err := app.startHTTPServer(context.Background()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
