package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/stevenarias/bankcore/internal/config"
)

// databaseHandle owns the connection pool for the application lifetime.
type databaseHandle struct {
	pool   *sql.DB
	logger *slog.Logger
}

// openDatabase establishes the postgres connection pool and verifies it
// with a ping.
func openDatabase(cfg *config.Config, logger *slog.Logger) (*databaseHandle, error) {
	db, err := sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("Database connection established")
	return &databaseHandle{pool: db, logger: logger}, nil
}

func (h *databaseHandle) close() {
	if err := h.pool.Close(); err != nil {
		h.logger.Error("failed to close database connection", slog.Any("error", err))
	}
}
