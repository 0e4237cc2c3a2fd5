package main

import (
	"context"
	"fmt"
	"time"

	"github.com/devhubhq/server/devhub/listings"
	"github.com/devhubhq/server/devhub/users"
	"github.com/devhubhq/server/internal/config"
	"github.com/devhubhq/server/internal/githubapi"
	"github.com/devhubhq/server/internal/storage"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// creates and configures a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	ctx := context.Background()

	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	// keep the pool small; the whole API is short synchronous queries
	poolConfig.MaxConns = 5
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = 30 * time.Minute
	poolConfig.MaxConnIdleTime = 5 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	db, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create database pool: %w", err)
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// no migration system; the schema is created idempotently on boot
	if err := storage.Bootstrap(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	server := &Server{
		db:          db,
		config:      cfg,
		userRepo:    users.NewRepository(db),
		listingRepo: listings.NewRepository(db),
		github:      githubapi.NewClient(),
		router:      gin.Default(),
	}

	RegisterRoutes(server.router, server)

	return server, nil
}
