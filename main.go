// Package main is the entry point for the vision board API server.
// It initializes all dependencies and starts the HTTP server.
package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"visionboard/src/app/server"
	"visionboard/src/core/ports"
	"visionboard/src/infra/config"
	"visionboard/src/infra/db"
	"visionboard/src/infra/logger"
	"visionboard/src/infra/repo"
	"visionboard/src/infra/store"
)

func main() {
	if err := run(); err != nil {
		log.Printf("fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env if present, then configuration from environment variables
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Initialize logger
	log := logger.New(cfg.Log)
	log.Info("starting application",
		"port", cfg.Server.Port,
		"log_level", cfg.Log.Level,
		"db_enabled", cfg.Database.Enabled,
	)

	// Board collections live in memory, seeded once per process
	boardRepo := repo.NewMemoryBoardRepository(repo.SeedBoard(), log)

	// Device-local profile store (always available)
	localStore, err := store.NewLocalStore(cfg.Storage.LocalPath, log)
	if err != nil {
		return err
	}
	defer localStore.Close()

	// Remote profile store, only when a database is configured
	var remoteStore ports.ProfileStore
	if cfg.Database.Enabled {
		pg, err := db.New(context.Background(), cfg.Database, log)
		if err != nil {
			return err
		}
		defer pg.Close()
		remoteStore = repo.NewPostgresProfileStore(pg, log)
	}

	// Create and run HTTP server
	srv := server.New(cfg, log, boardRepo, localStore, remoteStore)

	// Run blocks until shutdown signal is received
	return srv.Run()
}
