package db

import (
	"database/sql"
	"embed"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"visionboard/src/infra/config"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// RunMigrations applies pending migrations from the embedded filesystem.
// Goose works over database/sql, so a short-lived stdlib connection is
// opened alongside the pgx pool.
func RunMigrations(cfg config.DatabaseConfig, log *slog.Logger) error {
	conn, err := sql.Open("pgx", cfg.DSN())
	if err != nil {
		return fmt.Errorf("failed to open migration connection: %w", err)
	}
	defer conn.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	goose.SetBaseFS(migrationsFS)

	if err := goose.Up(conn, "migrations"); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("database migrations applied")
	return nil
}
