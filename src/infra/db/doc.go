// Package db provides database connection management for the remote
// profile store.
//
// This package is responsible for:
//   - PostgreSQL connection pool initialization (pgx)
//   - Connection health checks
//   - Applying embedded goose migrations at startup
//
// Example usage:
//
//	db, err := db.New(ctx, cfg.Database, log)
//	if err != nil {
//	    return err
//	}
//	defer db.Close()
package db
