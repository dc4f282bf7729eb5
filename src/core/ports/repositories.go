// Package ports defines interfaces (ports) that connect core domain to infrastructure.
// These interfaces follow the ports and adapters (hexagonal) architecture pattern.
//
// Ports are defined here in the core layer, while implementations (adapters)
// live under src/infra. This ensures the core has no dependency on
// infrastructure.
package ports

import (
	"context"

	"visionboard/src/core/domain"
)

// Repository is the base interface for all repositories.
// Concrete repositories should embed this and add entity-specific methods.
type Repository interface {
	// Health checks if the underlying storage is reachable.
	Health(ctx context.Context) error
}

// BoardRepository owns the four in-memory content collections. Mutations go
// through functional update callbacks so the read-modify-write cycle of a
// pure domain operation is applied atomically with respect to concurrent
// requests.
type BoardRepository interface {
	Repository

	// Snapshot returns a copy of the current board. Callers may hold and
	// iterate it without further synchronization.
	Snapshot(ctx context.Context) (domain.Board, error)

	// UpdateTheories applies fn to the current theory collection and stores
	// its result. If fn returns an error the collection is left unchanged
	// and the error is propagated.
	UpdateTheories(ctx context.Context, fn func([]domain.Theory) ([]domain.Theory, error)) ([]domain.Theory, error)

	// UpdateWishes applies fn to the current wish collection and stores its
	// result, with the same error contract as UpdateTheories.
	UpdateWishes(ctx context.Context, fn func([]domain.Wish) ([]domain.Wish, error)) ([]domain.Wish, error)
}

// ProfileStore persists the per-user profile singleton. Save is an upsert:
// it never produces duplicate records for one user. Load returns a not
// found error (domain.IsNotFound) when no record exists yet; absence is not
// a failure and callers map it to default empty values.
//
// The device-local implementation ignores userID and addresses a single
// fixed record instead.
type ProfileStore interface {
	Repository

	Load(ctx context.Context, userID string) (*domain.Profile, error)
	Save(ctx context.Context, userID string, profile domain.Profile) error
}
