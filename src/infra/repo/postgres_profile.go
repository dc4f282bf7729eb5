package repo

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"visionboard/src/core/domain"
	"visionboard/src/infra/db"
)

// PostgresProfileStore persists one profile row per user id, with upsert
// semantics on save so a user never accumulates duplicate rows.
type PostgresProfileStore struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

// NewPostgresProfileStore constructs a profile store backed by Postgres.
func NewPostgresProfileStore(pg *db.Postgres, log *slog.Logger) *PostgresProfileStore {
	return &PostgresProfileStore{
		pool: pg.Pool,
		log:  log,
	}
}

func (s *PostgresProfileStore) Health(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Load fetches the profile row for userID. Absence maps to a not found
// domain error, which callers treat as "no profile yet".
func (s *PostgresProfileStore) Load(ctx context.Context, userID string) (*domain.Profile, error) {
	const q = `
		SELECT name, bio, location, occupation, avatar_url
		FROM profiles
		WHERE user_id = $1
	`
	var p domain.Profile
	err := s.pool.QueryRow(ctx, q, userID).Scan(&p.Name, &p.Bio, &p.Location, &p.Occupation, &p.AvatarURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("profile")
		}
		return nil, err
	}
	return &p, nil
}

// Save upserts the profile row keyed on user_id.
func (s *PostgresProfileStore) Save(ctx context.Context, userID string, profile domain.Profile) error {
	const q = `
		INSERT INTO profiles (user_id, name, bio, location, occupation, avatar_url, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, now())
		ON CONFLICT (user_id)
		DO UPDATE SET
			name = EXCLUDED.name,
			bio = EXCLUDED.bio,
			location = EXCLUDED.location,
			occupation = EXCLUDED.occupation,
			avatar_url = EXCLUDED.avatar_url,
			updated_at = now()
	`
	_, err := s.pool.Exec(ctx, q, userID, profile.Name, profile.Bio, profile.Location, profile.Occupation, profile.AvatarURL)
	return err
}
