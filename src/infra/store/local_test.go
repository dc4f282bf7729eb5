package store

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"visionboard/src/core/domain"
)

func newTestStore(t *testing.T) *LocalStore {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	s, err := NewLocalStore(filepath.Join(t.TempDir(), "data", "test.db"), log)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLocalStoreRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	saved := domain.Profile{
		Name:       "Ada",
		Bio:        "Dream big",
		Location:   "Kyoto",
		Occupation: "Engineer",
		AvatarURL:  "data:image/png;base64,AAAA",
	}
	require.NoError(t, s.Save(ctx, "", saved))

	got, err := s.Load(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, saved, *got)
}

func TestLocalStoreMissingRecordIsNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Load(context.Background(), "")
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestLocalStoreSaveIsUpsert(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "", domain.Profile{Name: "first"}))
	require.NoError(t, s.Save(ctx, "", domain.Profile{Name: "second"}))

	got, err := s.Load(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "second", got.Name)

	// Only one row exists under the fixed key
	var count int
	require.NoError(t, s.db.QueryRowContext(ctx, `SELECT count(*) FROM kv`).Scan(&count))
	assert.Equal(t, 1, count)
}

func TestLocalStoreOmittedFieldsReadAsEmpty(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// A record written before a field existed has no such key in its JSON
	require.NoError(t, s.set(ctx, domain.LocalProfileKey, `{"name":"Ada"}`))

	got, err := s.Load(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "Ada", got.Name)
	assert.Equal(t, "", got.Bio)
	assert.Equal(t, "", got.Location)
	assert.Equal(t, "", got.Occupation)
	assert.Equal(t, "", got.AvatarURL)
}

func TestLocalStoreIgnoresUserID(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "u-1", domain.Profile{Name: "shared"}))

	got, err := s.Load(ctx, "u-2")
	require.NoError(t, err)
	assert.Equal(t, "shared", got.Name)
}
