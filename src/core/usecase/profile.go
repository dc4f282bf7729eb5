package usecase

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"visionboard/src/core/domain"
	"visionboard/src/core/ports"
)

// ProfileService loads and saves the per-user profile record. Requests that
// carry a user id go to the remote store when one is configured; everything
// else uses the device-local singleton store. That fallback is the only
// storage policy the core knows about.
type ProfileService struct {
	local          ports.ProfileStore
	remote         ports.ProfileStore // nil when no database is configured
	maxAvatarBytes int64
	log            *slog.Logger

	// At most one save may be outstanding per profile key; concurrent saves
	// for the same key are rejected with a conflict error.
	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewProfileService creates a ProfileService. remote may be nil.
func NewProfileService(local, remote ports.ProfileStore, maxAvatarBytes int64, log *slog.Logger) *ProfileService {
	return &ProfileService{
		local:          local,
		remote:         remote,
		maxAvatarBytes: maxAvatarBytes,
		log:            log,
		inFlight:       make(map[string]struct{}),
	}
}

// store resolves which backend serves the given user id, along with the
// key used for the in-flight save guard.
func (s *ProfileService) store(userID string) (ports.ProfileStore, string) {
	if userID != "" && s.remote != nil {
		return s.remote, "user:" + userID
	}
	return s.local, "local"
}

// Load returns the stored profile, or a default all-empty record when none
// exists yet. Absence is not an error.
func (s *ProfileService) Load(ctx context.Context, userID string) (*domain.Profile, error) {
	store, _ := s.store(userID)
	profile, err := store.Load(ctx, userID)
	if err != nil {
		if domain.IsNotFound(err) {
			return &domain.Profile{}, nil
		}
		return nil, fmt.Errorf("load profile: %w", err)
	}
	return profile, nil
}

// Save upserts the profile record. A save racing an outstanding save for
// the same profile is rejected so duplicate submissions cannot interleave.
func (s *ProfileService) Save(ctx context.Context, userID string, profile domain.Profile) error {
	store, key := s.store(userID)

	s.mu.Lock()
	if _, busy := s.inFlight[key]; busy {
		s.mu.Unlock()
		return domain.NewConflictError("a save for this profile is already in progress")
	}
	s.inFlight[key] = struct{}{}
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.inFlight, key)
		s.mu.Unlock()
	}()

	if err := store.Save(ctx, userID, profile); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	s.log.Info("profile saved", "key", key)
	return nil
}

// SaveAvatar encodes an uploaded image to a data URI, stores it on the
// profile, and returns the updated record. The payload is capped and must
// sniff as an image type.
func (s *ProfileService) SaveAvatar(ctx context.Context, userID string, data []byte) (*domain.Profile, error) {
	if len(data) == 0 {
		return nil, domain.NewValidationError("avatar", "no image data")
	}
	if int64(len(data)) > s.maxAvatarBytes {
		return nil, domain.NewValidationError("avatar", fmt.Sprintf("image exceeds %d bytes", s.maxAvatarBytes))
	}
	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		return nil, domain.NewValidationError("avatar", "not an image: "+contentType)
	}

	profile, err := s.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile.AvatarURL = "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data)

	if err := s.Save(ctx, userID, *profile); err != nil {
		return nil, err
	}
	return profile, nil
}
