package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"visionboard/src/core/domain"
	"visionboard/src/core/usecase"
)

// memoryProfileStore is a minimal ProfileStore for handler tests.
type memoryProfileStore struct {
	profiles map[string]domain.Profile
}

func (m *memoryProfileStore) Health(context.Context) error { return nil }

func (m *memoryProfileStore) Load(_ context.Context, userID string) (*domain.Profile, error) {
	p, ok := m.profiles[userID]
	if !ok {
		return nil, domain.NewNotFoundError("profile")
	}
	return &p, nil
}

func (m *memoryProfileStore) Save(_ context.Context, userID string, p domain.Profile) error {
	m.profiles[userID] = p
	return nil
}

func newProfileRouter(t *testing.T) (*gin.Engine, *memoryProfileStore, *memoryProfileStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	local := &memoryProfileStore{profiles: make(map[string]domain.Profile)}
	remote := &memoryProfileStore{profiles: make(map[string]domain.Profile)}
	h := NewProfileHandler(usecase.NewProfileService(local, remote, 1024, log))

	router := gin.New()
	router.GET("/v1/profile", h.Get)
	router.PUT("/v1/profile", h.Save)
	router.POST("/v1/profile/avatar", h.SaveAvatar)
	return router, local, remote
}

func TestProfileGetDefaultsWhenMissing(t *testing.T) {
	router, _, _ := newProfileRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/profile", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data domain.Profile `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, domain.Profile{}, body.Data)
}

func TestProfileSaveRoundTrip(t *testing.T) {
	router, local, remote := newProfileRouter(t)

	payload := `{"name":"Ada","bio":"Dream big","location":"Kyoto","occupation":"Engineer"}`
	req := httptest.NewRequest(http.MethodPut, "/v1/profile", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	// No user id: saved locally, not remotely
	assert.Len(t, local.profiles, 1)
	assert.Empty(t, remote.profiles)

	req = httptest.NewRequest(http.MethodGet, "/v1/profile", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data domain.Profile `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Ada", body.Data.Name)
	assert.Equal(t, "Kyoto", body.Data.Location)
	assert.Equal(t, "", body.Data.AvatarURL)
}

func TestProfileSaveWithUserIDGoesRemote(t *testing.T) {
	router, local, remote := newProfileRouter(t)

	req := httptest.NewRequest(http.MethodPut, "/v1/profile", strings.NewReader(`{"name":"Remote"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-Id", "u-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, local.profiles)
	assert.Equal(t, "Remote", remote.profiles["u-1"].Name)
}

func TestProfileAvatarUpload(t *testing.T) {
	router, local, _ := newProfileRouter(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("avatar", "avatar.png")
	require.NoError(t, err)
	_, err = part.Write([]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0})
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/v1/profile/avatar", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(local.profiles[""].AvatarURL, "data:image/png;base64,"))
}

func TestProfileAvatarRejectsNonImage(t *testing.T) {
	router, _, _ := newProfileRouter(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("avatar", "avatar.txt")
	require.NoError(t, err)
	_, err = part.Write([]byte("plain text, not an image"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/v1/profile/avatar", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
}
