package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"visionboard/src/app/http/dto"
	"visionboard/src/app/http/response"
	"visionboard/src/app/middleware"
	"visionboard/src/core/domain"
	"visionboard/src/core/usecase"
)

// ProfileHandler handles profile load/save and avatar upload.
//
// The X-User-Id header selects the remote per-user record; without it the
// device-local singleton record is used. The header is trusted passthrough,
// not authentication.
type ProfileHandler struct {
	profileService *usecase.ProfileService
}

func NewProfileHandler(profileService *usecase.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// Get returns the stored profile, or all-empty defaults when none exists.
// GET /v1/profile
func (h *ProfileHandler) Get(c *gin.Context) {
	profile, err := h.profileService.Load(c.Request.Context(), userID(c))
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, profile)
}

// Save upserts the profile record.
// PUT /v1/profile
func (h *ProfileHandler) Save(c *gin.Context) {
	var req dto.SaveProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid payload", middleware.GetRequestID(c))
		return
	}

	profile := domain.Profile{
		Name:       req.Name,
		Bio:        req.Bio,
		Location:   req.Location,
		Occupation: req.Occupation,
		AvatarURL:  req.AvatarURL,
	}
	if err := h.profileService.Save(c.Request.Context(), userID(c), profile); err != nil {
		c.Error(err)
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, profile)
}

// SaveAvatar accepts a multipart image upload, stores it on the profile as
// a data URI, and returns the updated record.
// POST /v1/profile/avatar
func (h *ProfileHandler) SaveAvatar(c *gin.Context) {
	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		response.BadRequest(c, "missing avatar file", middleware.GetRequestID(c))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, "unreadable avatar file", middleware.GetRequestID(c))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		response.BadRequest(c, "unreadable avatar file", middleware.GetRequestID(c))
		return
	}

	profile, err := h.profileService.SaveAvatar(c.Request.Context(), userID(c), data)
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": profile})
}

func userID(c *gin.Context) string {
	return c.GetHeader("X-User-Id")
}
