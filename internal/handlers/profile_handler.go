package handlers

import (
	"net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/gin-gonic/gin"

	apperrors "carteira/internal/errors"
	"carteira/internal/logger"
	"carteira/internal/services"
)

// ProfileHandler handles profile requests and photo uploads.
type ProfileHandler struct {
	profileService services.ProfileServicer
	uploadDir      string
	photoURLPrefix string
}

// NewProfileHandler creates a new ProfileHandler. Photos are written to
// uploadDir and served under photoURLPrefix.
func NewProfileHandler(profileService services.ProfileServicer, uploadDir, photoURLPrefix string) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		uploadDir:      uploadDir,
		photoURLPrefix: photoURLPrefix,
	}
}

// UpdateProfileRequest holds optional profile changes.
type UpdateProfileRequest struct {
	Name           *string     `json:"name" binding:"omitempty,max=100"`
	Email          *string     `json:"email" binding:"omitempty,max=255"`
	CashBalance    *AmountText `json:"cash_balance" swaggertype:"string" example:"1500,00"`
	ReserveBalance *AmountText `json:"reserve_balance" swaggertype:"string" example:"300,00"`
	CashBank       *string     `json:"cash_bank" binding:"omitempty,max=100"`
	ReserveBank    *string     `json:"reserve_bank" binding:"omitempty,max=100"`
	DarkMode       *bool       `json:"dark_mode"`
}

// GetProfile returns the user's profile
// @Summary     Get user profile
// @Description Get the authenticated user's profile and balances
// @Tags        profile
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.ProfileView "User profile"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "User not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	view, err := h.profileService.GetProfile(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": view})
}

// UpdateProfile applies profile changes
// @Summary     Update user profile
// @Description Update name, email, balances, bank labels or dark mode. Omitted fields are unchanged.
// @Tags        profile
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body UpdateProfileRequest true "Profile changes"
// @Success     200 {object} services.ProfileView "Updated profile"
// @Failure     400 {object} ErrorResponse "Invalid input or amount"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /profile [put]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	view, err := h.profileService.UpdateProfile(userID, services.ProfileInput{
		Name:           req.Name,
		Email:          req.Email,
		CashBalance:    optionalAmount(req.CashBalance),
		ReserveBalance: optionalAmount(req.ReserveBalance),
		CashBank:       req.CashBank,
		ReserveBank:    req.ReserveBank,
		DarkMode:       req.DarkMode,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": view})
}

// UploadPhoto stores a new profile photo
// @Summary     Upload profile photo
// @Description Upload a png, jpg, jpeg or gif photo. Other file types are ignored and the profile is returned unchanged.
// @Tags        profile
// @Accept      multipart/form-data
// @Produce     json
// @Security    BearerAuth
// @Param       photo formData file true "Photo"
// @Success     200 {object} services.ProfileView "Profile"
// @Failure     400 {object} ErrorResponse "No file sent"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /profile/photo [post]
func (h *ProfileHandler) UploadPhoto(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	file, err := c.FormFile("photo")
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Envie um arquivo no campo photo."))
		return
	}

	if name, ok := h.profileService.PhotoFilename(userID, file.Filename); ok {
		if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
			respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
			return
		}
		if err := c.SaveUploadedFile(file, filepath.Join(h.uploadDir, name)); err != nil {
			respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
			return
		}
		if err := h.profileService.SetPhotoURL(userID, path.Join(h.photoURLPrefix, name)); err != nil {
			respondWithError(c, err)
			return
		}
	} else {
		logger.Get().Debugw("ignored profile photo with unsupported type", "user_id", userID, "filename", file.Filename)
	}

	view, err := h.profileService.GetProfile(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": view})
}
