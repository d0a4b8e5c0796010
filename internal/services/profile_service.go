package services

import (
	"errors"
	"path/filepath"
	"regexp"
	"strings"

	"gorm.io/gorm"

	apperrors "carteira/internal/errors"
	"carteira/internal/models"
	"carteira/internal/money"
)

// photoExtensions are the image types accepted for profile photos.
var photoExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]`)

// profileService handles profile business logic.
type profileService struct {
	db *gorm.DB
}

// NewProfileService creates a new ProfileServicer.
func NewProfileService(db *gorm.DB) ProfileServicer {
	return &profileService{db: db}
}

func newProfileView(u *models.User) *ProfileView {
	return &ProfileView{
		ID:                      u.ID,
		Username:                u.Username,
		Name:                    u.Name,
		Email:                   u.Email,
		CashBalance:             u.CashBalance,
		CashBalanceFormatted:    money.FormatCurrency(u.CashBalance),
		ReserveBalance:          u.ReserveBalance,
		ReserveBalanceFormatted: money.FormatCurrency(u.ReserveBalance),
		CashBank:                u.CashBank,
		ReserveBank:             u.ReserveBank,
		DarkMode:                u.DarkMode,
		PhotoURL:                u.PhotoURL,
	}
}

// GetProfile returns the user's profile.
func (s *profileService) GetProfile(userID string) (*ProfileView, error) {
	var user models.User
	if err := s.db.Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return newProfileView(&user), nil
}

// UpdateProfile applies the non-nil fields of in and returns the result.
func (s *profileService) UpdateProfile(userID string, in ProfileInput) (*ProfileView, error) {
	updates := make(map[string]interface{})
	if in.Name != nil {
		updates["name"] = strings.TrimSpace(*in.Name)
	}
	if in.Email != nil {
		updates["email"] = strings.TrimSpace(*in.Email)
	}
	if in.CashBank != nil {
		updates["cash_bank"] = strings.TrimSpace(*in.CashBank)
	}
	if in.ReserveBank != nil {
		updates["reserve_bank"] = strings.TrimSpace(*in.ReserveBank)
	}
	if in.DarkMode != nil {
		updates["dark_mode"] = *in.DarkMode
	}
	if in.CashBalance != nil {
		cents, err := money.ParseCents(*in.CashBalance)
		if err != nil {
			return nil, apperrors.ErrInvalidAmount
		}
		updates["cash_balance"] = cents
	}
	if in.ReserveBalance != nil {
		cents, err := money.ParseCents(*in.ReserveBalance)
		if err != nil {
			return nil, apperrors.ErrInvalidAmount
		}
		updates["reserve_balance"] = cents
	}

	if len(updates) > 0 {
		if err := s.db.Model(&models.User{}).Where("id = ?", userID).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return s.GetProfile(userID)
}

// PhotoFilename returns the stored file name for an uploaded photo, or false
// when the upload is not an accepted image type.
func (s *profileService) PhotoFilename(userID, uploadedName string) (string, bool) {
	base := filepath.Base(strings.ReplaceAll(uploadedName, "\\", "/"))
	if !photoExtensions[strings.ToLower(filepath.Ext(base))] {
		return "", false
	}
	return userID + "_" + unsafeFilenameChars.ReplaceAllString(base, "_"), true
}

// SetPhotoURL records where the user's photo is served from.
func (s *profileService) SetPhotoURL(userID, url string) error {
	if err := s.db.Model(&models.User{}).Where("id = ?", userID).Update("photo_url", url).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
