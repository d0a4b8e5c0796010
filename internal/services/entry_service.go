package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "carteira/internal/errors"
	"carteira/internal/ledger"
	"carteira/internal/logger"
	"carteira/internal/models"
	"carteira/internal/money"
	"carteira/internal/pagination"
)

// entryService handles ledger entry business logic.
type entryService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewEntryService creates a new EntryServicer.
func NewEntryService(db *gorm.DB) EntryServicer {
	return &entryService{db: db, now: time.Now}
}

// resolve validates in and returns the columns it maps to.
func (s *entryService) resolve(in EntryInput) (map[string]interface{}, error) {
	if !in.Type.Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Tipo deve ser income ou expense.")
	}

	amount, err := money.ParseCents(in.Amount)
	if err != nil {
		return nil, apperrors.ErrInvalidAmount
	}

	date, err := s.entryDate(in)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"date":        date,
		"description": strings.TrimSpace(in.Description),
		"category":    strings.TrimSpace(in.Category),
		"type":        in.Type,
		"amount":      amount,
	}, nil
}

// entryDate picks the explicit date when given, otherwise the first day of
// the selected month in the current year.
func (s *entryService) entryDate(in EntryInput) (string, error) {
	if in.Date != "" {
		if !ledger.ValidDate(in.Date) {
			return "", apperrors.ErrInvalidDate
		}
		return in.Date, nil
	}

	label, err := ledger.MonthLabel(in.Month)
	if err != nil {
		return "", apperrors.ErrInvalidDate
	}
	period := ledger.PeriodOf(s.now())
	period.Month = label
	return period.FirstDay(), nil
}

// CreateEntry records a new income or expense.
func (s *entryService) CreateEntry(userID string, in EntryInput) (*models.LedgerEntry, error) {
	fields, err := s.resolve(in)
	if err != nil {
		return nil, err
	}

	entry := &models.LedgerEntry{
		UserID:      userID,
		Date:        fields["date"].(string),
		Description: fields["description"].(string),
		Category:    fields["category"].(string),
		Type:        in.Type,
		Amount:      fields["amount"].(int64),
	}
	if err := s.db.Create(entry).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return entry, nil
}

// GetUserEntries returns a page of the user's entries, most recent first.
func (s *entryService) GetUserEntries(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.LedgerEntry], error) {
	page.Defaults()

	base := s.db.Model(&models.LedgerEntry{}).Where("user_id = ?", userID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var entries []models.LedgerEntry
	if err := base.Order("date DESC, created_at DESC").Scopes(pagination.Paginate(page)).Find(&entries).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(entries, page, totalItems)
	return &result, nil
}

// GetGroupedEntries returns all of the user's entries filed by year and month.
func (s *entryService) GetGroupedEntries(userID string) ([]ledger.YearSection[models.LedgerEntry], error) {
	var entries []models.LedgerEntry
	if err := s.db.Where("user_id = ?", userID).Order("date DESC, created_at DESC").Find(&entries).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	grouped, err := ledger.GroupEntries(entries)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return grouped.Sections(), nil
}

// GetEntryByID returns an entry if it belongs to the user.
func (s *entryService) GetEntryByID(userID, entryID string) (*models.LedgerEntry, error) {
	var entry models.LedgerEntry
	if err := s.db.Where("id = ? AND user_id = ?", entryID, userID).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEntryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &entry, nil
}

// UpdateEntry replaces the entry's fields.
func (s *entryService) UpdateEntry(userID, entryID string, in EntryInput) (int64, error) {
	fields, err := s.resolve(in)
	if err != nil {
		return 0, err
	}

	result := s.db.Model(&models.LedgerEntry{}).
		Where("id = ? AND user_id = ?", entryID, userID).
		Updates(fields)
	if result.Error != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		logger.Get().Debugw("entry update matched no rows", "entry_id", entryID, "user_id", userID)
	}
	return result.RowsAffected, nil
}

// DeleteEntry removes the entry.
func (s *entryService) DeleteEntry(userID, entryID string) (int64, error) {
	result := s.db.Where("id = ? AND user_id = ?", entryID, userID).Delete(&models.LedgerEntry{})
	if result.Error != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		logger.Get().Debugw("entry delete matched no rows", "entry_id", entryID, "user_id", userID)
	}
	return result.RowsAffected, nil
}
