package services

import (
	"sort"

	"gorm.io/gorm"

	apperrors "carteira/internal/errors"
	"carteira/internal/ledger"
	"carteira/internal/models"
)

// chartService builds chart series from ledger entries.
type chartService struct {
	db *gorm.DB
}

// NewChartService creates a new ChartServicer.
func NewChartService(db *gorm.DB) ChartServicer {
	return &chartService{db: db}
}

// GetExpensesByCategory sums the user's expenses per category.
func (s *chartService) GetExpensesByCategory(userID, year, month string) (*ChartData, error) {
	var filter *ledger.Period
	if year != "" && month != "" {
		p, err := ledger.NewPeriod(year, month)
		if err != nil {
			return nil, apperrors.ErrInvalidDate
		}
		filter = &p
	}

	var entries []models.LedgerEntry
	if err := s.db.Where("user_id = ? AND type = ?", userID, string(models.EntryTypeExpense)).Find(&entries).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	totals, err := ledger.ExpensesByCategory(entries, filter)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	data := &ChartData{
		Labels: make([]string, 0, len(totals)),
		Values: make([]int64, 0, len(totals)),
	}
	for category := range totals {
		data.Labels = append(data.Labels, category)
	}
	sort.Strings(data.Labels)
	for _, category := range data.Labels {
		data.Values = append(data.Values, totals[category])
	}
	return data, nil
}
