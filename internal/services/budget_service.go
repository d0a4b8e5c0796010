package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "carteira/internal/errors"
	"carteira/internal/ledger"
	"carteira/internal/logger"
	"carteira/internal/models"
	"carteira/internal/money"
	"carteira/internal/pagination"
)

// budgetService handles budget business logic.
type budgetService struct {
	db *gorm.DB
	// year is the year every budget is displayed under.
	year string
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB, year string) BudgetServicer {
	return &budgetService{db: db, year: year}
}

func (s *budgetService) resolve(in BudgetInput) (map[string]interface{}, error) {
	month, err := ledger.MonthLabel(in.Month)
	if err != nil {
		return nil, apperrors.ErrInvalidDate
	}

	amount, err := money.ParseCents(in.Amount)
	if err != nil {
		return nil, apperrors.ErrInvalidAmount
	}

	return map[string]interface{}{
		"month":    month,
		"category": strings.TrimSpace(in.Category),
		"amount":   amount,
	}, nil
}

// CreateBudget plans spending for a category in a month. Several budgets
// may share the same month and category.
func (s *budgetService) CreateBudget(userID string, in BudgetInput) (*models.Budget, error) {
	fields, err := s.resolve(in)
	if err != nil {
		return nil, err
	}

	budget := &models.Budget{
		UserID:   userID,
		Month:    fields["month"].(string),
		Category: fields["category"].(string),
		Amount:   fields["amount"].(int64),
	}
	if err := s.db.Create(budget).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return budget, nil
}

// GetUserBudgets returns a page of the user's budgets, latest month first.
func (s *budgetService) GetUserBudgets(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Budget], error) {
	page.Defaults()

	base := s.db.Model(&models.Budget{}).Where("user_id = ?", userID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var budgets []models.Budget
	if err := base.Order("month DESC, created_at DESC").Scopes(pagination.Paginate(page)).Find(&budgets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(budgets, page, totalItems)
	return &result, nil
}

// GetGroupedBudgets returns all of the user's budgets filed under the
// configured year and their month.
func (s *budgetService) GetGroupedBudgets(userID string) ([]ledger.YearSection[models.Budget], error) {
	var budgets []models.Budget
	if err := s.db.Where("user_id = ?", userID).Order("month DESC, created_at DESC").Find(&budgets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return ledger.GroupBudgets(budgets, s.year).Sections(), nil
}

// GetBudgetByID returns a budget by ID if it belongs to the user.
func (s *budgetService) GetBudgetByID(userID, budgetID string) (*models.Budget, error) {
	var budget models.Budget
	if err := s.db.Where("id = ? AND user_id = ?", budgetID, userID).First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBudgetNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &budget, nil
}

// UpdateBudget replaces the budget's fields.
func (s *budgetService) UpdateBudget(userID, budgetID string, in BudgetInput) (int64, error) {
	fields, err := s.resolve(in)
	if err != nil {
		return 0, err
	}

	result := s.db.Model(&models.Budget{}).
		Where("id = ? AND user_id = ?", budgetID, userID).
		Updates(fields)
	if result.Error != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		logger.Get().Debugw("budget update matched no rows", "budget_id", budgetID, "user_id", userID)
	}
	return result.RowsAffected, nil
}

// DeleteBudget removes the budget.
func (s *budgetService) DeleteBudget(userID, budgetID string) (int64, error) {
	result := s.db.Where("id = ? AND user_id = ?", budgetID, userID).Delete(&models.Budget{})
	if result.Error != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		logger.Get().Debugw("budget delete matched no rows", "budget_id", budgetID, "user_id", userID)
	}
	return result.RowsAffected, nil
}
