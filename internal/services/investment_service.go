package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "carteira/internal/errors"
	"carteira/internal/logger"
	"carteira/internal/models"
	"carteira/internal/money"
	"carteira/internal/pagination"
)

// investmentService handles investment business logic.
type investmentService struct {
	db *gorm.DB
}

// NewInvestmentService creates a new InvestmentServicer.
func NewInvestmentService(db *gorm.DB) InvestmentServicer {
	return &investmentService{db: db}
}

func (s *investmentService) resolve(in InvestmentInput) (map[string]interface{}, error) {
	if in.Quantity < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Quantidade não pode ser negativa.")
	}
	price, err := money.ParseCents(in.UnitPrice)
	if err != nil {
		return nil, apperrors.ErrInvalidAmount
	}
	return map[string]interface{}{
		"kind":       strings.TrimSpace(in.Kind),
		"code":       strings.ToUpper(strings.TrimSpace(in.Code)),
		"quantity":   in.Quantity,
		"unit_price": price,
	}, nil
}

// CreateInvestment records a holding.
func (s *investmentService) CreateInvestment(userID string, in InvestmentInput) (*models.Investment, error) {
	fields, err := s.resolve(in)
	if err != nil {
		return nil, err
	}

	inv := &models.Investment{
		UserID:    userID,
		Kind:      fields["kind"].(string),
		Code:      fields["code"].(string),
		Quantity:  in.Quantity,
		UnitPrice: fields["unit_price"].(int64),
	}
	if err := s.db.Create(inv).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return inv, nil
}

// GetUserInvestments returns a page of the user's holdings ordered by code.
func (s *investmentService) GetUserInvestments(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Investment], error) {
	page.Defaults()

	base := s.db.Model(&models.Investment{}).Where("user_id = ?", userID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var investments []models.Investment
	if err := base.Order("code ASC").Scopes(pagination.Paginate(page)).Find(&investments).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(investments, page, totalItems)
	return &result, nil
}

// GetInvestmentByID returns a holding if it belongs to the user.
func (s *investmentService) GetInvestmentByID(userID, investmentID string) (*models.Investment, error) {
	var inv models.Investment
	if err := s.db.Where("id = ? AND user_id = ?", investmentID, userID).First(&inv).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvestmentNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &inv, nil
}

// UpdateInvestment replaces the holding's fields.
func (s *investmentService) UpdateInvestment(userID, investmentID string, in InvestmentInput) (int64, error) {
	fields, err := s.resolve(in)
	if err != nil {
		return 0, err
	}

	result := s.db.Model(&models.Investment{}).
		Where("id = ? AND user_id = ?", investmentID, userID).
		Updates(fields)
	if result.Error != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		logger.Get().Debugw("investment update matched no rows", "investment_id", investmentID, "user_id", userID)
	}
	return result.RowsAffected, nil
}

// DeleteInvestment removes the holding.
func (s *investmentService) DeleteInvestment(userID, investmentID string) (int64, error) {
	result := s.db.Where("id = ? AND user_id = ?", investmentID, userID).Delete(&models.Investment{})
	if result.Error != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		logger.Get().Debugw("investment delete matched no rows", "investment_id", investmentID, "user_id", userID)
	}
	return result.RowsAffected, nil
}

// GetPortfolioTotal sums quantity times unit price over the user's holdings.
func (s *investmentService) GetPortfolioTotal(userID string) (int64, error) {
	var total int64
	if err := s.db.Model(&models.Investment{}).
		Select("COALESCE(SUM(quantity * unit_price), 0)").
		Where("user_id = ?", userID).
		Scan(&total).Error; err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return total, nil
}
