package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"carteira/internal/dashboard"
	apperrors "carteira/internal/errors"
	"carteira/internal/ledger"
	"carteira/internal/models"
)

// dashboardService gathers the current month's aggregates.
type dashboardService struct {
	db          *gorm.DB
	investments InvestmentServicer
	now         func() time.Time
}

// NewDashboardService creates a new DashboardServicer.
func NewDashboardService(db *gorm.DB, investments InvestmentServicer) DashboardServicer {
	return &dashboardService{db: db, investments: investments, now: time.Now}
}

type monthTotals struct {
	Income  int64
	Expense int64
}

// GetDashboard evaluates this month's entries against this month's budgets.
// Entries match on their date prefix and budgets on their month label.
func (s *dashboardService) GetDashboard(userID string) (*DashboardView, error) {
	now := s.now()
	period := ledger.PeriodOf(now)

	var user models.User
	if err := s.db.Select("id", "cash_balance", "reserve_balance").Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var totals monthTotals
	if err := s.db.Model(&models.LedgerEntry{}).
		Select(
			"COALESCE(SUM(CASE WHEN type = ? THEN amount ELSE 0 END), 0) AS income, "+
				"COALESCE(SUM(CASE WHEN type = ? THEN amount ELSE 0 END), 0) AS expense",
			string(models.EntryTypeIncome), string(models.EntryTypeExpense),
		).
		Where("user_id = ? AND date LIKE ?", userID, period.Prefix()+"%").
		Scan(&totals).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var planned int64
	if err := s.db.Model(&models.Budget{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ? AND month = ?", userID, period.Month).
		Scan(&planned).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	portfolio, err := s.investments.GetPortfolioTotal(userID)
	if err != nil {
		return nil, err
	}

	return &DashboardView{
		Summary: dashboard.Evaluate(dashboard.Input{
			Income:  totals.Income,
			Expense: totals.Expense,
			Planned: planned,
		}, now),
		Period:         period,
		CashBalance:    user.CashBalance,
		ReserveBalance: user.ReserveBalance,
		PortfolioTotal: portfolio,
	}, nil
}
