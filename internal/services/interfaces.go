package services

import (
	"carteira/internal/dashboard"
	"carteira/internal/ledger"
	"carteira/internal/models"
	"carteira/internal/pagination"
)

// UserServicer defines the contract for registration and credential checks.
type UserServicer interface {
	Register(username, password, confirm string) (*models.User, error)
	Authenticate(username, password string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	StoreRefreshTokenHash(userID, tokenHash string) error
	GetRefreshTokenHash(userID string) (string, error)
	ClearRefreshTokenHash(userID string) error
}

// EntryInput carries the user supplied fields of a ledger entry. Either
// Month ("1".."12") or Date ("YYYY-MM-DD") names when it happened; Date wins
// when both are set. Amount is raw text such as "45,90".
type EntryInput struct {
	Month       string
	Date        string
	Description string
	Category    string
	Type        models.EntryType
	Amount      string
}

// EntryServicer defines the contract for ledger entry business logic.
// Update and delete report the number of rows they touched; zero means the
// entry does not exist or belongs to someone else.
type EntryServicer interface {
	CreateEntry(userID string, in EntryInput) (*models.LedgerEntry, error)
	GetUserEntries(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.LedgerEntry], error)
	GetGroupedEntries(userID string) ([]ledger.YearSection[models.LedgerEntry], error)
	GetEntryByID(userID, entryID string) (*models.LedgerEntry, error)
	UpdateEntry(userID, entryID string, in EntryInput) (int64, error)
	DeleteEntry(userID, entryID string) (int64, error)
}

// BudgetInput carries the user supplied fields of a budget.
type BudgetInput struct {
	Month    string
	Category string
	Amount   string
}

// BudgetServicer defines the contract for budget business logic.
type BudgetServicer interface {
	CreateBudget(userID string, in BudgetInput) (*models.Budget, error)
	GetUserBudgets(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Budget], error)
	GetGroupedBudgets(userID string) ([]ledger.YearSection[models.Budget], error)
	GetBudgetByID(userID, budgetID string) (*models.Budget, error)
	UpdateBudget(userID, budgetID string, in BudgetInput) (int64, error)
	DeleteBudget(userID, budgetID string) (int64, error)
}

// CategoryServicer defines the contract for the shared category list.
type CategoryServicer interface {
	CreateCategory(name string) (*models.Category, error)
	GetCategories(page pagination.PageRequest) (*pagination.PageResponse[models.Category], error)
	GetCategoryNames() ([]string, error)
	GetCategoryByID(categoryID string) (*models.Category, error)
	UpdateCategory(categoryID, name string) (int64, error)
	DeleteCategory(categoryID string) (int64, error)
}

// InvestmentInput carries the user supplied fields of a holding.
type InvestmentInput struct {
	Kind      string
	Code      string
	Quantity  int64
	UnitPrice string
}

// InvestmentServicer defines the contract for investment business logic.
type InvestmentServicer interface {
	CreateInvestment(userID string, in InvestmentInput) (*models.Investment, error)
	GetUserInvestments(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Investment], error)
	GetInvestmentByID(userID, investmentID string) (*models.Investment, error)
	UpdateInvestment(userID, investmentID string, in InvestmentInput) (int64, error)
	DeleteInvestment(userID, investmentID string) (int64, error)
	GetPortfolioTotal(userID string) (int64, error)
}

// ProfileView is a read-only snapshot of a user's profile and balances.
type ProfileView struct {
	ID                      string `json:"id"`
	Username                string `json:"username"`
	Name                    string `json:"name"`
	Email                   string `json:"email"`
	CashBalance             int64  `json:"cash_balance"`
	CashBalanceFormatted    string `json:"cash_balance_formatted"`
	ReserveBalance          int64  `json:"reserve_balance"`
	ReserveBalanceFormatted string `json:"reserve_balance_formatted"`
	CashBank                string `json:"cash_bank"`
	ReserveBank             string `json:"reserve_bank"`
	DarkMode                bool   `json:"dark_mode"`
	PhotoURL                string `json:"photo_url"`
}

// ProfileInput holds optional profile changes. Nil fields are left as is.
// Balances are raw text such as "1500,00".
type ProfileInput struct {
	Name           *string
	Email          *string
	CashBalance    *string
	ReserveBalance *string
	CashBank       *string
	ReserveBank    *string
	DarkMode       *bool
}

// ProfileServicer defines the contract for profile business logic.
type ProfileServicer interface {
	GetProfile(userID string) (*ProfileView, error)
	UpdateProfile(userID string, in ProfileInput) (*ProfileView, error)
	PhotoFilename(userID, uploadedName string) (string, bool)
	SetPhotoURL(userID, url string) error
}

// DashboardView is everything the dashboard page shows.
type DashboardView struct {
	dashboard.Summary
	Period         ledger.Period `json:"period"`
	CashBalance    int64         `json:"cash_balance"`
	ReserveBalance int64         `json:"reserve_balance"`
	PortfolioTotal int64         `json:"portfolio_total"`
}

// DashboardServicer defines the contract for the dashboard.
type DashboardServicer interface {
	GetDashboard(userID string) (*DashboardView, error)
}

// ChartData is a category spend series, ordered by category name.
type ChartData struct {
	Labels []string `json:"labels"`
	Values []int64  `json:"values"`
}

// ChartServicer defines the contract for the expense chart. Year and month
// filter the entries only when both are given.
type ChartServicer interface {
	GetExpensesByCategory(userID, year, month string) (*ChartData, error)
}
