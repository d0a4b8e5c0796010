package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "carteira/internal/errors"
	"carteira/internal/ledger"
	"carteira/internal/models"
	"carteira/internal/pagination"
	"carteira/internal/services"
)

const testBudgetID = "0190d2c4-0000-7000-8000-0000000000b1"

// --- mock budget service ---

type mockBudgetService struct {
	createBudgetFn      func(userID string, in services.BudgetInput) (*models.Budget, error)
	getUserBudgetsFn    func(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Budget], error)
	getGroupedBudgetsFn func(userID string) ([]ledger.YearSection[models.Budget], error)
	getBudgetByIDFn     func(userID, budgetID string) (*models.Budget, error)
	updateBudgetFn      func(userID, budgetID string, in services.BudgetInput) (int64, error)
	deleteBudgetFn      func(userID, budgetID string) (int64, error)
}

func (m *mockBudgetService) CreateBudget(userID string, in services.BudgetInput) (*models.Budget, error) {
	if m.createBudgetFn != nil {
		return m.createBudgetFn(userID, in)
	}
	return &models.Budget{}, nil
}

func (m *mockBudgetService) GetUserBudgets(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Budget], error) {
	if m.getUserBudgetsFn != nil {
		return m.getUserBudgetsFn(userID, page)
	}
	resp := pagination.NewPageResponse([]models.Budget{}, pagination.PageRequest{Page: 1, PageSize: 20}, 0)
	return &resp, nil
}

func (m *mockBudgetService) GetGroupedBudgets(userID string) ([]ledger.YearSection[models.Budget], error) {
	if m.getGroupedBudgetsFn != nil {
		return m.getGroupedBudgetsFn(userID)
	}
	return []ledger.YearSection[models.Budget]{}, nil
}

func (m *mockBudgetService) GetBudgetByID(userID, budgetID string) (*models.Budget, error) {
	if m.getBudgetByIDFn != nil {
		return m.getBudgetByIDFn(userID, budgetID)
	}
	return &models.Budget{}, nil
}

func (m *mockBudgetService) UpdateBudget(userID, budgetID string, in services.BudgetInput) (int64, error) {
	if m.updateBudgetFn != nil {
		return m.updateBudgetFn(userID, budgetID, in)
	}
	return 1, nil
}

func (m *mockBudgetService) DeleteBudget(userID, budgetID string) (int64, error) {
	if m.deleteBudgetFn != nil {
		return m.deleteBudgetFn(userID, budgetID)
	}
	return 1, nil
}

var _ services.BudgetServicer = (*mockBudgetService)(nil)

func setupBudgetRouter(handler *BudgetHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(testUserID))
	auth.POST("/budgets", handler.CreateBudget)
	auth.GET("/budgets", handler.GetBudgets)
	auth.GET("/budgets/grouped", handler.GetGroupedBudgets)
	auth.GET("/budgets/:id", handler.GetBudget)
	auth.PUT("/budgets/:id", handler.UpdateBudget)
	auth.DELETE("/budgets/:id", handler.DeleteBudget)
	return r
}

func TestBudgetHandler_CreateBudget(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		svc := &mockBudgetService{
			createBudgetFn: func(userID string, in services.BudgetInput) (*models.Budget, error) {
				return &models.Budget{
					Base:     models.Base{ID: testBudgetID},
					UserID:   userID,
					Month:    "03",
					Category: in.Category,
					Amount:   50000,
				}, nil
			},
		}
		r := setupBudgetRouter(NewBudgetHandler(svc))

		rec := doRequest(r, "POST", "/budgets", `{"month":"3","category":"Mercado","amount":"500,00"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		budget := parseJSON(t, rec)["budget"].(map[string]interface{})
		if budget["month"] != "03" || budget["category"] != "Mercado" {
			t.Errorf("unexpected budget: %v", budget)
		}
	})

	t.Run("returns 400 on missing month", func(t *testing.T) {
		r := setupBudgetRouter(NewBudgetHandler(&mockBudgetService{}))

		rec := doRequest(r, "POST", "/budgets", `{"category":"Mercado","amount":"500"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 on invalid month", func(t *testing.T) {
		r := setupBudgetRouter(NewBudgetHandler(&mockBudgetService{}))

		rec := doRequest(r, "POST", "/budgets", `{"month":"jan","amount":"500"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestBudgetHandler_GetGroupedBudgets(t *testing.T) {
	svc := &mockBudgetService{
		getGroupedBudgetsFn: func(_ string) ([]ledger.YearSection[models.Budget], error) {
			return []ledger.YearSection[models.Budget]{{Year: "2025"}}, nil
		},
	}
	r := setupBudgetRouter(NewBudgetHandler(svc))

	rec := doRequest(r, "GET", "/budgets/grouped", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	years := parseJSON(t, rec)["years"].([]interface{})
	if len(years) != 1 {
		t.Errorf("expected one year, got %v", years)
	}
}

func TestBudgetHandler_GetBudget(t *testing.T) {
	svc := &mockBudgetService{
		getBudgetByIDFn: func(_, _ string) (*models.Budget, error) {
			return nil, apperrors.ErrBudgetNotFound
		},
	}
	r := setupBudgetRouter(NewBudgetHandler(svc))

	rec := doRequest(r, "GET", "/budgets/"+testBudgetID, "")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	assertErrorCode(t, parseJSON(t, rec), "BUDGET_NOT_FOUND")
}

func TestBudgetHandler_UpdateAndDelete(t *testing.T) {
	svc := &mockBudgetService{
		updateBudgetFn: func(_, _ string, in services.BudgetInput) (int64, error) {
			if in.Amount != "10.5" {
				t.Errorf("expected amount text 10.5, got %q", in.Amount)
			}
			return 1, nil
		},
		deleteBudgetFn: func(_, _ string) (int64, error) { return 0, nil },
	}
	r := setupBudgetRouter(NewBudgetHandler(svc))

	rec := doRequest(r, "PUT", "/budgets/"+testBudgetID, `{"month":"05","amount":10.5}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if parseJSON(t, rec)["affected"].(float64) != 1 {
		t.Error("expected affected 1")
	}

	rec = doRequest(r, "DELETE", "/budgets/"+testBudgetID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if parseJSON(t, rec)["affected"].(float64) != 0 {
		t.Error("expected affected 0")
	}
}
