package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"carteira/internal/services"
)

// DashboardHandler serves the dashboard and the expense chart.
type DashboardHandler struct {
	dashboardService services.DashboardServicer
	chartService     services.ChartServicer
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService services.DashboardServicer, chartService services.ChartServicer) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService, chartService: chartService}
}

// GetDashboard handles the dashboard summary.
// @Summary     Get dashboard
// @Description Current month totals, balance, planned vs actual spending, alerts, profile balances and portfolio total
// @Tags        dashboard
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.DashboardView "Dashboard"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "User not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	view, err := h.dashboardService.GetDashboard(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// GetExpenseChart handles the expense-by-category chart.
// @Summary     Get expense chart
// @Description Expense totals per category. ano and mes filter to one month only when both are given.
// @Tags        charts
// @Produce     json
// @Security    BearerAuth
// @Param       ano query string false "Year (YYYY)"
// @Param       mes query string false "Month (1-12)"
// @Success     200 {object} services.ChartData "Chart series"
// @Failure     400 {object} ErrorResponse "Invalid period"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /charts/expenses [get]
func (h *DashboardHandler) GetExpenseChart(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	data, err := h.chartService.GetExpensesByCategory(userID, c.Query("ano"), c.Query("mes"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, data)
}
