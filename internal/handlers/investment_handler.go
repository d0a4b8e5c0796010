package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"carteira/internal/pagination"
	"carteira/internal/services"
)

// InvestmentHandler handles investment-related requests.
type InvestmentHandler struct {
	investmentService services.InvestmentServicer
}

// NewInvestmentHandler creates a new InvestmentHandler.
func NewInvestmentHandler(investmentService services.InvestmentServicer) *InvestmentHandler {
	return &InvestmentHandler{investmentService: investmentService}
}

// InvestmentRequest is the payload for creating or replacing a holding.
type InvestmentRequest struct {
	Kind      string     `json:"kind" binding:"max=50"`
	Code      string     `json:"code" binding:"required,max=20"`
	Quantity  int64      `json:"quantity" binding:"min=0"`
	UnitPrice AmountText `json:"unit_price" binding:"required" swaggertype:"string" example:"38,25"`
}

func (r InvestmentRequest) input() services.InvestmentInput {
	return services.InvestmentInput{
		Kind:      r.Kind,
		Code:      r.Code,
		Quantity:  r.Quantity,
		UnitPrice: string(r.UnitPrice),
	}
}

// InvestmentListResponse is a page of holdings plus the portfolio total.
type InvestmentListResponse struct {
	pagination.PageResponse[investmentItem]
	PortfolioTotal int64 `json:"portfolio_total"`
}

// investmentItem is a holding with its computed value.
type investmentItem struct {
	ID        string `json:"id"`
	Kind      string `json:"kind"`
	Code      string `json:"code"`
	Quantity  int64  `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
	Value     int64  `json:"value"`
}

// CreateInvestment handles recording a new holding.
// @Summary     Create an investment
// @Description Record a holding of some asset at a unit price
// @Tags        investments
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body InvestmentRequest true "Investment details"
// @Success     201 {object} models.Investment "Investment created"
// @Failure     400 {object} ErrorResponse "Invalid input or amount"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /investments [post]
func (h *InvestmentHandler) CreateInvestment(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req InvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	inv, err := h.investmentService.CreateInvestment(userID, req.input())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"investment": inv})
}

// GetInvestments handles listing the user's holdings.
// @Summary     Get investments
// @Description Get a paginated list of holdings with their values and the portfolio total
// @Tags        investments
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} InvestmentListResponse "Paginated investments"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /investments [get]
func (h *InvestmentHandler) GetInvestments(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	result, err := h.investmentService.GetUserInvestments(userID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	total, err := h.investmentService.GetPortfolioTotal(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	items := make([]investmentItem, 0, len(result.Data))
	for _, inv := range result.Data {
		items = append(items, investmentItem{
			ID:        inv.ID,
			Kind:      inv.Kind,
			Code:      inv.Code,
			Quantity:  inv.Quantity,
			UnitPrice: inv.UnitPrice,
			Value:     inv.Value(),
		})
	}

	c.JSON(http.StatusOK, InvestmentListResponse{
		PageResponse: pagination.PageResponse[investmentItem]{
			Data:       items,
			Page:       result.Page,
			PageSize:   result.PageSize,
			TotalItems: result.TotalItems,
			TotalPages: result.TotalPages,
		},
		PortfolioTotal: total,
	})
}

// GetInvestment handles retrieving a specific holding.
// @Summary     Get investment by ID
// @Description Get one of the user's holdings
// @Tags        investments
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Investment ID"
// @Success     200 {object} models.Investment "Investment details"
// @Failure     400 {object} ErrorResponse "Invalid investment ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Investment not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /investments/{id} [get]
func (h *InvestmentHandler) GetInvestment(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	investmentID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	inv, err := h.investmentService.GetInvestmentByID(userID, investmentID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"investment": inv})
}

// UpdateInvestment handles replacing a holding's fields.
// @Summary     Update investment
// @Description Replace a holding's fields. Unknown or foreign holdings are a no-op with affected 0.
// @Tags        investments
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string            true "Investment ID"
// @Param       request body InvestmentRequest true "Investment details"
// @Success     200 {object} MutationResponse "Rows affected"
// @Failure     400 {object} ErrorResponse "Invalid input or investment ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /investments/{id} [put]
func (h *InvestmentHandler) UpdateInvestment(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	investmentID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req InvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	n, err := h.investmentService.UpdateInvestment(userID, investmentID, req.input())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, MutationResponse{Affected: n})
}

// DeleteInvestment handles deleting a holding.
// @Summary     Delete investment
// @Description Delete a holding. Unknown or foreign holdings are a no-op with affected 0.
// @Tags        investments
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Investment ID"
// @Success     200 {object} MutationResponse "Rows affected"
// @Failure     400 {object} ErrorResponse "Invalid investment ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /investments/{id} [delete]
func (h *InvestmentHandler) DeleteInvestment(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	investmentID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	n, err := h.investmentService.DeleteInvestment(userID, investmentID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, MutationResponse{Affected: n})
}
