package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"carteira/internal/models"
	"carteira/internal/pagination"
	"carteira/internal/services"
)

// EntryHandler handles ledger entry requests.
type EntryHandler struct {
	entryService services.EntryServicer
}

// NewEntryHandler creates a new EntryHandler.
func NewEntryHandler(entryService services.EntryServicer) *EntryHandler {
	return &EntryHandler{entryService: entryService}
}

// EntryRequest is the payload for creating or replacing an entry. Either
// month or date is required; date wins when both are sent.
type EntryRequest struct {
	Month       string           `json:"month" binding:"omitempty,month_label"`
	Date        string           `json:"date" binding:"omitempty,entry_date"`
	Description string           `json:"description" binding:"max=255"`
	Category    string           `json:"category" binding:"max=100"`
	Type        models.EntryType `json:"type" binding:"required,entry_type"`
	Amount      AmountText       `json:"amount" binding:"required" swaggertype:"string" example:"45,90"`
}

func (r EntryRequest) input() services.EntryInput {
	return services.EntryInput{
		Month:       r.Month,
		Date:        r.Date,
		Description: r.Description,
		Category:    r.Category,
		Type:        r.Type,
		Amount:      string(r.Amount),
	}
}

// CreateEntry handles the creation of a new ledger entry.
// @Summary     Create an entry
// @Description Record an income or expense for a month of the current year or an explicit date
// @Tags        entries
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body EntryRequest true "Entry details"
// @Success     201 {object} models.LedgerEntry "Entry created"
// @Failure     400 {object} ErrorResponse "Invalid input, amount or date"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /entries [post]
func (h *EntryHandler) CreateEntry(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req EntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	entry, err := h.entryService.CreateEntry(userID, req.input())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"entry": entry})
}

// GetEntries handles listing the user's entries.
// @Summary     Get entries
// @Description Get a paginated list of the user's entries, most recent first
// @Tags        entries
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.LedgerEntry] "Paginated entries"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /entries [get]
func (h *EntryHandler) GetEntries(c *gin.Context) {
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

	result, err := h.entryService.GetUserEntries(userID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetGroupedEntries handles listing the user's entries by year and month.
// @Summary     Get entries grouped by month
// @Description Get all of the user's entries grouped by year then month, most recent first
// @Tags        entries
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array}  ledger.YearSection[models.LedgerEntry] "Grouped entries"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /entries/grouped [get]
func (h *EntryHandler) GetGroupedEntries(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	sections, err := h.entryService.GetGroupedEntries(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"years": sections})
}

// GetEntry handles retrieving a specific entry.
// @Summary     Get entry by ID
// @Description Get one of the user's entries
// @Tags        entries
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Entry ID"
// @Success     200 {object} models.LedgerEntry "Entry details"
// @Failure     400 {object} ErrorResponse "Invalid entry ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Entry not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /entries/{id} [get]
func (h *EntryHandler) GetEntry(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	entryID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	entry, err := h.entryService.GetEntryByID(userID, entryID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"entry": entry})
}

// UpdateEntry handles replacing an entry's fields.
// @Summary     Update entry
// @Description Replace an entry's fields. Entries that do not exist or belong to someone else are left alone and affected is 0.
// @Tags        entries
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string       true "Entry ID"
// @Param       request body EntryRequest true "Entry details"
// @Success     200 {object} MutationResponse "Rows affected"
// @Failure     400 {object} ErrorResponse "Invalid input, amount or date"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /entries/{id} [put]
func (h *EntryHandler) UpdateEntry(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	entryID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req EntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	n, err := h.entryService.UpdateEntry(userID, entryID, req.input())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, MutationResponse{Affected: n})
}

// DeleteEntry handles deleting an entry.
// @Summary     Delete entry
// @Description Delete one of the user's entries. Unknown or foreign entries are a no-op with affected 0.
// @Tags        entries
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Entry ID"
// @Success     200 {object} MutationResponse "Rows affected"
// @Failure     400 {object} ErrorResponse "Invalid entry ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /entries/{id} [delete]
func (h *EntryHandler) DeleteEntry(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	entryID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	n, err := h.entryService.DeleteEntry(userID, entryID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, MutationResponse{Affected: n})
}
