package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domainerr "github.com/sohhamm/personal-finance-app/internal/domain/error"
	coreport "github.com/sohhamm/personal-finance-app/internal/domain/port/core"
	"github.com/sohhamm/personal-finance-app/internal/domain/port/persistence"
	"github.com/sohhamm/personal-finance-app/internal/domain/port/usecase"
	"github.com/sohhamm/personal-finance-app/internal/infrastructure/adapter/api/dto"
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	transactionUseCase usecase.TransactionUseCase
	logger             coreport.Logger
}

// NewTransactionHandler creates a new transaction handler instance
func NewTransactionHandler(transactionUseCase usecase.TransactionUseCase, logger coreport.Logger) *TransactionHandler {
	return &TransactionHandler{
		transactionUseCase: transactionUseCase,
		logger:             logger,
	}
}

// CreateTransaction handles the POST /transactions endpoint
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	transaction, err := h.transactionUseCase.CreateTransaction(c.Request.Context(), userID, usecase.CreateTransactionRequest{
		RecipientSender: req.RecipientSender,
		Category:        req.Category,
		TransactionDate: req.TransactionDate,
		Amount:          req.Amount,
		TransactionType: req.Type,
		Recurring:       req.Recurring,
		Avatar:          req.Avatar,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.OK(dto.NewTransactionResponse(transaction)))
}

// GetTransactions handles the GET /transactions endpoint
func (h *TransactionHandler) GetTransactions(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}

	filter, ok := h.parseFilter(c)
	if !ok {
		return
	}

	page, err := h.transactionUseCase.GetTransactions(c.Request.Context(), userID, filter)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.TransactionListResponse{
		Transactions: dto.NewTransactionResponses(page.Data),
		Pagination:   paginationResponse(page.Pagination),
	}))
}

// GetTransaction handles the GET /transactions/:id endpoint
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}
	transactionID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	transaction, err := h.transactionUseCase.GetTransaction(c.Request.Context(), userID, transactionID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.NewTransactionResponse(transaction)))
}

// UpdateTransaction handles the PUT /transactions/:id endpoint
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}
	transactionID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	transaction, err := h.transactionUseCase.UpdateTransaction(c.Request.Context(), userID, transactionID, usecase.UpdateTransactionRequest{
		RecipientSender: req.RecipientSender,
		Category:        req.Category,
		TransactionDate: req.TransactionDate,
		Amount:          req.Amount,
		TransactionType: req.Type,
		Recurring:       req.Recurring,
		Avatar:          req.Avatar,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.NewTransactionResponse(transaction)))
}

// DeleteTransaction handles the DELETE /transactions/:id endpoint
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}
	transactionID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.transactionUseCase.DeleteTransaction(c.Request.Context(), userID, transactionID); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(gin.H{"deleted": true}))
}

// parseFilter builds a transaction filter from the query string
func (h *TransactionHandler) parseFilter(c *gin.Context) (persistence.TransactionFilter, bool) {
	filter := persistence.TransactionFilter{
		Search:    c.Query("search"),
		Category:  c.Query("category"),
		SortBy:    c.DefaultQuery("sortBy", "date"),
		SortOrder: c.DefaultQuery("sortOrder", "desc"),
		Page:      queryInt(c, "page", 1),
		Limit:     queryInt(c, "limit", 10),
	}

	for param, target := range map[string]**time.Time{
		"startDate": &filter.StartDate,
		"endDate":   &filter.EndDate,
	} {
		raw := c.Query(param)
		if raw == "" {
			continue
		}
		parsed, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.Err(
				domainerr.ErrorCode(domainerr.ErrValidation),
				"Invalid "+param+", expected YYYY-MM-DD",
			))
			return filter, false
		}
		*target = &parsed
	}

	return filter, true
}

// queryInt parses an integer query parameter with a default
func queryInt(c *gin.Context, name string, defaultValue int) int {
	raw := c.Query(name)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return defaultValue
	}
	return value
}

// paginationResponse maps the usecase pagination to its API shape
func paginationResponse(p usecase.Pagination) dto.PaginationResponse {
	return dto.PaginationResponse{
		Page:       p.Page,
		Limit:      p.Limit,
		Total:      p.Total,
		TotalPages: p.TotalPages,
		HasNext:    p.HasNext,
		HasPrev:    p.HasPrev,
	}
}
