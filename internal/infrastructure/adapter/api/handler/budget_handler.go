package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/sohhamm/personal-finance-app/internal/domain/port/core"
	"github.com/sohhamm/personal-finance-app/internal/domain/port/usecase"
	"github.com/sohhamm/personal-finance-app/internal/infrastructure/adapter/api/dto"
)

// BudgetHandler handles budget-related HTTP requests
type BudgetHandler struct {
	budgetUseCase usecase.BudgetUseCase
	logger        coreport.Logger
}

// NewBudgetHandler creates a new budget handler instance
func NewBudgetHandler(budgetUseCase usecase.BudgetUseCase, logger coreport.Logger) *BudgetHandler {
	return &BudgetHandler{
		budgetUseCase: budgetUseCase,
		logger:        logger,
	}
}

// CreateBudget handles the POST /budgets endpoint
func (h *BudgetHandler) CreateBudget(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}

	var req dto.CreateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	budget, err := h.budgetUseCase.CreateBudget(c.Request.Context(), userID, usecase.CreateBudgetRequest{
		Category: req.Category,
		Maximum:  req.Maximum,
		Theme:    req.Theme,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.OK(dto.NewBudgetResponse(budget)))
}

// GetBudgets handles the GET /budgets endpoint
func (h *BudgetHandler) GetBudgets(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}

	budgets, err := h.budgetUseCase.GetBudgets(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.NewBudgetResponses(budgets)))
}

// GetBudget handles the GET /budgets/:id endpoint
func (h *BudgetHandler) GetBudget(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}
	budgetID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	budget, err := h.budgetUseCase.GetBudget(c.Request.Context(), userID, budgetID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.NewBudgetResponse(budget)))
}

// GetBudgetSpending handles the GET /budgets/:id/spending endpoint
func (h *BudgetHandler) GetBudgetSpending(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}
	budgetID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	spending, err := h.budgetUseCase.GetBudgetWithSpending(c.Request.Context(), userID, budgetID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.NewBudgetSpendingResponse(spending)))
}

// UpdateBudget handles the PUT /budgets/:id endpoint
func (h *BudgetHandler) UpdateBudget(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}
	budgetID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	budget, err := h.budgetUseCase.UpdateBudget(c.Request.Context(), userID, budgetID, usecase.UpdateBudgetRequest{
		Category: req.Category,
		Maximum:  req.Maximum,
		Theme:    req.Theme,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.NewBudgetResponse(budget)))
}

// DeleteBudget handles the DELETE /budgets/:id endpoint
func (h *BudgetHandler) DeleteBudget(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}
	budgetID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.budgetUseCase.DeleteBudget(c.Request.Context(), userID, budgetID); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(gin.H{"deleted": true}))
}
