package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/sohhamm/personal-finance-app/internal/domain/port/core"
	"github.com/sohhamm/personal-finance-app/internal/domain/port/usecase"
	"github.com/sohhamm/personal-finance-app/internal/infrastructure/adapter/api/dto"
)

// DefaultTrendMonths is the window used when the client does not ask for one
const DefaultTrendMonths = 6

// OverviewHandler handles dashboard aggregation HTTP requests
type OverviewHandler struct {
	overviewUseCase usecase.OverviewUseCase
	logger          coreport.Logger
}

// NewOverviewHandler creates a new overview handler instance
func NewOverviewHandler(overviewUseCase usecase.OverviewUseCase, logger coreport.Logger) *OverviewHandler {
	return &OverviewHandler{
		overviewUseCase: overviewUseCase,
		logger:          logger,
	}
}

// GetOverview handles the GET /overview endpoint
func (h *OverviewHandler) GetOverview(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}

	snapshot, err := h.overviewUseCase.GetOverviewData(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.NewOverviewResponse(snapshot)))
}

// GetMonthlyTrends handles the GET /overview/trends endpoint
func (h *OverviewHandler) GetMonthlyTrends(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}

	months := queryInt(c, "months", DefaultTrendMonths)

	trends, err := h.overviewUseCase.GetMonthlyTrends(c.Request.Context(), userID, months)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.NewMonthlyTrendResponses(trends)))
}
