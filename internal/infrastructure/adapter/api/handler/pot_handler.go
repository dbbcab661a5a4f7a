package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sohhamm/personal-finance-app/internal/domain/entity"
	coreport "github.com/sohhamm/personal-finance-app/internal/domain/port/core"
	"github.com/sohhamm/personal-finance-app/internal/domain/port/usecase"
	"github.com/sohhamm/personal-finance-app/internal/infrastructure/adapter/api/dto"
)

// PotHandler handles savings pot HTTP requests
type PotHandler struct {
	potUseCase usecase.PotUseCase
	logger     coreport.Logger
}

// NewPotHandler creates a new pot handler instance
func NewPotHandler(potUseCase usecase.PotUseCase, logger coreport.Logger) *PotHandler {
	return &PotHandler{
		potUseCase: potUseCase,
		logger:     logger,
	}
}

// CreatePot handles the POST /pots endpoint
func (h *PotHandler) CreatePot(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}

	var req dto.CreatePotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	pot, err := h.potUseCase.CreatePot(c.Request.Context(), userID, usecase.CreatePotRequest{
		Name:   req.Name,
		Target: req.Target,
		Theme:  req.Theme,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.OK(dto.NewPotResponse(pot)))
}

// GetPots handles the GET /pots endpoint
func (h *PotHandler) GetPots(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}

	pots, err := h.potUseCase.GetPots(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.NewPotResponses(pots)))
}

// GetPot handles the GET /pots/:id endpoint
func (h *PotHandler) GetPot(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}
	potID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	pot, err := h.potUseCase.GetPot(c.Request.Context(), userID, potID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.NewPotResponse(pot)))
}

// GetPotProgress handles the GET /pots/:id/progress endpoint
func (h *PotHandler) GetPotProgress(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}
	potID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	progress, err := h.potUseCase.GetPotProgress(c.Request.Context(), userID, potID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.NewPotProgressResponse(progress)))
}

// UpdatePot handles the PUT /pots/:id endpoint
func (h *PotHandler) UpdatePot(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}
	potID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdatePotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	pot, err := h.potUseCase.UpdatePot(c.Request.Context(), userID, potID, usecase.UpdatePotRequest{
		Name:   req.Name,
		Target: req.Target,
		Theme:  req.Theme,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.NewPotResponse(pot)))
}

// DeletePot handles the DELETE /pots/:id endpoint. The response reports
// the total the pot held so the client can surface the returned amount.
func (h *PotHandler) DeletePot(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}
	potID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	returnedTotal, err := h.potUseCase.DeletePot(c.Request.Context(), userID, potID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.DeletedPotResponse{
		ReturnedTotal: entity.FormatAmount(returnedTotal),
	}))
}

// AddMoney handles the POST /pots/:id/add endpoint
func (h *PotHandler) AddMoney(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}
	potID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req dto.PotMoneyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	pot, err := h.potUseCase.AddMoney(c.Request.Context(), userID, potID, req.Amount)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.NewPotResponse(pot)))
}

// WithdrawMoney handles the POST /pots/:id/withdraw endpoint
func (h *PotHandler) WithdrawMoney(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}
	potID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req dto.PotMoneyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	pot, err := h.potUseCase.WithdrawMoney(c.Request.Context(), userID, potID, req.Amount)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.NewPotResponse(pot)))
}
