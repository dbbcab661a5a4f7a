package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerr "github.com/sohhamm/personal-finance-app/internal/domain/error"
	coreport "github.com/sohhamm/personal-finance-app/internal/domain/port/core"
	"github.com/sohhamm/personal-finance-app/internal/domain/port/persistence"
	"github.com/sohhamm/personal-finance-app/internal/domain/port/usecase"
	"github.com/sohhamm/personal-finance-app/internal/infrastructure/adapter/api/dto"
)

// RecurringBillHandler handles recurring bill HTTP requests
type RecurringBillHandler struct {
	billUseCase usecase.RecurringBillUseCase
	logger      coreport.Logger
}

// NewRecurringBillHandler creates a new recurring bill handler instance
func NewRecurringBillHandler(billUseCase usecase.RecurringBillUseCase, logger coreport.Logger) *RecurringBillHandler {
	return &RecurringBillHandler{
		billUseCase: billUseCase,
		logger:      logger,
	}
}

// CreateRecurringBill handles the POST /recurring-bills endpoint
func (h *RecurringBillHandler) CreateRecurringBill(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}

	var req dto.CreateRecurringBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	bill, err := h.billUseCase.CreateRecurringBill(c.Request.Context(), userID, usecase.CreateRecurringBillRequest{
		Name:     req.Name,
		Amount:   req.Amount,
		DueDay:   req.DueDay,
		Category: req.Category,
		Avatar:   req.Avatar,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.OK(dto.NewRecurringBillResponse(bill)))
}

// GetRecurringBills handles the GET /recurring-bills endpoint
func (h *RecurringBillHandler) GetRecurringBills(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}

	filter := persistence.RecurringBillFilter{
		Search: c.Query("search"),
		SortBy: c.DefaultQuery("sortBy", "latest"),
		Page:   queryInt(c, "page", 1),
		Limit:  queryInt(c, "limit", 10),
	}

	page, err := h.billUseCase.GetRecurringBills(c.Request.Context(), userID, filter)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	bills := make([]dto.BillWithPaymentsResponse, 0, len(page.Data))
	for _, billWithPayments := range page.Data {
		bills = append(bills, dto.NewBillWithPaymentsResponse(billWithPayments))
	}

	c.JSON(http.StatusOK, dto.OK(dto.RecurringBillListResponse{
		Bills:      bills,
		Pagination: paginationResponse(page.Pagination),
	}))
}

// GetRecurringBill handles the GET /recurring-bills/:id endpoint
func (h *RecurringBillHandler) GetRecurringBill(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}
	billID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	bill, err := h.billUseCase.GetRecurringBill(c.Request.Context(), userID, billID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.NewRecurringBillResponse(bill)))
}

// UpdateRecurringBill handles the PUT /recurring-bills/:id endpoint
func (h *RecurringBillHandler) UpdateRecurringBill(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}
	billID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateRecurringBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	bill, err := h.billUseCase.UpdateRecurringBill(c.Request.Context(), userID, billID, usecase.UpdateRecurringBillRequest{
		Name:     req.Name,
		Amount:   req.Amount,
		DueDay:   req.DueDay,
		Category: req.Category,
		Avatar:   req.Avatar,
		IsActive: req.IsActive,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.NewRecurringBillResponse(bill)))
}

// DeleteRecurringBill handles the DELETE /recurring-bills/:id endpoint
func (h *RecurringBillHandler) DeleteRecurringBill(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}
	billID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.billUseCase.DeleteRecurringBill(c.Request.Context(), userID, billID); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(gin.H{"deleted": true}))
}

// MarkPaymentPaid handles the POST /recurring-bills/payments/:paymentId/pay endpoint
func (h *RecurringBillHandler) MarkPaymentPaid(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}
	paymentID, ok := pathUUID(c, "paymentId")
	if !ok {
		return
	}

	var req dto.MarkPaidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	var transactionID *uuid.UUID
	if req.TransactionID != nil {
		parsed, err := uuid.Parse(*req.TransactionID)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.Err(
				domainerr.ErrorCode(domainerr.ErrValidation),
				"Invalid transactionId format",
			))
			return
		}
		transactionID = &parsed
	}

	payment, err := h.billUseCase.MarkPaymentPaid(c.Request.Context(), userID, paymentID, transactionID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.NewPaymentResponse(payment)))
}

// GetBillsDueSoon handles the GET /recurring-bills/due-soon endpoint
func (h *RecurringBillHandler) GetBillsDueSoon(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}

	bills, err := h.billUseCase.GetBillsDueSoon(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.NewDueSoonBillResponses(bills)))
}
