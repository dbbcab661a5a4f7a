package dto

import (
	"time"

	"github.com/sohhamm/personal-finance-app/internal/domain/entity"
	"github.com/sohhamm/personal-finance-app/internal/domain/port/persistence"
)

// CreateRecurringBillRequest represents the API request for creating a bill
type CreateRecurringBillRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=255"`
	Amount   string `json:"amount" binding:"required"`
	DueDay   int    `json:"dueDay" binding:"required,min=1,max=31"`
	Category string `json:"category" binding:"required"`
	Avatar   string `json:"avatar" binding:"omitempty,max=500"`
}

// UpdateRecurringBillRequest represents the API request for a partial bill update
type UpdateRecurringBillRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1,max=255"`
	Amount   *string `json:"amount"`
	DueDay   *int    `json:"dueDay" binding:"omitempty,min=1,max=31"`
	Category *string `json:"category"`
	Avatar   *string `json:"avatar" binding:"omitempty,max=500"`
	IsActive *bool   `json:"isActive"`
}

// MarkPaidRequest represents the API request for settling a payment,
// optionally linking the transaction that settled it
type MarkPaidRequest struct {
	TransactionID *string `json:"transactionId" binding:"omitempty,uuid"`
}

// RecurringBillResponse represents a bill in API responses
type RecurringBillResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Amount    string    `json:"amount"`
	DueDay    int       `json:"dueDay"`
	Category  string    `json:"category"`
	Avatar    string    `json:"avatar,omitempty"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// PaymentResponse represents one payment record in API responses
type PaymentResponse struct {
	ID            string     `json:"id"`
	DueDate       time.Time  `json:"dueDate"`
	PaidDate      *time.Time `json:"paidDate,omitempty"`
	Amount        string     `json:"amount"`
	Status        string     `json:"status"`
	TransactionID *string    `json:"transactionId,omitempty"`
}

// BillWithPaymentsResponse pairs a bill with its current-month payments
type BillWithPaymentsResponse struct {
	Bill     RecurringBillResponse `json:"bill"`
	Payments []PaymentResponse     `json:"payments"`
}

// RecurringBillListResponse is one page of bills
type RecurringBillListResponse struct {
	Bills      []BillWithPaymentsResponse `json:"bills"`
	Pagination PaginationResponse         `json:"pagination"`
}

// DueSoonBillResponse represents one pending payment falling due shortly
type DueSoonBillResponse struct {
	Name    string    `json:"name"`
	Avatar  string    `json:"avatar,omitempty"`
	Amount  string    `json:"amount"`
	DueDate time.Time `json:"dueDate"`
	Status  string    `json:"status"`
}

// NewRecurringBillResponse maps a bill entity to its API representation
func NewRecurringBillResponse(bill *entity.RecurringBill) RecurringBillResponse {
	return RecurringBillResponse{
		ID:        bill.ID.String(),
		Name:      bill.Name,
		Amount:    entity.FormatAmount(bill.Amount),
		DueDay:    bill.DueDay,
		Category:  string(bill.Category),
		Avatar:    bill.Avatar,
		IsActive:  bill.IsActive,
		CreatedAt: bill.CreatedAt,
	}
}

// NewPaymentResponse maps a payment entity to its API representation
func NewPaymentResponse(payment *entity.RecurringBillPayment) PaymentResponse {
	response := PaymentResponse{
		ID:       payment.ID.String(),
		DueDate:  payment.DueDate,
		PaidDate: payment.PaidDate,
		Amount:   entity.FormatAmount(payment.Amount),
		Status:   string(payment.Status),
	}
	if payment.TransactionID != nil {
		transactionID := payment.TransactionID.String()
		response.TransactionID = &transactionID
	}
	return response
}

// NewBillWithPaymentsResponse maps a bill and its payment rows
func NewBillWithPaymentsResponse(billWithPayments *persistence.BillWithPayments) BillWithPaymentsResponse {
	payments := make([]PaymentResponse, 0, len(billWithPayments.Payments))
	for _, payment := range billWithPayments.Payments {
		payments = append(payments, NewPaymentResponse(payment))
	}
	return BillWithPaymentsResponse{
		Bill:     NewRecurringBillResponse(billWithPayments.Bill),
		Payments: payments,
	}
}

// NewDueSoonBillResponses maps pending due-soon payments
func NewDueSoonBillResponses(bills []*persistence.DueSoonBill) []DueSoonBillResponse {
	responses := make([]DueSoonBillResponse, 0, len(bills))
	for _, bill := range bills {
		responses = append(responses, DueSoonBillResponse{
			Name:    bill.BillName,
			Avatar:  bill.Avatar,
			Amount:  entity.FormatAmount(bill.Amount),
			DueDate: bill.DueDate,
			Status:  string(bill.Status),
		})
	}
	return responses
}
