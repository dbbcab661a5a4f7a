package dto

import (
	"time"

	"github.com/sohhamm/personal-finance-app/internal/domain/entity"
)

// CreateTransactionRequest represents the API request for recording a transaction
type CreateTransactionRequest struct {
	RecipientSender string    `json:"recipientSender" binding:"required,min=1,max=255"`
	Category        string    `json:"category" binding:"required"`
	TransactionDate time.Time `json:"transactionDate" binding:"required"`
	Amount          string    `json:"amount" binding:"required"`
	Type            string    `json:"type" binding:"required,oneof=income expense"`
	Recurring       bool      `json:"recurring"`
	Avatar          string    `json:"avatar" binding:"omitempty,max=500"`
}

// UpdateTransactionRequest represents the API request for a partial
// transaction update; absent fields are left unchanged
type UpdateTransactionRequest struct {
	RecipientSender *string    `json:"recipientSender" binding:"omitempty,min=1,max=255"`
	Category        *string    `json:"category"`
	TransactionDate *time.Time `json:"transactionDate"`
	Amount          *string    `json:"amount"`
	Type            *string    `json:"type" binding:"omitempty,oneof=income expense"`
	Recurring       *bool      `json:"recurring"`
	Avatar          *string    `json:"avatar" binding:"omitempty,max=500"`
}

// TransactionResponse represents a transaction in API responses
type TransactionResponse struct {
	ID              string    `json:"id"`
	RecipientSender string    `json:"recipientSender"`
	Category        string    `json:"category"`
	TransactionDate time.Time `json:"transactionDate"`
	Amount          string    `json:"amount"`
	Type            string    `json:"type"`
	Recurring       bool      `json:"recurring"`
	Avatar          string    `json:"avatar,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// TransactionListResponse is one page of transactions
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Pagination   PaginationResponse    `json:"pagination"`
}

// NewTransactionResponse maps a transaction entity to its API representation
func NewTransactionResponse(transaction *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:              transaction.ID.String(),
		RecipientSender: transaction.RecipientSender,
		Category:        string(transaction.Category),
		TransactionDate: transaction.TransactionDate,
		Amount:          entity.FormatAmount(transaction.Amount),
		Type:            string(transaction.TransactionType),
		Recurring:       transaction.Recurring,
		Avatar:          transaction.Avatar,
		CreatedAt:       transaction.CreatedAt,
	}
}

// NewTransactionResponses maps a slice of transaction entities
func NewTransactionResponses(transactions []*entity.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, 0, len(transactions))
	for _, transaction := range transactions {
		responses = append(responses, NewTransactionResponse(transaction))
	}
	return responses
}
