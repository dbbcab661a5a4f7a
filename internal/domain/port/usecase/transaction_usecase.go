package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sohhamm/personal-finance-app/internal/domain/entity"
	"github.com/sohhamm/personal-finance-app/internal/domain/port/persistence"
)

// CreateTransactionRequest represents an incoming transaction creation request
type CreateTransactionRequest struct {
	RecipientSender string
	Category        string
	TransactionDate time.Time
	Amount          string
	TransactionType string
	Recurring       bool
	Avatar          string
}

// UpdateTransactionRequest carries the optional fields of a transaction update;
// nil fields are left unchanged
type UpdateTransactionRequest struct {
	RecipientSender *string
	Category        *string
	TransactionDate *time.Time
	Amount          *string
	TransactionType *string
	Recurring       *bool
	Avatar          *string
}

// Pagination describes the shape of a paginated listing
type Pagination struct {
	Page       int
	Limit      int
	Total      int64
	TotalPages int
	HasNext    bool
	HasPrev    bool
}

// TransactionPage is one page of a transaction listing
type TransactionPage struct {
	Data       []*entity.Transaction
	Pagination Pagination
}

// TransactionUseCase defines methods for transaction business operations
type TransactionUseCase interface {
	// CreateTransaction records a new monetary movement for the user
	CreateTransaction(ctx context.Context, userID uuid.UUID, req CreateTransactionRequest) (*entity.Transaction, error)

	// GetTransaction retrieves one transaction owned by the user
	GetTransaction(ctx context.Context, userID, transactionID uuid.UUID) (*entity.Transaction, error)

	// GetTransactions returns a filtered, sorted page of the user's transactions
	GetTransactions(ctx context.Context, userID uuid.UUID, filter persistence.TransactionFilter) (*TransactionPage, error)

	// UpdateTransaction applies the non-nil fields of the request
	UpdateTransaction(ctx context.Context, userID, transactionID uuid.UUID, req UpdateTransactionRequest) (*entity.Transaction, error)

	// DeleteTransaction removes a transaction owned by the user
	DeleteTransaction(ctx context.Context, userID, transactionID uuid.UUID) error
}
