package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/sohhamm/personal-finance-app/internal/domain/entity"
	errs "github.com/sohhamm/personal-finance-app/internal/domain/error"
	coreport "github.com/sohhamm/personal-finance-app/internal/domain/port/core"
	"github.com/sohhamm/personal-finance-app/internal/domain/port/persistence"
	"github.com/sohhamm/personal-finance-app/internal/domain/port/usecase"
)

// Listing defaults and bounds
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// TransactionUseCase implements transaction CRUD business logic
type TransactionUseCase struct {
	transactionRepo persistence.TransactionRepository
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
}

// NewTransactionUseCase creates a new transaction use case instance
func NewTransactionUseCase(
	transactionRepo persistence.TransactionRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.TransactionUseCase {
	return &TransactionUseCase{
		transactionRepo: transactionRepo,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// CreateTransaction records a new monetary movement for the user
func (u *TransactionUseCase) CreateTransaction(ctx context.Context, userID uuid.UUID, req usecase.CreateTransactionRequest) (*entity.Transaction, error) {
	transaction, err := entity.NewTransaction(
		userID,
		req.RecipientSender,
		req.Category,
		req.TransactionDate,
		req.Amount,
		req.TransactionType,
		req.Recurring,
		req.Avatar,
		u.timeProvider,
	)
	if err != nil {
		return nil, err
	}

	if err := u.transactionRepo.Create(ctx, transaction); err != nil {
		u.logger.Error("Failed to create transaction", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, err
	}

	u.logger.Info("Transaction created", map[string]any{
		"user_id":        userID,
		"transaction_id": transaction.ID,
		"amount":         entity.FormatAmount(transaction.Amount),
		"type":           transaction.TransactionType,
	})

	return transaction, nil
}

// GetTransaction retrieves one transaction owned by the user
func (u *TransactionUseCase) GetTransaction(ctx context.Context, userID, transactionID uuid.UUID) (*entity.Transaction, error) {
	return u.transactionRepo.GetByID(ctx, userID, transactionID)
}

// GetTransactions returns a filtered, sorted page of the user's transactions
func (u *TransactionUseCase) GetTransactions(ctx context.Context, userID uuid.UUID, filter persistence.TransactionFilter) (*usecase.TransactionPage, error) {
	if filter.Page < 1 {
		filter.Page = DefaultPage
	}
	if filter.Limit < 1 {
		filter.Limit = DefaultLimit
	}
	if filter.Limit > MaxLimit {
		filter.Limit = MaxLimit
	}

	data, total, err := u.transactionRepo.List(ctx, userID, filter)
	if err != nil {
		u.logger.Error("Failed to list transactions", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, err
	}

	return &usecase.TransactionPage{
		Data:       data,
		Pagination: buildPagination(filter.Page, filter.Limit, total),
	}, nil
}

// UpdateTransaction applies the non-nil fields of the request
func (u *TransactionUseCase) UpdateTransaction(ctx context.Context, userID, transactionID uuid.UUID, req usecase.UpdateTransactionRequest) (*entity.Transaction, error) {
	transaction, err := u.transactionRepo.GetByID(ctx, userID, transactionID)
	if err != nil {
		return nil, err
	}

	changed := false

	if req.RecipientSender != nil {
		if *req.RecipientSender == "" {
			return nil, fmt.Errorf("%w: recipient/sender is required", errs.ErrValidation)
		}
		transaction.RecipientSender = *req.RecipientSender
		changed = true
	}
	if req.Category != nil {
		if !entity.IsValidCategory(*req.Category) {
			return nil, fmt.Errorf("%w: %s", errs.ErrInvalidCategory, *req.Category)
		}
		transaction.Category = entity.Category(*req.Category)
		changed = true
	}
	if req.TransactionDate != nil {
		if req.TransactionDate.After(u.timeProvider.Now()) {
			return nil, errs.ErrFutureTransactionDate
		}
		transaction.TransactionDate = *req.TransactionDate
		changed = true
	}
	if req.Amount != nil {
		amount, err := entity.ParsePositiveAmount(*req.Amount)
		if err != nil {
			return nil, err
		}
		transaction.Amount = amount
		changed = true
	}
	if req.TransactionType != nil {
		switch entity.TransactionType(*req.TransactionType) {
		case entity.TypeIncome, entity.TypeExpense:
			transaction.TransactionType = entity.TransactionType(*req.TransactionType)
		default:
			return nil, fmt.Errorf("%w: %s", errs.ErrInvalidTransactionType, *req.TransactionType)
		}
		changed = true
	}
	if req.Recurring != nil {
		transaction.Recurring = *req.Recurring
		changed = true
	}
	if req.Avatar != nil {
		transaction.Avatar = *req.Avatar
		changed = true
	}

	if !changed {
		return transaction, nil
	}

	transaction.UpdatedAt = u.timeProvider.Now()

	if err := u.transactionRepo.Update(ctx, transaction); err != nil {
		u.logger.Error("Failed to update transaction", map[string]any{
			"user_id":        userID,
			"transaction_id": transactionID,
			"error":          err.Error(),
		})
		return nil, err
	}

	u.logger.Info("Transaction updated", map[string]any{
		"user_id":        userID,
		"transaction_id": transactionID,
	})

	return transaction, nil
}

// DeleteTransaction removes a transaction owned by the user
func (u *TransactionUseCase) DeleteTransaction(ctx context.Context, userID, transactionID uuid.UUID) error {
	if err := u.transactionRepo.Delete(ctx, userID, transactionID); err != nil {
		return err
	}

	u.logger.Info("Transaction deleted", map[string]any{
		"user_id":        userID,
		"transaction_id": transactionID,
	})
	return nil
}

// buildPagination derives the pagination envelope from page, limit and total
func buildPagination(page, limit int, total int64) usecase.Pagination {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return usecase.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}
