package transaction

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/sohhamm/personal-finance-app/internal/domain/entity"
	errs "github.com/sohhamm/personal-finance-app/internal/domain/error"
	"github.com/sohhamm/personal-finance-app/internal/domain/port/persistence"
	"github.com/sohhamm/personal-finance-app/internal/domain/port/usecase"
	"github.com/sohhamm/personal-finance-app/internal/infrastructure/adapter/logger"
	mockCore "github.com/sohhamm/personal-finance-app/mocks/port/core"
	mockPersistence "github.com/sohhamm/personal-finance-app/mocks/port/persistence"
)

func TestCreateTransaction(t *testing.T) {
	fixedTime := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()

	t.Run("Persists a valid transaction", func(t *testing.T) {
		// Arrange
		mockTransactionRepo := new(mockPersistence.MockTransactionRepository)
		mockTimeProvider := new(mockCore.MockTimeProvider)
		mockTimeProvider.On("Now").Return(fixedTime)
		mockTransactionRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Transaction")).Return(nil)

		useCase := NewTransactionUseCase(mockTransactionRepo, mockTimeProvider, logger.NewNoopLogger())

		// Act
		transaction, err := useCase.CreateTransaction(context.Background(), userID, usecase.CreateTransactionRequest{
			RecipientSender: "Urban Services Hub",
			Category:        "Bills",
			TransactionDate: time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
			Amount:          "45.99",
			TransactionType: "expense",
		})

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, userID, transaction.UserID)
		assert.True(t, transaction.Amount.Equal(decimal.RequireFromString("45.99")))
		mockTransactionRepo.AssertExpectations(t)
	})

	t.Run("Future-dated transaction never reaches the store", func(t *testing.T) {
		// Arrange
		mockTransactionRepo := new(mockPersistence.MockTransactionRepository)
		mockTimeProvider := new(mockCore.MockTimeProvider)
		mockTimeProvider.On("Now").Return(fixedTime)

		useCase := NewTransactionUseCase(mockTransactionRepo, mockTimeProvider, logger.NewNoopLogger())

		// Act
		_, err := useCase.CreateTransaction(context.Background(), userID, usecase.CreateTransactionRequest{
			RecipientSender: "Urban Services Hub",
			Category:        "Bills",
			TransactionDate: fixedTime.AddDate(0, 0, 1),
			Amount:          "45.99",
			TransactionType: "expense",
		})

		// Assert
		assert.ErrorIs(t, err, errs.ErrFutureTransactionDate)
		mockTransactionRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestGetTransactions(t *testing.T) {
	userID := uuid.New()

	t.Run("Applies listing defaults", func(t *testing.T) {
		// Arrange
		mockTransactionRepo := new(mockPersistence.MockTransactionRepository)
		expectedFilter := persistence.TransactionFilter{Page: DefaultPage, Limit: DefaultLimit}
		mockTransactionRepo.On("List", mock.Anything, userID, expectedFilter).
			Return([]*entity.Transaction{}, int64(0), nil)

		useCase := NewTransactionUseCase(mockTransactionRepo, new(mockCore.MockTimeProvider), logger.NewNoopLogger())

		// Act
		page, err := useCase.GetTransactions(context.Background(), userID, persistence.TransactionFilter{})

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, DefaultPage, page.Pagination.Page)
		assert.Equal(t, DefaultLimit, page.Pagination.Limit)
		assert.False(t, page.Pagination.HasNext)
		assert.False(t, page.Pagination.HasPrev)
		mockTransactionRepo.AssertExpectations(t)
	})

	t.Run("Caps the limit and derives pagination", func(t *testing.T) {
		// Arrange
		mockTransactionRepo := new(mockPersistence.MockTransactionRepository)
		expectedFilter := persistence.TransactionFilter{
			Search: "coffee", SortBy: "amount", SortOrder: "asc", Page: 3, Limit: MaxLimit,
		}
		mockTransactionRepo.On("List", mock.Anything, userID, expectedFilter).
			Return([]*entity.Transaction{}, int64(450), nil)

		useCase := NewTransactionUseCase(mockTransactionRepo, new(mockCore.MockTimeProvider), logger.NewNoopLogger())

		// Act
		page, err := useCase.GetTransactions(context.Background(), userID, persistence.TransactionFilter{
			Search: "coffee", SortBy: "amount", SortOrder: "asc", Page: 3, Limit: 1000,
		})

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, int64(450), page.Pagination.Total)
		assert.Equal(t, 5, page.Pagination.TotalPages)
		assert.True(t, page.Pagination.HasNext)
		assert.True(t, page.Pagination.HasPrev)
	})
}

func TestUpdateTransaction(t *testing.T) {
	fixedTime := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()
	transactionID := uuid.New()

	existing := func() *entity.Transaction {
		return &entity.Transaction{
			ID:              transactionID,
			UserID:          userID,
			RecipientSender: "Urban Services Hub",
			Category:        entity.CategoryBills,
			Amount:          decimal.RequireFromString("45.99"),
			TransactionType: entity.TypeExpense,
		}
	}

	t.Run("Applies only the provided fields", func(t *testing.T) {
		// Arrange
		mockTransactionRepo := new(mockPersistence.MockTransactionRepository)
		mockTimeProvider := new(mockCore.MockTimeProvider)
		mockTimeProvider.On("Now").Return(fixedTime)

		transaction := existing()
		mockTransactionRepo.On("GetByID", mock.Anything, userID, transactionID).Return(transaction, nil)
		mockTransactionRepo.On("Update", mock.Anything, transaction).Return(nil)

		useCase := NewTransactionUseCase(mockTransactionRepo, mockTimeProvider, logger.NewNoopLogger())
		newAmount := "60.00"

		// Act
		updated, err := useCase.UpdateTransaction(context.Background(), userID, transactionID, usecase.UpdateTransactionRequest{
			Amount: &newAmount,
		})

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, "60", updated.Amount.String())
		assert.Equal(t, "Urban Services Hub", updated.RecipientSender)
		assert.Equal(t, fixedTime, updated.UpdatedAt)
		mockTransactionRepo.AssertExpectations(t)
	})

	t.Run("Empty update returns the transaction untouched", func(t *testing.T) {
		// Arrange
		mockTransactionRepo := new(mockPersistence.MockTransactionRepository)
		transaction := existing()
		mockTransactionRepo.On("GetByID", mock.Anything, userID, transactionID).Return(transaction, nil)

		useCase := NewTransactionUseCase(mockTransactionRepo, new(mockCore.MockTimeProvider), logger.NewNoopLogger())

		// Act
		updated, err := useCase.UpdateTransaction(context.Background(), userID, transactionID, usecase.UpdateTransactionRequest{})

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, transaction, updated)
		mockTransactionRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Invalid type change is rejected", func(t *testing.T) {
		// Arrange
		mockTransactionRepo := new(mockPersistence.MockTransactionRepository)
		mockTransactionRepo.On("GetByID", mock.Anything, userID, transactionID).Return(existing(), nil)

		useCase := NewTransactionUseCase(mockTransactionRepo, new(mockCore.MockTimeProvider), logger.NewNoopLogger())
		badType := "transfer"

		// Act
		_, err := useCase.UpdateTransaction(context.Background(), userID, transactionID, usecase.UpdateTransactionRequest{
			TransactionType: &badType,
		})

		// Assert
		assert.ErrorIs(t, err, errs.ErrInvalidTransactionType)
		mockTransactionRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestDeleteTransaction(t *testing.T) {
	userID := uuid.New()
	transactionID := uuid.New()

	t.Run("Unknown transaction surfaces not found", func(t *testing.T) {
		// Arrange
		mockTransactionRepo := new(mockPersistence.MockTransactionRepository)
		mockTransactionRepo.On("Delete", mock.Anything, userID, transactionID).
			Return(errs.ErrTransactionNotFound)

		useCase := NewTransactionUseCase(mockTransactionRepo, new(mockCore.MockTimeProvider), logger.NewNoopLogger())

		// Act
		err := useCase.DeleteTransaction(context.Background(), userID, transactionID)

		// Assert
		assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
	})
}
