package recurringbill

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

func TestCreateRecurringBill(t *testing.T) {
	fixedTime := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()

	t.Run("Creates the bill and materializes payment rows", func(t *testing.T) {
		// Arrange
		mockBillRepo := new(mockPersistence.MockRecurringBillRepository)
		mockTimeProvider := new(mockCore.MockTimeProvider)
		mockTimeProvider.On("Now").Return(fixedTime)

		mockBillRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.RecurringBill")).Return(nil)
		mockBillRepo.On("GetBillByID", mock.Anything, mock.Anything).
			Return(&entity.RecurringBill{Amount: decimal.RequireFromString("85.00"), DueDay: 20}, nil)
		mockBillRepo.On("GetPaymentByDueDate", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errs.ErrPaymentNotFound)
		mockBillRepo.On("CreatePayment", mock.Anything, mock.AnythingOfType("*entity.RecurringBillPayment")).
			Return(nil)

		useCase := NewRecurringBillUseCase(
			mockBillRepo, new(mockPersistence.MockTransactionRepository),
			mockTimeProvider, logger.NewNoopLogger(),
		)

		// Act
		bill, err := useCase.CreateRecurringBill(context.Background(), userID, usecase.CreateRecurringBillRequest{
			Name:     "Electricity",
			Amount:   "85.00",
			DueDay:   20,
			Category: "Bills",
		})

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, "Electricity", bill.Name)
		assert.True(t, bill.IsActive)
		mockBillRepo.AssertNumberOfCalls(t, "CreatePayment", 2)
	})

	t.Run("Validation failure never reaches the store", func(t *testing.T) {
		// Arrange
		mockBillRepo := new(mockPersistence.MockRecurringBillRepository)
		mockTimeProvider := new(mockCore.MockTimeProvider)
		mockTimeProvider.On("Now").Return(fixedTime).Maybe()

		useCase := NewRecurringBillUseCase(
			mockBillRepo, new(mockPersistence.MockTransactionRepository),
			mockTimeProvider, logger.NewNoopLogger(),
		)

		// Act
		_, err := useCase.CreateRecurringBill(context.Background(), userID, usecase.CreateRecurringBillRequest{
			Name:     "Electricity",
			Amount:   "85.00",
			DueDay:   45,
			Category: "Bills",
		})

		// Assert
		assert.ErrorIs(t, err, errs.ErrInvalidDueDay)
		mockBillRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestGetRecurringBills(t *testing.T) {
	fixedTime := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()

	t.Run("Applies listing defaults and month bounds", func(t *testing.T) {
		// Arrange
		mockBillRepo := new(mockPersistence.MockRecurringBillRepository)
		mockTimeProvider := new(mockCore.MockTimeProvider)
		mockTimeProvider.On("Now").Return(fixedTime)

		monthStart := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		monthEnd := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
		expectedFilter := persistence.RecurringBillFilter{Page: DefaultPage, Limit: DefaultLimit}
		mockBillRepo.On("List", mock.Anything, userID, expectedFilter, monthStart, monthEnd).
			Return([]*persistence.BillWithPayments{}, int64(0), nil)

		useCase := NewRecurringBillUseCase(
			mockBillRepo, new(mockPersistence.MockTransactionRepository),
			mockTimeProvider, logger.NewNoopLogger(),
		)

		// Act
		page, err := useCase.GetRecurringBills(context.Background(), userID, persistence.RecurringBillFilter{})

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, DefaultPage, page.Pagination.Page)
		assert.Equal(t, DefaultLimit, page.Pagination.Limit)
		mockBillRepo.AssertExpectations(t)
	})

	t.Run("Caps the limit and derives pagination", func(t *testing.T) {
		// Arrange
		mockBillRepo := new(mockPersistence.MockRecurringBillRepository)
		mockTimeProvider := new(mockCore.MockTimeProvider)
		mockTimeProvider.On("Now").Return(fixedTime)

		mockBillRepo.On("List", mock.Anything, userID,
			persistence.RecurringBillFilter{SortBy: "highest", Page: 2, Limit: MaxLimit},
			mock.Anything, mock.Anything).
			Return([]*persistence.BillWithPayments{}, int64(250), nil)

		useCase := NewRecurringBillUseCase(
			mockBillRepo, new(mockPersistence.MockTransactionRepository),
			mockTimeProvider, logger.NewNoopLogger(),
		)

		// Act
		page, err := useCase.GetRecurringBills(context.Background(), userID,
			persistence.RecurringBillFilter{SortBy: "highest", Page: 2, Limit: 500})

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, int64(250), page.Pagination.Total)
		assert.Equal(t, 3, page.Pagination.TotalPages)
		assert.True(t, page.Pagination.HasNext)
		assert.True(t, page.Pagination.HasPrev)
	})
}

func TestMarkPaymentPaid(t *testing.T) {
	fixedTime := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()
	paymentID := uuid.New()

	t.Run("Settles the payment and links the transaction", func(t *testing.T) {
		// Arrange
		mockBillRepo := new(mockPersistence.MockRecurringBillRepository)
		mockTimeProvider := new(mockCore.MockTimeProvider)
		mockTimeProvider.On("Now").Return(fixedTime)

		payment := &entity.RecurringBillPayment{ID: paymentID, Status: entity.PaymentPending}
		mockBillRepo.On("GetPaymentForUser", mock.Anything, userID, paymentID).Return(payment, nil)
		mockBillRepo.On("UpdatePayment", mock.Anything, payment).Return(nil)

		useCase := NewRecurringBillUseCase(
			mockBillRepo, new(mockPersistence.MockTransactionRepository),
			mockTimeProvider, logger.NewNoopLogger(),
		)
		transactionID := uuid.New()

		// Act
		updated, err := useCase.MarkPaymentPaid(context.Background(), userID, paymentID, &transactionID)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, entity.PaymentPaid, updated.Status)
		assert.Equal(t, &transactionID, updated.TransactionID)
		assert.Equal(t, fixedTime, *updated.PaidDate)
		mockBillRepo.AssertExpectations(t)
	})

	t.Run("Unknown payment surfaces not found", func(t *testing.T) {
		// Arrange
		mockBillRepo := new(mockPersistence.MockRecurringBillRepository)
		mockBillRepo.On("GetPaymentForUser", mock.Anything, userID, paymentID).
			Return(nil, errs.ErrPaymentNotFound)

		useCase := NewRecurringBillUseCase(
			mockBillRepo, new(mockPersistence.MockTransactionRepository),
			new(mockCore.MockTimeProvider), logger.NewNoopLogger(),
		)

		// Act
		_, err := useCase.MarkPaymentPaid(context.Background(), userID, paymentID, nil)

		// Assert
		assert.ErrorIs(t, err, errs.ErrPaymentNotFound)
		mockBillRepo.AssertNotCalled(t, "UpdatePayment", mock.Anything, mock.Anything)
	})
}

func TestGetBillsDueSoon(t *testing.T) {
	fixedTime := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()

	t.Run("Window is anchored to the latest transaction date", func(t *testing.T) {
		// Arrange
		mockBillRepo := new(mockPersistence.MockRecurringBillRepository)
		mockTransactionRepo := new(mockPersistence.MockTransactionRepository)
		mockTimeProvider := new(mockCore.MockTimeProvider)
		mockTimeProvider.On("Now").Return(fixedTime)

		latest := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
		mockTransactionRepo.On("LatestTransactionDate", mock.Anything, userID).Return(&latest, nil)

		expectedFrom := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
		expectedTo := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC) // latest + 5 days
		dueSoon := []*persistence.DueSoonBill{{
			BillName: "Electricity",
			Amount:   decimal.RequireFromString("85.00"),
			DueDate:  expectedTo,
			Status:   entity.PaymentPending,
		}}
		mockBillRepo.On("DueSoon", mock.Anything, userID, expectedFrom, expectedTo, 0).Return(dueSoon, nil)

		useCase := NewRecurringBillUseCase(mockBillRepo, mockTransactionRepo, mockTimeProvider, logger.NewNoopLogger())

		// Act
		bills, err := useCase.GetBillsDueSoon(context.Background(), userID)

		// Assert
		assert.NoError(t, err)
		assert.Len(t, bills, 1)
		mockBillRepo.AssertExpectations(t)
	})

	t.Run("Falls back to now when the user has no transactions", func(t *testing.T) {
		// Arrange
		mockBillRepo := new(mockPersistence.MockRecurringBillRepository)
		mockTransactionRepo := new(mockPersistence.MockTransactionRepository)
		mockTimeProvider := new(mockCore.MockTimeProvider)
		mockTimeProvider.On("Now").Return(fixedTime)

		mockTransactionRepo.On("LatestTransactionDate", mock.Anything, userID).Return(nil, nil)

		expectedFrom := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
		expectedTo := fixedTime.AddDate(0, 0, DueSoonWindowDays)
		mockBillRepo.On("DueSoon", mock.Anything, userID, expectedFrom, expectedTo, 0).
			Return([]*persistence.DueSoonBill{}, nil)

		useCase := NewRecurringBillUseCase(mockBillRepo, mockTransactionRepo, mockTimeProvider, logger.NewNoopLogger())

		// Act
		bills, err := useCase.GetBillsDueSoon(context.Background(), userID)

		// Assert
		assert.NoError(t, err)
		assert.Empty(t, bills)
		mockBillRepo.AssertExpectations(t)
	})
}
