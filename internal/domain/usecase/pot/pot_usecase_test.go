package pot

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
	"github.com/sohhamm/personal-finance-app/internal/domain/port/usecase"
	"github.com/sohhamm/personal-finance-app/internal/infrastructure/adapter/logger"
	mockCore "github.com/sohhamm/personal-finance-app/mocks/port/core"
	mockPersistence "github.com/sohhamm/personal-finance-app/mocks/port/persistence"
)

func TestCreatePot(t *testing.T) {
	fixedTime := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()

	t.Run("Creates a pot with zero total", func(t *testing.T) {
		// Arrange
		mockPotRepo := new(mockPersistence.MockPotRepository)
		mockTimeProvider := new(mockCore.MockTimeProvider)
		mockTimeProvider.On("Now").Return(fixedTime)
		mockPotRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Pot")).Return(nil)

		useCase := NewPotUseCase(mockPotRepo, mockTimeProvider, logger.NewNoopLogger())

		// Act
		pot, err := useCase.CreatePot(context.Background(), userID, usecase.CreatePotRequest{
			Name:   "Holiday",
			Target: "1500.00",
			Theme:  "#277C78",
		})

		// Assert
		assert.NoError(t, err)
		assert.True(t, pot.Total.IsZero())
		mockPotRepo.AssertExpectations(t)
	})

	t.Run("Invalid target never reaches the store", func(t *testing.T) {
		// Arrange
		mockPotRepo := new(mockPersistence.MockPotRepository)

		useCase := NewPotUseCase(mockPotRepo, new(mockCore.MockTimeProvider), logger.NewNoopLogger())

		// Act
		_, err := useCase.CreatePot(context.Background(), userID, usecase.CreatePotRequest{
			Name:   "Holiday",
			Target: "-10.00",
		})

		// Assert
		assert.ErrorIs(t, err, errs.ErrNegativeAmount)
		mockPotRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestAddMoney(t *testing.T) {
	fixedTime := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()
	potID := uuid.New()

	t.Run("Increases and persists the total", func(t *testing.T) {
		// Arrange
		mockPotRepo := new(mockPersistence.MockPotRepository)
		mockTimeProvider := new(mockCore.MockTimeProvider)
		mockTimeProvider.On("Now").Return(fixedTime)

		pot := &entity.Pot{ID: potID, UserID: userID, Total: decimal.RequireFromString("100.00")}
		mockPotRepo.On("GetByID", mock.Anything, userID, potID).Return(pot, nil)
		mockPotRepo.On("Update", mock.Anything, pot).Return(nil)

		useCase := NewPotUseCase(mockPotRepo, mockTimeProvider, logger.NewNoopLogger())

		// Act
		updated, err := useCase.AddMoney(context.Background(), userID, potID, "50.00")

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, "150", updated.Total.String())
		mockPotRepo.AssertExpectations(t)
	})
}

func TestWithdrawMoney(t *testing.T) {
	fixedTime := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()
	potID := uuid.New()

	t.Run("Decreases and persists the total", func(t *testing.T) {
		// Arrange
		mockPotRepo := new(mockPersistence.MockPotRepository)
		mockTimeProvider := new(mockCore.MockTimeProvider)
		mockTimeProvider.On("Now").Return(fixedTime)

		pot := &entity.Pot{ID: potID, UserID: userID, Total: decimal.RequireFromString("200.00")}
		mockPotRepo.On("GetByID", mock.Anything, userID, potID).Return(pot, nil)
		mockPotRepo.On("Update", mock.Anything, pot).Return(nil)

		useCase := NewPotUseCase(mockPotRepo, mockTimeProvider, logger.NewNoopLogger())

		// Act
		updated, err := useCase.WithdrawMoney(context.Background(), userID, potID, "75.00")

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, "125", updated.Total.String())
		mockPotRepo.AssertExpectations(t)
	})

	t.Run("Insufficient funds skips the store and keeps the total", func(t *testing.T) {
		// Arrange
		mockPotRepo := new(mockPersistence.MockPotRepository)
		mockTimeProvider := new(mockCore.MockTimeProvider)

		pot := &entity.Pot{ID: potID, UserID: userID, Total: decimal.RequireFromString("50.00")}
		mockPotRepo.On("GetByID", mock.Anything, userID, potID).Return(pot, nil)

		useCase := NewPotUseCase(mockPotRepo, mockTimeProvider, logger.NewNoopLogger())

		// Act
		_, err := useCase.WithdrawMoney(context.Background(), userID, potID, "75.00")

		// Assert
		assert.ErrorIs(t, err, errs.ErrInsufficientFunds)
		assert.Equal(t, "50", pot.Total.String())
		mockPotRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestDeletePot(t *testing.T) {
	userID := uuid.New()
	potID := uuid.New()

	t.Run("Returns the held total", func(t *testing.T) {
		// Arrange
		mockPotRepo := new(mockPersistence.MockPotRepository)
		pot := &entity.Pot{ID: potID, UserID: userID, Total: decimal.RequireFromString("250.00")}
		mockPotRepo.On("GetByID", mock.Anything, userID, potID).Return(pot, nil)
		mockPotRepo.On("Delete", mock.Anything, userID, potID).Return(nil)

		useCase := NewPotUseCase(mockPotRepo, new(mockCore.MockTimeProvider), logger.NewNoopLogger())

		// Act
		returned, err := useCase.DeletePot(context.Background(), userID, potID)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, "250", returned.String())
		mockPotRepo.AssertExpectations(t)
	})

	t.Run("Unknown pot surfaces not found", func(t *testing.T) {
		// Arrange
		mockPotRepo := new(mockPersistence.MockPotRepository)
		mockPotRepo.On("GetByID", mock.Anything, userID, potID).Return(nil, errs.ErrPotNotFound)

		useCase := NewPotUseCase(mockPotRepo, new(mockCore.MockTimeProvider), logger.NewNoopLogger())

		// Act
		_, err := useCase.DeletePot(context.Background(), userID, potID)

		// Assert
		assert.ErrorIs(t, err, errs.ErrPotNotFound)
		mockPotRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestGetPotProgress(t *testing.T) {
	userID := uuid.New()
	potID := uuid.New()

	t.Run("Computes progress and remaining", func(t *testing.T) {
		// Arrange
		mockPotRepo := new(mockPersistence.MockPotRepository)
		pot := &entity.Pot{
			ID:     potID,
			Target: decimal.RequireFromString("2000.00"),
			Total:  decimal.RequireFromString("500.00"),
		}
		mockPotRepo.On("GetByID", mock.Anything, userID, potID).Return(pot, nil)

		useCase := NewPotUseCase(mockPotRepo, new(mockCore.MockTimeProvider), logger.NewNoopLogger())

		// Act
		progress, err := useCase.GetPotProgress(context.Background(), userID, potID)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, "25", progress.Progress.String())
		assert.Equal(t, "1500", progress.Remaining.String())
	})
}
