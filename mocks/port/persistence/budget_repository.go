package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/sohhamm/personal-finance-app/internal/domain/entity"
)

// MockBudgetRepository is a mock implementation of the BudgetRepository interface
type MockBudgetRepository struct {
	mock.Mock
}

// Create mocks the Create method
func (m *MockBudgetRepository) Create(ctx context.Context, budget *entity.Budget) error {
	args := m.Called(ctx, budget)
	return args.Error(0)
}

// GetByID mocks the GetByID method
func (m *MockBudgetRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*entity.Budget, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Budget), args.Error(1)
}

// GetByCategory mocks the GetByCategory method
func (m *MockBudgetRepository) GetByCategory(ctx context.Context, userID uuid.UUID, category entity.Category) (*entity.Budget, error) {
	args := m.Called(ctx, userID, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Budget), args.Error(1)
}

// List mocks the List method
func (m *MockBudgetRepository) List(ctx context.Context, userID uuid.UUID) ([]*entity.Budget, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Budget), args.Error(1)
}

// ListByCategory mocks the ListByCategory method
func (m *MockBudgetRepository) ListByCategory(ctx context.Context, userID uuid.UUID) ([]*entity.Budget, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Budget), args.Error(1)
}

// Update mocks the Update method
func (m *MockBudgetRepository) Update(ctx context.Context, budget *entity.Budget) error {
	args := m.Called(ctx, budget)
	return args.Error(0)
}

// Delete mocks the Delete method
func (m *MockBudgetRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}
