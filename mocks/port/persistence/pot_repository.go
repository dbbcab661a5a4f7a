package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/sohhamm/personal-finance-app/internal/domain/entity"
)

// MockPotRepository is a mock implementation of the PotRepository interface
type MockPotRepository struct {
	mock.Mock
}

// Create mocks the Create method
func (m *MockPotRepository) Create(ctx context.Context, pot *entity.Pot) error {
	args := m.Called(ctx, pot)
	return args.Error(0)
}

// GetByID mocks the GetByID method
func (m *MockPotRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*entity.Pot, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Pot), args.Error(1)
}

// List mocks the List method
func (m *MockPotRepository) List(ctx context.Context, userID uuid.UUID) ([]*entity.Pot, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Pot), args.Error(1)
}

// Update mocks the Update method
func (m *MockPotRepository) Update(ctx context.Context, pot *entity.Pot) error {
	args := m.Called(ctx, pot)
	return args.Error(0)
}

// Delete mocks the Delete method
func (m *MockPotRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}
