package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/sohhamm/personal-finance-app/internal/domain/entity"
	"github.com/sohhamm/personal-finance-app/internal/domain/port/persistence"
)

// MockTransactionRepository is a mock implementation of the
// TransactionRepository interface
type MockTransactionRepository struct {
	mock.Mock
}

// Create mocks the Create method
func (m *MockTransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	args := m.Called(ctx, transaction)
	return args.Error(0)
}

// GetByID mocks the GetByID method
func (m *MockTransactionRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*entity.Transaction, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Transaction), args.Error(1)
}

// List mocks the List method
func (m *MockTransactionRepository) List(ctx context.Context, userID uuid.UUID, filter persistence.TransactionFilter) ([]*entity.Transaction, int64, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*entity.Transaction), args.Get(1).(int64), args.Error(2)
}

// Update mocks the Update method
func (m *MockTransactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	args := m.Called(ctx, transaction)
	return args.Error(0)
}

// Delete mocks the Delete method
func (m *MockTransactionRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

// CurrentBalance mocks the CurrentBalance method
func (m *MockTransactionRepository) CurrentBalance(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// MonthStats mocks the MonthStats method
func (m *MockTransactionRepository) MonthStats(ctx context.Context, userID uuid.UUID, monthStart, monthEnd time.Time) (decimal.Decimal, decimal.Decimal, error) {
	args := m.Called(ctx, userID, monthStart, monthEnd)
	return args.Get(0).(decimal.Decimal), args.Get(1).(decimal.Decimal), args.Error(2)
}

// CategoryExpenseSum mocks the CategoryExpenseSum method
func (m *MockTransactionRepository) CategoryExpenseSum(ctx context.Context, userID uuid.UUID, category entity.Category, from, to time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, userID, category, from, to)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// CategoryExpenseSums mocks the CategoryExpenseSums method
func (m *MockTransactionRepository) CategoryExpenseSums(ctx context.Context, userID uuid.UUID, from, to time.Time) (map[entity.Category]decimal.Decimal, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[entity.Category]decimal.Decimal), args.Error(1)
}

// Recent mocks the Recent method
func (m *MockTransactionRepository) Recent(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Transaction, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Transaction), args.Error(1)
}

// LatestByCategory mocks the LatestByCategory method
func (m *MockTransactionRepository) LatestByCategory(ctx context.Context, userID uuid.UUID, category entity.Category, limit int) ([]*entity.Transaction, error) {
	args := m.Called(ctx, userID, category, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Transaction), args.Error(1)
}

// LatestTransactionDate mocks the LatestTransactionDate method
func (m *MockTransactionRepository) LatestTransactionDate(ctx context.Context, userID uuid.UUID) (*time.Time, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*time.Time), args.Error(1)
}

// MonthlyTotals mocks the MonthlyTotals method
func (m *MockTransactionRepository) MonthlyTotals(ctx context.Context, userID uuid.UUID, since time.Time) ([]persistence.MonthlyTotal, error) {
	args := m.Called(ctx, userID, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]persistence.MonthlyTotal), args.Error(1)
}
