package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/sohhamm/personal-finance-app/internal/domain/entity"
	"github.com/sohhamm/personal-finance-app/internal/domain/port/persistence"
)

// MockRecurringBillRepository is a mock implementation of the
// RecurringBillRepository interface
type MockRecurringBillRepository struct {
	mock.Mock
}

// Create mocks the Create method
func (m *MockRecurringBillRepository) Create(ctx context.Context, bill *entity.RecurringBill) error {
	args := m.Called(ctx, bill)
	return args.Error(0)
}

// GetByID mocks the GetByID method
func (m *MockRecurringBillRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*entity.RecurringBill, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.RecurringBill), args.Error(1)
}

// GetBillByID mocks the GetBillByID method
func (m *MockRecurringBillRepository) GetBillByID(ctx context.Context, id uuid.UUID) (*entity.RecurringBill, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.RecurringBill), args.Error(1)
}

// List mocks the List method
func (m *MockRecurringBillRepository) List(ctx context.Context, userID uuid.UUID, filter persistence.RecurringBillFilter, monthStart, monthEnd time.Time) ([]*persistence.BillWithPayments, int64, error) {
	args := m.Called(ctx, userID, filter, monthStart, monthEnd)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*persistence.BillWithPayments), args.Get(1).(int64), args.Error(2)
}

// Update mocks the Update method
func (m *MockRecurringBillRepository) Update(ctx context.Context, bill *entity.RecurringBill) error {
	args := m.Called(ctx, bill)
	return args.Error(0)
}

// Delete mocks the Delete method
func (m *MockRecurringBillRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

// CreatePayment mocks the CreatePayment method
func (m *MockRecurringBillRepository) CreatePayment(ctx context.Context, payment *entity.RecurringBillPayment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

// GetPaymentByDueDate mocks the GetPaymentByDueDate method
func (m *MockRecurringBillRepository) GetPaymentByDueDate(ctx context.Context, billID uuid.UUID, dueDate time.Time) (*entity.RecurringBillPayment, error) {
	args := m.Called(ctx, billID, dueDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.RecurringBillPayment), args.Error(1)
}

// GetPaymentForUser mocks the GetPaymentForUser method
func (m *MockRecurringBillRepository) GetPaymentForUser(ctx context.Context, userID, paymentID uuid.UUID) (*entity.RecurringBillPayment, error) {
	args := m.Called(ctx, userID, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.RecurringBillPayment), args.Error(1)
}

// UpdatePayment mocks the UpdatePayment method
func (m *MockRecurringBillRepository) UpdatePayment(ctx context.Context, payment *entity.RecurringBillPayment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

// Summary mocks the Summary method
func (m *MockRecurringBillRepository) Summary(ctx context.Context, userID uuid.UUID, monthStart, monthEnd, dueSoonEnd time.Time) (*persistence.BillSummary, error) {
	args := m.Called(ctx, userID, monthStart, monthEnd, dueSoonEnd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*persistence.BillSummary), args.Error(1)
}

// DueSoon mocks the DueSoon method
func (m *MockRecurringBillRepository) DueSoon(ctx context.Context, userID uuid.UUID, from, to time.Time, limit int) ([]*persistence.DueSoonBill, error) {
	args := m.Called(ctx, userID, from, to, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*persistence.DueSoonBill), args.Error(1)
}
