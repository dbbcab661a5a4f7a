package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/sohhamm/personal-finance-app/internal/domain/entity"
	"github.com/sohhamm/personal-finance-app/internal/domain/port/persistence"
)

// CreateRecurringBillRequest represents an incoming bill creation request
type CreateRecurringBillRequest struct {
	Name     string
	Amount   string
	DueDay   int
	Category string
	Avatar   string
}

// UpdateRecurringBillRequest carries the optional fields of a bill update;
// nil fields are left unchanged
type UpdateRecurringBillRequest struct {
	Name     *string
	Amount   *string
	DueDay   *int
	Category *string
	Avatar   *string
	IsActive *bool
}

// RecurringBillPage is one page of a bill listing, each bill carrying its
// current-month payment rows
type RecurringBillPage struct {
	Data       []*persistence.BillWithPayments
	Pagination Pagination
}

// RecurringBillUseCase defines methods for recurring bill business operations
type RecurringBillUseCase interface {
	// CreateRecurringBill creates a bill and materializes its payment rows
	// for the current and next month
	CreateRecurringBill(ctx context.Context, userID uuid.UUID, req CreateRecurringBillRequest) (*entity.RecurringBill, error)

	// GetRecurringBill retrieves one bill owned by the user
	GetRecurringBill(ctx context.Context, userID, billID uuid.UUID) (*entity.RecurringBill, error)

	// GetRecurringBills returns a filtered, sorted page of the user's
	// active bills with current-month payments
	GetRecurringBills(ctx context.Context, userID uuid.UUID, filter persistence.RecurringBillFilter) (*RecurringBillPage, error)

	// UpdateRecurringBill applies the non-nil fields of the request
	UpdateRecurringBill(ctx context.Context, userID, billID uuid.UUID, req UpdateRecurringBillRequest) (*entity.RecurringBill, error)

	// DeleteRecurringBill removes a bill and its payment rows
	DeleteRecurringBill(ctx context.Context, userID, billID uuid.UUID) error

	// MarkPaymentPaid settles a payment record, optionally linking the
	// settling transaction
	MarkPaymentPaid(ctx context.Context, userID, paymentID uuid.UUID, transactionID *uuid.UUID) (*entity.RecurringBillPayment, error)

	// GetBillsDueSoon lists pending payments falling due within the
	// transaction-anchored due-soon window
	GetBillsDueSoon(ctx context.Context, userID uuid.UUID) ([]*persistence.DueSoonBill, error)

	// GeneratePaymentRecords idempotently materializes payment rows for
	// the bill's current and next month due dates
	GeneratePaymentRecords(ctx context.Context, billID uuid.UUID, dueDay int) error
}
