package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sohhamm/personal-finance-app/internal/domain/entity"
)

// RecurringBillFilter narrows and orders a recurring bill listing
type RecurringBillFilter struct {
	Search string // case-insensitive match on name
	SortBy string // latest | oldest | a-z | z-a | highest | lowest
	Page   int
	Limit  int
}

// BillWithPayments pairs a bill with its payment rows for the current month
type BillWithPayments struct {
	Bill     *entity.RecurringBill
	Payments []*entity.RecurringBillPayment
}

// DueSoonBill pairs a pending payment with its owning bill for due-soon listings
type DueSoonBill struct {
	BillName string
	Avatar   string
	Amount   decimal.Decimal
	DueDate  time.Time
	Status   entity.PaymentStatus
}

// BillSummary aggregates the user's active bills and their current-month payments
type BillSummary struct {
	TotalBills     int
	PaidAmount     decimal.Decimal
	UpcomingAmount decimal.Decimal
	DueSoonAmount  decimal.Decimal
}

// RecurringBillRepository defines data access operations for recurring bills
// and their payment records
type RecurringBillRepository interface {
	// Create persists a new recurring bill
	Create(ctx context.Context, bill *entity.RecurringBill) error

	// GetByID retrieves a bill owned by the user
	GetByID(ctx context.Context, userID, id uuid.UUID) (*entity.RecurringBill, error)

	// GetBillByID retrieves a bill by ID without owner scoping; used by the
	// payment generator, which runs on behalf of the system
	GetBillByID(ctx context.Context, id uuid.UUID) (*entity.RecurringBill, error)

	// List returns a page of the user's active bills with their
	// current-month payments, plus the unpaged total count
	List(ctx context.Context, userID uuid.UUID, filter RecurringBillFilter, monthStart, monthEnd time.Time) ([]*BillWithPayments, int64, error)

	// Update persists changes to an existing bill
	Update(ctx context.Context, bill *entity.RecurringBill) error

	// Delete removes a bill owned by the user; payment rows cascade
	Delete(ctx context.Context, userID, id uuid.UUID) error

	// CreatePayment persists a new payment record. A row already existing
	// for the (bill, due date) pair surfaces as a duplicate error.
	CreatePayment(ctx context.Context, payment *entity.RecurringBillPayment) error

	// GetPaymentByDueDate retrieves the payment row for a bill and due
	// date, if one exists
	GetPaymentByDueDate(ctx context.Context, billID uuid.UUID, dueDate time.Time) (*entity.RecurringBillPayment, error)

	// GetPaymentForUser retrieves a payment row whose owning bill belongs
	// to the user
	GetPaymentForUser(ctx context.Context, userID, paymentID uuid.UUID) (*entity.RecurringBillPayment, error)

	// UpdatePayment persists changes to an existing payment record
	UpdatePayment(ctx context.Context, payment *entity.RecurringBillPayment) error

	// Summary aggregates the user's active bills: total count, paid and
	// pending sums for payments due within [monthStart, monthEnd], and the
	// pending sum for payments due on or before dueSoonEnd
	Summary(ctx context.Context, userID uuid.UUID, monthStart, monthEnd, dueSoonEnd time.Time) (*BillSummary, error)

	// DueSoon lists pending payments of active bills with due dates within
	// [from, to], due date ascending, capped at limit
	DueSoon(ctx context.Context, userID uuid.UUID, from, to time.Time, limit int) ([]*DueSoonBill, error)
}
