package recurringbill

import (
	"context"
	"fmt"
	"time"

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

// DueSoonWindowDays is the size of the due-soon window in days
const DueSoonWindowDays = 5

// RecurringBillUseCase implements recurring bill business logic including
// payment record generation
type RecurringBillUseCase struct {
	billRepo        persistence.RecurringBillRepository
	transactionRepo persistence.TransactionRepository
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
}

// NewRecurringBillUseCase creates a new recurring bill use case instance
func NewRecurringBillUseCase(
	billRepo persistence.RecurringBillRepository,
	transactionRepo persistence.TransactionRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.RecurringBillUseCase {
	return &RecurringBillUseCase{
		billRepo:        billRepo,
		transactionRepo: transactionRepo,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// CreateRecurringBill creates a bill and materializes its payment rows for
// the current and next month
func (u *RecurringBillUseCase) CreateRecurringBill(ctx context.Context, userID uuid.UUID, req usecase.CreateRecurringBillRequest) (*entity.RecurringBill, error) {
	bill, err := entity.NewRecurringBill(userID, req.Name, req.Amount, req.DueDay, req.Category, req.Avatar, u.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := u.billRepo.Create(ctx, bill); err != nil {
		u.logger.Error("Failed to create recurring bill", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, err
	}

	if err := u.GeneratePaymentRecords(ctx, bill.ID, bill.DueDay); err != nil {
		return nil, err
	}

	u.logger.Info("Recurring bill created", map[string]any{
		"user_id": userID,
		"bill_id": bill.ID,
		"due_day": bill.DueDay,
	})

	return bill, nil
}

// GetRecurringBill retrieves one bill owned by the user
func (u *RecurringBillUseCase) GetRecurringBill(ctx context.Context, userID, billID uuid.UUID) (*entity.RecurringBill, error) {
	return u.billRepo.GetByID(ctx, userID, billID)
}

// GetRecurringBills returns a filtered, sorted page of the user's active
// bills with current-month payments
func (u *RecurringBillUseCase) GetRecurringBills(ctx context.Context, userID uuid.UUID, filter persistence.RecurringBillFilter) (*usecase.RecurringBillPage, error) {
	if filter.Page < 1 {
		filter.Page = DefaultPage
	}
	if filter.Limit < 1 {
		filter.Limit = DefaultLimit
	}
	if filter.Limit > MaxLimit {
		filter.Limit = MaxLimit
	}

	monthStart, monthEnd := entity.MonthBounds(u.timeProvider.Now())

	data, total, err := u.billRepo.List(ctx, userID, filter, monthStart, monthEnd)
	if err != nil {
		u.logger.Error("Failed to list recurring bills", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, err
	}

	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))
	return &usecase.RecurringBillPage{
		Data: data,
		Pagination: usecase.Pagination{
			Page:       filter.Page,
			Limit:      filter.Limit,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    filter.Page < totalPages,
			HasPrev:    filter.Page > 1,
		},
	}, nil
}

// UpdateRecurringBill applies the non-nil fields of the request. Amount
// changes do not retroactively alter already-generated payment rows.
func (u *RecurringBillUseCase) UpdateRecurringBill(ctx context.Context, userID, billID uuid.UUID, req usecase.UpdateRecurringBillRequest) (*entity.RecurringBill, error) {
	bill, err := u.billRepo.GetByID(ctx, userID, billID)
	if err != nil {
		return nil, err
	}

	changed := false

	if req.Name != nil && *req.Name != "" {
		bill.Name = *req.Name
		changed = true
	}
	if req.Amount != nil {
		amount, err := entity.ParsePositiveAmount(*req.Amount)
		if err != nil {
			return nil, err
		}
		bill.Amount = amount
		changed = true
	}
	if req.DueDay != nil {
		if *req.DueDay < 1 || *req.DueDay > 31 {
			return nil, errs.ErrInvalidDueDay
		}
		bill.DueDay = *req.DueDay
		changed = true
	}
	if req.Category != nil {
		if !entity.IsValidCategory(*req.Category) {
			return nil, fmt.Errorf("%w: %s", errs.ErrInvalidCategory, *req.Category)
		}
		bill.Category = entity.Category(*req.Category)
		changed = true
	}
	if req.Avatar != nil {
		bill.Avatar = *req.Avatar
		changed = true
	}
	if req.IsActive != nil {
		bill.IsActive = *req.IsActive
		changed = true
	}

	if !changed {
		return bill, nil
	}

	bill.UpdatedAt = u.timeProvider.Now()

	if err := u.billRepo.Update(ctx, bill); err != nil {
		u.logger.Error("Failed to update recurring bill", map[string]any{
			"user_id": userID,
			"bill_id": billID,
			"error":   err.Error(),
		})
		return nil, err
	}

	u.logger.Info("Recurring bill updated", map[string]any{
		"user_id": userID,
		"bill_id": billID,
	})

	return bill, nil
}

// DeleteRecurringBill removes a bill and its payment rows
func (u *RecurringBillUseCase) DeleteRecurringBill(ctx context.Context, userID, billID uuid.UUID) error {
	if err := u.billRepo.Delete(ctx, userID, billID); err != nil {
		return err
	}

	u.logger.Info("Recurring bill deleted", map[string]any{
		"user_id": userID,
		"bill_id": billID,
	})
	return nil
}

// MarkPaymentPaid settles a payment record, optionally linking the settling
// transaction
func (u *RecurringBillUseCase) MarkPaymentPaid(ctx context.Context, userID, paymentID uuid.UUID, transactionID *uuid.UUID) (*entity.RecurringBillPayment, error) {
	payment, err := u.billRepo.GetPaymentForUser(ctx, userID, paymentID)
	if err != nil {
		return nil, err
	}

	payment.MarkPaid(transactionID, u.timeProvider)

	if err := u.billRepo.UpdatePayment(ctx, payment); err != nil {
		u.logger.Error("Failed to mark payment as paid", map[string]any{
			"user_id":    userID,
			"payment_id": paymentID,
			"error":      err.Error(),
		})
		return nil, err
	}

	u.logger.Info("Payment marked as paid", map[string]any{
		"user_id":    userID,
		"payment_id": paymentID,
	})

	return payment, nil
}

// GetBillsDueSoon lists pending payments falling due within the due-soon
// window. The window's upper bound is anchored to the user's most recent
// transaction date when one exists (falling back to wall-clock now), while
// the lower bound is always wall-clock today. The asymmetry mirrors the
// product behavior and is pending clarification; do not unify the two dates.
func (u *RecurringBillUseCase) GetBillsDueSoon(ctx context.Context, userID uuid.UUID) ([]*persistence.DueSoonBill, error) {
	from, to, err := u.dueSoonWindow(ctx, userID)
	if err != nil {
		return nil, err
	}

	bills, err := u.billRepo.DueSoon(ctx, userID, from, to, 0)
	if err != nil {
		u.logger.Error("Failed to list bills due soon", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, err
	}
	return bills, nil
}

// dueSoonWindow computes [today, referenceDate+window] for the user
func (u *RecurringBillUseCase) dueSoonWindow(ctx context.Context, userID uuid.UUID) (from, to time.Time, err error) {
	now := u.timeProvider.Now()

	referenceDate := now
	latest, err := u.transactionRepo.LatestTransactionDate(ctx, userID)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if latest != nil {
		referenceDate = *latest
	}

	from = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	to = referenceDate.AddDate(0, 0, DueSoonWindowDays)
	return from, to, nil
}
