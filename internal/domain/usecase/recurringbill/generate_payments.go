package recurringbill

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sohhamm/personal-finance-app/internal/domain/entity"
	errs "github.com/sohhamm/personal-finance-app/internal/domain/error"
)

// GenerationMonths is how many months of payment rows a single generation
// pass materializes: the current month and the next.
const GenerationMonths = 2

// GeneratePaymentRecords ensures payment rows exist for the bill's due dates
// in the current and next calendar month. Due days beyond a month's length
// clamp to its last day, so a bill due on the 31st falls due April 30th.
// The current month is skipped when its due date has already passed. Rows
// are created with status pending and the bill's amount at generation time;
// later amount changes do not rewrite them. Calling this twice for the same
// bill never duplicates rows: an existing (bill, due date) row is left
// untouched, and the unique index backstops concurrent generation.
//
// Database errors propagate to the caller. There is no cross-month rollback:
// a failure on the second month leaves the first month's row in place.
func (u *RecurringBillUseCase) GeneratePaymentRecords(ctx context.Context, billID uuid.UUID, dueDay int) error {
	if dueDay < 1 || dueDay > 31 {
		return errs.ErrInvalidDueDay
	}

	bill, err := u.billRepo.GetBillByID(ctx, billID)
	if err != nil {
		return err
	}

	now := u.timeProvider.Now()
	year, month, _ := now.Date()

	for i := 0; i < GenerationMonths; i++ {
		// time.Date normalizes month overflow, so December + 1 lands in
		// January of the next year
		target := time.Date(year, month+time.Month(i), 1, 0, 0, 0, 0, time.UTC)
		dueDate := entity.DueDateIn(target.Year(), target.Month(), dueDay)

		if i == 0 && dueDate.Before(now) {
			continue
		}

		existing, err := u.billRepo.GetPaymentByDueDate(ctx, billID, dueDate)
		if err != nil && !errs.IsNotFoundError(err) {
			return err
		}
		if existing != nil {
			continue
		}

		payment := &entity.RecurringBillPayment{
			ID:              uuid.New(),
			RecurringBillID: billID,
			DueDate:         dueDate,
			Amount:          bill.Amount,
			Status:          entity.PaymentPending,
			CreatedAt:       now,
			UpdatedAt:       now,
		}

		if err := u.billRepo.CreatePayment(ctx, payment); err != nil {
			u.logger.Error("Failed to create payment record", map[string]any{
				"bill_id":  billID,
				"due_date": dueDate.Format(time.DateOnly),
				"error":    err.Error(),
			})
			return err
		}

		u.logger.Info("Payment record generated", map[string]any{
			"bill_id":  billID,
			"due_date": dueDate.Format(time.DateOnly),
			"amount":   entity.FormatAmount(payment.Amount),
		})
	}

	return nil
}
