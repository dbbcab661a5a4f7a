package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/sohhamm/personal-finance-app/internal/domain/entity"
	errs "github.com/sohhamm/personal-finance-app/internal/domain/error"
	coreport "github.com/sohhamm/personal-finance-app/internal/domain/port/core"
	"github.com/sohhamm/personal-finance-app/internal/domain/port/persistence"
	"github.com/sohhamm/personal-finance-app/internal/infrastructure/adapter/model"
)

// RecurringBillRepository implements RecurringBillRepository interface using GORM
type RecurringBillRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewRecurringBillRepository creates a new RecurringBillRepository instance
func NewRecurringBillRepository(db *gorm.DB, logger coreport.Logger) *RecurringBillRepository {
	return &RecurringBillRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// entityToModel converts a bill entity to a database model
func (r *RecurringBillRepository) entityToModel(bill *entity.RecurringBill) model.RecurringBill {
	return model.RecurringBill{
		ID:        bill.ID,
		UserID:    bill.UserID,
		Name:      bill.Name,
		Amount:    bill.Amount,
		DueDay:    bill.DueDay,
		Category:  string(bill.Category),
		Avatar:    bill.Avatar,
		IsActive:  bill.IsActive,
		CreatedAt: bill.CreatedAt,
		UpdatedAt: bill.UpdatedAt,
	}
}

// modelToEntity converts a database model to a bill entity
func (r *RecurringBillRepository) modelToEntity(billModel *model.RecurringBill) *entity.RecurringBill {
	return &entity.RecurringBill{
		ID:        billModel.ID,
		UserID:    billModel.UserID,
		Name:      billModel.Name,
		Amount:    billModel.Amount,
		DueDay:    billModel.DueDay,
		Category:  entity.Category(billModel.Category),
		Avatar:    billModel.Avatar,
		IsActive:  billModel.IsActive,
		CreatedAt: billModel.CreatedAt,
		UpdatedAt: billModel.UpdatedAt,
	}
}

// paymentEntityToModel converts a payment entity to a database model
func (r *RecurringBillRepository) paymentEntityToModel(payment *entity.RecurringBillPayment) model.RecurringBillPayment {
	return model.RecurringBillPayment{
		ID:              payment.ID,
		RecurringBillID: payment.RecurringBillID,
		TransactionID:   payment.TransactionID,
		DueDate:         payment.DueDate,
		PaidDate:        payment.PaidDate,
		Amount:          payment.Amount,
		Status:          string(payment.Status),
		CreatedAt:       payment.CreatedAt,
		UpdatedAt:       payment.UpdatedAt,
	}
}

// paymentModelToEntity converts a database model to a payment entity
func (r *RecurringBillRepository) paymentModelToEntity(paymentModel *model.RecurringBillPayment) *entity.RecurringBillPayment {
	return &entity.RecurringBillPayment{
		ID:              paymentModel.ID,
		RecurringBillID: paymentModel.RecurringBillID,
		TransactionID:   paymentModel.TransactionID,
		DueDate:         paymentModel.DueDate,
		PaidDate:        paymentModel.PaidDate,
		Amount:          paymentModel.Amount,
		Status:          entity.PaymentStatus(paymentModel.Status),
		CreatedAt:       paymentModel.CreatedAt,
		UpdatedAt:       paymentModel.UpdatedAt,
	}
}

// Create saves a new recurring bill
func (r *RecurringBillRepository) Create(ctx context.Context, bill *entity.RecurringBill) error {
	r.logger.Debug("Creating recurring bill", map[string]any{
		"bill_id": bill.ID.String(),
		"user_id": bill.UserID.String(),
	})

	billModel := r.entityToModel(bill)

	result := r.db.WithContext(ctx).Create(&billModel)
	if result.Error != nil {
		r.logger.Error("Failed to create recurring bill", map[string]any{
			"bill_id": bill.ID.String(),
			"error":   result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return nil
}

// GetByID retrieves a bill owned by the user
func (r *RecurringBillRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*entity.RecurringBill, error) {
	var billModel model.RecurringBill

	result := r.db.WithContext(ctx).
		First(&billModel, "id = ? AND user_id = ?", id, userID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrRecurringBillNotFound
		}
		r.logger.Error("Failed to get recurring bill", map[string]any{
			"bill_id": id.String(),
			"error":   result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return r.modelToEntity(&billModel), nil
}

// GetBillByID retrieves a bill by ID without owner scoping
func (r *RecurringBillRepository) GetBillByID(ctx context.Context, id uuid.UUID) (*entity.RecurringBill, error) {
	var billModel model.RecurringBill

	result := r.db.WithContext(ctx).First(&billModel, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrRecurringBillNotFound
		}
		r.logger.Error("Failed to get recurring bill", map[string]any{
			"bill_id": id.String(),
			"error":   result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return r.modelToEntity(&billModel), nil
}

// List returns a page of the user's active bills with their current-month
// payments, plus the unpaged total count
func (r *RecurringBillRepository) List(ctx context.Context, userID uuid.UUID, filter persistence.RecurringBillFilter, monthStart, monthEnd time.Time) ([]*persistence.BillWithPayments, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.RecurringBill{}).
		Where("user_id = ? AND is_active = ?", userID, true)

	if filter.Search != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Error("Failed to count recurring bills", map[string]any{
			"user_id": userID.String(),
			"error":   err.Error(),
		})
		return nil, 0, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	var billModels []model.RecurringBill
	result := query.Order(billOrderClause(filter.SortBy)).
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&billModels)
	if result.Error != nil {
		r.logger.Error("Failed to list recurring bills", map[string]any{
			"user_id": userID.String(),
			"error":   result.Error.Error(),
		})
		return nil, 0, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	bills := make([]*persistence.BillWithPayments, 0, len(billModels))
	if len(billModels) == 0 {
		return bills, total, nil
	}

	billIDs := make([]uuid.UUID, 0, len(billModels))
	for i := range billModels {
		billIDs = append(billIDs, billModels[i].ID)
	}

	var paymentModels []model.RecurringBillPayment
	result = r.db.WithContext(ctx).
		Where("recurring_bill_id IN ? AND due_date >= ? AND due_date <= ?", billIDs, monthStart, monthEnd).
		Order("due_date ASC").
		Find(&paymentModels)
	if result.Error != nil {
		r.logger.Error("Failed to load bill payments", map[string]any{
			"user_id": userID.String(),
			"error":   result.Error.Error(),
		})
		return nil, 0, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	paymentsByBill := make(map[uuid.UUID][]*entity.RecurringBillPayment, len(billIDs))
	for i := range paymentModels {
		payment := r.paymentModelToEntity(&paymentModels[i])
		paymentsByBill[payment.RecurringBillID] = append(paymentsByBill[payment.RecurringBillID], payment)
	}

	for i := range billModels {
		bill := r.modelToEntity(&billModels[i])
		bills = append(bills, &persistence.BillWithPayments{
			Bill:     bill,
			Payments: paymentsByBill[bill.ID],
		})
	}

	return bills, total, nil
}

// billOrderClause maps the filter's sort option to an ORDER BY clause.
// Latest means the soonest due day first, mirroring how the bills page
// presents the month.
func billOrderClause(sortBy string) string {
	switch sortBy {
	case "oldest":
		return "due_day DESC"
	case "a-z":
		return "name ASC"
	case "z-a":
		return "name DESC"
	case "highest":
		return "amount DESC"
	case "lowest":
		return "amount ASC"
	default: // latest
		return "due_day ASC"
	}
}

// Update persists changes to an existing bill
func (r *RecurringBillRepository) Update(ctx context.Context, bill *entity.RecurringBill) error {
	billModel := r.entityToModel(bill)

	result := r.db.WithContext(ctx).Model(&model.RecurringBill{}).
		Where("id = ? AND user_id = ?", bill.ID, bill.UserID).
		Updates(map[string]interface{}{
			"name":       billModel.Name,
			"amount":     billModel.Amount,
			"due_day":    billModel.DueDay,
			"category":   billModel.Category,
			"avatar":     billModel.Avatar,
			"is_active":  billModel.IsActive,
			"updated_at": billModel.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Error("Failed to update recurring bill", map[string]any{
			"bill_id": bill.ID.String(),
			"error":   result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return errs.ErrRecurringBillNotFound
	}

	return nil
}

// Delete removes a bill owned by the user; payment rows cascade
func (r *RecurringBillRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.RecurringBill{})
	if result.Error != nil {
		r.logger.Error("Failed to delete recurring bill", map[string]any{
			"bill_id": id.String(),
			"error":   result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return errs.ErrRecurringBillNotFound
	}

	return nil
}

// CreatePayment saves a new payment record
func (r *RecurringBillRepository) CreatePayment(ctx context.Context, payment *entity.RecurringBillPayment) error {
	paymentModel := r.paymentEntityToModel(payment)

	result := r.db.WithContext(ctx).Create(&paymentModel)
	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			r.logger.Warn("Duplicate payment record", map[string]any{
				"bill_id":  payment.RecurringBillID.String(),
				"due_date": payment.DueDate.Format(time.DateOnly),
			})
			return errs.ErrDuplicatePayment
		}

		r.logger.Error("Failed to create payment record", map[string]any{
			"bill_id": payment.RecurringBillID.String(),
			"error":   result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return nil
}

// GetPaymentByDueDate retrieves the payment row for a bill and due date
func (r *RecurringBillRepository) GetPaymentByDueDate(ctx context.Context, billID uuid.UUID, dueDate time.Time) (*entity.RecurringBillPayment, error) {
	var paymentModel model.RecurringBillPayment

	result := r.db.WithContext(ctx).
		First(&paymentModel, "recurring_bill_id = ? AND due_date = ?", billID, dueDate)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrPaymentNotFound
		}
		r.logger.Error("Failed to get payment by due date", map[string]any{
			"bill_id": billID.String(),
			"error":   result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return r.paymentModelToEntity(&paymentModel), nil
}

// GetPaymentForUser retrieves a payment row whose owning bill belongs to the user
func (r *RecurringBillRepository) GetPaymentForUser(ctx context.Context, userID, paymentID uuid.UUID) (*entity.RecurringBillPayment, error) {
	var paymentModel model.RecurringBillPayment

	result := r.db.WithContext(ctx).
		Joins("JOIN recurring_bills ON recurring_bills.id = recurring_bill_payments.recurring_bill_id").
		Where("recurring_bill_payments.id = ? AND recurring_bills.user_id = ?", paymentID, userID).
		First(&paymentModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrPaymentNotFound
		}
		r.logger.Error("Failed to get payment", map[string]any{
			"payment_id": paymentID.String(),
			"error":      result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return r.paymentModelToEntity(&paymentModel), nil
}

// UpdatePayment persists changes to an existing payment record
func (r *RecurringBillRepository) UpdatePayment(ctx context.Context, payment *entity.RecurringBillPayment) error {
	paymentModel := r.paymentEntityToModel(payment)

	result := r.db.WithContext(ctx).Model(&model.RecurringBillPayment{}).
		Where("id = ?", payment.ID).
		Updates(map[string]interface{}{
			"status":         paymentModel.Status,
			"paid_date":      paymentModel.PaidDate,
			"transaction_id": paymentModel.TransactionID,
			"updated_at":     paymentModel.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Error("Failed to update payment record", map[string]any{
			"payment_id": payment.ID.String(),
			"error":      result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return errs.ErrPaymentNotFound
	}

	return nil
}

// Summary aggregates the user's active bills for the overview
func (r *RecurringBillRepository) Summary(ctx context.Context, userID uuid.UUID, monthStart, monthEnd, dueSoonEnd time.Time) (*persistence.BillSummary, error) {
	var row struct {
		TotalBills     int64
		PaidAmount     decimal.Decimal
		UpcomingAmount decimal.Decimal
		DueSoonAmount  decimal.Decimal
	}

	err := r.db.WithContext(ctx).Model(&model.RecurringBill{}).
		Select(
			"COUNT(DISTINCT recurring_bills.id) AS total_bills, "+
				"COALESCE(SUM(CASE WHEN rbp.status = 'paid' THEN rbp.amount ELSE 0 END), 0) AS paid_amount, "+
				"COALESCE(SUM(CASE WHEN rbp.status = 'pending' THEN rbp.amount ELSE 0 END), 0) AS upcoming_amount, "+
				"COALESCE(SUM(CASE WHEN rbp.status = 'pending' AND rbp.due_date <= ? THEN rbp.amount ELSE 0 END), 0) AS due_soon_amount",
			dueSoonEnd).
		Joins("LEFT JOIN recurring_bill_payments rbp ON recurring_bills.id = rbp.recurring_bill_id AND rbp.due_date >= ? AND rbp.due_date <= ?",
			monthStart, monthEnd).
		Where("recurring_bills.user_id = ? AND recurring_bills.is_active = ?", userID, true).
		Scan(&row).Error
	if err != nil {
		r.logger.Error("Failed to compute bill summary", map[string]any{
			"user_id": userID.String(),
			"error":   err.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	return &persistence.BillSummary{
		TotalBills:     int(row.TotalBills),
		PaidAmount:     row.PaidAmount,
		UpcomingAmount: row.UpcomingAmount,
		DueSoonAmount:  row.DueSoonAmount,
	}, nil
}

// DueSoon lists pending payments of active bills with due dates within
// [from, to], due date ascending
func (r *RecurringBillRepository) DueSoon(ctx context.Context, userID uuid.UUID, from, to time.Time, limit int) ([]*persistence.DueSoonBill, error) {
	var rows []struct {
		Name    string
		Avatar  string
		Amount  decimal.Decimal
		DueDate time.Time
		Status  string
	}

	query := r.db.WithContext(ctx).Model(&model.RecurringBillPayment{}).
		Select("recurring_bills.name, recurring_bills.avatar, recurring_bill_payments.amount, recurring_bill_payments.due_date, recurring_bill_payments.status").
		Joins("JOIN recurring_bills ON recurring_bills.id = recurring_bill_payments.recurring_bill_id").
		Where("recurring_bills.user_id = ? AND recurring_bills.is_active = ?", userID, true).
		Where("recurring_bill_payments.status = 'pending'").
		Where("recurring_bill_payments.due_date >= ? AND recurring_bill_payments.due_date <= ?", from, to).
		Order("recurring_bill_payments.due_date ASC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Scan(&rows).Error; err != nil {
		r.logger.Error("Failed to list bills due soon", map[string]any{
			"user_id": userID.String(),
			"error":   err.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	dueSoon := make([]*persistence.DueSoonBill, 0, len(rows))
	for _, row := range rows {
		dueSoon = append(dueSoon, &persistence.DueSoonBill{
			BillName: row.Name,
			Avatar:   row.Avatar,
			Amount:   row.Amount,
			DueDate:  row.DueDate,
			Status:   entity.PaymentStatus(row.Status),
		})
	}

	return dueSoon, nil
}
