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

// TransactionRepository implements TransactionRepository interface using GORM
type TransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// entityToModel converts a transaction entity to a database model
func (r *TransactionRepository) entityToModel(transaction *entity.Transaction) model.Transaction {
	return model.Transaction{
		ID:              transaction.ID,
		UserID:          transaction.UserID,
		RecipientSender: transaction.RecipientSender,
		Category:        string(transaction.Category),
		TransactionDate: transaction.TransactionDate,
		Amount:          transaction.Amount,
		Type:            string(transaction.TransactionType),
		Recurring:       transaction.Recurring,
		Avatar:          transaction.Avatar,
		CreatedAt:       transaction.CreatedAt,
		UpdatedAt:       transaction.UpdatedAt,
	}
}

// modelToEntity converts a database model to a transaction entity
func (r *TransactionRepository) modelToEntity(transactionModel *model.Transaction) *entity.Transaction {
	return &entity.Transaction{
		ID:              transactionModel.ID,
		UserID:          transactionModel.UserID,
		RecipientSender: transactionModel.RecipientSender,
		Category:        entity.Category(transactionModel.Category),
		TransactionDate: transactionModel.TransactionDate,
		Amount:          transactionModel.Amount,
		TransactionType: entity.TransactionType(transactionModel.Type),
		Recurring:       transactionModel.Recurring,
		Avatar:          transactionModel.Avatar,
		CreatedAt:       transactionModel.CreatedAt,
		UpdatedAt:       transactionModel.UpdatedAt,
	}
}

// Create saves a new transaction
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	r.logger.Debug("Creating transaction", map[string]any{
		"transaction_id": transaction.ID.String(),
		"user_id":        transaction.UserID.String(),
	})

	transactionModel := r.entityToModel(transaction)

	result := r.db.WithContext(ctx).Create(&transactionModel)
	if result.Error != nil {
		r.logger.Error("Failed to create transaction", map[string]any{
			"transaction_id": transaction.ID.String(),
			"user_id":        transaction.UserID.String(),
			"error":          result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return nil
}

// GetByID retrieves a transaction owned by the user
func (r *TransactionRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*entity.Transaction, error) {
	var transactionModel model.Transaction

	result := r.db.WithContext(ctx).
		First(&transactionModel, "id = ? AND user_id = ?", id, userID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrTransactionNotFound
		}
		r.logger.Error("Failed to get transaction", map[string]any{
			"transaction_id": id.String(),
			"error":          result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return r.modelToEntity(&transactionModel), nil
}

// List returns a page of the user's transactions and the unpaged total count
func (r *TransactionRepository) List(ctx context.Context, userID uuid.UUID, filter persistence.TransactionFilter) ([]*entity.Transaction, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("user_id = ?", userID)

	if filter.Search != "" {
		query = query.Where("recipient_sender ILIKE ?", "%"+filter.Search+"%")
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.StartDate != nil {
		query = query.Where("transaction_date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("transaction_date <= ?", *filter.EndDate)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Error("Failed to count transactions", map[string]any{
			"user_id": userID.String(),
			"error":   err.Error(),
		})
		return nil, 0, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	var transactionModels []model.Transaction
	result := query.Order(transactionOrderClause(filter)).
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&transactionModels)
	if result.Error != nil {
		r.logger.Error("Failed to list transactions", map[string]any{
			"user_id": userID.String(),
			"error":   result.Error.Error(),
		})
		return nil, 0, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	transactions := make([]*entity.Transaction, 0, len(transactionModels))
	for i := range transactionModels {
		transactions = append(transactions, r.modelToEntity(&transactionModels[i]))
	}

	return transactions, total, nil
}

// transactionOrderClause maps the filter's sort options to an ORDER BY clause
func transactionOrderClause(filter persistence.TransactionFilter) string {
	direction := "DESC"
	if filter.SortOrder == "asc" {
		direction = "ASC"
	}

	switch filter.SortBy {
	case "amount":
		return "amount " + direction
	case "name":
		return "recipient_sender " + direction
	default:
		return "transaction_date " + direction + ", created_at " + direction
	}
}

// Update persists changes to an existing transaction
func (r *TransactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := r.entityToModel(transaction)

	result := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("id = ? AND user_id = ?", transaction.ID, transaction.UserID).
		Updates(map[string]interface{}{
			"recipient_sender": transactionModel.RecipientSender,
			"category":         transactionModel.Category,
			"transaction_date": transactionModel.TransactionDate,
			"amount":           transactionModel.Amount,
			"type":             transactionModel.Type,
			"recurring":        transactionModel.Recurring,
			"avatar":           transactionModel.Avatar,
			"updated_at":       transactionModel.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Error("Failed to update transaction", map[string]any{
			"transaction_id": transaction.ID.String(),
			"error":          result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return errs.ErrTransactionNotFound
	}

	return nil
}

// Delete removes a transaction owned by the user
func (r *TransactionRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.Transaction{})
	if result.Error != nil {
		r.logger.Error("Failed to delete transaction", map[string]any{
			"transaction_id": id.String(),
			"error":          result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return errs.ErrTransactionNotFound
	}

	return nil
}

// incomeExpenseRow receives the paired income and expense sums of an
// aggregate query
type incomeExpenseRow struct {
	Income   decimal.Decimal
	Expenses decimal.Decimal
}

// CurrentBalance returns income minus expenses across all of the user's
// transactions
func (r *TransactionRepository) CurrentBalance(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	var row incomeExpenseRow

	err := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Select(
			"COALESCE(SUM(CASE WHEN type = 'income' THEN amount ELSE 0 END), 0) AS income, "+
				"COALESCE(SUM(CASE WHEN type = 'expense' THEN amount ELSE 0 END), 0) AS expenses").
		Where("user_id = ?", userID).
		Scan(&row).Error
	if err != nil {
		r.logger.Error("Failed to compute current balance", map[string]any{
			"user_id": userID.String(),
			"error":   err.Error(),
		})
		return decimal.Zero, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	return row.Income.Sub(row.Expenses), nil
}

// MonthStats returns the income and expense sums for transactions dated
// within [monthStart, monthEnd]
func (r *TransactionRepository) MonthStats(ctx context.Context, userID uuid.UUID, monthStart, monthEnd time.Time) (decimal.Decimal, decimal.Decimal, error) {
	var row incomeExpenseRow

	err := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Select(
			"COALESCE(SUM(CASE WHEN type = 'income' THEN amount ELSE 0 END), 0) AS income, "+
				"COALESCE(SUM(CASE WHEN type = 'expense' THEN amount ELSE 0 END), 0) AS expenses").
		Where("user_id = ? AND transaction_date >= ? AND transaction_date <= ?", userID, monthStart, monthEnd).
		Scan(&row).Error
	if err != nil {
		r.logger.Error("Failed to compute month stats", map[string]any{
			"user_id": userID.String(),
			"error":   err.Error(),
		})
		return decimal.Zero, decimal.Zero, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	return row.Income, row.Expenses, nil
}

// CategoryExpenseSum returns the expense sum for one category within [from, to]
func (r *TransactionRepository) CategoryExpenseSum(ctx context.Context, userID uuid.UUID, category entity.Category, from, to time.Time) (decimal.Decimal, error) {
	var row struct {
		Spent decimal.Decimal
	}

	err := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Select("COALESCE(SUM(amount), 0) AS spent").
		Where("user_id = ? AND type = 'expense' AND category = ? AND transaction_date >= ? AND transaction_date <= ?",
			userID, string(category), from, to).
		Scan(&row).Error
	if err != nil {
		r.logger.Error("Failed to compute category expense sum", map[string]any{
			"user_id":  userID.String(),
			"category": string(category),
			"error":    err.Error(),
		})
		return decimal.Zero, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	return row.Spent, nil
}

// CategoryExpenseSums returns the per-category expense sums within [from, to]
func (r *TransactionRepository) CategoryExpenseSums(ctx context.Context, userID uuid.UUID, from, to time.Time) (map[entity.Category]decimal.Decimal, error) {
	var rows []struct {
		Category string
		Spent    decimal.Decimal
	}

	err := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Select("category, COALESCE(SUM(amount), 0) AS spent").
		Where("user_id = ? AND type = 'expense' AND transaction_date >= ? AND transaction_date <= ?",
			userID, from, to).
		Group("category").
		Scan(&rows).Error
	if err != nil {
		r.logger.Error("Failed to compute category expense sums", map[string]any{
			"user_id": userID.String(),
			"error":   err.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	sums := make(map[entity.Category]decimal.Decimal, len(rows))
	for _, row := range rows {
		sums[entity.Category(row.Category)] = row.Spent
	}

	return sums, nil
}

// Recent returns the user's most recent transactions
func (r *TransactionRepository) Recent(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Transaction, error) {
	var transactionModels []model.Transaction

	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("transaction_date DESC, created_at DESC").
		Limit(limit).
		Find(&transactionModels)
	if result.Error != nil {
		r.logger.Error("Failed to list recent transactions", map[string]any{
			"user_id": userID.String(),
			"error":   result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	transactions := make([]*entity.Transaction, 0, len(transactionModels))
	for i := range transactionModels {
		transactions = append(transactions, r.modelToEntity(&transactionModels[i]))
	}

	return transactions, nil
}

// LatestByCategory returns the most recent transactions in a category
func (r *TransactionRepository) LatestByCategory(ctx context.Context, userID uuid.UUID, category entity.Category, limit int) ([]*entity.Transaction, error) {
	var transactionModels []model.Transaction

	result := r.db.WithContext(ctx).
		Where("user_id = ? AND category = ?", userID, string(category)).
		Order("transaction_date DESC, created_at DESC").
		Limit(limit).
		Find(&transactionModels)
	if result.Error != nil {
		r.logger.Error("Failed to list latest category transactions", map[string]any{
			"user_id":  userID.String(),
			"category": string(category),
			"error":    result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	transactions := make([]*entity.Transaction, 0, len(transactionModels))
	for i := range transactionModels {
		transactions = append(transactions, r.modelToEntity(&transactionModels[i]))
	}

	return transactions, nil
}

// LatestTransactionDate returns the date of the user's most recent
// transaction, or nil when the user has none
func (r *TransactionRepository) LatestTransactionDate(ctx context.Context, userID uuid.UUID) (*time.Time, error) {
	var transactionModel model.Transaction

	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("transaction_date DESC").
		First(&transactionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error("Failed to get latest transaction date", map[string]any{
			"user_id": userID.String(),
			"error":   result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	latest := transactionModel.TransactionDate
	return &latest, nil
}

// MonthlyTotals groups income and expense sums by calendar month for
// transactions dated on or after since, most recent month first
func (r *TransactionRepository) MonthlyTotals(ctx context.Context, userID uuid.UUID, since time.Time) ([]persistence.MonthlyTotal, error) {
	var rows []struct {
		Month    time.Time
		Income   decimal.Decimal
		Expenses decimal.Decimal
	}

	err := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Select(
			"DATE_TRUNC('month', transaction_date) AS month, "+
				"COALESCE(SUM(CASE WHEN type = 'income' THEN amount ELSE 0 END), 0) AS income, "+
				"COALESCE(SUM(CASE WHEN type = 'expense' THEN amount ELSE 0 END), 0) AS expenses").
		Where("user_id = ? AND transaction_date >= ?", userID, since).
		Group("DATE_TRUNC('month', transaction_date)").
		Order("month DESC").
		Scan(&rows).Error
	if err != nil {
		r.logger.Error("Failed to compute monthly totals", map[string]any{
			"user_id": userID.String(),
			"error":   err.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	totals := make([]persistence.MonthlyTotal, 0, len(rows))
	for _, row := range rows {
		totals = append(totals, persistence.MonthlyTotal{
			Month:    row.Month,
			Income:   row.Income,
			Expenses: row.Expenses,
		})
	}

	return totals, nil
}
