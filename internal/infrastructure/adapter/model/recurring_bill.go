package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecurringBill represents the database model for recurring bills
type RecurringBill struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name      string          `gorm:"not null;size:255"`
	Amount    decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	DueDay    int             `gorm:"not null"`
	Category  string          `gorm:"not null;size:50"`
	Avatar    string          `gorm:"size:500"`
	IsActive  bool            `gorm:"not null;default:true"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`

	// Define relationships
	User User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for RecurringBill
func (RecurringBill) TableName() string {
	return "recurring_bills"
}

// RecurringBillPayment represents a scheduled payment occurrence for a bill
type RecurringBillPayment struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	RecurringBillID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_payments_bill_due_date"`
	TransactionID   *uuid.UUID      `gorm:"type:uuid"`
	DueDate         time.Time       `gorm:"not null;uniqueIndex:idx_payments_bill_due_date"`
	PaidDate        *time.Time
	Amount          decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Status          string          `gorm:"not null;size:20;default:pending"`
	CreatedAt       time.Time       `gorm:"not null"`
	UpdatedAt       time.Time       `gorm:"not null"`

	// Define relationships
	RecurringBill RecurringBill `gorm:"foreignKey:RecurringBillID;references:ID;constraint:OnDelete:CASCADE"`
	Transaction   *Transaction  `gorm:"foreignKey:TransactionID;references:ID;constraint:OnDelete:SET NULL"`
}

// TableName specifies the table name for RecurringBillPayment
func (RecurringBillPayment) TableName() string {
	return "recurring_bill_payments"
}
