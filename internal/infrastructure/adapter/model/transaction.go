package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction represents the database model for transactions
type Transaction struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	RecipientSender string          `gorm:"not null;size:255"`
	Category        string          `gorm:"not null;size:50;index"`
	TransactionDate time.Time       `gorm:"not null;index"`
	Amount          decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Type            string          `gorm:"not null;size:10"`
	Recurring       bool            `gorm:"not null;default:false"`
	Avatar          string          `gorm:"size:500"`
	CreatedAt       time.Time       `gorm:"not null"`
	UpdatedAt       time.Time       `gorm:"not null"`

	// Define relationships
	User User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
