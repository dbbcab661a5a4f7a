package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Budget represents the database model for category budgets
type Budget struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_budgets_user_category"`
	Category  string          `gorm:"not null;size:50;uniqueIndex:idx_budgets_user_category"`
	Maximum   decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Theme     string          `gorm:"not null;size:50"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`

	// Define relationships
	User User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for Budget
func (Budget) TableName() string {
	return "budgets"
}
