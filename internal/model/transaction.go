package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type TransactionType string

const (
	TransactionIncome     TransactionType = "INCOME"
	TransactionExpense    TransactionType = "EXPENSE"
	TransactionInvestment TransactionType = "INVESTMENT"
)

// Transaction is a single money movement. Amount is always positive; Type
// carries the direction.
type Transaction struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	UserID      string          `gorm:"type:varchar(64);index" json:"user_id" validate:"required"`
	Description string          `gorm:"type:varchar(255)" json:"description" validate:"required,max=255"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2)" json:"amount"`
	Type        TransactionType `gorm:"type:varchar(16);index" json:"type" validate:"oneof=INCOME EXPENSE INVESTMENT"`
	Category    string          `gorm:"type:varchar(64);index" json:"category" validate:"required,max=64"`
	Date        time.Time       `gorm:"index" json:"date" validate:"required"`

	// Series bookkeeping: the first occurrence carries the recurrence and
	// SeriesID; materialized occurrences share SeriesID with Occurrence > 0.
	Recurrence Recurrence `gorm:"embedded;embeddedPrefix:recurrence_" json:"recurrence"`
	SeriesID   string     `gorm:"type:varchar(36);index" json:"series_id,omitempty"`
	Occurrence int        `json:"occurrence"`
	Source     Source     `gorm:"type:varchar(16)" json:"source"`
}

func (Transaction) TableName() string {
	return "transactions"
}
