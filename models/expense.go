package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Expense struct {
	ID            int             `gorm:"primary_key" json:"id"`
	BusinessId    string          `gorm:"index;not null" json:"business_id" binding:"required"`
	SupplierId    int             `gorm:"index" json:"supplier_id"`
	PaidAccountId int             `gorm:"index" json:"paid_account_id"`
	ExpenseDate   time.Time       `gorm:"index;not null" json:"expense_date" binding:"required"`
	ExpenseNumber string          `gorm:"size:255" json:"expense_number"`
	Category      string          `gorm:"size:100;not null" json:"category"`
	Amount        decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"amount"`
	Notes         string          `gorm:"type:text" json:"notes"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}
