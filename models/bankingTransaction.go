package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankingTransaction is a movement between two money accounts. The scoped
// account's ledger resolves each row into an inbound or outbound leg.
type BankingTransaction struct {
	ID              int             `gorm:"primary_key" json:"id"`
	BusinessId      string          `gorm:"index;not null" json:"business_id" binding:"required"`
	TransactionDate time.Time       `gorm:"index;not null" json:"transaction_date" binding:"required"`
	Amount          decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"amount"`
	FromAccountId   int             `gorm:"index" json:"from_account_id"`
	ToAccountId     int             `gorm:"index" json:"to_account_id"`
	ReferenceNumber string          `gorm:"size:255;default:null" json:"reference_number"`
	Description     string          `gorm:"type:text;default:null" json:"description"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}
