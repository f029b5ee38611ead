package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillPayment is a payment made to a supplier.
type BillPayment struct {
	ID              int             `gorm:"primary_key" json:"id"`
	BusinessId      string          `gorm:"index;not null" json:"business_id" binding:"required"`
	SupplierId      int             `gorm:"index;not null" json:"supplier_id" binding:"required"`
	PaidAccountId   int             `gorm:"index" json:"paid_account_id"`
	PaymentDate     time.Time       `gorm:"index;not null" json:"payment_date" binding:"required"`
	PaymentNumber   string          `gorm:"size:255" json:"payment_number"`
	ReferenceNumber string          `gorm:"size:255" json:"reference_number"`
	Amount          decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"amount"`
	Notes           string          `gorm:"type:text" json:"notes"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}
