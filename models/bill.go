package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bill is a purchase document from a supplier, the supplier-side mirror of
// a sales invoice.
type Bill struct {
	ID               int             `gorm:"primary_key" json:"id"`
	BusinessId       string          `gorm:"index;not null" json:"business_id" binding:"required"`
	SupplierId       int             `gorm:"index;not null" json:"supplier_id" binding:"required"`
	BillNumber       string          `gorm:"size:255;not null" json:"bill_number" binding:"required"`
	ReferenceNumber  string          `gorm:"size:255;default:null" json:"reference_number"`
	BillDate         time.Time       `gorm:"index;not null" json:"bill_date" binding:"required"`
	Notes            string          `gorm:"type:text;default:null" json:"notes"`
	CurrentStatus    DocumentStatus  `gorm:"type:enum('Draft','Confirmed','Partial Paid','Paid','Void');not null;default:'Confirmed'" json:"current_status"`
	Details          []BillDetail    `gorm:"foreignKey:BillId" json:"details"`
	BillTotalAmount  decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"bill_total_amount"`
	RemainingBalance decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"remaining_balance"`
	CreatedAt        time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

type BillDetail struct {
	ID                int             `gorm:"primary_key" json:"id"`
	BillId            int             `gorm:"index;not null" json:"bill_id"`
	ItemName          string          `gorm:"size:255;not null" json:"item_name"`
	Qty               decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"qty"`
	UnitPrice         decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"unit_price"`
	DetailTotalAmount decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"detail_total_amount"`
	CreatedAt         time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}
