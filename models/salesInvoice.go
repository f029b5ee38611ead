package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type SalesInvoice struct {
	ID                 int                  `gorm:"primary_key" json:"id"`
	BusinessId         string               `gorm:"index;not null" json:"business_id" binding:"required"`
	CustomerId         int                  `gorm:"index;not null" json:"customer_id" binding:"required"`
	InvoiceNumber      string               `gorm:"size:255;not null" json:"invoice_number" binding:"required"`
	ReferenceNumber    string               `gorm:"size:255;default:null" json:"reference_number"`
	InvoiceDate        time.Time            `gorm:"index;not null" json:"invoice_date" binding:"required"`
	Notes              string               `gorm:"type:text;default:null" json:"notes"`
	CurrentStatus      DocumentStatus       `gorm:"type:enum('Draft','Confirmed','Partial Paid','Paid','Void');not null;default:'Confirmed'" json:"current_status"`
	Details            []SalesInvoiceDetail `gorm:"foreignKey:SalesInvoiceId" json:"details"`
	InvoiceTotalAmount decimal.Decimal      `gorm:"type:decimal(20,4);default:0" json:"invoice_total_amount"`
	RemainingBalance   decimal.Decimal      `gorm:"type:decimal(20,4);default:0" json:"remaining_balance"`
	CreatedAt          time.Time            `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time            `gorm:"autoUpdateTime" json:"updated_at"`
}

type SalesInvoiceDetail struct {
	ID                int             `gorm:"primary_key" json:"id"`
	SalesInvoiceId    int             `gorm:"index;not null" json:"sales_invoice_id"`
	ItemName          string          `gorm:"size:255;not null" json:"item_name"`
	Qty               decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"qty"`
	UnitPrice         decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"unit_price"`
	DetailTotalAmount decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"detail_total_amount"`
	CreatedAt         time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}
