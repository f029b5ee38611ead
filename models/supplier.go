package models

import (
	"context"
	"time"

	"github.com/mmdatafocus/bizbooks_backend/config"
	"github.com/mmdatafocus/bizbooks_backend/utils"
	"github.com/shopspring/decimal"
)

type Supplier struct {
	ID              int             `gorm:"primary_key" json:"id"`
	BusinessId      string          `gorm:"index;not null" json:"business_id" binding:"required"`
	Name            string          `gorm:"size:100;not null" json:"name" binding:"required"`
	Email           string          `gorm:"size:100" json:"email"`
	Phone           string          `gorm:"size:20" json:"phone"`
	Address         string          `gorm:"type:text" json:"address"`
	Notes           string          `gorm:"type:text" json:"notes"`
	PreviousBalance decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"previous_balance"`
	IsActive        *bool           `gorm:"not null;default:true" json:"is_active"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func GetSupplier(ctx context.Context, id int) (*Supplier, error) {
	businessId, err := MemberBusinessId(ctx)
	if err != nil {
		return nil, err
	}
	supplier, err := utils.FetchModel[Supplier](ctx, businessId, id)
	if err != nil {
		return nil, err
	}
	return &supplier, nil
}

func ListSuppliers(ctx context.Context, name string) ([]Supplier, error) {
	businessId, err := MemberBusinessId(ctx)
	if err != nil {
		return nil, err
	}
	db := config.GetDB()
	query := db.WithContext(ctx).Where("business_id = ?", businessId)
	if name != "" {
		query = query.Where("name LIKE ?", "%"+name+"%")
	}
	var suppliers []Supplier
	if err := query.Order("name").Find(&suppliers).Error; err != nil {
		return nil, err
	}
	return suppliers, nil
}
