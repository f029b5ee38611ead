package models

import (
	"context"
	"errors"
	"time"

	"github.com/mmdatafocus/bizbooks_backend/config"
	"github.com/mmdatafocus/bizbooks_backend/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DeliveryChallan tracks goods sent out before invoicing. It never enters
// the ledger fold; it is a plain CRUD document.
type DeliveryChallan struct {
	ID            int                     `gorm:"primary_key" json:"id"`
	BusinessId    string                  `gorm:"index;not null" json:"business_id" binding:"required"`
	CustomerId    int                     `gorm:"index;not null" json:"customer_id" binding:"required"`
	ChallanNumber string                  `gorm:"size:255;not null" json:"challan_number" binding:"required"`
	ChallanDate   time.Time               `gorm:"index;not null" json:"challan_date" binding:"required"`
	CurrentStatus ChallanStatus           `gorm:"type:enum('Open','Delivered','Invoiced','Cancelled');not null;default:'Open'" json:"current_status"`
	Notes         string                  `gorm:"type:text" json:"notes"`
	Details       []DeliveryChallanDetail `gorm:"foreignKey:DeliveryChallanId" json:"details"`
	CreatedAt     time.Time               `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time               `gorm:"autoUpdateTime" json:"updated_at"`
}

type DeliveryChallanDetail struct {
	ID                int             `gorm:"primary_key" json:"id"`
	DeliveryChallanId int             `gorm:"index;not null" json:"delivery_challan_id"`
	ItemName          string          `gorm:"size:255;not null" json:"item_name"`
	Qty               decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"qty"`
	CreatedAt         time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewDeliveryChallan struct {
	CustomerId    int                        `json:"customer_id" binding:"required"`
	ChallanNumber string                     `json:"challan_number" binding:"required"`
	ChallanDate   time.Time                  `json:"challan_date" binding:"required"`
	Notes         string                     `json:"notes"`
	Details       []NewDeliveryChallanDetail `json:"details" binding:"required"`
}

type NewDeliveryChallanDetail struct {
	ItemName string          `json:"item_name" binding:"required"`
	Qty      decimal.Decimal `json:"qty"`
}

func (input *NewDeliveryChallan) validate(ctx context.Context, businessId string, id int) error {
	if err := utils.ValidateStruct(input); err != nil {
		return err
	}
	if id > 0 {
		if err := utils.ValidateResourceId[DeliveryChallan](ctx, businessId, id); err != nil {
			return err
		}
	}
	if err := utils.ValidateResourceId[Customer](ctx, businessId, input.CustomerId); err != nil {
		return errors.New("customer not found")
	}
	return utils.ValidateUnique[DeliveryChallan](ctx, businessId, "challan_number", input.ChallanNumber, id)
}

func CreateDeliveryChallan(ctx context.Context, input *NewDeliveryChallan) (*DeliveryChallan, error) {
	businessId, err := MemberBusinessId(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.validate(ctx, businessId, 0); err != nil {
		return nil, err
	}

	challan := DeliveryChallan{
		BusinessId:    businessId,
		CustomerId:    input.CustomerId,
		ChallanNumber: input.ChallanNumber,
		ChallanDate:   input.ChallanDate,
		CurrentStatus: ChallanStatusOpen,
		Notes:         input.Notes,
	}
	for _, d := range input.Details {
		challan.Details = append(challan.Details, DeliveryChallanDetail{
			ItemName: d.ItemName,
			Qty:      d.Qty,
		})
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&challan).Error; err != nil {
		return nil, err
	}
	return &challan, nil
}

func UpdateDeliveryChallanStatus(ctx context.Context, id int, status ChallanStatus) (*DeliveryChallan, error) {
	businessId, err := MemberBusinessId(ctx)
	if err != nil {
		return nil, err
	}
	challan, err := utils.FetchModel[DeliveryChallan](ctx, businessId, id)
	if err != nil {
		return nil, err
	}
	if challan.CurrentStatus == ChallanStatusInvoiced {
		return nil, errors.New("invoiced challan cannot change status")
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Model(&challan).Update("CurrentStatus", status).Error; err != nil {
		return nil, err
	}
	return &challan, nil
}

func GetDeliveryChallan(ctx context.Context, id int) (*DeliveryChallan, error) {
	businessId, err := MemberBusinessId(ctx)
	if err != nil {
		return nil, err
	}
	db := config.GetDB()
	var challan DeliveryChallan
	err = db.WithContext(ctx).
		Where("business_id = ?", businessId).
		Preload("Details").
		First(&challan, id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, utils.ErrorRecordNotFound
	}
	if err != nil {
		return nil, err
	}
	return &challan, nil
}

func ListDeliveryChallans(ctx context.Context, customerId int) ([]DeliveryChallan, error) {
	businessId, err := MemberBusinessId(ctx)
	if err != nil {
		return nil, err
	}
	db := config.GetDB()
	query := db.WithContext(ctx).Where("business_id = ?", businessId)
	if customerId > 0 {
		query = query.Where("customer_id = ?", customerId)
	}
	var challans []DeliveryChallan
	if err := query.Preload("Details").Order("challan_date DESC, id DESC").Find(&challans).Error; err != nil {
		return nil, err
	}
	return challans, nil
}
