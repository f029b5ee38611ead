package models

import (
	"context"
	"errors"
	"time"

	"github.com/mmdatafocus/bizbooks_backend/config"
	"github.com/mmdatafocus/bizbooks_backend/utils"
	"github.com/shopspring/decimal"
)

type Customer struct {
	ID              int             `gorm:"primary_key" json:"id"`
	BusinessId      string          `gorm:"index;not null" json:"business_id" binding:"required"`
	Name            string          `gorm:"size:100;not null" json:"name" binding:"required"`
	Email           string          `gorm:"size:100" json:"email"`
	Phone           string          `gorm:"size:20" json:"phone"`
	Address         string          `gorm:"type:text" json:"address"`
	Notes           string          `gorm:"type:text" json:"notes"`
	// PreviousBalance is the externally stored base balance the customer
	// ledger's opening balance is seeded from.
	PreviousBalance decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"previous_balance"`
	IsActive        *bool           `gorm:"not null;default:true" json:"is_active"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewCustomer struct {
	Name            string          `json:"name" binding:"required"`
	Email           string          `json:"email"`
	Phone           string          `json:"phone"`
	Address         string          `json:"address"`
	Notes           string          `json:"notes"`
	PreviousBalance decimal.Decimal `json:"previous_balance"`
}

func (input *NewCustomer) validate(ctx context.Context, businessId string, id int) error {
	if err := utils.ValidateStruct(input); err != nil {
		return err
	}
	if id > 0 {
		if err := utils.ValidateResourceId[Customer](ctx, businessId, id); err != nil {
			return err
		}
	}
	if err := utils.ValidateUnique[Customer](ctx, businessId, "name", input.Name, id); err != nil {
		return err
	}
	if input.Phone != "" {
		if err := utils.ValidateUnique[Customer](ctx, businessId, "phone", input.Phone, id); err != nil {
			return err
		}
	}
	return nil
}

func CreateCustomer(ctx context.Context, input *NewCustomer) (*Customer, error) {
	businessId, err := MemberBusinessId(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.validate(ctx, businessId, 0); err != nil {
		return nil, err
	}

	customer := Customer{
		BusinessId:      businessId,
		Name:            input.Name,
		Email:           input.Email,
		Phone:           input.Phone,
		Address:         input.Address,
		Notes:           input.Notes,
		PreviousBalance: input.PreviousBalance,
		IsActive:        utils.NewTrue(),
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func UpdateCustomer(ctx context.Context, id int, input *NewCustomer) (*Customer, error) {
	businessId, err := MemberBusinessId(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.validate(ctx, businessId, id); err != nil {
		return nil, err
	}

	customer, err := utils.FetchModel[Customer](ctx, businessId, id)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	// PreviousBalance is deliberately not updatable here: changing it would
	// rewrite every historical opening balance.
	err = db.WithContext(ctx).Model(&customer).Updates(map[string]interface{}{
		"Name":    input.Name,
		"Email":   input.Email,
		"Phone":   input.Phone,
		"Address": input.Address,
		"Notes":   input.Notes,
	}).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func DeleteCustomer(ctx context.Context, id int) (*Customer, error) {
	businessId, err := MemberBusinessId(ctx)
	if err != nil {
		return nil, err
	}
	customer, err := utils.FetchModel[Customer](ctx, businessId, id)
	if err != nil {
		return nil, err
	}

	// Don't delete a customer that has transactions; the ledger would lose
	// its history.
	invoiceCount, err := utils.ResourceCountWhere[SalesInvoice](ctx, businessId, "customer_id = ?", id)
	if err != nil {
		return nil, err
	}
	paymentCount, err := utils.ResourceCountWhere[CustomerPayment](ctx, businessId, "customer_id = ?", id)
	if err != nil {
		return nil, err
	}
	if invoiceCount > 0 || paymentCount > 0 {
		return nil, errors.New("customer has transactions and cannot be deleted")
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Delete(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func GetCustomer(ctx context.Context, id int) (*Customer, error) {
	businessId, err := MemberBusinessId(ctx)
	if err != nil {
		return nil, err
	}
	customer, err := utils.FetchModel[Customer](ctx, businessId, id)
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func ListCustomers(ctx context.Context, name string) ([]Customer, error) {
	businessId, err := MemberBusinessId(ctx)
	if err != nil {
		return nil, err
	}
	db := config.GetDB()
	query := db.WithContext(ctx).Where("business_id = ?", businessId)
	if name != "" {
		query = query.Where("name LIKE ?", "%"+name+"%")
	}
	var customers []Customer
	if err := query.Order("name").Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}
