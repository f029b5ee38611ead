package models

import (
	"context"
	"time"

	"github.com/mmdatafocus/bizbooks_backend/config"
	"github.com/mmdatafocus/bizbooks_backend/utils"
	"github.com/shopspring/decimal"
)

type MoneyAccount struct {
	ID             int              `gorm:"primary_key" json:"id"`
	BusinessId     string           `gorm:"index;not null" json:"business_id"`
	AccountType    MoneyAccountType `gorm:"type:enum('cash','bank','card');default:'cash';size:12;not null" json:"account_type" binding:"required"`
	AccountName    string           `gorm:"index;size:100;not null" json:"account_name" binding:"required"`
	AccountNumber  string           `gorm:"size:50" json:"account_number"`
	BankName       string           `gorm:"size:100" json:"bank_name"`
	// OpeningBalance is the seeded base balance the account ledger starts
	// from.
	OpeningBalance decimal.Decimal  `gorm:"type:decimal(20,4);default:0" json:"opening_balance"`
	Description    string           `gorm:"type:text" json:"description"`
	IsActive       *bool            `gorm:"not null;default:true" json:"is_active"`
	CreatedAt      time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewMoneyAccount struct {
	AccountType    MoneyAccountType `json:"account_type" binding:"required"`
	AccountName    string           `json:"account_name" binding:"required"`
	AccountNumber  string           `json:"account_number"`
	BankName       string           `json:"bank_name"`
	OpeningBalance decimal.Decimal  `json:"opening_balance"`
	Description    string           `json:"description"`
}

func (input *NewMoneyAccount) validate(ctx context.Context, businessId string, id int) error {
	if err := utils.ValidateStruct(input); err != nil {
		return err
	}
	if id > 0 {
		if err := utils.ValidateResourceId[MoneyAccount](ctx, businessId, id); err != nil {
			return err
		}
	}
	return utils.ValidateUnique[MoneyAccount](ctx, businessId, "account_name", input.AccountName, id)
}

func CreateMoneyAccount(ctx context.Context, input *NewMoneyAccount) (*MoneyAccount, error) {
	businessId, err := MemberBusinessId(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.validate(ctx, businessId, 0); err != nil {
		return nil, err
	}

	account := MoneyAccount{
		BusinessId:     businessId,
		AccountType:    input.AccountType,
		AccountName:    input.AccountName,
		AccountNumber:  input.AccountNumber,
		BankName:       input.BankName,
		OpeningBalance: input.OpeningBalance,
		Description:    input.Description,
		IsActive:       utils.NewTrue(),
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

func UpdateMoneyAccount(ctx context.Context, id int, input *NewMoneyAccount) (*MoneyAccount, error) {
	businessId, err := MemberBusinessId(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.validate(ctx, businessId, id); err != nil {
		return nil, err
	}

	account, err := utils.FetchModel[MoneyAccount](ctx, businessId, id)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	// OpeningBalance stays frozen after creation for the same reason a
	// customer's previous balance does.
	err = db.WithContext(ctx).Model(&account).Updates(map[string]interface{}{
		"AccountType":   input.AccountType,
		"AccountName":   input.AccountName,
		"AccountNumber": input.AccountNumber,
		"BankName":      input.BankName,
		"Description":   input.Description,
	}).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func GetMoneyAccount(ctx context.Context, id int) (*MoneyAccount, error) {
	businessId, err := MemberBusinessId(ctx)
	if err != nil {
		return nil, err
	}
	account, err := utils.FetchModel[MoneyAccount](ctx, businessId, id)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func ListMoneyAccounts(ctx context.Context) ([]MoneyAccount, error) {
	businessId, err := MemberBusinessId(ctx)
	if err != nil {
		return nil, err
	}
	db := config.GetDB()
	var accounts []MoneyAccount
	if err := db.WithContext(ctx).
		Where("business_id = ?", businessId).
		Order("account_name").
		Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}
