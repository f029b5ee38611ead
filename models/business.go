package models

import (
	"context"
	"time"

	"github.com/mmdatafocus/bizbooks_backend/config"
	"github.com/mmdatafocus/bizbooks_backend/utils"
	"gorm.io/gorm"
)

type Business struct {
	ID          string    `gorm:"primary_key;size:64" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	OwnerUserId int       `gorm:"index;not null" json:"owner_user_id"`
	Address     string    `gorm:"type:text" json:"address"`
	Phone       string    `gorm:"size:20" json:"phone"`
	IsActive    *bool     `gorm:"not null;default:true" json:"is_active"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// GetOwnedBusiness returns the business the user owns, if any. The ledger
// source fetch layer falls back to this scope when the requested business
// scope is denied.
func GetOwnedBusiness(ctx context.Context, userId int) (*Business, error) {
	db := config.GetDB()
	var business Business
	err := db.WithContext(ctx).Where("owner_user_id = ?", userId).First(&business).Error
	if err == gorm.ErrRecordNotFound {
		return nil, utils.ErrorRecordNotFound
	}
	if err != nil {
		return nil, err
	}
	return &business, nil
}
