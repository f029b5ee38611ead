package utils

import (
	"context"

	"github.com/mmdatafocus/bizbooks_backend/config"
	"gorm.io/gorm"
)

func NewTrue() *bool {
	b := true
	return &b
}

// FetchModel loads one row of T by id within the business scope.
func FetchModel[T any](ctx context.Context, businessId string, id int) (T, error) {
	db := config.GetDB()
	var model T
	err := db.WithContext(ctx).
		Where("business_id = ?", businessId).
		First(&model, id).Error
	if err == gorm.ErrRecordNotFound {
		return model, ErrorRecordNotFound
	}
	return model, err
}
