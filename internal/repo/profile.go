package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/mkravets/storefront/internal/models"
)

// CreateAddress inserts the address; when it is flagged default, every
// other default for the same user is unset in the same transaction.
func (r *GormRepo) CreateAddress(ctx context.Context, address *models.Address) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if address.IsDefault {
			if err := tx.Model(&models.Address{}).
				Where("user_id = ?", address.UserID).
				Update("is_default", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(address).Error
	})
}
