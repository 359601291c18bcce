package repo

import (
	"context"

	"gorm.io/gorm/clause"

	"github.com/mkravets/storefront/internal/models"
)

// AddWishlistItem is idempotent: a second add of the same (user, product)
// pair is a no-op thanks to the unique index.
func (r *GormRepo) AddWishlistItem(ctx context.Context, userID, productID uint) error {
	item := models.WishlistItem{UserID: userID, ProductID: productID}
	return r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&item).Error
}

func (r *GormRepo) ListWishlist(ctx context.Context, userID uint) ([]models.WishlistItem, error) {
	var items []models.WishlistItem
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

func (r *GormRepo) RemoveWishlistItem(ctx context.Context, userID, productID uint) (int64, error) {
	res := r.DB.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.WishlistItem{})
	return res.RowsAffected, res.Error
}
