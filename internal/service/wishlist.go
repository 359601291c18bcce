package service

import (
	"context"
	"fmt"

	"github.com/mkravets/storefront/internal/models"
	"github.com/mkravets/storefront/internal/repo"
)

type WishlistService struct {
	Repo *repo.GormRepo
}

// Add is idempotent: adding an already-wishlisted product succeeds and
// leaves a single membership row.
func (s *WishlistService) Add(ctx context.Context, userID, productID uint) error {
	if productID == 0 {
		return fmt.Errorf("%w: product_id required", ErrValidation)
	}
	return s.Repo.AddWishlistItem(ctx, userID, productID)
}

func (s *WishlistService) List(ctx context.Context, userID uint) ([]models.WishlistItem, error) {
	return s.Repo.ListWishlist(ctx, userID)
}

func (s *WishlistService) Remove(ctx context.Context, userID, productID uint) error {
	rows, err := s.Repo.RemoveWishlistItem(ctx, userID, productID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("%w: wishlist item", ErrNotFound)
	}
	return nil
}
