package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/mkravets/storefront/internal/models"
	"github.com/mkravets/storefront/internal/repo"
)

func seedProductWithImages(t *testing.T, r *repo.GormRepo) (models.Product, []models.ProductImage) {
	category := models.Category{Name: "Shoes", Slug: "shoes", IsActive: true}
	require.NoError(t, r.DB.Create(&category).Error)

	product := models.Product{
		Name: "Alpha Runner", Slug: "alpha-runner",
		Price: decimal.NewFromFloat(80), IsActive: true, CategoryID: category.ID,
	}
	require.NoError(t, r.DB.Create(&product).Error)

	images := []models.ProductImage{
		{ProductID: product.ID, URL: "/img/1.jpg", IsPrimary: true, SortOrder: 0},
		{ProductID: product.ID, URL: "/img/2.jpg", SortOrder: 1},
		{ProductID: product.ID, URL: "/img/3.jpg", SortOrder: 2},
	}
	for i := range images {
		require.NoError(t, r.DB.Create(&images[i]).Error)
	}
	return product, images
}

func countPrimary(t *testing.T, r *repo.GormRepo, productID uint) int64 {
	var n int64
	require.NoError(t, r.DB.Model(&models.ProductImage{}).
		Where("product_id = ? AND is_primary = ?", productID, true).
		Count(&n).Error)
	return n
}

func TestSetPrimaryImageSingleton(t *testing.T) {
	r := setupRepo(t)
	svc := &CatalogService{Repo: r}
	product, images := seedProductWithImages(t, r)

	// Reassign primary several times; exactly one primary must survive
	// every step.
	for _, target := range []uint{images[1].ID, images[2].ID, images[0].ID, images[2].ID} {
		require.NoError(t, svc.SetPrimaryImage(context.Background(), product.ID, target))
		require.Equal(t, int64(1), countPrimary(t, r, product.ID))

		var primary models.ProductImage
		require.NoError(t, r.DB.Where("product_id = ? AND is_primary = ?", product.ID, true).
			First(&primary).Error)
		require.Equal(t, target, primary.ID)
	}
}

func TestSetPrimaryImageWrongProduct(t *testing.T) {
	r := setupRepo(t)
	svc := &CatalogService{Repo: r}
	product, images := seedProductWithImages(t, r)

	err := svc.SetPrimaryImage(context.Background(), product.ID+1, images[0].ID)
	require.ErrorIs(t, err, ErrNotFound)
	require.Equal(t, int64(1), countPrimary(t, r, product.ID))
}

func TestReorderImages(t *testing.T) {
	r := setupRepo(t)
	svc := &CatalogService{Repo: r}
	product, images := seedProductWithImages(t, r)

	order := []uint{images[2].ID, images[0].ID, images[1].ID}
	require.NoError(t, svc.ReorderImages(context.Background(), product.ID, order))

	var stored []models.ProductImage
	require.NoError(t, r.DB.Where("product_id = ?", product.ID).
		Order("sort_order ASC").Find(&stored).Error)
	require.Equal(t, order[0], stored[0].ID)
	require.Equal(t, order[1], stored[1].ID)
	require.Equal(t, order[2], stored[2].ID)
}

func TestReorderImagesAllOrNothing(t *testing.T) {
	r := setupRepo(t)
	svc := &CatalogService{Repo: r}
	product, images := seedProductWithImages(t, r)

	// An unknown id fails the whole batch; the original order survives.
	err := svc.ReorderImages(context.Background(), product.ID,
		[]uint{images[2].ID, 9999, images[1].ID})
	require.ErrorIs(t, err, ErrNotFound)

	var stored []models.ProductImage
	require.NoError(t, r.DB.Where("product_id = ?", product.ID).
		Order("sort_order ASC").Find(&stored).Error)
	require.Equal(t, images[0].ID, stored[0].ID)

	err = svc.ReorderImages(context.Background(), product.ID, nil)
	require.ErrorIs(t, err, ErrValidation)
}
