package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/mkravets/storefront/internal/models"
	"github.com/mkravets/storefront/internal/repo"
)

func seedCatalog(t *testing.T, r *repo.GormRepo) {
	shoes := models.Category{Name: "Shoes", Slug: "shoes", IsActive: true}
	hats := models.Category{Name: "Hats", Slug: "hats", IsActive: true}
	require.NoError(t, r.DB.Create(&shoes).Error)
	require.NoError(t, r.DB.Create(&hats).Error)

	products := []models.Product{
		{Name: "Alpha Runner", Slug: "alpha-runner", Brand: "Acme", Tags: "running,shoes",
			Price: decimal.NewFromFloat(80), Rating: 4.5, IsActive: true, CategoryID: shoes.ID},
		{Name: "Beta Boot", Slug: "beta-boot", Brand: "Acme", Description: "leather boot",
			Price: decimal.NewFromFloat(120), Rating: 3.9, IsActive: true, CategoryID: shoes.ID},
		{Name: "Gamma Cap", Slug: "gamma-cap", Brand: "Topline", Tags: "summer",
			Price: decimal.NewFromFloat(25), Rating: 4.9, IsActive: true, CategoryID: hats.ID},
		{Name: "Hidden Sneaker", Slug: "hidden-sneaker", Brand: "Acme",
			Price: decimal.NewFromFloat(60), IsActive: false, CategoryID: shoes.ID},
	}
	for i := range products {
		require.NoError(t, r.DB.Create(&products[i]).Error)
	}
}

func TestSearchQueryTooShort(t *testing.T) {
	r := setupRepo(t)
	svc := &CatalogService{Repo: r}
	seedCatalog(t, r)

	_, _, _, err := svc.Search(context.Background(), SearchQuery{Query: "a", Limit: 10})
	require.ErrorIs(t, err, ErrValidation)

	total, _, _, err := svc.Search(context.Background(), SearchQuery{Query: "al", Limit: 10})
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
}

func TestSearchMatchesFields(t *testing.T) {
	r := setupRepo(t)
	svc := &CatalogService{Repo: r}
	seedCatalog(t, r)

	// Case-insensitive substring across name, description, brand and tags.
	for query, want := range map[string]int64{
		"ALPHA":   1, // name
		"leather": 1, // description
		"acme":    2, // brand, inactive product excluded
		"running": 1, // tags
	} {
		total, _, _, err := svc.Search(context.Background(), SearchQuery{Query: query, Limit: 10})
		require.NoError(t, err)
		require.Equal(t, want, total, "query %q", query)
	}
}

func TestSearchExcludesInactive(t *testing.T) {
	r := setupRepo(t)
	svc := &CatalogService{Repo: r}
	seedCatalog(t, r)

	total, items, _, err := svc.Search(context.Background(), SearchQuery{Limit: 10})
	require.NoError(t, err)
	require.Equal(t, int64(3), total)
	for _, p := range items {
		require.True(t, p.IsActive)
	}
}

func TestSearchCategoryFilter(t *testing.T) {
	r := setupRepo(t)
	svc := &CatalogService{Repo: r}
	seedCatalog(t, r)

	total, _, _, err := svc.Search(context.Background(), SearchQuery{Category: "shoes", Limit: 10})
	require.NoError(t, err)
	require.Equal(t, int64(2), total)

	var hats models.Category
	require.NoError(t, r.DB.Where("slug = ?", "hats").First(&hats).Error)

	total, _, _, err = svc.Search(context.Background(),
		SearchQuery{Category: fmt.Sprint(hats.ID), Limit: 10})
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
}

func TestSearchPriceRangeAndSort(t *testing.T) {
	r := setupRepo(t)
	svc := &CatalogService{Repo: r}
	seedCatalog(t, r)

	min, max := 30.0, 100.0
	total, items, _, err := svc.Search(context.Background(),
		SearchQuery{MinPrice: &min, MaxPrice: &max, Limit: 10})
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	require.Equal(t, "alpha-runner", items[0].Slug)

	_, items, _, err = svc.Search(context.Background(),
		SearchQuery{Sort: repo.SortPriceAsc, Limit: 10})
	require.NoError(t, err)
	require.Equal(t, "gamma-cap", items[0].Slug)

	_, items, _, err = svc.Search(context.Background(),
		SearchQuery{Sort: repo.SortPriceDesc, Limit: 10})
	require.NoError(t, err)
	require.Equal(t, "beta-boot", items[0].Slug)

	_, items, _, err = svc.Search(context.Background(),
		SearchQuery{Sort: repo.SortRating, Limit: 10})
	require.NoError(t, err)
	require.Equal(t, "gamma-cap", items[0].Slug)

	bad := -1.0
	_, _, _, err = svc.Search(context.Background(), SearchQuery{MinPrice: &bad, Limit: 10})
	require.ErrorIs(t, err, ErrValidation)

	lo, hi := 50.0, 10.0
	_, _, _, err = svc.Search(context.Background(),
		SearchQuery{MinPrice: &lo, MaxPrice: &hi, Limit: 10})
	require.ErrorIs(t, err, ErrValidation)
}

func TestGetProductBySlugOrID(t *testing.T) {
	r := setupRepo(t)
	svc := &CatalogService{Repo: r}
	seedCatalog(t, r)

	bySlug, err := svc.GetProduct(context.Background(), "alpha-runner")
	require.NoError(t, err)

	byID, err := svc.GetProduct(context.Background(), fmt.Sprint(bySlug.ID))
	require.NoError(t, err)
	require.Equal(t, bySlug.ID, byID.ID)

	_, err = svc.GetProduct(context.Background(), "hidden-sneaker")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = svc.GetProduct(context.Background(), "no-such-product")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCreateCategoryDuplicateSlug(t *testing.T) {
	r := setupRepo(t)
	svc := &CatalogService{Repo: r}
	seedCatalog(t, r)

	_, err := svc.CreateCategory(context.Background(),
		transportCategory("Footwear", "shoes"))
	require.ErrorIs(t, err, ErrConflict)

	created, err := svc.CreateCategory(context.Background(),
		transportCategory("Socks", "socks"))
	require.NoError(t, err)
	require.NotZero(t, created.ID)
}
