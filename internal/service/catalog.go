package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/mkravets/storefront/internal/models"
	"github.com/mkravets/storefront/internal/repo"
	"github.com/mkravets/storefront/internal/transport"
)

const minQueryLength = 2

type CatalogService struct {
	Repo *repo.GormRepo
}

type SearchQuery struct {
	Query    string
	Category string
	MinPrice *float64
	MaxPrice *float64
	Sort     string
	Offset   int
	Limit    int
}

func (s *CatalogService) Search(ctx context.Context, q SearchQuery) (int64, []models.Product, map[uint]string, error) {
	text := strings.TrimSpace(q.Query)
	if text != "" && len([]rune(text)) < minQueryLength {
		return 0, nil, nil, fmt.Errorf("%w: query must be at least %d characters",
			ErrValidation, minQueryLength)
	}

	params := repo.SearchParams{
		Query:    text,
		Category: q.Category,
		Sort:     q.Sort,
		Offset:   q.Offset,
		Limit:    q.Limit,
	}
	if q.MinPrice != nil {
		if *q.MinPrice < 0 {
			return 0, nil, nil, fmt.Errorf("%w: min price must be >= 0", ErrValidation)
		}
		d := decimal.NewFromFloat(*q.MinPrice)
		params.MinPrice = &d
	}
	if q.MaxPrice != nil {
		if *q.MaxPrice < 0 {
			return 0, nil, nil, fmt.Errorf("%w: max price must be >= 0", ErrValidation)
		}
		d := decimal.NewFromFloat(*q.MaxPrice)
		params.MaxPrice = &d
	}
	if params.MinPrice != nil && params.MaxPrice != nil && params.MinPrice.GreaterThan(*params.MaxPrice) {
		return 0, nil, nil, fmt.Errorf("%w: min price above max price", ErrValidation)
	}

	total, items, err := s.Repo.SearchProducts(ctx, params)
	if err != nil {
		return 0, nil, nil, err
	}

	ids := make([]uint, len(items))
	for i := range items {
		ids[i] = items[i].ID
	}
	images, err := s.Repo.PrimaryImages(ctx, ids)
	if err != nil {
		return 0, nil, nil, err
	}
	return total, items, images, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, idOrSlug string) (*models.Product, error) {
	product, err := s.Repo.GetProduct(ctx, idOrSlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product", ErrNotFound)
		}
		return nil, err
	}
	return product, nil
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.Repo.ListCategories(ctx)
}

func (s *CatalogService) CreateCategory(ctx context.Context, req transport.CreateCategoryRequest) (*models.Category, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name required", ErrValidation)
	}
	if strings.TrimSpace(req.Slug) == "" {
		return nil, fmt.Errorf("%w: slug required", ErrValidation)
	}

	category := &models.Category{
		Name:      req.Name,
		Slug:      req.Slug,
		ParentID:  req.ParentID,
		IsActive:  true,
		SortOrder: req.SortOrder,
	}
	if err := s.Repo.CreateCategory(ctx, category); err != nil {
		if repo.IsDuplicate(err) {
			return nil, fmt.Errorf("%w: slug already exists", ErrConflict)
		}
		return nil, err
	}
	return category, nil
}

func (s *CatalogService) AdminListProducts(ctx context.Context, offset, limit int) (int64, []models.Product, error) {
	return s.Repo.AdminListProducts(ctx, offset, limit)
}

func (s *CatalogService) SetPrimaryImage(ctx context.Context, productID, imageID uint) error {
	if err := s.Repo.SetPrimaryImage(ctx, productID, imageID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: image", ErrNotFound)
		}
		return err
	}
	return nil
}

func (s *CatalogService) ReorderImages(ctx context.Context, productID uint, imageIDs []uint) error {
	if len(imageIDs) == 0 {
		return fmt.Errorf("%w: image_ids required", ErrValidation)
	}
	if err := s.Repo.ReorderImages(ctx, productID, imageIDs); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: image", ErrNotFound)
		}
		return err
	}
	return nil
}
