package repo

import (
	"context"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/mkravets/storefront/internal/models"
)

const (
	SortRelevance = "relevance"
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
	SortNewest    = "newest"
	SortRating    = "rating"
)

type SearchParams struct {
	Query    string
	Category string // slug or numeric id
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	Sort     string
	Offset   int
	Limit    int
}

func (r *GormRepo) SearchProducts(ctx context.Context, p SearchParams) (int64, []models.Product, error) {
	q := r.DB.WithContext(ctx).
		Model(&models.Product{}).
		Where("is_active = ?", true)

	if p.Query != "" {
		like := "%" + strings.ToLower(p.Query) + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(brand) LIKE ? OR LOWER(tags) LIKE ?",
			like, like, like, like)
	}

	if p.Category != "" {
		if id, err := strconv.Atoi(p.Category); err == nil {
			q = q.Where("category_id = ?", id)
		} else {
			q = q.Where("category_id IN (?)",
				r.DB.Model(&models.Category{}).Select("id").Where("slug = ?", p.Category))
		}
	}

	if p.MinPrice != nil {
		q = q.Where("price >= ?", p.MinPrice)
	}
	if p.MaxPrice != nil {
		q = q.Where("price <= ?", p.MaxPrice)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return 0, nil, err
	}

	switch p.Sort {
	case SortPriceAsc:
		q = q.Order("price ASC")
	case SortPriceDesc:
		q = q.Order("price DESC")
	case SortNewest:
		q = q.Order("created_at DESC")
	case SortRating:
		q = q.Order("rating DESC")
	default:
		q = q.Order("name ASC")
	}

	var items []models.Product
	if err := q.Offset(p.Offset).Limit(p.Limit).Find(&items).Error; err != nil {
		return 0, nil, err
	}
	return total, items, nil
}

// GetProduct looks a product up by numeric id or by slug, images ordered
// primary first, variants limited to active ones.
func (r *GormRepo) GetProduct(ctx context.Context, idOrSlug string) (*models.Product, error) {
	q := r.DB.WithContext(ctx).
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("is_primary DESC, sort_order ASC")
		}).
		Preload("Variants", "is_active = ?", true)

	var product models.Product
	var err error
	if id, convErr := strconv.Atoi(idOrSlug); convErr == nil {
		err = q.Where("id = ? AND is_active = ?", id, true).First(&product).Error
	} else {
		err = q.Where("slug = ? AND is_active = ?", idOrSlug, true).First(&product).Error
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// PrimaryImages returns the primary image URL per product for a set of
// product ids, in one query.
func (r *GormRepo) PrimaryImages(ctx context.Context, productIDs []uint) (map[uint]string, error) {
	out := make(map[uint]string, len(productIDs))
	if len(productIDs) == 0 {
		return out, nil
	}

	var images []models.ProductImage
	err := r.DB.WithContext(ctx).
		Where("product_id IN ? AND is_primary = ?", productIDs, true).
		Find(&images).Error
	if err != nil {
		return nil, err
	}
	for _, img := range images {
		out[img.ProductID] = img.URL
	}
	return out, nil
}

func (r *GormRepo) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := r.DB.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort_order ASC, name ASC").
		Find(&categories).Error
	return categories, err
}

func (r *GormRepo) CreateCategory(ctx context.Context, category *models.Category) error {
	return r.DB.WithContext(ctx).Create(category).Error
}

// AdminListProducts includes inactive products, newest first.
func (r *GormRepo) AdminListProducts(ctx context.Context, offset, limit int) (int64, []models.Product, error) {
	var total int64
	if err := r.DB.WithContext(ctx).Model(&models.Product{}).Count(&total).Error; err != nil {
		return 0, nil, err
	}

	var items []models.Product
	err := r.DB.WithContext(ctx).
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("is_primary DESC, sort_order ASC")
		}).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&items).Error
	if err != nil {
		return 0, nil, err
	}
	return total, items, nil
}

// SetPrimaryImage unsets every primary flag for the product and sets the
// chosen one inside a single transaction, so two primaries can never be
// observed.
func (r *GormRepo) SetPrimaryImage(ctx context.Context, productID, imageID uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var image models.ProductImage
		if err := tx.Where("id = ? AND product_id = ?", imageID, productID).
			First(&image).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.ProductImage{}).
			Where("product_id = ?", productID).
			Update("is_primary", false).Error; err != nil {
			return err
		}

		return tx.Model(&models.ProductImage{}).
			Where("id = ?", imageID).
			Update("is_primary", true).Error
	})
}

// ReorderImages applies the given ordering all-or-nothing.
func (r *GormRepo) ReorderImages(ctx context.Context, productID uint, imageIDs []uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for pos, imageID := range imageIDs {
			res := tx.Model(&models.ProductImage{}).
				Where("id = ? AND product_id = ?", imageID, productID).
				Update("sort_order", pos)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
		}
		return nil
	})
}
