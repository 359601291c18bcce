package repo

import (
	"context"

	"gorm.io/gorm/clause"

	"github.com/mkravets/storefront/internal/models"
)

func (r *GormRepo) ListSettings(ctx context.Context) ([]models.Setting, error) {
	var settings []models.Setting
	err := r.DB.WithContext(ctx).Order("key ASC").Find(&settings).Error
	return settings, err
}

func (r *GormRepo) UpsertSettings(ctx context.Context, values map[string]string) error {
	if len(values) == 0 {
		return nil
	}

	settings := make([]models.Setting, 0, len(values))
	for k, v := range values {
		settings = append(settings, models.Setting{Key: k, Value: v})
	}

	return r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).
		Create(&settings).Error
}
