package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/mkravets/storefront/internal/models"
	"github.com/mkravets/storefront/internal/repo"
)

type SettingsService struct {
	Repo *repo.GormRepo
}

func (s *SettingsService) List(ctx context.Context) ([]models.Setting, error) {
	return s.Repo.ListSettings(ctx)
}

func (s *SettingsService) Update(ctx context.Context, values map[string]string) error {
	if len(values) == 0 {
		return fmt.Errorf("%w: values required", ErrValidation)
	}
	for k := range values {
		if strings.TrimSpace(k) == "" {
			return fmt.Errorf("%w: empty setting key", ErrValidation)
		}
	}
	return s.Repo.UpsertSettings(ctx, values)
}
