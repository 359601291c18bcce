package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/mkravets/storefront/internal/models"
	"github.com/mkravets/storefront/internal/repo"
	"github.com/mkravets/storefront/internal/transport"
)

type ProfileService struct {
	Repo *repo.GormRepo
}

func (s *ProfileService) Get(ctx context.Context, userID uint) (*models.User, error) {
	user, err := s.Repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: profile", ErrNotFound)
		}
		return nil, err
	}
	return user, nil
}

func (s *ProfileService) Update(ctx context.Context, userID uint, req transport.UpdateProfileRequest) (*models.User, error) {
	user, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", ErrValidation)
		}
		user.Name = *req.Name
	}
	if req.Image != nil {
		user.Image = *req.Image
	}

	if err := s.Repo.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *ProfileService) CreateAddress(ctx context.Context, userID uint, req transport.CreateAddressRequest) (*models.Address, error) {
	for field, value := range map[string]string{
		"name":        req.Name,
		"line1":       req.Line1,
		"city":        req.City,
		"postal_code": req.PostalCode,
		"country":     req.Country,
	} {
		if strings.TrimSpace(value) == "" {
			return nil, fmt.Errorf("%w: %s required", ErrValidation, field)
		}
	}

	address := &models.Address{
		UserID:     userID,
		Name:       req.Name,
		Phone:      req.Phone,
		Line1:      req.Line1,
		Line2:      req.Line2,
		City:       req.City,
		State:      req.State,
		PostalCode: req.PostalCode,
		Country:    req.Country,
		IsDefault:  req.IsDefault,
	}
	if err := s.Repo.CreateAddress(ctx, address); err != nil {
		return nil, err
	}
	return address, nil
}

func (s *ProfileService) Addresses(ctx context.Context, userID uint) ([]models.Address, error) {
	return s.Repo.AddressesFor(ctx, userID)
}
