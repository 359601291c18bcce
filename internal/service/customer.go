package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/mkravets/storefront/internal/models"
	"github.com/mkravets/storefront/internal/repo"
)

const recentCap = 10

type CustomerService struct {
	Repo *repo.GormRepo
}

type CustomerRow struct {
	User       models.User
	TotalSpent decimal.Decimal
}

type CustomerAggregate struct {
	User              models.User
	OrderCount        int64
	TotalSpent        decimal.Decimal
	AverageOrderValue decimal.Decimal
	RecentOrders      []models.Order
	RecentReviews     []models.Review
	Addresses         []models.Address
}

// List returns a page of customers with each row's PAID spend, computed
// by one grouped aggregate query rather than per row.
func (s *CustomerService) List(ctx context.Context, offset, limit int) (int64, []CustomerRow, error) {
	total, users, err := s.Repo.ListUsers(ctx, offset, limit)
	if err != nil {
		return 0, nil, err
	}

	ids := make([]uint, len(users))
	for i := range users {
		ids[i] = users[i].ID
	}
	spend, err := s.Repo.PaidSpendByUser(ctx, ids)
	if err != nil {
		return 0, nil, err
	}

	rows := make([]CustomerRow, len(users))
	for i, u := range users {
		rows[i] = CustomerRow{User: u, TotalSpent: spend[u.ID]}
	}
	return total, rows, nil
}

func (s *CustomerService) Detail(ctx context.Context, userID uint) (*CustomerAggregate, error) {
	user, err := s.Repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: customer", ErrNotFound)
		}
		return nil, err
	}

	orderCount, totalSpent, err := s.Repo.OrderStats(ctx, userID)
	if err != nil {
		return nil, err
	}

	average := decimal.Zero
	if orderCount > 0 {
		average = totalSpent.Div(decimal.NewFromInt(orderCount)).Round(2)
	}

	recentOrders, err := s.Repo.RecentOrders(ctx, userID, recentCap)
	if err != nil {
		return nil, err
	}
	recentReviews, err := s.Repo.RecentReviews(ctx, userID, recentCap)
	if err != nil {
		return nil, err
	}
	addresses, err := s.Repo.AddressesFor(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &CustomerAggregate{
		User:              *user,
		OrderCount:        orderCount,
		TotalSpent:        totalSpent,
		AverageOrderValue: average,
		RecentOrders:      recentOrders,
		RecentReviews:     recentReviews,
		Addresses:         addresses,
	}, nil
}
