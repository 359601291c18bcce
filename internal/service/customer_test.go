package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/mkravets/storefront/internal/models"
	"github.com/mkravets/storefront/internal/repo"
)

func seedOrder(t *testing.T, r *repo.GormRepo, userID uint, total float64, paymentStatus string) {
	order := models.Order{
		OrderNumber:   "ORD-TEST-" + decimal.NewFromFloat(total).String() + "-" + paymentStatus + "-" + decimal.NewFromInt(int64(userID)).String(),
		UserID:        userID,
		Status:        models.OrderStatusPending,
		PaymentStatus: paymentStatus,
		Total:         decimal.NewFromFloat(total),
	}
	require.NoError(t, r.DB.Create(&order).Error)
}

func TestCustomerDetailAverages(t *testing.T) {
	r := setupRepo(t)
	svc := &CustomerService{Repo: r}
	user := createUser(t, r, "cust@example.com", models.RoleUser)

	seedOrder(t, r, user.ID, 30, models.PaymentStatusPaid)
	seedOrder(t, r, user.ID, 50, models.PaymentStatusPending)

	agg, err := svc.Detail(context.Background(), user.ID)
	require.NoError(t, err)
	require.Equal(t, int64(2), agg.OrderCount)
	require.Equal(t, "80.00", agg.TotalSpent.StringFixed(2))
	require.Equal(t, "40.00", agg.AverageOrderValue.StringFixed(2))
}

func TestCustomerDetailZeroOrders(t *testing.T) {
	r := setupRepo(t)
	svc := &CustomerService{Repo: r}
	user := createUser(t, r, "new@example.com", models.RoleUser)

	agg, err := svc.Detail(context.Background(), user.ID)
	require.NoError(t, err)
	require.Zero(t, agg.OrderCount)
	require.True(t, agg.TotalSpent.IsZero())
	require.True(t, agg.AverageOrderValue.IsZero())
}

func TestCustomerDetailNotFound(t *testing.T) {
	r := setupRepo(t)
	svc := &CustomerService{Repo: r}

	_, err := svc.Detail(context.Background(), 999)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCustomerDetailRecentCaps(t *testing.T) {
	r := setupRepo(t)
	svc := &CustomerService{Repo: r}
	user := createUser(t, r, "busy@example.com", models.RoleUser)

	for i := 0; i < 13; i++ {
		seedOrder(t, r, user.ID, float64(i+1), models.PaymentStatusPaid)
		review := models.Review{UserID: user.ID, ProductID: uint(i + 1), Rating: 5}
		require.NoError(t, r.DB.Create(&review).Error)
	}

	agg, err := svc.Detail(context.Background(), user.ID)
	require.NoError(t, err)
	require.Len(t, agg.RecentOrders, 10)
	require.Len(t, agg.RecentReviews, 10)
	require.Equal(t, int64(13), agg.OrderCount)
}

func TestCustomerListPaidSpendOnly(t *testing.T) {
	r := setupRepo(t)
	svc := &CustomerService{Repo: r}
	alice := createUser(t, r, "alice@example.com", models.RoleUser)
	bob := createUser(t, r, "bob@example.com", models.RoleUser)

	seedOrder(t, r, alice.ID, 100, models.PaymentStatusPaid)
	seedOrder(t, r, alice.ID, 40, models.PaymentStatusPaid)
	seedOrder(t, r, alice.ID, 999, models.PaymentStatusFailed)
	seedOrder(t, r, bob.ID, 25, models.PaymentStatusPending)

	total, rows, err := svc.List(context.Background(), 0, 20)
	require.NoError(t, err)
	require.Equal(t, int64(2), total)

	spend := map[string]string{}
	for _, row := range rows {
		spend[row.User.Email] = row.TotalSpent.StringFixed(2)
	}
	require.Equal(t, "140.00", spend["alice@example.com"])
	require.Equal(t, "0.00", spend["bob@example.com"])
}
