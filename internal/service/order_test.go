package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mkravets/storefront/internal/models"
	"github.com/mkravets/storefront/internal/transport"
)

func orderRequest(items ...transport.CreateOrderItem) transport.CreateOrderRequest {
	return transport.CreateOrderRequest{
		Items:         items,
		PaymentMethod: "card",
		DeliveryType:  "courier",
		ShippingAddress: transport.AddressSnapshot{
			Name: "Test User", Line1: "1 Main St", City: "Springfield",
			PostalCode: "12345", Country: "US",
		},
	}
}

func TestCreateOrder(t *testing.T) {
	r := setupRepo(t)
	svc := &OrderService{Repo: r}
	user := createUser(t, r, "buyer@example.com", models.RoleUser)

	variantID := uint(3)
	req := orderRequest(
		transport.CreateOrderItem{ProductID: 1, Quantity: 2, UnitPrice: 19.99},
		transport.CreateOrderItem{ProductID: 2, VariantID: &variantID, Quantity: 1, UnitPrice: 5.50},
	)
	req.Tax = 2.00
	req.Shipping = 4.50
	req.Discount = 1.00

	order, err := svc.CreateOrder(context.Background(), user.ID, req)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(order.OrderNumber, "ORD-"))
	require.Equal(t, models.OrderStatusPending, order.Status)
	require.Equal(t, models.PaymentStatusPending, order.PaymentStatus)
	require.Len(t, order.Items, 2)

	// 2*19.99 + 5.50 = 45.48; total = 45.48 + 2.00 + 4.50 - 1.00
	require.Equal(t, "45.48", order.Subtotal.StringFixed(2))
	require.Equal(t, "50.98", order.Total.StringFixed(2))
	require.Equal(t, "39.98", order.Items[0].TotalPrice.StringFixed(2))

	var stored models.Order
	require.NoError(t, r.DB.Preload("Items").First(&stored, order.ID).Error)
	require.Len(t, stored.Items, 2)
	require.Equal(t, &variantID, stored.Items[1].VariantID)
}

func TestCreateOrderEmptyItems(t *testing.T) {
	r := setupRepo(t)
	svc := &OrderService{Repo: r}
	user := createUser(t, r, "buyer@example.com", models.RoleUser)

	_, err := svc.CreateOrder(context.Background(), user.ID, orderRequest())
	require.ErrorIs(t, err, ErrValidation)

	var count int64
	require.NoError(t, r.DB.Model(&models.Order{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestCreateOrderRejectsBadItems(t *testing.T) {
	r := setupRepo(t)
	svc := &OrderService{Repo: r}
	user := createUser(t, r, "buyer@example.com", models.RoleUser)

	_, err := svc.CreateOrder(context.Background(), user.ID,
		orderRequest(transport.CreateOrderItem{ProductID: 1, Quantity: 0, UnitPrice: 1}))
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreateOrder(context.Background(), user.ID,
		orderRequest(transport.CreateOrderItem{ProductID: 1, Quantity: 1, UnitPrice: -0.01}))
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreateOrder(context.Background(), user.ID,
		orderRequest(transport.CreateOrderItem{Quantity: 1, UnitPrice: 1}))
	require.ErrorIs(t, err, ErrValidation)
}

func TestCancelOrderByOwner(t *testing.T) {
	r := setupRepo(t)
	svc := &OrderService{Repo: r}
	owner := createUser(t, r, "owner@example.com", models.RoleUser)

	order, err := svc.CreateOrder(context.Background(), owner.ID,
		orderRequest(transport.CreateOrderItem{ProductID: 1, Quantity: 1, UnitPrice: 10}))
	require.NoError(t, err)

	require.NoError(t, svc.CancelOrder(context.Background(), order.ID, owner.ID))

	var stored models.Order
	require.NoError(t, r.DB.First(&stored, order.ID).Error)
	require.Equal(t, models.OrderStatusCancelled, stored.Status)
}

func TestCancelOrderWrongOwner(t *testing.T) {
	r := setupRepo(t)
	svc := &OrderService{Repo: r}
	owner := createUser(t, r, "owner@example.com", models.RoleUser)
	other := createUser(t, r, "other@example.com", models.RoleUser)

	order, err := svc.CreateOrder(context.Background(), owner.ID,
		orderRequest(transport.CreateOrderItem{ProductID: 1, Quantity: 1, UnitPrice: 10}))
	require.NoError(t, err)

	err = svc.CancelOrder(context.Background(), order.ID, other.ID)
	require.ErrorIs(t, err, ErrConflict)

	var stored models.Order
	require.NoError(t, r.DB.First(&stored, order.ID).Error)
	require.Equal(t, models.OrderStatusPending, stored.Status)
}

func TestCancelOrderTerminalStatus(t *testing.T) {
	r := setupRepo(t)
	svc := &OrderService{Repo: r}
	owner := createUser(t, r, "owner@example.com", models.RoleUser)

	order, err := svc.CreateOrder(context.Background(), owner.ID,
		orderRequest(transport.CreateOrderItem{ProductID: 1, Quantity: 1, UnitPrice: 10}))
	require.NoError(t, err)

	require.NoError(t, r.DB.Model(&models.Order{}).
		Where("id = ?", order.ID).
		Update("status", models.OrderStatusDelivered).Error)

	err = svc.CancelOrder(context.Background(), order.ID, owner.ID)
	require.ErrorIs(t, err, ErrConflict)

	var stored models.Order
	require.NoError(t, r.DB.First(&stored, order.ID).Error)
	require.Equal(t, models.OrderStatusDelivered, stored.Status)
}

func TestGetOrderScopedToOwner(t *testing.T) {
	r := setupRepo(t)
	svc := &OrderService{Repo: r}
	owner := createUser(t, r, "owner@example.com", models.RoleUser)
	other := createUser(t, r, "other@example.com", models.RoleUser)

	order, err := svc.CreateOrder(context.Background(), owner.ID,
		orderRequest(transport.CreateOrderItem{ProductID: 1, Quantity: 1, UnitPrice: 10}))
	require.NoError(t, err)

	got, _, err := svc.GetOrder(context.Background(), order.ID, owner.ID)
	require.NoError(t, err)
	require.Equal(t, order.OrderNumber, got.OrderNumber)

	// A foreign order reads exactly like a missing one.
	_, _, err = svc.GetOrder(context.Background(), order.ID, other.ID)
	require.ErrorIs(t, err, ErrNotFound)

	_, _, err = svc.GetOrder(context.Background(), 9999, owner.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateStatusFollowsLifecycle(t *testing.T) {
	r := setupRepo(t)
	svc := &OrderService{Repo: r}
	owner := createUser(t, r, "owner@example.com", models.RoleUser)

	order, err := svc.CreateOrder(context.Background(), owner.ID,
		orderRequest(transport.CreateOrderItem{ProductID: 1, Quantity: 1, UnitPrice: 10}))
	require.NoError(t, err)

	// Skipping a stage is rejected.
	err = svc.UpdateStatus(context.Background(), order.ID, models.OrderStatusShipped)
	require.ErrorIs(t, err, ErrConflict)

	for _, status := range []string{
		models.OrderStatusConfirmed,
		models.OrderStatusProcessing,
		models.OrderStatusShipped,
		models.OrderStatusDelivered,
	} {
		require.NoError(t, svc.UpdateStatus(context.Background(), order.ID, status))
	}

	// DELIVERED is terminal.
	err = svc.UpdateStatus(context.Background(), order.ID, models.OrderStatusCancelled)
	require.ErrorIs(t, err, ErrConflict)

	err = svc.UpdateStatus(context.Background(), order.ID, "TELEPORTED")
	require.ErrorIs(t, err, ErrValidation)
}

func TestOrderNumbersUnique(t *testing.T) {
	r := setupRepo(t)
	svc := &OrderService{Repo: r}
	owner := createUser(t, r, "owner@example.com", models.RoleUser)

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		order, err := svc.CreateOrder(context.Background(), owner.ID,
			orderRequest(transport.CreateOrderItem{ProductID: 1, Quantity: 1, UnitPrice: 1}))
		require.NoError(t, err)
		require.False(t, seen[order.OrderNumber])
		seen[order.OrderNumber] = true
	}
}
