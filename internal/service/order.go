package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/mkravets/storefront/internal/logging"
	"github.com/mkravets/storefront/internal/models"
	"github.com/mkravets/storefront/internal/mykafka"
	"github.com/mkravets/storefront/internal/repo"
	"github.com/mkravets/storefront/internal/transport"
)

const orderNumberAttempts = 3

type OrderService struct {
	Repo     *repo.GormRepo
	Producer *mykafka.Producer
}

// generateOrderNumber builds a human-readable unique number. The random
// space is not collision-proof, so CreateOrder retries on duplicates.
func generateOrderNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:8]
	return fmt.Sprintf("ORD-%s-%s", now.Format("20060102"), suffix)
}

func (s *OrderService) CreateOrder(ctx context.Context, userID uint, req transport.CreateOrderRequest) (*models.Order, error) {
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: items required", ErrValidation)
	}

	subtotal := decimal.Zero
	items := make([]models.OrderItem, 0, len(req.Items))

	for i := range req.Items {
		it := req.Items[i]
		if it.ProductID == 0 {
			return nil, fmt.Errorf("%w: product_id required", ErrValidation)
		}
		if it.Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantity must be > 0", ErrValidation)
		}
		if it.UnitPrice < 0 {
			return nil, fmt.Errorf("%w: unit price must be >= 0", ErrValidation)
		}

		// Prices arrive as snapshots taken when the cart was built and
		// are stored as-is, never recomputed from the live catalog.
		unit := decimal.NewFromFloat(it.UnitPrice).Round(2)
		lineTotal := unit.Mul(decimal.NewFromInt(int64(it.Quantity)))

		items = append(items, models.OrderItem{
			ProductID:  it.ProductID,
			VariantID:  it.VariantID,
			Quantity:   it.Quantity,
			UnitPrice:  unit,
			TotalPrice: lineTotal,
		})
		subtotal = subtotal.Add(lineTotal)
	}

	tax := decimal.NewFromFloat(req.Tax).Round(2)
	shipping := decimal.NewFromFloat(req.Shipping).Round(2)
	discount := decimal.NewFromFloat(req.Discount).Round(2)
	if tax.IsNegative() || shipping.IsNegative() || discount.IsNegative() {
		return nil, fmt.Errorf("%w: amounts must be >= 0", ErrValidation)
	}
	total := subtotal.Add(tax).Add(shipping).Sub(discount)
	if total.IsNegative() {
		return nil, fmt.Errorf("%w: total must be >= 0", ErrValidation)
	}

	var lastErr error
	for attempt := 0; attempt < orderNumberAttempts; attempt++ {
		order := &models.Order{
			OrderNumber:   generateOrderNumber(time.Now()),
			UserID:        userID,
			Status:        models.OrderStatusPending,
			PaymentStatus: models.PaymentStatusPending,
			PaymentMethod: req.PaymentMethod,
			Subtotal:      subtotal,
			Tax:           tax,
			Shipping:      shipping,
			Discount:      discount,
			Total:         total,
			DeliveryType:  req.DeliveryType,

			ShipName:       req.ShippingAddress.Name,
			ShipPhone:      req.ShippingAddress.Phone,
			ShipLine1:      req.ShippingAddress.Line1,
			ShipLine2:      req.ShippingAddress.Line2,
			ShipCity:       req.ShippingAddress.City,
			ShipState:      req.ShippingAddress.State,
			ShipPostalCode: req.ShippingAddress.PostalCode,
			ShipCountry:    req.ShippingAddress.Country,

			Items: items,
		}

		if err := s.Repo.CreateOrder(ctx, order); err != nil {
			if repo.IsDuplicate(err) {
				lastErr = err
				continue
			}
			return nil, err
		}

		s.publish(ctx, "order_events", order.UserID, map[string]any{
			"type":         "order_created",
			"order_id":     order.ID,
			"order_number": order.OrderNumber,
			"user_id":      order.UserID,
		})
		return order, nil
	}

	return nil, fmt.Errorf("order number collision not resolved after %d attempts: %w",
		orderNumberAttempts, lastErr)
}

// CancelOrder flips the order to CANCELLED when the caller owns it and it
// is still PENDING or CONFIRMED. Wrong owner, wrong status and missing id
// all surface as one conflict; the collapse avoids leaking whether the
// order exists for someone else.
func (s *OrderService) CancelOrder(ctx context.Context, orderID, userID uint) error {
	rows, err := s.Repo.CancelOrder(ctx, orderID, userID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("%w: order cannot be cancelled", ErrConflict)
	}

	s.publish(ctx, "order_events", userID, map[string]any{
		"type":     "order_cancelled",
		"order_id": orderID,
		"user_id":  userID,
	})
	return nil
}

// GetOrder is owner-scoped: a foreign order and a missing one are the
// same ErrNotFound.
func (s *OrderService) GetOrder(ctx context.Context, orderID, userID uint) (*models.Order, map[uint]string, error) {
	order, err := s.Repo.GetOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fmt.Errorf("%w: order", ErrNotFound)
		}
		return nil, nil, err
	}
	if order.UserID != userID {
		return nil, nil, fmt.Errorf("%w: order", ErrNotFound)
	}

	images, err := s.primaryImagesFor(ctx, order.Items)
	if err != nil {
		return nil, nil, err
	}
	return order, images, nil
}

func (s *OrderService) ListOrders(ctx context.Context, userID uint, offset, limit int) (int64, []models.Order, map[uint]string, error) {
	total, orders, err := s.Repo.ListOrders(ctx, userID, offset, limit)
	if err != nil {
		return 0, nil, nil, err
	}

	var allItems []models.OrderItem
	for _, o := range orders {
		allItems = append(allItems, o.Items...)
	}
	images, err := s.primaryImagesFor(ctx, allItems)
	if err != nil {
		return 0, nil, nil, err
	}
	return total, orders, images, nil
}

// statusPredecessor encodes the forward lifecycle; CANCELLED is handled
// separately because it has two legal origins.
var statusPredecessor = map[string]string{
	models.OrderStatusConfirmed:  models.OrderStatusPending,
	models.OrderStatusProcessing: models.OrderStatusConfirmed,
	models.OrderStatusShipped:    models.OrderStatusProcessing,
	models.OrderStatusDelivered:  models.OrderStatusShipped,
}

// UpdateStatus is the elevated path: it advances an order one step along
// the lifecycle, or cancels it while still cancellable.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID uint, to string) error {
	if to == models.OrderStatusCancelled {
		rows, err := s.Repo.UpdateOrderStatusIn(ctx, orderID,
			[]string{models.OrderStatusPending, models.OrderStatusConfirmed},
			models.OrderStatusCancelled)
		if err != nil {
			return err
		}
		if rows == 0 {
			return fmt.Errorf("%w: order cannot be cancelled", ErrConflict)
		}
		return nil
	}

	from, ok := statusPredecessor[to]
	if !ok {
		return fmt.Errorf("%w: unknown status %q", ErrValidation, to)
	}

	rows, err := s.Repo.UpdateOrderStatus(ctx, orderID, from, to)
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("%w: illegal status transition", ErrConflict)
	}
	return nil
}

func (s *OrderService) primaryImagesFor(ctx context.Context, items []models.OrderItem) (map[uint]string, error) {
	seen := make(map[uint]struct{}, len(items))
	ids := make([]uint, 0, len(items))
	for _, it := range items {
		if _, ok := seen[it.ProductID]; ok {
			continue
		}
		seen[it.ProductID] = struct{}{}
		ids = append(ids, it.ProductID)
	}
	return s.Repo.PrimaryImages(ctx, ids)
}

func (s *OrderService) publish(ctx context.Context, topic string, userID uint, event map[string]any) {
	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.Producer.PublishEvent(pubCtx, topic, fmt.Sprint(userID), event); err != nil {
		logging.FromContext(ctx).Error("kafka publish error", "error", err)
	}
}
