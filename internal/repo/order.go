package repo

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/mkravets/storefront/internal/models"
)

// CreateOrder persists the order header and its items in one transaction.
func (r *GormRepo) CreateOrder(ctx context.Context, order *models.Order) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(order).Error
	})
}

// CancelOrder is a conditional update: it flips status to CANCELLED only
// when the order belongs to userID and is still PENDING or CONFIRMED.
// The returned count is zero on wrong owner, wrong status or missing id;
// the three causes are deliberately not distinguished.
func (r *GormRepo) CancelOrder(ctx context.Context, orderID, userID uint) (int64, error) {
	res := r.DB.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ? AND user_id = ? AND status IN ?",
			orderID, userID,
			[]string{models.OrderStatusPending, models.OrderStatusConfirmed}).
		Update("status", models.OrderStatusCancelled)
	return res.RowsAffected, res.Error
}

// UpdateOrderStatus moves an order from one known status to the next.
// RowsAffected is zero when the order is absent or no longer in `from`.
func (r *GormRepo) UpdateOrderStatus(ctx context.Context, orderID uint, from, to string) (int64, error) {
	res := r.DB.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

// UpdateOrderStatusIn is the unscoped variant for elevated callers: any
// of the `from` statuses may move to `to`.
func (r *GormRepo) UpdateOrderStatusIn(ctx context.Context, orderID uint, from []string, to string) (int64, error) {
	res := r.DB.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ? AND status IN ?", orderID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

func (r *GormRepo) GetOrder(ctx context.Context, orderID uint) (*models.Order, error) {
	var order models.Order
	err := r.DB.WithContext(ctx).
		Preload("Items").
		First(&order, orderID).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *GormRepo) ListOrders(ctx context.Context, userID uint, offset, limit int) (int64, []models.Order, error) {
	q := r.DB.WithContext(ctx).Model(&models.Order{}).Where("user_id = ?", userID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return 0, nil, err
	}

	var orders []models.Order
	if err := q.Preload("Items").
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&orders).Error; err != nil {
		return 0, nil, err
	}
	return total, orders, nil
}

func (r *GormRepo) RecentOrders(ctx context.Context, userID uint, limit int) ([]models.Order, error) {
	var orders []models.Order
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&orders).Error
	return orders, err
}

type orderStats struct {
	Count int64
	Total decimal.Decimal
}

// OrderStats returns the order count and summed totals for one user.
func (r *GormRepo) OrderStats(ctx context.Context, userID uint) (int64, decimal.Decimal, error) {
	var row orderStats
	err := r.DB.WithContext(ctx).
		Model(&models.Order{}).
		Select("COUNT(*) AS count, COALESCE(SUM(total), 0) AS total").
		Where("user_id = ?", userID).
		Scan(&row).Error
	if err != nil {
		return 0, decimal.Zero, err
	}
	return row.Count, row.Total, nil
}

type spendRow struct {
	UserID uint
	Total  decimal.Decimal
}

// PaidSpendByUser aggregates PAID order totals for a set of users in one
// grouped query, keyed by user id.
func (r *GormRepo) PaidSpendByUser(ctx context.Context, userIDs []uint) (map[uint]decimal.Decimal, error) {
	out := make(map[uint]decimal.Decimal, len(userIDs))
	if len(userIDs) == 0 {
		return out, nil
	}

	var rows []spendRow
	err := r.DB.WithContext(ctx).
		Model(&models.Order{}).
		Select("user_id, COALESCE(SUM(total), 0) AS total").
		Where("payment_status = ? AND user_id IN ?", models.PaymentStatusPaid, userIDs).
		Group("user_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		out[row.UserID] = row.Total
	}
	return out, nil
}
