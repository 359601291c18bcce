package httpserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/mkravets/storefront/internal/logging"
	"github.com/mkravets/storefront/internal/service"
	"github.com/mkravets/storefront/internal/transport"
	"github.com/mkravets/storefront/internal/util"
)

type OrderHTTP struct {
	Svc *service.OrderService
}

func (h *OrderHTTP) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.create")

	ident, err := requireIdentity(c)
	if err != nil {
		return err
	}

	var req transport.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_order_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	order, err := h.Svc.CreateOrder(ctx, ident.UserID, req)
	if err != nil {
		l.Warn("create_order_error", "error", err)
		return httpError(err)
	}

	l.Info("create_order_success", "order_id", order.ID, "order_number", order.OrderNumber)
	return c.JSON(http.StatusCreated, transport.BuildOrderResponse(*order, nil))
}

func (h *OrderHTTP) ListOrders(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.list")

	ident, err := requireIdentity(c)
	if err != nil {
		return err
	}

	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	size := util.ParseIntDefault(c.QueryParam("limit"), util.DefaultPageSize)
	offset, limit := util.Calculate(page, size)

	total, orders, images, err := h.Svc.ListOrders(ctx, ident.UserID, offset, limit)
	if err != nil {
		l.Error("list_orders_error", "status", 500, "error", err)
		return httpError(err)
	}

	items := make([]transport.OrderResponse, len(orders))
	for i, o := range orders {
		items[i] = transport.BuildOrderResponse(o, images)
	}

	return c.JSON(http.StatusOK, transport.ListResponse{
		Items:      items,
		Pagination: transport.NewPagination(page, limit, total),
	})
}

func (h *OrderHTTP) GetOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.get")

	ident, err := requireIdentity(c)
	if err != nil {
		return err
	}

	orderID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		l.Warn("get_order_error", "status", 400, "reason", "id not numeric", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id must be numeric")
	}

	order, images, err := h.Svc.GetOrder(ctx, uint(orderID), ident.UserID)
	if err != nil {
		l.Warn("get_order_error", "error", err)
		return httpError(err)
	}

	return c.JSON(http.StatusOK, transport.BuildOrderResponse(*order, images))
}

func (h *OrderHTTP) CancelOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.cancel")

	ident, err := requireIdentity(c)
	if err != nil {
		return err
	}

	orderID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		l.Warn("cancel_order_error", "status", 400, "reason", "id not numeric", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id must be numeric")
	}

	if err := h.Svc.CancelOrder(ctx, uint(orderID), ident.UserID); err != nil {
		l.Warn("cancel_order_error", "error", err)
		return httpError(err)
	}

	l.Info("cancel_order_success", "order_id", orderID)
	return c.JSON(http.StatusOK, map[string]string{"status": "CANCELLED"})
}

// AdminUpdateStatus advances an order's lifecycle; the route is behind
// the elevated middleware.
func (h *OrderHTTP) AdminUpdateStatus(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.admin_update_status")

	orderID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		l.Warn("update_status_error", "status", 400, "reason", "id not numeric", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id must be numeric")
	}

	var req transport.UpdateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_status_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	if err := h.Svc.UpdateStatus(ctx, uint(orderID), req.Status); err != nil {
		l.Warn("update_status_error", "error", err)
		return httpError(err)
	}

	l.Info("update_status_success", "order_id", orderID, "status", req.Status)
	return c.JSON(http.StatusOK, map[string]string{"status": req.Status})
}
