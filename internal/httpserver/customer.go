package httpserver

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mkravets/storefront/internal/logging"
	"github.com/mkravets/storefront/internal/service"
	"github.com/mkravets/storefront/internal/transport"
	"github.com/mkravets/storefront/internal/util"
)

type CustomerHTTP struct {
	Svc *service.CustomerService
}

func (h *CustomerHTTP) ListCustomers(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "customer.list")

	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	size := util.ParseIntDefault(c.QueryParam("limit"), util.DefaultPageSize)
	offset, limit := util.Calculate(page, size)

	total, rows, err := h.Svc.List(ctx, offset, limit)
	if err != nil {
		l.Error("list_customers_error", "status", 500, "error", err)
		return httpError(err)
	}

	items := make([]transport.CustomerSummary, len(rows))
	for i, row := range rows {
		items[i] = transport.BuildCustomerSummary(row.User, row.TotalSpent.InexactFloat64())
	}

	return c.JSON(http.StatusOK, transport.ListResponse{
		Items:      items,
		Pagination: transport.NewPagination(page, limit, total),
	})
}

func (h *CustomerHTTP) GetCustomer(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "customer.get")

	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		l.Warn("get_customer_error", "status", 400, "reason", "id not numeric", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id must be numeric")
	}

	agg, err := h.Svc.Detail(ctx, uint(userID))
	if err != nil {
		l.Warn("get_customer_error", "error", err)
		return httpError(err)
	}

	recent := make([]transport.OrderResponse, len(agg.RecentOrders))
	for i, o := range agg.RecentOrders {
		recent[i] = transport.BuildOrderResponse(o, nil)
	}

	detail := transport.CustomerDetail{
		ID:                agg.User.ID,
		Email:             agg.User.Email,
		Name:              agg.User.Name,
		Image:             agg.User.Image,
		Role:              agg.User.Role,
		CreatedAt:         agg.User.CreatedAt.UTC().Format(time.RFC3339),
		TotalSpent:        agg.TotalSpent.InexactFloat64(),
		OrderCount:        agg.OrderCount,
		AverageOrderValue: agg.AverageOrderValue.InexactFloat64(),
		RecentOrders:      recent,
		RecentReviews:     agg.RecentReviews,
		Addresses:         agg.Addresses,
	}

	return c.JSON(http.StatusOK, detail)
}
