package httpserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/mkravets/storefront/internal/logging"
	"github.com/mkravets/storefront/internal/service"
	"github.com/mkravets/storefront/internal/transport"
)

type WishlistHTTP struct {
	Svc *service.WishlistService
}

func (h *WishlistHTTP) Add(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "wishlist.add")

	ident, err := requireIdentity(c)
	if err != nil {
		return err
	}

	var req transport.WishlistAddRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("wishlist_add_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	if err := h.Svc.Add(ctx, ident.UserID, req.ProductID); err != nil {
		l.Warn("wishlist_add_error", "error", err)
		return httpError(err)
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "added"})
}

func (h *WishlistHTTP) List(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "wishlist.list")

	ident, err := requireIdentity(c)
	if err != nil {
		return err
	}

	items, err := h.Svc.List(ctx, ident.UserID)
	if err != nil {
		l.Error("wishlist_list_error", "status", 500, "error", err)
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]any{"items": items})
}

func (h *WishlistHTTP) Remove(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "wishlist.remove")

	ident, err := requireIdentity(c)
	if err != nil {
		return err
	}

	productID, err := strconv.Atoi(c.Param("productID"))
	if err != nil {
		l.Warn("wishlist_remove_error", "status", 400, "reason", "id not numeric", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "product id must be numeric")
	}

	if err := h.Svc.Remove(ctx, ident.UserID, uint(productID)); err != nil {
		l.Warn("wishlist_remove_error", "error", err)
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
