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

// AdminHTTP covers the elevated back-office surface: product management
// and global settings.
type AdminHTTP struct {
	Catalog  *service.CatalogService
	Settings *service.SettingsService
}

func (h *AdminHTTP) ListProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.list_products")

	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	size := util.ParseIntDefault(c.QueryParam("limit"), util.DefaultPageSize)
	offset, limit := util.Calculate(page, size)

	total, products, err := h.Catalog.AdminListProducts(ctx, offset, limit)
	if err != nil {
		l.Error("admin_list_products_error", "status", 500, "error", err)
		return httpError(err)
	}

	items := make([]transport.ProductResponse, len(products))
	for i, p := range products {
		items[i] = transport.BuildProductResponse(p, "")
	}

	return c.JSON(http.StatusOK, transport.ListResponse{
		Items:      items,
		Pagination: transport.NewPagination(page, limit, total),
	})
}

func (h *AdminHTTP) SetPrimaryImage(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.set_primary_image")

	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		l.Warn("set_primary_image_error", "status", 400, "reason", "id not numeric", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id must be numeric")
	}
	imageID, err := strconv.Atoi(c.Param("imageID"))
	if err != nil {
		l.Warn("set_primary_image_error", "status", 400, "reason", "image id not numeric", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "image id must be numeric")
	}

	if err := h.Catalog.SetPrimaryImage(ctx, uint(productID), uint(imageID)); err != nil {
		l.Warn("set_primary_image_error", "error", err)
		return httpError(err)
	}

	l.Info("set_primary_image_success", "product_id", productID, "image_id", imageID)
	return c.JSON(http.StatusOK, map[string]string{"status": "updated"})
}

func (h *AdminHTTP) ReorderImages(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.reorder_images")

	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		l.Warn("reorder_images_error", "status", 400, "reason", "id not numeric", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id must be numeric")
	}

	var req transport.ReorderImagesRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("reorder_images_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	if err := h.Catalog.ReorderImages(ctx, uint(productID), req.ImageIDs); err != nil {
		l.Warn("reorder_images_error", "error", err)
		return httpError(err)
	}

	l.Info("reorder_images_success", "product_id", productID)
	return c.JSON(http.StatusOK, map[string]string{"status": "reordered"})
}

func (h *AdminHTTP) GetSettings(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.get_settings")

	settings, err := h.Settings.List(ctx)
	if err != nil {
		l.Error("get_settings_error", "status", 500, "error", err)
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]any{"items": settings})
}

func (h *AdminHTTP) UpdateSettings(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.update_settings")

	var req transport.UpdateSettingsRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_settings_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	if err := h.Settings.Update(ctx, req.Values); err != nil {
		l.Warn("update_settings_error", "error", err)
		return httpError(err)
	}

	l.Info("update_settings_success", "keys", len(req.Values))
	return c.JSON(http.StatusOK, map[string]string{"status": "updated"})
}
