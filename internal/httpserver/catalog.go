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

type CatalogHTTP struct {
	Svc *service.CatalogService
}

func parseFloatParam(c echo.Context, name string) (*float64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, name+" must be numeric")
	}
	return &v, nil
}

func (h *CatalogHTTP) Search(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.search")

	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	size := util.ParseIntDefault(c.QueryParam("limit"), util.DefaultPageSize)
	offset, limit := util.Calculate(page, size)

	minPrice, err := parseFloatParam(c, "min_price")
	if err != nil {
		return err
	}
	maxPrice, err := parseFloatParam(c, "max_price")
	if err != nil {
		return err
	}

	q := service.SearchQuery{
		Query:    c.QueryParam("q"),
		Category: c.QueryParam("category"),
		MinPrice: minPrice,
		MaxPrice: maxPrice,
		Sort:     c.QueryParam("sort"),
		Offset:   offset,
		Limit:    limit,
	}

	total, products, images, err := h.Svc.Search(ctx, q)
	if err != nil {
		l.Warn("search_error", "error", err)
		return httpError(err)
	}

	items := make([]transport.ProductResponse, len(products))
	for i, p := range products {
		items[i] = transport.BuildProductResponse(p, images[p.ID])
	}

	l.Info("search_success", "total", total)
	return c.JSON(http.StatusOK, transport.ListResponse{
		Items:      items,
		Pagination: transport.NewPagination(page, limit, total),
	})
}

func (h *CatalogHTTP) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.get_product")

	product, err := h.Svc.GetProduct(ctx, c.Param("id"))
	if err != nil {
		l.Warn("get_product_error", "error", err)
		return httpError(err)
	}

	resp := transport.BuildProductResponse(*product, "")
	return c.JSON(http.StatusOK, map[string]any{
		"product":  resp,
		"images":   product.Images,
		"variants": product.Variants,
	})
}

func (h *CatalogHTTP) ListCategories(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.list_categories")

	categories, err := h.Svc.ListCategories(ctx)
	if err != nil {
		l.Error("list_categories_error", "status", 500, "error", err)
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]any{"items": categories})
}

func (h *CatalogHTTP) CreateCategory(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.create_category")

	var req transport.CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_category_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	category, err := h.Svc.CreateCategory(ctx, req)
	if err != nil {
		l.Warn("create_category_error", "error", err)
		return httpError(err)
	}

	l.Info("create_category_success", "category_id", category.ID)
	return c.JSON(http.StatusCreated, category)
}
