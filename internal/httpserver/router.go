package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	authmw "github.com/mkravets/storefront/internal/middleware/auth"
)

type Deps struct {
	AuthHandler     *AuthHTTP
	OrderHandler    *OrderHTTP
	CatalogHandler  *CatalogHTTP
	CustomerHandler *CustomerHTTP
	ProfileHandler  *ProfileHTTP
	WishlistHandler *WishlistHTTP
	AdminHandler    *AdminHTTP
	AuthMW          *authmw.Middleware
}

func Register(e *echo.Echo, d *Deps) {
	e.HTTPErrorHandler = ErrorHandler

	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	v1 := e.Group("/api/v1", d.AuthMW.ResolveIdentity)

	v1.POST("/auth/register", d.AuthHandler.Register)
	v1.POST("/auth/login", d.AuthHandler.Login)
	v1.POST("/auth/provider", d.AuthHandler.Provider)
	v1.POST("/auth/logout", d.AuthHandler.Logout, d.AuthMW.RequireLogin)

	v1.GET("/categories", d.CatalogHandler.ListCategories)
	v1.POST("/categories", d.CatalogHandler.CreateCategory, d.AuthMW.RequireAdmin)
	v1.GET("/search", d.CatalogHandler.Search)
	v1.GET("/products/:id", d.CatalogHandler.GetProduct)

	orders := v1.Group("/orders", d.AuthMW.RequireLogin)
	orders.GET("", d.OrderHandler.ListOrders)
	orders.POST("", d.OrderHandler.CreateOrder)
	orders.GET("/:id", d.OrderHandler.GetOrder)
	orders.PUT("/:id/cancel", d.OrderHandler.CancelOrder)

	profile := v1.Group("/profile", d.AuthMW.RequireLogin)
	profile.GET("", d.ProfileHandler.GetProfile)
	profile.PUT("", d.ProfileHandler.UpdateProfile)
	profile.POST("/addresses", d.ProfileHandler.CreateAddress)

	wishlist := v1.Group("/wishlist", d.AuthMW.RequireLogin)
	wishlist.GET("", d.WishlistHandler.List)
	wishlist.POST("", d.WishlistHandler.Add)
	wishlist.DELETE("/:productID", d.WishlistHandler.Remove)

	admin := v1.Group("/admin", d.AuthMW.RequireElevated)
	admin.GET("/customers", d.CustomerHandler.ListCustomers)
	admin.GET("/customers/:id", d.CustomerHandler.GetCustomer)
	admin.GET("/products", d.AdminHandler.ListProducts)
	admin.PUT("/products/:id/images/:imageID/primary", d.AdminHandler.SetPrimaryImage)
	admin.PUT("/products/:id/images/reorder", d.AdminHandler.ReorderImages)
	admin.PUT("/orders/:id/status", d.OrderHandler.AdminUpdateStatus)
	admin.GET("/settings", d.AdminHandler.GetSettings)

	// Settings mutation is stricter than the rest of the back office:
	// MANAGER reads, only ADMIN writes.
	admin.PUT("/settings", d.AdminHandler.UpdateSettings, d.AuthMW.RequireAdmin)
}
