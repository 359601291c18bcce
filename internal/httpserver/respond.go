package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mkravets/storefront/internal/auth"
	authmw "github.com/mkravets/storefront/internal/middleware/auth"
	"github.com/mkravets/storefront/internal/logging"
	"github.com/mkravets/storefront/internal/service"
)

// ErrorHandler renders every error as {"error": "..."}. Internal detail
// never reaches the caller; it is logged server-side by the handlers.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := "internal error"

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		}
	}

	if err := c.JSON(code, map[string]string{"error": msg}); err != nil {
		logging.FromContext(c.Request().Context()).Error("error response write failed", "error", err)
	}
}

// httpError maps the service sentinel taxonomy onto status codes.
// Missing credentials and insufficient rights are kept distinct: 401
// tells the client to sign in, 403 tells it signing in will not help.
func httpError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, service.ErrValidation):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrConflict):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid email or password")
	case errors.Is(err, auth.ErrUnauthenticated):
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	case errors.Is(err, auth.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, "not enough rights")
	case errors.Is(err, service.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
}

// requireIdentity returns the resolved identity or a 401.
func requireIdentity(c echo.Context) (*auth.Identity, error) {
	ident := authmw.IdentityFrom(c)
	if ident == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	return ident, nil
}
