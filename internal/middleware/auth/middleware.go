package authmw

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mkravets/storefront/internal/auth"
)

const identityKey = "identity"

type Middleware struct {
	Resolver *auth.Resolver
}

func New(secret []byte) *Middleware {
	return &Middleware{Resolver: &auth.Resolver{Secret: secret}}
}

// IdentityFrom returns the identity stored by ResolveIdentity, or nil for
// an anonymous caller.
func IdentityFrom(c echo.Context) *auth.Identity {
	if v := c.Get(identityKey); v != nil {
		if ident, ok := v.(*auth.Identity); ok {
			return ident
		}
	}
	return nil
}

// ResolveIdentity attaches the caller's identity (possibly anonymous) to
// the echo context. It never rejects a request.
func (m *Middleware) ResolveIdentity(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if ident := m.Resolver.Resolve(c); ident != nil {
			c.Set(identityKey, ident)
		}
		return next(c)
	}
}

func (m *Middleware) RequireLogin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if IdentityFrom(c) == nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
		}
		return next(c)
	}
}

func (m *Middleware) RequireElevated(next echo.HandlerFunc) echo.HandlerFunc {
	return m.require(auth.Elevated, next)
}

func (m *Middleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return m.require(auth.AdminOnly, next)
}

func (m *Middleware) require(cap auth.Capability, next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := auth.Authorize(IdentityFrom(c), cap, 0); err != nil {
			if err == auth.ErrUnauthenticated {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			return echo.NewHTTPError(http.StatusForbidden, "not enough rights")
		}
		return next(c)
	}
}
