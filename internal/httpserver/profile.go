package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mkravets/storefront/internal/logging"
	"github.com/mkravets/storefront/internal/service"
	"github.com/mkravets/storefront/internal/transport"
)

type ProfileHTTP struct {
	Svc *service.ProfileService
}

func (h *ProfileHTTP) GetProfile(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "profile.get")

	ident, err := requireIdentity(c)
	if err != nil {
		return err
	}

	user, err := h.Svc.Get(ctx, ident.UserID)
	if err != nil {
		l.Warn("get_profile_error", "error", err)
		return httpError(err)
	}

	addresses, err := h.Svc.Addresses(ctx, ident.UserID)
	if err != nil {
		l.Error("get_profile_error", "status", 500, "error", err)
		return httpError(err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"user":      user,
		"addresses": addresses,
	})
}

func (h *ProfileHTTP) UpdateProfile(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "profile.update")

	ident, err := requireIdentity(c)
	if err != nil {
		return err
	}

	var req transport.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_profile_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	user, err := h.Svc.Update(ctx, ident.UserID, req)
	if err != nil {
		l.Warn("update_profile_error", "error", err)
		return httpError(err)
	}

	l.Info("update_profile_success", "user_id", user.ID)
	return c.JSON(http.StatusOK, user)
}

func (h *ProfileHTTP) CreateAddress(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "profile.create_address")

	ident, err := requireIdentity(c)
	if err != nil {
		return err
	}

	var req transport.CreateAddressRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_address_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	address, err := h.Svc.CreateAddress(ctx, ident.UserID, req)
	if err != nil {
		l.Warn("create_address_error", "error", err)
		return httpError(err)
	}

	l.Info("create_address_success", "address_id", address.ID)
	return c.JSON(http.StatusCreated, address)
}
