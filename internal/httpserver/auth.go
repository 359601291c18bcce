package httpserver

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mkravets/storefront/internal/auth"
	"github.com/mkravets/storefront/internal/logging"
	"github.com/mkravets/storefront/internal/models"
	"github.com/mkravets/storefront/internal/service"
	"github.com/mkravets/storefront/internal/transport"
)

type AuthHTTP struct {
	Svc       *service.AuthService
	JWTSecret []byte
}

func (h *AuthHTTP) establishSession(c echo.Context, user *models.User) (*transport.AuthResponse, error) {
	token, err := auth.SignAccessToken(user.ID, user.Role, h.JWTSecret)
	if err != nil {
		return nil, err
	}

	c.SetCookie(auth.NewCookie("accessToken", token, "/", time.Now().Add(15*time.Minute)))

	return &transport.AuthResponse{
		AccessToken: token,
		UserID:      user.ID,
		Email:       user.Email,
		Name:        user.Name,
		Role:        user.Role,
	}, nil
}

func (h *AuthHTTP) Register(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.register")

	var req transport.RegisterRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("register_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	user, err := h.Svc.Register(ctx, req)
	if err != nil {
		l.Warn("register_error", "error", err)
		return httpError(err)
	}

	resp, err := h.establishSession(c, user)
	if err != nil {
		l.Error("register_error", "status", 500, "reason", "cannot sign token", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	l.Info("register_success", "user_id", user.ID)
	return c.JSON(http.StatusCreated, resp)
}

func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("login_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	user, err := h.Svc.Login(ctx, req)
	if err != nil {
		l.Warn("login_error", "error", err)
		return httpError(err)
	}

	resp, err := h.establishSession(c, user)
	if err != nil {
		l.Error("login_error", "status", 500, "reason", "cannot sign token", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	l.Info("login_success", "user_id", user.ID)
	return c.JSON(http.StatusOK, resp)
}

// Provider handles the post-OAuth callback. The minted token's role comes
// from the store, not from the provider payload.
func (h *AuthHTTP) Provider(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.provider")

	var req transport.ProviderLoginRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("provider_login_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	user, err := h.Svc.ProviderLogin(ctx, req)
	if err != nil {
		l.Warn("provider_login_error", "error", err)
		return httpError(err)
	}

	resp, err := h.establishSession(c, user)
	if err != nil {
		l.Error("provider_login_error", "status", 500, "reason", "cannot sign token", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	l.Info("provider_login_success", "user_id", user.ID)
	return c.JSON(http.StatusOK, resp)
}

func (h *AuthHTTP) Logout(c echo.Context) error {
	expired := time.Now().Add(-1 * time.Hour)
	c.SetCookie(auth.NewCookie("accessToken", "", "/", expired))
	return c.JSON(http.StatusOK, map[string]string{"message": "logged out"})
}
