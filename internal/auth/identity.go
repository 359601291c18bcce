package auth

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mkravets/storefront/internal/models"
)

// Identity is the resolved caller: who they are and the role cached in
// their credential. A nil *Identity is an anonymous caller.
type Identity struct {
	UserID uint
	Role   string
}

func (i *Identity) IsElevated() bool {
	if i == nil {
		return false
	}
	return i.Role == models.RoleAdmin || i.Role == models.RoleManager
}

func (i *Identity) IsAdmin() bool {
	return i != nil && i.Role == models.RoleAdmin
}

// Resolver extracts an identity from a request credential. Absence of a
// credential is not an error: callers decide whether anonymity is enough.
type Resolver struct {
	Secret []byte
}

// Resolve looks for the access token in the accessToken cookie, then in
// the Authorization header. A present-but-invalid credential resolves to
// anonymous as well; the guard turns that into 401 where it matters.
func (r *Resolver) Resolve(c echo.Context) *Identity {
	if cookie, err := c.Cookie("accessToken"); err == nil && cookie.Value != "" {
		if ident, err := ParseAccessToken(cookie.Value, r.Secret); err == nil {
			return ident
		}
	}

	header := strings.TrimSpace(c.Request().Header.Get(echo.HeaderAuthorization))
	if header == "" {
		return nil
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil
	}
	ident, err := ParseAccessToken(strings.TrimSpace(parts[1]), r.Secret)
	if err != nil {
		return nil
	}
	return ident
}

// NewCookie builds the http-only cookie that carries the access token.
func NewCookie(name, value, path string, exp time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     path,
		Expires:  exp,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	}
}
