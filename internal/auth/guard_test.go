package auth

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mkravets/storefront/internal/models"
)

func TestAuthorizeAnonymous(t *testing.T) {
	require.NoError(t, Authorize(nil, AnonymousOK, 0))

	err := Authorize(nil, SelfOnly, 42)
	require.ErrorIs(t, err, ErrUnauthenticated)

	err = Authorize(nil, Elevated, 0)
	require.ErrorIs(t, err, ErrUnauthenticated)

	err = Authorize(nil, AdminOnly, 0)
	require.ErrorIs(t, err, ErrUnauthenticated)
}

func TestAuthorizeSelfOnly(t *testing.T) {
	owner := &Identity{UserID: 7, Role: models.RoleUser}

	require.NoError(t, Authorize(owner, SelfOnly, 7))

	err := Authorize(owner, SelfOnly, 8)
	require.ErrorIs(t, err, ErrForbidden)
}

func TestAuthorizeRoles(t *testing.T) {
	user := &Identity{UserID: 1, Role: models.RoleUser}
	manager := &Identity{UserID: 2, Role: models.RoleManager}
	admin := &Identity{UserID: 3, Role: models.RoleAdmin}

	require.ErrorIs(t, Authorize(user, Elevated, 0), ErrForbidden)
	require.NoError(t, Authorize(manager, Elevated, 0))
	require.NoError(t, Authorize(admin, Elevated, 0))

	// Settings-style mutation: manager is read-only.
	require.ErrorIs(t, Authorize(manager, AdminOnly, 0), ErrForbidden)
	require.NoError(t, Authorize(admin, AdminOnly, 0))
}

func TestAccessTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")

	token, err := SignAccessToken(15, models.RoleManager, secret)
	require.NoError(t, err)

	ident, err := ParseAccessToken(token, secret)
	require.NoError(t, err)
	require.Equal(t, uint(15), ident.UserID)
	require.Equal(t, models.RoleManager, ident.Role)

	_, err = ParseAccessToken(token, []byte("other-secret"))
	require.Error(t, err)
}
