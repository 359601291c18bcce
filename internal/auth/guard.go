package auth

import "errors"

var (
	// ErrUnauthenticated means no valid credential was presented.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrForbidden means a credential was presented but the role or
	// ownership check failed.
	ErrForbidden = errors.New("forbidden")
)

// Capability is the privilege a route requires, in increasing order.
type Capability int

const (
	// AnonymousOK allows any caller, identified or not.
	AnonymousOK Capability = iota
	// SelfOnly requires the caller to own the resource.
	SelfOnly
	// Elevated requires ADMIN or MANAGER.
	Elevated
	// AdminOnly requires ADMIN; MANAGER is read-only on such resources.
	AdminOnly
)

// Authorize checks one capability against a resolved identity. ownerID is
// only consulted for SelfOnly; pass 0 otherwise.
func Authorize(ident *Identity, cap Capability, ownerID uint) error {
	if cap == AnonymousOK {
		return nil
	}
	if ident == nil {
		return ErrUnauthenticated
	}
	switch cap {
	case SelfOnly:
		if ident.UserID != ownerID {
			return ErrForbidden
		}
	case Elevated:
		if !ident.IsElevated() {
			return ErrForbidden
		}
	case AdminOnly:
		if !ident.IsAdmin() {
			return ErrForbidden
		}
	}
	return nil
}
