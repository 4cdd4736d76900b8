// Package policy holds the access-control predicates. They only look at the
// authenticated principal and the resource named by the route.
package policy

import (
	"errors"

	"github.com/BruksfildServices01/storefront-api/internal/domain/principal"
)

var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
)

// RequireRole allows principals holding any of roles. A missing principal or
// a principal without a role is unauthenticated.
func RequireRole(p *principal.Principal, roles ...principal.Role) error {
	if p == nil || p.Role == "" {
		return ErrUnauthenticated
	}
	if p.HasRole(roles...) {
		return nil
	}
	return ErrForbidden
}

func StaffOrAdmin(p *principal.Principal) error {
	return RequireRole(p, principal.RoleStaff, principal.RoleAdmin)
}

func AdminOnly(p *principal.Principal) error {
	return RequireRole(p, principal.RoleAdmin)
}

// SelfOrRole allows the owner of r or any principal holding one of roles.
func SelfOrRole(p *principal.Principal, r principal.Resource, roles ...principal.Role) error {
	if p == nil {
		return ErrUnauthenticated
	}
	if p.Owns(r) || p.HasRole(roles...) {
		return nil
	}
	return ErrForbidden
}
