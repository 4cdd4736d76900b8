package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/storefront-api/internal/domain/principal"
)

func ptr(p principal.Principal) *principal.Principal { return &p }

func TestStaffOrAdmin(t *testing.T) {
	assert.ErrorIs(t, StaffOrAdmin(nil), ErrUnauthenticated)
	assert.ErrorIs(t, StaffOrAdmin(&principal.Principal{Name: "no role"}), ErrUnauthenticated)
	assert.ErrorIs(t, StaffOrAdmin(ptr(principal.New(principal.RoleCustomer, 1, "Ada", "a@x.com"))), ErrForbidden)
	assert.NoError(t, StaffOrAdmin(ptr(principal.New(principal.RoleStaff, 1, "Sam", "s@x.com"))))
	assert.NoError(t, StaffOrAdmin(ptr(principal.New(principal.RoleAdmin, 1, "Root", "r@x.com"))))
}

func TestAdminOnly(t *testing.T) {
	assert.ErrorIs(t, AdminOnly(nil), ErrUnauthenticated)
	assert.ErrorIs(t, AdminOnly(ptr(principal.New(principal.RoleStaff, 1, "Sam", "s@x.com"))), ErrForbidden)
	assert.ErrorIs(t, AdminOnly(&principal.Principal{Role: "superuser"}), ErrForbidden)
	assert.NoError(t, AdminOnly(ptr(principal.New(principal.RoleAdmin, 1, "Root", "r@x.com"))))
}

func TestSelfOrRole(t *testing.T) {
	ada := ptr(principal.New(principal.RoleCustomer, 4, "Ada", "a@x.com"))
	sam := ptr(principal.New(principal.RoleStaff, 4, "Sam", "s@x.com"))
	own := principal.Resource{Kind: principal.RoleCustomer, ID: 4}
	other := principal.Resource{Kind: principal.RoleCustomer, ID: 5}
	staffAndAdmin := []principal.Role{principal.RoleStaff, principal.RoleAdmin}

	assert.NoError(t, SelfOrRole(ada, own, staffAndAdmin...))
	assert.ErrorIs(t, SelfOrRole(ada, other, staffAndAdmin...), ErrForbidden)

	assert.NoError(t, SelfOrRole(sam, other, staffAndAdmin...))
	// a staff id equal to the customer id is not self access
	assert.ErrorIs(t, SelfOrRole(sam, own, principal.RoleAdmin), ErrForbidden)

	assert.NoError(t, SelfOrRole(ada, own))
	assert.ErrorIs(t, SelfOrRole(nil, own, staffAndAdmin...), ErrUnauthenticated)
}
