package middleware

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/storefront-api/internal/domain/principal"
	"github.com/BruksfildServices01/storefront-api/internal/httperr"
	"github.com/BruksfildServices01/storefront-api/internal/policy"
	"github.com/BruksfildServices01/storefront-api/internal/validators"
)

const ContextResourceID = "resourceID"

func StaffOrAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		p, _ := CurrentPrincipal(c)
		if deny(c, policy.StaffOrAdmin(p)) {
			return
		}
		c.Next()
	}
}

func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		p, _ := CurrentPrincipal(c)
		if deny(c, policy.AdminOnly(p)) {
			return
		}
		c.Next()
	}
}

// SelfOrRole lets the owner of the :param resource through, along with any
// principal holding one of roles. The parsed id is stored for the handler.
func SelfOrRole(kind principal.Role, param string, roles ...principal.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := ParseID(c.Param(param))
		if !ok {
			httperr.Validation(c, validators.InvalidID(param))
			return
		}

		p, _ := CurrentPrincipal(c)
		if deny(c, policy.SelfOrRole(p, principal.Resource{Kind: kind, ID: id}, roles...)) {
			return
		}

		c.Set(ContextResourceID, id)
		c.Next()
	}
}

// ParseID accepts positive base-10 integers only.
func ParseID(raw string) (uint, bool) {
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || n == 0 {
		return 0, false
	}
	return uint(n), true
}

func deny(c *gin.Context, err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, policy.ErrUnauthenticated):
		httperr.Unauthorized(c, "Not authenticated")
	default:
		httperr.Forbidden(c, "Access denied")
	}
	return true
}
