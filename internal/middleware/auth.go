package middleware

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/storefront-api/internal/domain/principal"
	"github.com/BruksfildServices01/storefront-api/internal/httperr"
)

const (
	ContextPrincipal = "principal"

	HeaderLegacyToken = "x-auth-token"
)

type TokenVerifier interface {
	Verify(raw string) (principal.Principal, error)
}

// AuthMiddleware verifies the bearer token and stores the principal in the
// gin context. The verification cause is logged, never returned.
func AuthMiddleware(verifier TokenVerifier, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := tokenFromRequest(c)
		if raw == "" {
			httperr.Unauthorized(c, "No token, authorization denied")
			return
		}

		p, err := verifier.Verify(raw)
		if err != nil {
			logger.Warn("token rejected",
				slog.String("path", c.FullPath()),
				slog.Any("error", err),
			)
			httperr.Unauthorized(c, "Token is not valid")
			return
		}

		c.Set(ContextPrincipal, p)
		c.Next()
	}
}

func tokenFromRequest(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			if tok := strings.TrimSpace(parts[1]); tok != "" {
				return tok
			}
		}
	}
	return strings.TrimSpace(c.GetHeader(HeaderLegacyToken))
}

// CurrentPrincipal returns the principal set by AuthMiddleware.
func CurrentPrincipal(c *gin.Context) (*principal.Principal, bool) {
	v, ok := c.Get(ContextPrincipal)
	if !ok {
		return nil, false
	}
	p, ok := v.(principal.Principal)
	if !ok {
		return nil, false
	}
	return &p, true
}
