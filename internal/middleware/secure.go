package middleware

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/unrolled/secure"
)

// SecureHeaders sets the standard hardening headers on every response.
func SecureHeaders(production bool, logger *slog.Logger) gin.HandlerFunc {
	s := secure.New(secure.Options{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
		SSLRedirect:        production,
		SSLProxyHeaders:    map[string]string{"X-Forwarded-Proto": "https"},
		IsDevelopment:      !production,
	})

	return func(c *gin.Context) {
		// on error secure has already answered (redirect or bad host)
		if err := s.Process(c.Writer, c.Request); err != nil {
			logger.Warn("secure headers blocked request", slog.Any("error", err))
			c.Abort()
			return
		}
		c.Next()
	}
}
