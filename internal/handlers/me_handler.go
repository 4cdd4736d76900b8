package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/storefront-api/internal/httperr"
	"github.com/BruksfildServices01/storefront-api/internal/httpresp"
	"github.com/BruksfildServices01/storefront-api/internal/middleware"
)

type MeHandler struct{}

func NewMeHandler() *MeHandler {
	return &MeHandler{}
}

// GetMe echoes the principal carried by the verified token.
func (h *MeHandler) GetMe(c *gin.Context) {
	p, ok := middleware.CurrentPrincipal(c)
	if !ok {
		httperr.Unauthorized(c, "Not authenticated")
		return
	}

	httpresp.OK(c, gin.H{"user": p})
}
