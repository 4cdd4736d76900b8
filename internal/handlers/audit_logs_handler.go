package handlers

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/storefront-api/internal/audit"
	"github.com/BruksfildServices01/storefront-api/internal/httpresp"
)

const (
	auditDefaultLimit = 50
	auditMaxLimit     = 200
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	store audit.Store
	log   *slog.Logger
}

func NewAuditLogsHandler(store audit.Store, log *slog.Logger) *AuditLogsHandler {
	return &AuditLogsHandler{store: store, log: log}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(auditDefaultLimit)))
	if limit <= 0 || limit > auditMaxLimit {
		limit = auditDefaultLimit
	}

	logs, total, err := h.store.List(c.Request.Context(), audit.Filter{
		Action: strings.TrimSpace(c.Query("action")),
		Entity: strings.TrimSpace(c.Query("entity")),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		internalError(c, h.log, err)
		return
	}

	httpresp.Page(c, page, limit, total, logs)
}
