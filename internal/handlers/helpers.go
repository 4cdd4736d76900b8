package handlers

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/storefront-api/internal/audit"
	"github.com/BruksfildServices01/storefront-api/internal/domain/sorting"
	"github.com/BruksfildServices01/storefront-api/internal/httperr"
	"github.com/BruksfildServices01/storefront-api/internal/middleware"
	"github.com/BruksfildServices01/storefront-api/internal/validators"
)

const msgEmailTaken = "Email already registered"

// bindJSON decodes and validates the body, answering 400 on failure.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		httperr.Validation(c, validators.Details(err))
		return false
	}
	return true
}

// pathID prefers the id already parsed by SelfOrRole.
func pathID(c *gin.Context, param string) (uint, bool) {
	if v, ok := c.Get(middleware.ContextResourceID); ok {
		if id, ok := v.(uint); ok {
			return id, true
		}
	}
	id, ok := middleware.ParseID(c.Param(param))
	if !ok {
		httperr.Validation(c, validators.InvalidID(param))
		return 0, false
	}
	return id, true
}

// storeError maps repository errors to responses. Anything unexpected is
// logged and answered with a generic 500.
func storeError(c *gin.Context, log *slog.Logger, entity string, err error) {
	code, ok := httperr.CodeOf(err)
	if !ok {
		internalError(c, log, err)
		return
	}

	switch code {
	case httperr.CodeNotFound:
		httperr.NotFound(c, entity+" not found")
	case httperr.CodeEmailTaken:
		log.Info("unique constraint rejected write",
			slog.String("route", c.FullPath()),
			slog.Any("error", err),
		)
		httperr.Conflict(c, msgEmailTaken)
	default:
		internalError(c, log, err)
	}
}

func internalError(c *gin.Context, log *slog.Logger, err error) {
	log.Error("request failed",
		slog.String("method", c.Request.Method),
		slog.String("route", c.FullPath()),
		slog.Any("error", err),
	)
	httperr.Internal(c)
}

// record emits an audit event for the acting principal.
func record(c *gin.Context, rec audit.Recorder, action, entity string, id uint, meta any) {
	actor, ok := middleware.CurrentPrincipal(c)
	if !ok {
		return
	}
	ev := audit.NewEvent(*actor, action, entity, id)
	ev.Metadata = meta
	rec.Dispatch(ev)
}

// ------------------------------
// Sort routes
// ------------------------------

func sortByField(c *gin.Context, fields sorting.AllowList) ([]sorting.Order, bool) {
	o, ok := fields.Resolve(c.Param("field"), c.Param("dir"))
	if !ok {
		httperr.Validation(c, validators.NotAllowed("field", fields.Fields()))
		return nil, false
	}
	return []sorting.Order{o}, true
}

// sortByTwo orders by both fields ascending.
func sortByTwo(c *gin.Context, fields sorting.AllowList) ([]sorting.Order, bool) {
	out := make([]sorting.Order, 0, 2)
	for _, param := range []string{"first", "second"} {
		o, ok := fields.Resolve(c.Param(param), "asc")
		if !ok {
			httperr.Validation(c, validators.NotAllowed(param, fields.Fields()))
			return nil, false
		}
		out = append(out, o)
	}
	return out, true
}
