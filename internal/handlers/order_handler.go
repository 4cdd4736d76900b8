package handlers

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/storefront-api/internal/audit"
	"github.com/BruksfildServices01/storefront-api/internal/domain/order"
	"github.com/BruksfildServices01/storefront-api/internal/domain/principal"
	"github.com/BruksfildServices01/storefront-api/internal/domain/sorting"
	"github.com/BruksfildServices01/storefront-api/internal/httperr"
	"github.com/BruksfildServices01/storefront-api/internal/httpresp"
	"github.com/BruksfildServices01/storefront-api/internal/middleware"
	"github.com/BruksfildServices01/storefront-api/internal/models"
	"github.com/BruksfildServices01/storefront-api/internal/validators"
)

const entityOrder = "Order"

type OrderHandler struct {
	repo  order.Repository
	audit audit.Recorder
	log   *slog.Logger
}

func NewOrderHandler(repo order.Repository, rec audit.Recorder, log *slog.Logger) *OrderHandler {
	return &OrderHandler{repo: repo, audit: rec, log: log}
}

// --------- Requests ---------

type CreateOrderRequest struct {
	CustID *uint    `json:"custId" binding:"omitempty,gt=0"`
	Status *string  `json:"status" binding:"omitempty,min=1,max=20"`
	Total  *float64 `json:"total" binding:"required,gte=0,decimal2"`
}

type UpdateOrderRequest struct {
	Status *string  `json:"status" binding:"omitempty,min=1,max=20"`
	Total  *float64 `json:"total" binding:"omitempty,gte=0,decimal2"`
}

// --------- Handlers ---------

func (h *OrderHandler) List(c *gin.Context) {
	h.list(c, nil)
}

// SortBy serves /orders/o/:field/:dir.
func (h *OrderHandler) SortBy(c *gin.Context) {
	o, ok := sortByField(c, order.SortFields)
	if !ok {
		return
	}
	h.list(c, o)
}

// SortByTwo serves /orders/sort/two/:first/:second.
func (h *OrderHandler) SortByTwo(c *gin.Context) {
	o, ok := sortByTwo(c, order.SortFields)
	if !ok {
		return
	}
	h.list(c, o)
}

func (h *OrderHandler) list(c *gin.Context, o []sorting.Order) {
	orders, err := h.repo.List(c.Request.Context(), o...)
	if err != nil {
		internalError(c, h.log, err)
		return
	}
	httpresp.List(c, orders)
}

func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	o, err := h.repo.Get(c.Request.Context(), id)
	if err != nil {
		storeError(c, h.log, entityOrder, err)
		return
	}
	httpresp.OK(c, o)
}

// Create lets a customer order for itself only; staff and admins name the
// customer explicitly.
func (h *OrderHandler) Create(c *gin.Context) {
	p, ok := middleware.CurrentPrincipal(c)
	if !ok {
		httperr.Unauthorized(c, "Not authenticated")
		return
	}

	var req CreateOrderRequest
	if !bindJSON(c, &req) {
		return
	}

	var custID uint
	if p.Role == principal.RoleCustomer {
		own, ok := p.Identifier()
		if !ok {
			httperr.Unauthorized(c, "Not authenticated")
			return
		}
		if req.CustID != nil && *req.CustID != own {
			httperr.Forbidden(c, "Access denied")
			return
		}
		custID = own
	} else {
		if req.CustID == nil {
			httperr.Validation(c, []httperr.Detail{{
				Message: `"custId" is required`,
				Path:    "custId",
				Type:    "required",
			}})
			return
		}
		custID = *req.CustID
	}

	o := models.Order{
		CustID: custID,
		Total:  *req.Total,
	}
	if req.Status != nil {
		o.Status = *req.Status
	}
	if err := h.repo.Create(c.Request.Context(), &o); err != nil {
		storeError(c, h.log, entityOrder, err)
		return
	}

	record(c, h.audit, "order_created", "order", o.ID, gin.H{"custId": o.CustID})
	httpresp.Created(c, o)
}

func (h *OrderHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req UpdateOrderRequest
	if !bindJSON(c, &req) {
		return
	}
	patch := order.Patch{Status: req.Status, Total: req.Total}
	if patch.Empty() {
		httperr.Validation(c, validators.AtLeastOne())
		return
	}

	o, err := h.repo.Update(c.Request.Context(), id, patch)
	if err != nil {
		storeError(c, h.log, entityOrder, err)
		return
	}

	record(c, h.audit, "order_updated", "order", o.ID, nil)
	httpresp.OK(c, o)
}

func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		storeError(c, h.log, entityOrder, err)
		return
	}

	record(c, h.audit, "order_deleted", "order", id, nil)
	httpresp.NoContent(c)
}
