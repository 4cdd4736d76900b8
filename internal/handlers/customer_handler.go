package handlers

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/storefront-api/internal/audit"
	"github.com/BruksfildServices01/storefront-api/internal/auth"
	"github.com/BruksfildServices01/storefront-api/internal/domain/customer"
	"github.com/BruksfildServices01/storefront-api/internal/domain/order"
	"github.com/BruksfildServices01/storefront-api/internal/domain/principal"
	"github.com/BruksfildServices01/storefront-api/internal/httperr"
	"github.com/BruksfildServices01/storefront-api/internal/httpresp"
	"github.com/BruksfildServices01/storefront-api/internal/models"
	"github.com/BruksfildServices01/storefront-api/internal/validators"
)

const entityCustomer = "Customer"

type CustomerHandler struct {
	repo   customer.Repository
	orders order.Repository
	hasher *auth.PasswordHasher
	audit  audit.Recorder
	log    *slog.Logger
}

func NewCustomerHandler(
	repo customer.Repository,
	orders order.Repository,
	hasher *auth.PasswordHasher,
	rec audit.Recorder,
	log *slog.Logger,
) *CustomerHandler {
	return &CustomerHandler{
		repo:   repo,
		orders: orders,
		hasher: hasher,
		audit:  rec,
		log:    log,
	}
}

// --------- Requests ---------

type UpdateCustomerRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=2,max=60"`
	Email    *string `json:"email" binding:"omitempty,email,max=254"`
	Password *string `json:"password" binding:"omitempty,strongpassword,maxbytes=72"`
	Address  *string `json:"address" binding:"omitempty,max=255"`
	Phone    *string `json:"phone" binding:"omitempty,max=30"`
}

// --------- Handlers ---------

func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.repo.List(c.Request.Context())
	if err != nil {
		internalError(c, h.log, err)
		return
	}
	httpresp.List(c, customers)
}

func (h *CustomerHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	cust, err := h.repo.Get(c.Request.Context(), id)
	if err != nil {
		storeError(c, h.log, entityCustomer, err)
		return
	}
	httpresp.OK(c, cust)
}

// Create takes the same body as customer registration but issues no token.
func (h *CustomerHandler) Create(c *gin.Context) {
	var req RegisterCustomerRequest
	if !bindJSON(c, &req) {
		return
	}

	hash, err := h.hasher.Hash(c.Request.Context(), req.Password)
	if err != nil {
		internalError(c, h.log, err)
		return
	}

	cust := models.Customer{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Address:      req.Address,
		Phone:        req.Phone,
		Role:         string(principal.RoleCustomer),
	}
	if err := h.repo.Create(c.Request.Context(), &cust); err != nil {
		storeError(c, h.log, entityCustomer, err)
		return
	}

	record(c, h.audit, "customer_created", "customer", cust.ID, nil)
	httpresp.Created(c, cust)
}

func (h *CustomerHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req UpdateCustomerRequest
	if !bindJSON(c, &req) {
		return
	}

	patch := customer.Patch{
		Name:    req.Name,
		Email:   req.Email,
		Address: req.Address,
		Phone:   req.Phone,
	}
	if patch.Empty() && req.Password == nil {
		httperr.Validation(c, validators.AtLeastOne())
		return
	}
	if req.Password != nil {
		hash, err := h.hasher.Hash(c.Request.Context(), *req.Password)
		if err != nil {
			internalError(c, h.log, err)
			return
		}
		patch.PasswordHash = &hash
	}

	cust, err := h.repo.Update(c.Request.Context(), id, patch)
	if err != nil {
		storeError(c, h.log, entityCustomer, err)
		return
	}

	record(c, h.audit, "customer_updated", "customer", cust.ID, gin.H{
		"passwordChanged": req.Password != nil,
	})
	httpresp.OK(c, cust)
}

func (h *CustomerHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		storeError(c, h.log, entityCustomer, err)
		return
	}

	record(c, h.audit, "customer_deleted", "customer", id, nil)
	httpresp.NoContent(c)
}

// ListOrders serves /customers/:id/orders.
func (h *CustomerHandler) ListOrders(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	orders, err := h.orders.ListByCustomer(c.Request.Context(), id)
	if err != nil {
		internalError(c, h.log, err)
		return
	}
	httpresp.List(c, orders)
}
