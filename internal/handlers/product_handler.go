package handlers

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/storefront-api/internal/audit"
	"github.com/BruksfildServices01/storefront-api/internal/domain/product"
	"github.com/BruksfildServices01/storefront-api/internal/domain/sorting"
	"github.com/BruksfildServices01/storefront-api/internal/httperr"
	"github.com/BruksfildServices01/storefront-api/internal/httpresp"
	"github.com/BruksfildServices01/storefront-api/internal/models"
	"github.com/BruksfildServices01/storefront-api/internal/validators"
)

const entityProduct = "Product"

type ProductHandler struct {
	repo  product.Repository
	audit audit.Recorder
	log   *slog.Logger
}

func NewProductHandler(repo product.Repository, rec audit.Recorder, log *slog.Logger) *ProductHandler {
	return &ProductHandler{repo: repo, audit: rec, log: log}
}

// --------- Requests ---------

type CreateProductRequest struct {
	Name  string   `json:"name" binding:"required,min=3,max=30,alphaspace"`
	Price *float64 `json:"price" binding:"required,gt=0,decimal2"`
	Stock *int     `json:"stock" binding:"required,gte=0"`
}

type UpdateProductRequest struct {
	Name  *string  `json:"name" binding:"omitempty,min=3,max=30,alphaspace"`
	Price *float64 `json:"price" binding:"omitempty,gt=0,decimal2"`
	Stock *int     `json:"stock" binding:"omitempty,gte=0"`
}

func (r UpdateProductRequest) patch() product.Patch {
	return product.Patch{Name: r.Name, Price: r.Price, Stock: r.Stock}
}

// --------- Handlers ---------

func (h *ProductHandler) List(c *gin.Context) {
	h.list(c, nil)
}

// SortBy serves /products/o/:field/:dir.
func (h *ProductHandler) SortBy(c *gin.Context) {
	order, ok := sortByField(c, product.SortFields)
	if !ok {
		return
	}
	h.list(c, order)
}

// SortByTwo serves /products/sort/two/:first/:second.
func (h *ProductHandler) SortByTwo(c *gin.Context) {
	order, ok := sortByTwo(c, product.SortFields)
	if !ok {
		return
	}
	h.list(c, order)
}

func (h *ProductHandler) list(c *gin.Context, order []sorting.Order) {
	products, err := h.repo.List(c.Request.Context(), order...)
	if err != nil {
		internalError(c, h.log, err)
		return
	}
	httpresp.List(c, products)
}

func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	p, err := h.repo.Get(c.Request.Context(), id)
	if err != nil {
		storeError(c, h.log, entityProduct, err)
		return
	}
	httpresp.OK(c, p)
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req CreateProductRequest
	if !bindJSON(c, &req) {
		return
	}

	p := models.Product{
		Name:  req.Name,
		Price: *req.Price,
		Stock: *req.Stock,
	}
	if err := h.repo.Create(c.Request.Context(), &p); err != nil {
		storeError(c, h.log, entityProduct, err)
		return
	}

	record(c, h.audit, "product_created", "product", p.ID, nil)
	httpresp.Created(c, p)
}

func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req UpdateProductRequest
	if !bindJSON(c, &req) {
		return
	}
	patch := req.patch()
	if patch.Empty() {
		httperr.Validation(c, validators.AtLeastOne())
		return
	}

	p, err := h.repo.Update(c.Request.Context(), id, patch)
	if err != nil {
		storeError(c, h.log, entityProduct, err)
		return
	}

	record(c, h.audit, "product_updated", "product", p.ID, nil)
	httpresp.OK(c, p)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		storeError(c, h.log, entityProduct, err)
		return
	}

	record(c, h.audit, "product_deleted", "product", id, nil)
	httpresp.NoContent(c)
}
