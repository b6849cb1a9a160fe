package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	catalogapp "github.com/luxurahair/luxura-inventory-api/internal/application/catalog"
	"github.com/luxurahair/luxura-inventory-api/internal/domain/catalog"
	"github.com/luxurahair/luxura-inventory-api/internal/interfaces/http/dto"
)

// ProductHandler handles product-related API endpoints. The sync engine owns
// the bulk of catalog writes; the API additionally supports manual creation,
// field updates, deactivation and deletion.
type ProductHandler struct {
	BaseHandler
	productService *catalogapp.ProductService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService *catalogapp.ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

// Create registers a product manually
func (h *ProductHandler) Create(c *gin.Context) {
	var req catalogapp.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	product, err := h.productService.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, catalog.ErrInvalidSKU) ||
			errors.Is(err, catalog.ErrInvalidProductName) ||
			errors.Is(err, catalog.ErrInvalidPrice) {
			h.ErrorWithCode(c, dto.ErrCodeValidation, err.Error())
			return
		}
		h.HandleError(c, err)
		return
	}

	h.Created(c, product)
}

// List returns a page of products, optionally filtered by search keyword
// and active state
func (h *ProductHandler) List(c *gin.Context) {
	var filter catalogapp.ProductListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	products, total, err := h.productService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	page := filter.Page
	if page <= 0 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize <= 0 {
		pageSize = 20
	}
	h.SuccessWithMeta(c, products, total, page, pageSize)
}

// GetByID returns a single product by its internal ID
func (h *ProductHandler) GetByID(c *gin.Context) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "Invalid product ID format")
		return
	}
	productID := uuid.MustParse(req.ID)

	product, err := h.productService.GetByID(c.Request.Context(), productID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, product)
}

// GetBySKU returns a single product by its business SKU
func (h *ProductHandler) GetBySKU(c *gin.Context) {
	sku := c.Param("sku")
	if sku == "" {
		h.BadRequest(c, "SKU is required")
		return
	}

	product, err := h.productService.GetBySKU(c.Request.Context(), sku)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, product)
}

// Update applies a partial update to a product
func (h *ProductHandler) Update(c *gin.Context) {
	var idReq dto.IDRequest
	if err := c.ShouldBindUri(&idReq); err != nil {
		h.BadRequest(c, "Invalid product ID format")
		return
	}
	productID := uuid.MustParse(idReq.ID)

	var req catalogapp.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	product, err := h.productService.Update(c.Request.Context(), productID, req)
	if err != nil {
		if errors.Is(err, catalog.ErrInvalidProductName) || errors.Is(err, catalog.ErrInvalidPrice) {
			h.ErrorWithCode(c, dto.ErrCodeValidation, err.Error())
			return
		}
		h.HandleError(c, err)
		return
	}

	h.Success(c, product)
}

// Delete removes a product permanently
func (h *ProductHandler) Delete(c *gin.Context) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "Invalid product ID format")
		return
	}
	productID := uuid.MustParse(req.ID)

	if err := h.productService.Delete(c.Request.Context(), productID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// Deactivate marks a product inactive. The next sync run reactivates it
// if the platform still lists it.
func (h *ProductHandler) Deactivate(c *gin.Context) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "Invalid product ID format")
		return
	}
	productID := uuid.MustParse(req.ID)

	product, err := h.productService.Deactivate(c.Request.Context(), productID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, product)
}
