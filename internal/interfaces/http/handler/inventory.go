package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	inventoryapp "github.com/luxurahair/luxura-inventory-api/internal/application/inventory"
	"github.com/luxurahair/luxura-inventory-api/internal/domain/inventory"
	"github.com/luxurahair/luxura-inventory-api/internal/interfaces/http/dto"
)

// InventoryHandler handles stock-level API endpoints
type InventoryHandler struct {
	BaseHandler
	inventoryService *inventoryapp.InventoryService
}

// NewInventoryHandler creates a new InventoryHandler
func NewInventoryHandler(inventoryService *inventoryapp.InventoryService) *InventoryHandler {
	return &InventoryHandler{
		inventoryService: inventoryService,
	}
}

// List returns stock rows, optionally filtered by salon and product
func (h *InventoryHandler) List(c *gin.Context) {
	var filter inventoryapp.InventoryListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	items, err := h.inventoryService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, items)
}

// ApplyMovement records a manual stock movement against a salon. The row is
// created on the first movement for a salon and product pair.
func (h *InventoryHandler) ApplyMovement(c *gin.Context) {
	var req inventoryapp.MovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	item, err := h.inventoryService.ApplyMovement(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, inventory.ErrInvalidMovementType) || errors.Is(err, inventory.ErrInvalidMovementQty) {
			h.ErrorWithCode(c, dto.ErrCodeValidation, err.Error())
			return
		}
		h.HandleError(c, err)
		return
	}

	h.Success(c, item)
}
