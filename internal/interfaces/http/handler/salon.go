package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	inventoryapp "github.com/luxurahair/luxura-inventory-api/internal/application/inventory"
	"github.com/luxurahair/luxura-inventory-api/internal/domain/inventory"
	"github.com/luxurahair/luxura-inventory-api/internal/interfaces/http/dto"
)

// SalonHandler handles salon-related API endpoints
type SalonHandler struct {
	BaseHandler
	salonService *inventoryapp.SalonService
}

// NewSalonHandler creates a new SalonHandler
func NewSalonHandler(salonService *inventoryapp.SalonService) *SalonHandler {
	return &SalonHandler{
		salonService: salonService,
	}
}

// Create registers a new salon
func (h *SalonHandler) Create(c *gin.Context) {
	var req inventoryapp.CreateSalonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	salon, err := h.salonService.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, inventory.ErrInvalidSalonName) {
			h.ErrorWithCode(c, dto.ErrCodeValidation, err.Error())
			return
		}
		h.HandleError(c, err)
		return
	}

	h.Created(c, salon)
}

// List returns all salons
func (h *SalonHandler) List(c *gin.Context) {
	salons, err := h.salonService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, salons)
}

// GetByID returns a single salon
func (h *SalonHandler) GetByID(c *gin.Context) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "Invalid salon ID format")
		return
	}
	salonID := uuid.MustParse(req.ID)

	salon, err := h.salonService.GetByID(c.Request.Context(), salonID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, salon)
}

// Update applies a partial update to a salon
func (h *SalonHandler) Update(c *gin.Context) {
	var idReq dto.IDRequest
	if err := c.ShouldBindUri(&idReq); err != nil {
		h.BadRequest(c, "Invalid salon ID format")
		return
	}
	salonID := uuid.MustParse(idReq.ID)

	var req inventoryapp.UpdateSalonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	salon, err := h.salonService.Update(c.Request.Context(), salonID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, salon)
}

// Delete removes a salon
func (h *SalonHandler) Delete(c *gin.Context) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "Invalid salon ID format")
		return
	}
	salonID := uuid.MustParse(req.ID)

	if err := h.salonService.Delete(c.Request.Context(), salonID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
