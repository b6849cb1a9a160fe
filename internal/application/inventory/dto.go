package inventory

import (
	"time"

	"github.com/google/uuid"

	"github.com/luxurahair/luxura-inventory-api/internal/domain/inventory"
)

// CreateSalonRequest represents a request to create a new salon
type CreateSalonRequest struct {
	Name    string `json:"name" binding:"required,min=1,max=200"`
	Code    string `json:"code" binding:"max=50"`
	Address string `json:"address" binding:"max=300"`
}

// UpdateSalonRequest represents a request to update a salon
type UpdateSalonRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1,max=200"`
	Address  *string `json:"address" binding:"omitempty,max=300"`
	IsActive *bool   `json:"is_active"`
}

// SalonResponse represents a salon in API responses
type SalonResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	Address   string    `json:"address"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// InventoryListFilter represents filter options for inventory listings
type InventoryListFilter struct {
	SalonID   *uuid.UUID `form:"salon_id"`
	ProductID *uuid.UUID `form:"product_id"`
}

// MovementRequest represents a manual stock movement
type MovementRequest struct {
	SalonID   uuid.UUID `json:"salon_id" binding:"required"`
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Type      string    `json:"type" binding:"required,oneof=IN OUT SALE ADJUST"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
}

// InventoryItemResponse represents one stock row in API responses
type InventoryItemResponse struct {
	ID        uuid.UUID `json:"id"`
	SalonID   uuid.UUID `json:"salon_id"`
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToSalonResponse converts a domain Salon to SalonResponse
func ToSalonResponse(s *inventory.Salon) SalonResponse {
	return SalonResponse{
		ID:        s.ID,
		Name:      s.Name,
		Code:      s.Code,
		Address:   s.Address,
		IsActive:  s.IsActive,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// ToSalonResponses converts a slice of domain Salons
func ToSalonResponses(salons []inventory.Salon) []SalonResponse {
	responses := make([]SalonResponse, len(salons))
	for i := range salons {
		responses[i] = ToSalonResponse(&salons[i])
	}
	return responses
}

// ToInventoryItemResponse converts a domain InventoryItem
func ToInventoryItemResponse(item *inventory.InventoryItem) InventoryItemResponse {
	return InventoryItemResponse{
		ID:        item.ID,
		SalonID:   item.SalonID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
		UpdatedAt: item.UpdatedAt,
	}
}

// ToInventoryItemResponses converts a slice of domain InventoryItems
func ToInventoryItemResponses(items []inventory.InventoryItem) []InventoryItemResponse {
	responses := make([]InventoryItemResponse, len(items))
	for i := range items {
		responses[i] = ToInventoryItemResponse(&items[i])
	}
	return responses
}
