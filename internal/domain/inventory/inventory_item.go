package inventory

import (
	"github.com/google/uuid"

	"github.com/luxurahair/luxura-inventory-api/internal/domain/shared"
)

// MovementType classifies a manual stock movement
type MovementType string

const (
	// MovementIn adds stock (delivery, restock)
	MovementIn MovementType = "IN"
	// MovementOut removes stock (transfer out, loss)
	MovementOut MovementType = "OUT"
	// MovementSale removes stock sold in the salon
	MovementSale MovementType = "SALE"
	// MovementAdjust sets the quantity to an absolute value
	MovementAdjust MovementType = "ADJUST"
)

// IsValid returns true if the movement type is valid
func (t MovementType) IsValid() bool {
	switch t {
	case MovementIn, MovementOut, MovementSale, MovementAdjust:
		return true
	default:
		return false
	}
}

// InventoryItem holds the stock quantity of one product at one salon.
// The composite identifier is SalonID + ProductID. Quantity never goes
// negative: outbound movements clamp at zero.
type InventoryItem struct {
	shared.BaseAggregateRoot
	SalonID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_inventory_salon_product,priority:1"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_inventory_salon_product,priority:2"`
	Quantity  int       `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (InventoryItem) TableName() string {
	return "inventory_items"
}

// NewInventoryItem creates a new inventory row with zero quantity
func NewInventoryItem(salonID, productID uuid.UUID) (*InventoryItem, error) {
	if salonID == uuid.Nil {
		return nil, ErrInvalidSalonID
	}
	if productID == uuid.Nil {
		return nil, ErrInvalidProductID
	}

	return &InventoryItem{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		SalonID:           salonID,
		ProductID:         productID,
		Quantity:          0,
	}, nil
}

// SetQuantity sets the absolute quantity, clamped at zero.
func (i *InventoryItem) SetQuantity(quantity int) {
	if quantity < 0 {
		quantity = 0
	}
	i.Quantity = quantity
	i.Touch()
	i.IncrementVersion()
}

// ApplyMovement applies a manual stock movement. Outbound movements clamp
// the quantity at zero rather than failing, matching the salon workflow
// where the physical count wins over the books.
func (i *InventoryItem) ApplyMovement(movement MovementType, qty int) error {
	if !movement.IsValid() {
		return ErrInvalidMovementType
	}
	if qty <= 0 {
		return ErrInvalidMovementQty
	}

	switch movement {
	case MovementIn:
		i.Quantity += qty
	case MovementOut, MovementSale:
		i.Quantity -= qty
		if i.Quantity < 0 {
			i.Quantity = 0
		}
	case MovementAdjust:
		i.Quantity = qty
	}

	i.Touch()
	i.IncrementVersion()
	return nil
}
