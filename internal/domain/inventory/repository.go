package inventory

import (
	"context"

	"github.com/google/uuid"
)

// InventoryFilter defines filter criteria for inventory listings
type InventoryFilter struct {
	// SalonID restricts to one salon (optional)
	SalonID *uuid.UUID
	// ProductID restricts to one product (optional)
	ProductID *uuid.UUID
}

// InventoryItemRepository defines the persistence port for inventory rows.
type InventoryItemRepository interface {
	// FindByID finds an inventory row by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*InventoryItem, error)

	// FindBySalonAndProduct finds the row for a (salon, product) pair
	FindBySalonAndProduct(ctx context.Context, salonID, productID uuid.UUID) (*InventoryItem, error)

	// FindAll lists inventory rows matching the filter
	FindAll(ctx context.Context, filter InventoryFilter) ([]InventoryItem, error)

	// ReassignProduct repoints every inventory row from one product to
	// another. Used by the sync engine when two product rows are merged:
	// stock continuity is preserved by migration, not deletion.
	ReassignProduct(ctx context.Context, fromProductID, toProductID uuid.UUID) error

	// Save creates or updates an inventory row
	Save(ctx context.Context, item *InventoryItem) error
}
