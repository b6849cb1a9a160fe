package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/luxurahair/luxura-inventory-api/internal/domain/inventory"
	"github.com/luxurahair/luxura-inventory-api/internal/domain/shared"
)

// GormInventoryItemRepository implements InventoryItemRepository using GORM
type GormInventoryItemRepository struct {
	db *gorm.DB
}

// NewGormInventoryItemRepository creates a new GormInventoryItemRepository
func NewGormInventoryItemRepository(db *gorm.DB) *GormInventoryItemRepository {
	return &GormInventoryItemRepository{db: db}
}

// FindByID finds an inventory row by its ID
func (r *GormInventoryItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.InventoryItem, error) {
	var item inventory.InventoryItem
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// FindBySalonAndProduct finds the row for a (salon, product) pair
func (r *GormInventoryItemRepository) FindBySalonAndProduct(ctx context.Context, salonID, productID uuid.UUID) (*inventory.InventoryItem, error) {
	var item inventory.InventoryItem
	if err := r.db.WithContext(ctx).
		First(&item, "salon_id = ? AND product_id = ?", salonID, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// FindAll lists inventory rows matching the filter
func (r *GormInventoryItemRepository) FindAll(ctx context.Context, filter inventory.InventoryFilter) ([]inventory.InventoryItem, error) {
	var items []inventory.InventoryItem
	query := r.db.WithContext(ctx).Model(&inventory.InventoryItem{})

	if filter.SalonID != nil {
		query = query.Where("salon_id = ?", *filter.SalonID)
	}
	if filter.ProductID != nil {
		query = query.Where("product_id = ?", *filter.ProductID)
	}

	if err := query.Order("created_at ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ReassignProduct repoints every inventory row from one product to another.
// When both products already hold a row at the same salon, the quantities
// fold into the target's row; a plain UPDATE would trip the unique
// (salon, product) index.
func (r *GormInventoryItemRepository) ReassignProduct(ctx context.Context, fromProductID, toProductID uuid.UUID) error {
	var moving []inventory.InventoryItem
	if err := r.db.WithContext(ctx).
		Find(&moving, "product_id = ?", fromProductID).Error; err != nil {
		return err
	}

	for i := range moving {
		item := &moving[i]

		var existing inventory.InventoryItem
		err := r.db.WithContext(ctx).
			First(&existing, "salon_id = ? AND product_id = ?", item.SalonID, toProductID).Error

		switch {
		case err == nil:
			existing.SetQuantity(existing.Quantity + item.Quantity)
			if err := r.db.WithContext(ctx).Save(&existing).Error; err != nil {
				return err
			}
			if err := r.db.WithContext(ctx).
				Delete(&inventory.InventoryItem{}, "id = ?", item.GetID()).Error; err != nil {
				return err
			}

		case errors.Is(err, gorm.ErrRecordNotFound):
			item.ProductID = toProductID
			if err := r.db.WithContext(ctx).Save(item).Error; err != nil {
				return err
			}

		default:
			return err
		}
	}
	return nil
}

// Save creates or updates an inventory row
func (r *GormInventoryItemRepository) Save(ctx context.Context, item *inventory.InventoryItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// Ensure GormInventoryItemRepository implements InventoryItemRepository
var _ inventory.InventoryItemRepository = (*GormInventoryItemRepository)(nil)
