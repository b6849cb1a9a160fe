package inventory

import (
	"context"
	"errors"

	"github.com/luxurahair/luxura-inventory-api/internal/domain/catalog"
	"github.com/luxurahair/luxura-inventory-api/internal/domain/inventory"
	"github.com/luxurahair/luxura-inventory-api/internal/domain/shared"
)

// InventoryService handles stock listings and manual movements. Synced
// quantities come from the sync engine; movements cover the in-salon flows
// (deliveries, sales over the counter, corrections after a physical count).
type InventoryService struct {
	itemRepo    inventory.InventoryItemRepository
	salonRepo   inventory.SalonRepository
	productRepo catalog.ProductRepository
}

// NewInventoryService creates a new InventoryService
func NewInventoryService(
	itemRepo inventory.InventoryItemRepository,
	salonRepo inventory.SalonRepository,
	productRepo catalog.ProductRepository,
) *InventoryService {
	return &InventoryService{
		itemRepo:    itemRepo,
		salonRepo:   salonRepo,
		productRepo: productRepo,
	}
}

// List retrieves inventory rows matching the filter
func (s *InventoryService) List(ctx context.Context, filter InventoryListFilter) ([]InventoryItemResponse, error) {
	items, err := s.itemRepo.FindAll(ctx, inventory.InventoryFilter{
		SalonID:   filter.SalonID,
		ProductID: filter.ProductID,
	})
	if err != nil {
		return nil, err
	}
	return ToInventoryItemResponses(items), nil
}

// ApplyMovement applies a manual stock movement. The row is created lazily
// on the first movement touching a (salon, product) pair, the same way the
// sync engine creates rows on first reconciliation.
func (s *InventoryService) ApplyMovement(ctx context.Context, req MovementRequest) (*InventoryItemResponse, error) {
	if _, err := s.salonRepo.FindByID(ctx, req.SalonID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("INVALID_SALON", "Salon not found")
		}
		return nil, err
	}
	if _, err := s.productRepo.FindByID(ctx, req.ProductID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("INVALID_PRODUCT", "Product not found")
		}
		return nil, err
	}

	item, err := s.itemRepo.FindBySalonAndProduct(ctx, req.SalonID, req.ProductID)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		item, err = inventory.NewInventoryItem(req.SalonID, req.ProductID)
		if err != nil {
			return nil, err
		}
	}

	if err := item.ApplyMovement(inventory.MovementType(req.Type), req.Quantity); err != nil {
		return nil, err
	}

	if err := s.itemRepo.Save(ctx, item); err != nil {
		return nil, err
	}

	response := ToInventoryItemResponse(item)
	return &response, nil
}
