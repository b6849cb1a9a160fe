package wixsync

import (
	"context"
	"errors"

	"github.com/luxurahair/luxura-inventory-api/internal/domain/catalog"
	"github.com/luxurahair/luxura-inventory-api/internal/domain/inventory"
	"github.com/luxurahair/luxura-inventory-api/internal/domain/shared"
	syncdomain "github.com/luxurahair/luxura-inventory-api/internal/domain/sync"
)

// Reconciler writes upstream stock levels into the salon inventory. Only the
// dedicated inventory listing drives writes; the stock signal embedded in
// variant payloads is advisory and never reaches the inventory table. Rows
// that get no write keep whatever manual count the salon maintains.
type Reconciler struct{}

// NewReconciler creates a reconciler.
func NewReconciler() *Reconciler {
	return &Reconciler{}
}

// Reconcile applies one authoritative inventory record to the product's
// stock at the given salon, creating the inventory row on first sight. It
// reports whether a write happened. A nil record means the inventory listing
// carried no entry for the variant, which skips the write, as does a record
// with tracking disabled.
func (rc *Reconciler) Reconcile(
	ctx context.Context,
	inventoryRepo inventory.InventoryItemRepository,
	salon *inventory.Salon,
	product *catalog.Product,
	rec *syncdomain.InventoryRecord,
) (bool, error) {
	if rec == nil || !rec.TrackQuantity {
		return false, nil
	}

	item, err := inventoryRepo.FindBySalonAndProduct(ctx, salon.GetID(), product.GetID())
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			return false, err
		}
		item, err = inventory.NewInventoryItem(salon.GetID(), product.GetID())
		if err != nil {
			return false, err
		}
	}

	item.SetQuantity(int(rec.Quantity))
	if err := inventoryRepo.Save(ctx, item); err != nil {
		return false, err
	}
	return true, nil
}
