package wixsync

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/luxurahair/luxura-inventory-api/internal/domain/catalog"
	"github.com/luxurahair/luxura-inventory-api/internal/domain/inventory"
	"github.com/luxurahair/luxura-inventory-api/internal/domain/shared"
)

// ResolutionOutcome describes what Resolve did with a draft.
type ResolutionOutcome string

const (
	OutcomeCreated ResolutionOutcome = "created"
	OutcomeUpdated ResolutionOutcome = "updated"
	OutcomeMerged  ResolutionOutcome = "merged"
)

// Resolver matches an incoming product draft against the local catalog and
// applies it. Identity is two-fold: the upstream (wixProductID, wixVariantID)
// pair and the SKU. When the upstream identity points at one local row while
// the SKU is owned by another, the SKU owner survives, inventory is
// repointed onto it, and the stale row is removed.
type Resolver struct {
	logger *zap.Logger
}

// NewResolver creates a resolver.
func NewResolver(logger *zap.Logger) *Resolver {
	return &Resolver{logger: logger}
}

// Resolve applies the draft to the catalog and returns the surviving product
// together with the outcome. It is idempotent: resolving the same draft twice
// leaves the catalog unchanged on the second pass.
func (r *Resolver) Resolve(
	ctx context.Context,
	products catalog.ProductRepository,
	inventoryRepo inventory.InventoryItemRepository,
	draft *ProductDraft,
) (*catalog.Product, ResolutionOutcome, error) {
	byIdentity, err := r.findByIdentity(ctx, products, draft)
	if err != nil {
		return nil, "", err
	}
	bySKU, err := r.findBySKU(ctx, products, draft)
	if err != nil {
		return nil, "", err
	}

	switch {
	case byIdentity == nil && bySKU == nil:
		return r.create(ctx, products, draft)

	case byIdentity != nil && (bySKU == nil || bySKU.GetID() == byIdentity.GetID()):
		return r.update(ctx, products, byIdentity, draft)

	case byIdentity == nil && bySKU != nil:
		// The upstream identity moved onto a row we already know by SKU.
		return r.update(ctx, products, bySKU, draft)

	default:
		// Identity drift: two distinct rows claim the same draft.
		return r.merge(ctx, products, inventoryRepo, byIdentity, bySKU, draft)
	}
}

func (r *Resolver) findByIdentity(ctx context.Context, products catalog.ProductRepository, draft *ProductDraft) (*catalog.Product, error) {
	p, err := products.FindByWixIdentity(ctx, draft.WixProductID, draft.WixVariantID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

func (r *Resolver) findBySKU(ctx context.Context, products catalog.ProductRepository, draft *ProductDraft) (*catalog.Product, error) {
	p, err := products.FindBySKU(ctx, draft.SKU)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

func (r *Resolver) create(ctx context.Context, products catalog.ProductRepository, draft *ProductDraft) (*catalog.Product, ResolutionOutcome, error) {
	product, err := catalog.NewProduct(draft.WixProductID, draft.WixVariantID, draft.SKU, draft.Name)
	if err != nil {
		return nil, "", err
	}
	if err := r.apply(product, draft); err != nil {
		return nil, "", err
	}
	if err := products.Save(ctx, product); err != nil {
		return nil, "", err
	}
	return product, OutcomeCreated, nil
}

func (r *Resolver) update(ctx context.Context, products catalog.ProductRepository, product *catalog.Product, draft *ProductDraft) (*catalog.Product, ResolutionOutcome, error) {
	if err := product.ReassignWixIdentity(draft.WixProductID, draft.WixVariantID); err != nil {
		return nil, "", err
	}
	product.SKU = draft.SKU
	if err := r.apply(product, draft); err != nil {
		return nil, "", err
	}
	if err := products.Save(ctx, product); err != nil {
		return nil, "", err
	}
	return product, OutcomeUpdated, nil
}

// merge resolves identity drift. The SKU owner survives; inventory rows held
// by the stale row are repointed onto the survivor before the stale row is
// deleted, so no stock is lost.
func (r *Resolver) merge(
	ctx context.Context,
	products catalog.ProductRepository,
	inventoryRepo inventory.InventoryItemRepository,
	stale *catalog.Product,
	survivor *catalog.Product,
	draft *ProductDraft,
) (*catalog.Product, ResolutionOutcome, error) {
	r.logger.Info("merging drifted catalog rows",
		zap.String("sku", draft.SKU),
		zap.String("survivor_id", survivor.GetID().String()),
		zap.String("stale_id", stale.GetID().String()),
	)

	if err := inventoryRepo.ReassignProduct(ctx, stale.GetID(), survivor.GetID()); err != nil {
		return nil, "", err
	}
	if err := products.Delete(ctx, stale.GetID()); err != nil {
		return nil, "", err
	}

	if err := survivor.ReassignWixIdentity(draft.WixProductID, draft.WixVariantID); err != nil {
		return nil, "", err
	}
	if err := r.apply(survivor, draft); err != nil {
		return nil, "", err
	}
	if err := products.Save(ctx, survivor); err != nil {
		return nil, "", err
	}
	return survivor, OutcomeMerged, nil
}

func (r *Resolver) apply(product *catalog.Product, draft *ProductDraft) error {
	product.Name = draft.Name
	product.Description = draft.Description
	product.Handle = draft.Handle
	product.Price = draft.Price
	product.TrackQuantity = draft.TrackQuantity
	product.InStock = draft.Quantity > 0 || !draft.TrackQuantity
	product.Active = true
	return product.SetOptions(catalog.ProductOptions{
		WixVariantID: draft.WixVariantID,
		Choices:      draft.Choices,
		Categories:   draft.Categories,
	})
}
