package catalog

import (
	"context"

	"github.com/google/uuid"
)

// ProductFilter defines filter criteria for product listings
type ProductFilter struct {
	// OnlyActive restricts the listing to active products
	OnlyActive bool
	// SearchKeyword searches in product names and SKUs (optional)
	SearchKeyword string
	// Page number (1-indexed, 0 = no paging)
	Page int
	// Page size
	PageSize int
}

// ProductRepository defines the persistence port for products.
// Implementations live in the infrastructure layer.
type ProductRepository interface {
	// FindByID finds a product by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// FindBySKU finds the current owner of a SKU. There is at most one,
	// by the uniqueness invariant.
	FindBySKU(ctx context.Context, sku string) (*Product, error)

	// FindByWixIdentity finds a product by its (parent, variant) external
	// identity.
	FindByWixIdentity(ctx context.Context, wixProductID, wixVariantID string) (*Product, error)

	// FindAll finds all products matching the filter
	FindAll(ctx context.Context, filter ProductFilter) ([]Product, error)

	// Count counts products matching the filter
	Count(ctx context.Context, filter ProductFilter) (int64, error)

	// Save creates or updates a product
	Save(ctx context.Context, product *Product) error

	// Delete removes a product
	Delete(ctx context.Context, id uuid.UUID) error
}
