package sync

import (
	"context"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Transient catalog records
// ---------------------------------------------------------------------------

// CatalogParent is one external catalog entry before variant expansion.
// Transient: read each sync, never stored verbatim.
type CatalogParent struct {
	// ID is the external product identifier
	ID string
	// Name is the display name on the platform
	Name string
	// Description is the product description (may contain platform markup)
	Description string
	// Handle is the URL slug on the platform
	Handle string
	// BasePrice is the parent-level price, used when a variant carries no
	// price override
	BasePrice decimal.Decimal
	// CollectionIDs references the platform collections (categories) this
	// parent belongs to
	CollectionIDs []string
}

// CatalogVariant is one purchasable variation of a parent. The platform's
// variant payloads are heterogeneous, so alongside the typed fields the raw
// decoded object is carried for SKU probing by the normalizer.
type CatalogVariant struct {
	// ID is the external variant identifier
	ID string
	// Choices maps option names to chosen values, e.g. {"Length": "18\""}
	Choices map[string]string
	// Price is the variant-level price override; empty when the parent
	// price applies
	Price string
	// TrackQuantity and Quantity are the stock signal as reported by the
	// variant endpoint. Advisory only: the inventory endpoint is the
	// authoritative stock source.
	TrackQuantity bool
	Quantity      int64
	// Raw is the decoded variant payload, used by the SKU extractor chain
	Raw map[string]any
}

// InventoryRecord is the authoritative stock entry for one variant, fetched
// separately from the variant listing and joined by (parent, variant) key.
type InventoryRecord struct {
	// ProductID is the external parent identifier
	ProductID string
	// VariantID is the external variant identifier
	VariantID string
	// TrackQuantity reports whether the platform tracks stock for this
	// variant. When false the Quantity field carries no meaning.
	TrackQuantity bool
	// Quantity is the tracked stock level (may be negative at the source)
	Quantity int64
	// VendorSKU is the optional vendor-supplied SKU on the inventory record
	VendorSKU string
}

// Key returns the join key used against the normalized drafts.
func (r InventoryRecord) Key() string {
	return r.ProductID + ":" + r.VariantID
}

// ---------------------------------------------------------------------------
// CatalogSource port
// ---------------------------------------------------------------------------

// CatalogSource is the port to the external e-commerce catalog. It hides
// transport details (pagination cursors, page-size caps, auth headers)
// behind plain fetch calls; each call re-paginates from the start and
// drains the full listing. Concrete adapters live in the infrastructure
// layer.
type CatalogSource interface {
	// FetchParents lists catalog parents. pageSize is clamped to the
	// platform cap; maxPages bounds the pagination loop (0 = no bound).
	FetchParents(ctx context.Context, pageSize, maxPages int) ([]CatalogParent, error)

	// FetchVariants lists the variants of one parent.
	FetchVariants(ctx context.Context, parentID string) ([]CatalogVariant, error)

	// FetchInventory lists the inventory records for the whole catalog.
	FetchInventory(ctx context.Context, pageSize, maxPages int) ([]InventoryRecord, error)

	// FetchCategories maps collection IDs to display names.
	FetchCategories(ctx context.Context) (map[string]string, error)
}
