package wix

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	syncdomain "github.com/luxurahair/luxura-inventory-api/internal/domain/sync"
)

// ---------------------------------------------------------------------------
// Request bodies
// ---------------------------------------------------------------------------

// catalogQuery is the request body for the POST .../query endpoints. The
// catalog endpoints page with a top-level cursorPaging object; the inventory
// endpoint pages with a limit/offset window inside query.paging.
type catalogQuery struct {
	Query        queryClause   `json:"query"`
	CursorPaging *cursorPaging `json:"cursorPaging,omitempty"`
}

type queryClause struct {
	Paging pageWindow `json:"paging"`
}

type pageWindow struct {
	Limit  int  `json:"limit"`
	Offset *int `json:"offset,omitempty"`
}

type cursorPaging struct {
	Cursor string `json:"cursor"`
}

// newCursorQuery builds a cursor-paged query body. An empty cursor requests
// the first page.
func newCursorQuery(limit int, cursor string) catalogQuery {
	q := catalogQuery{Query: queryClause{Paging: pageWindow{Limit: limit}}}
	if cursor != "" {
		q.CursorPaging = &cursorPaging{Cursor: cursor}
	}
	return q
}

// newOffsetQuery builds an offset-paged query body.
func newOffsetQuery(limit, offset int) catalogQuery {
	return catalogQuery{Query: queryClause{Paging: pageWindow{Limit: limit, Offset: &offset}}}
}

// ---------------------------------------------------------------------------
// Products
// ---------------------------------------------------------------------------

// cursorMeta carries the cursor some responses nest under "cursorPaging"
// instead of the top-level "nextCursor".
type cursorMeta struct {
	NextCursor string `json:"nextCursor"`
}

// productsQueryResponse is the envelope of the stores-reader products query.
// Wix has shipped both "products" and "items" as the listing key, so both
// are decoded and the populated one wins.
type productsQueryResponse struct {
	Products     []wixProduct `json:"products"`
	Items        []wixProduct `json:"items"`
	NextCursor   string       `json:"nextCursor"`
	CursorPaging *cursorMeta  `json:"cursorPaging"`
}

func (r *productsQueryResponse) listing() []wixProduct {
	if len(r.Products) > 0 {
		return r.Products
	}
	return r.Items
}

func (r *productsQueryResponse) nextCursor() string {
	if r.NextCursor != "" {
		return r.NextCursor
	}
	if r.CursorPaging != nil {
		return r.CursorPaging.NextCursor
	}
	return ""
}

type wixProduct struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Description   string        `json:"description"`
	Slug          string        `json:"slug"`
	PriceData     *wixPriceData `json:"priceData"`
	CollectionIDs []string      `json:"collectionIds"`
}

type wixPriceData struct {
	Price decimal.Decimal `json:"price"`
}

func (p wixProduct) toCatalogParent() syncdomain.CatalogParent {
	parent := syncdomain.CatalogParent{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Handle:        p.Slug,
		CollectionIDs: p.CollectionIDs,
	}
	if p.PriceData != nil {
		parent.BasePrice = p.PriceData.Price
	}
	return parent
}

// ---------------------------------------------------------------------------
// Collections
// ---------------------------------------------------------------------------

type collectionsQueryResponse struct {
	Collections  []wixCollection `json:"collections"`
	Items        []wixCollection `json:"items"`
	NextCursor   string          `json:"nextCursor"`
	CursorPaging *cursorMeta     `json:"cursorPaging"`
}

func (r *collectionsQueryResponse) listing() []wixCollection {
	if len(r.Collections) > 0 {
		return r.Collections
	}
	return r.Items
}

func (r *collectionsQueryResponse) nextCursor() string {
	if r.NextCursor != "" {
		return r.NextCursor
	}
	if r.CursorPaging != nil {
		return r.CursorPaging.NextCursor
	}
	return ""
}

type wixCollection struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ---------------------------------------------------------------------------
// Variants
// ---------------------------------------------------------------------------

// variantsQueryResponse keeps the variant payloads raw: the typed fields are
// decoded per entry, and the full object is also retained as a map so the
// normalizer's SKU extractor chain can inspect it.
type variantsQueryResponse struct {
	Variants []json.RawMessage `json:"variants"`
	Items    []json.RawMessage `json:"items"`
}

func (r *variantsQueryResponse) listing() []json.RawMessage {
	if len(r.Variants) > 0 {
		return r.Variants
	}
	return r.Items
}

type wixVariant struct {
	ID      string            `json:"id"`
	Choices map[string]string `json:"choices"`
	Variant *wixVariantData   `json:"variant"`
	Stock   *wixStock         `json:"stock"`
}

type wixVariantData struct {
	PriceData *wixVariantPrice `json:"priceData"`
	SKU       string           `json:"sku"`
}

type wixVariantPrice struct {
	Price *decimal.Decimal `json:"price"`
}

type wixStock struct {
	TrackQuantity bool  `json:"trackQuantity"`
	Quantity      int64 `json:"quantity"`
	InStock       bool  `json:"inStock"`
}

// ---------------------------------------------------------------------------
// Inventory
// ---------------------------------------------------------------------------

type inventoryQueryResponse struct {
	InventoryItems []wixInventoryItem `json:"inventoryItems"`
	TotalResults   int                `json:"totalResults"`
	Metadata       *inventoryMetadata `json:"metadata"`
}

type inventoryMetadata struct {
	Items  int `json:"items"`
	Offset int `json:"offset"`
}

// wixInventoryItem is one product's stock entry; per-variant levels nest
// under variants. Older payloads carry the product reference as externalId.
type wixInventoryItem struct {
	ID            string                `json:"id"`
	ProductID     string                `json:"productId"`
	ExternalID    string                `json:"externalId"`
	TrackQuantity bool                  `json:"trackQuantity"`
	Variants      []wixInventoryVariant `json:"variants"`
}

type wixInventoryVariant struct {
	VariantID string `json:"variantId"`
	InStock   bool   `json:"inStock"`
	Quantity  int64  `json:"quantity"`
	SKU       string `json:"sku"`
}

// toRecords expands the per-product entry into one record per variant.
// Entries with no resolvable product reference are dropped: they cannot be
// joined against the variant listing.
func (i wixInventoryItem) toRecords() []syncdomain.InventoryRecord {
	productID := i.ProductID
	if productID == "" {
		productID = i.ExternalID
	}
	if productID == "" {
		return nil
	}

	records := make([]syncdomain.InventoryRecord, 0, len(i.Variants))
	for _, v := range i.Variants {
		if v.VariantID == "" {
			continue
		}
		records = append(records, syncdomain.InventoryRecord{
			ProductID:     productID,
			VariantID:     v.VariantID,
			TrackQuantity: i.TrackQuantity,
			Quantity:      v.Quantity,
			VendorSKU:     v.SKU,
		})
	}
	return records
}
