package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/luxurahair/luxura-inventory-api/internal/domain/catalog"
)

// ProductListFilter represents filter options for the product list
type ProductListFilter struct {
	Search     string `form:"search"`
	OnlyActive bool   `form:"only_active"`
	Page       int    `form:"page" binding:"omitempty,min=1"`
	PageSize   int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// CreateProductRequest represents the payload for manually creating a
// product. The Wix identity is optional: rows created without one carry a
// placeholder until a sync run claims the SKU.
type CreateProductRequest struct {
	SKU          string          `json:"sku" binding:"required"`
	Name         string          `json:"name" binding:"required"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	WixProductID string          `json:"wix_product_id"`
	WixVariantID string          `json:"wix_variant_id"`
}

// UpdateProductRequest represents a partial product update. Nil fields keep
// their current value.
type UpdateProductRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID            uuid.UUID              `json:"id"`
	WixProductID  string                 `json:"wix_product_id"`
	WixVariantID  string                 `json:"wix_variant_id"`
	SKU           string                 `json:"sku"`
	Name          string                 `json:"name"`
	Description   string                 `json:"description"`
	Handle        string                 `json:"handle"`
	Price         decimal.Decimal        `json:"price"`
	TrackQuantity bool                   `json:"track_quantity"`
	InStock       bool                   `json:"in_stock"`
	Active        bool                   `json:"active"`
	Options       catalog.ProductOptions `json:"options"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
	Version       int                    `json:"version"`
}

// ProductListResponse represents a list item for products
type ProductListResponse struct {
	ID        uuid.UUID       `json:"id"`
	SKU       string          `json:"sku"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	InStock   bool            `json:"in_stock"`
	Active    bool            `json:"active"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ToProductResponse converts a domain Product to ProductResponse. Options
// that fail to parse render as the zero value rather than failing the read.
func ToProductResponse(p *catalog.Product) ProductResponse {
	opts, _ := p.GetOptions()
	return ProductResponse{
		ID:            p.ID,
		WixProductID:  p.WixProductID,
		WixVariantID:  p.WixVariantID,
		SKU:           p.SKU,
		Name:          p.Name,
		Description:   p.Description,
		Handle:        p.Handle,
		Price:         p.Price,
		TrackQuantity: p.TrackQuantity,
		InStock:       p.InStock,
		Active:        p.Active,
		Options:       opts,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
		Version:       p.Version,
	}
}

// ToProductListResponse converts a domain Product to ProductListResponse
func ToProductListResponse(p *catalog.Product) ProductListResponse {
	return ProductListResponse{
		ID:        p.ID,
		SKU:       p.SKU,
		Name:      p.Name,
		Price:     p.Price,
		InStock:   p.InStock,
		Active:    p.Active,
		UpdatedAt: p.UpdatedAt,
	}
}

// ToProductListResponses converts a slice of domain Products
func ToProductListResponses(products []catalog.Product) []ProductListResponse {
	responses := make([]ProductListResponse, len(products))
	for i := range products {
		responses[i] = ToProductListResponse(&products[i])
	}
	return responses
}
