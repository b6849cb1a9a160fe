package catalog

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/luxurahair/luxura-inventory-api/internal/domain/shared"
)

// Product represents one sellable item keyed by its business SKU.
// It is the aggregate root for catalog operations. One Wix product (the
// parent) usually expands into several Product rows, one per variant; the
// SKU is the reconciliation key and is unique across the whole catalog.
type Product struct {
	shared.BaseAggregateRoot
	// WixProductID is the external parent identifier. Not unique on its own:
	// many variants share one parent.
	WixProductID string `gorm:"type:varchar(64);not null;index;uniqueIndex:idx_products_wix_identity,priority:1"`
	// WixVariantID is the external variant identifier. Together with
	// WixProductID it forms the internally stable identity of this row.
	WixVariantID  string          `gorm:"type:varchar(64);not null;default:'';uniqueIndex:idx_products_wix_identity,priority:2"`
	SKU           string          `gorm:"type:varchar(120);not null;uniqueIndex"`
	Name          string          `gorm:"type:varchar(300);not null"`
	Price         decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Description   string          `gorm:"type:text"`
	Handle        string          `gorm:"type:varchar(200);index"`
	TrackQuantity bool            `gorm:"not null;default:false"`
	InStock       bool            `gorm:"not null;default:true"`
	Active        bool            `gorm:"not null;default:true"`
	// Options holds the variant choices and derived category labels as JSON.
	Options string `gorm:"type:jsonb"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// ProductOptions is the structured content of the Options column.
type ProductOptions struct {
	WixVariantID string            `json:"wixVariantId,omitempty"`
	Choices      map[string]string `json:"choices,omitempty"`
	Categories   []string          `json:"categories,omitempty"`
}

// NewProduct creates a new product identified by its Wix identity and SKU.
func NewProduct(wixProductID, wixVariantID, sku, name string) (*Product, error) {
	if strings.TrimSpace(wixProductID) == "" {
		return nil, ErrInvalidWixProductID
	}
	if strings.TrimSpace(sku) == "" {
		return nil, ErrInvalidSKU
	}
	if strings.TrimSpace(name) == "" {
		return nil, ErrInvalidProductName
	}

	return &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		WixProductID:      wixProductID,
		WixVariantID:      wixVariantID,
		SKU:               sku,
		Name:              name,
		Price:             decimal.Zero,
		InStock:           true,
		Active:            true,
		Options:           "{}",
	}, nil
}

// SetOptions serializes the options bag into the Options column.
func (p *Product) SetOptions(opts ProductOptions) error {
	raw, err := json.Marshal(opts)
	if err != nil {
		return err
	}
	p.Options = string(raw)
	return nil
}

// GetOptions deserializes the Options column. An empty column yields the
// zero value.
func (p *Product) GetOptions() (ProductOptions, error) {
	var opts ProductOptions
	if p.Options == "" {
		return opts, nil
	}
	err := json.Unmarshal([]byte(p.Options), &opts)
	return opts, err
}

// Update applies the basic catalog fields in place.
func (p *Product) Update(name, description string, price decimal.Decimal) error {
	if strings.TrimSpace(name) == "" {
		return ErrInvalidProductName
	}
	if price.IsNegative() {
		return ErrInvalidPrice
	}

	p.Name = name
	p.Description = description
	p.Price = price
	p.Touch()
	p.IncrementVersion()
	return nil
}

// ReassignWixIdentity points this row at a different external identity.
// Used when a SKU survives a platform-side reshape of its variant record.
func (p *Product) ReassignWixIdentity(wixProductID, wixVariantID string) error {
	if strings.TrimSpace(wixProductID) == "" {
		return ErrInvalidWixProductID
	}
	p.WixProductID = wixProductID
	p.WixVariantID = wixVariantID
	p.Touch()
	p.IncrementVersion()
	return nil
}

// Deactivate marks the product as inactive without deleting it.
func (p *Product) Deactivate() {
	p.Active = false
	p.Touch()
	p.IncrementVersion()
}
