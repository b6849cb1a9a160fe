package wixsync

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	syncdomain "github.com/luxurahair/luxura-inventory-api/internal/domain/sync"
)

// ProductDraft is the canonical, platform-independent form of one variant,
// ready for identity resolution. Categories are attached by the orchestrator
// after normalization, since they derive from the parent's collection
// references and the separately fetched collection map.
type ProductDraft struct {
	WixProductID string
	WixVariantID string
	SKU          string
	Name         string
	Description  string
	Handle       string
	Price        decimal.Decimal
	Choices      map[string]string
	Categories   []string

	// TrackQuantity and Quantity mirror the variant endpoint's stock
	// signal. Advisory only: the reconciler joins against the dedicated
	// inventory listing instead.
	TrackQuantity bool
	Quantity      int64
}

// skuExtractor is one lookup into the heterogeneous variant payload. The
// extractors run in order; the first non-empty result wins.
type skuExtractor struct {
	name    string
	extract func(v syncdomain.CatalogVariant) string
}

// skuExtractors is the ordered SKU resolution chain. Kept as data rather
// than nested conditionals so each lookup is independently testable.
var skuExtractors = []skuExtractor{
	{"sku", func(v syncdomain.CatalogVariant) string { return rawString(v.Raw, "sku") }},
	{"variant.sku", func(v syncdomain.CatalogVariant) string { return rawString(v.Raw, "variant", "sku") }},
	{"sku.value", func(v syncdomain.CatalogVariant) string { return rawString(v.Raw, "sku", "value") }},
	{"stockKeepingUnit", func(v syncdomain.CatalogVariant) string { return rawString(v.Raw, "stockKeepingUnit") }},
	{"skuData.sku", func(v syncdomain.CatalogVariant) string { return rawString(v.Raw, "skuData", "sku") }},
	{"vendorSku", func(v syncdomain.CatalogVariant) string { return rawString(v.Raw, "vendorSku") }},
	{"itemNumber", func(v syncdomain.CatalogVariant) string { return rawString(v.Raw, "itemNumber") }},
}

// Normalizer converts (parent, variant) pairs into product drafts.
type Normalizer struct{}

// NewNormalizer creates a new Normalizer
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Normalize builds the draft for one variant. It returns nil when the pair
// carries no resolvable external identity; such variants cannot be tracked
// and are counted as skipped by the orchestrator.
func (n *Normalizer) Normalize(parent syncdomain.CatalogParent, variant syncdomain.CatalogVariant) *ProductDraft {
	if strings.TrimSpace(parent.ID) == "" || strings.TrimSpace(variant.ID) == "" {
		return nil
	}

	return &ProductDraft{
		WixProductID:  parent.ID,
		WixVariantID:  variant.ID,
		SKU:           n.ResolveSKU(parent, variant),
		Name:          displayName(parent.Name, variant.Choices),
		Description:   parent.Description,
		Handle:        parent.Handle,
		Price:         resolvePrice(variant.Price, parent.BasePrice),
		Choices:       variant.Choices,
		TrackQuantity: variant.TrackQuantity,
		Quantity:      variant.Quantity,
	}
}

// ResolveSKU runs the extractor chain and falls back to the synthetic
// "<parentID>:<variantID>" SKU. The fallback is deterministic: the same
// pair always yields the same SKU across runs, which is what keeps
// SKU-less variants reconcilable.
func (n *Normalizer) ResolveSKU(parent syncdomain.CatalogParent, variant syncdomain.CatalogVariant) string {
	for _, ex := range skuExtractors {
		if sku := strings.TrimSpace(ex.extract(variant)); sku != "" {
			return sku
		}
	}
	return fmt.Sprintf("%s:%s", parent.ID, variant.ID)
}

// displayName suffixes the parent name with the variant's choice values,
// sorted by option name for a stable rendering.
func displayName(parentName string, choices map[string]string) string {
	if len(choices) == 0 {
		return parentName
	}

	keys := make([]string, 0, len(choices))
	for k := range choices {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	values := make([]string, 0, len(keys))
	for _, k := range keys {
		if v := strings.TrimSpace(choices[k]); v != "" {
			values = append(values, v)
		}
	}
	if len(values) == 0 {
		return parentName
	}
	return parentName + " - " + strings.Join(values, " ")
}

// resolvePrice prefers the variant override over the parent base price and
// never fails: unparseable or negative values coerce to zero.
func resolvePrice(override string, base decimal.Decimal) decimal.Decimal {
	if strings.TrimSpace(override) != "" {
		if d, err := decimal.NewFromString(strings.TrimSpace(override)); err == nil && !d.IsNegative() {
			return d
		}
		return decimal.Zero
	}
	if base.IsNegative() {
		return decimal.Zero
	}
	return base
}

// rawString walks a nested path of maps and stringifies the leaf. Numbers
// are rendered without an exponent so numeric item codes survive intact.
func rawString(raw map[string]any, path ...string) string {
	var current any = raw
	for _, key := range path {
		m, ok := current.(map[string]any)
		if !ok {
			return ""
		}
		current, ok = m[key]
		if !ok {
			return ""
		}
	}

	switch v := current.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	default:
		return ""
	}
}
