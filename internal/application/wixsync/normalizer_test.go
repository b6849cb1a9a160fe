package wixsync

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	syncdomain "github.com/luxurahair/luxura-inventory-api/internal/domain/sync"
)

func TestNormalizer_ResolveSKU_ExtractorChain(t *testing.T) {
	n := NewNormalizer()
	parent := syncdomain.CatalogParent{ID: "prod-1"}

	tests := []struct {
		name     string
		raw      map[string]any
		expected string
	}{
		{
			name:     "direct sku field",
			raw:      map[string]any{"sku": "HAIR-18-BLONDE"},
			expected: "HAIR-18-BLONDE",
		},
		{
			name:     "nested variant sku",
			raw:      map[string]any{"variant": map[string]any{"sku": "NESTED-01"}},
			expected: "NESTED-01",
		},
		{
			name:     "sku object with value",
			raw:      map[string]any{"sku": map[string]any{"value": "OBJ-01"}},
			expected: "OBJ-01",
		},
		{
			name:     "stockKeepingUnit spelling",
			raw:      map[string]any{"stockKeepingUnit": "SKU-FULL"},
			expected: "SKU-FULL",
		},
		{
			name:     "skuData wrapper",
			raw:      map[string]any{"skuData": map[string]any{"sku": "WRAPPED-01"}},
			expected: "WRAPPED-01",
		},
		{
			name:     "vendorSku fallback",
			raw:      map[string]any{"vendorSku": "VENDOR-01"},
			expected: "VENDOR-01",
		},
		{
			name:     "numeric itemNumber",
			raw:      map[string]any{"itemNumber": float64(400123)},
			expected: "400123",
		},
		{
			name:     "whitespace-only sku falls through to next extractor",
			raw:      map[string]any{"sku": "   ", "vendorSku": "FALLBACK-01"},
			expected: "FALLBACK-01",
		},
		{
			name: "direct sku wins over later extractors",
			raw: map[string]any{
				"sku":       "DIRECT",
				"vendorSku": "VENDOR",
			},
			expected: "DIRECT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			variant := syncdomain.CatalogVariant{ID: "var-1", Raw: tt.raw}
			assert.Equal(t, tt.expected, n.ResolveSKU(parent, variant))
		})
	}
}

func TestNormalizer_ResolveSKU_SyntheticFallback(t *testing.T) {
	n := NewNormalizer()
	parent := syncdomain.CatalogParent{ID: "prod-9"}
	variant := syncdomain.CatalogVariant{ID: "var-3", Raw: map[string]any{}}

	sku := n.ResolveSKU(parent, variant)
	assert.Equal(t, "prod-9:var-3", sku)

	// Deterministic: the same pair yields the same SKU on every run.
	assert.Equal(t, sku, n.ResolveSKU(parent, variant))
}

func TestNormalizer_Normalize_MissingIdentity(t *testing.T) {
	n := NewNormalizer()

	assert.Nil(t, n.Normalize(
		syncdomain.CatalogParent{ID: ""},
		syncdomain.CatalogVariant{ID: "var-1"},
	))
	assert.Nil(t, n.Normalize(
		syncdomain.CatalogParent{ID: "prod-1"},
		syncdomain.CatalogVariant{ID: "  "},
	))
}

func TestNormalizer_Normalize_BuildsDraft(t *testing.T) {
	n := NewNormalizer()
	parent := syncdomain.CatalogParent{
		ID:          "prod-1",
		Name:        "Clip-In Extensions",
		Description: "Remy hair",
		Handle:      "clip-in-extensions",
		BasePrice:   decimal.NewFromInt(120),
	}
	variant := syncdomain.CatalogVariant{
		ID:            "var-1",
		Choices:       map[string]string{"Length": "18\"", "Color": "Blonde"},
		Price:         "149.90",
		TrackQuantity: true,
		Quantity:      7,
		Raw:           map[string]any{"sku": "CLIP-18-BL"},
	}

	draft := n.Normalize(parent, variant)
	require.NotNil(t, draft)

	assert.Equal(t, "prod-1", draft.WixProductID)
	assert.Equal(t, "var-1", draft.WixVariantID)
	assert.Equal(t, "CLIP-18-BL", draft.SKU)
	// Choice values are appended sorted by option name: Color before Length.
	assert.Equal(t, "Clip-In Extensions - Blonde 18\"", draft.Name)
	assert.Equal(t, "Remy hair", draft.Description)
	assert.Equal(t, "clip-in-extensions", draft.Handle)
	assert.True(t, draft.Price.Equal(decimal.RequireFromString("149.90")))
	assert.True(t, draft.TrackQuantity)
	assert.Equal(t, int64(7), draft.Quantity)
}

func TestNormalizer_Normalize_NameWithoutChoices(t *testing.T) {
	n := NewNormalizer()
	draft := n.Normalize(
		syncdomain.CatalogParent{ID: "prod-2", Name: "Argan Oil Serum"},
		syncdomain.CatalogVariant{ID: "var-1"},
	)
	require.NotNil(t, draft)
	assert.Equal(t, "Argan Oil Serum", draft.Name)
}

func TestResolvePrice(t *testing.T) {
	base := decimal.NewFromInt(100)

	tests := []struct {
		name     string
		override string
		base     decimal.Decimal
		expected decimal.Decimal
	}{
		{"variant override wins", "150.50", base, decimal.RequireFromString("150.50")},
		{"empty override uses base", "", base, base},
		{"blank override uses base", "  ", base, base},
		{"unparseable override coerces to zero", "abc", base, decimal.Zero},
		{"negative override coerces to zero", "-5", base, decimal.Zero},
		{"negative base coerces to zero", "", decimal.NewFromInt(-1), decimal.Zero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolvePrice(tt.override, tt.base)
			assert.True(t, got.Equal(tt.expected), "got %s, want %s", got, tt.expected)
		})
	}
}

func TestRawString_NestedPathsAndTypes(t *testing.T) {
	raw := map[string]any{
		"a": map[string]any{"b": map[string]any{"c": "deep"}},
		"n": float64(42),
		"x": []any{"not", "a", "map"},
	}

	assert.Equal(t, "deep", rawString(raw, "a", "b", "c"))
	assert.Equal(t, "42", rawString(raw, "n"))
	assert.Equal(t, "", rawString(raw, "missing"))
	assert.Equal(t, "", rawString(raw, "x", "0"))
	assert.Equal(t, "", rawString(nil, "a"))
}
