package wix

import (
	"context"

	syncdomain "github.com/luxurahair/luxura-inventory-api/internal/domain/sync"
)

// UnconfiguredSource stands in for the real client when no API credentials
// are configured. Every fetch fails with ErrSourceNotConfigured, so the API
// still starts and sync runs are recorded as failed with a clear cause.
type UnconfiguredSource struct{}

// FetchParents always fails with ErrSourceNotConfigured.
func (UnconfiguredSource) FetchParents(context.Context, int, int) ([]syncdomain.CatalogParent, error) {
	return nil, syncdomain.ErrSourceNotConfigured
}

// FetchVariants always fails with ErrSourceNotConfigured.
func (UnconfiguredSource) FetchVariants(context.Context, string) ([]syncdomain.CatalogVariant, error) {
	return nil, syncdomain.ErrSourceNotConfigured
}

// FetchInventory always fails with ErrSourceNotConfigured.
func (UnconfiguredSource) FetchInventory(context.Context, int, int) ([]syncdomain.InventoryRecord, error) {
	return nil, syncdomain.ErrSourceNotConfigured
}

// FetchCategories always fails with ErrSourceNotConfigured.
func (UnconfiguredSource) FetchCategories(context.Context) (map[string]string, error) {
	return nil, syncdomain.ErrSourceNotConfigured
}

var _ syncdomain.CatalogSource = UnconfiguredSource{}
