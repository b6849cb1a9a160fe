package wixsync

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/luxurahair/luxura-inventory-api/internal/domain/catalog"
	"github.com/luxurahair/luxura-inventory-api/internal/domain/shared"
	syncdomain "github.com/luxurahair/luxura-inventory-api/internal/domain/sync"
)

type syncFixture struct {
	products *memProductRepo
	salons   *memSalonRepo
	items    *memInventoryRepo
	runs     *memSyncRunRepo
	source   *fakeCatalogSource
	service  *SyncService
}

func newSyncFixture(source *fakeCatalogSource) *syncFixture {
	products := newMemProductRepo()
	salons := newMemSalonRepo()
	items := newMemInventoryRepo()
	runs := newMemSyncRunRepo()

	service := NewSyncService(
		source,
		newMemTransactionScope(products, salons, items),
		runs,
		NewInProcessRunLock(),
		"MAIN", "Luxura Main",
		zap.NewNop(),
	)
	return &syncFixture{
		products: products,
		salons:   salons,
		items:    items,
		runs:     runs,
		source:   source,
		service:  service,
	}
}

// twoParentSource builds a small catalog: one parent with two variants and
// SKUs, one parent with a single SKU-less variant.
func twoParentSource() *fakeCatalogSource {
	return &fakeCatalogSource{
		parents: []syncdomain.CatalogParent{
			{
				ID:            "p1",
				Name:          "Clip-In Extensions",
				BasePrice:     decimal.NewFromInt(120),
				CollectionIDs: []string{"col-1"},
			},
			{ID: "p2", Name: "Argan Oil Serum", BasePrice: decimal.NewFromInt(30)},
		},
		variants: map[string][]syncdomain.CatalogVariant{
			"p1": {
				{
					ID:      "v1",
					Choices: map[string]string{"Length": "18\""},
					Raw:     map[string]any{"sku": "CLIP-18"},
				},
				{
					ID:      "v2",
					Choices: map[string]string{"Length": "22\""},
					Price:   "149.90",
					Raw:     map[string]any{"sku": "CLIP-22"},
				},
			},
			"p2": {
				{ID: "v3", Raw: map[string]any{}},
			},
		},
		records: []syncdomain.InventoryRecord{
			{ProductID: "p1", VariantID: "v1", TrackQuantity: true, Quantity: 10},
			{ProductID: "p1", VariantID: "v2", TrackQuantity: true, Quantity: 0},
			{ProductID: "p2", VariantID: "v3", TrackQuantity: false},
		},
		categories: map[string]string{"col-1": "Extensions"},
	}
}

func TestSyncService_RunSync_FullPass(t *testing.T) {
	f := newSyncFixture(twoParentSource())

	summary, err := f.service.RunSync(context.Background(), Options{})

	require.NoError(t, err)
	require.NotNil(t, summary)
	assert.True(t, summary.Ok)
	assert.False(t, summary.DryRun)
	assert.Equal(t, 3, summary.Created)
	assert.Equal(t, 0, summary.Updated)
	assert.Equal(t, 0, summary.Merged)
	assert.Equal(t, 0, summary.SkippedNoIdentity)
	assert.Equal(t, 2, summary.InventoryWritten)
	assert.Equal(t, 2, summary.ParentsProcessed)
	assert.Equal(t, 3, summary.VariantsSeen)
	assert.Nil(t, summary.InventoryFetchError)

	ctx := context.Background()

	// The SKU-less variant got the synthetic parent:variant SKU.
	synthetic, err := f.products.FindBySKU(ctx, "p2:v3")
	require.NoError(t, err)
	assert.Equal(t, "Argan Oil Serum", synthetic.Name)

	// Category labels landed in the options bag.
	withCat, err := f.products.FindBySKU(ctx, "CLIP-18")
	require.NoError(t, err)
	opts, err := withCat.GetOptions()
	require.NoError(t, err)
	assert.Equal(t, []string{"Extensions"}, opts.Categories)

	// The target salon was created and stocked from the inventory listing.
	salon, err := f.salons.FindByCode(ctx, "MAIN")
	require.NoError(t, err)
	item, err := f.items.FindBySalonAndProduct(ctx, salon.GetID(), withCat.GetID())
	require.NoError(t, err)
	assert.Equal(t, 10, item.Quantity)

	// The audit row was finalized.
	runs, err := f.runs.FindRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, syncdomain.RunStatusSuccess, runs[0].Status)
	assert.Equal(t, 3, runs[0].Created)
	assert.NotNil(t, runs[0].FinishedAt)
}

func TestSyncService_RunSync_Idempotent(t *testing.T) {
	f := newSyncFixture(twoParentSource())
	ctx := context.Background()

	first, err := f.service.RunSync(ctx, Options{})
	require.NoError(t, err)
	require.True(t, first.Ok)

	second, err := f.service.RunSync(ctx, Options{})
	require.NoError(t, err)
	require.True(t, second.Ok)

	assert.Equal(t, 0, second.Created)
	assert.Equal(t, 3, second.Updated)
	assert.Equal(t, 0, second.Merged)

	count, err := f.products.Count(ctx, catalog.ProductFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestSyncService_RunSync_DryRunPersistsNothing(t *testing.T) {
	f := newSyncFixture(twoParentSource())
	ctx := context.Background()

	summary, err := f.service.RunSync(ctx, Options{DryRun: true})

	require.NoError(t, err)
	require.True(t, summary.Ok)
	assert.True(t, summary.DryRun)

	// The counters report the work that would have happened.
	assert.Equal(t, 3, summary.Created)
	assert.Equal(t, 2, summary.InventoryWritten)

	// Nothing was committed, not even the salon.
	count, err := f.products.Count(ctx, catalog.ProductFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
	salons, err := f.salons.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, salons)

	// The audit row survives outside the transaction.
	runs, err := f.runs.FindRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.True(t, runs[0].DryRun)
	assert.Equal(t, syncdomain.RunStatusSuccess, runs[0].Status)
}

func TestSyncService_RunSync_LimitBoundsParents(t *testing.T) {
	f := newSyncFixture(twoParentSource())

	summary, err := f.service.RunSync(context.Background(), Options{Limit: 1})

	require.NoError(t, err)
	require.True(t, summary.Ok)
	assert.Equal(t, 1, summary.ParentsProcessed)
	assert.Equal(t, 2, summary.VariantsSeen)
	assert.Equal(t, 2, summary.Created)
}

func TestSyncService_RunSync_InventoryFetchFailureIsNonFatal(t *testing.T) {
	source := twoParentSource()
	source.inventoryErr = errors.New("upstream 502")
	f := newSyncFixture(source)

	summary, err := f.service.RunSync(context.Background(), Options{})

	require.NoError(t, err)
	require.True(t, summary.Ok)
	assert.Equal(t, 3, summary.Created)
	assert.Equal(t, 0, summary.InventoryWritten)
	require.NotNil(t, summary.InventoryFetchError)
	assert.Contains(t, *summary.InventoryFetchError, "upstream 502")

	runs, err := f.runs.FindRecent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, syncdomain.RunStatusSuccess, runs[0].Status)
	assert.Contains(t, runs[0].InventoryFetchError, "upstream 502")
}

// payloadTrackedSource builds a catalog whose single variant claims tracked
// stock in its own payload. The inventory listing is controlled per test.
func payloadTrackedSource() *fakeCatalogSource {
	return &fakeCatalogSource{
		parents: []syncdomain.CatalogParent{
			{ID: "p9", Name: "Keratin Serum", BasePrice: decimal.NewFromInt(45)},
		},
		variants: map[string][]syncdomain.CatalogVariant{
			"p9": {{
				ID:            "v9",
				TrackQuantity: true,
				Quantity:      999,
				Raw:           map[string]any{"sku": "SER-1"},
			}},
		},
	}
}

func TestSyncService_RunSync_NoWriteFromPayloadOnInventoryFetchFailure(t *testing.T) {
	source := payloadTrackedSource()
	source.inventoryErr = errors.New("upstream 503")
	f := newSyncFixture(source)
	ctx := context.Background()

	summary, err := f.service.RunSync(ctx, Options{})

	require.NoError(t, err)
	require.True(t, summary.Ok)
	assert.Equal(t, 1, summary.Created)
	assert.Equal(t, 0, summary.InventoryWritten)

	// The variant payload's stock claim stayed out of the inventory table.
	salon, err := f.salons.FindByCode(ctx, "MAIN")
	require.NoError(t, err)
	product, err := f.products.FindBySKU(ctx, "SER-1")
	require.NoError(t, err)
	_, err = f.items.FindBySalonAndProduct(ctx, salon.GetID(), product.GetID())
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestSyncService_RunSync_NoWriteFromPayloadWhenListingLacksVariant(t *testing.T) {
	// The inventory fetch succeeds but carries no record for the variant.
	f := newSyncFixture(payloadTrackedSource())
	ctx := context.Background()

	summary, err := f.service.RunSync(ctx, Options{})

	require.NoError(t, err)
	require.True(t, summary.Ok)
	assert.Nil(t, summary.InventoryFetchError)
	assert.Equal(t, 1, summary.Created)
	assert.Equal(t, 0, summary.InventoryWritten)

	salon, err := f.salons.FindByCode(ctx, "MAIN")
	require.NoError(t, err)
	product, err := f.products.FindBySKU(ctx, "SER-1")
	require.NoError(t, err)
	_, err = f.items.FindBySalonAndProduct(ctx, salon.GetID(), product.GetID())
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestSyncService_RunSync_CatalogFetchFailureAbortsRun(t *testing.T) {
	source := twoParentSource()
	source.parentsErr = errors.New("upstream 500")
	f := newSyncFixture(source)

	summary, err := f.service.RunSync(context.Background(), Options{})

	require.NoError(t, err)
	require.NotNil(t, summary)
	assert.False(t, summary.Ok)
	assert.Contains(t, summary.Error, "upstream 500")

	runs, err := f.runs.FindRecent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, syncdomain.RunStatusError, runs[0].Status)
}

func TestSyncService_RunSync_VariantFetchFailureRollsBack(t *testing.T) {
	source := twoParentSource()
	source.variantsErr = errors.New("upstream timeout")
	f := newSyncFixture(source)
	ctx := context.Background()

	summary, err := f.service.RunSync(ctx, Options{})

	require.NoError(t, err)
	assert.False(t, summary.Ok)

	// The transaction rolled back: no partial catalog remains.
	count, err := f.products.Count(ctx, catalog.ProductFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestSyncService_RunSync_CancelledContext(t *testing.T) {
	f := newSyncFixture(twoParentSource())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	summary, err := f.service.RunSync(ctx, Options{})

	require.NoError(t, err)
	require.NotNil(t, summary)
	assert.False(t, summary.Ok)

	runs, err := f.runs.FindRecent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, syncdomain.RunStatusCancelled, runs[0].Status)
}

func TestSyncService_RunSync_RejectsConcurrentRun(t *testing.T) {
	f := newSyncFixture(twoParentSource())

	release, err := f.service.lock.Acquire(context.Background())
	require.NoError(t, err)
	defer release()

	summary, err := f.service.RunSync(context.Background(), Options{})

	assert.Nil(t, summary)
	assert.ErrorIs(t, err, syncdomain.ErrRunInProgress)
}

func TestSyncService_RunSync_AdoptsNewIdentitiesAcrossRuns(t *testing.T) {
	source := twoParentSource()
	f := newSyncFixture(source)
	ctx := context.Background()

	first, err := f.service.RunSync(ctx, Options{})
	require.NoError(t, err)
	require.True(t, first.Ok)

	// The platform re-created parent p1: new identities, same SKUs.
	source.parents[0].ID = "p1-new"
	source.variants["p1-new"] = []syncdomain.CatalogVariant{
		{ID: "v1-new", Choices: map[string]string{"Length": "18\""}, Raw: map[string]any{"sku": "CLIP-18"}},
		{ID: "v2-new", Choices: map[string]string{"Length": "22\""}, Price: "149.90", Raw: map[string]any{"sku": "CLIP-22"}},
	}
	source.records = []syncdomain.InventoryRecord{
		{ProductID: "p1-new", VariantID: "v1-new", TrackQuantity: true, Quantity: 8},
		{ProductID: "p1-new", VariantID: "v2-new", TrackQuantity: true, Quantity: 1},
	}

	second, err := f.service.RunSync(ctx, Options{})
	require.NoError(t, err)
	require.True(t, second.Ok)

	// The SKU owners were updated in place, not duplicated.
	assert.Equal(t, 0, second.Created)
	assert.Equal(t, 3, second.Updated)
	count, err := f.products.Count(ctx, catalog.ProductFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	product, err := f.products.FindBySKU(ctx, "CLIP-18")
	require.NoError(t, err)
	assert.Equal(t, "p1-new", product.WixProductID)
	assert.Equal(t, "v1-new", product.WixVariantID)

	salon, err := f.salons.FindByCode(ctx, "MAIN")
	require.NoError(t, err)
	item, err := f.items.FindBySalonAndProduct(ctx, salon.GetID(), product.GetID())
	require.NoError(t, err)
	assert.Equal(t, 8, item.Quantity)
}

func TestPaging(t *testing.T) {
	tests := []struct {
		name     string
		limit    int
		pageSize int
		maxPages int
	}{
		{"unlimited", 0, 100, 0},
		{"below platform cap", 25, 25, 1},
		{"at platform cap", 100, 100, 1},
		{"above platform cap", 250, 100, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pageSize, maxPages := paging(tt.limit)
			assert.Equal(t, tt.pageSize, pageSize)
			assert.Equal(t, tt.maxPages, maxPages)
		})
	}
}
