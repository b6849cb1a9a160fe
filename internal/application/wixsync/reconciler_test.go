package wixsync

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxurahair/luxura-inventory-api/internal/domain/catalog"
	"github.com/luxurahair/luxura-inventory-api/internal/domain/inventory"
	syncdomain "github.com/luxurahair/luxura-inventory-api/internal/domain/sync"
)

func testSalon(t *testing.T) *inventory.Salon {
	t.Helper()
	salon, err := inventory.NewSalon("Luxura Main", "MAIN")
	require.NoError(t, err)
	return salon
}

func testProduct(t *testing.T, trackQuantity bool) *catalog.Product {
	t.Helper()
	product, err := catalog.NewProduct("p1", "v1", "SKU-1", "Extensions")
	require.NoError(t, err)
	product.TrackQuantity = trackQuantity
	return product
}

func trackedRecord(quantity int64) *syncdomain.InventoryRecord {
	return &syncdomain.InventoryRecord{
		ProductID:     "p1",
		VariantID:     "v1",
		TrackQuantity: true,
		Quantity:      quantity,
	}
}

func untrackedRecord() *syncdomain.InventoryRecord {
	return &syncdomain.InventoryRecord{ProductID: "p1", VariantID: "v1"}
}

func TestReconciler_Reconcile_CreatesRowOnFirstSight(t *testing.T) {
	items := newMemInventoryRepo()
	rc := NewReconciler()
	salon := testSalon(t)
	product := testProduct(t, true)

	written, err := rc.Reconcile(context.Background(), items, salon, product, trackedRecord(12))

	require.NoError(t, err)
	assert.True(t, written)

	item, err := items.FindBySalonAndProduct(context.Background(), salon.GetID(), product.GetID())
	require.NoError(t, err)
	assert.Equal(t, 12, item.Quantity)
}

func TestReconciler_Reconcile_OverwritesExistingQuantity(t *testing.T) {
	items := newMemInventoryRepo()
	rc := NewReconciler()
	ctx := context.Background()
	salon := testSalon(t)
	product := testProduct(t, true)

	_, err := rc.Reconcile(ctx, items, salon, product, trackedRecord(12))
	require.NoError(t, err)
	written, err := rc.Reconcile(ctx, items, salon, product, trackedRecord(3))
	require.NoError(t, err)
	assert.True(t, written)

	item, err := items.FindBySalonAndProduct(ctx, salon.GetID(), product.GetID())
	require.NoError(t, err)
	assert.Equal(t, 3, item.Quantity)

	all, err := items.FindAll(ctx, inventory.InventoryFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestReconciler_Reconcile_ClampsNegativeSourceQuantity(t *testing.T) {
	items := newMemInventoryRepo()
	rc := NewReconciler()
	salon := testSalon(t)
	product := testProduct(t, true)

	written, err := rc.Reconcile(context.Background(), items, salon, product, trackedRecord(-4))

	require.NoError(t, err)
	assert.True(t, written)

	item, err := items.FindBySalonAndProduct(context.Background(), salon.GetID(), product.GetID())
	require.NoError(t, err)
	assert.Equal(t, 0, item.Quantity)
}

func TestReconciler_Reconcile_SkipsUntrackedRecord(t *testing.T) {
	items := newMemInventoryRepo()
	rc := NewReconciler()
	salon := testSalon(t)
	product := testProduct(t, true)

	written, err := rc.Reconcile(context.Background(), items, salon, product, untrackedRecord())

	require.NoError(t, err)
	assert.False(t, written)

	all, err := items.FindAll(context.Background(), inventory.InventoryFilter{})
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestReconciler_Reconcile_SkipsWithoutInventoryRecord(t *testing.T) {
	items := newMemInventoryRepo()
	rc := NewReconciler()
	salon := testSalon(t)

	// The variant payload claims tracking; with no inventory record that
	// claim is advisory and must not produce a write.
	product := testProduct(t, true)

	written, err := rc.Reconcile(context.Background(), items, salon, product, nil)

	require.NoError(t, err)
	assert.False(t, written)

	all, err := items.FindAll(context.Background(), inventory.InventoryFilter{})
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestReconciler_Reconcile_LeavesManualCountAlone(t *testing.T) {
	items := newMemInventoryRepo()
	rc := NewReconciler()
	ctx := context.Background()
	salon := testSalon(t)
	product := testProduct(t, false)

	manual, err := inventory.NewInventoryItem(salon.GetID(), product.GetID())
	require.NoError(t, err)
	manual.SetQuantity(9)
	require.NoError(t, items.Save(ctx, manual))

	for _, rec := range []*syncdomain.InventoryRecord{untrackedRecord(), nil} {
		written, err := rc.Reconcile(ctx, items, salon, product, rec)
		require.NoError(t, err)
		assert.False(t, written)
	}

	item, err := items.FindBySalonAndProduct(ctx, salon.GetID(), product.GetID())
	require.NoError(t, err)
	assert.Equal(t, 9, item.Quantity)
}
