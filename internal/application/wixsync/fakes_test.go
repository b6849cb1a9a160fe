package wixsync

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/luxurahair/luxura-inventory-api/internal/domain/catalog"
	"github.com/luxurahair/luxura-inventory-api/internal/domain/inventory"
	"github.com/luxurahair/luxura-inventory-api/internal/domain/shared"
	syncdomain "github.com/luxurahair/luxura-inventory-api/internal/domain/sync"
)

// The sync scenarios are stateful (idempotence, merges), so the tests run
// against small in-memory repositories instead of call-by-call mocks.

func newTestSalonID() uuid.UUID {
	return uuid.MustParse("11111111-1111-1111-1111-111111111111")
}

type memProductRepo struct {
	products map[uuid.UUID]*catalog.Product
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{products: make(map[uuid.UUID]*catalog.Product)}
}

func (r *memProductRepo) FindByID(_ context.Context, id uuid.UUID) (*catalog.Product, error) {
	if p, ok := r.products[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, shared.ErrNotFound
}

func (r *memProductRepo) FindBySKU(_ context.Context, sku string) (*catalog.Product, error) {
	for _, p := range r.products {
		if p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *memProductRepo) FindByWixIdentity(_ context.Context, wixProductID, wixVariantID string) (*catalog.Product, error) {
	for _, p := range r.products {
		if p.WixProductID == wixProductID && p.WixVariantID == wixVariantID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *memProductRepo) FindAll(_ context.Context, filter catalog.ProductFilter) ([]catalog.Product, error) {
	var out []catalog.Product
	for _, p := range r.products {
		if filter.OnlyActive && !p.Active {
			continue
		}
		if kw := filter.SearchKeyword; kw != "" &&
			!strings.Contains(p.Name, kw) && !strings.Contains(p.SKU, kw) {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (r *memProductRepo) Count(ctx context.Context, filter catalog.ProductFilter) (int64, error) {
	all, err := r.FindAll(ctx, filter)
	return int64(len(all)), err
}

func (r *memProductRepo) Save(_ context.Context, product *catalog.Product) error {
	cp := *product
	r.products[product.GetID()] = &cp
	return nil
}

func (r *memProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.products, id)
	return nil
}

type memSalonRepo struct {
	salons map[uuid.UUID]*inventory.Salon
}

func newMemSalonRepo() *memSalonRepo {
	return &memSalonRepo{salons: make(map[uuid.UUID]*inventory.Salon)}
}

func (r *memSalonRepo) FindByID(_ context.Context, id uuid.UUID) (*inventory.Salon, error) {
	if s, ok := r.salons[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, shared.ErrNotFound
}

func (r *memSalonRepo) FindByCode(_ context.Context, code string) (*inventory.Salon, error) {
	for _, s := range r.salons {
		if s.Code == strings.ToUpper(code) {
			cp := *s
			return &cp, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *memSalonRepo) FindAll(_ context.Context) ([]inventory.Salon, error) {
	var out []inventory.Salon
	for _, s := range r.salons {
		out = append(out, *s)
	}
	return out, nil
}

func (r *memSalonRepo) Save(_ context.Context, salon *inventory.Salon) error {
	cp := *salon
	r.salons[salon.GetID()] = &cp
	return nil
}

func (r *memSalonRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.salons, id)
	return nil
}

type memInventoryRepo struct {
	items map[uuid.UUID]*inventory.InventoryItem
}

func newMemInventoryRepo() *memInventoryRepo {
	return &memInventoryRepo{items: make(map[uuid.UUID]*inventory.InventoryItem)}
}

func (r *memInventoryRepo) FindByID(_ context.Context, id uuid.UUID) (*inventory.InventoryItem, error) {
	if i, ok := r.items[id]; ok {
		cp := *i
		return &cp, nil
	}
	return nil, shared.ErrNotFound
}

func (r *memInventoryRepo) FindBySalonAndProduct(_ context.Context, salonID, productID uuid.UUID) (*inventory.InventoryItem, error) {
	for _, i := range r.items {
		if i.SalonID == salonID && i.ProductID == productID {
			cp := *i
			return &cp, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *memInventoryRepo) FindAll(_ context.Context, filter inventory.InventoryFilter) ([]inventory.InventoryItem, error) {
	var out []inventory.InventoryItem
	for _, i := range r.items {
		if filter.SalonID != nil && i.SalonID != *filter.SalonID {
			continue
		}
		if filter.ProductID != nil && i.ProductID != *filter.ProductID {
			continue
		}
		out = append(out, *i)
	}
	return out, nil
}

func (r *memInventoryRepo) ReassignProduct(_ context.Context, fromProductID, toProductID uuid.UUID) error {
	// Mirrors the persistence behavior: when both products hold a row at
	// the same salon the quantities fold into the survivor's row.
	for _, item := range r.items {
		if item.ProductID != fromProductID {
			continue
		}
		merged := false
		for _, other := range r.items {
			if other.ProductID == toProductID && other.SalonID == item.SalonID {
				other.SetQuantity(other.Quantity + item.Quantity)
				delete(r.items, item.GetID())
				merged = true
				break
			}
		}
		if !merged {
			item.ProductID = toProductID
		}
	}
	return nil
}

func (r *memInventoryRepo) Save(_ context.Context, item *inventory.InventoryItem) error {
	cp := *item
	r.items[item.GetID()] = &cp
	return nil
}

type memSyncRunRepo struct {
	runs []*syncdomain.SyncRun
}

func newMemSyncRunRepo() *memSyncRunRepo {
	return &memSyncRunRepo{}
}

func (r *memSyncRunRepo) Save(_ context.Context, run *syncdomain.SyncRun) error {
	for i, existing := range r.runs {
		if existing.GetID() == run.GetID() {
			cp := *run
			r.runs[i] = &cp
			return nil
		}
	}
	cp := *run
	r.runs = append(r.runs, &cp)
	return nil
}

func (r *memSyncRunRepo) FindRecent(_ context.Context, limit int) ([]syncdomain.SyncRun, error) {
	var out []syncdomain.SyncRun
	for i := len(r.runs) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, *r.runs[i])
	}
	return out, nil
}

// memTransactionScope snapshots the in-memory repositories before each
// Execute and restores the snapshot when fn fails, mimicking a database
// rollback.
type memTransactionScope struct {
	products  *memProductRepo
	salons    *memSalonRepo
	inventory *memInventoryRepo
}

func newMemTransactionScope(products *memProductRepo, salons *memSalonRepo, inventoryRepo *memInventoryRepo) *memTransactionScope {
	return &memTransactionScope{products: products, salons: salons, inventory: inventoryRepo}
}

func (s *memTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	productSnap := snapshotMap(s.products.products)
	salonSnap := snapshotMap(s.salons.salons)
	itemSnap := snapshotMap(s.inventory.items)

	if err := fn(s); err != nil {
		s.products.products = productSnap
		s.salons.salons = salonSnap
		s.inventory.items = itemSnap
		return err
	}
	return nil
}

func (s *memTransactionScope) Products() catalog.ProductRepository { return s.products }

func (s *memTransactionScope) Salons() inventory.SalonRepository { return s.salons }

func (s *memTransactionScope) Inventory() inventory.InventoryItemRepository { return s.inventory }

func snapshotMap[K comparable, V any](m map[K]*V) map[K]*V {
	snap := make(map[K]*V, len(m))
	for k, v := range m {
		cp := *v
		snap[k] = &cp
	}
	return snap
}

// fakeCatalogSource serves a fixed catalog from memory.
type fakeCatalogSource struct {
	parents    []syncdomain.CatalogParent
	variants   map[string][]syncdomain.CatalogVariant
	records    []syncdomain.InventoryRecord
	categories map[string]string

	parentsErr   error
	inventoryErr error
	variantsErr  error
}

func (f *fakeCatalogSource) FetchParents(_ context.Context, _, maxPages int) ([]syncdomain.CatalogParent, error) {
	if f.parentsErr != nil {
		return nil, f.parentsErr
	}
	return f.parents, nil
}

func (f *fakeCatalogSource) FetchVariants(_ context.Context, parentID string) ([]syncdomain.CatalogVariant, error) {
	if f.variantsErr != nil {
		return nil, f.variantsErr
	}
	return f.variants[parentID], nil
}

func (f *fakeCatalogSource) FetchInventory(_ context.Context, _, _ int) ([]syncdomain.InventoryRecord, error) {
	if f.inventoryErr != nil {
		return nil, f.inventoryErr
	}
	return f.records, nil
}

func (f *fakeCatalogSource) FetchCategories(_ context.Context) (map[string]string, error) {
	return f.categories, nil
}
