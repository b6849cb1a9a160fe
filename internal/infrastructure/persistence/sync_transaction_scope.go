package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/luxurahair/luxura-inventory-api/internal/application/wixsync"
	"github.com/luxurahair/luxura-inventory-api/internal/domain/catalog"
	"github.com/luxurahair/luxura-inventory-api/internal/domain/inventory"
)

// GormSyncTransactionScope implements the sync TransactionScope using GORM
// transactions. One sync pass commits or rolls back as a unit; the dry-run
// mode relies on the rollback path.
type GormSyncTransactionScope struct {
	db *gorm.DB
}

// NewGormSyncTransactionScope creates a new GormSyncTransactionScope.
func NewGormSyncTransactionScope(db *gorm.DB) *GormSyncTransactionScope {
	return &GormSyncTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
// If the function succeeds, the transaction is committed.
func (s *GormSyncTransactionScope) Execute(ctx context.Context, fn func(repos wixsync.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repos := &gormSyncRepositories{tx: tx}
		return fn(repos)
	})
}

// gormSyncRepositories provides access to the sync repositories within a transaction.
type gormSyncRepositories struct {
	tx *gorm.DB
}

// Products returns the product repository scoped to the current transaction.
func (r *gormSyncRepositories) Products() catalog.ProductRepository {
	return NewGormProductRepository(r.tx)
}

// Salons returns the salon repository scoped to the current transaction.
func (r *gormSyncRepositories) Salons() inventory.SalonRepository {
	return NewGormSalonRepository(r.tx)
}

// Inventory returns the inventory repository scoped to the current transaction.
func (r *gormSyncRepositories) Inventory() inventory.InventoryItemRepository {
	return NewGormInventoryItemRepository(r.tx)
}

// Ensure GormSyncTransactionScope implements TransactionScope
var _ wixsync.TransactionScope = (*GormSyncTransactionScope)(nil)

// Ensure gormSyncRepositories implements TransactionalRepositories
var _ wixsync.TransactionalRepositories = (*gormSyncRepositories)(nil)
