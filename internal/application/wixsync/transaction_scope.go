package wixsync

import (
	"context"

	"github.com/luxurahair/luxura-inventory-api/internal/domain/catalog"
	"github.com/luxurahair/luxura-inventory-api/internal/domain/inventory"
)

// TransactionScope provides transactional access to the repositories touched
// by one sync pass. Everything the pass writes (product upserts, merge
// deletions, inventory repointing, quantity writes) happens inside a single
// Execute call and commits or rolls back as a unit.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// If the function succeeds, the transaction is committed.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the sync repositories within
// a transaction. All repositories returned share the same underlying
// database transaction.
type TransactionalRepositories interface {
	// Products returns the product repository scoped to the current transaction
	Products() catalog.ProductRepository
	// Salons returns the salon repository scoped to the current transaction
	Salons() inventory.SalonRepository
	// Inventory returns the inventory repository scoped to the current transaction
	Inventory() inventory.InventoryItemRepository
}

// NoOpTransactionScope is a transaction scope that doesn't actually use
// transactions. Useful in tests where the backing store is already isolated.
type NoOpTransactionScope struct {
	products  catalog.ProductRepository
	salons    inventory.SalonRepository
	inventory inventory.InventoryItemRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope over the given repositories.
func NewNoOpTransactionScope(
	products catalog.ProductRepository,
	salons inventory.SalonRepository,
	inventoryRepo inventory.InventoryItemRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		products:  products,
		salons:    salons,
		inventory: inventoryRepo,
	}
}

// Execute runs the function without a real transaction.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// Products returns the product repository.
func (s *NoOpTransactionScope) Products() catalog.ProductRepository {
	return s.products
}

// Salons returns the salon repository.
func (s *NoOpTransactionScope) Salons() inventory.SalonRepository {
	return s.salons
}

// Inventory returns the inventory repository.
func (s *NoOpTransactionScope) Inventory() inventory.InventoryItemRepository {
	return s.inventory
}

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
