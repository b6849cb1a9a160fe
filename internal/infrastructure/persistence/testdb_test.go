package persistence

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/luxurahair/luxura-inventory-api/internal/domain/catalog"
	"github.com/luxurahair/luxura-inventory-api/internal/domain/inventory"
	syncdomain "github.com/luxurahair/luxura-inventory-api/internal/domain/sync"
)

// setupTestDB opens an in-memory SQLite database with the full schema.
// uuid.UUID and decimal.Decimal columns map cleanly onto SQLite's type
// affinity, so the real entities migrate as-is.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&catalog.Product{},
		&inventory.Salon{},
		&inventory.InventoryItem{},
		&syncdomain.SyncRun{},
	)
	require.NoError(t, err)

	return db
}
