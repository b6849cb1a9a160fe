package persistence

import (
	"context"

	"gorm.io/gorm"

	syncdomain "github.com/luxurahair/luxura-inventory-api/internal/domain/sync"
)

// GormSyncRunRepository implements SyncRunRepository using GORM
type GormSyncRunRepository struct {
	db *gorm.DB
}

// NewGormSyncRunRepository creates a new GormSyncRunRepository
func NewGormSyncRunRepository(db *gorm.DB) *GormSyncRunRepository {
	return &GormSyncRunRepository{db: db}
}

// Save creates or updates a run record
func (r *GormSyncRunRepository) Save(ctx context.Context, run *syncdomain.SyncRun) error {
	return r.db.WithContext(ctx).Save(run).Error
}

// FindRecent lists the most recent runs, newest first
func (r *GormSyncRunRepository) FindRecent(ctx context.Context, limit int) ([]syncdomain.SyncRun, error) {
	var runs []syncdomain.SyncRun
	if err := r.db.WithContext(ctx).
		Order("started_at DESC").
		Limit(limit).
		Find(&runs).Error; err != nil {
		return nil, err
	}
	return runs, nil
}

// Ensure GormSyncRunRepository implements SyncRunRepository
var _ syncdomain.SyncRunRepository = (*GormSyncRunRepository)(nil)
