package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/luxurahair/luxura-inventory-api/internal/domain/inventory"
	"github.com/luxurahair/luxura-inventory-api/internal/domain/shared"
)

// GormSalonRepository implements SalonRepository using GORM
type GormSalonRepository struct {
	db *gorm.DB
}

// NewGormSalonRepository creates a new GormSalonRepository
func NewGormSalonRepository(db *gorm.DB) *GormSalonRepository {
	return &GormSalonRepository{db: db}
}

// FindByID finds a salon by its ID
func (r *GormSalonRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Salon, error) {
	var salon inventory.Salon
	if err := r.db.WithContext(ctx).First(&salon, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &salon, nil
}

// FindByCode finds a salon by its unique code
func (r *GormSalonRepository) FindByCode(ctx context.Context, code string) (*inventory.Salon, error) {
	var salon inventory.Salon
	if err := r.db.WithContext(ctx).First(&salon, "code = ?", strings.ToUpper(code)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &salon, nil
}

// FindAll lists all salons
func (r *GormSalonRepository) FindAll(ctx context.Context) ([]inventory.Salon, error) {
	var salons []inventory.Salon
	if err := r.db.WithContext(ctx).Order("code ASC").Find(&salons).Error; err != nil {
		return nil, err
	}
	return salons, nil
}

// Save creates or updates a salon
func (r *GormSalonRepository) Save(ctx context.Context, salon *inventory.Salon) error {
	return r.db.WithContext(ctx).Save(salon).Error
}

// Delete removes a salon
func (r *GormSalonRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&inventory.Salon{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormSalonRepository implements SalonRepository
var _ inventory.SalonRepository = (*GormSalonRepository)(nil)
