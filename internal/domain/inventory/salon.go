package inventory

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/luxurahair/luxura-inventory-api/internal/domain/shared"
)

// Salon is a stock-holding location. One salon (typically the online shop,
// code "ONLINE") is designated as the target of catalog synchronization.
type Salon struct {
	shared.BaseAggregateRoot
	Name     string `gorm:"type:varchar(200);not null;index"`
	Code     string `gorm:"type:varchar(50);uniqueIndex"`
	Address  string `gorm:"type:varchar(300)"`
	IsActive bool   `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (Salon) TableName() string {
	return "salons"
}

// NewSalon creates a new salon
func NewSalon(name, code string) (*Salon, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrInvalidSalonName
	}

	return &Salon{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Code:              strings.ToUpper(code),
		IsActive:          true,
	}, nil
}

// Update applies the mutable fields in place.
func (s *Salon) Update(name, address string, isActive bool) error {
	if strings.TrimSpace(name) == "" {
		return ErrInvalidSalonName
	}
	s.Name = name
	s.Address = address
	s.IsActive = isActive
	s.Touch()
	s.IncrementVersion()
	return nil
}

// SalonRepository defines the persistence port for salons.
type SalonRepository interface {
	// FindByID finds a salon by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Salon, error)

	// FindByCode finds a salon by its unique code
	FindByCode(ctx context.Context, code string) (*Salon, error)

	// FindAll lists all salons
	FindAll(ctx context.Context) ([]Salon, error)

	// Save creates or updates a salon
	Save(ctx context.Context, salon *Salon) error

	// Delete removes a salon
	Delete(ctx context.Context, id uuid.UUID) error
}
