package inventory

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/luxurahair/luxura-inventory-api/internal/domain/inventory"
	"github.com/luxurahair/luxura-inventory-api/internal/domain/shared"
)

// SalonService handles salon management operations
type SalonService struct {
	salonRepo inventory.SalonRepository
}

// NewSalonService creates a new SalonService
func NewSalonService(salonRepo inventory.SalonRepository) *SalonService {
	return &SalonService{
		salonRepo: salonRepo,
	}
}

// Create creates a new salon
func (s *SalonService) Create(ctx context.Context, req CreateSalonRequest) (*SalonResponse, error) {
	if req.Code != "" {
		_, err := s.salonRepo.FindByCode(ctx, req.Code)
		if err == nil {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Salon with this code already exists")
		}
		if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
	}

	salon, err := inventory.NewSalon(req.Name, req.Code)
	if err != nil {
		return nil, err
	}
	if req.Address != "" {
		if err := salon.Update(req.Name, req.Address, true); err != nil {
			return nil, err
		}
	}

	if err := s.salonRepo.Save(ctx, salon); err != nil {
		return nil, err
	}

	response := ToSalonResponse(salon)
	return &response, nil
}

// GetByID retrieves a salon by ID
func (s *SalonService) GetByID(ctx context.Context, salonID uuid.UUID) (*SalonResponse, error) {
	salon, err := s.salonRepo.FindByID(ctx, salonID)
	if err != nil {
		return nil, err
	}

	response := ToSalonResponse(salon)
	return &response, nil
}

// List retrieves all salons
func (s *SalonService) List(ctx context.Context) ([]SalonResponse, error) {
	salons, err := s.salonRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return ToSalonResponses(salons), nil
}

// Update applies the mutable salon fields
func (s *SalonService) Update(ctx context.Context, salonID uuid.UUID, req UpdateSalonRequest) (*SalonResponse, error) {
	salon, err := s.salonRepo.FindByID(ctx, salonID)
	if err != nil {
		return nil, err
	}

	name := salon.Name
	if req.Name != nil {
		name = *req.Name
	}
	address := salon.Address
	if req.Address != nil {
		address = *req.Address
	}
	isActive := salon.IsActive
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	if err := salon.Update(name, address, isActive); err != nil {
		return nil, err
	}

	if err := s.salonRepo.Save(ctx, salon); err != nil {
		return nil, err
	}

	response := ToSalonResponse(salon)
	return &response, nil
}

// Delete removes a salon
func (s *SalonService) Delete(ctx context.Context, salonID uuid.UUID) error {
	return s.salonRepo.Delete(ctx, salonID)
}
