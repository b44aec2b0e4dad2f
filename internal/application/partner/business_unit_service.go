package partner

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/procure/backend/internal/domain/partner"
	"github.com/procure/backend/internal/domain/shared"
)

// BusinessUnitService handles business unit operations
type BusinessUnitService struct {
	unitRepo  partner.BusinessUnitRepository
	publisher shared.EventPublisher
}

// NewBusinessUnitService creates a new BusinessUnitService
func NewBusinessUnitService(unitRepo partner.BusinessUnitRepository, publisher shared.EventPublisher) *BusinessUnitService {
	return &BusinessUnitService{
		unitRepo:  unitRepo,
		publisher: publisher,
	}
}

// Create creates a new business unit
func (s *BusinessUnitService) Create(ctx context.Context, req CreateBusinessUnitRequest) (*BusinessUnitResponse, error) {
	existing, err := s.unitRepo.FindByName(ctx, strings.TrimSpace(req.Name))
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Business unit with this name already exists")
	}

	unit, err := partner.NewBusinessUnit(req.Name)
	if err != nil {
		return nil, err
	}

	if err := s.unitRepo.Save(ctx, unit); err != nil {
		return nil, err
	}
	publishEvents(ctx, s.publisher, unit)

	response := ToBusinessUnitResponse(unit)
	return &response, nil
}

// GetByID retrieves a business unit by ID
func (s *BusinessUnitService) GetByID(ctx context.Context, id uuid.UUID) (*BusinessUnitResponse, error) {
	unit, err := s.unitRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToBusinessUnitResponse(unit)
	return &response, nil
}

// List retrieves business units with pagination
func (s *BusinessUnitService) List(ctx context.Context, filter ListFilter) ([]BusinessUnitResponse, int64, error) {
	domainFilter := filter.toDomain()

	units, err := s.unitRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.unitRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToBusinessUnitResponses(units), total, nil
}
