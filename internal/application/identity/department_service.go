package identity

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/procure/backend/internal/domain/identity"
	"github.com/procure/backend/internal/domain/shared"
)

// DepartmentService handles department operations
type DepartmentService struct {
	departmentRepo identity.DepartmentRepository
	publisher      shared.EventPublisher
}

// NewDepartmentService creates a new DepartmentService
func NewDepartmentService(departmentRepo identity.DepartmentRepository, publisher shared.EventPublisher) *DepartmentService {
	return &DepartmentService{
		departmentRepo: departmentRepo,
		publisher:      publisher,
	}
}

// Create creates a new department
func (s *DepartmentService) Create(ctx context.Context, req CreateDepartmentRequest) (*DepartmentResponse, error) {
	existing, err := s.departmentRepo.FindByName(ctx, strings.TrimSpace(req.Name))
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Department with this name already exists")
	}

	department, err := identity.NewDepartment(req.Name)
	if err != nil {
		return nil, err
	}

	if err := s.departmentRepo.Save(ctx, department); err != nil {
		return nil, err
	}
	publishEvents(ctx, s.publisher, department)

	response := ToDepartmentResponse(department)
	return &response, nil
}

// GetByID retrieves a department by ID
func (s *DepartmentService) GetByID(ctx context.Context, id uuid.UUID) (*DepartmentResponse, error) {
	department, err := s.departmentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToDepartmentResponse(department)
	return &response, nil
}

// List retrieves departments with pagination
func (s *DepartmentService) List(ctx context.Context, filter ListFilter) ([]DepartmentResponse, int64, error) {
	domainFilter := filter.toDomain()

	departments, err := s.departmentRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.departmentRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToDepartmentResponses(departments), total, nil
}
