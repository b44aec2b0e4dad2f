package catalog

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/procure/backend/internal/domain/catalog"
	"github.com/procure/backend/internal/domain/shared"
)

// ClassifierService handles classifier operations
type ClassifierService struct {
	classifierRepo catalog.ClassifierRepository
	publisher      shared.EventPublisher
}

// NewClassifierService creates a new ClassifierService
func NewClassifierService(classifierRepo catalog.ClassifierRepository, publisher shared.EventPublisher) *ClassifierService {
	return &ClassifierService{
		classifierRepo: classifierRepo,
		publisher:      publisher,
	}
}

// Create creates a new classifier
func (s *ClassifierService) Create(ctx context.Context, req CreateClassifierRequest) (*ClassifierResponse, error) {
	existing, err := s.classifierRepo.FindByName(ctx, strings.TrimSpace(req.Name))
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Classifier with this name already exists")
	}

	classifier, err := catalog.NewClassifier(req.Name)
	if err != nil {
		return nil, err
	}

	if err := s.classifierRepo.Save(ctx, classifier); err != nil {
		return nil, err
	}
	publishEvents(ctx, s.publisher, classifier)

	response := ToClassifierResponse(classifier)
	return &response, nil
}

// GetByID retrieves a classifier by ID
func (s *ClassifierService) GetByID(ctx context.Context, id uuid.UUID) (*ClassifierResponse, error) {
	classifier, err := s.classifierRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToClassifierResponse(classifier)
	return &response, nil
}

// List retrieves classifiers with pagination
func (s *ClassifierService) List(ctx context.Context, filter ListFilter) ([]ClassifierResponse, int64, error) {
	domainFilter := filter.toDomain()

	classifiers, err := s.classifierRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.classifierRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToClassifierResponses(classifiers), total, nil
}
