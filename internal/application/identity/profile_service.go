package identity

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/procure/backend/internal/domain/identity"
	"github.com/procure/backend/internal/domain/shared"
)

// ProfileService handles profile operations
type ProfileService struct {
	profileRepo identity.ProfileRepository
	publisher   shared.EventPublisher
}

// NewProfileService creates a new ProfileService
func NewProfileService(profileRepo identity.ProfileRepository, publisher shared.EventPublisher) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
		publisher:   publisher,
	}
}

// Create creates a new profile
func (s *ProfileService) Create(ctx context.Context, req CreateProfileRequest) (*ProfileResponse, error) {
	existing, err := s.profileRepo.FindByName(ctx, strings.TrimSpace(req.Name))
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Profile with this name already exists")
	}

	profile, err := identity.NewProfile(req.Name, req.Description)
	if err != nil {
		return nil, err
	}

	if err := s.profileRepo.Save(ctx, profile); err != nil {
		return nil, err
	}
	publishEvents(ctx, s.publisher, profile)

	response := ToProfileResponse(profile)
	return &response, nil
}

// GetByID retrieves a profile by ID
func (s *ProfileService) GetByID(ctx context.Context, id uuid.UUID) (*ProfileResponse, error) {
	profile, err := s.profileRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToProfileResponse(profile)
	return &response, nil
}

// List retrieves profiles with pagination
func (s *ProfileService) List(ctx context.Context, filter ListFilter) ([]ProfileResponse, int64, error) {
	domainFilter := filter.toDomain()

	profiles, err := s.profileRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.profileRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToProfileResponses(profiles), total, nil
}
