package identity

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/procure/backend/internal/domain/catalog"
	"github.com/procure/backend/internal/domain/identity"
	"github.com/procure/backend/internal/domain/shared"
)

// PermissionService handles role assignments, permission grants and
// authorization checks.
type PermissionService struct {
	permissionRepo identity.PermissionRepository
	userRoleRepo   identity.UserRoleRepository
	profileRepo    identity.ProfileRepository
	departmentRepo identity.DepartmentRepository
	classifierRepo catalog.ClassifierRepository
	publisher      shared.EventPublisher
}

// NewPermissionService creates a new PermissionService
func NewPermissionService(
	permissionRepo identity.PermissionRepository,
	userRoleRepo identity.UserRoleRepository,
	profileRepo identity.ProfileRepository,
	departmentRepo identity.DepartmentRepository,
	classifierRepo catalog.ClassifierRepository,
	publisher shared.EventPublisher,
) *PermissionService {
	return &PermissionService{
		permissionRepo: permissionRepo,
		userRoleRepo:   userRoleRepo,
		profileRepo:    profileRepo,
		departmentRepo: departmentRepo,
		classifierRepo: classifierRepo,
		publisher:      publisher,
	}
}

// Grant lets a role act under a triple after verifying all referenced
// entities
func (s *PermissionService) Grant(ctx context.Context, req GrantPermissionRequest) (*PermissionResponse, error) {
	profile, err := s.profileRepo.FindByID(ctx, req.ProfileID)
	if err != nil {
		return nil, err
	}
	department, err := s.departmentRepo.FindByID(ctx, req.DepartmentID)
	if err != nil {
		return nil, err
	}
	classifier, err := s.classifierRepo.FindByID(ctx, req.ClassifierID)
	if err != nil {
		return nil, err
	}

	existing, err := s.permissionRepo.FindByGrant(ctx, req.Role, req.ProfileID, req.DepartmentID, req.ClassifierID)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Permission already granted")
	}

	permission, err := identity.NewPermission(req.Role, req.ProfileID, req.DepartmentID, req.ClassifierID)
	if err != nil {
		return nil, err
	}

	if err := s.permissionRepo.Save(ctx, permission); err != nil {
		return nil, err
	}
	publishEvents(ctx, s.publisher, permission)

	return &PermissionResponse{
		ID:             permission.ID,
		Role:           permission.Role,
		ProfileID:      permission.ProfileID,
		ProfileName:    profile.Name,
		DepartmentID:   permission.DepartmentID,
		DepartmentName: department.Name,
		ClassifierID:   permission.ClassifierID,
		ClassifierName: classifier.Name,
		CreatedAt:      permission.CreatedAt,
	}, nil
}

// List retrieves permissions with all names resolved
func (s *PermissionService) List(ctx context.Context, filter ListFilter) ([]PermissionResponse, error) {
	permissions, err := s.permissionRepo.FindAll(ctx, filter.toDomain())
	if err != nil {
		return nil, err
	}

	profileIDs := make([]uuid.UUID, 0, len(permissions))
	departmentIDs := make([]uuid.UUID, 0, len(permissions))
	classifierIDs := make([]uuid.UUID, 0, len(permissions))
	for i := range permissions {
		profileIDs = append(profileIDs, permissions[i].ProfileID)
		departmentIDs = append(departmentIDs, permissions[i].DepartmentID)
		classifierIDs = append(classifierIDs, permissions[i].ClassifierID)
	}

	profileNames, err := s.profileNames(ctx, profileIDs)
	if err != nil {
		return nil, err
	}
	departmentNames, err := s.departmentNames(ctx, departmentIDs)
	if err != nil {
		return nil, err
	}
	classifierNames, err := s.classifierNames(ctx, classifierIDs)
	if err != nil {
		return nil, err
	}

	responses := make([]PermissionResponse, 0, len(permissions))
	for i := range permissions {
		p := &permissions[i]
		responses = append(responses, PermissionResponse{
			ID:             p.ID,
			Role:           p.Role,
			ProfileID:      p.ProfileID,
			ProfileName:    profileNames[p.ProfileID],
			DepartmentID:   p.DepartmentID,
			DepartmentName: departmentNames[p.DepartmentID],
			ClassifierID:   p.ClassifierID,
			ClassifierName: classifierNames[p.ClassifierID],
			CreatedAt:      p.CreatedAt,
		})
	}
	return responses, nil
}

// AssignRole assigns a named role to a user
func (s *PermissionService) AssignRole(ctx context.Context, req AssignRoleRequest) (*UserRoleResponse, error) {
	existing, err := s.userRoleRepo.FindByUserAndRole(ctx, req.UserID, req.Role)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "User already has this role")
	}

	assignment, err := identity.NewUserRole(req.UserID, req.Role)
	if err != nil {
		return nil, err
	}

	if err := s.userRoleRepo.Save(ctx, assignment); err != nil {
		return nil, err
	}
	publishEvents(ctx, s.publisher, assignment)

	return &UserRoleResponse{
		ID:        assignment.ID,
		UserID:    assignment.UserID,
		Role:      assignment.Role,
		CreatedAt: assignment.CreatedAt,
	}, nil
}

// ListUserRoles retrieves a user's role assignments
func (s *PermissionService) ListUserRoles(ctx context.Context, userID string) ([]UserRoleResponse, error) {
	roles, err := s.userRoleRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]UserRoleResponse, 0, len(roles))
	for i := range roles {
		responses = append(responses, UserRoleResponse{
			ID:        roles[i].ID,
			UserID:    roles[i].UserID,
			Role:      roles[i].Role,
			CreatedAt: roles[i].CreatedAt,
		})
	}
	return responses, nil
}

// Authorize grants access iff one of the user's roles holds a permission
// for the exact (profile, department, classifier) triple. Users without
// any role assignment are always denied.
func (s *PermissionService) Authorize(ctx context.Context, userID string, req AuthorizeRequest) error {
	assignments, err := s.userRoleRepo.FindByUser(ctx, userID)
	if err != nil {
		return err
	}
	if len(assignments) == 0 {
		return shared.ErrForbidden
	}

	roles := make([]string, 0, len(assignments))
	for i := range assignments {
		roles = append(roles, assignments[i].Role)
	}

	permission, err := s.permissionRepo.FindByRolesAndTriple(ctx, roles, req.ProfileID, req.DepartmentID, req.ClassifierID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.ErrForbidden
		}
		return err
	}
	if permission == nil || !permission.GrantedTo(roles) || !permission.Matches(req.ProfileID, req.DepartmentID, req.ClassifierID) {
		return shared.ErrForbidden
	}
	return nil
}

func (s *PermissionService) profileNames(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	unique := dedupe(ids)
	if len(unique) == 0 {
		return map[uuid.UUID]string{}, nil
	}
	profiles, err := s.profileRepo.FindByIDs(ctx, unique)
	if err != nil {
		return nil, err
	}
	names := make(map[uuid.UUID]string, len(profiles))
	for i := range profiles {
		names[profiles[i].ID] = profiles[i].Name
	}
	return names, nil
}

func (s *PermissionService) departmentNames(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	unique := dedupe(ids)
	if len(unique) == 0 {
		return map[uuid.UUID]string{}, nil
	}
	departments, err := s.departmentRepo.FindByIDs(ctx, unique)
	if err != nil {
		return nil, err
	}
	names := make(map[uuid.UUID]string, len(departments))
	for i := range departments {
		names[departments[i].ID] = departments[i].Name
	}
	return names, nil
}

func (s *PermissionService) classifierNames(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	unique := dedupe(ids)
	if len(unique) == 0 {
		return map[uuid.UUID]string{}, nil
	}
	classifiers, err := s.classifierRepo.FindByIDs(ctx, unique)
	if err != nil {
		return nil, err
	}
	names := make(map[uuid.UUID]string, len(classifiers))
	for i := range classifiers {
		names[classifiers[i].ID] = classifiers[i].Name
	}
	return names, nil
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(ids))
	unique := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}
	return unique
}
