package identity

import (
	"context"

	"github.com/google/uuid"
	"github.com/procure/backend/internal/domain/shared"
)

// DepartmentRepository defines the interface for department persistence
type DepartmentRepository interface {
	// FindByID finds a department by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Department, error)

	// FindByIDs finds multiple departments by their IDs
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Department, error)

	// FindByName finds a department by its exact name
	FindByName(ctx context.Context, name string) (*Department, error)

	// FindAll finds all departments matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Department, error)

	// Save creates or updates a department
	Save(ctx context.Context, department *Department) error

	// Delete deletes a department
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts departments matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// ProfileRepository defines the interface for profile persistence
type ProfileRepository interface {
	// FindByID finds a profile by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Profile, error)

	// FindByIDs finds multiple profiles by their IDs
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Profile, error)

	// FindByName finds a profile by its exact name
	FindByName(ctx context.Context, name string) (*Profile, error)

	// FindAll finds all profiles matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Profile, error)

	// Save creates or updates a profile
	Save(ctx context.Context, profile *Profile) error

	// Delete deletes a profile
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts profiles matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// UserRoleRepository defines the interface for user role persistence
type UserRoleRepository interface {
	// FindByID finds a role assignment by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*UserRole, error)

	// FindByUser finds all role assignments for a user
	FindByUser(ctx context.Context, userID string) ([]UserRole, error)

	// FindByUserAndRole finds a specific assignment
	FindByUserAndRole(ctx context.Context, userID, role string) (*UserRole, error)

	// FindAll finds all role assignments matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]UserRole, error)

	// Save creates or updates a role assignment
	Save(ctx context.Context, assignment *UserRole) error

	// Delete deletes a role assignment
	Delete(ctx context.Context, id uuid.UUID) error
}

// PermissionRepository defines the interface for permission persistence
type PermissionRepository interface {
	// FindByID finds a permission by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Permission, error)

	// FindByGrant finds the permission for an exact role and triple
	FindByGrant(ctx context.Context, role string, profileID, departmentID, classifierID uuid.UUID) (*Permission, error)

	// FindByRolesAndTriple finds a permission whose role is in roles and
	// whose triple matches exactly
	FindByRolesAndTriple(ctx context.Context, roles []string, profileID, departmentID, classifierID uuid.UUID) (*Permission, error)

	// FindAll finds all permissions matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Permission, error)

	// Save creates or updates a permission
	Save(ctx context.Context, permission *Permission) error

	// Delete deletes a permission
	Delete(ctx context.Context, id uuid.UUID) error
}
