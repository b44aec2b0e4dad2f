package identity

import (
	"strings"

	"github.com/google/uuid"
	"github.com/procure/backend/internal/domain/shared"
)

// UserRole assigns a named role to a user. User identifiers come from the
// token subject, so they are plain strings rather than catalog references,
// and the role is a free-form name shared with the permission records.
type UserRole struct {
	shared.BaseAggregateRoot
	UserID string `gorm:"type:varchar(200);not null;index;uniqueIndex:idx_user_roles_user_role,priority:1"`
	Role   string `gorm:"type:varchar(50);not null;uniqueIndex:idx_user_roles_user_role,priority:2"`
}

// TableName returns the table name for GORM
func (UserRole) TableName() string {
	return "user_roles"
}

// NewUserRole assigns a role name to a user
func NewUserRole(userID, role string) (*UserRole, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, shared.NewDomainError("INVALID_USER", "User ID cannot be empty")
	}
	if strings.TrimSpace(role) == "" {
		return nil, shared.NewDomainError("INVALID_ROLE", "Role name cannot be empty")
	}

	assignment := &UserRole{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		UserID:            strings.TrimSpace(userID),
		Role:              strings.TrimSpace(role),
	}

	assignment.AddDomainEvent(NewUserRoleAssignedEvent(assignment))

	return assignment, nil
}

// Permission lets holders of a role act under an exact (profile,
// department, classifier) triple. The role links users to the grant;
// authorization requires both the role and the full triple to match.
type Permission struct {
	shared.BaseAggregateRoot
	Role         string    `gorm:"type:varchar(50);not null;index;uniqueIndex:idx_permissions_grant,priority:1"`
	ProfileID    uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_permissions_grant,priority:2"`
	DepartmentID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_permissions_grant,priority:3"`
	ClassifierID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_permissions_grant,priority:4"`
}

// TableName returns the table name for GORM
func (Permission) TableName() string {
	return "permissions"
}

// NewPermission creates a permission for a role over an exact triple
func NewPermission(role string, profileID, departmentID, classifierID uuid.UUID) (*Permission, error) {
	if strings.TrimSpace(role) == "" {
		return nil, shared.NewDomainError("INVALID_ROLE", "Role name cannot be empty")
	}
	if profileID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PROFILE", "Profile ID cannot be nil")
	}
	if departmentID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_DEPARTMENT", "Department ID cannot be nil")
	}
	if classifierID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CLASSIFIER", "Classifier ID cannot be nil")
	}

	permission := &Permission{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Role:              strings.TrimSpace(role),
		ProfileID:         profileID,
		DepartmentID:      departmentID,
		ClassifierID:      classifierID,
	}

	permission.AddDomainEvent(NewPermissionGrantedEvent(permission))

	return permission, nil
}

// Matches reports whether the permission covers the exact triple
func (p *Permission) Matches(profileID, departmentID, classifierID uuid.UUID) bool {
	return p.ProfileID == profileID &&
		p.DepartmentID == departmentID &&
		p.ClassifierID == classifierID
}

// GrantedTo reports whether the permission's role appears in the given
// role set
func (p *Permission) GrantedTo(roles []string) bool {
	for _, role := range roles {
		if role == p.Role {
			return true
		}
	}
	return false
}
