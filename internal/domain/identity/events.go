package identity

import (
	"github.com/google/uuid"
	"github.com/procure/backend/internal/domain/shared"
)

// Aggregate type constants
const (
	AggregateTypeDepartment = "Department"
	AggregateTypeProfile    = "Profile"
	AggregateTypeUserRole   = "UserRole"
	AggregateTypePermission = "Permission"
)

// Event type constants
const (
	EventTypeDepartmentCreated = "DepartmentCreated"
	EventTypeProfileCreated    = "ProfileCreated"
	EventTypeUserRoleAssigned  = "UserRoleAssigned"
	EventTypePermissionGranted = "PermissionGranted"
)

// DepartmentCreatedEvent is published when a new department is created
type DepartmentCreatedEvent struct {
	shared.BaseDomainEvent
	DepartmentID uuid.UUID `json:"department_id"`
	Name         string    `json:"name"`
}

// NewDepartmentCreatedEvent creates a new DepartmentCreatedEvent
func NewDepartmentCreatedEvent(department *Department) *DepartmentCreatedEvent {
	return &DepartmentCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeDepartmentCreated, AggregateTypeDepartment, department.ID),
		DepartmentID:    department.ID,
		Name:            department.Name,
	}
}

// ProfileCreatedEvent is published when a new profile is created
type ProfileCreatedEvent struct {
	shared.BaseDomainEvent
	ProfileID uuid.UUID `json:"profile_id"`
	Name      string    `json:"name"`
}

// NewProfileCreatedEvent creates a new ProfileCreatedEvent
func NewProfileCreatedEvent(profile *Profile) *ProfileCreatedEvent {
	return &ProfileCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProfileCreated, AggregateTypeProfile, profile.ID),
		ProfileID:       profile.ID,
		Name:            profile.Name,
	}
}

// UserRoleAssignedEvent is published when a role is assigned to a user
type UserRoleAssignedEvent struct {
	shared.BaseDomainEvent
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

// NewUserRoleAssignedEvent creates a new UserRoleAssignedEvent
func NewUserRoleAssignedEvent(assignment *UserRole) *UserRoleAssignedEvent {
	return &UserRoleAssignedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeUserRoleAssigned, AggregateTypeUserRole, assignment.ID),
		UserID:          assignment.UserID,
		Role:            assignment.Role,
	}
}

// PermissionGrantedEvent is published when a role is granted a triple
type PermissionGrantedEvent struct {
	shared.BaseDomainEvent
	PermissionID uuid.UUID `json:"permission_id"`
	Role         string    `json:"role"`
	ProfileID    uuid.UUID `json:"profile_id"`
	DepartmentID uuid.UUID `json:"department_id"`
	ClassifierID uuid.UUID `json:"classifier_id"`
}

// NewPermissionGrantedEvent creates a new PermissionGrantedEvent
func NewPermissionGrantedEvent(permission *Permission) *PermissionGrantedEvent {
	return &PermissionGrantedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePermissionGranted, AggregateTypePermission, permission.ID),
		PermissionID:    permission.ID,
		Role:            permission.Role,
		ProfileID:       permission.ProfileID,
		DepartmentID:    permission.DepartmentID,
		ClassifierID:    permission.ClassifierID,
	}
}
