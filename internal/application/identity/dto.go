package identity

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/procure/backend/internal/domain/identity"
	"github.com/procure/backend/internal/domain/shared"
)

// CreateDepartmentRequest is the input for creating a department
type CreateDepartmentRequest struct {
	Name string `json:"name" binding:"required,max=200"`
}

// DepartmentResponse represents a department in API responses
type DepartmentResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToDepartmentResponse converts a domain department to a response DTO
func ToDepartmentResponse(d *identity.Department) DepartmentResponse {
	return DepartmentResponse{
		ID:        d.ID,
		Name:      d.Name,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// ToDepartmentResponses converts a slice of departments
func ToDepartmentResponses(departments []identity.Department) []DepartmentResponse {
	responses := make([]DepartmentResponse, 0, len(departments))
	for i := range departments {
		responses = append(responses, ToDepartmentResponse(&departments[i]))
	}
	return responses
}

// CreateProfileRequest is the input for creating a profile
type CreateProfileRequest struct {
	Name        string `json:"name" binding:"required,max=200"`
	Description string `json:"description,omitempty"`
}

// ProfileResponse represents a profile in API responses
type ProfileResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToProfileResponse converts a domain profile to a response DTO
func ToProfileResponse(p *identity.Profile) ProfileResponse {
	return ProfileResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ToProfileResponses converts a slice of profiles
func ToProfileResponses(profiles []identity.Profile) []ProfileResponse {
	responses := make([]ProfileResponse, 0, len(profiles))
	for i := range profiles {
		responses = append(responses, ToProfileResponse(&profiles[i]))
	}
	return responses
}

// AssignRoleRequest assigns a named role to a user
type AssignRoleRequest struct {
	UserID string `json:"user_id" binding:"required,max=200"`
	Role   string `json:"role" binding:"required,max=50"`
}

// UserRoleResponse represents a role assignment
type UserRoleResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    string    `json:"user_id"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// GrantPermissionRequest grants a role a (profile, department, classifier)
// triple
type GrantPermissionRequest struct {
	Role         string    `json:"role" binding:"required,max=50"`
	ProfileID    uuid.UUID `json:"profile_id" binding:"required"`
	DepartmentID uuid.UUID `json:"department_id" binding:"required"`
	ClassifierID uuid.UUID `json:"classifier_id" binding:"required"`
}

// PermissionResponse represents a permission with all names resolved
type PermissionResponse struct {
	ID             uuid.UUID `json:"id"`
	Role           string    `json:"role"`
	ProfileID      uuid.UUID `json:"profile_id"`
	ProfileName    string    `json:"profile_name,omitempty"`
	DepartmentID   uuid.UUID `json:"department_id"`
	DepartmentName string    `json:"department_name,omitempty"`
	ClassifierID   uuid.UUID `json:"classifier_id"`
	ClassifierName string    `json:"classifier_name,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// AuthorizeRequest checks one permission triple for a user
type AuthorizeRequest struct {
	ProfileID    uuid.UUID `json:"profile_id" form:"profile_id" binding:"required"`
	DepartmentID uuid.UUID `json:"department_id" form:"department_id" binding:"required"`
	ClassifierID uuid.UUID `json:"classifier_id" form:"classifier_id" binding:"required"`
}

// LoginRequest is the credential input for the demo login
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued token pair
type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

// ListFilter is the common pagination input for identity listings
type ListFilter struct {
	Page     int    `form:"page,omitempty" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size,omitempty" binding:"omitempty,min=1,max=100"`
	Search   string `form:"search,omitempty"`
}

func (f ListFilter) toDomain() shared.Filter {
	filter := shared.DefaultFilter()
	if f.Page > 0 {
		filter.Page = f.Page
	}
	if f.PageSize > 0 {
		filter.PageSize = f.PageSize
	}
	filter.Search = f.Search
	return filter
}

func publishEvents(ctx context.Context, publisher shared.EventPublisher, aggregate shared.AggregateRoot) {
	if publisher == nil {
		return
	}
	events := aggregate.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	_ = publisher.Publish(ctx, events...)
	aggregate.ClearDomainEvents()
}
