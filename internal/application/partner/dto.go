package partner

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/procure/backend/internal/domain/partner"
	"github.com/procure/backend/internal/domain/shared"
)

// CreateSupplierRequest is the input for creating a supplier
type CreateSupplierRequest struct {
	Name    string `json:"name" binding:"required,max=200"`
	Contact string `json:"contact,omitempty" binding:"omitempty,max=200"`
}

// SupplierResponse represents a supplier in API responses
type SupplierResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Contact   string    `json:"contact,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToSupplierResponse converts a domain supplier to a response DTO
func ToSupplierResponse(s *partner.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:        s.ID,
		Name:      s.Name,
		Contact:   s.Contact,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// ToSupplierResponses converts a slice of suppliers
func ToSupplierResponses(suppliers []partner.Supplier) []SupplierResponse {
	responses := make([]SupplierResponse, 0, len(suppliers))
	for i := range suppliers {
		responses = append(responses, ToSupplierResponse(&suppliers[i]))
	}
	return responses
}

// CreateBusinessUnitRequest is the input for creating a business unit
type CreateBusinessUnitRequest struct {
	Name string `json:"name" binding:"required,max=200"`
}

// BusinessUnitResponse represents a business unit in API responses
type BusinessUnitResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToBusinessUnitResponse converts a domain business unit to a response DTO
func ToBusinessUnitResponse(b *partner.BusinessUnit) BusinessUnitResponse {
	return BusinessUnitResponse{
		ID:        b.ID,
		Name:      b.Name,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

// ToBusinessUnitResponses converts a slice of business units
func ToBusinessUnitResponses(units []partner.BusinessUnit) []BusinessUnitResponse {
	responses := make([]BusinessUnitResponse, 0, len(units))
	for i := range units {
		responses = append(responses, ToBusinessUnitResponse(&units[i]))
	}
	return responses
}

// ListFilter is the common pagination input for partner listings
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
