package partner

import (
	"context"

	"github.com/google/uuid"
	"github.com/procure/backend/internal/domain/shared"
)

// SupplierRepository defines the interface for supplier persistence
type SupplierRepository interface {
	// FindByID finds a supplier by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Supplier, error)

	// FindByIDs finds multiple suppliers by their IDs
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Supplier, error)

	// FindAll finds all suppliers matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Supplier, error)

	// Save creates or updates a supplier
	Save(ctx context.Context, supplier *Supplier) error

	// Delete deletes a supplier
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts suppliers matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// BusinessUnitRepository defines the interface for business unit persistence
type BusinessUnitRepository interface {
	// FindByID finds a business unit by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*BusinessUnit, error)

	// FindByIDs finds multiple business units by their IDs
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]BusinessUnit, error)

	// FindByName finds a business unit by its exact name
	FindByName(ctx context.Context, name string) (*BusinessUnit, error)

	// FindAll finds all business units matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]BusinessUnit, error)

	// Save creates or updates a business unit
	Save(ctx context.Context, unit *BusinessUnit) error

	// Delete deletes a business unit
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts business units matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
