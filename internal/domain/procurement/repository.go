package procurement

import (
	"context"

	"github.com/google/uuid"
	"github.com/procure/backend/internal/domain/shared"
)

// RequisitionRepository defines the interface for requisition persistence
type RequisitionRepository interface {
	// FindByID finds a requisition with its items
	FindByID(ctx context.Context, id uuid.UUID) (*Requisition, error)

	// FindAll finds all requisitions matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Requisition, error)

	// FindByStatus finds requisitions in the given status
	FindByStatus(ctx context.Context, status RequisitionStatus, filter shared.Filter) ([]Requisition, error)

	// Save creates or updates a requisition with its items
	Save(ctx context.Context, requisition *Requisition) error

	// Delete deletes a requisition
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts requisitions matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// QuotationRepository defines the interface for quotation persistence
type QuotationRepository interface {
	// FindByID finds a quotation with its suppliers and their items
	FindByID(ctx context.Context, id uuid.UUID) (*Quotation, error)

	// FindByRequisitionID finds the quotation opened for a requisition
	FindByRequisitionID(ctx context.Context, requisitionID uuid.UUID) (*Quotation, error)

	// ExistsByRequisitionID reports whether a quotation exists for a requisition
	ExistsByRequisitionID(ctx context.Context, requisitionID uuid.UUID) (bool, error)

	// FindAll finds all quotations matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Quotation, error)

	// Save creates or updates a quotation with its suppliers and items
	Save(ctx context.Context, quotation *Quotation) error

	// Delete deletes a quotation
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts quotations matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
