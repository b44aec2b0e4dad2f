package trade

import (
	"context"

	"github.com/google/uuid"
	"github.com/procure/backend/internal/domain/shared"
)

// PurchaseOrderRepository defines the interface for purchase order persistence
type PurchaseOrderRepository interface {
	// FindByID finds a purchase order with its items
	FindByID(ctx context.Context, id uuid.UUID) (*PurchaseOrder, error)

	// FindByQuotationID finds all orders generated from a quotation
	FindByQuotationID(ctx context.Context, quotationID uuid.UUID) ([]PurchaseOrder, error)

	// ExistsByQuotationID reports whether any order references the quotation
	ExistsByQuotationID(ctx context.Context, quotationID uuid.UUID) (bool, error)

	// FindAll finds all purchase orders matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]PurchaseOrder, error)

	// Save creates or updates a purchase order with its items
	Save(ctx context.Context, order *PurchaseOrder) error

	// SaveAll persists several orders atomically
	SaveAll(ctx context.Context, orders []*PurchaseOrder) error

	// Delete deletes a purchase order
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts purchase orders matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
