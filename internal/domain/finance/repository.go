package finance

import (
	"context"

	"github.com/google/uuid"
	"github.com/procure/backend/internal/domain/shared"
)

// PaymentScheduleRepository defines the interface for schedule persistence
type PaymentScheduleRepository interface {
	// FindByID finds a schedule with its details
	FindByID(ctx context.Context, id uuid.UUID) (*PaymentSchedule, error)

	// FindByPurchaseOrderID finds the schedule for a purchase order
	FindByPurchaseOrderID(ctx context.Context, purchaseOrderID uuid.UUID) (*PaymentSchedule, error)

	// ExistsByPurchaseOrderID reports whether a schedule exists for the order
	ExistsByPurchaseOrderID(ctx context.Context, purchaseOrderID uuid.UUID) (bool, error)

	// FindByDetailID finds the schedule owning a detail
	FindByDetailID(ctx context.Context, detailID uuid.UUID) (*PaymentSchedule, error)

	// FindAll finds all schedules matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]PaymentSchedule, error)

	// Save creates or updates a schedule with its details
	Save(ctx context.Context, schedule *PaymentSchedule) error

	// Delete deletes a schedule
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts schedules matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// BudgetRepository defines the interface for budget persistence
type BudgetRepository interface {
	// FindByID finds a budget by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Budget, error)

	// FindByDimensions finds the budget for an exact dimension combination
	FindByDimensions(ctx context.Context, departmentID, classifierID, businessUnitID uuid.UUID, period string) (*Budget, error)

	// FindAll finds all budgets matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Budget, error)

	// Save creates or updates a budget
	Save(ctx context.Context, budget *Budget) error

	// Delete deletes a budget
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts budgets matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
