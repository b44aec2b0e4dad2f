package finance

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/procure/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Budget allocates an amount to a (department, classifier, business unit)
// combination for one period. The combination is unique per period.
type Budget struct {
	shared.BaseAggregateRoot
	DepartmentID   uuid.UUID       `gorm:"type:uuid;not null;index;uniqueIndex:idx_budgets_dimensions,priority:1"`
	ClassifierID   uuid.UUID       `gorm:"type:uuid;not null;index;uniqueIndex:idx_budgets_dimensions,priority:2"`
	BusinessUnitID uuid.UUID       `gorm:"type:uuid;not null;index;uniqueIndex:idx_budgets_dimensions,priority:3"`
	Period         string          `gorm:"type:varchar(50);not null;index;uniqueIndex:idx_budgets_dimensions,priority:4"`
	Amount         decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Description    string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Budget) TableName() string {
	return "budgets"
}

// NewBudget creates a new budget allocation
func NewBudget(departmentID, classifierID, businessUnitID uuid.UUID, period string, amount decimal.Decimal, description string) (*Budget, error) {
	if departmentID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_DEPARTMENT", "Department ID cannot be nil")
	}
	if classifierID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CLASSIFIER", "Classifier ID cannot be nil")
	}
	if businessUnitID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_BUSINESS_UNIT", "Business unit ID cannot be nil")
	}
	if strings.TrimSpace(period) == "" {
		return nil, shared.NewDomainError("INVALID_PERIOD", "Period cannot be empty")
	}
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Amount must be greater than zero")
	}

	budget := &Budget{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		DepartmentID:      departmentID,
		ClassifierID:      classifierID,
		BusinessUnitID:    businessUnitID,
		Period:            strings.TrimSpace(period),
		Amount:            amount,
		Description:       strings.TrimSpace(description),
	}

	budget.AddDomainEvent(NewBudgetCreatedEvent(budget))

	return budget, nil
}

// Update changes the amount and description. The dimensions and period are
// immutable once the budget exists.
func (b *Budget) Update(amount decimal.Decimal, description string) error {
	if !amount.IsPositive() {
		return shared.NewDomainError("INVALID_AMOUNT", "Amount must be greater than zero")
	}

	b.Amount = amount
	b.Description = strings.TrimSpace(description)
	b.UpdatedAt = time.Now()
	b.IncrementVersion()

	b.AddDomainEvent(NewBudgetUpdatedEvent(b))

	return nil
}
