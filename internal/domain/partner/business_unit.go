package partner

import (
	"strings"
	"time"

	"github.com/procure/backend/internal/domain/shared"
)

// BusinessUnit is an internal cost-bearing unit. Payment schedule details and
// budgets are attributed to business units.
type BusinessUnit struct {
	shared.BaseAggregateRoot
	Name string `gorm:"type:varchar(200);not null;uniqueIndex:idx_business_units_name"`
}

// TableName returns the table name for GORM
func (BusinessUnit) TableName() string {
	return "business_units"
}

// NewBusinessUnit creates a new business unit
func NewBusinessUnit(name string) (*BusinessUnit, error) {
	if err := validateSupplierName(name); err != nil {
		return nil, err
	}

	unit := &BusinessUnit{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              strings.TrimSpace(name),
	}

	unit.AddDomainEvent(NewBusinessUnitCreatedEvent(unit))

	return unit, nil
}

// Rename changes the business unit's name
func (b *BusinessUnit) Rename(name string) error {
	if err := validateSupplierName(name); err != nil {
		return err
	}

	b.Name = strings.TrimSpace(name)
	b.UpdatedAt = time.Now()
	b.IncrementVersion()

	return nil
}
