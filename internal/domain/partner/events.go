package partner

import (
	"github.com/google/uuid"
	"github.com/procure/backend/internal/domain/shared"
)

// Aggregate type constants
const (
	AggregateTypeSupplier     = "Supplier"
	AggregateTypeBusinessUnit = "BusinessUnit"
)

// Event type constants
const (
	EventTypeSupplierCreated     = "SupplierCreated"
	EventTypeBusinessUnitCreated = "BusinessUnitCreated"
)

// SupplierCreatedEvent is published when a new supplier is created
type SupplierCreatedEvent struct {
	shared.BaseDomainEvent
	SupplierID uuid.UUID `json:"supplier_id"`
	Name       string    `json:"name"`
}

// NewSupplierCreatedEvent creates a new SupplierCreatedEvent
func NewSupplierCreatedEvent(supplier *Supplier) *SupplierCreatedEvent {
	return &SupplierCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSupplierCreated, AggregateTypeSupplier, supplier.ID),
		SupplierID:      supplier.ID,
		Name:            supplier.Name,
	}
}

// BusinessUnitCreatedEvent is published when a new business unit is created
type BusinessUnitCreatedEvent struct {
	shared.BaseDomainEvent
	BusinessUnitID uuid.UUID `json:"business_unit_id"`
	Name           string    `json:"name"`
}

// NewBusinessUnitCreatedEvent creates a new BusinessUnitCreatedEvent
func NewBusinessUnitCreatedEvent(unit *BusinessUnit) *BusinessUnitCreatedEvent {
	return &BusinessUnitCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeBusinessUnitCreated, AggregateTypeBusinessUnit, unit.ID),
		BusinessUnitID:  unit.ID,
		Name:            unit.Name,
	}
}
