package procurement

import (
	"github.com/google/uuid"
	"github.com/procure/backend/internal/domain/shared"
)

// Aggregate type constants
const (
	AggregateTypeRequisition = "Requisition"
	AggregateTypeQuotation   = "Quotation"
)

// Event type constants
const (
	EventTypeRequisitionCreated       = "RequisitionCreated"
	EventTypeRequisitionStatusChanged = "RequisitionStatusChanged"
	EventTypeQuotationCreated         = "QuotationCreated"
	EventTypeQuotationSupplierAdded   = "QuotationSupplierAdded"
	EventTypeQuotationQuotesLoaded    = "QuotationQuotesLoaded"
	EventTypeQuotationStatusChanged   = "QuotationStatusChanged"
)

// RequisitionCreatedEvent is published when a new requisition is created
type RequisitionCreatedEvent struct {
	shared.BaseDomainEvent
	RequisitionID uuid.UUID `json:"requisition_id"`
	DepartmentID  uuid.UUID `json:"department_id"`
	ClassifierID  uuid.UUID `json:"classifier_id"`
	ItemCount     int       `json:"item_count"`
}

// NewRequisitionCreatedEvent creates a new RequisitionCreatedEvent
func NewRequisitionCreatedEvent(requisition *Requisition) *RequisitionCreatedEvent {
	return &RequisitionCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeRequisitionCreated, AggregateTypeRequisition, requisition.ID),
		RequisitionID:   requisition.ID,
		DepartmentID:    requisition.DepartmentID,
		ClassifierID:    requisition.ClassifierID,
		ItemCount:       len(requisition.Items),
	}
}

// RequisitionStatusChangedEvent is published on every workflow transition
type RequisitionStatusChangedEvent struct {
	shared.BaseDomainEvent
	RequisitionID uuid.UUID         `json:"requisition_id"`
	OldStatus     RequisitionStatus `json:"old_status"`
	NewStatus     RequisitionStatus `json:"new_status"`
}

// NewRequisitionStatusChangedEvent creates a new RequisitionStatusChangedEvent
func NewRequisitionStatusChangedEvent(requisition *Requisition, oldStatus, newStatus RequisitionStatus) *RequisitionStatusChangedEvent {
	return &RequisitionStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeRequisitionStatusChanged, AggregateTypeRequisition, requisition.ID),
		RequisitionID:   requisition.ID,
		OldStatus:       oldStatus,
		NewStatus:       newStatus,
	}
}

// QuotationCreatedEvent is published when a quotation is opened
type QuotationCreatedEvent struct {
	shared.BaseDomainEvent
	QuotationID   uuid.UUID `json:"quotation_id"`
	RequisitionID uuid.UUID `json:"requisition_id"`
}

// NewQuotationCreatedEvent creates a new QuotationCreatedEvent
func NewQuotationCreatedEvent(quotation *Quotation) *QuotationCreatedEvent {
	return &QuotationCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeQuotationCreated, AggregateTypeQuotation, quotation.ID),
		QuotationID:     quotation.ID,
		RequisitionID:   quotation.RequisitionID,
	}
}

// QuotationSupplierAddedEvent is published when a supplier joins a quotation
type QuotationSupplierAddedEvent struct {
	shared.BaseDomainEvent
	QuotationID uuid.UUID `json:"quotation_id"`
	SupplierID  uuid.UUID `json:"supplier_id"`
}

// NewQuotationSupplierAddedEvent creates a new QuotationSupplierAddedEvent
func NewQuotationSupplierAddedEvent(quotation *Quotation, supplierID uuid.UUID) *QuotationSupplierAddedEvent {
	return &QuotationSupplierAddedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeQuotationSupplierAdded, AggregateTypeQuotation, quotation.ID),
		QuotationID:     quotation.ID,
		SupplierID:      supplierID,
	}
}

// QuotationQuotesLoadedEvent is published when a supplier's quotes are loaded
type QuotationQuotesLoadedEvent struct {
	shared.BaseDomainEvent
	QuotationID uuid.UUID `json:"quotation_id"`
	SupplierID  uuid.UUID `json:"supplier_id"`
	LineCount   int       `json:"line_count"`
}

// NewQuotationQuotesLoadedEvent creates a new QuotationQuotesLoadedEvent
func NewQuotationQuotesLoadedEvent(quotation *Quotation, supplierID uuid.UUID, lineCount int) *QuotationQuotesLoadedEvent {
	return &QuotationQuotesLoadedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeQuotationQuotesLoaded, AggregateTypeQuotation, quotation.ID),
		QuotationID:     quotation.ID,
		SupplierID:      supplierID,
		LineCount:       lineCount,
	}
}

// QuotationStatusChangedEvent is published on every workflow transition
type QuotationStatusChangedEvent struct {
	shared.BaseDomainEvent
	QuotationID uuid.UUID       `json:"quotation_id"`
	OldStatus   QuotationStatus `json:"old_status"`
	NewStatus   QuotationStatus `json:"new_status"`
}

// NewQuotationStatusChangedEvent creates a new QuotationStatusChangedEvent
func NewQuotationStatusChangedEvent(quotation *Quotation, oldStatus, newStatus QuotationStatus) *QuotationStatusChangedEvent {
	return &QuotationStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeQuotationStatusChanged, AggregateTypeQuotation, quotation.ID),
		QuotationID:     quotation.ID,
		OldStatus:       oldStatus,
		NewStatus:       newStatus,
	}
}
