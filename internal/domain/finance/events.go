package finance

import (
	"github.com/google/uuid"
	"github.com/procure/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Aggregate type constants
const (
	AggregateTypePaymentSchedule = "PaymentSchedule"
	AggregateTypeBudget          = "Budget"
)

// Event type constants
const (
	EventTypePaymentScheduleCreated       = "PaymentScheduleCreated"
	EventTypePaymentScheduleStatusChanged = "PaymentScheduleStatusChanged"
	EventTypePaymentDetailPaid            = "PaymentDetailPaid"
	EventTypeBudgetCreated                = "BudgetCreated"
	EventTypeBudgetUpdated                = "BudgetUpdated"
)

// PaymentScheduleCreatedEvent is published when a schedule is created
type PaymentScheduleCreatedEvent struct {
	shared.BaseDomainEvent
	ScheduleID      uuid.UUID `json:"schedule_id"`
	PurchaseOrderID uuid.UUID `json:"purchase_order_id"`
	DetailCount     int       `json:"detail_count"`
}

// NewPaymentScheduleCreatedEvent creates a new PaymentScheduleCreatedEvent
func NewPaymentScheduleCreatedEvent(schedule *PaymentSchedule) *PaymentScheduleCreatedEvent {
	return &PaymentScheduleCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePaymentScheduleCreated, AggregateTypePaymentSchedule, schedule.ID),
		ScheduleID:      schedule.ID,
		PurchaseOrderID: schedule.PurchaseOrderID,
		DetailCount:     len(schedule.Details),
	}
}

// PaymentScheduleStatusChangedEvent is published on each approval step
type PaymentScheduleStatusChangedEvent struct {
	shared.BaseDomainEvent
	ScheduleID uuid.UUID      `json:"schedule_id"`
	OldStatus  ScheduleStatus `json:"old_status"`
	NewStatus  ScheduleStatus `json:"new_status"`
}

// NewPaymentScheduleStatusChangedEvent creates a new PaymentScheduleStatusChangedEvent
func NewPaymentScheduleStatusChangedEvent(schedule *PaymentSchedule, oldStatus, newStatus ScheduleStatus) *PaymentScheduleStatusChangedEvent {
	return &PaymentScheduleStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePaymentScheduleStatusChanged, AggregateTypePaymentSchedule, schedule.ID),
		ScheduleID:      schedule.ID,
		OldStatus:       oldStatus,
		NewStatus:       newStatus,
	}
}

// PaymentDetailPaidEvent is published when a detail is realized
type PaymentDetailPaidEvent struct {
	shared.BaseDomainEvent
	ScheduleID uuid.UUID       `json:"schedule_id"`
	DetailID   uuid.UUID       `json:"detail_id"`
	Amount     decimal.Decimal `json:"amount"`
	Reference  string          `json:"reference,omitempty"`
}

// NewPaymentDetailPaidEvent creates a new PaymentDetailPaidEvent
func NewPaymentDetailPaidEvent(schedule *PaymentSchedule, detail *PaymentDetail) *PaymentDetailPaidEvent {
	return &PaymentDetailPaidEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePaymentDetailPaid, AggregateTypePaymentSchedule, schedule.ID),
		ScheduleID:      schedule.ID,
		DetailID:        detail.ID,
		Amount:          detail.Amount,
		Reference:       detail.PaymentReference,
	}
}

// BudgetCreatedEvent is published when a budget is created
type BudgetCreatedEvent struct {
	shared.BaseDomainEvent
	BudgetID uuid.UUID       `json:"budget_id"`
	Period   string          `json:"period"`
	Amount   decimal.Decimal `json:"amount"`
}

// NewBudgetCreatedEvent creates a new BudgetCreatedEvent
func NewBudgetCreatedEvent(budget *Budget) *BudgetCreatedEvent {
	return &BudgetCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeBudgetCreated, AggregateTypeBudget, budget.ID),
		BudgetID:        budget.ID,
		Period:          budget.Period,
		Amount:          budget.Amount,
	}
}

// BudgetUpdatedEvent is published when a budget's amount changes
type BudgetUpdatedEvent struct {
	shared.BaseDomainEvent
	BudgetID uuid.UUID       `json:"budget_id"`
	Amount   decimal.Decimal `json:"amount"`
}

// NewBudgetUpdatedEvent creates a new BudgetUpdatedEvent
func NewBudgetUpdatedEvent(budget *Budget) *BudgetUpdatedEvent {
	return &BudgetUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeBudgetUpdated, AggregateTypeBudget, budget.ID),
		BudgetID:        budget.ID,
		Amount:          budget.Amount,
	}
}
