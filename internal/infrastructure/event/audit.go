package event

import (
	"context"

	"go.uber.org/zap"

	"github.com/procure/backend/internal/domain/finance"
	"github.com/procure/backend/internal/domain/procurement"
	"github.com/procure/backend/internal/domain/shared"
	"github.com/procure/backend/internal/domain/trade"
)

// AuditLogger is a wildcard event handler that writes a structured audit
// trail of every domain event. Workflow transitions get the old and new
// status recorded alongside the aggregate.
type AuditLogger struct {
	logger *zap.Logger
}

var _ shared.EventHandler = (*AuditLogger)(nil)

// NewAuditLogger creates an audit logger backed by the given zap logger
func NewAuditLogger(logger *zap.Logger) *AuditLogger {
	return &AuditLogger{logger: logger.Named("audit")}
}

// EventTypes returns an empty slice so the handler receives all events
func (a *AuditLogger) EventTypes() []string {
	return nil
}

// Handle records the event in the audit log
func (a *AuditLogger) Handle(ctx context.Context, event shared.DomainEvent) error {
	fields := []zap.Field{
		zap.String("event_id", event.EventID().String()),
		zap.String("aggregate_type", event.AggregateType()),
		zap.String("aggregate_id", event.AggregateID().String()),
		zap.Time("occurred_at", event.OccurredAt()),
	}
	fields = append(fields, transitionFields(event)...)

	a.logger.Info(event.EventType(), fields...)
	return nil
}

func transitionFields(event shared.DomainEvent) []zap.Field {
	switch e := event.(type) {
	case *procurement.RequisitionStatusChangedEvent:
		return statusFields(string(e.OldStatus), string(e.NewStatus))
	case *procurement.QuotationStatusChangedEvent:
		return statusFields(string(e.OldStatus), string(e.NewStatus))
	case *trade.PurchaseOrderStatusChangedEvent:
		return statusFields(string(e.OldStatus), string(e.NewStatus))
	case *finance.PaymentScheduleStatusChangedEvent:
		return statusFields(string(e.OldStatus), string(e.NewStatus))
	default:
		return nil
	}
}

func statusFields(oldStatus, newStatus string) []zap.Field {
	return []zap.Field{
		zap.String("old_status", oldStatus),
		zap.String("new_status", newStatus),
	}
}
