package finance

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/procure/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ScheduleStatus represents the workflow state of a payment schedule
type ScheduleStatus string

const (
	ScheduleStatusDraft         ScheduleStatus = "draft"
	ScheduleStatusFirstApproval ScheduleStatus = "first_approval"
	ScheduleStatusApproved      ScheduleStatus = "approved"
)

// IsValid checks if the status is a known value
func (s ScheduleStatus) IsValid() bool {
	switch s {
	case ScheduleStatusDraft, ScheduleStatusFirstApproval, ScheduleStatusApproved:
		return true
	}
	return false
}

// String returns the string representation
func (s ScheduleStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status
func (s ScheduleStatus) CanTransitionTo(target ScheduleStatus) bool {
	switch s {
	case ScheduleStatusDraft:
		return target == ScheduleStatusFirstApproval
	case ScheduleStatusFirstApproval:
		return target == ScheduleStatusApproved
	default:
		return false
	}
}

// DetailStatus represents the payment state of one schedule detail
type DetailStatus string

const (
	DetailStatusPending DetailStatus = "pending"
	DetailStatusPaid    DetailStatus = "paid"
)

// PaymentDetail is one planned disbursement charged to a business unit.
// Realization data is written exactly once when the detail is marked paid.
type PaymentDetail struct {
	shared.BaseEntity
	ScheduleID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	BusinessUnitID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount           decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	DueDate          time.Time       `gorm:"not null"`
	Status           DetailStatus    `gorm:"type:varchar(20);not null;default:'pending';index"`
	PaidAt           *time.Time
	PaymentReference string `gorm:"type:varchar(200)"`
	PaymentNotes     string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (PaymentDetail) TableName() string {
	return "payment_details"
}

// PaymentSchedule plans the disbursements for one approved purchase order.
// One schedule exists per order, backed by a unique index. Both approval
// steps record who approved and when.
type PaymentSchedule struct {
	shared.BaseAggregateRoot
	PurchaseOrderID  uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_payment_schedules_order"`
	Notes            string         `gorm:"type:text"`
	Status           ScheduleStatus `gorm:"type:varchar(20);not null;default:'draft';index"`
	FirstApprovedBy  string         `gorm:"type:varchar(200)"`
	FirstApprovedAt  *time.Time
	SecondApprovedBy string `gorm:"type:varchar(200)"`
	SecondApprovedAt *time.Time
	Details          []PaymentDetail `gorm:"foreignKey:ScheduleID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (PaymentSchedule) TableName() string {
	return "payment_schedules"
}

// DetailLine is the input for one schedule detail
type DetailLine struct {
	BusinessUnitID uuid.UUID
	Amount         decimal.Decimal
	DueDate        time.Time
}

// NewPaymentSchedule creates a schedule in draft state. The caller verifies
// the purchase order is approved and the business units exist.
func NewPaymentSchedule(purchaseOrderID uuid.UUID, notes string, lines []DetailLine) (*PaymentSchedule, error) {
	if purchaseOrderID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PURCHASE_ORDER", "Purchase order ID cannot be nil")
	}
	if len(lines) == 0 {
		return nil, shared.NewDomainError("EMPTY_SCHEDULE", "Schedule must have at least one detail")
	}

	schedule := &PaymentSchedule{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		PurchaseOrderID:   purchaseOrderID,
		Notes:             strings.TrimSpace(notes),
		Status:            ScheduleStatusDraft,
		Details:           make([]PaymentDetail, 0, len(lines)),
	}

	for _, line := range lines {
		if line.BusinessUnitID == uuid.Nil {
			return nil, shared.NewDomainError("INVALID_BUSINESS_UNIT", "Business unit ID cannot be nil")
		}
		if !line.Amount.IsPositive() {
			return nil, shared.NewDomainError("INVALID_AMOUNT", "Amount must be greater than zero")
		}
		if line.DueDate.IsZero() {
			return nil, shared.NewDomainError("INVALID_DUE_DATE", "Due date is required")
		}

		schedule.Details = append(schedule.Details, PaymentDetail{
			BaseEntity:     shared.NewBaseEntity(),
			ScheduleID:     schedule.ID,
			BusinessUnitID: line.BusinessUnitID,
			Amount:         line.Amount,
			DueDate:        line.DueDate,
			Status:         DetailStatusPending,
		})
	}

	schedule.AddDomainEvent(NewPaymentScheduleCreatedEvent(schedule))

	return schedule, nil
}

// ApproveFirst records the first approval step
func (s *PaymentSchedule) ApproveFirst(approverID string) error {
	return s.approve(ScheduleStatusFirstApproval, approverID)
}

// ApproveSecond records the second approval step and finalizes the schedule
func (s *PaymentSchedule) ApproveSecond(approverID string) error {
	return s.approve(ScheduleStatusApproved, approverID)
}

// IsApproved reports whether both approval steps are done
func (s *PaymentSchedule) IsApproved() bool {
	return s.Status == ScheduleStatusApproved
}

// MarkDetailPaid records the realization of one pending detail. The schedule
// must be fully approved and a detail can be paid exactly once.
func (s *PaymentSchedule) MarkDetailPaid(detailID uuid.UUID, reference, notes string) (*PaymentDetail, error) {
	if !s.IsApproved() {
		return nil, shared.NewDomainError("INVALID_STATE", "Details can only be paid on an approved schedule")
	}

	var detail *PaymentDetail
	for i := range s.Details {
		if s.Details[i].ID == detailID {
			detail = &s.Details[i]
			break
		}
	}
	if detail == nil {
		return nil, shared.ErrNotFound
	}
	if detail.Status == DetailStatusPaid {
		return nil, shared.NewDomainError("ALREADY_PAID", "Detail has already been paid")
	}

	now := time.Now()
	detail.Status = DetailStatusPaid
	detail.PaidAt = &now
	detail.PaymentReference = strings.TrimSpace(reference)
	detail.PaymentNotes = strings.TrimSpace(notes)
	detail.UpdatedAt = now

	s.UpdatedAt = now
	s.IncrementVersion()

	s.AddDomainEvent(NewPaymentDetailPaidEvent(s, detail))

	return detail, nil
}

func (s *PaymentSchedule) approve(target ScheduleStatus, approverID string) error {
	if strings.TrimSpace(approverID) == "" {
		return shared.NewDomainError("INVALID_APPROVER", "Approver ID cannot be empty")
	}
	if !s.Status.CanTransitionTo(target) {
		return shared.NewDomainError("INVALID_STATE",
			"Cannot transition schedule from "+s.Status.String()+" to "+target.String())
	}

	now := time.Now()
	oldStatus := s.Status
	s.Status = target
	switch target {
	case ScheduleStatusFirstApproval:
		s.FirstApprovedBy = strings.TrimSpace(approverID)
		s.FirstApprovedAt = &now
	case ScheduleStatusApproved:
		s.SecondApprovedBy = strings.TrimSpace(approverID)
		s.SecondApprovedAt = &now
	}
	s.UpdatedAt = now
	s.IncrementVersion()

	s.AddDomainEvent(NewPaymentScheduleStatusChangedEvent(s, oldStatus, target))

	return nil
}
