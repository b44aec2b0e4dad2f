package procurement

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/procure/backend/internal/domain/shared"
)

// RequisitionStatus represents the workflow state of a requisition
type RequisitionStatus string

const (
	RequisitionStatusDraft    RequisitionStatus = "draft"
	RequisitionStatusInReview RequisitionStatus = "in_review"
	RequisitionStatusApproved RequisitionStatus = "approved"
	RequisitionStatusRejected RequisitionStatus = "rejected"
)

// IsValid checks if the status is a known value
func (s RequisitionStatus) IsValid() bool {
	switch s {
	case RequisitionStatusDraft, RequisitionStatusInReview,
		RequisitionStatusApproved, RequisitionStatusRejected:
		return true
	}
	return false
}

// String returns the string representation
func (s RequisitionStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status
func (s RequisitionStatus) CanTransitionTo(target RequisitionStatus) bool {
	switch s {
	case RequisitionStatusDraft:
		return target == RequisitionStatusInReview
	case RequisitionStatusInReview:
		return target == RequisitionStatusApproved || target == RequisitionStatusRejected
	default:
		return false
	}
}

// RequisitionItem is a line on a requisition: one article and the quantity
// requested. Quantities flow downstream unchanged into quotations and
// purchase orders.
type RequisitionItem struct {
	shared.BaseEntity
	RequisitionID uuid.UUID `gorm:"type:uuid;not null;index"`
	ArticleID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Quantity      int       `gorm:"not null;check:quantity > 0"`
}

// TableName returns the table name for GORM
func (RequisitionItem) TableName() string {
	return "requisition_items"
}

// Requisition is a department's request to purchase articles under a single
// classifier. It is the aggregate root of the requisition workflow.
type Requisition struct {
	shared.BaseAggregateRoot
	DepartmentID uuid.UUID         `gorm:"type:uuid;not null;index"`
	ClassifierID uuid.UUID         `gorm:"type:uuid;not null;index"`
	Description  string            `gorm:"type:text"`
	Status       RequisitionStatus `gorm:"type:varchar(20);not null;default:'draft';index"`
	Items        []RequisitionItem `gorm:"foreignKey:RequisitionID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (Requisition) TableName() string {
	return "requisitions"
}

// RequisitionLine is the input for one requisition item
type RequisitionLine struct {
	ArticleID uuid.UUID
	Quantity  int
}

// NewRequisition creates a requisition in draft state.
// Article existence and classifier membership are checked by the application
// layer against the catalog; the aggregate enforces line shape only.
func NewRequisition(departmentID, classifierID uuid.UUID, description string, lines []RequisitionLine) (*Requisition, error) {
	if departmentID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_DEPARTMENT", "Department ID cannot be nil")
	}
	if classifierID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CLASSIFIER", "Classifier ID cannot be nil")
	}
	if len(lines) == 0 {
		return nil, shared.NewDomainError("EMPTY_REQUISITION", "Requisition must have at least one item")
	}

	seen := make(map[uuid.UUID]bool, len(lines))
	items := make([]RequisitionItem, 0, len(lines))
	for _, line := range lines {
		if line.ArticleID == uuid.Nil {
			return nil, shared.NewDomainError("INVALID_ARTICLE", "Article ID cannot be nil")
		}
		if line.Quantity <= 0 {
			return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be greater than zero")
		}
		if seen[line.ArticleID] {
			return nil, shared.NewDomainError("DUPLICATE_ARTICLE", "Article appears more than once")
		}
		seen[line.ArticleID] = true

		items = append(items, RequisitionItem{
			BaseEntity: shared.NewBaseEntity(),
			ArticleID:  line.ArticleID,
			Quantity:   line.Quantity,
		})
	}

	requisition := &Requisition{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		DepartmentID:      departmentID,
		ClassifierID:      classifierID,
		Description:       strings.TrimSpace(description),
		Status:            RequisitionStatusDraft,
		Items:             items,
	}
	for i := range requisition.Items {
		requisition.Items[i].RequisitionID = requisition.ID
	}

	requisition.AddDomainEvent(NewRequisitionCreatedEvent(requisition))

	return requisition, nil
}

// SendToReview moves the requisition from draft to in review
func (r *Requisition) SendToReview() error {
	return r.transition(RequisitionStatusInReview)
}

// Approve moves the requisition from in review to approved
func (r *Requisition) Approve() error {
	return r.transition(RequisitionStatusApproved)
}

// Reject moves the requisition from in review to rejected
func (r *Requisition) Reject() error {
	return r.transition(RequisitionStatusRejected)
}

// IsApproved reports whether the requisition has been approved
func (r *Requisition) IsApproved() bool {
	return r.Status == RequisitionStatusApproved
}

// QuantityByArticle returns the requested quantity per article
func (r *Requisition) QuantityByArticle() map[uuid.UUID]int {
	quantities := make(map[uuid.UUID]int, len(r.Items))
	for _, item := range r.Items {
		quantities[item.ArticleID] = item.Quantity
	}
	return quantities
}

func (r *Requisition) transition(target RequisitionStatus) error {
	if !r.Status.CanTransitionTo(target) {
		return shared.NewDomainError("INVALID_STATE",
			"Cannot transition requisition from "+r.Status.String()+" to "+target.String())
	}

	oldStatus := r.Status
	r.Status = target
	r.UpdatedAt = time.Now()
	r.IncrementVersion()

	r.AddDomainEvent(NewRequisitionStatusChangedEvent(r, oldStatus, target))

	return nil
}
