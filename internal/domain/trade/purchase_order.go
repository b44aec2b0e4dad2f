package trade

import (
	"time"

	"github.com/google/uuid"
	"github.com/procure/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// PurchaseOrderStatus represents the workflow state of a purchase order
type PurchaseOrderStatus string

const (
	PurchaseOrderStatusDraft    PurchaseOrderStatus = "draft"
	PurchaseOrderStatusInReview PurchaseOrderStatus = "in_review"
	PurchaseOrderStatusApproved PurchaseOrderStatus = "approved"
	PurchaseOrderStatusRejected PurchaseOrderStatus = "rejected"
)

// IsValid checks if the status is a known value
func (s PurchaseOrderStatus) IsValid() bool {
	switch s {
	case PurchaseOrderStatusDraft, PurchaseOrderStatusInReview,
		PurchaseOrderStatusApproved, PurchaseOrderStatusRejected:
		return true
	}
	return false
}

// String returns the string representation
func (s PurchaseOrderStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status
func (s PurchaseOrderStatus) CanTransitionTo(target PurchaseOrderStatus) bool {
	switch s {
	case PurchaseOrderStatusDraft:
		return target == PurchaseOrderStatusInReview
	case PurchaseOrderStatusInReview:
		return target == PurchaseOrderStatusApproved || target == PurchaseOrderStatusRejected
	default:
		return false
	}
}

// PurchaseOrderItem is one awarded line: the requisition quantity at the
// supplier's quoted unit price.
type PurchaseOrderItem struct {
	shared.BaseEntity
	PurchaseOrderID uuid.UUID       `gorm:"type:uuid;not null;index"`
	ArticleID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity        int             `gorm:"not null;check:quantity > 0"`
	UnitPrice       decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	LineTotal       decimal.Decimal `gorm:"type:decimal(18,4);not null"`
}

// TableName returns the table name for GORM
func (PurchaseOrderItem) TableName() string {
	return "purchase_order_items"
}

// PurchaseOrder groups the lines awarded to one supplier out of an approved
// quotation. Orders are generated, never created by hand.
type PurchaseOrder struct {
	shared.BaseAggregateRoot
	QuotationID   uuid.UUID           `gorm:"type:uuid;not null;index"`
	RequisitionID uuid.UUID           `gorm:"type:uuid;not null;index"`
	SupplierID    uuid.UUID           `gorm:"type:uuid;not null;index"`
	Status        PurchaseOrderStatus `gorm:"type:varchar(20);not null;default:'draft';index"`
	Total         decimal.Decimal     `gorm:"type:decimal(18,4);not null"`
	Items         []PurchaseOrderItem `gorm:"foreignKey:PurchaseOrderID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (PurchaseOrder) TableName() string {
	return "purchase_orders"
}

// OrderLine is the input for one purchase order line
type OrderLine struct {
	ArticleID uuid.UUID
	Quantity  int
	UnitPrice decimal.Decimal
}

// NewPurchaseOrder creates a draft purchase order for one supplier
func NewPurchaseOrder(quotationID, requisitionID, supplierID uuid.UUID, lines []OrderLine) (*PurchaseOrder, error) {
	if quotationID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_QUOTATION", "Quotation ID cannot be nil")
	}
	if requisitionID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_REQUISITION", "Requisition ID cannot be nil")
	}
	if supplierID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SUPPLIER", "Supplier ID cannot be nil")
	}
	if len(lines) == 0 {
		return nil, shared.NewDomainError("EMPTY_ORDER", "Purchase order must have at least one line")
	}

	order := &PurchaseOrder{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		QuotationID:       quotationID,
		RequisitionID:     requisitionID,
		SupplierID:        supplierID,
		Status:            PurchaseOrderStatusDraft,
		Total:             decimal.Zero,
		Items:             make([]PurchaseOrderItem, 0, len(lines)),
	}

	for _, line := range lines {
		if line.ArticleID == uuid.Nil {
			return nil, shared.NewDomainError("INVALID_ARTICLE", "Article ID cannot be nil")
		}
		if line.Quantity <= 0 {
			return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be greater than zero")
		}
		if line.UnitPrice.IsNegative() {
			return nil, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
		}

		order.Items = append(order.Items, PurchaseOrderItem{
			BaseEntity:      shared.NewBaseEntity(),
			PurchaseOrderID: order.ID,
			ArticleID:       line.ArticleID,
			Quantity:        line.Quantity,
			UnitPrice:       line.UnitPrice,
			LineTotal:       line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))),
		})
	}
	order.recalculateTotal()

	order.AddDomainEvent(NewPurchaseOrderCreatedEvent(order))

	return order, nil
}

// SendToReview moves the order from draft to in review
func (o *PurchaseOrder) SendToReview() error {
	return o.transition(PurchaseOrderStatusInReview)
}

// Approve moves the order from in review to approved
func (o *PurchaseOrder) Approve() error {
	return o.transition(PurchaseOrderStatusApproved)
}

// Reject moves the order from in review to rejected
func (o *PurchaseOrder) Reject() error {
	return o.transition(PurchaseOrderStatusRejected)
}

// IsApproved reports whether the order has been approved
func (o *PurchaseOrder) IsApproved() bool {
	return o.Status == PurchaseOrderStatusApproved
}

func (o *PurchaseOrder) recalculateTotal() {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.LineTotal)
	}
	o.Total = total
}

func (o *PurchaseOrder) transition(target PurchaseOrderStatus) error {
	if !o.Status.CanTransitionTo(target) {
		return shared.NewDomainError("INVALID_STATE",
			"Cannot transition purchase order from "+o.Status.String()+" to "+target.String())
	}

	oldStatus := o.Status
	o.Status = target
	o.UpdatedAt = time.Now()
	o.IncrementVersion()

	o.AddDomainEvent(NewPurchaseOrderStatusChangedEvent(o, oldStatus, target))

	return nil
}
