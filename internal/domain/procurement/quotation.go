package procurement

import (
	"time"

	"github.com/google/uuid"
	"github.com/procure/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// QuotationStatus represents the workflow state of a quotation
type QuotationStatus string

const (
	QuotationStatusOpen     QuotationStatus = "open"
	QuotationStatusApproved QuotationStatus = "approved"
	QuotationStatusRejected QuotationStatus = "rejected"
)

// IsValid checks if the status is a known value
func (s QuotationStatus) IsValid() bool {
	switch s {
	case QuotationStatusOpen, QuotationStatusApproved, QuotationStatusRejected:
		return true
	}
	return false
}

// String returns the string representation
func (s QuotationStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status
func (s QuotationStatus) CanTransitionTo(target QuotationStatus) bool {
	if s != QuotationStatusOpen {
		return false
	}
	return target == QuotationStatusApproved || target == QuotationStatusRejected
}

// QuotationSupplierItem is one supplier's offer for one requisition line.
// The quantity always mirrors the requisition line; only the unit price is
// supplier input.
type QuotationSupplierItem struct {
	shared.BaseEntity
	QuotationSupplierID uuid.UUID       `gorm:"type:uuid;not null;index;uniqueIndex:idx_quotation_supplier_items_article,priority:1"`
	ArticleID           uuid.UUID       `gorm:"type:uuid;not null;index;uniqueIndex:idx_quotation_supplier_items_article,priority:2"`
	Quantity            int             `gorm:"not null;check:quantity > 0"`
	UnitPrice           decimal.Decimal `gorm:"type:decimal(18,4);not null"`
}

// TableName returns the table name for GORM
func (QuotationSupplierItem) TableName() string {
	return "quotation_supplier_items"
}

// QuotationSupplier links a supplier to a quotation and carries that
// supplier's quoted items.
type QuotationSupplier struct {
	shared.BaseEntity
	QuotationID uuid.UUID               `gorm:"type:uuid;not null;index;uniqueIndex:idx_quotation_suppliers_supplier,priority:1"`
	SupplierID  uuid.UUID               `gorm:"type:uuid;not null;index;uniqueIndex:idx_quotation_suppliers_supplier,priority:2"`
	Items       []QuotationSupplierItem `gorm:"foreignKey:QuotationSupplierID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (QuotationSupplier) TableName() string {
	return "quotation_suppliers"
}

// Quotation collects supplier offers for one approved requisition. At most
// one quotation exists per requisition, backed by a unique index.
type Quotation struct {
	shared.BaseAggregateRoot
	RequisitionID uuid.UUID           `gorm:"type:uuid;not null;uniqueIndex:idx_quotations_requisition"`
	Status        QuotationStatus     `gorm:"type:varchar(20);not null;default:'open';index"`
	Suppliers     []QuotationSupplier `gorm:"foreignKey:QuotationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (Quotation) TableName() string {
	return "quotations"
}

// NewQuotation opens a quotation for a requisition. The caller verifies the
// requisition exists and is approved.
func NewQuotation(requisitionID uuid.UUID) (*Quotation, error) {
	if requisitionID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_REQUISITION", "Requisition ID cannot be nil")
	}

	quotation := &Quotation{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		RequisitionID:     requisitionID,
		Status:            QuotationStatusOpen,
		Suppliers:         make([]QuotationSupplier, 0),
	}

	quotation.AddDomainEvent(NewQuotationCreatedEvent(quotation))

	return quotation, nil
}

// AddSupplier invites a supplier to quote. Re-adding a supplier already on
// the quotation returns the existing link unchanged.
func (q *Quotation) AddSupplier(supplierID uuid.UUID) (*QuotationSupplier, error) {
	if supplierID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SUPPLIER", "Supplier ID cannot be nil")
	}
	if q.Status != QuotationStatusOpen {
		return nil, shared.NewDomainError("INVALID_STATE", "Suppliers can only be added while the quotation is open")
	}

	if existing := q.findSupplier(supplierID); existing != nil {
		return existing, nil
	}

	link := QuotationSupplier{
		BaseEntity:  shared.NewBaseEntity(),
		QuotationID: q.ID,
		SupplierID:  supplierID,
		Items:       make([]QuotationSupplierItem, 0),
	}
	q.Suppliers = append(q.Suppliers, link)
	q.UpdatedAt = time.Now()
	q.IncrementVersion()

	q.AddDomainEvent(NewQuotationSupplierAddedEvent(q, supplierID))

	return &q.Suppliers[len(q.Suppliers)-1], nil
}

// SupplierQuote is one priced line submitted by a supplier
type SupplierQuote struct {
	ArticleID uuid.UUID
	UnitPrice decimal.Decimal
}

// LoadSupplierQuotes upserts a supplier's priced lines. Quantities are taken
// from the requisition lines, never from the caller; articles outside the
// requisition are rejected. Loading again replaces prices in place.
func (q *Quotation) LoadSupplierQuotes(supplierID uuid.UUID, quotes []SupplierQuote, requisitionQty map[uuid.UUID]int) error {
	if q.Status != QuotationStatusOpen {
		return shared.NewDomainError("INVALID_STATE", "Quotes can only be loaded while the quotation is open")
	}

	link := q.findSupplier(supplierID)
	if link == nil {
		return shared.NewDomainError("SUPPLIER_NOT_INVITED", "Supplier is not part of this quotation")
	}
	if len(quotes) == 0 {
		return shared.NewDomainError("EMPTY_QUOTES", "At least one quoted line is required")
	}

	for _, quote := range quotes {
		quantity, ok := requisitionQty[quote.ArticleID]
		if !ok {
			return shared.NewDomainError("ARTICLE_NOT_REQUESTED", "Article is not part of the requisition")
		}
		if quote.UnitPrice.IsNegative() {
			return shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
		}

		if item := findSupplierItem(link, quote.ArticleID); item != nil {
			item.Quantity = quantity
			item.UnitPrice = quote.UnitPrice
			item.UpdatedAt = time.Now()
		} else {
			link.Items = append(link.Items, QuotationSupplierItem{
				BaseEntity:          shared.NewBaseEntity(),
				QuotationSupplierID: link.ID,
				ArticleID:           quote.ArticleID,
				Quantity:            quantity,
				UnitPrice:           quote.UnitPrice,
			})
		}
	}

	q.UpdatedAt = time.Now()
	q.IncrementVersion()

	q.AddDomainEvent(NewQuotationQuotesLoadedEvent(q, supplierID, len(quotes)))

	return nil
}

// Approve closes the quotation as approved
func (q *Quotation) Approve() error {
	return q.transition(QuotationStatusApproved)
}

// Reject closes the quotation as rejected
func (q *Quotation) Reject() error {
	return q.transition(QuotationStatusRejected)
}

// IsApproved reports whether the quotation has been approved
func (q *Quotation) IsApproved() bool {
	return q.Status == QuotationStatusApproved
}

// PriceKey identifies one quoted (supplier, article) pair
type PriceKey struct {
	SupplierID uuid.UUID
	ArticleID  uuid.UUID
}

// PriceIndex returns the quoted unit price per (supplier, article) pair
func (q *Quotation) PriceIndex() map[PriceKey]decimal.Decimal {
	index := make(map[PriceKey]decimal.Decimal)
	for _, link := range q.Suppliers {
		for _, item := range link.Items {
			index[PriceKey{SupplierID: link.SupplierID, ArticleID: item.ArticleID}] = item.UnitPrice
		}
	}
	return index
}

// SupplierIDs returns the invited supplier IDs in insertion order
func (q *Quotation) SupplierIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(q.Suppliers))
	for _, link := range q.Suppliers {
		ids = append(ids, link.SupplierID)
	}
	return ids
}

func (q *Quotation) findSupplier(supplierID uuid.UUID) *QuotationSupplier {
	for i := range q.Suppliers {
		if q.Suppliers[i].SupplierID == supplierID {
			return &q.Suppliers[i]
		}
	}
	return nil
}

func findSupplierItem(link *QuotationSupplier, articleID uuid.UUID) *QuotationSupplierItem {
	for i := range link.Items {
		if link.Items[i].ArticleID == articleID {
			return &link.Items[i]
		}
	}
	return nil
}

func (q *Quotation) transition(target QuotationStatus) error {
	if !q.Status.CanTransitionTo(target) {
		return shared.NewDomainError("INVALID_STATE",
			"Cannot transition quotation from "+q.Status.String()+" to "+target.String())
	}

	oldStatus := q.Status
	q.Status = target
	q.UpdatedAt = time.Now()
	q.IncrementVersion()

	q.AddDomainEvent(NewQuotationStatusChangedEvent(q, oldStatus, target))

	return nil
}
