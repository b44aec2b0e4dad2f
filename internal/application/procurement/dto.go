package procurement

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/procure/backend/internal/domain/procurement"
	"github.com/procure/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// RequisitionItemRequest is one requested line
type RequisitionItemRequest struct {
	ArticleID uuid.UUID `json:"article_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
}

// CreateRequisitionRequest is the input for creating a requisition
type CreateRequisitionRequest struct {
	DepartmentID uuid.UUID                `json:"department_id" binding:"required"`
	ClassifierID uuid.UUID                `json:"classifier_id" binding:"required"`
	Description  string                   `json:"description,omitempty"`
	Items        []RequisitionItemRequest `json:"items" binding:"required,min=1,dive"`
}

// RequisitionItemResponse is one requisition line with the article name resolved
type RequisitionItemResponse struct {
	ID          uuid.UUID `json:"id"`
	ArticleID   uuid.UUID `json:"article_id"`
	ArticleName string    `json:"article_name,omitempty"`
	Quantity    int       `json:"quantity"`
}

// RequisitionResponse represents a requisition with names resolved
type RequisitionResponse struct {
	ID             uuid.UUID                 `json:"id"`
	DepartmentID   uuid.UUID                 `json:"department_id"`
	DepartmentName string                    `json:"department_name,omitempty"`
	ClassifierID   uuid.UUID                 `json:"classifier_id"`
	ClassifierName string                    `json:"classifier_name,omitempty"`
	Description    string                    `json:"description,omitempty"`
	Status         string                    `json:"status"`
	Items          []RequisitionItemResponse `json:"items,omitempty"`
	CreatedAt      time.Time                 `json:"created_at"`
	UpdatedAt      time.Time                 `json:"updated_at"`
}

// RequisitionListFilter filters requisition listings
type RequisitionListFilter struct {
	Page         int        `form:"page,omitempty" binding:"omitempty,min=1"`
	PageSize     int        `form:"page_size,omitempty" binding:"omitempty,min=1,max=100"`
	Status       string     `form:"status,omitempty"`
	DepartmentID *uuid.UUID `form:"department_id,omitempty"`
	ClassifierID *uuid.UUID `form:"classifier_id,omitempty"`
}

func (f RequisitionListFilter) toDomain() shared.Filter {
	filter := shared.DefaultFilter()
	if f.Page > 0 {
		filter.Page = f.Page
	}
	if f.PageSize > 0 {
		filter.PageSize = f.PageSize
	}
	if f.Status != "" {
		filter.Filters["status"] = f.Status
	}
	if f.DepartmentID != nil {
		filter.Filters["department_id"] = *f.DepartmentID
	}
	if f.ClassifierID != nil {
		filter.Filters["classifier_id"] = *f.ClassifierID
	}
	return filter
}

// CreateQuotationRequest opens a quotation for an approved requisition
type CreateQuotationRequest struct {
	RequisitionID uuid.UUID `json:"requisition_id" binding:"required"`
}

// AddQuotationSupplierRequest invites a supplier to quote
type AddQuotationSupplierRequest struct {
	SupplierID uuid.UUID `json:"supplier_id" binding:"required"`
}

// SupplierQuoteRequest is one priced line. The quantity field is accepted for
// wire compatibility but ignored; the requisition line quantity always wins.
type SupplierQuoteRequest struct {
	ArticleID uuid.UUID       `json:"article_id" binding:"required"`
	Quantity  int             `json:"quantity,omitempty"`
	UnitPrice decimal.Decimal `json:"unit_price" binding:"required"`
}

// LoadSupplierQuotesRequest upserts a supplier's quoted lines
type LoadSupplierQuotesRequest struct {
	Items []SupplierQuoteRequest `json:"items" binding:"required,min=1,dive"`
}

// QuotationSupplierItemResponse is one quoted line
type QuotationSupplierItemResponse struct {
	ID          uuid.UUID       `json:"id"`
	ArticleID   uuid.UUID       `json:"article_id"`
	ArticleName string          `json:"article_name,omitempty"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// QuotationSupplierResponse is one invited supplier with its quotes
type QuotationSupplierResponse struct {
	ID           uuid.UUID                       `json:"id"`
	SupplierID   uuid.UUID                       `json:"supplier_id"`
	SupplierName string                          `json:"supplier_name,omitempty"`
	Items        []QuotationSupplierItemResponse `json:"items,omitempty"`
}

// QuotationResponse represents a quotation with suppliers and quotes
type QuotationResponse struct {
	ID            uuid.UUID                   `json:"id"`
	RequisitionID uuid.UUID                   `json:"requisition_id"`
	Status        string                      `json:"status"`
	Suppliers     []QuotationSupplierResponse `json:"suppliers,omitempty"`
	CreatedAt     time.Time                   `json:"created_at"`
	UpdatedAt     time.Time                   `json:"updated_at"`
}

// ComparisonQuote is one supplier's price for a line
type ComparisonQuote struct {
	SupplierID uuid.UUID       `json:"supplier_id"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
}

// ComparisonLine is one requisition line with each supplier's price.
// Suppliers that did not quote the line are simply absent.
type ComparisonLine struct {
	ArticleID   uuid.UUID         `json:"article_id"`
	ArticleName string            `json:"article_name,omitempty"`
	Quantity    int               `json:"quantity"`
	Quotes      []ComparisonQuote `json:"quotes"`
}

// ComparisonSupplier is one column of the comparison view
type ComparisonSupplier struct {
	SupplierID   uuid.UUID `json:"supplier_id"`
	SupplierName string    `json:"supplier_name,omitempty"`
}

// ComparisonResponse is the side-by-side price comparison for a quotation
type ComparisonResponse struct {
	QuotationID   uuid.UUID            `json:"quotation_id"`
	RequisitionID uuid.UUID            `json:"requisition_id"`
	Status        string               `json:"status"`
	Suppliers     []ComparisonSupplier `json:"suppliers"`
	Lines         []ComparisonLine     `json:"lines"`
}

// QuotationListFilter filters quotation listings
type QuotationListFilter struct {
	Page     int    `form:"page,omitempty" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size,omitempty" binding:"omitempty,min=1,max=100"`
	Status   string `form:"status,omitempty"`
}

func (f QuotationListFilter) toDomain() shared.Filter {
	filter := shared.DefaultFilter()
	if f.Page > 0 {
		filter.Page = f.Page
	}
	if f.PageSize > 0 {
		filter.PageSize = f.PageSize
	}
	if f.Status != "" {
		filter.Filters["status"] = f.Status
	}
	return filter
}

func publishEvents(ctx context.Context, publisher shared.EventPublisher, aggregate shared.AggregateRoot) {
	if publisher == nil {
		return
	}
	events := aggregate.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	_ = publisher.Publish(ctx, events...)
	aggregate.ClearDomainEvents()
}

func toSupplierQuotes(items []SupplierQuoteRequest) []procurement.SupplierQuote {
	quotes := make([]procurement.SupplierQuote, 0, len(items))
	for _, item := range items {
		quotes = append(quotes, procurement.SupplierQuote{
			ArticleID: item.ArticleID,
			UnitPrice: item.UnitPrice,
		})
	}
	return quotes
}
