package trade

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/procure/backend/internal/domain/shared"
	"github.com/procure/backend/internal/domain/trade"
	"github.com/shopspring/decimal"
)

// OrderSelectionRequest awards one requisition line to one supplier
type OrderSelectionRequest struct {
	ArticleID  uuid.UUID `json:"article_id" binding:"required"`
	SupplierID uuid.UUID `json:"supplier_id" binding:"required"`
}

// GenerateOrdersRequest is the input for generating purchase orders from an
// approved quotation
type GenerateOrdersRequest struct {
	Selections []OrderSelectionRequest `json:"selections" binding:"required,min=1,dive"`
}

// GenerateOrdersResponse lists the generated order ids in creation order
type GenerateOrdersResponse struct {
	OrderIDs []uuid.UUID `json:"order_ids"`
}

// PurchaseOrderItemResponse is one awarded line
type PurchaseOrderItemResponse struct {
	ID          uuid.UUID       `json:"id"`
	ArticleID   uuid.UUID       `json:"article_id"`
	ArticleName string          `json:"article_name,omitempty"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

// PurchaseOrderResponse represents a purchase order with names resolved
type PurchaseOrderResponse struct {
	ID            uuid.UUID                   `json:"id"`
	QuotationID   uuid.UUID                   `json:"quotation_id"`
	RequisitionID uuid.UUID                   `json:"requisition_id"`
	SupplierID    uuid.UUID                   `json:"supplier_id"`
	SupplierName  string                      `json:"supplier_name,omitempty"`
	Status        string                      `json:"status"`
	Total         decimal.Decimal             `json:"total"`
	Items         []PurchaseOrderItemResponse `json:"items,omitempty"`
	CreatedAt     time.Time                   `json:"created_at"`
	UpdatedAt     time.Time                   `json:"updated_at"`
}

// PurchaseOrderListFilter filters purchase order listings
type PurchaseOrderListFilter struct {
	Page       int        `form:"page,omitempty" binding:"omitempty,min=1"`
	PageSize   int        `form:"page_size,omitempty" binding:"omitempty,min=1,max=100"`
	Status     string     `form:"status,omitempty"`
	SupplierID *uuid.UUID `form:"supplier_id,omitempty"`
}

func (f PurchaseOrderListFilter) toDomain() shared.Filter {
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
	if f.SupplierID != nil {
		filter.Filters["supplier_id"] = *f.SupplierID
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

func toPurchaseOrderResponse(o *trade.PurchaseOrder, supplierName string, articleNames map[uuid.UUID]string) PurchaseOrderResponse {
	items := make([]PurchaseOrderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, PurchaseOrderItemResponse{
			ID:          item.ID,
			ArticleID:   item.ArticleID,
			ArticleName: articleNames[item.ArticleID],
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			LineTotal:   item.LineTotal,
		})
	}
	return PurchaseOrderResponse{
		ID:            o.ID,
		QuotationID:   o.QuotationID,
		RequisitionID: o.RequisitionID,
		SupplierID:    o.SupplierID,
		SupplierName:  supplierName,
		Status:        o.Status.String(),
		Total:         o.Total,
		Items:         items,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}
