package trade

import (
	"github.com/google/uuid"
	"github.com/procure/backend/internal/domain/procurement"
	"github.com/procure/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Selection awards one requisition line to one supplier
type Selection struct {
	ArticleID  uuid.UUID
	SupplierID uuid.UUID
}

// GeneratorInput carries everything needed to turn an approved quotation into
// purchase orders: the requisition quantities, the quoted price per
// (supplier, article) pair, and the chosen awards.
type GeneratorInput struct {
	QuotationID   uuid.UUID
	RequisitionID uuid.UUID
	Quantities    map[uuid.UUID]int
	Prices        map[procurement.PriceKey]decimal.Decimal
	Selections    []Selection
}

// GenerateOrders builds one draft purchase order per distinct supplier in the
// selections. Suppliers keep the order of their first appearance, and a
// repeated (article, supplier) pair collapses to a single line with the last
// occurrence winning. Each line takes its quantity from the requisition and
// its unit price from the quotation.
func GenerateOrders(input GeneratorInput) ([]*PurchaseOrder, error) {
	if len(input.Selections) == 0 {
		return nil, shared.NewDomainError("EMPTY_SELECTION", "At least one selection is required")
	}

	type supplierLines struct {
		articleOrder []uuid.UUID
		lines        map[uuid.UUID]OrderLine
	}

	supplierOrder := make([]uuid.UUID, 0)
	grouped := make(map[uuid.UUID]*supplierLines)

	for _, selection := range input.Selections {
		quantity, requested := input.Quantities[selection.ArticleID]
		if !requested {
			return nil, shared.NewDomainError("ARTICLE_NOT_REQUESTED", "Article is not part of the requisition")
		}

		key := procurement.PriceKey{SupplierID: selection.SupplierID, ArticleID: selection.ArticleID}
		price, quoted := input.Prices[key]
		if !quoted {
			return nil, shared.NewDomainError("PAIR_NOT_QUOTED", "Supplier has not quoted this article")
		}

		group, seen := grouped[selection.SupplierID]
		if !seen {
			group = &supplierLines{lines: make(map[uuid.UUID]OrderLine)}
			grouped[selection.SupplierID] = group
			supplierOrder = append(supplierOrder, selection.SupplierID)
		}

		if _, dup := group.lines[selection.ArticleID]; !dup {
			group.articleOrder = append(group.articleOrder, selection.ArticleID)
		}
		group.lines[selection.ArticleID] = OrderLine{
			ArticleID: selection.ArticleID,
			Quantity:  quantity,
			UnitPrice: price,
		}
	}

	orders := make([]*PurchaseOrder, 0, len(supplierOrder))
	for _, supplierID := range supplierOrder {
		group := grouped[supplierID]
		lines := make([]OrderLine, 0, len(group.articleOrder))
		for _, articleID := range group.articleOrder {
			lines = append(lines, group.lines[articleID])
		}

		order, err := NewPurchaseOrder(input.QuotationID, input.RequisitionID, supplierID, lines)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	return orders, nil
}
