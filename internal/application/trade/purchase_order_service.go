package trade

import (
	"context"

	"github.com/google/uuid"
	"github.com/procure/backend/internal/domain/catalog"
	"github.com/procure/backend/internal/domain/partner"
	"github.com/procure/backend/internal/domain/procurement"
	"github.com/procure/backend/internal/domain/shared"
	"github.com/procure/backend/internal/domain/trade"
)

// PurchaseOrderService handles purchase order generation and workflow
type PurchaseOrderService struct {
	orderRepo       trade.PurchaseOrderRepository
	quotationRepo   procurement.QuotationRepository
	requisitionRepo procurement.RequisitionRepository
	supplierRepo    partner.SupplierRepository
	articleRepo     catalog.ArticleRepository
	publisher       shared.EventPublisher
}

// NewPurchaseOrderService creates a new PurchaseOrderService
func NewPurchaseOrderService(
	orderRepo trade.PurchaseOrderRepository,
	quotationRepo procurement.QuotationRepository,
	requisitionRepo procurement.RequisitionRepository,
	supplierRepo partner.SupplierRepository,
	articleRepo catalog.ArticleRepository,
	publisher shared.EventPublisher,
) *PurchaseOrderService {
	return &PurchaseOrderService{
		orderRepo:       orderRepo,
		quotationRepo:   quotationRepo,
		requisitionRepo: requisitionRepo,
		supplierRepo:    supplierRepo,
		articleRepo:     articleRepo,
		publisher:       publisher,
	}
}

// Generate turns an approved quotation into one draft purchase order per
// awarded supplier. Generation runs at most once per quotation; a retry after
// success is answered with a conflict rather than duplicate orders.
func (s *PurchaseOrderService) Generate(ctx context.Context, quotationID uuid.UUID, req GenerateOrdersRequest) (*GenerateOrdersResponse, error) {
	quotation, err := s.quotationRepo.FindByID(ctx, quotationID)
	if err != nil {
		return nil, err
	}
	if !quotation.IsApproved() {
		return nil, shared.NewDomainError("INVALID_STATE",
			"Purchase orders can only be generated from an approved quotation")
	}

	exists, err := s.orderRepo.ExistsByQuotationID(ctx, quotationID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS",
			"Purchase orders have already been generated for this quotation")
	}

	requisition, err := s.requisitionRepo.FindByID(ctx, quotation.RequisitionID)
	if err != nil {
		return nil, err
	}

	selections := make([]trade.Selection, 0, len(req.Selections))
	for _, selection := range req.Selections {
		selections = append(selections, trade.Selection{
			ArticleID:  selection.ArticleID,
			SupplierID: selection.SupplierID,
		})
	}

	orders, err := trade.GenerateOrders(trade.GeneratorInput{
		QuotationID:   quotation.ID,
		RequisitionID: quotation.RequisitionID,
		Quantities:    requisition.QuantityByArticle(),
		Prices:        quotation.PriceIndex(),
		Selections:    selections,
	})
	if err != nil {
		return nil, err
	}

	if err := s.orderRepo.SaveAll(ctx, orders); err != nil {
		return nil, err
	}

	orderIDs := make([]uuid.UUID, 0, len(orders))
	for _, order := range orders {
		publishEvents(ctx, s.publisher, order)
		orderIDs = append(orderIDs, order.ID)
	}

	return &GenerateOrdersResponse{OrderIDs: orderIDs}, nil
}

// GetByID retrieves a purchase order with supplier and article names resolved
func (s *PurchaseOrderService) GetByID(ctx context.Context, id uuid.UUID) (*PurchaseOrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	supplierName := ""
	if supplier, err := s.supplierRepo.FindByID(ctx, order.SupplierID); err == nil {
		supplierName = supplier.Name
	}

	articleNames, err := s.articleNames(ctx, order)
	if err != nil {
		return nil, err
	}

	response := toPurchaseOrderResponse(order, supplierName, articleNames)
	return &response, nil
}

// ListByQuotation retrieves the orders generated from a quotation
func (s *PurchaseOrderService) ListByQuotation(ctx context.Context, quotationID uuid.UUID) ([]PurchaseOrderResponse, error) {
	orders, err := s.orderRepo.FindByQuotationID(ctx, quotationID)
	if err != nil {
		return nil, err
	}
	return s.toResponses(ctx, orders)
}

// List retrieves purchase orders matching the filter
func (s *PurchaseOrderService) List(ctx context.Context, filter PurchaseOrderListFilter) ([]PurchaseOrderResponse, int64, error) {
	domainFilter := filter.toDomain()

	orders, err := s.orderRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.orderRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses, err := s.toResponses(ctx, orders)
	if err != nil {
		return nil, 0, err
	}
	return responses, total, nil
}

// SendToReview moves a purchase order from draft to in review
func (s *PurchaseOrderService) SendToReview(ctx context.Context, id uuid.UUID) (*PurchaseOrderResponse, error) {
	return s.applyTransition(ctx, id, (*trade.PurchaseOrder).SendToReview)
}

// Approve moves a purchase order from in review to approved
func (s *PurchaseOrderService) Approve(ctx context.Context, id uuid.UUID) (*PurchaseOrderResponse, error) {
	return s.applyTransition(ctx, id, (*trade.PurchaseOrder).Approve)
}

// Reject moves a purchase order from in review to rejected
func (s *PurchaseOrderService) Reject(ctx context.Context, id uuid.UUID) (*PurchaseOrderResponse, error) {
	return s.applyTransition(ctx, id, (*trade.PurchaseOrder).Reject)
}

func (s *PurchaseOrderService) applyTransition(ctx context.Context, id uuid.UUID, transition func(*trade.PurchaseOrder) error) (*PurchaseOrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := transition(order); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}
	publishEvents(ctx, s.publisher, order)

	response := toPurchaseOrderResponse(order, "", nil)
	return &response, nil
}

func (s *PurchaseOrderService) toResponses(ctx context.Context, orders []trade.PurchaseOrder) ([]PurchaseOrderResponse, error) {
	supplierIDs := make([]uuid.UUID, 0, len(orders))
	seen := make(map[uuid.UUID]bool)
	for i := range orders {
		if !seen[orders[i].SupplierID] {
			seen[orders[i].SupplierID] = true
			supplierIDs = append(supplierIDs, orders[i].SupplierID)
		}
	}

	supplierNames := map[uuid.UUID]string{}
	if len(supplierIDs) > 0 {
		suppliers, err := s.supplierRepo.FindByIDs(ctx, supplierIDs)
		if err != nil {
			return nil, err
		}
		for i := range suppliers {
			supplierNames[suppliers[i].ID] = suppliers[i].Name
		}
	}

	responses := make([]PurchaseOrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, toPurchaseOrderResponse(&orders[i], supplierNames[orders[i].SupplierID], nil))
	}
	return responses, nil
}

func (s *PurchaseOrderService) articleNames(ctx context.Context, order *trade.PurchaseOrder) (map[uuid.UUID]string, error) {
	ids := make([]uuid.UUID, 0, len(order.Items))
	for _, item := range order.Items {
		ids = append(ids, item.ArticleID)
	}
	if len(ids) == 0 {
		return map[uuid.UUID]string{}, nil
	}

	articles, err := s.articleRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	names := make(map[uuid.UUID]string, len(articles))
	for i := range articles {
		names[articles[i].ID] = articles[i].Name
	}
	return names, nil
}
