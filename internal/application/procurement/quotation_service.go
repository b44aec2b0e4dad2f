package procurement

import (
	"context"

	"github.com/google/uuid"
	"github.com/procure/backend/internal/domain/catalog"
	"github.com/procure/backend/internal/domain/partner"
	"github.com/procure/backend/internal/domain/procurement"
	"github.com/procure/backend/internal/domain/shared"
)

// QuotationService handles quotation operations
type QuotationService struct {
	quotationRepo   procurement.QuotationRepository
	requisitionRepo procurement.RequisitionRepository
	supplierRepo    partner.SupplierRepository
	articleRepo     catalog.ArticleRepository
	publisher       shared.EventPublisher
}

// NewQuotationService creates a new QuotationService
func NewQuotationService(
	quotationRepo procurement.QuotationRepository,
	requisitionRepo procurement.RequisitionRepository,
	supplierRepo partner.SupplierRepository,
	articleRepo catalog.ArticleRepository,
	publisher shared.EventPublisher,
) *QuotationService {
	return &QuotationService{
		quotationRepo:   quotationRepo,
		requisitionRepo: requisitionRepo,
		supplierRepo:    supplierRepo,
		articleRepo:     articleRepo,
		publisher:       publisher,
	}
}

// Create opens a quotation for an approved requisition. At most one quotation
// may exist per requisition.
func (s *QuotationService) Create(ctx context.Context, req CreateQuotationRequest) (*QuotationResponse, error) {
	requisition, err := s.requisitionRepo.FindByID(ctx, req.RequisitionID)
	if err != nil {
		return nil, err
	}
	if !requisition.IsApproved() {
		return nil, shared.NewDomainError("INVALID_STATE",
			"Quotations can only be opened for approved requisitions")
	}

	exists, err := s.quotationRepo.ExistsByRequisitionID(ctx, req.RequisitionID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS",
			"A quotation already exists for this requisition")
	}

	quotation, err := procurement.NewQuotation(req.RequisitionID)
	if err != nil {
		return nil, err
	}

	if err := s.quotationRepo.Save(ctx, quotation); err != nil {
		return nil, err
	}
	publishEvents(ctx, s.publisher, quotation)

	response, err := s.toResponse(ctx, quotation)
	if err != nil {
		return nil, err
	}
	return response, nil
}

// GetByID retrieves a quotation with supplier and article names resolved
func (s *QuotationService) GetByID(ctx context.Context, id uuid.UUID) (*QuotationResponse, error) {
	quotation, err := s.quotationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(ctx, quotation)
}

// List retrieves quotations matching the filter
func (s *QuotationService) List(ctx context.Context, filter QuotationListFilter) ([]QuotationResponse, int64, error) {
	domainFilter := filter.toDomain()

	quotations, err := s.quotationRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.quotationRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]QuotationResponse, 0, len(quotations))
	for i := range quotations {
		q := &quotations[i]
		responses = append(responses, QuotationResponse{
			ID:            q.ID,
			RequisitionID: q.RequisitionID,
			Status:        q.Status.String(),
			CreatedAt:     q.CreatedAt,
			UpdatedAt:     q.UpdatedAt,
		})
	}
	return responses, total, nil
}

// AddSupplier invites a supplier to quote. Adding the same supplier twice is
// a no-op returning the existing link.
func (s *QuotationService) AddSupplier(ctx context.Context, quotationID uuid.UUID, req AddQuotationSupplierRequest) (*QuotationResponse, error) {
	quotation, err := s.quotationRepo.FindByID(ctx, quotationID)
	if err != nil {
		return nil, err
	}

	if _, err := s.supplierRepo.FindByID(ctx, req.SupplierID); err != nil {
		return nil, err
	}

	if _, err := quotation.AddSupplier(req.SupplierID); err != nil {
		return nil, err
	}

	if err := s.quotationRepo.Save(ctx, quotation); err != nil {
		return nil, err
	}
	publishEvents(ctx, s.publisher, quotation)

	return s.toResponse(ctx, quotation)
}

// LoadSupplierQuotes upserts a supplier's priced lines. Quantities are taken
// from the requisition; prices come from the request.
func (s *QuotationService) LoadSupplierQuotes(ctx context.Context, quotationID, supplierID uuid.UUID, req LoadSupplierQuotesRequest) (*QuotationResponse, error) {
	quotation, err := s.quotationRepo.FindByID(ctx, quotationID)
	if err != nil {
		return nil, err
	}

	requisition, err := s.requisitionRepo.FindByID(ctx, quotation.RequisitionID)
	if err != nil {
		return nil, err
	}

	quotes := toSupplierQuotes(req.Items)
	if err := quotation.LoadSupplierQuotes(supplierID, quotes, requisition.QuantityByArticle()); err != nil {
		return nil, err
	}

	if err := s.quotationRepo.Save(ctx, quotation); err != nil {
		return nil, err
	}
	publishEvents(ctx, s.publisher, quotation)

	return s.toResponse(ctx, quotation)
}

// Approve closes the quotation as approved
func (s *QuotationService) Approve(ctx context.Context, id uuid.UUID) (*QuotationResponse, error) {
	return s.applyTransition(ctx, id, (*procurement.Quotation).Approve)
}

// Reject closes the quotation as rejected
func (s *QuotationService) Reject(ctx context.Context, id uuid.UUID) (*QuotationResponse, error) {
	return s.applyTransition(ctx, id, (*procurement.Quotation).Reject)
}

// Comparison builds the side-by-side price comparison for a quotation. Lines
// follow the requisition's item order; suppliers follow invitation order.
func (s *QuotationService) Comparison(ctx context.Context, quotationID uuid.UUID) (*ComparisonResponse, error) {
	quotation, err := s.quotationRepo.FindByID(ctx, quotationID)
	if err != nil {
		return nil, err
	}

	requisition, err := s.requisitionRepo.FindByID(ctx, quotation.RequisitionID)
	if err != nil {
		return nil, err
	}

	supplierNames, err := s.supplierNames(ctx, quotation.SupplierIDs())
	if err != nil {
		return nil, err
	}

	articleIDs := make([]uuid.UUID, 0, len(requisition.Items))
	for _, item := range requisition.Items {
		articleIDs = append(articleIDs, item.ArticleID)
	}
	articleNames, err := s.articleNames(ctx, articleIDs)
	if err != nil {
		return nil, err
	}

	suppliers := make([]ComparisonSupplier, 0, len(quotation.Suppliers))
	for _, link := range quotation.Suppliers {
		suppliers = append(suppliers, ComparisonSupplier{
			SupplierID:   link.SupplierID,
			SupplierName: supplierNames[link.SupplierID],
		})
	}

	prices := quotation.PriceIndex()
	lines := make([]ComparisonLine, 0, len(requisition.Items))
	for _, item := range requisition.Items {
		quotes := make([]ComparisonQuote, 0, len(quotation.Suppliers))
		for _, link := range quotation.Suppliers {
			price, ok := prices[procurement.PriceKey{SupplierID: link.SupplierID, ArticleID: item.ArticleID}]
			if !ok {
				continue
			}
			quotes = append(quotes, ComparisonQuote{SupplierID: link.SupplierID, UnitPrice: price})
		}
		lines = append(lines, ComparisonLine{
			ArticleID:   item.ArticleID,
			ArticleName: articleNames[item.ArticleID],
			Quantity:    item.Quantity,
			Quotes:      quotes,
		})
	}

	return &ComparisonResponse{
		QuotationID:   quotation.ID,
		RequisitionID: quotation.RequisitionID,
		Status:        quotation.Status.String(),
		Suppliers:     suppliers,
		Lines:         lines,
	}, nil
}

func (s *QuotationService) applyTransition(ctx context.Context, id uuid.UUID, transition func(*procurement.Quotation) error) (*QuotationResponse, error) {
	quotation, err := s.quotationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := transition(quotation); err != nil {
		return nil, err
	}

	if err := s.quotationRepo.Save(ctx, quotation); err != nil {
		return nil, err
	}
	publishEvents(ctx, s.publisher, quotation)

	return s.toResponse(ctx, quotation)
}

func (s *QuotationService) toResponse(ctx context.Context, q *procurement.Quotation) (*QuotationResponse, error) {
	supplierNames, err := s.supplierNames(ctx, q.SupplierIDs())
	if err != nil {
		return nil, err
	}

	articleIDSet := make(map[uuid.UUID]bool)
	articleIDs := make([]uuid.UUID, 0)
	for _, link := range q.Suppliers {
		for _, item := range link.Items {
			if !articleIDSet[item.ArticleID] {
				articleIDSet[item.ArticleID] = true
				articleIDs = append(articleIDs, item.ArticleID)
			}
		}
	}
	articleNames, err := s.articleNames(ctx, articleIDs)
	if err != nil {
		return nil, err
	}

	suppliers := make([]QuotationSupplierResponse, 0, len(q.Suppliers))
	for _, link := range q.Suppliers {
		items := make([]QuotationSupplierItemResponse, 0, len(link.Items))
		for _, item := range link.Items {
			items = append(items, QuotationSupplierItemResponse{
				ID:          item.ID,
				ArticleID:   item.ArticleID,
				ArticleName: articleNames[item.ArticleID],
				Quantity:    item.Quantity,
				UnitPrice:   item.UnitPrice,
			})
		}
		suppliers = append(suppliers, QuotationSupplierResponse{
			ID:           link.ID,
			SupplierID:   link.SupplierID,
			SupplierName: supplierNames[link.SupplierID],
			Items:        items,
		})
	}

	return &QuotationResponse{
		ID:            q.ID,
		RequisitionID: q.RequisitionID,
		Status:        q.Status.String(),
		Suppliers:     suppliers,
		CreatedAt:     q.CreatedAt,
		UpdatedAt:     q.UpdatedAt,
	}, nil
}

func (s *QuotationService) supplierNames(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	if len(ids) == 0 {
		return map[uuid.UUID]string{}, nil
	}
	suppliers, err := s.supplierRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	names := make(map[uuid.UUID]string, len(suppliers))
	for i := range suppliers {
		names[suppliers[i].ID] = suppliers[i].Name
	}
	return names, nil
}

func (s *QuotationService) articleNames(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
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
