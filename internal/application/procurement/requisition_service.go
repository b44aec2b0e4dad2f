package procurement

import (
	"context"

	"github.com/google/uuid"
	"github.com/procure/backend/internal/domain/catalog"
	"github.com/procure/backend/internal/domain/identity"
	"github.com/procure/backend/internal/domain/procurement"
	"github.com/procure/backend/internal/domain/shared"
)

// RequisitionService handles requisition operations
type RequisitionService struct {
	requisitionRepo procurement.RequisitionRepository
	departmentRepo  identity.DepartmentRepository
	classifierRepo  catalog.ClassifierRepository
	articleRepo     catalog.ArticleRepository
	publisher       shared.EventPublisher
}

// NewRequisitionService creates a new RequisitionService
func NewRequisitionService(
	requisitionRepo procurement.RequisitionRepository,
	departmentRepo identity.DepartmentRepository,
	classifierRepo catalog.ClassifierRepository,
	articleRepo catalog.ArticleRepository,
	publisher shared.EventPublisher,
) *RequisitionService {
	return &RequisitionService{
		requisitionRepo: requisitionRepo,
		departmentRepo:  departmentRepo,
		classifierRepo:  classifierRepo,
		articleRepo:     articleRepo,
		publisher:       publisher,
	}
}

// Create creates a requisition in draft state. Every referenced article must
// exist and belong to the requisition's classifier.
func (s *RequisitionService) Create(ctx context.Context, req CreateRequisitionRequest) (*RequisitionResponse, error) {
	department, err := s.departmentRepo.FindByID(ctx, req.DepartmentID)
	if err != nil {
		return nil, err
	}

	classifier, err := s.classifierRepo.FindByID(ctx, req.ClassifierID)
	if err != nil {
		return nil, err
	}

	articleNames, err := s.checkArticles(ctx, req.ClassifierID, req.Items)
	if err != nil {
		return nil, err
	}

	lines := make([]procurement.RequisitionLine, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, procurement.RequisitionLine{
			ArticleID: item.ArticleID,
			Quantity:  item.Quantity,
		})
	}

	requisition, err := procurement.NewRequisition(req.DepartmentID, req.ClassifierID, req.Description, lines)
	if err != nil {
		return nil, err
	}

	if err := s.requisitionRepo.Save(ctx, requisition); err != nil {
		return nil, err
	}
	publishEvents(ctx, s.publisher, requisition)

	response := toRequisitionResponse(requisition, department.Name, classifier.Name, articleNames)
	return &response, nil
}

// GetByID retrieves a requisition with department, classifier and article names resolved
func (s *RequisitionService) GetByID(ctx context.Context, id uuid.UUID) (*RequisitionResponse, error) {
	requisition, err := s.requisitionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	departmentName := ""
	if department, err := s.departmentRepo.FindByID(ctx, requisition.DepartmentID); err == nil {
		departmentName = department.Name
	}
	classifierName := ""
	if classifier, err := s.classifierRepo.FindByID(ctx, requisition.ClassifierID); err == nil {
		classifierName = classifier.Name
	}

	articleIDs := make([]uuid.UUID, 0, len(requisition.Items))
	for _, item := range requisition.Items {
		articleIDs = append(articleIDs, item.ArticleID)
	}
	articleNames, err := s.articleNames(ctx, articleIDs)
	if err != nil {
		return nil, err
	}

	response := toRequisitionResponse(requisition, departmentName, classifierName, articleNames)
	return &response, nil
}

// List retrieves requisitions matching the filter
func (s *RequisitionService) List(ctx context.Context, filter RequisitionListFilter) ([]RequisitionResponse, int64, error) {
	domainFilter := filter.toDomain()

	requisitions, err := s.requisitionRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.requisitionRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	departmentNames, classifierNames, err := s.referenceNames(ctx, requisitions)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]RequisitionResponse, 0, len(requisitions))
	for i := range requisitions {
		r := &requisitions[i]
		responses = append(responses, toRequisitionResponse(r,
			departmentNames[r.DepartmentID], classifierNames[r.ClassifierID], nil))
	}
	return responses, total, nil
}

// SendToReview moves a requisition from draft to in review
func (s *RequisitionService) SendToReview(ctx context.Context, id uuid.UUID) (*RequisitionResponse, error) {
	return s.applyTransition(ctx, id, (*procurement.Requisition).SendToReview)
}

// Approve moves a requisition from in review to approved
func (s *RequisitionService) Approve(ctx context.Context, id uuid.UUID) (*RequisitionResponse, error) {
	return s.applyTransition(ctx, id, (*procurement.Requisition).Approve)
}

// Reject moves a requisition from in review to rejected
func (s *RequisitionService) Reject(ctx context.Context, id uuid.UUID) (*RequisitionResponse, error) {
	return s.applyTransition(ctx, id, (*procurement.Requisition).Reject)
}

func (s *RequisitionService) applyTransition(ctx context.Context, id uuid.UUID, transition func(*procurement.Requisition) error) (*RequisitionResponse, error) {
	requisition, err := s.requisitionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := transition(requisition); err != nil {
		return nil, err
	}

	if err := s.requisitionRepo.Save(ctx, requisition); err != nil {
		return nil, err
	}
	publishEvents(ctx, s.publisher, requisition)

	response := toRequisitionResponse(requisition, "", "", nil)
	return &response, nil
}

// checkArticles verifies that every requested article exists and belongs to
// the given classifier, returning article names keyed by id.
func (s *RequisitionService) checkArticles(ctx context.Context, classifierID uuid.UUID, items []RequisitionItemRequest) (map[uuid.UUID]string, error) {
	ids := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ArticleID)
	}

	articles, err := s.articleRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]*catalog.Article, len(articles))
	for i := range articles {
		byID[articles[i].ID] = &articles[i]
	}

	names := make(map[uuid.UUID]string, len(items))
	for _, item := range items {
		article, ok := byID[item.ArticleID]
		if !ok {
			return nil, shared.NewDomainError("ARTICLE_NOT_FOUND", "Article not found")
		}
		if !article.BelongsTo(classifierID) {
			return nil, shared.NewDomainError("CLASSIFIER_MISMATCH",
				"Article does not belong to the requisition's classifier")
		}
		names[article.ID] = article.Name
	}
	return names, nil
}

func (s *RequisitionService) articleNames(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
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

func (s *RequisitionService) referenceNames(ctx context.Context, requisitions []procurement.Requisition) (map[uuid.UUID]string, map[uuid.UUID]string, error) {
	departmentIDs := make([]uuid.UUID, 0, len(requisitions))
	classifierIDs := make([]uuid.UUID, 0, len(requisitions))
	seenDept := make(map[uuid.UUID]bool)
	seenClsf := make(map[uuid.UUID]bool)
	for i := range requisitions {
		if !seenDept[requisitions[i].DepartmentID] {
			seenDept[requisitions[i].DepartmentID] = true
			departmentIDs = append(departmentIDs, requisitions[i].DepartmentID)
		}
		if !seenClsf[requisitions[i].ClassifierID] {
			seenClsf[requisitions[i].ClassifierID] = true
			classifierIDs = append(classifierIDs, requisitions[i].ClassifierID)
		}
	}

	departmentNames := map[uuid.UUID]string{}
	if len(departmentIDs) > 0 {
		departments, err := s.departmentRepo.FindByIDs(ctx, departmentIDs)
		if err != nil {
			return nil, nil, err
		}
		for i := range departments {
			departmentNames[departments[i].ID] = departments[i].Name
		}
	}

	classifierNames := map[uuid.UUID]string{}
	if len(classifierIDs) > 0 {
		classifiers, err := s.classifierRepo.FindByIDs(ctx, classifierIDs)
		if err != nil {
			return nil, nil, err
		}
		for i := range classifiers {
			classifierNames[classifiers[i].ID] = classifiers[i].Name
		}
	}

	return departmentNames, classifierNames, nil
}

func toRequisitionResponse(r *procurement.Requisition, departmentName, classifierName string, articleNames map[uuid.UUID]string) RequisitionResponse {
	items := make([]RequisitionItemResponse, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, RequisitionItemResponse{
			ID:          item.ID,
			ArticleID:   item.ArticleID,
			ArticleName: articleNames[item.ArticleID],
			Quantity:    item.Quantity,
		})
	}
	return RequisitionResponse{
		ID:             r.ID,
		DepartmentID:   r.DepartmentID,
		DepartmentName: departmentName,
		ClassifierID:   r.ClassifierID,
		ClassifierName: classifierName,
		Description:    r.Description,
		Status:         r.Status.String(),
		Items:          items,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}
