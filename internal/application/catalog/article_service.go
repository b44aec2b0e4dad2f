package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/procure/backend/internal/domain/catalog"
	"github.com/procure/backend/internal/domain/shared"
)

// ArticleService handles article operations
type ArticleService struct {
	articleRepo    catalog.ArticleRepository
	classifierRepo catalog.ClassifierRepository
	publisher      shared.EventPublisher
}

// NewArticleService creates a new ArticleService
func NewArticleService(articleRepo catalog.ArticleRepository, classifierRepo catalog.ClassifierRepository, publisher shared.EventPublisher) *ArticleService {
	return &ArticleService{
		articleRepo:    articleRepo,
		classifierRepo: classifierRepo,
		publisher:      publisher,
	}
}

// Create creates a new article, verifying the classifier when given
func (s *ArticleService) Create(ctx context.Context, req CreateArticleRequest) (*ArticleResponse, error) {
	classifierName := ""
	if req.ClassifierID != nil {
		classifier, err := s.classifierRepo.FindByID(ctx, *req.ClassifierID)
		if err != nil {
			return nil, err
		}
		classifierName = classifier.Name
	}

	article, err := catalog.NewArticle(req.Name, req.ClassifierID)
	if err != nil {
		return nil, err
	}

	if err := s.articleRepo.Save(ctx, article); err != nil {
		return nil, err
	}
	publishEvents(ctx, s.publisher, article)

	response := ToArticleResponse(article, classifierName)
	return &response, nil
}

// GetByID retrieves an article with its classifier name resolved
func (s *ArticleService) GetByID(ctx context.Context, id uuid.UUID) (*ArticleResponse, error) {
	article, err := s.articleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	classifierName := ""
	if article.ClassifierID != nil {
		classifier, err := s.classifierRepo.FindByID(ctx, *article.ClassifierID)
		if err == nil {
			classifierName = classifier.Name
		}
	}

	response := ToArticleResponse(article, classifierName)
	return &response, nil
}

// List retrieves articles with classifier names resolved
func (s *ArticleService) List(ctx context.Context, classifierID *uuid.UUID, filter ListFilter) ([]ArticleResponse, int64, error) {
	domainFilter := filter.toDomain()

	var articles []catalog.Article
	var err error
	if classifierID != nil {
		domainFilter.Filters["classifier_id"] = *classifierID
		articles, err = s.articleRepo.FindByClassifier(ctx, *classifierID, domainFilter)
	} else {
		articles, err = s.articleRepo.FindAll(ctx, domainFilter)
	}
	if err != nil {
		return nil, 0, err
	}

	total, err := s.articleRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	names, err := s.classifierNames(ctx, articles)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]ArticleResponse, 0, len(articles))
	for i := range articles {
		name := ""
		if articles[i].ClassifierID != nil {
			name = names[*articles[i].ClassifierID]
		}
		responses = append(responses, ToArticleResponse(&articles[i], name))
	}
	return responses, total, nil
}

func (s *ArticleService) classifierNames(ctx context.Context, articles []catalog.Article) (map[uuid.UUID]string, error) {
	idSet := make(map[uuid.UUID]bool)
	ids := make([]uuid.UUID, 0)
	for i := range articles {
		if articles[i].ClassifierID != nil && !idSet[*articles[i].ClassifierID] {
			idSet[*articles[i].ClassifierID] = true
			ids = append(ids, *articles[i].ClassifierID)
		}
	}
	if len(ids) == 0 {
		return map[uuid.UUID]string{}, nil
	}

	classifiers, err := s.classifierRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	names := make(map[uuid.UUID]string, len(classifiers))
	for i := range classifiers {
		names[classifiers[i].ID] = classifiers[i].Name
	}
	return names, nil
}
