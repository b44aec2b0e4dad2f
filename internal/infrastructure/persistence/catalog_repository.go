package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/procure/backend/internal/domain/catalog"
	"github.com/procure/backend/internal/domain/shared"
)

// GormClassifierRepository implements ClassifierRepository using GORM
type GormClassifierRepository struct {
	db *gorm.DB
}

var _ catalog.ClassifierRepository = (*GormClassifierRepository)(nil)

// NewGormClassifierRepository creates a new GormClassifierRepository
func NewGormClassifierRepository(db *gorm.DB) *GormClassifierRepository {
	return &GormClassifierRepository{db: db}
}

// FindByID finds a classifier by its ID
func (r *GormClassifierRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Classifier, error) {
	var classifier catalog.Classifier
	if err := r.db.WithContext(ctx).First(&classifier, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &classifier, nil
}

// FindByIDs finds multiple classifiers by their IDs
func (r *GormClassifierRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]catalog.Classifier, error) {
	if len(ids) == 0 {
		return []catalog.Classifier{}, nil
	}
	var classifiers []catalog.Classifier
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&classifiers).Error; err != nil {
		return nil, err
	}
	return classifiers, nil
}

// FindByName finds a classifier by its exact name
func (r *GormClassifierRepository) FindByName(ctx context.Context, name string) (*catalog.Classifier, error) {
	var classifier catalog.Classifier
	if err := r.db.WithContext(ctx).First(&classifier, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &classifier, nil
}

// FindAll finds all classifiers matching the filter
func (r *GormClassifierRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Classifier, error) {
	var classifiers []catalog.Classifier
	query := r.applyFilter(r.db.WithContext(ctx).Model(&catalog.Classifier{}), filter)
	query = applySort(query, filter, catalogSortColumns, "name")
	query = applyPagination(query, filter)

	if err := query.Find(&classifiers).Error; err != nil {
		return nil, err
	}
	return classifiers, nil
}

// Save creates or updates a classifier
func (r *GormClassifierRepository) Save(ctx context.Context, classifier *catalog.Classifier) error {
	return r.db.WithContext(ctx).Save(classifier).Error
}

// Delete deletes a classifier
func (r *GormClassifierRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&catalog.Classifier{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts classifiers matching the filter
func (r *GormClassifierRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilter(r.db.WithContext(ctx).Model(&catalog.Classifier{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormClassifierRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Search+"%")
	}
	return query
}

// GormArticleRepository implements ArticleRepository using GORM
type GormArticleRepository struct {
	db *gorm.DB
}

var _ catalog.ArticleRepository = (*GormArticleRepository)(nil)

// NewGormArticleRepository creates a new GormArticleRepository
func NewGormArticleRepository(db *gorm.DB) *GormArticleRepository {
	return &GormArticleRepository{db: db}
}

// FindByID finds an article by its ID
func (r *GormArticleRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Article, error) {
	var article catalog.Article
	if err := r.db.WithContext(ctx).First(&article, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &article, nil
}

// FindByIDs finds multiple articles by their IDs
func (r *GormArticleRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]catalog.Article, error) {
	if len(ids) == 0 {
		return []catalog.Article{}, nil
	}
	var articles []catalog.Article
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

// FindByClassifier finds all articles under a classifier
func (r *GormArticleRepository) FindByClassifier(ctx context.Context, classifierID uuid.UUID, filter shared.Filter) ([]catalog.Article, error) {
	var articles []catalog.Article
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&catalog.Article{}).Where("classifier_id = ?", classifierID),
		filter,
	)
	query = applySort(query, filter, articleSortColumns, "name")
	query = applyPagination(query, filter)

	if err := query.Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

// FindAll finds all articles matching the filter
func (r *GormArticleRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Article, error) {
	var articles []catalog.Article
	query := r.applyFilter(r.db.WithContext(ctx).Model(&catalog.Article{}), filter)
	query = applySort(query, filter, articleSortColumns, "name")
	query = applyPagination(query, filter)

	if err := query.Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

// Save creates or updates an article
func (r *GormArticleRepository) Save(ctx context.Context, article *catalog.Article) error {
	return r.db.WithContext(ctx).Save(article).Error
}

// Delete deletes an article
func (r *GormArticleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&catalog.Article{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts articles matching the filter
func (r *GormArticleRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilter(r.db.WithContext(ctx).Model(&catalog.Article{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormArticleRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Search+"%")
	}
	for key, value := range filter.Filters {
		switch key {
		case "classifier_id":
			query = query.Where("classifier_id = ?", value)
		case "unclassified":
			if value == true {
				query = query.Where("classifier_id IS NULL")
			}
		}
	}
	return query
}
