package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/procure/backend/internal/domain/shared"
)

// Article is a purchasable item. The classifier reference is optional at the
// catalog level; classifier membership is enforced when an article is placed
// on a requisition.
type Article struct {
	shared.BaseAggregateRoot
	Name         string     `gorm:"type:varchar(200);not null;index"`
	ClassifierID *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName returns the table name for GORM
func (Article) TableName() string {
	return "articles"
}

// NewArticle creates a new article
func NewArticle(name string, classifierID *uuid.UUID) (*Article, error) {
	if err := validateCatalogName(name); err != nil {
		return nil, err
	}
	if classifierID != nil && *classifierID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CLASSIFIER", "Classifier ID cannot be nil")
	}

	article := &Article{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              strings.TrimSpace(name),
		ClassifierID:      classifierID,
	}

	article.AddDomainEvent(NewArticleCreatedEvent(article))

	return article, nil
}

// BelongsTo reports whether the article is assigned to the given classifier
func (a *Article) BelongsTo(classifierID uuid.UUID) bool {
	return a.ClassifierID != nil && *a.ClassifierID == classifierID
}

// AssignClassifier moves the article under a classifier
func (a *Article) AssignClassifier(classifierID uuid.UUID) error {
	if classifierID == uuid.Nil {
		return shared.NewDomainError("INVALID_CLASSIFIER", "Classifier ID cannot be nil")
	}

	a.ClassifierID = &classifierID
	a.UpdatedAt = time.Now()
	a.IncrementVersion()

	return nil
}
