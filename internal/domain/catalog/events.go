package catalog

import (
	"github.com/google/uuid"
	"github.com/procure/backend/internal/domain/shared"
)

// Aggregate type constants
const (
	AggregateTypeClassifier = "Classifier"
	AggregateTypeArticle    = "Article"
)

// Event type constants
const (
	EventTypeClassifierCreated = "ClassifierCreated"
	EventTypeArticleCreated    = "ArticleCreated"
)

// ClassifierCreatedEvent is published when a new classifier is created
type ClassifierCreatedEvent struct {
	shared.BaseDomainEvent
	ClassifierID uuid.UUID `json:"classifier_id"`
	Name         string    `json:"name"`
}

// NewClassifierCreatedEvent creates a new ClassifierCreatedEvent
func NewClassifierCreatedEvent(classifier *Classifier) *ClassifierCreatedEvent {
	return &ClassifierCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeClassifierCreated, AggregateTypeClassifier, classifier.ID),
		ClassifierID:    classifier.ID,
		Name:            classifier.Name,
	}
}

// ArticleCreatedEvent is published when a new article is created
type ArticleCreatedEvent struct {
	shared.BaseDomainEvent
	ArticleID    uuid.UUID  `json:"article_id"`
	Name         string     `json:"name"`
	ClassifierID *uuid.UUID `json:"classifier_id,omitempty"`
}

// NewArticleCreatedEvent creates a new ArticleCreatedEvent
func NewArticleCreatedEvent(article *Article) *ArticleCreatedEvent {
	return &ArticleCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeArticleCreated, AggregateTypeArticle, article.ID),
		ArticleID:       article.ID,
		Name:            article.Name,
		ClassifierID:    article.ClassifierID,
	}
}
