package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/procure/backend/internal/domain/catalog"
	"github.com/procure/backend/internal/domain/shared"
)

// CreateClassifierRequest is the input for creating a classifier
type CreateClassifierRequest struct {
	Name string `json:"name" binding:"required,max=200"`
}

// ClassifierResponse represents a classifier in API responses
type ClassifierResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToClassifierResponse converts a domain classifier to a response DTO
func ToClassifierResponse(c *catalog.Classifier) ClassifierResponse {
	return ClassifierResponse{
		ID:        c.ID,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ToClassifierResponses converts a slice of classifiers
func ToClassifierResponses(classifiers []catalog.Classifier) []ClassifierResponse {
	responses := make([]ClassifierResponse, 0, len(classifiers))
	for i := range classifiers {
		responses = append(responses, ToClassifierResponse(&classifiers[i]))
	}
	return responses
}

// CreateArticleRequest is the input for creating an article
type CreateArticleRequest struct {
	Name         string     `json:"name" binding:"required,max=200"`
	ClassifierID *uuid.UUID `json:"classifier_id,omitempty"`
}

// ArticleResponse represents an article with its classifier name resolved
type ArticleResponse struct {
	ID             uuid.UUID  `json:"id"`
	Name           string     `json:"name"`
	ClassifierID   *uuid.UUID `json:"classifier_id,omitempty"`
	ClassifierName string     `json:"classifier_name,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// ToArticleResponse converts a domain article to a response DTO
func ToArticleResponse(a *catalog.Article, classifierName string) ArticleResponse {
	return ArticleResponse{
		ID:             a.ID,
		Name:           a.Name,
		ClassifierID:   a.ClassifierID,
		ClassifierName: classifierName,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

// ListFilter is the common pagination input for catalog listings
type ListFilter struct {
	Page     int    `form:"page,omitempty" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size,omitempty" binding:"omitempty,min=1,max=100"`
	Search   string `form:"search,omitempty"`
}

func (f ListFilter) toDomain() shared.Filter {
	filter := shared.DefaultFilter()
	if f.Page > 0 {
		filter.Page = f.Page
	}
	if f.PageSize > 0 {
		filter.PageSize = f.PageSize
	}
	filter.Search = f.Search
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
