package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/procure/backend/internal/domain/shared"
)

// ClassifierRepository defines the interface for classifier persistence
type ClassifierRepository interface {
	// FindByID finds a classifier by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Classifier, error)

	// FindByIDs finds multiple classifiers by their IDs
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Classifier, error)

	// FindByName finds a classifier by its exact name
	FindByName(ctx context.Context, name string) (*Classifier, error)

	// FindAll finds all classifiers matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Classifier, error)

	// Save creates or updates a classifier
	Save(ctx context.Context, classifier *Classifier) error

	// Delete deletes a classifier
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts classifiers matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// ArticleRepository defines the interface for article persistence
type ArticleRepository interface {
	// FindByID finds an article by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Article, error)

	// FindByIDs finds multiple articles by their IDs
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Article, error)

	// FindByClassifier finds all articles under a classifier
	FindByClassifier(ctx context.Context, classifierID uuid.UUID, filter shared.Filter) ([]Article, error)

	// FindAll finds all articles matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Article, error)

	// Save creates or updates an article
	Save(ctx context.Context, article *Article) error

	// Delete deletes an article
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts articles matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
