package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/procure/backend/internal/domain/catalog"
	"github.com/procure/backend/internal/domain/shared"
)

func TestGormClassifierRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormClassifierRepository(db)
	ctx := context.Background()

	classifier, err := catalog.NewClassifier("Office Supplies")
	require.NoError(t, err)
	classifier.ClearDomainEvents()
	require.NoError(t, repo.Save(ctx, classifier))

	t.Run("finds by id", func(t *testing.T) {
		found, err := repo.FindByID(ctx, classifier.ID)
		require.NoError(t, err)
		assert.Equal(t, "Office Supplies", found.Name)
	})

	t.Run("finds by name", func(t *testing.T) {
		found, err := repo.FindByName(ctx, "Office Supplies")
		require.NoError(t, err)
		assert.Equal(t, classifier.ID, found.ID)
	})

	t.Run("returns not found for unknown id", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("finds by ids", func(t *testing.T) {
		other, err := catalog.NewClassifier("IT Equipment")
		require.NoError(t, err)
		other.ClearDomainEvents()
		require.NoError(t, repo.Save(ctx, other))

		found, err := repo.FindByIDs(ctx, []uuid.UUID{classifier.ID, other.ID})
		require.NoError(t, err)
		assert.Len(t, found, 2)

		empty, err := repo.FindByIDs(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, empty)
	})

	t.Run("counts", func(t *testing.T) {
		count, err := repo.Count(ctx, shared.DefaultFilter())
		require.NoError(t, err)
		assert.EqualValues(t, 2, count)
	})

	t.Run("deletes", func(t *testing.T) {
		gone, err := catalog.NewClassifier("Short Lived")
		require.NoError(t, err)
		gone.ClearDomainEvents()
		require.NoError(t, repo.Save(ctx, gone))

		require.NoError(t, repo.Delete(ctx, gone.ID))
		assert.ErrorIs(t, repo.Delete(ctx, gone.ID), shared.ErrNotFound)
	})
}

func TestGormArticleRepository(t *testing.T) {
	db := newTestDB(t)
	classifierRepo := NewGormClassifierRepository(db)
	repo := NewGormArticleRepository(db)
	ctx := context.Background()

	classifier, err := catalog.NewClassifier("Office Supplies")
	require.NoError(t, err)
	classifier.ClearDomainEvents()
	require.NoError(t, classifierRepo.Save(ctx, classifier))

	classified, err := catalog.NewArticle("Printer Paper", &classifier.ID)
	require.NoError(t, err)
	classified.ClearDomainEvents()
	require.NoError(t, repo.Save(ctx, classified))

	unclassified, err := catalog.NewArticle("Mystery Box", nil)
	require.NoError(t, err)
	unclassified.ClearDomainEvents()
	require.NoError(t, repo.Save(ctx, unclassified))

	t.Run("finds by id", func(t *testing.T) {
		found, err := repo.FindByID(ctx, classified.ID)
		require.NoError(t, err)
		require.NotNil(t, found.ClassifierID)
		assert.Equal(t, classifier.ID, *found.ClassifierID)
	})

	t.Run("finds by classifier", func(t *testing.T) {
		found, err := repo.FindByClassifier(ctx, classifier.ID, shared.DefaultFilter())
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "Printer Paper", found[0].Name)
	})

	t.Run("persists nil classifier", func(t *testing.T) {
		found, err := repo.FindByID(ctx, unclassified.ID)
		require.NoError(t, err)
		assert.Nil(t, found.ClassifierID)
	})

	t.Run("lists all", func(t *testing.T) {
		found, err := repo.FindAll(ctx, shared.DefaultFilter())
		require.NoError(t, err)
		assert.Len(t, found, 2)
	})
}
