package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/procure/backend/internal/domain/partner"
	"github.com/procure/backend/internal/domain/shared"
)

func TestGormSupplierRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormSupplierRepository(db)
	ctx := context.Background()

	supplier, err := partner.NewSupplier("Acme Trading", "sales@acme.example")
	require.NoError(t, err)
	supplier.ClearDomainEvents()
	require.NoError(t, repo.Save(ctx, supplier))

	t.Run("finds by id", func(t *testing.T) {
		found, err := repo.FindByID(ctx, supplier.ID)
		require.NoError(t, err)
		assert.Equal(t, "Acme Trading", found.Name)
		assert.Equal(t, "sales@acme.example", found.Contact)
	})

	t.Run("finds by ids", func(t *testing.T) {
		found, err := repo.FindByIDs(ctx, []uuid.UUID{supplier.ID, uuid.New()})
		require.NoError(t, err)
		assert.Len(t, found, 1)
	})

	t.Run("deletes", func(t *testing.T) {
		gone, err := partner.NewSupplier("Short Lived", "")
		require.NoError(t, err)
		gone.ClearDomainEvents()
		require.NoError(t, repo.Save(ctx, gone))

		require.NoError(t, repo.Delete(ctx, gone.ID))
		_, err = repo.FindByID(ctx, gone.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormBusinessUnitRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormBusinessUnitRepository(db)
	ctx := context.Background()

	unit, err := partner.NewBusinessUnit("Headquarters")
	require.NoError(t, err)
	unit.ClearDomainEvents()
	require.NoError(t, repo.Save(ctx, unit))

	t.Run("finds by name", func(t *testing.T) {
		found, err := repo.FindByName(ctx, "Headquarters")
		require.NoError(t, err)
		assert.Equal(t, unit.ID, found.ID)
	})

	t.Run("finds by ids", func(t *testing.T) {
		found, err := repo.FindByIDs(ctx, []uuid.UUID{unit.ID})
		require.NoError(t, err)
		assert.Len(t, found, 1)

		empty, err := repo.FindByIDs(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, empty)
	})

	t.Run("counts", func(t *testing.T) {
		count, err := repo.Count(ctx, shared.DefaultFilter())
		require.NoError(t, err)
		assert.EqualValues(t, 1, count)
	})
}
