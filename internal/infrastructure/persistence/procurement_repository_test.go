package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/procure/backend/internal/domain/procurement"
	"github.com/procure/backend/internal/domain/shared"
)

func savedRequisition(t *testing.T, repo *GormRequisitionRepository, lines []procurement.RequisitionLine) *procurement.Requisition {
	t.Helper()

	requisition, err := procurement.NewRequisition(uuid.New(), uuid.New(), "quarterly restock", lines)
	require.NoError(t, err)
	requisition.ClearDomainEvents()
	require.NoError(t, repo.Save(context.Background(), requisition))
	return requisition
}

func TestGormRequisitionRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormRequisitionRepository(db)
	ctx := context.Background()

	articleA := uuid.New()
	articleB := uuid.New()
	requisition := savedRequisition(t, repo, []procurement.RequisitionLine{
		{ArticleID: articleA, Quantity: 10},
		{ArticleID: articleB, Quantity: 5},
	})

	t.Run("round trips items", func(t *testing.T) {
		found, err := repo.FindByID(ctx, requisition.ID)
		require.NoError(t, err)
		require.Len(t, found.Items, 2)
		assert.Equal(t, procurement.RequisitionStatusDraft, found.Status)
		assert.Equal(t, 10, found.QuantityByArticle()[articleA])
		assert.Equal(t, 5, found.QuantityByArticle()[articleB])
	})

	t.Run("persists workflow transitions", func(t *testing.T) {
		found, err := repo.FindByID(ctx, requisition.ID)
		require.NoError(t, err)
		require.NoError(t, found.SendToReview())
		found.ClearDomainEvents()
		require.NoError(t, repo.Save(ctx, found))

		again, err := repo.FindByID(ctx, requisition.ID)
		require.NoError(t, err)
		assert.Equal(t, procurement.RequisitionStatusInReview, again.Status)
	})

	t.Run("filters by status", func(t *testing.T) {
		inReview, err := repo.FindByStatus(ctx, procurement.RequisitionStatusInReview, shared.DefaultFilter())
		require.NoError(t, err)
		assert.Len(t, inReview, 1)

		approved, err := repo.FindByStatus(ctx, procurement.RequisitionStatusApproved, shared.DefaultFilter())
		require.NoError(t, err)
		assert.Empty(t, approved)
	})

	t.Run("returns not found for unknown id", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormQuotationRepository(t *testing.T) {
	db := newTestDB(t)
	requisitionRepo := NewGormRequisitionRepository(db)
	repo := NewGormQuotationRepository(db)
	ctx := context.Background()

	articleID := uuid.New()
	supplierID := uuid.New()
	requisition := savedRequisition(t, requisitionRepo, []procurement.RequisitionLine{
		{ArticleID: articleID, Quantity: 10},
	})

	quotation, err := procurement.NewQuotation(requisition.ID)
	require.NoError(t, err)
	quotation.ClearDomainEvents()
	require.NoError(t, repo.Save(ctx, quotation))

	t.Run("exists by requisition id", func(t *testing.T) {
		exists, err := repo.ExistsByRequisitionID(ctx, requisition.ID)
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.ExistsByRequisitionID(ctx, uuid.New())
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("finds by requisition id", func(t *testing.T) {
		found, err := repo.FindByRequisitionID(ctx, requisition.ID)
		require.NoError(t, err)
		assert.Equal(t, quotation.ID, found.ID)
	})

	t.Run("round trips suppliers and quotes", func(t *testing.T) {
		found, err := repo.FindByID(ctx, quotation.ID)
		require.NoError(t, err)

		_, err = found.AddSupplier(supplierID)
		require.NoError(t, err)
		require.NoError(t, found.LoadSupplierQuotes(supplierID, []procurement.SupplierQuote{
			{ArticleID: articleID, UnitPrice: decimal.RequireFromString("4.50")},
		}, requisition.QuantityByArticle()))
		found.ClearDomainEvents()
		require.NoError(t, repo.Save(ctx, found))

		again, err := repo.FindByID(ctx, quotation.ID)
		require.NoError(t, err)
		require.Len(t, again.Suppliers, 1)
		require.Len(t, again.Suppliers[0].Items, 1)
		item := again.Suppliers[0].Items[0]
		assert.Equal(t, supplierID, again.Suppliers[0].SupplierID)
		assert.Equal(t, 10, item.Quantity)
		assert.True(t, item.UnitPrice.Equal(decimal.RequireFromString("4.50")))
	})

	t.Run("reloading replaces prices in place", func(t *testing.T) {
		found, err := repo.FindByID(ctx, quotation.ID)
		require.NoError(t, err)
		require.NoError(t, found.LoadSupplierQuotes(supplierID, []procurement.SupplierQuote{
			{ArticleID: articleID, UnitPrice: decimal.RequireFromString("4.25")},
		}, requisition.QuantityByArticle()))
		found.ClearDomainEvents()
		require.NoError(t, repo.Save(ctx, found))

		again, err := repo.FindByID(ctx, quotation.ID)
		require.NoError(t, err)
		require.Len(t, again.Suppliers[0].Items, 1)
		assert.True(t, again.Suppliers[0].Items[0].UnitPrice.Equal(decimal.RequireFromString("4.25")))
	})
}
