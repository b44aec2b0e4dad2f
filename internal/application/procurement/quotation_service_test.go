package procurement

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/procure/backend/internal/domain/partner"
	"github.com/procure/backend/internal/domain/procurement"
	"github.com/procure/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockQuotationRepository is a mock implementation of QuotationRepository
type MockQuotationRepository struct {
	mock.Mock
}

func (m *MockQuotationRepository) FindByID(ctx context.Context, id uuid.UUID) (*procurement.Quotation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*procurement.Quotation), args.Error(1)
}

func (m *MockQuotationRepository) FindByRequisitionID(ctx context.Context, requisitionID uuid.UUID) (*procurement.Quotation, error) {
	args := m.Called(ctx, requisitionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*procurement.Quotation), args.Error(1)
}

func (m *MockQuotationRepository) ExistsByRequisitionID(ctx context.Context, requisitionID uuid.UUID) (bool, error) {
	args := m.Called(ctx, requisitionID)
	return args.Bool(0), args.Error(1)
}

func (m *MockQuotationRepository) FindAll(ctx context.Context, filter shared.Filter) ([]procurement.Quotation, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]procurement.Quotation), args.Error(1)
}

func (m *MockQuotationRepository) Save(ctx context.Context, quotation *procurement.Quotation) error {
	args := m.Called(ctx, quotation)
	return args.Error(0)
}

func (m *MockQuotationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockQuotationRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockSupplierRepository is a mock implementation of SupplierRepository
type MockSupplierRepository struct {
	mock.Mock
}

func (m *MockSupplierRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Supplier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]partner.Supplier, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]partner.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Supplier, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]partner.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) Save(ctx context.Context, supplier *partner.Supplier) error {
	args := m.Called(ctx, supplier)
	return args.Error(0)
}

func (m *MockSupplierRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSupplierRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

type quotationFixture struct {
	quotationRepo   *MockQuotationRepository
	requisitionRepo *MockRequisitionRepository
	supplierRepo    *MockSupplierRepository
	articleRepo     *MockArticleRepository
	service         *QuotationService

	requisition *procurement.Requisition
	supplier    *partner.Supplier
	articleID   uuid.UUID
}

func newQuotationFixture(t *testing.T) *quotationFixture {
	t.Helper()

	articleID := uuid.New()
	requisition, err := procurement.NewRequisition(uuid.New(), uuid.New(), "",
		[]procurement.RequisitionLine{{ArticleID: articleID, Quantity: 10}})
	require.NoError(t, err)
	require.NoError(t, requisition.SendToReview())
	require.NoError(t, requisition.Approve())
	requisition.ClearDomainEvents()

	supplier, err := partner.NewSupplier("Acme Trading", "sales@acme.test")
	require.NoError(t, err)

	f := &quotationFixture{
		quotationRepo:   new(MockQuotationRepository),
		requisitionRepo: new(MockRequisitionRepository),
		supplierRepo:    new(MockSupplierRepository),
		articleRepo:     new(MockArticleRepository),
		requisition:     requisition,
		supplier:        supplier,
		articleID:       articleID,
	}
	f.service = NewQuotationService(f.quotationRepo, f.requisitionRepo, f.supplierRepo, f.articleRepo, nil)
	return f
}

func TestQuotationService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("opens quotation for approved requisition", func(t *testing.T) {
		f := newQuotationFixture(t)

		f.requisitionRepo.On("FindByID", ctx, f.requisition.ID).Return(f.requisition, nil)
		f.quotationRepo.On("ExistsByRequisitionID", ctx, f.requisition.ID).Return(false, nil)
		f.quotationRepo.On("Save", ctx, mock.AnythingOfType("*procurement.Quotation")).Return(nil)

		response, err := f.service.Create(ctx, CreateQuotationRequest{RequisitionID: f.requisition.ID})
		require.NoError(t, err)
		assert.Equal(t, "open", response.Status)
		assert.Equal(t, f.requisition.ID, response.RequisitionID)
	})

	t.Run("rejects requisition that is not approved", func(t *testing.T) {
		f := newQuotationFixture(t)

		draft, err := procurement.NewRequisition(uuid.New(), uuid.New(), "",
			[]procurement.RequisitionLine{{ArticleID: uuid.New(), Quantity: 1}})
		require.NoError(t, err)

		f.requisitionRepo.On("FindByID", ctx, draft.ID).Return(draft, nil)

		response, err := f.service.Create(ctx, CreateQuotationRequest{RequisitionID: draft.ID})
		assert.Nil(t, response)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "approved requisitions")
		f.quotationRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects second quotation for the same requisition", func(t *testing.T) {
		f := newQuotationFixture(t)

		f.requisitionRepo.On("FindByID", ctx, f.requisition.ID).Return(f.requisition, nil)
		f.quotationRepo.On("ExistsByRequisitionID", ctx, f.requisition.ID).Return(true, nil)

		response, err := f.service.Create(ctx, CreateQuotationRequest{RequisitionID: f.requisition.ID})
		assert.Nil(t, response)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already exists")
	})
}

func TestQuotationService_AddSupplier(t *testing.T) {
	ctx := context.Background()

	t.Run("invites an existing supplier", func(t *testing.T) {
		f := newQuotationFixture(t)

		quotation, err := procurement.NewQuotation(f.requisition.ID)
		require.NoError(t, err)
		quotation.ClearDomainEvents()

		f.quotationRepo.On("FindByID", ctx, quotation.ID).Return(quotation, nil)
		f.supplierRepo.On("FindByID", ctx, f.supplier.ID).Return(f.supplier, nil)
		f.supplierRepo.On("FindByIDs", ctx, []uuid.UUID{f.supplier.ID}).Return([]partner.Supplier{*f.supplier}, nil)
		f.quotationRepo.On("Save", ctx, quotation).Return(nil)

		response, err := f.service.AddSupplier(ctx, quotation.ID, AddQuotationSupplierRequest{SupplierID: f.supplier.ID})
		require.NoError(t, err)
		require.Len(t, response.Suppliers, 1)
		assert.Equal(t, "Acme Trading", response.Suppliers[0].SupplierName)
	})

	t.Run("fails when supplier does not exist", func(t *testing.T) {
		f := newQuotationFixture(t)

		quotation, err := procurement.NewQuotation(f.requisition.ID)
		require.NoError(t, err)

		missingID := uuid.New()
		f.quotationRepo.On("FindByID", ctx, quotation.ID).Return(quotation, nil)
		f.supplierRepo.On("FindByID", ctx, missingID).Return(nil, shared.ErrNotFound)

		response, err := f.service.AddSupplier(ctx, quotation.ID, AddQuotationSupplierRequest{SupplierID: missingID})
		assert.Nil(t, response)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		f.quotationRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestQuotationService_LoadSupplierQuotes(t *testing.T) {
	ctx := context.Background()

	t.Run("quantities come from the requisition", func(t *testing.T) {
		f := newQuotationFixture(t)

		quotation, err := procurement.NewQuotation(f.requisition.ID)
		require.NoError(t, err)
		_, err = quotation.AddSupplier(f.supplier.ID)
		require.NoError(t, err)
		quotation.ClearDomainEvents()

		f.quotationRepo.On("FindByID", ctx, quotation.ID).Return(quotation, nil)
		f.requisitionRepo.On("FindByID", ctx, f.requisition.ID).Return(f.requisition, nil)
		f.supplierRepo.On("FindByIDs", ctx, []uuid.UUID{f.supplier.ID}).Return([]partner.Supplier{*f.supplier}, nil)
		f.articleRepo.On("FindByIDs", ctx, mock.Anything).Return(nil, nil).Maybe()
		f.quotationRepo.On("Save", ctx, quotation).Return(nil)

		response, err := f.service.LoadSupplierQuotes(ctx, quotation.ID, f.supplier.ID, LoadSupplierQuotesRequest{
			Items: []SupplierQuoteRequest{{
				ArticleID: f.articleID,
				Quantity:  999,
				UnitPrice: decimal.RequireFromString("4.50"),
			}},
		})
		require.NoError(t, err)
		require.Len(t, response.Suppliers, 1)
		require.Len(t, response.Suppliers[0].Items, 1)
		assert.Equal(t, 10, response.Suppliers[0].Items[0].Quantity)
		assert.True(t, decimal.RequireFromString("4.50").Equal(response.Suppliers[0].Items[0].UnitPrice))
	})

	t.Run("rejects article outside the requisition", func(t *testing.T) {
		f := newQuotationFixture(t)

		quotation, err := procurement.NewQuotation(f.requisition.ID)
		require.NoError(t, err)
		_, err = quotation.AddSupplier(f.supplier.ID)
		require.NoError(t, err)

		f.quotationRepo.On("FindByID", ctx, quotation.ID).Return(quotation, nil)
		f.requisitionRepo.On("FindByID", ctx, f.requisition.ID).Return(f.requisition, nil)

		response, err := f.service.LoadSupplierQuotes(ctx, quotation.ID, f.supplier.ID, LoadSupplierQuotesRequest{
			Items: []SupplierQuoteRequest{{
				ArticleID: uuid.New(),
				UnitPrice: decimal.RequireFromString("1.00"),
			}},
		})
		assert.Nil(t, response)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not part of the requisition")
		f.quotationRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestQuotationService_Comparison(t *testing.T) {
	ctx := context.Background()

	t.Run("omits lines a supplier did not quote", func(t *testing.T) {
		f := newQuotationFixture(t)

		secondArticle := uuid.New()
		requisition, err := procurement.NewRequisition(uuid.New(), uuid.New(), "",
			[]procurement.RequisitionLine{
				{ArticleID: f.articleID, Quantity: 10},
				{ArticleID: secondArticle, Quantity: 5},
			})
		require.NoError(t, err)
		require.NoError(t, requisition.SendToReview())
		require.NoError(t, requisition.Approve())

		quotation, err := procurement.NewQuotation(requisition.ID)
		require.NoError(t, err)
		_, err = quotation.AddSupplier(f.supplier.ID)
		require.NoError(t, err)
		err = quotation.LoadSupplierQuotes(f.supplier.ID,
			[]procurement.SupplierQuote{{ArticleID: f.articleID, UnitPrice: decimal.RequireFromString("4.50")}},
			requisition.QuantityByArticle())
		require.NoError(t, err)

		f.quotationRepo.On("FindByID", ctx, quotation.ID).Return(quotation, nil)
		f.requisitionRepo.On("FindByID", ctx, requisition.ID).Return(requisition, nil)
		f.supplierRepo.On("FindByIDs", ctx, []uuid.UUID{f.supplier.ID}).Return([]partner.Supplier{*f.supplier}, nil)
		f.articleRepo.On("FindByIDs", ctx, mock.Anything).Return(nil, nil)

		comparison, err := f.service.Comparison(ctx, quotation.ID)
		require.NoError(t, err)
		require.Len(t, comparison.Suppliers, 1)
		require.Len(t, comparison.Lines, 2)

		quoted := comparison.Lines[0]
		assert.Equal(t, f.articleID, quoted.ArticleID)
		assert.Equal(t, 10, quoted.Quantity)
		require.Len(t, quoted.Quotes, 1)
		assert.True(t, decimal.RequireFromString("4.50").Equal(quoted.Quotes[0].UnitPrice))

		unquoted := comparison.Lines[1]
		assert.Equal(t, secondArticle, unquoted.ArticleID)
		assert.Empty(t, unquoted.Quotes)
	})
}

func TestQuotationService_Workflow(t *testing.T) {
	ctx := context.Background()

	t.Run("approves an open quotation", func(t *testing.T) {
		f := newQuotationFixture(t)

		quotation, err := procurement.NewQuotation(f.requisition.ID)
		require.NoError(t, err)
		quotation.ClearDomainEvents()

		f.quotationRepo.On("FindByID", ctx, quotation.ID).Return(quotation, nil)
		f.supplierRepo.On("FindByIDs", ctx, mock.Anything).Return(nil, nil).Maybe()
		f.quotationRepo.On("Save", ctx, quotation).Return(nil)

		response, err := f.service.Approve(ctx, quotation.ID)
		require.NoError(t, err)
		assert.Equal(t, "approved", response.Status)
	})

	t.Run("rejects transition on a closed quotation", func(t *testing.T) {
		f := newQuotationFixture(t)

		quotation, err := procurement.NewQuotation(f.requisition.ID)
		require.NoError(t, err)
		require.NoError(t, quotation.Approve())

		f.quotationRepo.On("FindByID", ctx, quotation.ID).Return(quotation, nil)

		response, err := f.service.Reject(ctx, quotation.ID)
		assert.Nil(t, response)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Cannot transition")
	})
}
