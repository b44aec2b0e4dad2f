package procurement

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/procure/backend/internal/domain/catalog"
	"github.com/procure/backend/internal/domain/identity"
	"github.com/procure/backend/internal/domain/procurement"
	"github.com/procure/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRequisitionRepository is a mock implementation of RequisitionRepository
type MockRequisitionRepository struct {
	mock.Mock
}

func (m *MockRequisitionRepository) FindByID(ctx context.Context, id uuid.UUID) (*procurement.Requisition, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*procurement.Requisition), args.Error(1)
}

func (m *MockRequisitionRepository) FindAll(ctx context.Context, filter shared.Filter) ([]procurement.Requisition, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]procurement.Requisition), args.Error(1)
}

func (m *MockRequisitionRepository) FindByStatus(ctx context.Context, status procurement.RequisitionStatus, filter shared.Filter) ([]procurement.Requisition, error) {
	args := m.Called(ctx, status, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]procurement.Requisition), args.Error(1)
}

func (m *MockRequisitionRepository) Save(ctx context.Context, requisition *procurement.Requisition) error {
	args := m.Called(ctx, requisition)
	return args.Error(0)
}

func (m *MockRequisitionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRequisitionRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockDepartmentRepository is a mock implementation of DepartmentRepository
type MockDepartmentRepository struct {
	mock.Mock
}

func (m *MockDepartmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.Department, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Department), args.Error(1)
}

func (m *MockDepartmentRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]identity.Department, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]identity.Department), args.Error(1)
}

func (m *MockDepartmentRepository) FindByName(ctx context.Context, name string) (*identity.Department, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Department), args.Error(1)
}

func (m *MockDepartmentRepository) FindAll(ctx context.Context, filter shared.Filter) ([]identity.Department, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]identity.Department), args.Error(1)
}

func (m *MockDepartmentRepository) Save(ctx context.Context, department *identity.Department) error {
	args := m.Called(ctx, department)
	return args.Error(0)
}

func (m *MockDepartmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDepartmentRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockClassifierRepository is a mock implementation of ClassifierRepository
type MockClassifierRepository struct {
	mock.Mock
}

func (m *MockClassifierRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Classifier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Classifier), args.Error(1)
}

func (m *MockClassifierRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]catalog.Classifier, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Classifier), args.Error(1)
}

func (m *MockClassifierRepository) FindByName(ctx context.Context, name string) (*catalog.Classifier, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Classifier), args.Error(1)
}

func (m *MockClassifierRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Classifier, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Classifier), args.Error(1)
}

func (m *MockClassifierRepository) Save(ctx context.Context, classifier *catalog.Classifier) error {
	args := m.Called(ctx, classifier)
	return args.Error(0)
}

func (m *MockClassifierRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockClassifierRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockArticleRepository is a mock implementation of ArticleRepository
type MockArticleRepository struct {
	mock.Mock
}

func (m *MockArticleRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Article, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Article), args.Error(1)
}

func (m *MockArticleRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]catalog.Article, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Article), args.Error(1)
}

func (m *MockArticleRepository) FindByClassifier(ctx context.Context, classifierID uuid.UUID, filter shared.Filter) ([]catalog.Article, error) {
	args := m.Called(ctx, classifierID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Article), args.Error(1)
}

func (m *MockArticleRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Article, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Article), args.Error(1)
}

func (m *MockArticleRepository) Save(ctx context.Context, article *catalog.Article) error {
	args := m.Called(ctx, article)
	return args.Error(0)
}

func (m *MockArticleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockArticleRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

type requisitionFixture struct {
	requisitionRepo *MockRequisitionRepository
	departmentRepo  *MockDepartmentRepository
	classifierRepo  *MockClassifierRepository
	articleRepo     *MockArticleRepository
	service         *RequisitionService

	department *identity.Department
	classifier *catalog.Classifier
	article    *catalog.Article
}

func newRequisitionFixture(t *testing.T) *requisitionFixture {
	t.Helper()

	department, err := identity.NewDepartment("Operations")
	require.NoError(t, err)
	classifier, err := catalog.NewClassifier("Office Supplies")
	require.NoError(t, err)
	article, err := catalog.NewArticle("Printer Paper", &classifier.ID)
	require.NoError(t, err)

	f := &requisitionFixture{
		requisitionRepo: new(MockRequisitionRepository),
		departmentRepo:  new(MockDepartmentRepository),
		classifierRepo:  new(MockClassifierRepository),
		articleRepo:     new(MockArticleRepository),
		department:      department,
		classifier:      classifier,
		article:         article,
	}
	f.service = NewRequisitionService(f.requisitionRepo, f.departmentRepo, f.classifierRepo, f.articleRepo, nil)
	return f
}

func TestRequisitionService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates draft requisition", func(t *testing.T) {
		f := newRequisitionFixture(t)

		f.departmentRepo.On("FindByID", ctx, f.department.ID).Return(f.department, nil)
		f.classifierRepo.On("FindByID", ctx, f.classifier.ID).Return(f.classifier, nil)
		f.articleRepo.On("FindByIDs", ctx, []uuid.UUID{f.article.ID}).Return([]catalog.Article{*f.article}, nil)
		f.requisitionRepo.On("Save", ctx, mock.AnythingOfType("*procurement.Requisition")).Return(nil)

		response, err := f.service.Create(ctx, CreateRequisitionRequest{
			DepartmentID: f.department.ID,
			ClassifierID: f.classifier.ID,
			Description:  "Quarterly restock",
			Items:        []RequisitionItemRequest{{ArticleID: f.article.ID, Quantity: 10}},
		})
		require.NoError(t, err)
		assert.Equal(t, "draft", response.Status)
		assert.Equal(t, "Operations", response.DepartmentName)
		assert.Equal(t, "Office Supplies", response.ClassifierName)
		require.Len(t, response.Items, 1)
		assert.Equal(t, "Printer Paper", response.Items[0].ArticleName)
		assert.Equal(t, 10, response.Items[0].Quantity)
		f.requisitionRepo.AssertExpectations(t)
	})

	t.Run("rejects article outside the classifier", func(t *testing.T) {
		f := newRequisitionFixture(t)

		otherClassifier, err := catalog.NewClassifier("Hardware")
		require.NoError(t, err)
		stray, err := catalog.NewArticle("Drill", &otherClassifier.ID)
		require.NoError(t, err)

		f.departmentRepo.On("FindByID", ctx, f.department.ID).Return(f.department, nil)
		f.classifierRepo.On("FindByID", ctx, f.classifier.ID).Return(f.classifier, nil)
		f.articleRepo.On("FindByIDs", ctx, []uuid.UUID{stray.ID}).Return([]catalog.Article{*stray}, nil)

		response, err := f.service.Create(ctx, CreateRequisitionRequest{
			DepartmentID: f.department.ID,
			ClassifierID: f.classifier.ID,
			Items:        []RequisitionItemRequest{{ArticleID: stray.ID, Quantity: 2}},
		})
		assert.Nil(t, response)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "does not belong")
		f.requisitionRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects unknown article", func(t *testing.T) {
		f := newRequisitionFixture(t)

		missingID := uuid.New()
		f.departmentRepo.On("FindByID", ctx, f.department.ID).Return(f.department, nil)
		f.classifierRepo.On("FindByID", ctx, f.classifier.ID).Return(f.classifier, nil)
		f.articleRepo.On("FindByIDs", ctx, []uuid.UUID{missingID}).Return([]catalog.Article{}, nil)

		response, err := f.service.Create(ctx, CreateRequisitionRequest{
			DepartmentID: f.department.ID,
			ClassifierID: f.classifier.ID,
			Items:        []RequisitionItemRequest{{ArticleID: missingID, Quantity: 1}},
		})
		assert.Nil(t, response)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("fails when department does not exist", func(t *testing.T) {
		f := newRequisitionFixture(t)

		missingID := uuid.New()
		f.departmentRepo.On("FindByID", ctx, missingID).Return(nil, shared.ErrNotFound)

		response, err := f.service.Create(ctx, CreateRequisitionRequest{
			DepartmentID: missingID,
			ClassifierID: f.classifier.ID,
			Items:        []RequisitionItemRequest{{ArticleID: f.article.ID, Quantity: 1}},
		})
		assert.Nil(t, response)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestRequisitionService_Workflow(t *testing.T) {
	ctx := context.Background()

	newDraft := func(t *testing.T, f *requisitionFixture) *procurement.Requisition {
		t.Helper()
		requisition, err := procurement.NewRequisition(f.department.ID, f.classifier.ID, "",
			[]procurement.RequisitionLine{{ArticleID: f.article.ID, Quantity: 3}})
		require.NoError(t, err)
		requisition.ClearDomainEvents()
		return requisition
	}

	t.Run("walks draft to approved", func(t *testing.T) {
		f := newRequisitionFixture(t)
		requisition := newDraft(t, f)

		f.requisitionRepo.On("FindByID", ctx, requisition.ID).Return(requisition, nil)
		f.requisitionRepo.On("Save", ctx, requisition).Return(nil)

		response, err := f.service.SendToReview(ctx, requisition.ID)
		require.NoError(t, err)
		assert.Equal(t, "in_review", response.Status)

		response, err = f.service.Approve(ctx, requisition.ID)
		require.NoError(t, err)
		assert.Equal(t, "approved", response.Status)
	})

	t.Run("rejects approval from draft", func(t *testing.T) {
		f := newRequisitionFixture(t)
		requisition := newDraft(t, f)

		f.requisitionRepo.On("FindByID", ctx, requisition.ID).Return(requisition, nil)

		response, err := f.service.Approve(ctx, requisition.ID)
		assert.Nil(t, response)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Cannot transition")
		f.requisitionRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects in review", func(t *testing.T) {
		f := newRequisitionFixture(t)
		requisition := newDraft(t, f)
		require.NoError(t, requisition.SendToReview())

		f.requisitionRepo.On("FindByID", ctx, requisition.ID).Return(requisition, nil)
		f.requisitionRepo.On("Save", ctx, requisition).Return(nil)

		response, err := f.service.Reject(ctx, requisition.ID)
		require.NoError(t, err)
		assert.Equal(t, "rejected", response.Status)
	})
}
