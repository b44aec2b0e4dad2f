package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	catalogapp "github.com/procure/backend/internal/application/catalog"
	"github.com/procure/backend/internal/domain/catalog"
	"github.com/procure/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockClassifierRepo struct {
	mock.Mock
}

func (m *mockClassifierRepo) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Classifier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Classifier), args.Error(1)
}

func (m *mockClassifierRepo) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]catalog.Classifier, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Classifier), args.Error(1)
}

func (m *mockClassifierRepo) FindByName(ctx context.Context, name string) (*catalog.Classifier, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Classifier), args.Error(1)
}

func (m *mockClassifierRepo) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Classifier, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Classifier), args.Error(1)
}

func (m *mockClassifierRepo) Save(ctx context.Context, classifier *catalog.Classifier) error {
	args := m.Called(ctx, classifier)
	return args.Error(0)
}

func (m *mockClassifierRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockClassifierRepo) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func newClassifierRouter(repo *mockClassifierRepo) *gin.Engine {
	h := NewClassifierHandler(catalogapp.NewClassifierService(repo, nil))
	engine := gin.New()
	engine.POST("/api/v1/catalog/classifiers", h.Create)
	engine.GET("/api/v1/catalog/classifiers", h.List)
	engine.GET("/api/v1/catalog/classifiers/:id", h.GetByID)
	return engine
}

func TestClassifierHandler_Create(t *testing.T) {
	t.Run("creates classifier", func(t *testing.T) {
		repo := new(mockClassifierRepo)
		repo.On("FindByName", mock.Anything, "Electronics").Return(nil, shared.ErrNotFound)
		repo.On("Save", mock.Anything, mock.AnythingOfType("*catalog.Classifier")).Return(nil)

		engine := newClassifierRouter(repo)
		w := postJSON(t, engine, "/api/v1/catalog/classifiers", catalogapp.CreateClassifierRequest{Name: "Electronics"})

		require.Equal(t, http.StatusCreated, w.Code)

		var resp struct {
			Data catalogapp.ClassifierResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Electronics", resp.Data.Name)
		assert.NotEqual(t, uuid.Nil, resp.Data.ID)
		repo.AssertExpectations(t)
	})

	t.Run("duplicate name conflicts", func(t *testing.T) {
		existing, err := catalog.NewClassifier("Electronics")
		require.NoError(t, err)

		repo := new(mockClassifierRepo)
		repo.On("FindByName", mock.Anything, "Electronics").Return(existing, nil)

		engine := newClassifierRouter(repo)
		w := postJSON(t, engine, "/api/v1/catalog/classifiers", catalogapp.CreateClassifierRequest{Name: "Electronics"})

		assert.Equal(t, http.StatusConflict, w.Code)
		resp := decodeResponse(t, w)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "ALREADY_EXISTS", resp.Error.Code)
	})

	t.Run("missing name rejected", func(t *testing.T) {
		repo := new(mockClassifierRepo)
		engine := newClassifierRouter(repo)
		w := postJSON(t, engine, "/api/v1/catalog/classifiers", map[string]string{})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestClassifierHandler_GetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		classifier, err := catalog.NewClassifier("Office Supplies")
		require.NoError(t, err)

		repo := new(mockClassifierRepo)
		repo.On("FindByID", mock.Anything, classifier.ID).Return(classifier, nil)

		engine := newClassifierRouter(repo)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog/classifiers/"+classifier.ID.String(), nil)
		engine.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.True(t, strings.Contains(w.Body.String(), "Office Supplies"))
	})

	t.Run("not found", func(t *testing.T) {
		id := uuid.New()
		repo := new(mockClassifierRepo)
		repo.On("FindByID", mock.Anything, id).Return(nil, shared.NewDomainError("CLASSIFIER_NOT_FOUND", "Classifier not found"))

		engine := newClassifierRouter(repo)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog/classifiers/"+id.String(), nil)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		repo := new(mockClassifierRepo)
		engine := newClassifierRouter(repo)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog/classifiers/not-a-uuid", nil)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestClassifierHandler_List(t *testing.T) {
	first, err := catalog.NewClassifier("Electronics")
	require.NoError(t, err)
	second, err := catalog.NewClassifier("Office Supplies")
	require.NoError(t, err)

	repo := new(mockClassifierRepo)
	repo.On("FindAll", mock.Anything, mock.Anything).Return([]catalog.Classifier{*first, *second}, nil)
	repo.On("Count", mock.Anything, mock.Anything).Return(int64(2), nil)

	engine := newClassifierRouter(repo)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog/classifiers?page=1&page_size=10", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, int64(2), resp.Meta.Total)
	assert.Equal(t, 1, resp.Meta.Page)
	assert.Equal(t, 10, resp.Meta.PageSize)
}
