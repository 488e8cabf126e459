package handler

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"agromart/internal/model"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockProductService is a mock implementation of ProductService.
type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) Create(ctx context.Context, payload *model.ProductPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

func (m *MockProductService) Update(ctx context.Context, id int64, payload *model.ProductPayload) error {
	args := m.Called(ctx, id, payload)
	return args.Error(0)
}

func (m *MockProductService) Get(ctx context.Context, id int64) (*model.FullProduct, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FullProduct), args.Error(1)
}

func (m *MockProductService) List(ctx context.Context) ([]model.FullProduct, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FullProduct), args.Error(1)
}

func (m *MockProductService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductService) CreateCategory(ctx context.Context, payload *model.CategoryPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

func (m *MockProductService) UpdateCategory(ctx context.Context, id int64, payload *model.CategoryPayload) error {
	args := m.Called(ctx, id, payload)
	return args.Error(0)
}

func (m *MockProductService) ListCategories(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Category), args.Error(1)
}

func (m *MockProductService) DeleteCategory(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductService) CreateFeature(ctx context.Context, payload *model.FeaturePayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

func (m *MockProductService) UpdateFeature(ctx context.Context, id int64, payload *model.FeaturePayload) error {
	args := m.Called(ctx, id, payload)
	return args.Error(0)
}

func (m *MockProductService) ListFeatures(ctx context.Context) ([]model.Feature, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Feature), args.Error(1)
}

func (m *MockProductService) DeleteFeature(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductService) CreatePacking(ctx context.Context, payload *model.PackingPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

func (m *MockProductService) UpdatePacking(ctx context.Context, id int64, payload *model.PackingPayload) error {
	args := m.Called(ctx, id, payload)
	return args.Error(0)
}

func (m *MockProductService) ListPackings(ctx context.Context) ([]model.Packing, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Packing), args.Error(1)
}

func (m *MockProductService) DeletePacking(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestProductHandler_Create(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(MockProductService)
		h := NewProductHandler(svc, zerolog.Nop())

		svc.On("Create", mock.Anything, mock.AnythingOfType("*model.ProductPayload")).Return(nil)

		body := `{"name": "Coffee beans", "category_id": 2, "is_packed": true}`
		req := httptest.NewRequest(http.MethodPost, "/products", bytes.NewBufferString(body))
		rec := httptest.NewRecorder()

		h.Create(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		svc.AssertExpectations(t)
	})

	t.Run("Empty body passes nil through", func(t *testing.T) {
		svc := new(MockProductService)
		h := NewProductHandler(svc, zerolog.Nop())

		svc.On("Create", mock.Anything, (*model.ProductPayload)(nil)).
			Return(model.NotProvided("Product not provided"))

		req := httptest.NewRequest(http.MethodPost, "/products", nil)
		rec := httptest.NewRecorder()

		h.Create(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Product not provided", decodeErrorBody(t, rec).Message)
	})

	t.Run("Unclassified failure", func(t *testing.T) {
		svc := new(MockProductService)
		h := NewProductHandler(svc, zerolog.Nop())

		svc.On("Create", mock.Anything, mock.AnythingOfType("*model.ProductPayload")).
			Return(errors.New("database error"))

		req := httptest.NewRequest(http.MethodPost, "/products", bytes.NewBufferString(`{"name": "X"}`))
		rec := httptest.NewRecorder()

		h.Create(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Unexpected error on create product", decodeErrorBody(t, rec).Message)
	})
}

func TestProductHandler_Show(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(MockProductService)
		h := NewProductHandler(svc, zerolog.Nop())

		product := &model.FullProduct{
			Product:  model.Product{ID: 1, Name: "Coffee beans"},
			Category: model.Category{ID: 2, Name: "Grains"},
		}
		svc.On("Get", mock.Anything, int64(1)).Return(product, nil)

		req := httptest.NewRequest(http.MethodGet, "/products/1", nil)
		req = mux.SetURLVars(req, map[string]string{"productId": "1"})
		rec := httptest.NewRecorder()

		h.Show(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Unparsable id", func(t *testing.T) {
		svc := new(MockProductService)
		h := NewProductHandler(svc, zerolog.Nop())

		req := httptest.NewRequest(http.MethodGet, "/products/abc", nil)
		req = mux.SetURLVars(req, map[string]string{"productId": "abc"})
		rec := httptest.NewRecorder()

		h.Show(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Invalid product's id", decodeErrorBody(t, rec).Message)
		svc.AssertNotCalled(t, "Get")
	})
}

func TestProductHandler_SubResources(t *testing.T) {
	t.Run("Create category", func(t *testing.T) {
		svc := new(MockProductService)
		h := NewProductHandler(svc, zerolog.Nop())

		svc.On("CreateCategory", mock.Anything, mock.AnythingOfType("*model.CategoryPayload")).Return(nil)

		body := `{"name": "Grains", "image_url": "https://img/grains.png"}`
		req := httptest.NewRequest(http.MethodPost, "/products/categories", bytes.NewBufferString(body))
		rec := httptest.NewRecorder()

		h.CreateCategory(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		svc.AssertExpectations(t)
	})

	t.Run("List features empty", func(t *testing.T) {
		svc := new(MockProductService)
		h := NewProductHandler(svc, zerolog.Nop())

		svc.On("ListFeatures", mock.Anything).Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/products/features", nil)
		rec := httptest.NewRecorder()

		h.ListFeatures(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("Delete packing", func(t *testing.T) {
		svc := new(MockProductService)
		h := NewProductHandler(svc, zerolog.Nop())

		svc.On("DeletePacking", mock.Anything, int64(8)).Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/products/packings/8", nil)
		req = mux.SetURLVars(req, map[string]string{"packingId": "8"})
		rec := httptest.NewRecorder()

		h.DeletePacking(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		svc.AssertExpectations(t)
	})

	t.Run("Unparsable category id", func(t *testing.T) {
		svc := new(MockProductService)
		h := NewProductHandler(svc, zerolog.Nop())

		req := httptest.NewRequest(http.MethodPut, "/products/categories/x", bytes.NewBufferString(`{"name": "G"}`))
		req = mux.SetURLVars(req, map[string]string{"categoryId": "x"})
		rec := httptest.NewRecorder()

		h.UpdateCategory(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Invalid category's id", decodeErrorBody(t, rec).Message)
		svc.AssertNotCalled(t, "UpdateCategory")
	})
}
