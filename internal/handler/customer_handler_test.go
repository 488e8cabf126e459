package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"agromart/internal/model"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCustomerService is a mock implementation of CustomerService.
type MockCustomerService struct {
	mock.Mock
}

func (m *MockCustomerService) Create(ctx context.Context, payload *model.CustomerPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

func (m *MockCustomerService) Update(ctx context.Context, id int64, payload *model.CustomerPayload) error {
	args := m.Called(ctx, id, payload)
	return args.Error(0)
}

func (m *MockCustomerService) Get(ctx context.Context, id int64) (*model.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Customer), args.Error(1)
}

func (m *MockCustomerService) List(ctx context.Context) ([]model.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Customer), args.Error(1)
}

func (m *MockCustomerService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestCustomerHandler_Create(t *testing.T) {
	tests := []struct {
		name            string
		body            string
		serviceErr      error
		expectNil       bool
		expectedStatus  int
		expectedMessage string
		expectedDetail  string
	}{
		{
			name:           "Success",
			body:           `{"name": "Maria", "email": "m@x.com", "address": "Rua A", "phone": "11 9999"}`,
			expectedStatus: http.StatusCreated,
		},
		{
			name:            "Empty body",
			body:            "",
			serviceErr:      model.NotProvided("Customer not provided"),
			expectNil:       true,
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Customer not provided",
		},
		{
			name:            "Missing field",
			body:            `{"name": "Maria"}`,
			serviceErr:      model.Validation("Invalid customer", "Email is required"),
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Invalid customer",
			expectedDetail:  "Email is required",
		},
		{
			name:            "Unclassified failure",
			body:            `{"name": "Maria"}`,
			serviceErr:      errors.New("database error"),
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: "Unexpected error on create customer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockCustomerService)
			h := NewCustomerHandler(svc, zerolog.Nop())

			if tt.expectNil {
				svc.On("Create", mock.Anything, (*model.CustomerPayload)(nil)).Return(tt.serviceErr)
			} else {
				svc.On("Create", mock.Anything, mock.AnythingOfType("*model.CustomerPayload")).Return(tt.serviceErr)
			}

			req := httptest.NewRequest(http.MethodPost, "/customers", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()

			h.Create(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedMessage != "" {
				body := decodeErrorBody(t, rec)
				assert.Equal(t, tt.expectedMessage, body.Message)
				assert.Equal(t, tt.expectedDetail, body.Detail)
			}

			svc.AssertExpectations(t)
		})
	}
}

func TestCustomerHandler_Show(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(MockCustomerService)
		h := NewCustomerHandler(svc, zerolog.Nop())

		customer := &model.Customer{ID: 3, Name: "Maria", Email: "m@x.com"}
		svc.On("Get", mock.Anything, int64(3)).Return(customer, nil)

		req := httptest.NewRequest(http.MethodGet, "/customers/3", nil)
		req = mux.SetURLVars(req, map[string]string{"customerId": "3"})
		rec := httptest.NewRecorder()

		h.Show(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var got model.Customer
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		assert.Equal(t, "Maria", got.Name)
	})

	t.Run("Unparsable id", func(t *testing.T) {
		svc := new(MockCustomerService)
		h := NewCustomerHandler(svc, zerolog.Nop())

		req := httptest.NewRequest(http.MethodGet, "/customers/abc", nil)
		req = mux.SetURLVars(req, map[string]string{"customerId": "abc"})
		rec := httptest.NewRecorder()

		h.Show(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Invalid customer's id", decodeErrorBody(t, rec).Message)
		svc.AssertNotCalled(t, "Get")
	})

	t.Run("Not found", func(t *testing.T) {
		svc := new(MockCustomerService)
		h := NewCustomerHandler(svc, zerolog.Nop())

		svc.On("Get", mock.Anything, int64(99)).Return(nil, model.NotFound("Customer not found"))

		req := httptest.NewRequest(http.MethodGet, "/customers/99", nil)
		req = mux.SetURLVars(req, map[string]string{"customerId": "99"})
		rec := httptest.NewRecorder()

		h.Show(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Customer not found", decodeErrorBody(t, rec).Message)
	})
}

func TestCustomerHandler_List(t *testing.T) {
	svc := new(MockCustomerService)
	h := NewCustomerHandler(svc, zerolog.Nop())

	svc.On("List", mock.Anything).Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/customers", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestCustomerHandler_UpdateAndDelete(t *testing.T) {
	t.Run("Update success", func(t *testing.T) {
		svc := new(MockCustomerService)
		h := NewCustomerHandler(svc, zerolog.Nop())

		svc.On("Update", mock.Anything, int64(3), mock.AnythingOfType("*model.CustomerPayload")).Return(nil)

		req := httptest.NewRequest(http.MethodPut, "/customers/3", bytes.NewBufferString(`{"name": "Maria"}`))
		req = mux.SetURLVars(req, map[string]string{"customerId": "3"})
		rec := httptest.NewRecorder()

		h.Update(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		svc.AssertExpectations(t)
	})

	t.Run("Delete success", func(t *testing.T) {
		svc := new(MockCustomerService)
		h := NewCustomerHandler(svc, zerolog.Nop())

		svc.On("Delete", mock.Anything, int64(3)).Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/customers/3", nil)
		req = mux.SetURLVars(req, map[string]string{"customerId": "3"})
		rec := httptest.NewRecorder()

		h.Delete(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		svc.AssertExpectations(t)
	})
}
