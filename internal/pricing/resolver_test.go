package pricing

import (
	"context"
	"errors"
	"testing"

	"agromart/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCatalog is a mock implementation of Catalog.
type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) GetByID(ctx context.Context, id int64) (*model.FullProduct, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FullProduct), args.Error(1)
}

func (m *MockCatalog) ListPackings(ctx context.Context) ([]model.Packing, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Packing), args.Error(1)
}

func packedProduct(id int64, packingID int64, price float64) *model.FullProduct {
	return &model.FullProduct{
		Product: model.Product{ID: id, Name: "Packed", IsPacked: true},
		Packings: []model.FullPacking{
			{
				Packing: model.Packing{ID: packingID, Name: "Bag 500g"},
				ProductPacking: model.ProductPacking{
					ProductID: id,
					PackingID: packingID,
					Price:     price,
				},
			},
		},
	}
}

func flatProduct(id int64, unitPrice float64) *model.FullProduct {
	return &model.FullProduct{
		Product: model.Product{ID: id, Name: "Flat", IsPacked: false, UnitPrice: &unitPrice},
	}
}

func TestResolver_ResolvePrices_Success(t *testing.T) {
	ctx := context.Background()
	catalog := new(MockCatalog)
	resolver := NewResolver(catalog, zerolog.Nop())

	packingID := int64(10)
	catalog.On("ListPackings", ctx).Return([]model.Packing{{ID: packingID, Name: "Bag 500g"}}, nil)
	catalog.On("GetByID", ctx, int64(1)).Return(packedProduct(1, packingID, 25.00), nil)
	catalog.On("GetByID", ctx, int64(2)).Return(flatProduct(2, 16.00), nil)

	items := []model.OrderItem{
		{ProductID: 1, PackingID: &packingID, Amount: 3},
		{ProductID: 2, Amount: 2},
	}

	resolved, err := resolver.ResolvePrices(ctx, items)

	require.NoError(t, err)
	require.Len(t, resolved, 2)
	assert.Equal(t, 25.00, resolved[0].UnitPrice)
	assert.Equal(t, 16.00, resolved[1].UnitPrice)

	catalog.AssertExpectations(t)
	catalog.AssertNumberOfCalls(t, "ListPackings", 1)
}

func TestResolver_ResolvePrices_EmptyBatchSkipsLookups(t *testing.T) {
	ctx := context.Background()
	catalog := new(MockCatalog)
	resolver := NewResolver(catalog, zerolog.Nop())

	resolved, err := resolver.ResolvePrices(ctx, nil)

	require.NoError(t, err)
	assert.Empty(t, resolved)
	catalog.AssertNotCalled(t, "ListPackings")
	catalog.AssertNotCalled(t, "GetByID")
}

func TestResolver_ResolvePrices_OverwritesClientPrice(t *testing.T) {
	ctx := context.Background()
	catalog := new(MockCatalog)
	resolver := NewResolver(catalog, zerolog.Nop())

	catalog.On("ListPackings", ctx).Return([]model.Packing{}, nil)
	catalog.On("GetByID", ctx, int64(2)).Return(flatProduct(2, 16.00), nil)

	items := []model.OrderItem{
		{ProductID: 2, Amount: 1, UnitPrice: 0.01},
	}

	resolved, err := resolver.ResolvePrices(ctx, items)

	require.NoError(t, err)
	assert.Equal(t, 16.00, resolved[0].UnitPrice)
}

func TestResolver_ResolvePrices_FlatProductWithoutPrice(t *testing.T) {
	ctx := context.Background()
	catalog := new(MockCatalog)
	resolver := NewResolver(catalog, zerolog.Nop())

	product := &model.FullProduct{Product: model.Product{ID: 3, IsPacked: false}}
	catalog.On("ListPackings", ctx).Return([]model.Packing{}, nil)
	catalog.On("GetByID", ctx, int64(3)).Return(product, nil)

	resolved, err := resolver.ResolvePrices(ctx, []model.OrderItem{{ProductID: 3, Amount: 1}})

	require.NoError(t, err)
	assert.Zero(t, resolved[0].UnitPrice)
}

func TestResolver_ResolvePrices_ProductNotFound(t *testing.T) {
	ctx := context.Background()
	catalog := new(MockCatalog)
	resolver := NewResolver(catalog, zerolog.Nop())

	catalog.On("ListPackings", ctx).Return([]model.Packing{}, nil)
	catalog.On("GetByID", ctx, int64(99)).Return(nil, nil)

	resolved, err := resolver.ResolvePrices(ctx, []model.OrderItem{{ProductID: 99, Amount: 1}})

	require.Error(t, err)
	assert.Nil(t, resolved)

	var apiErr *model.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, model.KindInvalidItems, apiErr.Kind)
	assert.Equal(t, "Order with invalid items", apiErr.Message)
	assert.Equal(t, DetailProductNotFound, apiErr.Detail)
}

func TestResolver_ResolvePrices_PackedProductWithoutPacking(t *testing.T) {
	ctx := context.Background()
	catalog := new(MockCatalog)
	resolver := NewResolver(catalog, zerolog.Nop())

	catalog.On("ListPackings", ctx).Return([]model.Packing{{ID: 10}}, nil)
	catalog.On("GetByID", ctx, int64(1)).Return(packedProduct(1, 10, 25.00), nil)

	resolved, err := resolver.ResolvePrices(ctx, []model.OrderItem{{ProductID: 1, Amount: 1}})

	require.Error(t, err)
	assert.Nil(t, resolved)

	var apiErr *model.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Items without packing_id, but the product is packed", apiErr.Detail)
}

func TestResolver_ResolvePrices_UnknownPacking(t *testing.T) {
	ctx := context.Background()
	catalog := new(MockCatalog)
	resolver := NewResolver(catalog, zerolog.Nop())

	catalog.On("ListPackings", ctx).Return([]model.Packing{{ID: 10}}, nil)
	catalog.On("GetByID", ctx, int64(1)).Return(packedProduct(1, 10, 25.00), nil)

	unknown := int64(77)
	resolved, err := resolver.ResolvePrices(ctx, []model.OrderItem{
		{ProductID: 1, PackingID: &unknown, Amount: 1},
	})

	require.Error(t, err)
	assert.Nil(t, resolved)

	var apiErr *model.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, DetailPackingNotFound, apiErr.Detail)
}

func TestResolver_ResolvePrices_PackingBelongsToAnotherProduct(t *testing.T) {
	ctx := context.Background()
	catalog := new(MockCatalog)
	resolver := NewResolver(catalog, zerolog.Nop())

	// The packing exists but the product has no association with it.
	product := &model.FullProduct{
		Product: model.Product{ID: 1, IsPacked: true},
	}
	catalog.On("ListPackings", ctx).Return([]model.Packing{{ID: 10}}, nil)
	catalog.On("GetByID", ctx, int64(1)).Return(product, nil)

	packingID := int64(10)
	resolved, err := resolver.ResolvePrices(ctx, []model.OrderItem{
		{ProductID: 1, PackingID: &packingID, Amount: 1},
	})

	require.Error(t, err)
	assert.Nil(t, resolved)

	var apiErr *model.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, DetailPackingNotFound, apiErr.Detail)
}

func TestResolver_ResolvePrices_CatalogErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("ListPackings failure", func(t *testing.T) {
		catalog := new(MockCatalog)
		resolver := NewResolver(catalog, zerolog.Nop())

		catalog.On("ListPackings", ctx).Return(nil, errors.New("database error"))

		resolved, err := resolver.ResolvePrices(ctx, []model.OrderItem{{ProductID: 1, Amount: 1}})

		require.Error(t, err)
		assert.Nil(t, resolved)

		var apiErr *model.Error
		assert.False(t, errors.As(err, &apiErr))
	})

	t.Run("GetByID failure", func(t *testing.T) {
		catalog := new(MockCatalog)
		resolver := NewResolver(catalog, zerolog.Nop())

		catalog.On("ListPackings", ctx).Return([]model.Packing{}, nil)
		catalog.On("GetByID", ctx, int64(1)).Return(nil, errors.New("database error"))

		resolved, err := resolver.ResolvePrices(ctx, []model.OrderItem{{ProductID: 1, Amount: 1}})

		require.Error(t, err)
		assert.Nil(t, resolved)
	})
}
