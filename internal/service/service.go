package service

import (
	"context"

	"agromart/internal/model"
)

// CustomerService defines operations for customer management.
type CustomerService interface {
	Create(ctx context.Context, payload *model.CustomerPayload) error
	Update(ctx context.Context, id int64, payload *model.CustomerPayload) error
	Get(ctx context.Context, id int64) (*model.Customer, error)
	List(ctx context.Context) ([]model.Customer, error)
	Delete(ctx context.Context, id int64) error
}

// ProductService defines operations for catalogue management: products and
// their nested category, feature and packing resources.
type ProductService interface {
	Create(ctx context.Context, payload *model.ProductPayload) error
	Update(ctx context.Context, id int64, payload *model.ProductPayload) error
	Get(ctx context.Context, id int64) (*model.FullProduct, error)
	List(ctx context.Context) ([]model.FullProduct, error)
	Delete(ctx context.Context, id int64) error

	CreateCategory(ctx context.Context, payload *model.CategoryPayload) error
	UpdateCategory(ctx context.Context, id int64, payload *model.CategoryPayload) error
	ListCategories(ctx context.Context) ([]model.Category, error)
	DeleteCategory(ctx context.Context, id int64) error

	CreateFeature(ctx context.Context, payload *model.FeaturePayload) error
	UpdateFeature(ctx context.Context, id int64, payload *model.FeaturePayload) error
	ListFeatures(ctx context.Context) ([]model.Feature, error)
	DeleteFeature(ctx context.Context, id int64) error

	CreatePacking(ctx context.Context, payload *model.PackingPayload) error
	UpdatePacking(ctx context.Context, id int64, payload *model.PackingPayload) error
	ListPackings(ctx context.Context) ([]model.Packing, error)
	DeletePacking(ctx context.Context, id int64) error
}

// OrderService defines operations for order management, including the
// pricing pipeline on writes and the status lifecycle.
type OrderService interface {
	// Create validates, prices and persists a new order.
	Create(ctx context.Context, payload *model.OrderPayload) error

	// Update validates, prices and rewrites an existing order; its items are
	// replaced wholesale.
	Update(ctx context.Context, id int64, payload *model.OrderPayload) error

	// Get retrieves an order enriched with its customer and each item's
	// product and packing records.
	Get(ctx context.Context, id int64) (*model.FullOrder, error)

	// List retrieves all orders, enriched like Get.
	List(ctx context.Context) ([]model.FullOrder, error)

	Delete(ctx context.Context, id int64) error

	// Finish moves a Registered order to Finished.
	Finish(ctx context.Context, id int64) error

	// Cancel moves a Registered order to Canceled.
	Cancel(ctx context.Context, id int64) error

	// Statuses returns every status an order can take.
	Statuses() []model.OrderStatus
}
