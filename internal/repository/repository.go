package repository

import (
	"context"

	"agromart/internal/model"

	"github.com/jackc/pgx/v5"
)

// CustomerRepository defines the interface for customer data access operations.
type CustomerRepository interface {
	// Create inserts a new customer.
	Create(ctx context.Context, customer *model.Customer) error

	// Update rewrites an existing customer.
	Update(ctx context.Context, customer *model.Customer) error

	// GetByID retrieves a single customer by its ID.
	// Returns (nil, nil) when no customer exists.
	GetByID(ctx context.Context, id int64) (*model.Customer, error)

	// List retrieves all customers.
	List(ctx context.Context) ([]model.Customer, error)

	// Delete removes a customer by its ID.
	Delete(ctx context.Context, id int64) error
}

// ProductRepository defines the interface for product catalogue data access,
// including the nested category, feature and packing resources.
type ProductRepository interface {
	// Create inserts a new product.
	Create(ctx context.Context, product *model.Product) error

	// Update rewrites an existing product.
	Update(ctx context.Context, product *model.Product) error

	// GetByID retrieves a product with its category, features and packings.
	// Returns (nil, nil) when no product exists.
	GetByID(ctx context.Context, id int64) (*model.FullProduct, error)

	// List retrieves all products with their nested records.
	List(ctx context.Context) ([]model.FullProduct, error)

	// Delete removes a product by its ID.
	Delete(ctx context.Context, id int64) error

	CreateCategory(ctx context.Context, category *model.Category) error
	UpdateCategory(ctx context.Context, category *model.Category) error
	ListCategories(ctx context.Context) ([]model.Category, error)
	DeleteCategory(ctx context.Context, id int64) error

	CreateFeature(ctx context.Context, feature *model.Feature) error
	UpdateFeature(ctx context.Context, feature *model.Feature) error
	ListFeatures(ctx context.Context) ([]model.Feature, error)
	DeleteFeature(ctx context.Context, id int64) error

	CreatePacking(ctx context.Context, packing *model.Packing) error
	UpdatePacking(ctx context.Context, packing *model.Packing) error
	ListPackings(ctx context.Context) ([]model.Packing, error)
	DeletePacking(ctx context.Context, id int64) error
}

// OrderRepository defines the interface for order data access operations.
type OrderRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// CreateOrder inserts a new order row within the provided transaction and
	// fills in the generated ID.
	CreateOrder(ctx context.Context, tx pgx.Tx, order *model.Order) error

	// UpdateOrder rewrites an existing order row within the provided transaction.
	UpdateOrder(ctx context.Context, tx pgx.Tx, order *model.Order) error

	// ReplaceItems deletes the order's items and inserts the given ones within
	// the provided transaction. Items have no lifecycle of their own; they are
	// always replaced wholesale, never merged.
	ReplaceItems(ctx context.Context, tx pgx.Tx, orderID int64, items []model.OrderItem) error

	// GetByID retrieves an order by its ID along with its items.
	// Returns (nil, nil, nil) when no order exists.
	GetByID(ctx context.Context, id int64) (*model.Order, []model.OrderItem, error)

	// List retrieves all orders with their items.
	List(ctx context.Context) ([]model.FullOrder, error)

	// Delete removes an order and its items.
	Delete(ctx context.Context, id int64) error

	// UpdateStatus writes the new status for an order still in the Registered
	// state. It touches only the status column and reports whether a row was
	// updated; false means the order was already finished or canceled.
	UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) (bool, error)
}
