package integration

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
}

// SetupTestDB creates a PostgreSQL test container and connection pool.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	poolConfig, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		t.Fatalf("failed to parse connection string: %v", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("failed to ping database: %v", err)
	}

	createSchema(t, pool)

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		ConnStr:   connStr,
	}
}

// createSchema creates the database schema for testing.
func createSchema(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	schema := `
		CREATE TABLE IF NOT EXISTS customers (
			id BIGSERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) NOT NULL,
			address VARCHAR(255) NOT NULL,
			phone VARCHAR(50) NOT NULL,
			observation TEXT
		);

		CREATE TABLE IF NOT EXISTS categories (
			id BIGSERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			image_url VARCHAR(512) NOT NULL,
			category_id BIGINT REFERENCES categories(id)
		);

		CREATE TABLE IF NOT EXISTS features (
			id BIGSERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL
		);

		CREATE TABLE IF NOT EXISTS products (
			id BIGSERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			is_packed BOOLEAN NOT NULL DEFAULT FALSE,
			unit_cost DECIMAL(10, 2) NOT NULL DEFAULT 0,
			unit_price DECIMAL(10, 2),
			category_id BIGINT NOT NULL REFERENCES categories(id),
			is_activated BOOLEAN NOT NULL DEFAULT TRUE
		);

		CREATE TABLE IF NOT EXISTS product_features (
			id BIGSERIAL PRIMARY KEY,
			product_id BIGINT NOT NULL REFERENCES products(id) ON DELETE CASCADE,
			feature_id BIGINT NOT NULL REFERENCES features(id) ON DELETE CASCADE
		);

		CREATE TABLE IF NOT EXISTS packings (
			id BIGSERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			size DECIMAL(10, 2) NOT NULL DEFAULT 0,
			unit VARCHAR(50) NOT NULL,
			unit_abbreviation VARCHAR(10) NOT NULL DEFAULT '',
			cost DECIMAL(10, 2) NOT NULL DEFAULT 0
		);

		CREATE TABLE IF NOT EXISTS product_packings (
			id BIGSERIAL PRIMARY KEY,
			product_id BIGINT NOT NULL REFERENCES products(id) ON DELETE CASCADE,
			packing_id BIGINT NOT NULL REFERENCES packings(id) ON DELETE CASCADE,
			price DECIMAL(10, 2) NOT NULL DEFAULT 0,
			quantity DECIMAL(10, 2) NOT NULL DEFAULT 0
		);

		CREATE TABLE IF NOT EXISTS orders (
			id BIGSERIAL PRIMARY KEY,
			customer_id BIGINT NOT NULL REFERENCES customers(id),
			order_date TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
			delivery_date TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
			status VARCHAR(20) NOT NULL DEFAULT 'Registered',
			discount DECIMAL(10, 2) NOT NULL DEFAULT 0,
			shipping DECIMAL(10, 2) NOT NULL DEFAULT 0,
			observation TEXT
		);

		CREATE TABLE IF NOT EXISTS order_items (
			id BIGSERIAL PRIMARY KEY,
			order_id BIGINT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
			product_id BIGINT NOT NULL REFERENCES products(id),
			packing_id BIGINT REFERENCES packings(id),
			amount DECIMAL(10, 2) NOT NULL,
			unit_price DECIMAL(10, 2) NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_products_category_id ON products(category_id);
		CREATE INDEX IF NOT EXISTS idx_order_items_order_id ON order_items(order_id);
		CREATE INDEX IF NOT EXISTS idx_product_packings_product_id ON product_packings(product_id);
	`

	_, err := pool.Exec(ctx, schema)
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}
}

// SeedCatalog inserts a small catalogue: one category, one flat-priced
// product, one packed product with a packing association, and a feature.
// Returns the generated ids keyed by a readable name.
func SeedCatalog(t *testing.T, pool *pgxpool.Pool) map[string]int64 {
	t.Helper()

	ctx := context.Background()
	ids := make(map[string]int64)

	var id int64

	err := pool.QueryRow(ctx,
		`INSERT INTO categories (name, image_url) VALUES ('Grains', 'https://img/grains.png') RETURNING id`,
	).Scan(&id)
	if err != nil {
		t.Fatalf("failed to seed category: %v", err)
	}
	ids["category"] = id

	err = pool.QueryRow(ctx,
		`INSERT INTO products (name, description, is_packed, unit_price, category_id)
		 VALUES ('Rice', 'Flat-priced rice', FALSE, 16.00, $1) RETURNING id`,
		ids["category"],
	).Scan(&id)
	if err != nil {
		t.Fatalf("failed to seed flat product: %v", err)
	}
	ids["flat_product"] = id

	err = pool.QueryRow(ctx,
		`INSERT INTO products (name, description, is_packed, category_id)
		 VALUES ('Coffee beans', 'Sold only in bags', TRUE, $1) RETURNING id`,
		ids["category"],
	).Scan(&id)
	if err != nil {
		t.Fatalf("failed to seed packed product: %v", err)
	}
	ids["packed_product"] = id

	err = pool.QueryRow(ctx,
		`INSERT INTO packings (name, size, unit, unit_abbreviation, cost)
		 VALUES ('Bag 500g', 500, 'gram', 'g', 0.50) RETURNING id`,
	).Scan(&id)
	if err != nil {
		t.Fatalf("failed to seed packing: %v", err)
	}
	ids["packing"] = id

	_, err = pool.Exec(ctx,
		`INSERT INTO product_packings (product_id, packing_id, price, quantity)
		 VALUES ($1, $2, 25.00, 100)`,
		ids["packed_product"], ids["packing"],
	)
	if err != nil {
		t.Fatalf("failed to seed product packing: %v", err)
	}

	err = pool.QueryRow(ctx,
		`INSERT INTO features (name) VALUES ('Organic') RETURNING id`,
	).Scan(&id)
	if err != nil {
		t.Fatalf("failed to seed feature: %v", err)
	}
	ids["feature"] = id

	_, err = pool.Exec(ctx,
		`INSERT INTO product_features (product_id, feature_id) VALUES ($1, $2)`,
		ids["packed_product"], ids["feature"],
	)
	if err != nil {
		t.Fatalf("failed to seed product feature: %v", err)
	}

	return ids
}

// SeedCustomer inserts one customer and returns its id.
func SeedCustomer(t *testing.T, pool *pgxpool.Pool) int64 {
	t.Helper()

	var id int64
	err := pool.QueryRow(context.Background(),
		`INSERT INTO customers (name, email, address, phone)
		 VALUES ('Maria Silva', 'maria@example.com', 'Rua das Flores, 100', '11 99999-0000')
		 RETURNING id`,
	).Scan(&id)
	if err != nil {
		t.Fatalf("failed to seed customer: %v", err)
	}

	return id
}

// CleanupDB cleans all data from test tables.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	tables := []string{
		"order_items", "orders",
		"product_packings", "product_features",
		"products", "packings", "features", "categories",
		"customers",
	}
	for _, table := range tables {
		_, err := pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}
}
