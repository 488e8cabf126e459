package repository

import (
	"context"
	"fmt"

	"agromart/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// productRepository implements the ProductRepository interface using PostgreSQL.
type productRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(pool *pgxpool.Pool, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "product").Logger(),
	}
}

// Create inserts a new product.
func (r *productRepository) Create(ctx context.Context, product *model.Product) error {
	query := `
		INSERT INTO products (name, description, is_packed, unit_cost, unit_price, category_id, is_activated)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := r.pool.QueryRow(ctx, query,
		product.Name, product.Description, product.IsPacked,
		product.UnitCost, product.UnitPrice, product.CategoryID, product.IsActivated,
	).Scan(&product.ID)
	if err != nil {
		r.logger.Error().Err(err).Str("name", product.Name).Msg("failed to create product")
		return fmt.Errorf("failed to create product: %w", err)
	}

	r.logger.Debug().Int64("product_id", product.ID).Msg("product created")

	return nil
}

// Update rewrites an existing product.
func (r *productRepository) Update(ctx context.Context, product *model.Product) error {
	query := `
		UPDATE products
		SET name = $2, description = $3, is_packed = $4, unit_cost = $5,
		    unit_price = $6, category_id = $7, is_activated = $8
		WHERE id = $1
	`

	_, err := r.pool.Exec(ctx, query,
		product.ID, product.Name, product.Description, product.IsPacked,
		product.UnitCost, product.UnitPrice, product.CategoryID, product.IsActivated,
	)
	if err != nil {
		r.logger.Error().Err(err).Int64("product_id", product.ID).Msg("failed to update product")
		return fmt.Errorf("failed to update product: %w", err)
	}

	return nil
}

// GetByID retrieves a product with its category, features and packings.
func (r *productRepository) GetByID(ctx context.Context, id int64) (*model.FullProduct, error) {
	query := `
		SELECT id, name, description, is_packed, unit_cost, unit_price, category_id, is_activated
		FROM products
		WHERE id = $1
	`

	var p model.FullProduct
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.IsPacked,
		&p.UnitCost, &p.UnitPrice, &p.CategoryID, &p.IsActivated,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Int64("product_id", id).Msg("product not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("product_id", id).Msg("failed to query product")
		return nil, fmt.Errorf("failed to query product: %w", err)
	}

	if err := r.fillProduct(ctx, &p); err != nil {
		return nil, err
	}

	return &p, nil
}

// List retrieves all products with their nested records.
func (r *productRepository) List(ctx context.Context) ([]model.FullProduct, error) {
	query := `
		SELECT id, name, description, is_packed, unit_cost, unit_price, category_id, is_activated
		FROM products
		ORDER BY name
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []model.FullProduct
	for rows.Next() {
		var p model.FullProduct
		err := rows.Scan(
			&p.ID, &p.Name, &p.Description, &p.IsPacked,
			&p.UnitCost, &p.UnitPrice, &p.CategoryID, &p.IsActivated,
		)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan product row")
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating product rows")
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	for i := range products {
		if err := r.fillProduct(ctx, &products[i]); err != nil {
			return nil, err
		}
	}

	return products, nil
}

// fillProduct loads the category, features and packings of a product.
func (r *productRepository) fillProduct(ctx context.Context, p *model.FullProduct) error {
	categoryQuery := `
		SELECT id, name, image_url, category_id
		FROM categories
		WHERE id = $1
	`

	err := r.pool.QueryRow(ctx, categoryQuery, p.CategoryID).Scan(
		&p.Category.ID, &p.Category.Name, &p.Category.ImageURL, &p.Category.ParentID,
	)
	if err != nil && err != pgx.ErrNoRows {
		r.logger.Error().Err(err).Int64("product_id", p.ID).Msg("failed to query product category")
		return fmt.Errorf("failed to query product category: %w", err)
	}

	featuresQuery := `
		SELECT f.id, f.name
		FROM features f
		JOIN product_features pf ON pf.feature_id = f.id
		WHERE pf.product_id = $1
		ORDER BY f.id
	`

	rows, err := r.pool.Query(ctx, featuresQuery, p.ID)
	if err != nil {
		r.logger.Error().Err(err).Int64("product_id", p.ID).Msg("failed to query product features")
		return fmt.Errorf("failed to query product features: %w", err)
	}
	defer rows.Close()

	p.Features = []model.Feature{}
	for rows.Next() {
		var f model.Feature
		if err := rows.Scan(&f.ID, &f.Name); err != nil {
			return fmt.Errorf("failed to scan product feature: %w", err)
		}
		p.Features = append(p.Features, f)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating product features: %w", err)
	}

	packingsQuery := `
		SELECT k.id, k.name, k.size, k.unit, k.unit_abbreviation, k.cost,
		       pp.id, pp.product_id, pp.packing_id, pp.price, pp.quantity
		FROM packings k
		JOIN product_packings pp ON pp.packing_id = k.id
		WHERE pp.product_id = $1
		ORDER BY k.id
	`

	rows, err = r.pool.Query(ctx, packingsQuery, p.ID)
	if err != nil {
		r.logger.Error().Err(err).Int64("product_id", p.ID).Msg("failed to query product packings")
		return fmt.Errorf("failed to query product packings: %w", err)
	}
	defer rows.Close()

	p.Packings = []model.FullPacking{}
	for rows.Next() {
		var fp model.FullPacking
		err := rows.Scan(
			&fp.ID, &fp.Name, &fp.Size, &fp.Unit, &fp.UnitAbbreviation, &fp.Cost,
			&fp.ProductPacking.ID, &fp.ProductPacking.ProductID, &fp.ProductPacking.PackingID,
			&fp.ProductPacking.Price, &fp.ProductPacking.Quantity,
		)
		if err != nil {
			return fmt.Errorf("failed to scan product packing: %w", err)
		}
		// Price and quantity are never negative; bad rows coerce to zero.
		if fp.ProductPacking.Price < 0 {
			fp.ProductPacking.Price = 0
		}
		if fp.ProductPacking.Quantity < 0 {
			fp.ProductPacking.Quantity = 0
		}
		p.Packings = append(p.Packings, fp)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating product packings: %w", err)
	}

	return nil
}

// Delete removes a product by its ID.
func (r *productRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Int64("product_id", id).Msg("failed to delete product")
		return fmt.Errorf("failed to delete product: %w", err)
	}

	return nil
}

// CreateCategory inserts a new category.
func (r *productRepository) CreateCategory(ctx context.Context, category *model.Category) error {
	query := `
		INSERT INTO categories (name, image_url, category_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.pool.QueryRow(ctx, query, category.Name, category.ImageURL, category.ParentID).Scan(&category.ID)
	if err != nil {
		r.logger.Error().Err(err).Str("name", category.Name).Msg("failed to create category")
		return fmt.Errorf("failed to create category: %w", err)
	}

	return nil
}

// UpdateCategory rewrites an existing category.
func (r *productRepository) UpdateCategory(ctx context.Context, category *model.Category) error {
	query := `
		UPDATE categories
		SET name = $2, image_url = $3, category_id = $4
		WHERE id = $1
	`

	_, err := r.pool.Exec(ctx, query, category.ID, category.Name, category.ImageURL, category.ParentID)
	if err != nil {
		r.logger.Error().Err(err).Int64("category_id", category.ID).Msg("failed to update category")
		return fmt.Errorf("failed to update category: %w", err)
	}

	return nil
}

// ListCategories retrieves all categories.
func (r *productRepository) ListCategories(ctx context.Context) ([]model.Category, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, image_url, category_id FROM categories ORDER BY name`)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query categories")
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var categories []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.ImageURL, &c.ParentID); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	return categories, nil
}

// DeleteCategory removes a category by its ID.
func (r *productRepository) DeleteCategory(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Int64("category_id", id).Msg("failed to delete category")
		return fmt.Errorf("failed to delete category: %w", err)
	}

	return nil
}

// CreateFeature inserts a new feature.
func (r *productRepository) CreateFeature(ctx context.Context, feature *model.Feature) error {
	err := r.pool.QueryRow(ctx, `INSERT INTO features (name) VALUES ($1) RETURNING id`, feature.Name).Scan(&feature.ID)
	if err != nil {
		r.logger.Error().Err(err).Str("name", feature.Name).Msg("failed to create feature")
		return fmt.Errorf("failed to create feature: %w", err)
	}

	return nil
}

// UpdateFeature rewrites an existing feature.
func (r *productRepository) UpdateFeature(ctx context.Context, feature *model.Feature) error {
	_, err := r.pool.Exec(ctx, `UPDATE features SET name = $2 WHERE id = $1`, feature.ID, feature.Name)
	if err != nil {
		r.logger.Error().Err(err).Int64("feature_id", feature.ID).Msg("failed to update feature")
		return fmt.Errorf("failed to update feature: %w", err)
	}

	return nil
}

// ListFeatures retrieves all features.
func (r *productRepository) ListFeatures(ctx context.Context) ([]model.Feature, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name FROM features ORDER BY name`)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query features")
		return nil, fmt.Errorf("failed to query features: %w", err)
	}
	defer rows.Close()

	var features []model.Feature
	for rows.Next() {
		var f model.Feature
		if err := rows.Scan(&f.ID, &f.Name); err != nil {
			return nil, fmt.Errorf("failed to scan feature: %w", err)
		}
		features = append(features, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating features: %w", err)
	}

	return features, nil
}

// DeleteFeature removes a feature by its ID.
func (r *productRepository) DeleteFeature(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM features WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Int64("feature_id", id).Msg("failed to delete feature")
		return fmt.Errorf("failed to delete feature: %w", err)
	}

	return nil
}

// CreatePacking inserts a new packing definition.
func (r *productRepository) CreatePacking(ctx context.Context, packing *model.Packing) error {
	query := `
		INSERT INTO packings (name, size, unit, unit_abbreviation, cost)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.pool.QueryRow(ctx, query,
		packing.Name, packing.Size, packing.Unit, packing.UnitAbbreviation, packing.Cost,
	).Scan(&packing.ID)
	if err != nil {
		r.logger.Error().Err(err).Str("name", packing.Name).Msg("failed to create packing")
		return fmt.Errorf("failed to create packing: %w", err)
	}

	return nil
}

// UpdatePacking rewrites an existing packing definition.
func (r *productRepository) UpdatePacking(ctx context.Context, packing *model.Packing) error {
	query := `
		UPDATE packings
		SET name = $2, size = $3, unit = $4, unit_abbreviation = $5, cost = $6
		WHERE id = $1
	`

	_, err := r.pool.Exec(ctx, query,
		packing.ID, packing.Name, packing.Size, packing.Unit, packing.UnitAbbreviation, packing.Cost,
	)
	if err != nil {
		r.logger.Error().Err(err).Int64("packing_id", packing.ID).Msg("failed to update packing")
		return fmt.Errorf("failed to update packing: %w", err)
	}

	return nil
}

// ListPackings retrieves all packing definitions.
func (r *productRepository) ListPackings(ctx context.Context) ([]model.Packing, error) {
	query := `
		SELECT id, name, size, unit, unit_abbreviation, cost
		FROM packings
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query packings")
		return nil, fmt.Errorf("failed to query packings: %w", err)
	}
	defer rows.Close()

	var packings []model.Packing
	for rows.Next() {
		var k model.Packing
		if err := rows.Scan(&k.ID, &k.Name, &k.Size, &k.Unit, &k.UnitAbbreviation, &k.Cost); err != nil {
			return nil, fmt.Errorf("failed to scan packing: %w", err)
		}
		packings = append(packings, k)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating packings: %w", err)
	}

	return packings, nil
}

// DeletePacking removes a packing definition by its ID.
func (r *productRepository) DeletePacking(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM packings WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Int64("packing_id", id).Msg("failed to delete packing")
		return fmt.Errorf("failed to delete packing: %w", err)
	}

	return nil
}
